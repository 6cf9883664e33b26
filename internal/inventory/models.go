package inventory

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Domain errors the external checkout/cancellation workflow must resolve
// before retrying; the engine never retries on its own.
var (
	ErrInvalidID                  = errors.New("invalid identifier")
	ErrLotNotCurrent              = errors.New("lot is not the current lot")
	ErrInsufficientStock          = errors.New("insufficient stock")
	ErrInsufficientCompanionQuota = errors.New("insufficient companion quota")
	ErrLotNotFound                = errors.New("lot not found")
	ErrQuotaNotFound              = errors.New("companion quota not found")
	ErrSeatsNotFound              = errors.New("one or more seats not found")
)

// AdjustLotRequest is a quantity delta against a class's lot. Negative deltas
// are sales consumption and must target the current lot.
type AdjustLotRequest struct {
	Delta   int    `json:"delta" binding:"required"`
	LotID   string `json:"lot_id" binding:"required,uuid"`
	ClassID string `json:"class_id" binding:"required,uuid"`
}

// SeatAvailabilityRequest flips numbered seats between available and
// unavailable, adjusting the backing lot by the seat count.
type SeatAvailabilityRequest struct {
	SeatIDs   []string `json:"seat_ids" binding:"required,min=1,dive,uuid"`
	LotID     string   `json:"lot_id" binding:"required,uuid"`
	ClassID   string   `json:"class_id" binding:"required,uuid"`
	Available *bool    `json:"available" binding:"required"`
}

// AdjustQuotaRequest is a quantity delta against a class's companion quota,
// addressed by label.
type AdjustQuotaRequest struct {
	Delta   int    `json:"delta" binding:"required"`
	ClassID string `json:"class_id" binding:"required,uuid"`
	Label   string `json:"label" binding:"required"`
}

// AdjustmentResult reports the state the ledger settled on after a lot or
// seat adjustment.
type AdjustmentResult struct {
	EventID          uuid.UUID `json:"event_id"`
	ClassID          uuid.UUID `json:"class_id"`
	LotID            uuid.UUID `json:"lot_id"`
	LotQuantity      int       `json:"lot_quantity"`
	MirroredQuantity int       `json:"mirrored_quantity"`
	RolledOver       bool      `json:"rolled_over"`
	SeatsChanged     int       `json:"seats_changed,omitempty"`
}

// QuotaResult reports the remaining pool after a companion-quota adjustment.
type QuotaResult struct {
	EventID  uuid.UUID `json:"event_id"`
	ClassID  uuid.UUID `json:"class_id"`
	Label    string    `json:"label"`
	Quantity int       `json:"quantity"`
}

// StockSyncEvent is published to the storefront mirroring sink after every
// successful lot or seat adjustment.
type StockSyncEvent struct {
	EventID          string    `json:"event_id"`
	ClassID          string    `json:"class_id"`
	LotID            string    `json:"lot_id"`
	MirroredQuantity int       `json:"mirrored_quantity"`
	RolledOver       bool      `json:"rolled_over"`
	AdjustedAt       time.Time `json:"adjusted_at"`
}

// GetPartitionKey routes all sync events of a class to the same partition so
// the storefront applies them in order.
func (e *StockSyncEvent) GetPartitionKey() string {
	return e.ClassID
}
