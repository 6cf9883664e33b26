package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// The catalog holds every entity provisioned by the external back-office
// process. This engine only reads them; the narrow exception is the
// inventory ledger, which decrements Lot/Seat/CompanionQuota counters.

// Channel discriminates the two issuance channels of a ticket. It is fixed
// at issuance and decides which raw status vocabulary governs the ticket.
type Channel string

const (
	ChannelPOS Channel = "POS"
	ChannelWeb Channel = "WEB"
)

// Seat availability states as stored.
const (
	SeatUnavailable = "UNAVAILABLE"
	SeatAvailable   = "AVAILABLE"
	SeatLocked      = "LOCKED"
)

type Event struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name      string    `json:"name" gorm:"not null;size:255"`
	Venue     string    `json:"venue" gorm:"not null;size:255"`
	City      string    `json:"city" gorm:"size:255"`
	DateTime  time.Time `json:"date_time" gorm:"not null"`
	SaleStart time.Time `json:"sale_start"`
	SaleEnd   time.Time `json:"sale_end"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// Category groups ticket classes for reporting only; it has no inventory
// meaning.
type Category struct {
	ID      uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	EventID uuid.UUID `json:"event_id" gorm:"type:uuid;not null;index"`
	Name    string    `json:"name" gorm:"not null;size:255"`
}

type TicketClass struct {
	ID               uuid.UUID  `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	EventID          uuid.UUID  `json:"event_id" gorm:"type:uuid;not null;index"`
	CategoryID       *uuid.UUID `json:"category_id" gorm:"type:uuid;index"`
	Name             string     `json:"name" gorm:"not null;size:255"`
	Numbered         bool       `json:"numbered" gorm:"default:false"`
	HalfPriceAllowed bool       `json:"half_price_allowed" gorm:"default:false"`

	Category *Category `json:"-" gorm:"foreignKey:CategoryID"`
}

// Lot is a priced, ordered inventory batch within a class. Lots for a class
// are totally ordered by priority; exactly one lot is current (the first by
// priority with quantity > 0, or the first by priority when all are
// exhausted).
type Lot struct {
	ID       uuid.UUID       `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	ClassID  uuid.UUID       `json:"class_id" gorm:"type:uuid;not null;index"`
	Priority int             `json:"priority" gorm:"not null"`
	Quantity int             `json:"quantity" gorm:"not null;default:0;check:quantity >= 0"`
	Price    decimal.Decimal `json:"price" gorm:"type:numeric(12,2);not null"`
}

// CompanionQuota is a named sub-allotment ("solidário") of a class with its
// own remaining-quantity pool.
type CompanionQuota struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	ClassID  uuid.UUID `json:"class_id" gorm:"type:uuid;not null;index"`
	Label    string    `json:"label" gorm:"not null;size:255"`
	Quantity int       `json:"quantity" gorm:"not null;default:0;check:quantity >= 0"`
}

type SeatGroup struct {
	ID      uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	ClassID uuid.UUID `json:"class_id" gorm:"type:uuid;not null;index"`
	Label   string    `json:"label" gorm:"not null;size:255"`
}

type Seat struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	GroupID     uuid.UUID  `json:"group_id" gorm:"type:uuid;not null;index"`
	Label       string     `json:"label" gorm:"not null;size:64"`
	Status      string     `json:"status" gorm:"type:varchar(20);default:'AVAILABLE'"`
	Courtesy    bool       `json:"courtesy" gorm:"default:false"`
	LockHolder  *string    `json:"lock_holder" gorm:"size:255"`
	LockExpires *time.Time `json:"lock_expires"`
}

// PDV is a physical point-of-sale reseller selling outside the web
// storefront.
type PDV struct {
	ID   uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name string    `json:"name" gorm:"not null;size:255"`
}

// WebStock mirrors the storefront's remaining stock for a class/lot
// combination. The inventory ledger is responsible for keeping it
// synchronized after every lot adjustment.
type WebStock struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	ClassID  uuid.UUID `json:"class_id" gorm:"type:uuid;not null;index"`
	LotID    uuid.UUID `json:"lot_id" gorm:"type:uuid;not null;index"`
	Quantity int       `json:"quantity" gorm:"not null;default:0;check:quantity >= 0"`
}

// Ticket is the raw stored record as issued by the external checkout. The
// canonical view (resolved status and payment) is derived per read by the
// reconcile package, never stored.
type Ticket struct {
	Barcode        string          `json:"barcode" gorm:"primaryKey;size:64"`
	EventID        uuid.UUID       `json:"event_id" gorm:"type:uuid;not null;index"`
	ClassID        uuid.UUID       `json:"class_id" gorm:"type:uuid;not null;index"`
	LotID          uuid.UUID       `json:"lot_id" gorm:"type:uuid;not null;index"`
	SeatID         *uuid.UUID      `json:"seat_id" gorm:"type:uuid;index"`
	PDVID          *uuid.UUID      `json:"pdv_id" gorm:"type:uuid;index"`
	Terminal       string          `json:"terminal" gorm:"size:64"`
	Channel        Channel         `json:"channel" gorm:"type:varchar(8);not null"`
	Status         int             `json:"status" gorm:"not null;default:0"`
	PaymentCode    string          `json:"payment_code" gorm:"size:32"`
	Value          decimal.Decimal `json:"value" gorm:"type:numeric(12,2);not null"`
	Fee            decimal.Decimal `json:"fee" gorm:"type:numeric(12,2);not null;default:0"`
	HalfPrice      bool            `json:"half_price" gorm:"default:false"`
	CompanionLabel *string         `json:"companion_label" gorm:"size:255"`
	OrderID        *string         `json:"order_id" gorm:"size:64;index"`
	PurchasedAt    time.Time       `json:"purchased_at" gorm:"not null;index"`
}

// WebOrder is the storefront-side order a web ticket links to via its
// barcode. Its status vocabulary is independent of the POS one.
type WebOrder struct {
	ID            string    `json:"id" gorm:"primaryKey;size:64"`
	Status        int       `json:"status" gorm:"not null"`
	PaymentMethod string    `json:"payment_method" gorm:"size:32"`
	GatewayTxn    string    `json:"gateway_txn" gorm:"size:128"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName overrides keep the storage vocabulary stable for the external
// provisioning and checkout processes that share these tables.

func (Event) TableName() string          { return "events" }
func (Category) TableName() string       { return "categories" }
func (TicketClass) TableName() string    { return "ticket_classes" }
func (Lot) TableName() string            { return "lots" }
func (CompanionQuota) TableName() string { return "companion_quotas" }
func (SeatGroup) TableName() string      { return "seat_groups" }
func (Seat) TableName() string           { return "seats" }
func (PDV) TableName() string            { return "pdvs" }
func (WebStock) TableName() string       { return "web_stock" }
func (Ticket) TableName() string         { return "tickets" }
func (WebOrder) TableName() string       { return "web_orders" }
