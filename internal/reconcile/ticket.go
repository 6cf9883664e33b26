package reconcile

import (
	"time"

	"bilheteria/internal/catalog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Row is the flat joined projection of a stored ticket with its linked web
// order and catalog context, exactly as read from storage. Reports and the
// ledger query engine both stream Rows and resolve them here; the canonical
// view is never stored.
type Row struct {
	Barcode        string          `json:"barcode"`
	EventID        uuid.UUID       `json:"event_id"`
	ClassID        uuid.UUID       `json:"class_id"`
	ClassName      string          `json:"class_name"`
	CategoryName   *string         `json:"category_name"`
	Numbered       bool            `json:"numbered"`
	LotID          uuid.UUID       `json:"lot_id"`
	LotPriority    int             `json:"lot_priority"`
	SeatID         *uuid.UUID      `json:"seat_id"`
	SeatLabel      *string         `json:"seat_label"`
	GroupLabel     *string         `json:"group_label"`
	PDVName        *string         `json:"pdv_name"`
	Terminal       string          `json:"terminal"`
	Channel        catalog.Channel `json:"channel"`
	Status         int             `json:"status"`
	PaymentCode    string          `json:"payment_code"`
	Value          decimal.Decimal `json:"value"`
	Fee            decimal.Decimal `json:"fee"`
	HalfPrice      bool            `json:"half_price"`
	CompanionLabel *string         `json:"companion_label"`
	OrderID        *string         `json:"order_id"`
	OrderStatus    *int            `json:"order_status"`
	OrderPayment   *string         `json:"order_payment"`
	GatewayTxn     *string         `json:"gateway_txn"`
	PurchasedAt    time.Time       `json:"purchased_at"`
}

// Ticket is the canonical per-ticket view every report consumes: the raw row
// plus the resolved status, payment method and human-facing labels.
type Ticket struct {
	Row

	Active       bool          `json:"active"`
	Cancelled    bool          `json:"cancelled"`
	Courtesy     bool          `json:"courtesy"`
	StatusLabel  string        `json:"status_label"`
	Payment      PaymentMethod `json:"payment"`
	PaymentLabel string        `json:"payment_label"`
}

// Resolve derives the canonical view of a raw row. It is a pure function:
// two rows with identical inputs always resolve identically.
func Resolve(r Row) Ticket {
	return Ticket{
		Row:          r,
		Active:       IsActive(r),
		Cancelled:    IsCancelled(r),
		Courtesy:     IsCourtesy(r),
		StatusLabel:  StatusLabel(r),
		Payment:      NormalizePayment(r),
		PaymentLabel: DisplayPaymentLabel(r),
	}
}

// ResolveAll resolves a batch of rows in storage order.
func ResolveAll(rows []Row) []Ticket {
	tickets := make([]Ticket, len(rows))
	for i, r := range rows {
		tickets[i] = Resolve(r)
	}
	return tickets
}
