package reports

import (
	"context"
	"fmt"

	"bilheteria/internal/reconcile"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	GetTicketRows(ctx context.Context, eventID uuid.UUID) ([]reconcile.Row, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new reports repository instance
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// GetTicketRows streams the flat joined projection every report folds over:
// each stored ticket with its linked web order and catalog context, in
// purchase order.
func (r *repository) GetTicketRows(ctx context.Context, eventID uuid.UUID) ([]reconcile.Row, error) {
	var rows []reconcile.Row

	err := r.db.WithContext(ctx).
		Table("tickets t").
		Select(`t.barcode, t.event_id, t.class_id, c.name AS class_name, cat.name AS category_name,
			c.numbered, t.lot_id, l.priority AS lot_priority, t.seat_id, s.label AS seat_label,
			sg.label AS group_label, p.name AS pdv_name, t.terminal, t.channel, t.status,
			t.payment_code, t.value, t.fee, t.half_price, t.companion_label, t.order_id,
			o.status AS order_status, o.payment_method AS order_payment, o.gateway_txn, t.purchased_at`).
		Joins("JOIN ticket_classes c ON c.id = t.class_id").
		Joins("LEFT JOIN categories cat ON cat.id = c.category_id").
		Joins("JOIN lots l ON l.id = t.lot_id").
		Joins("LEFT JOIN seats s ON s.id = t.seat_id").
		Joins("LEFT JOIN seat_groups sg ON sg.id = s.group_id").
		Joins("LEFT JOIN pdvs p ON p.id = t.pdv_id").
		Joins("LEFT JOIN web_orders o ON o.id = t.order_id").
		Where("t.event_id = ?", eventID).
		Order("t.purchased_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket rows: %w", err)
	}

	return rows, nil
}
