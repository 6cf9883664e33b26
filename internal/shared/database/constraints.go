package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds database constraints the inventory ledger's
// serialization model depends on
func MigrateConstraints(db *gorm.DB) error {
	// One mirrored stock record per class/lot combination
	err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS unique_web_stock_class_lot
		ON web_stock (class_id, lot_id);
	`).Error
	if err != nil {
		return err
	}

	// Lot ordering reads always scan class lots by priority
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_lots_class_priority
		ON lots (class_id, priority);
	`).Error
	if err != nil {
		return err
	}

	// Ledger and report reads scan tickets per event in purchase order
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_tickets_event_purchased
		ON tickets (event_id, purchased_at);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
