package database

import (
	"bilheteria/internal/catalog"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&catalog.Event{},
		&catalog.Category{},
		&catalog.TicketClass{},
		&catalog.Lot{},
		&catalog.CompanionQuota{},
		&catalog.SeatGroup{},
		&catalog.Seat{},
		&catalog.PDV{},
		&catalog.WebStock{},
		&catalog.Ticket{},
		&catalog.WebOrder{},
	)
}
