package main

import (
	"fmt"
	"log"
	"time"

	"bilheteria/internal/catalog"
	"bilheteria/internal/shared/config"
	"bilheteria/internal/shared/database"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting Bilheteria Database Seeder...")

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in reverse dependency order
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"tickets",
		"web_orders",
		"web_stock",
		"seats",
		"seat_groups",
		"companion_quotas",
		"lots",
		"ticket_classes",
		"categories",
		"pdvs",
		"events",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Exec("SET CONSTRAINTS ALL DEFERRED").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to defer constraints: %w", err)
	}

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	if err := tx.Exec("SET CONSTRAINTS ALL IMMEDIATE").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to restore constraints: %w", err)
	}

	return tx.Commit().Error
}

// SeedAll seeds a demo event with both sale channels exercised
func (s *Seeder) SeedAll() error {
	event := catalog.Event{
		ID:        uuid.New(),
		Name:      "Festival da Serra 2026",
		Venue:     "Parque de Exposições",
		City:      "Belo Horizonte",
		DateTime:  time.Date(2026, 10, 17, 20, 0, 0, 0, time.Local),
		SaleStart: time.Date(2026, 7, 1, 0, 0, 0, 0, time.Local),
		SaleEnd:   time.Date(2026, 10, 17, 18, 0, 0, 0, time.Local),
	}
	if err := s.db.PostgreSQL.Create(&event).Error; err != nil {
		return fmt.Errorf("failed to seed event: %w", err)
	}
	fmt.Printf("  Event: %s\n", event.Name)

	pista := catalog.Category{ID: uuid.New(), EventID: event.ID, Name: "Pista"}
	arquibancada := catalog.Category{ID: uuid.New(), EventID: event.ID, Name: "Arquibancada"}
	for _, category := range []*catalog.Category{&pista, &arquibancada} {
		if err := s.db.PostgreSQL.Create(category).Error; err != nil {
			return fmt.Errorf("failed to seed category: %w", err)
		}
	}

	pistaInteira := catalog.TicketClass{
		ID: uuid.New(), EventID: event.ID, CategoryID: &pista.ID,
		Name: "Pista Inteira", HalfPriceAllowed: true,
	}
	cadeiras := catalog.TicketClass{
		ID: uuid.New(), EventID: event.ID, CategoryID: &arquibancada.ID,
		Name: "Cadeiras Numeradas", Numbered: true,
	}
	camarote := catalog.TicketClass{
		ID: uuid.New(), EventID: event.ID, Name: "Camarote",
	}
	for _, class := range []*catalog.TicketClass{&pistaInteira, &cadeiras, &camarote} {
		if err := s.db.PostgreSQL.Create(class).Error; err != nil {
			return fmt.Errorf("failed to seed class: %w", err)
		}
		fmt.Printf("  Class: %s\n", class.Name)
	}

	lots := []catalog.Lot{
		{ID: uuid.New(), ClassID: pistaInteira.ID, Priority: 1, Quantity: 0, Price: decimal.RequireFromString("80.00")},
		{ID: uuid.New(), ClassID: pistaInteira.ID, Priority: 2, Quantity: 350, Price: decimal.RequireFromString("100.00")},
		{ID: uuid.New(), ClassID: cadeiras.ID, Priority: 1, Quantity: 48, Price: decimal.RequireFromString("150.00")},
		{ID: uuid.New(), ClassID: camarote.ID, Priority: 1, Quantity: 60, Price: decimal.RequireFromString("300.00")},
	}
	for i := range lots {
		if err := s.db.PostgreSQL.Create(&lots[i]).Error; err != nil {
			return fmt.Errorf("failed to seed lot: %w", err)
		}
	}

	quota := catalog.CompanionQuota{
		ID: uuid.New(), ClassID: pistaInteira.ID, Label: "Solidário", Quantity: 40,
	}
	if err := s.db.PostgreSQL.Create(&quota).Error; err != nil {
		return fmt.Errorf("failed to seed companion quota: %w", err)
	}

	if err := s.seedSeats(cadeiras.ID); err != nil {
		return err
	}

	for i := range lots {
		stock := catalog.WebStock{
			ID: uuid.New(), ClassID: lots[i].ClassID, LotID: lots[i].ID, Quantity: lots[i].Quantity,
		}
		if err := s.db.PostgreSQL.Create(&stock).Error; err != nil {
			return fmt.Errorf("failed to seed web stock: %w", err)
		}
	}

	pdvs := []catalog.PDV{
		{ID: uuid.New(), Name: "Loja Centro"},
		{ID: uuid.New(), Name: "Quiosque Shopping"},
	}
	for i := range pdvs {
		if err := s.db.PostgreSQL.Create(&pdvs[i]).Error; err != nil {
			return fmt.Errorf("failed to seed pdv: %w", err)
		}
	}

	return s.seedTickets(event.ID, pistaInteira.ID, lots[1], pdvs)
}

func (s *Seeder) seedSeats(classID uuid.UUID) error {
	for _, row := range []string{"Fila A", "Fila B"} {
		group := catalog.SeatGroup{ID: uuid.New(), ClassID: classID, Label: row}
		if err := s.db.PostgreSQL.Create(&group).Error; err != nil {
			return fmt.Errorf("failed to seed seat group: %w", err)
		}
		for n := 1; n <= 24; n++ {
			seat := catalog.Seat{
				ID:      uuid.New(),
				GroupID: group.ID,
				Label:   fmt.Sprintf("%s%d", row[len(row)-1:], n),
				Status:  catalog.SeatAvailable,
			}
			if err := s.db.PostgreSQL.Create(&seat).Error; err != nil {
				return fmt.Errorf("failed to seed seat: %w", err)
			}
		}
	}
	return nil
}

// seedTickets issues a mix of POS and web tickets, including a cancelled web
// order and a courtesy
func (s *Seeder) seedTickets(eventID, classID uuid.UUID, lot catalog.Lot, pdvs []catalog.PDV) error {
	base := time.Now().AddDate(0, 0, -7)

	orders := []catalog.WebOrder{
		{ID: "ORD-1001", Status: 5, PaymentMethod: "PIX", GatewayTxn: "TXN-8801"},
		{ID: "ORD-1002", Status: 6, PaymentMethod: "Crédito", GatewayTxn: "TXN-8802"},
	}
	for i := range orders {
		if err := s.db.PostgreSQL.Create(&orders[i]).Error; err != nil {
			return fmt.Errorf("failed to seed web order: %w", err)
		}
	}

	price := decimal.RequireFromString("100.00")
	tickets := []catalog.Ticket{
		{
			Barcode: "POS0001", EventID: eventID, ClassID: classID, LotID: lot.ID,
			PDVID: &pdvs[0].ID, Terminal: "T-01", Channel: catalog.ChannelPOS,
			Status: 1, PaymentCode: "1", Value: price, PurchasedAt: base,
		},
		{
			Barcode: "POS0002", EventID: eventID, ClassID: classID, LotID: lot.ID,
			PDVID: &pdvs[1].ID, Terminal: "T-02", Channel: catalog.ChannelPOS,
			Status: 2, PaymentCode: "3", Value: price, PurchasedAt: base.AddDate(0, 0, 1),
		},
		{
			Barcode: "POS0003", EventID: eventID, ClassID: classID, LotID: lot.ID,
			PDVID: &pdvs[0].ID, Terminal: "T-01", Channel: catalog.ChannelPOS,
			Status: 1, PaymentCode: "1", Value: decimal.Zero, PurchasedAt: base.AddDate(0, 0, 2),
		},
		{
			Barcode: "WEB0001", EventID: eventID, ClassID: classID, LotID: lot.ID,
			Terminal: "WEB", Channel: catalog.ChannelWeb, Status: 1,
			OrderID: &orders[0].ID, Value: price, PurchasedAt: base.AddDate(0, 0, 3),
		},
		{
			Barcode: "WEB0002", EventID: eventID, ClassID: classID, LotID: lot.ID,
			Terminal: "WEB", Channel: catalog.ChannelWeb, Status: 1,
			OrderID: &orders[1].ID, Value: price, PurchasedAt: base.AddDate(0, 0, 4),
		},
	}
	for i := range tickets {
		if err := s.db.PostgreSQL.Create(&tickets[i]).Error; err != nil {
			return fmt.Errorf("failed to seed ticket: %w", err)
		}
	}
	fmt.Printf("  Tickets: %d\n", len(tickets))

	return nil
}
