package inventory

import (
	"context"
	"errors"
	"fmt"

	"bilheteria/internal/catalog"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository performs the ledger's conditional writes. Every operation runs
// in a transaction that locks its serialization key (the class's lot rows,
// the seat rows, or the quota row) with FOR UPDATE, so the stock check and
// the subsequent write are atomic; adjustments for different keys do not
// block each other.
type Repository interface {
	AdjustLotStock(ctx context.Context, delta int, lotID, classID uuid.UUID) (*AdjustmentResult, error)
	SetSeatAvailability(ctx context.Context, seatIDs []uuid.UUID, lotID, classID uuid.UUID, available bool) (*AdjustmentResult, error)
	AdjustCompanionQuota(ctx context.Context, delta int, classID uuid.UUID, label string) (*QuotaResult, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// lockForUpdate appends a row-level FOR UPDATE clause to the query.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

func (r *repository) AdjustLotStock(ctx context.Context, delta int, lotID, classID uuid.UUID) (*AdjustmentResult, error) {
	var result *AdjustmentResult

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock every lot of the class; the current-lot decision must not
		// move under us.
		var lots []catalog.Lot
		err := lockForUpdate(tx).
			Where("class_id = ?", classID).
			Order("priority ASC").
			Find(&lots).Error
		if err != nil {
			return fmt.Errorf("failed to lock lots: %w", err)
		}
		if len(lots) == 0 {
			return ErrLotNotFound
		}

		target := -1
		for i := range lots {
			if lots[i].ID == lotID {
				target = i
				break
			}
		}
		if target == -1 {
			return ErrLotNotFound
		}

		// 2. Consumption must draw from the current lot and never drive it
		// below zero; the storefront mirror must also still cover the delta.
		if delta < 0 {
			var mirrors []catalog.WebStock
			err = lockForUpdate(tx).
				Where("class_id = ? AND lot_id = ?", classID, lotID).
				Find(&mirrors).Error
			if err != nil {
				return fmt.Errorf("failed to lock storefront stock: %w", err)
			}
			if err := validateLotDecrement(lots, lotID, delta, mirrors); err != nil {
				return err
			}
			target = currentLotIndex(lots)
		}

		// 3. Apply the delta.
		lots[target].Quantity += delta
		if lots[target].Quantity < 0 {
			return ErrInsufficientStock
		}
		err = tx.Model(&catalog.Lot{}).
			Where("id = ?", lots[target].ID).
			Update("quantity", lots[target].Quantity).Error
		if err != nil {
			return fmt.Errorf("failed to update lot quantity: %w", err)
		}

		// 4. Resolve the mirrored quantity (rebasing to the next lot on an
		// exact-zero rollover) and write it to every storefront stock record
		// of the class.
		mirrored, rolledOver := resolveMirror(lots, target)
		err = tx.Model(&catalog.WebStock{}).
			Where("class_id = ?", classID).
			Update("quantity", mirrored).Error
		if err != nil {
			return fmt.Errorf("failed to sync storefront stock: %w", err)
		}

		eventID, err := classEventID(tx, classID)
		if err != nil {
			return err
		}

		result = &AdjustmentResult{
			EventID:          eventID,
			ClassID:          classID,
			LotID:            lots[target].ID,
			LotQuantity:      lots[target].Quantity,
			MirroredQuantity: mirrored,
			RolledOver:       rolledOver,
		}
		return nil
	})

	return result, err
}

func (r *repository) SetSeatAvailability(ctx context.Context, seatIDs []uuid.UUID, lotID, classID uuid.UUID, available bool) (*AdjustmentResult, error) {
	var result *AdjustmentResult

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var seats []catalog.Seat
		err := lockForUpdate(tx).
			Where("id IN ?", seatIDs).
			Find(&seats).Error
		if err != nil {
			return fmt.Errorf("failed to lock seats: %w", err)
		}
		if len(seats) != len(seatIDs) {
			return ErrSeatsNotFound
		}

		var lot catalog.Lot
		err = lockForUpdate(tx).
			Where("id = ? AND class_id = ?", lotID, classID).
			First(&lot).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrLotNotFound
			}
			return fmt.Errorf("failed to lock lot: %w", err)
		}

		delta := len(seats)
		if !available {
			delta = -delta
		}
		if lot.Quantity+delta < 0 {
			return ErrInsufficientStock
		}

		// Flip the seats; releasing a seat clears its lock holder and expiry.
		updates := map[string]interface{}{
			"status": catalog.SeatUnavailable,
		}
		if available {
			updates["status"] = catalog.SeatAvailable
			updates["lock_holder"] = nil
			updates["lock_expires"] = nil
		}
		err = tx.Model(&catalog.Seat{}).Where("id IN ?", seatIDs).Updates(updates).Error
		if err != nil {
			return fmt.Errorf("failed to update seats: %w", err)
		}

		lot.Quantity += delta
		err = tx.Model(&catalog.Lot{}).
			Where("id = ?", lot.ID).
			Update("quantity", lot.Quantity).Error
		if err != nil {
			return fmt.Errorf("failed to update lot quantity: %w", err)
		}

		// Seats carry no rollover concept: the mirror moves by the same
		// delta, never rebases.
		var mirrors []catalog.WebStock
		err = lockForUpdate(tx).
			Where("class_id = ? AND lot_id = ?", classID, lotID).
			Find(&mirrors).Error
		if err != nil {
			return fmt.Errorf("failed to lock storefront stock: %w", err)
		}
		mirrored := lot.Quantity
		for _, m := range mirrors {
			if m.Quantity+delta < 0 {
				return ErrInsufficientStock
			}
			mirrored = m.Quantity + delta
		}
		if len(mirrors) > 0 {
			err = tx.Model(&catalog.WebStock{}).
				Where("class_id = ? AND lot_id = ?", classID, lotID).
				Update("quantity", gorm.Expr("quantity + ?", delta)).Error
			if err != nil {
				return fmt.Errorf("failed to sync storefront stock: %w", err)
			}
		}

		eventID, err := classEventID(tx, classID)
		if err != nil {
			return err
		}

		result = &AdjustmentResult{
			EventID:          eventID,
			ClassID:          classID,
			LotID:            lot.ID,
			LotQuantity:      lot.Quantity,
			MirroredQuantity: mirrored,
			SeatsChanged:     len(seats),
		}
		return nil
	})

	return result, err
}

func (r *repository) AdjustCompanionQuota(ctx context.Context, delta int, classID uuid.UUID, label string) (*QuotaResult, error) {
	var result *QuotaResult

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var quota catalog.CompanionQuota
		err := lockForUpdate(tx).
			Where("class_id = ? AND label = ?", classID, label).
			First(&quota).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrQuotaNotFound
			}
			return fmt.Errorf("failed to lock companion quota: %w", err)
		}

		if err := validateQuotaAdjustment(quota.Quantity, delta); err != nil {
			return err
		}

		quota.Quantity += delta
		err = tx.Model(&catalog.CompanionQuota{}).
			Where("id = ?", quota.ID).
			Update("quantity", quota.Quantity).Error
		if err != nil {
			return fmt.Errorf("failed to update companion quota: %w", err)
		}

		eventID, err := classEventID(tx, classID)
		if err != nil {
			return err
		}

		result = &QuotaResult{
			EventID:  eventID,
			ClassID:  classID,
			Label:    label,
			Quantity: quota.Quantity,
		}
		return nil
	})

	return result, err
}

// classEventID resolves the owning event inside the transaction so callers
// can invalidate that event's cached reports.
func classEventID(tx *gorm.DB, classID uuid.UUID) (uuid.UUID, error) {
	var class struct {
		EventID uuid.UUID `gorm:"column:event_id"`
	}
	err := tx.Table("ticket_classes").
		Select("event_id").
		Where("id = ?", classID).
		First(&class).Error
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to resolve class event: %w", err)
	}
	return class.EventID, nil
}
