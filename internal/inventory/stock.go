package inventory

import (
	"bilheteria/internal/catalog"

	"github.com/google/uuid"
)

// currentLotIndex finds the current lot within lots ordered by priority: the
// first with quantity > 0, or the first lot when every one is exhausted.
// Returns -1 for an empty slice.
func currentLotIndex(lots []catalog.Lot) int {
	for i := range lots {
		if lots[i].Quantity > 0 {
			return i
		}
	}
	if len(lots) > 0 {
		return 0
	}
	return -1
}

// validateLotDecrement decides whether a consumption delta may be applied to
// lotID: it must be the current lot, and both the lot and every storefront
// mirror row must still cover the delta. lots must be ordered by priority;
// delta is negative.
func validateLotDecrement(lots []catalog.Lot, lotID uuid.UUID, delta int, mirrors []catalog.WebStock) error {
	current := currentLotIndex(lots)
	if current < 0 || lots[current].ID != lotID {
		return ErrLotNotCurrent
	}
	if lots[current].Quantity == 0 || -delta > lots[current].Quantity {
		return ErrInsufficientStock
	}
	for _, m := range mirrors {
		if -delta > m.Quantity {
			return ErrInsufficientStock
		}
	}
	return nil
}

// validateQuotaAdjustment decides whether a companion-quota delta may be
// applied to a pool holding quantity.
func validateQuotaAdjustment(quantity, delta int) error {
	if delta < 0 && quantity < -delta {
		return ErrInsufficientCompanionQuota
	}
	return nil
}

// resolveMirror computes the quantity the storefront mirror should carry
// after lots[idx] was adjusted. When the adjusted lot hits exactly zero the
// mirror rebases to the next lot's quantity if that lot already has stock,
// otherwise to zero; this asymmetry with the seat/quota paths is intentional.
func resolveMirror(lots []catalog.Lot, idx int) (quantity int, rolledOver bool) {
	if lots[idx].Quantity == 0 {
		if idx+1 < len(lots) && lots[idx+1].Quantity > 0 {
			return lots[idx+1].Quantity, true
		}
		return 0, true
	}
	return lots[idx].Quantity, false
}
