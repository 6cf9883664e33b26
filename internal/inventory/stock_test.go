package inventory

import (
	"testing"

	"bilheteria/internal/catalog"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func lotsWithQuantities(quantities ...int) []catalog.Lot {
	lots := make([]catalog.Lot, len(quantities))
	for i, q := range quantities {
		lots[i].ID = uuid.New()
		lots[i].Priority = i + 1
		lots[i].Quantity = q
	}
	return lots
}

func TestCurrentLotIndex(t *testing.T) {
	tests := []struct {
		name       string
		quantities []int
		expected   int
	}{
		{"first lot has stock", []int{10, 5}, 0},
		{"first lot exhausted falls to second", []int{0, 10}, 1},
		{"all exhausted falls back to first", []int{0, 0, 0}, 0},
		{"middle lot current", []int{0, 0, 3, 7}, 2},
		{"single lot with stock", []int{4}, 0},
		{"single exhausted lot", []int{0}, 0},
		{"empty", nil, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, currentLotIndex(lotsWithQuantities(tt.quantities...)))
		})
	}
}

func TestResolveMirror(t *testing.T) {
	tests := []struct {
		name       string
		quantities []int
		idx        int
		quantity   int
		rolledOver bool
	}{
		{"adjusted lot still has stock", []int{7, 10}, 0, 7, false},
		{"exhausted lot rebases to next", []int{0, 10}, 0, 10, true},
		{"exhausted lot with empty successor rebases to zero", []int{0, 0}, 0, 0, true},
		{"exhausted last lot rebases to zero", []int{5, 0}, 1, 0, true},
		{"restock reflects directly", []int{0, 25}, 1, 25, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quantity, rolledOver := resolveMirror(lotsWithQuantities(tt.quantities...), tt.idx)
			assert.Equal(t, tt.quantity, quantity)
			assert.Equal(t, tt.rolledOver, rolledOver)
		})
	}
}

// A fully exhausted first lot makes the second lot current: selling against
// the first must be refused, selling against the second must be allowed.
func TestCurrentLotAfterExhaustion(t *testing.T) {
	lots := lotsWithQuantities(0, 10)

	current := currentLotIndex(lots)
	assert.Equal(t, 1, current)
	assert.Equal(t, 2, lots[current].Priority)
}

func TestValidateLotDecrement(t *testing.T) {
	lots := lotsWithQuantities(0, 10)
	mirrors := []catalog.WebStock{{Quantity: 10}}

	t.Run("decrement against non-current lot refused", func(t *testing.T) {
		err := validateLotDecrement(lots, lots[0].ID, -1, mirrors)
		assert.ErrorIs(t, err, ErrLotNotCurrent)
		assert.Equal(t, 0, lots[0].Quantity)
		assert.Equal(t, 10, lots[1].Quantity)
	})

	t.Run("current lot within stock allowed", func(t *testing.T) {
		assert.NoError(t, validateLotDecrement(lots, lots[1].ID, -10, mirrors))
	})

	t.Run("overdraw refused", func(t *testing.T) {
		err := validateLotDecrement(lots, lots[1].ID, -11, mirrors)
		assert.ErrorIs(t, err, ErrInsufficientStock)
	})

	t.Run("short storefront mirror refused", func(t *testing.T) {
		short := []catalog.WebStock{{Quantity: 3}}
		err := validateLotDecrement(lots, lots[1].ID, -5, short)
		assert.ErrorIs(t, err, ErrInsufficientStock)
	})

	t.Run("no lots", func(t *testing.T) {
		err := validateLotDecrement(nil, uuid.New(), -1, nil)
		assert.ErrorIs(t, err, ErrLotNotCurrent)
	})
}

func TestValidateQuotaAdjustment(t *testing.T) {
	assert.NoError(t, validateQuotaAdjustment(5, 3))
	assert.NoError(t, validateQuotaAdjustment(5, -5))
	assert.ErrorIs(t, validateQuotaAdjustment(5, -6), ErrInsufficientCompanionQuota)
}

func TestStockSyncEventPartitionKey(t *testing.T) {
	event := &StockSyncEvent{ClassID: "9f4c7a1e-0000-0000-0000-000000000001"}
	assert.Equal(t, event.ClassID, event.GetPartitionKey())
}
