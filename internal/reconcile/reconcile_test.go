package reconcile

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func money(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

func TestIsActive(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		orderStatus *int
		want        bool
	}{
		{"pos approved 1, no order", 1, nil, true},
		{"pos approved 2, no order", 2, nil, true},
		{"pos awaiting payment", 0, nil, false},
		{"pos refunded", 3, nil, false},
		{"approved locally, order approved", 1, intPtr(5), true},
		{"approved locally, order refunded", 1, intPtr(6), false},
		{"approved locally, order awaiting payment", 2, intPtr(1), false},
		{"refunded locally, order approved", 3, intPtr(5), false},
		{"unknown local status", 9, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Row{Status: tt.status, OrderStatus: tt.orderStatus}
			assert.Equal(t, tt.want, IsActive(r))
		})
	}
}

func TestIsActiveIsPure(t *testing.T) {
	r := Row{Status: 1, OrderStatus: intPtr(5)}
	first := IsActive(r)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, IsActive(r))
	}
}

// Tickets with identical local status can diverge once one links to a
// non-approved storefront order.
func TestChannelAsymmetryExample(t *testing.T) {
	posTicket := Row{Channel: "POS", Status: 1, Value: money("50.00")}
	webTicket := Row{Channel: "WEB", Status: 1, Value: money("50.00"), OrderStatus: intPtr(6)}

	assert.True(t, IsActive(posTicket))
	assert.False(t, IsCancelled(posTicket))

	assert.False(t, IsActive(webTicket))
	assert.True(t, IsCancelled(webTicket))
}

func TestIsCancelled(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		orderStatus *int
		want        bool
	}{
		{"pos refunded", 3, nil, true},
		{"pos approved", 1, nil, false},
		{"pos awaiting payment is not cancelled", 0, nil, false},
		{"order refunded", 1, intPtr(6), true},
		{"order not approved", 1, intPtr(7), true},
		{"order chargeback", 1, intPtr(8), true},
		{"order expired", 1, intPtr(11), true},
		{"order voided", 1, intPtr(13), true},
		{"order approved", 1, intPtr(5), false},
		{"order awaiting pix", 1, intPtr(21), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Row{Status: tt.status, OrderStatus: tt.orderStatus}
			assert.Equal(t, tt.want, IsCancelled(r))
		})
	}
}

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		orderStatus *int
		want        string
	}{
		{"web awaiting payment", 1, intPtr(1), "AWAITING PAYMENT"},
		{"web approved", 1, intPtr(5), "APPROVED"},
		{"web refunded", 1, intPtr(6), "REFUNDED"},
		{"web not approved", 1, intPtr(7), "NOT APPROVED"},
		{"web awaiting pix", 1, intPtr(21), "AWAITING PIX"},
		{"web unknown", 1, intPtr(99), "-"},
		{"web label wins over local status", 3, intPtr(5), "APPROVED"},
		{"pos awaiting payment", 0, nil, "AWAITING PAYMENT"},
		{"pos approved 1", 1, nil, "APPROVED"},
		{"pos approved 2", 2, nil, "APPROVED"},
		{"pos refunded", 3, nil, "REFUNDED"},
		{"pos unknown", 42, nil, "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Row{Status: tt.status, OrderStatus: tt.orderStatus}
			assert.Equal(t, tt.want, StatusLabel(r))
		})
	}
}

func TestIsCourtesy(t *testing.T) {
	assert.True(t, IsCourtesy(Row{Value: decimal.Zero}))
	assert.False(t, IsCourtesy(Row{Value: money("0.01")}))

	// Courtesy is orthogonal to status.
	cancelled := Row{Status: 3, Value: decimal.Zero}
	assert.True(t, IsCourtesy(cancelled))
	assert.True(t, IsCancelled(cancelled))
}

func TestNormalizePayment(t *testing.T) {
	tests := []struct {
		name         string
		posCode      string
		orderPayment *string
		want         PaymentMethod
	}{
		{"pos cash", "1", nil, PaymentCash},
		{"pos credit", "2", nil, PaymentCredit},
		{"pos pagseguro", "PagSeguro", nil, PaymentCredit},
		{"pos debit", "3", nil, PaymentDebit},
		{"pos pix", "4", nil, PaymentPIX},
		{"pos unknown", "7", nil, PaymentUnknown},
		{"web cash", "", strPtr("Dinheiro"), PaymentCash},
		{"web credit", "", strPtr("Crédito"), PaymentCredit},
		{"web pagseguro", "", strPtr("PagSeguro"), PaymentCredit},
		{"web debit", "", strPtr("Débito"), PaymentDebit},
		{"web pix", "", strPtr("PIX"), PaymentPIX},
		{"web unknown", "", strPtr("Boleto"), PaymentUnknown},
		{"order method wins over pos code", "1", strPtr("PIX"), PaymentPIX},
		{"empty order method falls back to pos code", "3", strPtr(""), PaymentDebit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Row{PaymentCode: tt.posCode, OrderPayment: tt.orderPayment, Value: money("10.00")}
			assert.Equal(t, tt.want, NormalizePayment(r))
		})
	}
}

func TestDisplayPaymentLabel(t *testing.T) {
	tests := []struct {
		name         string
		value        string
		posCode      string
		orderPayment *string
		want         string
	}{
		{"courtesy wins regardless of code", "0.00", "PagSeguro", nil, "COURTESY"},
		{"credito renamed", "10.00", "CREDITO", nil, "CREDIT CARD"},
		{"pagseguro renamed", "10.00", "PagSeguro", nil, "CREDIT CARD"},
		{"debito renamed", "10.00", "DEBITO", nil, "DEBIT"},
		{"passthrough", "10.00", "Dinheiro", nil, "Dinheiro"},
		{"order label preferred", "10.00", "1", strPtr("PagSeguro"), "CREDIT CARD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Row{Value: money(tt.value), PaymentCode: tt.posCode, OrderPayment: tt.orderPayment}
			assert.Equal(t, tt.want, DisplayPaymentLabel(r))
		})
	}
}

func TestResolve(t *testing.T) {
	r := Row{
		Barcode:     "ABC123",
		Status:      1,
		PaymentCode: "4",
		Value:       money("80.00"),
	}

	ticket := Resolve(r)
	assert.True(t, ticket.Active)
	assert.False(t, ticket.Cancelled)
	assert.False(t, ticket.Courtesy)
	assert.Equal(t, "APPROVED", ticket.StatusLabel)
	assert.Equal(t, PaymentPIX, ticket.Payment)
	assert.Equal(t, "4", ticket.PaymentLabel)
}
