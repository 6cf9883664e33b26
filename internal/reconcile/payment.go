package reconcile

import "strings"

// PaymentMethod is the canonical payment enum every report aggregates on.
type PaymentMethod string

const (
	PaymentCash    PaymentMethod = "CASH"
	PaymentCredit  PaymentMethod = "CREDIT"
	PaymentDebit   PaymentMethod = "DEBIT"
	PaymentPIX     PaymentMethod = "PIX"
	PaymentUnknown PaymentMethod = "UNKNOWN"
)

// NormalizePayment maps the heterogeneous channel codes onto the canonical
// enum. The storefront order's payment method, when present, takes precedence
// over the POS local code for the same ticket.
func NormalizePayment(r Row) PaymentMethod {
	if r.OrderPayment != nil && *r.OrderPayment != "" {
		return normalizeWebPayment(*r.OrderPayment)
	}
	return normalizePOSPayment(r.PaymentCode)
}

func normalizePOSPayment(code string) PaymentMethod {
	switch code {
	case "1":
		return PaymentCash
	case "2", "PagSeguro":
		return PaymentCredit
	case "3":
		return PaymentDebit
	case "4":
		return PaymentPIX
	default:
		return PaymentUnknown
	}
}

func normalizeWebPayment(method string) PaymentMethod {
	switch method {
	case "Dinheiro":
		return PaymentCash
	case "PagSeguro", "Crédito":
		return PaymentCredit
	case "Débito":
		return PaymentDebit
	case "PIX":
		return PaymentPIX
	default:
		return PaymentUnknown
	}
}

// DisplayPaymentLabel renames raw payment labels for the human-facing
// ledgers. A zero-value ticket always displays as COURTESY; anything not
// explicitly renamed passes through unchanged.
func DisplayPaymentLabel(r Row) string {
	if r.Value.IsZero() {
		return "COURTESY"
	}

	raw := r.PaymentCode
	if r.OrderPayment != nil && *r.OrderPayment != "" {
		raw = *r.OrderPayment
	}

	if raw == "PagSeguro" || strings.ToUpper(raw) == "CREDITO" {
		return "CREDIT CARD"
	}
	if strings.ToUpper(raw) == "DEBITO" {
		return "DEBIT"
	}
	return raw
}
