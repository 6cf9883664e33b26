package reconcile

// POS channel status codes as recorded by the terminals.
const (
	posAwaitingPayment = 0
	posApproved        = 1
	posApprovedAlt     = 2
	posRefunded        = 3
)

// Web storefront order status codes.
const (
	webAwaitingPayment = 1
	webApproved        = 5
	webRefunded        = 6
	webNotApproved     = 7
	webChargeback      = 8
	webExpired         = 11
	webVoided          = 13
	webAwaitingPix     = 21
)

// IsActive reports whether a ticket counts as a sale. The rule is
// channel-symmetric: the local status must be approved (1 or 2), and when the
// ticket links to a storefront order that order must itself be approved —
// regardless of what the local status says.
func IsActive(r Row) bool {
	if r.Status != posApproved && r.Status != posApprovedAlt {
		return false
	}
	if r.OrderStatus != nil && *r.OrderStatus != webApproved {
		return false
	}
	return true
}

// IsCancelled reports membership in the cancelled ledger. This is a distinct
// rule from !IsActive: awaiting-payment tickets are neither active nor
// cancelled.
func IsCancelled(r Row) bool {
	if r.Status == posRefunded {
		return true
	}
	if r.OrderStatus != nil {
		switch *r.OrderStatus {
		case webRefunded, webNotApproved, webChargeback, webExpired, webVoided:
			return true
		}
	}
	return false
}

// IsCourtesy reports whether the ticket is complimentary. Courtesy is defined
// purely by the zero value, orthogonal to active/cancelled.
func IsCourtesy(r Row) bool {
	return r.Value.IsZero()
}

// StatusLabel returns the human-facing status for the detailed and cancelled
// ledgers. The label vocabulary is channel-specific: a linked order's status
// governs web tickets, the local status governs POS-only tickets.
func StatusLabel(r Row) string {
	if r.OrderStatus != nil {
		switch *r.OrderStatus {
		case webAwaitingPayment:
			return "AWAITING PAYMENT"
		case webApproved:
			return "APPROVED"
		case webRefunded:
			return "REFUNDED"
		case webNotApproved:
			return "NOT APPROVED"
		case webAwaitingPix:
			return "AWAITING PIX"
		default:
			return "-"
		}
	}

	switch r.Status {
	case posAwaitingPayment:
		return "AWAITING PAYMENT"
	case posApproved, posApprovedAlt:
		return "APPROVED"
	case posRefunded:
		return "REFUNDED"
	default:
		return "-"
	}
}
