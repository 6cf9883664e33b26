package ledger

import (
	"sort"
	"strings"
	"time"

	"bilheteria/internal/reconcile"
	"bilheteria/internal/reports"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const dateLayout = "2006-01-02"

var collator = collate.New(language.BrazilianPortuguese, collate.IgnoreCase)

// sortedKeys flattens a distinct-value set in locale order for the
// filter-option lists.
func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return collator.CompareString(keys[i], keys[j]) < 0
	})
	return keys
}

// applyQuery narrows the canonical ticket stream. Search and discrete
// filters are mutually exclusive: a non-empty search string wins and the
// discrete filters are ignored entirely.
func applyQuery(tickets []reconcile.Ticket, p QueryParams) ([]reconcile.Ticket, error) {
	if strings.TrimSpace(p.Search) != "" {
		return searchTickets(tickets, p.Search), nil
	}
	return filterTickets(tickets, p)
}

// searchTickets matches a case-insensitive substring against PDV name,
// terminal id and barcode, combined with OR.
func searchTickets(tickets []reconcile.Ticket, query string) []reconcile.Ticket {
	q := strings.ToLower(strings.TrimSpace(query))

	matched := make([]reconcile.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if strings.Contains(strings.ToLower(pdvDisplay(t)), q) ||
			strings.Contains(strings.ToLower(t.Terminal), q) ||
			strings.Contains(strings.ToLower(t.Barcode), q) {
			matched = append(matched, t)
		}
	}
	return matched
}

// filterTickets applies the discrete filters: exact match on PDV name,
// terminal, status label and class name, inclusive range on purchase date.
func filterTickets(tickets []reconcile.Ticket, p QueryParams) ([]reconcile.Ticket, error) {
	var start, end time.Time
	if p.DateStart != "" {
		parsed, err := time.ParseInLocation(dateLayout, p.DateStart, time.Local)
		if err != nil {
			return nil, ErrInvalidDateRange
		}
		start = parsed
	}
	if p.DateEnd != "" {
		parsed, err := time.ParseInLocation(dateLayout, p.DateEnd, time.Local)
		if err != nil {
			return nil, ErrInvalidDateRange
		}
		end = parsed.AddDate(0, 0, 1)
	}

	matched := make([]reconcile.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if p.PDV != "" && pdvDisplay(t) != p.PDV {
			continue
		}
		if p.Terminal != "" && t.Terminal != p.Terminal {
			continue
		}
		if p.Status != "" && t.StatusLabel != p.Status {
			continue
		}
		if p.Class != "" && t.ClassName != p.Class {
			continue
		}
		if !start.IsZero() && t.PurchasedAt.Before(start) {
			continue
		}
		if !end.IsZero() && !t.PurchasedAt.Before(end) {
			continue
		}
		matched = append(matched, t)
	}
	return matched, nil
}

// paginate slices rows 1-indexed as [(page-1)*rows, page*rows) and returns
// the total page count.
func paginate(rows []Row, perPage, page int) ([]Row, int) {
	totalPages := (len(rows) + perPage - 1) / perPage

	start := (page - 1) * perPage
	if start >= len(rows) {
		return []Row{}, totalPages
	}
	end := start + perPage
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end], totalPages
}

func pdvDisplay(t reconcile.Ticket) string {
	if t.PDVName != nil && *t.PDVName != "" {
		return *t.PDVName
	}
	return "Web"
}

func classDisplay(t reconcile.Ticket) string {
	if t.Numbered && t.SeatLabel != nil && *t.SeatLabel != "" {
		return t.ClassName + " - " + *t.SeatLabel
	}
	return t.ClassName
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

// buildRow formats one ticket for display; amounts and timestamps localize
// only here, at the output boundary.
func buildRow(t reconcile.Ticket) Row {
	return Row{
		PurchasedAt: reports.DateTimeBR(t.PurchasedAt),
		PDV:         pdvDisplay(t),
		Terminal:    t.Terminal,
		OrderID:     orDash(t.OrderID),
		Barcode:     t.Barcode,
		Status:      t.StatusLabel,
		Class:       classDisplay(t),
		Value:       reports.Currency(t.Value),
		Payment:     t.PaymentLabel,
		GatewayTxn:  orDash(t.GatewayTxn),
	}
}

func buildRows(tickets []reconcile.Ticket) []Row {
	rows := make([]Row, len(tickets))
	for i, t := range tickets {
		rows[i] = buildRow(t)
	}
	return rows
}
