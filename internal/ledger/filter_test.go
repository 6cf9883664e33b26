package ledger

import (
	"fmt"
	"testing"
	"time"

	"bilheteria/internal/catalog"
	"bilheteria/internal/reconcile"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ticket(barcode, terminal string, pdv *string, purchasedAt time.Time) reconcile.Ticket {
	return reconcile.Resolve(reconcile.Row{
		Barcode:     barcode,
		ClassName:   "Pista",
		Terminal:    terminal,
		PDVName:     pdv,
		Channel:     catalog.ChannelPOS,
		Status:      1,
		PaymentCode: "1",
		Value:       decimal.RequireFromString("50.00"),
		PurchasedAt: purchasedAt,
	})
}

func strPtr(s string) *string { return &s }

func fixtureTickets() []reconcile.Ticket {
	base := time.Date(2026, 8, 10, 12, 0, 0, 0, time.Local)
	return []reconcile.Ticket{
		ticket("AAA111", "T-01", strPtr("Loja Centro"), base),
		ticket("BBB222", "T-02", strPtr("Loja Centro"), base.AddDate(0, 0, 1)),
		ticket("CCC333", "T-03", strPtr("Aeroporto"), base.AddDate(0, 0, 2)),
		ticket("DDD444", "WEB", nil, base.AddDate(0, 0, 3)),
	}
}

func TestSearchMatchesPDVTerminalOrBarcode(t *testing.T) {
	tickets := fixtureTickets()

	byPDV := searchTickets(tickets, "centro")
	assert.Len(t, byPDV, 2)

	byTerminal := searchTickets(tickets, "t-03")
	require.Len(t, byTerminal, 1)
	assert.Equal(t, "CCC333", byTerminal[0].Barcode)

	byBarcode := searchTickets(tickets, "dd444")
	require.Len(t, byBarcode, 1)
	assert.Equal(t, "DDD444", byBarcode[0].Barcode)

	byPseudoPDV := searchTickets(tickets, "web")
	require.Len(t, byPseudoPDV, 1)
	assert.Equal(t, "DDD444", byPseudoPDV[0].Barcode)
}

func TestSearchOverridesDiscreteFilters(t *testing.T) {
	tickets := fixtureTickets()

	withFilters, err := applyQuery(tickets, QueryParams{Search: "centro", PDV: "Aeroporto", Terminal: "T-03"})
	require.NoError(t, err)
	searchOnly, err := applyQuery(tickets, QueryParams{Search: "centro"})
	require.NoError(t, err)

	assert.Equal(t, searchOnly, withFilters)
}

func TestDiscreteFilters(t *testing.T) {
	tickets := fixtureTickets()

	byPDV, err := filterTickets(tickets, QueryParams{PDV: "Aeroporto"})
	require.NoError(t, err)
	require.Len(t, byPDV, 1)
	assert.Equal(t, "CCC333", byPDV[0].Barcode)

	byTerminal, err := filterTickets(tickets, QueryParams{Terminal: "T-01"})
	require.NoError(t, err)
	require.Len(t, byTerminal, 1)

	byStatus, err := filterTickets(tickets, QueryParams{Status: "APPROVED"})
	require.NoError(t, err)
	assert.Len(t, byStatus, 4)
}

func TestDateRangeIsInclusive(t *testing.T) {
	tickets := fixtureTickets()

	matched, err := filterTickets(tickets, QueryParams{DateStart: "2026-08-11", DateEnd: "2026-08-12"})
	require.NoError(t, err)
	require.Len(t, matched, 2)
	assert.Equal(t, "BBB222", matched[0].Barcode)
	assert.Equal(t, "CCC333", matched[1].Barcode)
}

func TestInvalidDateFails(t *testing.T) {
	_, err := filterTickets(fixtureTickets(), QueryParams{DateStart: "11/08/2026"})
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestPageConcatenationReproducesFullSet(t *testing.T) {
	tickets := make([]reconcile.Ticket, 0, 23)
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.Local)
	for i := 0; i < 23; i++ {
		tickets = append(tickets, ticket(fmt.Sprintf("BC%03d", i), "T-01", strPtr("Loja Centro"), base.Add(time.Duration(i)*time.Hour)))
	}
	full := buildRows(tickets)

	const perPage = 5
	var pages []Row
	page := 1
	for {
		slice, totalPages := paginate(full, perPage, page)
		pages = append(pages, slice...)
		if page >= totalPages {
			assert.Equal(t, 5, totalPages)
			break
		}
		page++
	}

	assert.Equal(t, full, pages)
}

func TestPaginateBeyondLastPage(t *testing.T) {
	full := buildRows(fixtureTickets())

	slice, totalPages := paginate(full, 2, 9)
	assert.Empty(t, slice)
	assert.Equal(t, 2, totalPages)
}

func TestPaginationRequiresBothParams(t *testing.T) {
	_, _, ok := QueryParams{Rows: "10"}.pagination()
	assert.False(t, ok)

	_, _, ok = QueryParams{Rows: "10", Page: "abc"}.pagination()
	assert.False(t, ok)

	rows, page, ok := QueryParams{Rows: "10", Page: "2"}.pagination()
	assert.True(t, ok)
	assert.Equal(t, 10, rows)
	assert.Equal(t, 2, page)
}

func TestBuildRowFormatting(t *testing.T) {
	seat := "A12"
	orderID := "ORD-77"
	orderStatus := 5
	gateway := "TXN-123"
	row := buildRow(reconcile.Resolve(reconcile.Row{
		Barcode:      "AAA111",
		ClassName:    "Cadeiras",
		Numbered:     true,
		SeatLabel:    &seat,
		Terminal:     "WEB",
		Channel:      catalog.ChannelWeb,
		Status:       1,
		OrderID:      &orderID,
		OrderStatus:  &orderStatus,
		OrderPayment: strPtr("PIX"),
		GatewayTxn:   &gateway,
		Value:        decimal.RequireFromString("80.00"),
		PurchasedAt:  time.Date(2026, 8, 10, 14, 30, 0, 0, time.Local),
	}))

	assert.Equal(t, "10/08/2026 14:30", row.PurchasedAt)
	assert.Equal(t, "Web", row.PDV)
	assert.Equal(t, "ORD-77", row.OrderID)
	assert.Equal(t, "APPROVED", row.Status)
	assert.Equal(t, "Cadeiras - A12", row.Class)
	assert.Equal(t, "R$ 80,00", row.Value)
	assert.Equal(t, "PIX", row.Payment)
	assert.Equal(t, "TXN-123", row.GatewayTxn)
}

func TestBuildRowDashesForMissingFields(t *testing.T) {
	row := buildRow(fixtureTickets()[0])

	assert.Equal(t, "-", row.OrderID)
	assert.Equal(t, "-", row.GatewayTxn)
	assert.Equal(t, "Loja Centro", row.PDV)
	assert.Equal(t, "Pista", row.Class)
}
