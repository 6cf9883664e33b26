package reports

import (
	"testing"
	"time"

	"bilheteria/internal/catalog"
	"bilheteria/internal/reconcile"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rowOpt func(*reconcile.Row)

func withClass(name string) rowOpt {
	return func(r *reconcile.Row) { r.ClassName = name }
}

func withCategory(name string) rowOpt {
	return func(r *reconcile.Row) { r.CategoryName = &name }
}

func withValue(v string) rowOpt {
	return func(r *reconcile.Row) { r.Value = decimal.RequireFromString(v) }
}

func withStatus(status int) rowOpt {
	return func(r *reconcile.Row) { r.Status = status }
}

func withPDV(name string) rowOpt {
	return func(r *reconcile.Row) { r.PDVName = &name }
}

func withWebOrder(id string, status int) rowOpt {
	return func(r *reconcile.Row) {
		r.Channel = catalog.ChannelWeb
		r.OrderID = &id
		r.OrderStatus = &status
	}
}

func withPurchasedAt(t time.Time) rowOpt {
	return func(r *reconcile.Row) { r.PurchasedAt = t }
}

// posTicket builds an approved POS ticket and applies the given overrides.
func posTicket(opts ...rowOpt) reconcile.Ticket {
	row := reconcile.Row{
		Barcode:     uuid.NewString(),
		ClassName:   "Pista",
		Terminal:    "T-01",
		Channel:     catalog.ChannelPOS,
		Status:      1,
		PaymentCode: "1",
		Value:       decimal.RequireFromString("50.00"),
		PurchasedAt: time.Date(2026, 8, 10, 14, 0, 0, 0, time.Local),
	}
	for _, opt := range opts {
		opt(&row)
	}
	return reconcile.Resolve(row)
}

func repeatTickets(n int, opts ...rowOpt) []reconcile.Ticket {
	tickets := make([]reconcile.Ticket, 0, n)
	for i := 0; i < n; i++ {
		tickets = append(tickets, posTicket(opts...))
	}
	return tickets
}

func TestBuildOverviewPercentages(t *testing.T) {
	tickets := append(
		repeatTickets(73, withValue("10.00")),
		repeatTickets(27, withValue("0.00"))...,
	)
	event := &catalog.Event{ID: uuid.New(), Name: "Festival"}

	overview := buildOverview(event, tickets, time.Now())

	assert.Equal(t, 73, overview.Sold)
	assert.Equal(t, 27, overview.Courtesy)
	assert.Equal(t, 100, overview.Total)
	assert.Equal(t, 73, overview.SoldPerc)
	assert.Equal(t, 27, overview.CourtesyPerc)
}

func TestBuildOverviewEmptyEvent(t *testing.T) {
	event := &catalog.Event{ID: uuid.New(), Name: "Festival"}

	overview := buildOverview(event, nil, time.Now())

	assert.Equal(t, 0, overview.Total)
	assert.Equal(t, 0, overview.SoldPerc)
	assert.Equal(t, "R$ 0,00", overview.AverageTicket)
}

func TestBuildOverviewTodayWindow(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.Local)
	tickets := []reconcile.Ticket{
		posTicket(withPurchasedAt(now.Add(-time.Hour))),
		posTicket(withPurchasedAt(todayBoundary(now))),
		posTicket(withPurchasedAt(now.Add(-48 * time.Hour))),
	}
	event := &catalog.Event{ID: uuid.New()}

	overview := buildOverview(event, tickets, now)

	assert.Equal(t, 3, overview.Total)
	assert.Equal(t, 2, overview.SoldToday)
}

func TestCategoryTotalsEqualClassSums(t *testing.T) {
	tickets := []reconcile.Ticket{
		posTicket(withCategory("Arquibancada"), withClass("Setor A"), withValue("40.00")),
		posTicket(withCategory("Arquibancada"), withClass("Setor A"), withValue("40.00")),
		posTicket(withCategory("Arquibancada"), withClass("Setor B"), withValue("60.00")),
		posTicket(withCategory("Arquibancada"), withClass("Setor B"), withValue("0.00")),
	}

	breakdown := buildCategoryBreakdown(uuid.NewString(), tickets, nil)

	require.Len(t, breakdown.Categories, 1)
	category := breakdown.Categories[0]

	sum := 0
	for _, class := range category.Classes {
		sum += class.Sold + class.Courtesy
	}
	assert.Equal(t, category.Total, sum)
	assert.Equal(t, 3, category.Sold)
	assert.Equal(t, 1, category.Courtesy)
	assert.Equal(t, "R$ 140,00", category.Revenue)
}

func TestCancelledClassStillListed(t *testing.T) {
	tickets := []reconcile.Ticket{
		posTicket(withClass("Camarote"), withStatus(3)),
		posTicket(withClass("Pista")),
	}

	breakdown := buildCategoryBreakdown(uuid.NewString(), tickets, nil)

	require.Len(t, breakdown.Categories, 2)
	names := []string{breakdown.Categories[0].Name, breakdown.Categories[1].Name}
	assert.Contains(t, names, "Camarote")

	for _, category := range breakdown.Categories {
		if category.Name == "Camarote" {
			assert.Equal(t, 0, category.Total)
			require.Len(t, category.Classes, 1)
			assert.Equal(t, 0, category.Classes[0].Total)
		}
	}
}

func TestZeroTicketClassSeededFromCatalog(t *testing.T) {
	classes := []catalog.TicketClass{
		{ID: uuid.New(), Name: "Backstage"},
	}

	breakdown := buildCategoryBreakdown(uuid.NewString(), nil, classes)

	require.Len(t, breakdown.Categories, 1)
	assert.Equal(t, "Backstage", breakdown.Categories[0].Name)
	assert.Equal(t, 0, breakdown.Categories[0].Total)
}

func TestUncategorizedClassFallsBackToOwnName(t *testing.T) {
	tickets := []reconcile.Ticket{posTicket(withClass("Pista"))}

	breakdown := buildCategoryBreakdown(uuid.NewString(), tickets, nil)

	require.Len(t, breakdown.Categories, 1)
	assert.Equal(t, "Pista", breakdown.Categories[0].Name)
}

func TestWebTicketsGroupUnderWebPseudoPDV(t *testing.T) {
	tickets := []reconcile.Ticket{
		posTicket(withPDV("Loja Centro")),
		posTicket(withWebOrder("ORD-1", 5)),
	}

	breakdown := buildPDVBreakdown(uuid.NewString(), tickets, nil, time.Now())

	require.Len(t, breakdown.PDVs, 2)
	names := []string{breakdown.PDVs[0].Name, breakdown.PDVs[1].Name}
	assert.Contains(t, names, "Loja Centro")
	assert.Contains(t, names, "Web")
}

func TestCancelledWebTicketNotCounted(t *testing.T) {
	tickets := []reconcile.Ticket{
		posTicket(withClass("Pista")),
		posTicket(withClass("Pista"), withWebOrder("ORD-2", 6)),
	}

	breakdown := buildCategoryBreakdown(uuid.NewString(), tickets, nil)

	require.Len(t, breakdown.Categories, 1)
	assert.Equal(t, 1, breakdown.Categories[0].Total)
}

func TestDailyBreakdownMostRecentFirst(t *testing.T) {
	tickets := []reconcile.Ticket{
		posTicket(withPurchasedAt(time.Date(2026, 8, 10, 9, 0, 0, 0, time.Local))),
		posTicket(withPurchasedAt(time.Date(2026, 8, 12, 9, 0, 0, 0, time.Local))),
		posTicket(withPurchasedAt(time.Date(2026, 8, 11, 9, 0, 0, 0, time.Local))),
	}

	breakdown := buildDailyBreakdown(uuid.NewString(), tickets, classKey)

	require.Len(t, breakdown.Days, 3)
	assert.Equal(t, "12/08/2026", breakdown.Days[0].Date)
	assert.Equal(t, "11/08/2026", breakdown.Days[1].Date)
	assert.Equal(t, "10/08/2026", breakdown.Days[2].Date)
}

func TestBuildStatusSummary(t *testing.T) {
	tickets := []reconcile.Ticket{
		posTicket(),
		posTicket(),
		posTicket(withStatus(3)),
		posTicket(withStatus(0)),
	}

	summary := buildStatusSummary(uuid.NewString(), tickets)

	assert.Equal(t, 4, summary.Total)
	byLabel := make(map[string]StatusCount)
	for _, row := range summary.Rows {
		byLabel[row.Label] = row
	}
	assert.Equal(t, 2, byLabel["APPROVED"].Count)
	assert.Equal(t, 50, byLabel["APPROVED"].Perc)
	assert.Equal(t, 1, byLabel["REFUNDED"].Count)
	assert.Equal(t, 1, byLabel["AWAITING PAYMENT"].Count)
}

func TestClassKeySuffixes(t *testing.T) {
	companion := "Solidário"
	half := posTicket()
	half.HalfPrice = true
	withBoth := posTicket()
	withBoth.HalfPrice = true
	withBoth.CompanionLabel = &companion

	assert.Equal(t, "Pista", classKey(posTicket()))
	assert.Equal(t, "Pista - Meia-Entrada", classKey(half))
	assert.Equal(t, "Pista - Solidário - Meia-Entrada", classKey(withBoth))
}

func TestPct(t *testing.T) {
	assert.Equal(t, 73, pct(73, 100))
	assert.Equal(t, 33, pct(1, 3))
	assert.Equal(t, 67, pct(2, 3))
	assert.Equal(t, 0, pct(5, 0))
}

func TestAverageTicketZeroDivision(t *testing.T) {
	assert.True(t, averageTicket(decimal.RequireFromString("100.00"), 0).IsZero())
	assert.Equal(t, "50", averageTicket(decimal.RequireFromString("100.00"), 2).String())
}
