package reports

import (
	"testing"
	"time"

	"bilheteria/internal/catalog"
	"bilheteria/internal/reconcile"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withLot(id uuid.UUID) rowOpt {
	return func(r *reconcile.Row) { r.LotID = id }
}

func TestTicketTypeChart(t *testing.T) {
	tickets := append(
		repeatTickets(3, withValue("20.00")),
		posTicket(withValue("0.00")),
	)

	charts := buildSalesCharts(uuid.NewString(), tickets, nil)

	require.Len(t, charts.TicketTypes.Slices, 2)
	assert.Equal(t, 3, charts.TicketTypes.Slices[0].Value)
	assert.Equal(t, 75, charts.TicketTypes.Slices[0].Perc)
	assert.Equal(t, 1, charts.TicketTypes.Slices[1].Value)
	assert.Equal(t, 25, charts.TicketTypes.Slices[1].Perc)
}

func TestLotChartKeepsFullPriorityAxis(t *testing.T) {
	lotA := uuid.New()
	lotB := uuid.New()
	lots := []catalog.Lot{
		{ID: lotB, Priority: 2, Quantity: 10},
		{ID: lotA, Priority: 1, Quantity: 0},
	}
	tickets := repeatTickets(4, withLot(lotA))

	charts := buildSalesCharts(uuid.NewString(), tickets, lots)

	require.Len(t, charts.Lots.Slices, 2)
	assert.Equal(t, "Lote 1", charts.Lots.Slices[0].Label)
	assert.Equal(t, 4, charts.Lots.Slices[0].Value)
	assert.Equal(t, "Lote 2", charts.Lots.Slices[1].Label)
	assert.Equal(t, 0, charts.Lots.Slices[1].Value)
}

func TestChartsExcludeInactiveTickets(t *testing.T) {
	tickets := []reconcile.Ticket{
		posTicket(),
		posTicket(withStatus(3)),
	}

	charts := buildSalesCharts(uuid.NewString(), tickets, nil)

	assert.Equal(t, 1, charts.TicketTypes.Slices[0].Value+charts.TicketTypes.Slices[1].Value)
}

func TestPDVRankingOrderedByCount(t *testing.T) {
	tickets := append(
		repeatTickets(2, withPDV("Loja Centro")),
		repeatTickets(5, withPDV("Aeroporto"))...,
	)
	tickets = append(tickets, posTicket(withWebOrder("ORD-1", 5)))

	charts := buildSalesCharts(uuid.NewString(), tickets, nil)

	require.Len(t, charts.PDVRanking.Slices, 3)
	assert.Equal(t, "Aeroporto", charts.PDVRanking.Slices[0].Label)
	assert.Equal(t, 5, charts.PDVRanking.Slices[0].Value)
	assert.Equal(t, "Loja Centro", charts.PDVRanking.Slices[1].Label)
	assert.Equal(t, "Web", charts.PDVRanking.Slices[2].Label)
}

func TestPeriodicChartCumulative(t *testing.T) {
	tickets := []reconcile.Ticket{
		posTicket(withPurchasedAt(time.Date(2026, 8, 10, 9, 0, 0, 0, time.Local))),
		posTicket(withPurchasedAt(time.Date(2026, 8, 10, 10, 0, 0, 0, time.Local))),
		posTicket(withPurchasedAt(time.Date(2026, 8, 12, 9, 0, 0, 0, time.Local))),
	}

	charts := buildSalesCharts(uuid.NewString(), tickets, nil)

	require.Len(t, charts.Periodic, 2)
	assert.Equal(t, "10/08/2026", charts.Periodic[0].Date)
	assert.Equal(t, 2, charts.Periodic[0].Count)
	assert.Equal(t, 2, charts.Periodic[0].Cumulative)
	assert.Equal(t, "12/08/2026", charts.Periodic[1].Date)
	assert.Equal(t, 1, charts.Periodic[1].Count)
	assert.Equal(t, 3, charts.Periodic[1].Cumulative)
}

func TestHourlyChartBuckets(t *testing.T) {
	tickets := []reconcile.Ticket{
		posTicket(withPurchasedAt(time.Date(2026, 8, 10, 9, 15, 0, 0, time.Local))),
		posTicket(withPurchasedAt(time.Date(2026, 8, 11, 9, 45, 0, 0, time.Local))),
		posTicket(withPurchasedAt(time.Date(2026, 8, 10, 22, 0, 0, 0, time.Local))),
	}

	charts := buildSalesCharts(uuid.NewString(), tickets, nil)

	require.Len(t, charts.Hourly.Slices, 24)
	assert.Equal(t, "09h", charts.Hourly.Slices[9].Label)
	assert.Equal(t, 2, charts.Hourly.Slices[9].Value)
	assert.Equal(t, 1, charts.Hourly.Slices[22].Value)
	assert.Equal(t, 0, charts.Hourly.Slices[0].Value)
}

func TestPaymentChartBucketsCourtesySeparately(t *testing.T) {
	tickets := []reconcile.Ticket{
		posTicket(),
		posTicket(withValue("0.00")),
		posTicket(func(r *reconcile.Row) { r.PaymentCode = "3" }),
	}

	charts := buildSalesCharts(uuid.NewString(), tickets, nil)

	labels := make([]string, 0, len(charts.Payments.Slices))
	for _, slice := range charts.Payments.Slices {
		labels = append(labels, slice.Label)
	}
	assert.Equal(t, []string{"CASH", "DEBIT", "COURTESY"}, labels)
}
