package reports

import (
	"fmt"
	"sort"
	"time"

	"bilheteria/internal/catalog"
	"bilheteria/internal/reconcile"

	"github.com/google/uuid"
)

// buildSalesCharts folds an event's canonical tickets into every sales
// chart. Only active tickets count; lots appear even with zero sales so the
// bar chart keeps the full priority axis.
func buildSalesCharts(eventID string, tickets []reconcile.Ticket, lots []catalog.Lot) *SalesCharts {
	charts := &SalesCharts{EventID: eventID}

	active := make([]reconcile.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if t.Active {
			active = append(active, t)
		}
	}

	charts.TicketTypes = ticketTypeChart(active)
	charts.Classes = classChart(active)
	charts.Lots = lotChart(active, lots)
	charts.PDVRanking = pdvRankingChart(active)
	charts.Payments = paymentChart(active)
	charts.Periodic = periodicChart(active)
	charts.Hourly = hourlyChart(active)

	return charts
}

func ticketTypeChart(active []reconcile.Ticket) Chart {
	var c counters
	for _, t := range active {
		c.add(t)
	}
	return Chart{
		Title: "Vendas x Cortesias",
		Slices: []ChartSlice{
			{Label: "Vendas", Value: c.Sold, Perc: pct(c.Sold, c.total())},
			{Label: "Cortesias", Value: c.Courtesy, Perc: pct(c.Courtesy, c.total())},
		},
	}
}

func classChart(active []reconcile.Ticket) Chart {
	byClass := make(map[string]int)
	for _, t := range active {
		byClass[classKey(t)]++
	}
	return Chart{Title: "Vendas por Classe", Slices: localeSlices(byClass)}
}

func lotChart(active []reconcile.Ticket, lots []catalog.Lot) Chart {
	byLot := make(map[uuid.UUID]int)
	for _, t := range active {
		byLot[t.LotID]++
	}

	ordered := make([]catalog.Lot, len(lots))
	copy(ordered, lots)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Priority < ordered[j].Priority })

	slices := make([]ChartSlice, 0, len(ordered))
	for _, lot := range ordered {
		slices = append(slices, ChartSlice{
			Label: fmt.Sprintf("Lote %d", lot.Priority),
			Value: byLot[lot.ID],
		})
	}
	return Chart{Title: "Vendas por Lote", Slices: slices}
}

func pdvRankingChart(active []reconcile.Ticket) Chart {
	byPDV := make(map[string]int)
	for _, t := range active {
		byPDV[pdvKey(t)]++
	}

	slices := localeSlices(byPDV)
	sort.SliceStable(slices, func(i, j int) bool { return slices[i].Value > slices[j].Value })
	return Chart{Title: "Ranking de PDVs", Slices: slices}
}

func paymentChart(active []reconcile.Ticket) Chart {
	byMethod := make(map[string]int)
	for _, t := range active {
		label := string(t.Payment)
		if t.Courtesy {
			label = "COURTESY"
		}
		byMethod[label]++
	}

	order := []string{
		string(reconcile.PaymentCash),
		string(reconcile.PaymentCredit),
		string(reconcile.PaymentDebit),
		string(reconcile.PaymentPIX),
		"COURTESY",
		string(reconcile.PaymentUnknown),
	}
	slices := make([]ChartSlice, 0, len(order))
	for _, label := range order {
		if count, ok := byMethod[label]; ok {
			slices = append(slices, ChartSlice{Label: label, Value: count})
		}
	}
	return Chart{Title: "Formas de Pagamento", Slices: slices}
}

// periodicChart emits one point per purchase date, oldest first, with a
// running cumulative total.
func periodicChart(active []reconcile.Ticket) []PeriodicPoint {
	byDay := make(map[string]int)
	for _, t := range active {
		byDay[t.PurchasedAt.Format("2006-01-02")]++
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	points := make([]PeriodicPoint, 0, len(days))
	cumulative := 0
	for _, day := range days {
		cumulative += byDay[day]
		parsed, _ := time.Parse("2006-01-02", day)
		points = append(points, PeriodicPoint{
			Date:       DateBR(parsed),
			Count:      byDay[day],
			Cumulative: cumulative,
		})
	}
	return points
}

func hourlyChart(active []reconcile.Ticket) Chart {
	var byHour [24]int
	for _, t := range active {
		byHour[t.PurchasedAt.Hour()]++
	}

	slices := make([]ChartSlice, 0, 24)
	for hour := 0; hour < 24; hour++ {
		slices = append(slices, ChartSlice{
			Label: fmt.Sprintf("%02dh", hour),
			Value: byHour[hour],
		})
	}
	return Chart{Title: "Vendas por Horário", Slices: slices}
}

func localeSlices(buckets map[string]int) []ChartSlice {
	labels := make([]string, 0, len(buckets))
	for label := range buckets {
		labels = append(labels, label)
	}
	sortLocale(labels)

	slices := make([]ChartSlice, 0, len(labels))
	for _, label := range labels {
		slices = append(slices, ChartSlice{Label: label, Value: buckets[label]})
	}
	return slices
}
