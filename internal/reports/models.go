package reports

import "time"

// Report payloads keep the Portuguese field vocabulary the promoter-facing
// frontend already consumes; Go names stay descriptive.

// Overview is the event-level headline report.
type Overview struct {
	EventID       string    `json:"event_id"`
	EventName     string    `json:"evento"`
	Venue         string    `json:"local"`
	City          string    `json:"cidade"`
	EventDate     time.Time `json:"data_evento"`
	Sold          int       `json:"vendas"`
	Courtesy      int       `json:"cortesias"`
	Total         int       `json:"total"`
	SoldPerc      int       `json:"vendas_perc"`
	CourtesyPerc  int       `json:"cortesias_perc"`
	SoldToday     int       `json:"vendas_hoje"`
	CourtesyToday int       `json:"cortesias_hoje"`
	Revenue       string    `json:"receita"`
	RevenueToday  string    `json:"receita_hoje"`
	AverageTicket string    `json:"ticket_medio"`
}

// StatusCount is one status-label bucket of the status summary.
type StatusCount struct {
	Label string `json:"status"`
	Count int    `json:"total"`
	Perc  int    `json:"perc"`
}

// StatusSummary counts an event's tickets per resolved status label.
type StatusSummary struct {
	EventID string        `json:"event_id"`
	Total   int           `json:"total"`
	Rows    []StatusCount `json:"situacoes"`
}

// ClassRow is the class-level line shared by the category, PDV and daily
// breakdowns. The name may carry a companion-quota or half-price suffix.
type ClassRow struct {
	Name         string `json:"classe"`
	Sold         int    `json:"vendas"`
	Courtesy     int    `json:"cortesias"`
	Total        int    `json:"total"`
	SoldPerc     int    `json:"vendas_perc"`
	CourtesyPerc int    `json:"cortesias_perc"`
	Revenue      string `json:"receita"`
}

// CategoryRow is one category with its member classes.
type CategoryRow struct {
	Name     string     `json:"categoria"`
	Sold     int        `json:"vendas"`
	Courtesy int        `json:"cortesias"`
	Total    int        `json:"total"`
	Revenue  string     `json:"receita"`
	Classes  []ClassRow `json:"classes"`
}

// CategoryBreakdown is the category→class report. Classes without a category
// fall back to a category named after the class itself.
type CategoryBreakdown struct {
	EventID    string        `json:"event_id"`
	Categories []CategoryRow `json:"categorias"`
}

// PDVRow is one point-of-sale with its member classes. Web-channel tickets
// group under the pseudo-PDV "Web".
type PDVRow struct {
	Name          string     `json:"pdv"`
	Sold          int        `json:"vendas"`
	Courtesy      int        `json:"cortesias"`
	Total         int        `json:"total"`
	SoldToday     int        `json:"vendas_hoje"`
	CourtesyToday int        `json:"cortesias_hoje"`
	Revenue       string     `json:"receita"`
	RevenueToday  string     `json:"receita_hoje"`
	Classes       []ClassRow `json:"classes"`
}

// PDVBreakdown is the PDV→class report.
type PDVBreakdown struct {
	EventID string   `json:"event_id"`
	PDVs    []PDVRow `json:"pdvs"`
}

// DailyRow is one purchase-date bucket with its member groups (classes or
// PDVs, depending on the report variant).
type DailyRow struct {
	Date     string     `json:"data"`
	Sold     int        `json:"vendas"`
	Courtesy int        `json:"cortesias"`
	Total    int        `json:"total"`
	Revenue  string     `json:"receita"`
	Groups   []ClassRow `json:"grupos"`
}

// DailyBreakdown is the per-day report, most recent date first.
type DailyBreakdown struct {
	EventID string     `json:"event_id"`
	Days    []DailyRow `json:"dias"`
}

// SeatState is the display state of a seat, group or class in the
// numbered-seat report.
type SeatState string

const (
	SeatStateAvailable   SeatState = "AVAILABLE"
	SeatStateUnavailable SeatState = "UNAVAILABLE"
	SeatStatePartial     SeatState = "PARTIAL"
)

type SeatNode struct {
	Label    string    `json:"assento"`
	State    SeatState `json:"estado"`
	Courtesy bool      `json:"cortesia"`
}

type SeatGroupNode struct {
	Label string     `json:"grupo"`
	State SeatState  `json:"estado"`
	Seats []SeatNode `json:"assentos"`
}

type SeatClassNode struct {
	Name   string          `json:"classe"`
	State  SeatState       `json:"estado"`
	Groups []SeatGroupNode `json:"grupos"`
}

// SeatReport is the numbered-seat report: per class, per group, per seat
// display state with states collapsed bottom-up.
type SeatReport struct {
	EventID string          `json:"event_id"`
	Classes []SeatClassNode `json:"classes"`
}

// ChartSlice is one labeled bar or pie slice.
type ChartSlice struct {
	Label string `json:"label"`
	Value int    `json:"value"`
	Perc  int    `json:"perc,omitempty"`
}

// Chart is a flat labeled series.
type Chart struct {
	Title  string       `json:"title"`
	Slices []ChartSlice `json:"slices"`
}

// PeriodicPoint is one day of the periodic/cumulative chart.
type PeriodicPoint struct {
	Date       string `json:"data"`
	Count      int    `json:"total"`
	Cumulative int    `json:"acumulado"`
}

// SalesCharts bundles every sales chart of an event; the HTTP layer exposes
// one route per chart over the same payload.
type SalesCharts struct {
	EventID     string          `json:"event_id"`
	TicketTypes Chart           `json:"tipos"`
	Classes     Chart           `json:"classes"`
	Lots        Chart           `json:"lotes"`
	PDVRanking  Chart           `json:"ranking_pdvs"`
	Payments    Chart           `json:"pagamentos"`
	Periodic    []PeriodicPoint `json:"periodo"`
	Hourly      Chart           `json:"horarios"`
}
