package reports

import (
	"sort"
	"time"

	"bilheteria/internal/catalog"
	"bilheteria/internal/reconcile"

	"github.com/google/uuid"
)

// Pure report builders. Each rebuilds its accumulator from the canonical
// ticket stream; the service layer only wires storage reads, caching and
// formatting around them.

func buildOverview(event *catalog.Event, tickets []reconcile.Ticket, now time.Time) *Overview {
	boundary := todayBoundary(now)

	var all, today counters
	for _, t := range tickets {
		if !t.Active {
			continue
		}
		all.add(t)
		if !t.PurchasedAt.Before(boundary) {
			today.add(t)
		}
	}

	return &Overview{
		EventID:       event.ID.String(),
		EventName:     event.Name,
		Venue:         event.Venue,
		City:          event.City,
		EventDate:     event.DateTime,
		Sold:          all.Sold,
		Courtesy:      all.Courtesy,
		Total:         all.total(),
		SoldPerc:      pct(all.Sold, all.total()),
		CourtesyPerc:  pct(all.Courtesy, all.total()),
		SoldToday:     today.Sold,
		CourtesyToday: today.Courtesy,
		Revenue:       Currency(all.Revenue),
		RevenueToday:  Currency(today.Revenue),
		AverageTicket: Currency(averageTicket(all.Revenue, all.total())),
	}
}

func buildStatusSummary(eventID string, tickets []reconcile.Ticket) *StatusSummary {
	byLabel := make(map[string]int)
	for _, t := range tickets {
		byLabel[t.StatusLabel]++
	}

	labels := make([]string, 0, len(byLabel))
	for label := range byLabel {
		labels = append(labels, label)
	}
	sortLocale(labels)

	summary := &StatusSummary{EventID: eventID, Total: len(tickets)}
	for _, label := range labels {
		summary.Rows = append(summary.Rows, StatusCount{
			Label: label,
			Count: byLabel[label],
			Perc:  pct(byLabel[label], len(tickets)),
		})
	}
	return summary
}

func buildCategoryBreakdown(eventID string, tickets []reconcile.Ticket, classes []catalog.TicketClass) *CategoryBreakdown {
	acc := newAccumulator()

	// Every provisioned class appears even with zero tickets.
	for _, class := range classes {
		category := class.Name
		if class.Category != nil && class.Category.Name != "" {
			category = class.Category.Name
		}
		acc.seed(category, class.Name)
	}
	for _, t := range tickets {
		acc.fold(t, categoryKey(t), classKey(t))
	}

	breakdown := &CategoryBreakdown{EventID: eventID}
	for _, name := range acc.sortedGroups() {
		g := acc.groups[name]
		breakdown.Categories = append(breakdown.Categories, CategoryRow{
			Name:     name,
			Sold:     g.Sold,
			Courtesy: g.Courtesy,
			Total:    g.total(),
			Revenue:  Currency(g.Revenue),
			Classes:  classRows(g),
		})
	}
	return breakdown
}

func buildPDVBreakdown(eventID string, tickets []reconcile.Ticket, pdvs []catalog.PDV, now time.Time) *PDVBreakdown {
	boundary := todayBoundary(now)

	acc := newAccumulator()
	todayByPDV := make(map[string]*counters)
	for _, pdv := range pdvs {
		if _, ok := acc.groups[pdv.Name]; !ok {
			acc.groups[pdv.Name] = &groupNode{children: make(map[string]*counters)}
		}
	}
	for _, t := range tickets {
		key := pdvKey(t)
		acc.fold(t, key, classKey(t))
		if t.Active && !t.PurchasedAt.Before(boundary) {
			c, ok := todayByPDV[key]
			if !ok {
				c = &counters{}
				todayByPDV[key] = c
			}
			c.add(t)
		}
	}

	breakdown := &PDVBreakdown{EventID: eventID}
	for _, name := range acc.sortedGroups() {
		g := acc.groups[name]
		today := todayByPDV[name]
		if today == nil {
			today = &counters{}
		}
		breakdown.PDVs = append(breakdown.PDVs, PDVRow{
			Name:          name,
			Sold:          g.Sold,
			Courtesy:      g.Courtesy,
			Total:         g.total(),
			SoldToday:     today.Sold,
			CourtesyToday: today.Courtesy,
			Revenue:       Currency(g.Revenue),
			RevenueToday:  Currency(today.Revenue),
			Classes:       classRows(g),
		})
	}
	return breakdown
}

// buildDailyBreakdown buckets tickets by purchase date, most recent first,
// grouping within each date by the supplied key function.
func buildDailyBreakdown(eventID string, tickets []reconcile.Ticket, key func(reconcile.Ticket) string) *DailyBreakdown {
	acc := newAccumulator()
	for _, t := range tickets {
		acc.fold(t, t.PurchasedAt.Format("2006-01-02"), key(t))
	}

	days := make([]string, 0, len(acc.groups))
	for day := range acc.groups {
		days = append(days, day)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(days)))

	breakdown := &DailyBreakdown{EventID: eventID}
	for _, day := range days {
		g := acc.groups[day]
		parsed, _ := time.Parse("2006-01-02", day)
		breakdown.Days = append(breakdown.Days, DailyRow{
			Date:     DateBR(parsed),
			Sold:     g.Sold,
			Courtesy: g.Courtesy,
			Total:    g.total(),
			Revenue:  Currency(g.Revenue),
			Groups:   classRows(g),
		})
	}
	return breakdown
}

// seatCatalog is the numbered-seat slice of the catalog the seat report
// walks: numbered classes with their groups and seats.
type seatCatalog struct {
	Classes []catalog.TicketClass
	Groups  map[uuid.UUID][]catalog.SeatGroup
	Seats   map[uuid.UUID][]catalog.Seat
}

func buildSeatReport(eventID string, cat *seatCatalog, tickets []reconcile.Ticket, now time.Time) *SeatReport {
	sold := make(map[uuid.UUID]bool)
	for _, t := range tickets {
		if t.Active && t.SeatID != nil {
			sold[*t.SeatID] = true
		}
	}

	report := &SeatReport{EventID: eventID}
	for _, class := range cat.Classes {
		if !class.Numbered {
			continue
		}
		classNode := SeatClassNode{Name: class.Name}
		groupStates := make([]SeatState, 0, len(cat.Groups[class.ID]))

		for _, group := range cat.Groups[class.ID] {
			groupRow := SeatGroupNode{Label: group.Label}
			seatStates := make([]SeatState, 0, len(cat.Seats[group.ID]))

			for _, seat := range cat.Seats[group.ID] {
				state := seatState(seat, sold[seat.ID], now)
				seatStates = append(seatStates, state)
				groupRow.Seats = append(groupRow.Seats, SeatNode{
					Label:    seat.Label,
					State:    state,
					Courtesy: seat.Courtesy,
				})
			}

			groupRow.State = combineStates(seatStates)
			groupStates = append(groupStates, groupRow.State)
			classNode.Groups = append(classNode.Groups, groupRow)
		}

		classNode.State = combineStates(groupStates)
		report.Classes = append(report.Classes, classNode)
	}
	return report
}
