package reports

import (
	"math"
	"sort"
	"time"

	"bilheteria/internal/reconcile"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Breakdown names are promoter-facing Portuguese; the collator keeps their
// ordering stable for accented class and category names.
var collator = collate.New(language.BrazilianPortuguese, collate.IgnoreCase)

// counters accumulates one group's sold/courtesy split and revenue. An
// accumulator is rebuilt per report call; nothing here is shared across
// requests.
type counters struct {
	Sold     int
	Courtesy int
	Revenue  decimal.Decimal
}

func (c *counters) add(t reconcile.Ticket) {
	if t.Courtesy {
		c.Courtesy++
	} else {
		c.Sold++
	}
	c.Revenue = c.Revenue.Add(t.Value)
}

func (c *counters) total() int {
	return c.Sold + c.Courtesy
}

// groupNode is one top-level group (category, PDV or date) with its
// class-level children.
type groupNode struct {
	counters
	children map[string]*counters
}

// accumulator folds canonical tickets into a two-level key space. Cancelled
// tickets still materialize their nodes with zero counters so a class whose
// tickets were all cancelled stays listed.
type accumulator struct {
	groups map[string]*groupNode
}

func newAccumulator() *accumulator {
	return &accumulator{groups: make(map[string]*groupNode)}
}

func (a *accumulator) node(group, child string) (*groupNode, *counters) {
	g, ok := a.groups[group]
	if !ok {
		g = &groupNode{children: make(map[string]*counters)}
		a.groups[group] = g
	}
	c, ok := g.children[child]
	if !ok {
		c = &counters{}
		g.children[child] = c
	}
	return g, c
}

// fold adds one ticket under (group, child). Only active tickets increment
// counters; inactive ones only materialize the nodes.
func (a *accumulator) fold(t reconcile.Ticket, group, child string) {
	g, c := a.node(group, child)
	if !t.Active {
		return
	}
	g.add(t)
	c.add(t)
}

// seed materializes an empty (group, child) pair so zero-ticket classes
// still appear in the output.
func (a *accumulator) seed(group, child string) {
	a.node(group, child)
}

// sortedGroups returns the group keys in locale order.
func (a *accumulator) sortedGroups() []string {
	keys := make([]string, 0, len(a.groups))
	for k := range a.groups {
		keys = append(keys, k)
	}
	sortLocale(keys)
	return keys
}

func (g *groupNode) sortedChildren() []string {
	keys := make([]string, 0, len(g.children))
	for k := range g.children {
		keys = append(keys, k)
	}
	sortLocale(keys)
	return keys
}

func sortLocale(keys []string) {
	sort.Slice(keys, func(i, j int) bool {
		return collator.CompareString(keys[i], keys[j]) < 0
	})
}

// classKey derives the class-level group name of a ticket: the class name,
// suffixed with the companion label and/or the half-price marker.
func classKey(t reconcile.Ticket) string {
	name := t.ClassName
	if t.CompanionLabel != nil && *t.CompanionLabel != "" {
		name += " - " + *t.CompanionLabel
	}
	if t.HalfPrice {
		name += " - Meia-Entrada"
	}
	return name
}

// categoryKey derives the category-level group name of a ticket, falling
// back to the class name for uncategorized classes.
func categoryKey(t reconcile.Ticket) string {
	if t.CategoryName != nil && *t.CategoryName != "" {
		return *t.CategoryName
	}
	return t.ClassName
}

// pdvKey derives the point-of-sale group name; web-channel tickets group
// under the pseudo-PDV "Web".
func pdvKey(t reconcile.Ticket) string {
	if t.PDVName != nil && *t.PDVName != "" {
		return *t.PDVName
	}
	return "Web"
}

// pct computes round(part/whole*100). Each percentage is rounded
// independently; a breakdown's percentages are not reconciled to sum to 100.
func pct(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}

// averageTicket divides revenue by the active+courtesy count, trapping the
// empty-event case as zero.
func averageTicket(revenue decimal.Decimal, count int) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return revenue.DivRound(decimal.NewFromInt(int64(count)), 2)
}

// todayBoundary is the local midnight of the report's execution time;
// purchases at or after it count toward the *_today fields.
func todayBoundary(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func classRows(g *groupNode) []ClassRow {
	rows := make([]ClassRow, 0, len(g.children))
	for _, name := range g.sortedChildren() {
		c := g.children[name]
		rows = append(rows, ClassRow{
			Name:         name,
			Sold:         c.Sold,
			Courtesy:     c.Courtesy,
			Total:        c.total(),
			SoldPerc:     pct(c.Sold, c.total()),
			CourtesyPerc: pct(c.Courtesy, c.total()),
			Revenue:      Currency(c.Revenue),
		})
	}
	return rows
}
