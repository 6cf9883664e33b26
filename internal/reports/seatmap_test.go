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

func TestSeatState(t *testing.T) {
	now := time.Now()
	future := now.Add(10 * time.Minute)
	past := now.Add(-10 * time.Minute)

	tests := []struct {
		name     string
		seat     catalog.Seat
		sold     bool
		expected SeatState
	}{
		{"available", catalog.Seat{Status: catalog.SeatAvailable}, false, SeatStateAvailable},
		{"unavailable flag", catalog.Seat{Status: catalog.SeatUnavailable}, false, SeatStateUnavailable},
		{"sold overrides flag", catalog.Seat{Status: catalog.SeatAvailable}, true, SeatStateUnavailable},
		{"held lock", catalog.Seat{Status: catalog.SeatLocked, LockExpires: &future}, false, SeatStatePartial},
		{"expired lock", catalog.Seat{Status: catalog.SeatLocked, LockExpires: &past}, false, SeatStateAvailable},
		{"lock without expiry", catalog.Seat{Status: catalog.SeatLocked}, false, SeatStatePartial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, seatState(tt.seat, tt.sold, now))
		})
	}
}

func TestCombineStates(t *testing.T) {
	tests := []struct {
		name     string
		states   []SeatState
		expected SeatState
	}{
		{"all available", []SeatState{SeatStateAvailable, SeatStateAvailable}, SeatStateAvailable},
		{"none available", []SeatState{SeatStateUnavailable, SeatStateUnavailable}, SeatStateUnavailable},
		{"partial members count as not available", []SeatState{SeatStatePartial, SeatStatePartial}, SeatStateUnavailable},
		{"mixed", []SeatState{SeatStateAvailable, SeatStateUnavailable}, SeatStatePartial},
		{"mixed with partial", []SeatState{SeatStateAvailable, SeatStatePartial}, SeatStatePartial},
		{"empty", nil, SeatStateUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, combineStates(tt.states))
		})
	}
}

func TestBuildSeatReportCollapsesBottomUp(t *testing.T) {
	classID := uuid.New()
	groupA := uuid.New()
	groupB := uuid.New()
	soldSeat := uuid.New()

	cat := &seatCatalog{
		Classes: []catalog.TicketClass{{ID: classID, Name: "Cadeiras", Numbered: true}},
		Groups: map[uuid.UUID][]catalog.SeatGroup{
			classID: {
				{ID: groupA, ClassID: classID, Label: "Fila A"},
				{ID: groupB, ClassID: classID, Label: "Fila B"},
			},
		},
		Seats: map[uuid.UUID][]catalog.Seat{
			groupA: {
				{ID: soldSeat, GroupID: groupA, Label: "A1", Status: catalog.SeatAvailable},
				{ID: uuid.New(), GroupID: groupA, Label: "A2", Status: catalog.SeatAvailable},
			},
			groupB: {
				{ID: uuid.New(), GroupID: groupB, Label: "B1", Status: catalog.SeatAvailable},
			},
		},
	}

	sold := posTicket()
	sold.SeatID = &soldSeat
	tickets := []reconcile.Ticket{sold}

	report := buildSeatReport(uuid.NewString(), cat, tickets, time.Now())

	require.Len(t, report.Classes, 1)
	class := report.Classes[0]
	require.Len(t, class.Groups, 2)

	assert.Equal(t, SeatStatePartial, class.Groups[0].State)
	assert.Equal(t, SeatStateUnavailable, class.Groups[0].Seats[0].State)
	assert.Equal(t, SeatStateAvailable, class.Groups[1].State)
	assert.Equal(t, SeatStatePartial, class.State)
}

func TestBuildSeatReportSkipsUnnumberedClasses(t *testing.T) {
	cat := &seatCatalog{
		Classes: []catalog.TicketClass{{ID: uuid.New(), Name: "Pista", Numbered: false}},
		Groups:  map[uuid.UUID][]catalog.SeatGroup{},
		Seats:   map[uuid.UUID][]catalog.Seat{},
	}

	report := buildSeatReport(uuid.NewString(), cat, nil, time.Now())

	assert.Empty(t, report.Classes)
}
