package reports

import (
	"time"

	"bilheteria/internal/catalog"
)

// seatState collapses one seat's stored flag and sale state into its display
// state. A seat an active ticket points at is unavailable no matter what the
// stored flag says; an expired lock reads as available again.
func seatState(seat catalog.Seat, sold bool, now time.Time) SeatState {
	if sold {
		return SeatStateUnavailable
	}
	switch seat.Status {
	case catalog.SeatAvailable:
		return SeatStateAvailable
	case catalog.SeatLocked:
		if seat.LockExpires != nil && seat.LockExpires.Before(now) {
			return SeatStateAvailable
		}
		return SeatStatePartial
	default:
		return SeatStateUnavailable
	}
}

// combineStates collapses member states one level up: Available iff every
// member is Available, Unavailable iff none is, Partial otherwise. The same
// law applies group-over-seats and class-over-groups.
func combineStates(states []SeatState) SeatState {
	available := 0
	for _, s := range states {
		if s == SeatStateAvailable {
			available++
		}
	}
	switch {
	case len(states) > 0 && available == len(states):
		return SeatStateAvailable
	case available == 0:
		return SeatStateUnavailable
	default:
		return SeatStatePartial
	}
}
