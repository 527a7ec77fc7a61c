package attendance

import (
	attendanceerrors "go-checkin/internal/attendance/errors"
)

// DayState is the position of an employee inside the daily punch cycle.
type DayState int

const (
	StateNotStarted DayState = iota
	StateWorking
	StateAtLunch
	StateReturnedFromLunch
	StateDone
)

func (s DayState) String() string {
	switch s {
	case StateNotStarted:
		return "NOT_STARTED"
	case StateWorking:
		return "WORKING"
	case StateAtLunch:
		return "AT_LUNCH"
	case StateReturnedFromLunch:
		return "RETURNED_FROM_LUNCH"
	case StateDone:
		return "DONE"
	default:
		return "UNKNOWN"
	}
}

// transitions maps each state to the only punch accepted from it and the
// state that punch leads to. StateDone has no entry.
var transitions = map[DayState]struct {
	accepts PunchType
	next    DayState
}{
	StateNotStarted:        {accepts: PunchEntry, next: StateWorking},
	StateWorking:           {accepts: PunchLunchStart, next: StateAtLunch},
	StateAtLunch:           {accepts: PunchLunchEnd, next: StateReturnedFromLunch},
	StateReturnedFromLunch: {accepts: PunchExit, next: StateDone},
}

// stateAfter is keyed on the most recent punch, matching how the guards
// only look at the last punch of the day.
func stateAfter(last PunchType) DayState {
	switch last {
	case PunchEntry:
		return StateWorking
	case PunchLunchStart:
		return StateAtLunch
	case PunchLunchEnd:
		return StateReturnedFromLunch
	case PunchExit:
		return StateDone
	default:
		return StateNotStarted
	}
}

// CurrentState derives the state from today's punches in chronological order.
func CurrentState(todays []PunchEvent) DayState {
	if len(todays) == 0 {
		return StateNotStarted
	}
	return stateAfter(todays[len(todays)-1].PunchType)
}

// NextExpected returns the punch type accepted next, or false once the day is done.
func NextExpected(todays []PunchEvent) (PunchType, bool) {
	tr, ok := transitions[CurrentState(todays)]
	if !ok {
		return "", false
	}
	return tr.accepts, true
}

// ValidateNext decides whether requested may follow todays (chronological,
// same local day, same employee). The daily cap is checked first so a punch
// after a complete day always reports DayComplete.
func ValidateNext(todays []PunchEvent, requested PunchType, maxPerDay int) error {
	if capReached(todays, maxPerDay) {
		return attendanceerrors.ErrDayComplete
	}
	if !requested.Valid() {
		return attendanceerrors.ErrUnknownType
	}

	if requested == PunchEntry {
		for _, p := range todays {
			if p.PunchType == PunchEntry {
				return attendanceerrors.ErrDuplicateEntry
			}
		}
	}

	state := CurrentState(todays)
	tr, ok := transitions[state]
	if !ok {
		return attendanceerrors.ErrDayComplete
	}
	if tr.accepts != requested {
		return attendanceerrors.OutOfOrder(requested.String(), prerequisiteOf(requested, tr.accepts).String(), tr.accepts.String())
	}
	return nil
}

// capReached reports whether todays already holds maxPerDay punches.
// A non-positive maxPerDay means no cap.
func capReached(todays []PunchEvent, maxPerDay int) bool {
	return maxPerDay > 0 && len(todays) >= maxPerDay
}

// prerequisiteOf is the punch that must directly precede t. ENTRY has none,
// so the expected punch is reported instead.
func prerequisiteOf(t, expected PunchType) PunchType {
	for i, pt := range PunchTypes {
		if pt == t && i > 0 {
			return PunchTypes[i-1]
		}
	}
	return expected
}
