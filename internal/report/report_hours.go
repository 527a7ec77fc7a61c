package report

import (
	"fmt"
	"time"
)

const notApplicable = "N/A"

// WorkedDuration is Exit minus Entry, less the lunch break when both lunch
// punches exist. It reports false when Entry or Exit is missing or the result
// would be negative.
func WorkedDuration(rec DailyRecord) (time.Duration, bool) {
	if rec.Entry == nil || rec.Exit == nil {
		return 0, false
	}

	worked := rec.Exit.Sub(*rec.Entry)
	if rec.LunchStart != nil && rec.LunchEnd != nil {
		worked -= rec.LunchEnd.Sub(*rec.LunchStart)
	}
	if worked < 0 {
		return 0, false
	}
	return worked, true
}

// FormatWorked renders whole hours and minutes, e.g. "7h 0m". Seconds are
// dropped, never rounded up.
func FormatWorked(d time.Duration, ok bool) string {
	if !ok {
		return notApplicable
	}
	hours := d / time.Hour
	minutes := (d % time.Hour) / time.Minute
	return fmt.Sprintf("%dh %dm", hours, minutes)
}
