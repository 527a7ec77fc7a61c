package report

import (
	"time"

	"go-checkin/internal/attendance"
)

// Aggregate groups events by employee and local calendar day. Employees keep
// the order they first appear in, and so do days within an employee. Events
// without a timestamp are skipped.
//
// If a day holds more than one event of the same type, ENTRY and LUNCH_START
// keep the earliest and LUNCH_END and EXIT keep the latest, which yields the
// widest plausible working span.
func Aggregate(events []attendance.PunchEvent, loc *time.Location) []DailyRecord {
	if loc == nil {
		loc = time.Local
	}

	type employeeDays struct {
		dates []string
		days  map[string]*DailyRecord
	}

	var employees []string
	byEmployee := make(map[string]*employeeDays)

	for _, e := range events {
		if e.PunchedAt.IsZero() {
			continue
		}

		ed, ok := byEmployee[e.EmployeeID]
		if !ok {
			ed = &employeeDays{days: make(map[string]*DailyRecord)}
			byEmployee[e.EmployeeID] = ed
			employees = append(employees, e.EmployeeID)
		}

		at := e.PunchedAt.In(loc)
		date := at.Format("2006-01-02")
		rec, ok := ed.days[date]
		if !ok {
			rec = &DailyRecord{EmployeeID: e.EmployeeID, Date: date}
			ed.days[date] = rec
			ed.dates = append(ed.dates, date)
		}

		switch e.PunchType {
		case attendance.PunchEntry:
			keepEarliest(&rec.Entry, at)
		case attendance.PunchLunchStart:
			keepEarliest(&rec.LunchStart, at)
		case attendance.PunchLunchEnd:
			keepLatest(&rec.LunchEnd, at)
		case attendance.PunchExit:
			keepLatest(&rec.Exit, at)
		}
	}

	out := make([]DailyRecord, 0)
	for _, id := range employees {
		ed := byEmployee[id]
		for _, date := range ed.dates {
			out = append(out, *ed.days[date])
		}
	}
	return out
}

func keepEarliest(slot **time.Time, t time.Time) {
	if *slot == nil || t.Before(**slot) {
		*slot = &t
	}
}

func keepLatest(slot **time.Time, t time.Time) {
	if *slot == nil || t.After(**slot) {
		*slot = &t
	}
}
