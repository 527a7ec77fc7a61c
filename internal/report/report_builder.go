package report

import (
	"time"

	reporterrors "go-checkin/internal/report/errors"
)

const clockLayout = "15:04:05"

// BuildRows flattens records into rows in the same order.
func BuildRows(records []DailyRecord, loc *time.Location) ([]Row, error) {
	if len(records) == 0 {
		return nil, reporterrors.ErrEmptyReport
	}
	if loc == nil {
		loc = time.Local
	}

	rows := make([]Row, len(records))
	for i, rec := range records {
		rows[i] = Row{
			Employee:    rec.EmployeeID,
			Date:        rec.Date,
			EntryTime:   clock(rec.Entry, loc),
			ExitTime:    clock(rec.Exit, loc),
			WorkedHours: FormatWorked(WorkedDuration(rec)),
		}
	}
	return rows, nil
}

func clock(t *time.Time, loc *time.Location) string {
	if t == nil {
		return notApplicable
	}
	return t.In(loc).Format(clockLayout)
}
