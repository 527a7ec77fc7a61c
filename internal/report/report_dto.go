package report

import (
	"time"

	"go-checkin/internal/shared/apperror"
)

const dateLayout = "2006-01-02"

type ReportQuery struct {
	From     string `form:"from"`
	To       string `form:"to"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

// ToFilter parses the YYYY-MM-DD bounds in loc.
func (q ReportQuery) ToFilter(loc *time.Location) (Filter, error) {
	var f Filter
	if q.From != "" {
		t, err := time.ParseInLocation(dateLayout, q.From, loc)
		if err != nil {
			return Filter{}, apperror.InvalidField("From")
		}
		f.From = &t
	}
	if q.To != "" {
		t, err := time.ParseInLocation(dateLayout, q.To, loc)
		if err != nil {
			return Filter{}, apperror.InvalidField("To")
		}
		f.To = &t
	}
	return f, nil
}
