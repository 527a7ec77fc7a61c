package report

import "time"

// DailyRecord is one employee's punches for one local calendar day. A nil
// timestamp means that punch was never recorded.
type DailyRecord struct {
	EmployeeID string
	Date       string
	Entry      *time.Time
	LunchStart *time.Time
	LunchEnd   *time.Time
	Exit       *time.Time
}

// Row is a flattened, display-ready DailyRecord.
type Row struct {
	Employee    string `json:"employee"`
	Date        string `json:"date"`
	EntryTime   string `json:"entry_time"`
	ExitTime    string `json:"exit_time"`
	WorkedHours string `json:"worked_hours"`
}

// Document is an encoded report ready to be downloaded.
type Document struct {
	Content     []byte `json:"content"`
	ContentType string `json:"content_type"`
	Filename    string `json:"filename"`
}

// Filter bounds a report by local calendar dates, both inclusive. Nil means
// unbounded on that side.
type Filter struct {
	From *time.Time
	To   *time.Time
}

func (f Filter) Unbounded() bool {
	return f.From == nil && f.To == nil
}
