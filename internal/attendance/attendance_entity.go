package attendance

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type PunchType string

const (
	PunchEntry      PunchType = "ENTRY"
	PunchLunchStart PunchType = "LUNCH_START"
	PunchLunchEnd   PunchType = "LUNCH_END"
	PunchExit       PunchType = "EXIT"
)

// PunchTypes is the canonical daily order.
var PunchTypes = []PunchType{PunchEntry, PunchLunchStart, PunchLunchEnd, PunchExit}

func ParsePunchType(s string) (PunchType, bool) {
	t := PunchType(strings.ToUpper(strings.TrimSpace(s)))
	return t, t.Valid()
}

func (t PunchType) Valid() bool {
	switch t {
	case PunchEntry, PunchLunchStart, PunchLunchEnd, PunchExit:
		return true
	default:
		return false
	}
}

func (t PunchType) String() string {
	return string(t)
}

// PunchEvent is append-only: rows are never updated or deleted.
type PunchEvent struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID     string    `gorm:"column:employee_id;type:varchar(255);not null;index;uniqueIndex:uq_punch_employee_day_type,priority:1"`
	PunchDate      time.Time `gorm:"column:punch_date;type:date;not null;uniqueIndex:uq_punch_employee_day_type,priority:2"`
	PunchType      PunchType `gorm:"column:punch_type;type:varchar(20);not null;uniqueIndex:uq_punch_employee_day_type,priority:3"`
	PunchedAt      time.Time `gorm:"column:punched_at;type:timestamptz;not null;index"`
	Latitude       float64   `gorm:"column:latitude;not null"`
	Longitude      float64   `gorm:"column:longitude;not null"`
	DistanceMeters float64   `gorm:"column:distance_meters;not null"`
	CreatedAt      time.Time `gorm:"column:created_at;<-:create"`
}

func (PunchEvent) TableName() string {
	return "punch_events"
}

// DayWindow returns local midnight of t's calendar day and the next midnight.
func DayWindow(t time.Time, loc *time.Location) (start, end time.Time) {
	if loc == nil {
		loc = time.Local
	}
	local := t.In(loc)
	start = time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}
