package events

import "time"

const (
	PunchRecordedTopic     = "attendance.punch.recorded.v1"
	PunchRecordedEventType = "punch_recorded"
)

type PunchRecordedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	PunchID        string    `json:"punch_id"`
	EmployeeID     string    `json:"employee_id"`
	PunchType      string    `json:"punch_type"`
	PunchDate      string    `json:"punch_date"`
	PunchedAt      time.Time `json:"punched_at"`
	DistanceMeters float64   `json:"distance_meters"`
	OccurredAt     time.Time `json:"occurred_at"`
}
