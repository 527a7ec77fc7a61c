package attendance

type LocationRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
}

type SubmitPunchRequest struct {
	PunchType string           `json:"punchType" binding:"required"`
	Location  *LocationRequest `json:"location" binding:"required"`
}

type PunchResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	PunchType      string  `json:"punch_type"`
	PunchDate      string  `json:"punch_date"`
	PunchedAt      string  `json:"punched_at"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	DistanceMeters float64 `json:"distance_meters"`
}

// SubmitPunchResult is what a successful check-in returns to the client.
type SubmitPunchResult struct {
	Message string        `json:"message"`
	Punch   PunchResponse `json:"punch"`
}

type TodayResponse struct {
	Date          string          `json:"date"`
	State         string          `json:"state"`
	Punches       []PunchResponse `json:"punches"`
	NextPunchType *string         `json:"next_punch_type,omitempty"`
	Complete      bool            `json:"complete"`
}
