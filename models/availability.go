package models

// TimeRange is a {start, end} pair in 24-hour "HH:MM" wall-clock form,
// not tied to a date. The atomic unit of availability.
type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Availability maps an ISO date key ("YYYY-MM-DD") to the ordered time
// ranges bookable on that date. Derived and ephemeral; never persisted.
type Availability map[string][]TimeRange

// Slot is a single bookable start time derived by expanding a time range
// with an event's duration and booking interval.
type Slot struct {
	StartTime    string `json:"startTime"`    // "HH:MM"
	DisplayLabel string `json:"displayLabel"` // e.g., "9:30 AM"
	Period       string `json:"period"`       // "Morning", "Afternoon", or "Evening"
}
