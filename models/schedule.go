package models

import "time"

// Schedule is a named collection of recurring weekly rules plus date
// overrides, owned by one faculty member.
type Schedule struct {
	ID        string    `bson:"id" json:"id"`
	FacultyID string    `bson:"facultyId" json:"facultyId"`
	Name      string    `bson:"name" json:"name"`
	Timezone  string    `bson:"timezone,omitempty" json:"timezone,omitempty"` // IANA label, e.g. "America/New_York"
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// DailySchedule is one recurring weekly rule: a day of week plus one time
// range. Multiple rows per (schedule, day) are allowed for split shifts.
type DailySchedule struct {
	ID         string    `bson:"id" json:"id"`
	ScheduleID string    `bson:"scheduleId" json:"scheduleId"`
	DayOfWeek  int       `bson:"dayOfWeek" json:"dayOfWeek"`  // 0=Sunday .. 6=Saturday
	StartTime  time.Time `bson:"startTime" json:"startTime"`  // only the wall-clock part is meaningful
	EndTime    time.Time `bson:"endTime" json:"endTime"`
}

// ScheduleOverride is a date-specific exception. The presence of any
// override row for a date suppresses the weekly rule for that date
// entirely; a blocked row wins over sibling rows for the same date.
type ScheduleOverride struct {
	ID         string     `bson:"id" json:"id"`
	ScheduleID string     `bson:"scheduleId" json:"scheduleId"`
	Date       time.Time  `bson:"date" json:"date"` // midnight, date identity only
	Blocked    bool       `bson:"blocked" json:"blocked"`
	StartTime  *time.Time `bson:"startTime,omitempty" json:"startTime,omitempty"` // nil when blocked
	EndTime    *time.Time `bson:"endTime,omitempty" json:"endTime,omitempty"`
}

// WeeklyRuleInput is one rule in a weekly schedule replacement request.
type WeeklyRuleInput struct {
	DayOfWeek int    `json:"dayOfWeek" binding:"min=0,max=6"`
	StartTime string `json:"startTime" binding:"required"` // "HH:MM"
	EndTime   string `json:"endTime" binding:"required"`   // "HH:MM"
}

// SetWeeklyScheduleRequest replaces the full weekly rule set of a schedule.
type SetWeeklyScheduleRequest struct {
	Rules []WeeklyRuleInput `json:"rules" binding:"required"`
}

// OverrideInput defines the payload for creating a date override.
type OverrideInput struct {
	Date      string `json:"date" binding:"required"` // "YYYY-MM-DD"
	Blocked   bool   `json:"blocked"`
	StartTime string `json:"startTime"` // "HH:MM", required unless blocked
	EndTime   string `json:"endTime"`
}
