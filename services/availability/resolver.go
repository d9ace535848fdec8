package availability

import (
	"time"

	"slotify/models"

	"go.uber.org/zap"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// farFuture stands in for the end date of unbounded events.
var farFuture = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)

// ResolveMonth computes per-date availability for the window spanning the
// first day of the month before target's month through the last day of
// target's month. The window start is clamped forward to now and to the
// event's start date; the window end is clamped back to the event's end
// date. The returned time is the effective window start, which the route
// layer uses as the anchor month to correct stale month query parameters.
//
// ResolveMonth is pure: it never mutates its inputs and allocates a fresh
// map per call, so identical inputs (including now) yield identical output.
func ResolveMonth(
	target time.Time,
	event models.AppointmentEvent,
	daily []models.DailySchedule,
	overrides []models.ScheduleOverride,
	now time.Time,
) (models.Availability, time.Time) {
	firstDayOfMonth := time.Date(target.Year(), target.Month()-1, 1, 0, 0, 0, 0, target.Location())
	lastDayOfMonth := time.Date(target.Year(), target.Month()+1, 0, 0, 0, 0, 0, target.Location())

	eventStart := time.Time{}
	if event.StartDate != nil {
		eventStart = *event.StartDate
	}
	eventEnd := farFuture
	if event.EndDate != nil {
		eventEnd = *event.EndDate
	}
	firstDayOfEventEndMonth := time.Date(eventEnd.Year(), eventEnd.Month(), 1, 0, 0, 0, 0, eventEnd.Location())

	effectiveStart := maxTime(eventStart, now, minTime(firstDayOfMonth, firstDayOfEventEndMonth))
	effectiveEnd := minTime(eventEnd, lastDayOfMonth)

	byDay := rangesByWeekday(daily)
	overrideRanges := overrideMap(overrides)

	avail := models.Availability{}
	last := startOfDay(effectiveEnd)
	for d := startOfDay(effectiveStart); !d.After(last); d = d.AddDate(0, 0, 1) {
		key := d.Format(dateLayout)
		if ranges, ok := overrideRanges[key]; ok {
			avail[key] = ranges
		} else if ranges, ok := byDay[d.Weekday()]; ok {
			avail[key] = append([]models.TimeRange(nil), ranges...)
		} else {
			avail[key] = []models.TimeRange{}
		}
	}
	return avail, effectiveStart
}

// ResolveDay computes the effective time ranges for a single date, applying
// the same override-over-weekly precedence and the same now/event-bounds
// clamping as ResolveMonth. Dates in the past or outside the event's
// validity window resolve to no ranges.
func ResolveDay(
	date time.Time,
	event models.AppointmentEvent,
	daily []models.DailySchedule,
	overrides []models.ScheduleOverride,
	now time.Time,
) []models.TimeRange {
	d := startOfDay(date)
	if d.Before(startOfDay(now)) {
		return nil
	}
	if event.StartDate != nil && d.Before(startOfDay(*event.StartDate)) {
		return nil
	}
	if event.EndDate != nil && d.After(startOfDay(*event.EndDate)) {
		return nil
	}

	key := d.Format(dateLayout)
	if ranges, ok := overrideMap(overrides)[key]; ok {
		return ranges
	}
	if ranges, ok := rangesByWeekday(daily)[d.Weekday()]; ok {
		return append([]models.TimeRange(nil), ranges...)
	}
	return nil
}

// rangesByWeekday groups weekly rules by day of week, converting the stored
// instants to wall-clock strings.
func rangesByWeekday(daily []models.DailySchedule) map[time.Weekday][]models.TimeRange {
	byDay := make(map[time.Weekday][]models.TimeRange)
	for _, rule := range daily {
		day := time.Weekday(rule.DayOfWeek)
		byDay[day] = append(byDay[day], models.TimeRange{
			Start: rule.StartTime.Format(timeLayout),
			End:   rule.EndTime.Format(timeLayout),
		})
	}
	return byDay
}

// overrideMap builds the date-keyed override ranges. A blocked row maps its
// date to an empty list and wins over any sibling rows for the same date.
// A non-blocked row missing either time is dropped.
func overrideMap(overrides []models.ScheduleOverride) map[string][]models.TimeRange {
	m := make(map[string][]models.TimeRange)
	blocked := make(map[string]bool)
	for _, row := range overrides {
		key := row.Date.Format(dateLayout)
		if row.Blocked {
			m[key] = []models.TimeRange{}
			blocked[key] = true
			continue
		}
		if blocked[key] {
			continue
		}
		if row.StartTime == nil || row.EndTime == nil {
			zap.L().Debug("dropping incomplete schedule override",
				zap.String("overrideId", row.ID), zap.String("date", key))
			continue
		}
		m[key] = append(m[key], models.TimeRange{
			Start: row.StartTime.Format(timeLayout),
			End:   row.EndTime.Format(timeLayout),
		})
	}
	return m
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

func maxTime(ts ...time.Time) time.Time {
	max := ts[0]
	for _, t := range ts[1:] {
		if t.After(max) {
			max = t
		}
	}
	return max
}
