package availability

import (
	"time"

	"slotify/models"
)

// ExpandSlots expands time ranges into discrete bookable slots. A slot is
// emitted at every interval step whose full duration still fits inside the
// range; a slot ending exactly at the range end is valid. Ranges are
// expanded independently: overlapping or adjacent input ranges are not
// merged, so callers needing a single ordered list across ranges must sort.
func ExpandSlots(ranges []models.TimeRange, durationMinutes, intervalMinutes int) []models.Slot {
	if durationMinutes <= 0 || intervalMinutes <= 0 {
		return nil
	}
	duration := time.Duration(durationMinutes) * time.Minute
	step := time.Duration(intervalMinutes) * time.Minute

	var slots []models.Slot
	for _, r := range ranges {
		start, err := time.Parse(timeLayout, r.Start)
		if err != nil {
			continue
		}
		end, err := time.Parse(timeLayout, r.End)
		if err != nil {
			continue
		}
		for t := start; !t.Add(duration).After(end); t = t.Add(step) {
			slots = append(slots, models.Slot{
				StartTime:    t.Format(timeLayout),
				DisplayLabel: t.Format("3:04 PM"),
				Period:       periodOfDay(t.Hour()),
			})
		}
	}
	return slots
}

// periodOfDay buckets a slot by its start hour.
func periodOfDay(hour int) string {
	switch {
	case hour < 12:
		return "Morning"
	case hour < 17:
		return "Afternoon"
	default:
		return "Evening"
	}
}
