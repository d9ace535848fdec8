package availability

import (
	"reflect"
	"testing"
	"time"

	"slotify/models"
)

func slotStarts(slots []models.Slot) []string {
	starts := make([]string, len(slots))
	for i, s := range slots {
		starts[i] = s.StartTime
	}
	return starts
}

func TestExpandSlots(t *testing.T) {
	tests := []struct {
		name     string
		ranges   []models.TimeRange
		duration int
		interval int
		want     []string
	}{
		{
			name:     "slot ending exactly at range end is valid",
			ranges:   []models.TimeRange{{Start: "09:00", End: "10:00"}},
			duration: 30,
			interval: 30,
			want:     []string{"09:00", "09:30"},
		},
		{
			name:     "interval shorter than duration",
			ranges:   []models.TimeRange{{Start: "09:00", End: "10:00"}},
			duration: 30,
			interval: 15,
			want:     []string{"09:00", "09:15", "09:30"},
		},
		{
			name:     "duration exceeding range emits nothing",
			ranges:   []models.TimeRange{{Start: "09:00", End: "09:20"}},
			duration: 30,
			interval: 30,
			want:     nil,
		},
		{
			name:     "zero ranges",
			ranges:   nil,
			duration: 30,
			interval: 30,
			want:     nil,
		},
		{
			name: "ranges expand independently without merging",
			ranges: []models.TimeRange{
				{Start: "14:00", End: "15:00"},
				{Start: "09:00", End: "10:00"},
			},
			duration: 60,
			interval: 60,
			want:     []string{"14:00", "09:00"},
		},
		{
			name: "overlapping ranges produce duplicate slots",
			ranges: []models.TimeRange{
				{Start: "09:00", End: "10:00"},
				{Start: "09:00", End: "10:00"},
			},
			duration: 60,
			interval: 60,
			want:     []string{"09:00", "09:00"},
		},
		{
			name:     "unparseable range is skipped",
			ranges:   []models.TimeRange{{Start: "late", End: "later"}, {Start: "09:00", End: "10:00"}},
			duration: 60,
			interval: 60,
			want:     []string{"09:00"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slotStarts(ExpandSlots(tt.ranges, tt.duration, tt.interval))
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExpandSlots_InvalidDurationOrInterval(t *testing.T) {
	ranges := []models.TimeRange{{Start: "09:00", End: "17:00"}}
	if got := ExpandSlots(ranges, 0, 30); got != nil {
		t.Fatalf("expected no slots for zero duration, got %v", got)
	}
	if got := ExpandSlots(ranges, 30, 0); got != nil {
		t.Fatalf("expected no slots for zero interval, got %v", got)
	}
}

func TestExpandSlots_PeriodsAndLabels(t *testing.T) {
	ranges := []models.TimeRange{
		{Start: "11:00", End: "12:00"},
		{Start: "12:00", End: "13:00"},
		{Start: "16:30", End: "17:30"},
		{Start: "17:00", End: "18:00"},
	}
	slots := ExpandSlots(ranges, 60, 60)
	if len(slots) != 4 {
		t.Fatalf("expected 4 slots, got %d", len(slots))
	}
	wantPeriods := []string{"Morning", "Afternoon", "Afternoon", "Evening"}
	wantLabels := []string{"11:00 AM", "12:00 PM", "4:30 PM", "5:00 PM"}
	for i, s := range slots {
		if s.Period != wantPeriods[i] {
			t.Fatalf("slot %s: expected period %s, got %s", s.StartTime, wantPeriods[i], s.Period)
		}
		if s.DisplayLabel != wantLabels[i] {
			t.Fatalf("slot %s: expected label %s, got %s", s.StartTime, wantLabels[i], s.DisplayLabel)
		}
	}
}

// End-to-end: month resolution feeding slot expansion, mirroring the
// student flow of picking a Monday and expanding its hours.
func TestMonthResolutionFeedsSlotExpansion(t *testing.T) {
	now := day(2026, time.September, 1)
	daily := []models.DailySchedule{weeklyRule(1, 9, 11)}
	event := models.AppointmentEvent{DurationMinutes: 30, BookingInterval: 30}

	avail, _ := ResolveMonth(day(2026, time.October, 1), event, daily, nil, now)
	slots := ExpandSlots(avail["2026-09-07"], event.DurationMinutes, event.BookingInterval)

	want := []string{"09:00", "09:30", "10:00", "10:30"}
	if got := slotStarts(slots); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
