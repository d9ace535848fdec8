package booking

import (
	"testing"

	"slotify/models"
)

func TestContainsSlot(t *testing.T) {
	slots := []models.Slot{
		{StartTime: "09:00"},
		{StartTime: "09:30"},
	}
	if !containsSlot(slots, "09:30") {
		t.Fatal("expected 09:30 to be an open slot")
	}
	if containsSlot(slots, "10:00") {
		t.Fatal("10:00 must not be an open slot")
	}
	if containsSlot(nil, "09:00") {
		t.Fatal("no slots means nothing is bookable")
	}
}

func TestSlotEndTime(t *testing.T) {
	tests := []struct {
		start    string
		duration int
		want     string
	}{
		{"09:00", 30, "09:30"},
		{"09:45", 30, "10:15"},
		{"16:30", 90, "18:00"},
	}
	for _, tt := range tests {
		got, err := slotEndTime(tt.start, tt.duration)
		if err != nil {
			t.Fatalf("slotEndTime(%s, %d): %v", tt.start, tt.duration, err)
		}
		if got != tt.want {
			t.Fatalf("slotEndTime(%s, %d) = %s, want %s", tt.start, tt.duration, got, tt.want)
		}
	}

	if _, err := slotEndTime("not-a-time", 30); err == nil {
		t.Fatal("expected error for malformed start time")
	}
}
