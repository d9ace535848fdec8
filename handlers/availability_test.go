package handlers

import (
	"testing"
	"time"
)

func TestParseMonthParam(t *testing.T) {
	now := time.Date(2026, time.September, 15, 10, 30, 0, 0, time.UTC)
	currentMonth := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		raw          string
		want         time.Time
		wantSupplied bool
	}{
		{"valid month", "2026-10", time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC), true},
		{"valid january", "2027-01", time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC), true},
		{"valid december", "2026-12", time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC), true},
		{"empty falls back", "", currentMonth, false},
		{"month 13 falls back", "2026-13", currentMonth, false},
		{"month 00 falls back", "2026-00", currentMonth, false},
		{"single digit month falls back", "2026-9", currentMonth, false},
		{"full date falls back", "2026-09-15", currentMonth, false},
		{"garbage falls back", "next-month", currentMonth, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, supplied := parseMonthParam(tc.raw, now)
			if !got.Equal(tc.want) {
				t.Fatalf("parseMonthParam(%q) = %v, want %v", tc.raw, got, tc.want)
			}
			if supplied != tc.wantSupplied {
				t.Fatalf("parseMonthParam(%q) supplied = %v, want %v", tc.raw, supplied, tc.wantSupplied)
			}
		})
	}
}
