package availability

import (
	"reflect"
	"testing"
	"time"

	"slotify/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func clock(h, min int) time.Time {
	return time.Date(2000, 1, 1, h, min, 0, 0, time.UTC)
}

func clockPtr(h, min int) *time.Time {
	t := clock(h, min)
	return &t
}

func weeklyRule(dayOfWeek, startHour, endHour int) models.DailySchedule {
	return models.DailySchedule{
		ID:         "rule",
		ScheduleID: "sched",
		DayOfWeek:  dayOfWeek,
		StartTime:  clock(startHour, 0),
		EndTime:    clock(endHour, 0),
	}
}

func TestResolveMonth_WindowCoversBothMonthsWithNoGaps(t *testing.T) {
	now := time.Date(2026, time.September, 10, 10, 30, 0, 0, time.UTC)
	target := day(2026, time.October, 15)

	avail, anchor := ResolveMonth(target, models.AppointmentEvent{}, nil, nil, now)

	if !anchor.Equal(now) {
		t.Fatalf("expected anchor %s, got %s", now, anchor)
	}
	// One entry per calendar date from now's date through Oct 31, no gaps.
	first := day(2026, time.September, 10)
	last := day(2026, time.October, 31)
	count := 0
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		if _, ok := avail[d.Format("2006-01-02")]; !ok {
			t.Fatalf("missing entry for %s", d.Format("2006-01-02"))
		}
		count++
	}
	if len(avail) != count {
		t.Fatalf("expected %d entries, got %d", count, len(avail))
	}
}

func TestResolveMonth_EffectiveStartRespectsEventStart(t *testing.T) {
	now := time.Date(2026, time.September, 1, 8, 0, 0, 0, time.UTC)
	eventStart := day(2026, time.September, 20)
	event := models.AppointmentEvent{StartDate: &eventStart}

	avail, anchor := ResolveMonth(day(2026, time.October, 1), event, nil, nil, now)

	if !anchor.Equal(eventStart) {
		t.Fatalf("expected anchor %s, got %s", eventStart, anchor)
	}
	if _, ok := avail["2026-09-19"]; ok {
		t.Fatal("window must not start before the event start date")
	}
	if _, ok := avail["2026-09-20"]; !ok {
		t.Fatal("window must include the event start date")
	}
}

func TestResolveMonth_EffectiveEndRespectsEventEnd(t *testing.T) {
	now := time.Date(2026, time.September, 1, 8, 0, 0, 0, time.UTC)
	eventEnd := day(2026, time.October, 10)
	event := models.AppointmentEvent{EndDate: &eventEnd}

	avail, _ := ResolveMonth(day(2026, time.October, 1), event, nil, nil, now)

	if _, ok := avail["2026-10-10"]; !ok {
		t.Fatal("window must include the event end date")
	}
	if _, ok := avail["2026-10-11"]; ok {
		t.Fatal("window must not extend past the event end date")
	}
}

func TestResolveMonth_EmptyWindow(t *testing.T) {
	// Event ended long before the requested month.
	eventEnd := day(2026, time.March, 1)
	event := models.AppointmentEvent{EndDate: &eventEnd}
	now := time.Date(2026, time.September, 1, 8, 0, 0, 0, time.UTC)

	avail, _ := ResolveMonth(day(2026, time.October, 1), event, nil, nil, now)

	if len(avail) != 0 {
		t.Fatalf("expected empty availability, got %d entries", len(avail))
	}
}

func TestResolveMonth_WeeklyRuleAppliesToMatchingWeekdays(t *testing.T) {
	now := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	daily := []models.DailySchedule{weeklyRule(1, 9, 17)} // Mondays 09:00-17:00

	avail, _ := ResolveMonth(day(2026, time.October, 1), models.AppointmentEvent{}, daily, nil, now)

	want := []models.TimeRange{{Start: "09:00", End: "17:00"}}
	if got := avail["2026-09-07"]; !reflect.DeepEqual(got, want) { // a Monday
		t.Fatalf("expected %v on Monday, got %v", want, got)
	}
	if got := avail["2026-09-08"]; len(got) != 0 { // a Tuesday
		t.Fatalf("expected no ranges on Tuesday, got %v", got)
	}
}

func TestResolveMonth_SplitShiftsKeepOrder(t *testing.T) {
	now := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	daily := []models.DailySchedule{
		weeklyRule(3, 9, 12),
		weeklyRule(3, 14, 17),
	}

	avail, _ := ResolveMonth(day(2026, time.October, 1), models.AppointmentEvent{}, daily, nil, now)

	want := []models.TimeRange{{Start: "09:00", End: "12:00"}, {Start: "14:00", End: "17:00"}}
	if got := avail["2026-09-02"]; !reflect.DeepEqual(got, want) { // a Wednesday
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestResolveMonth_BlockedOverrideSuppressesWeeklyRule(t *testing.T) {
	now := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	daily := []models.DailySchedule{weeklyRule(1, 9, 17)}
	overrides := []models.ScheduleOverride{
		{ID: "ov1", ScheduleID: "sched", Date: day(2026, time.September, 7), Blocked: true},
	}

	avail, _ := ResolveMonth(day(2026, time.October, 1), models.AppointmentEvent{}, daily, overrides, now)

	if got := avail["2026-09-07"]; len(got) != 0 {
		t.Fatalf("blocked Monday must have no ranges, got %v", got)
	}
	// Other Mondays in the window keep the weekly rule.
	want := []models.TimeRange{{Start: "09:00", End: "17:00"}}
	for _, monday := range []string{"2026-09-14", "2026-09-21", "2026-09-28", "2026-10-05"} {
		if got := avail[monday]; !reflect.DeepEqual(got, want) {
			t.Fatalf("expected %v on %s, got %v", want, monday, got)
		}
	}
}

func TestResolveMonth_CustomOverrideReplacesWeeklyRule(t *testing.T) {
	now := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	daily := []models.DailySchedule{weeklyRule(1, 9, 17)}
	overrides := []models.ScheduleOverride{
		{
			ID: "ov1", ScheduleID: "sched", Date: day(2026, time.September, 7),
			StartTime: clockPtr(13, 0), EndTime: clockPtr(15, 30),
		},
	}

	avail, _ := ResolveMonth(day(2026, time.October, 1), models.AppointmentEvent{}, daily, overrides, now)

	want := []models.TimeRange{{Start: "13:00", End: "15:30"}}
	if got := avail["2026-09-07"]; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected override ranges %v, got %v", want, got)
	}
}

func TestResolveMonth_BlockedWinsOverSiblingOverrideRows(t *testing.T) {
	now := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	date := day(2026, time.September, 7)
	// Blocked row sandwiched between custom rows for the same date; order
	// must not matter.
	overrides := []models.ScheduleOverride{
		{ID: "a", ScheduleID: "sched", Date: date, StartTime: clockPtr(9, 0), EndTime: clockPtr(10, 0)},
		{ID: "b", ScheduleID: "sched", Date: date, Blocked: true},
		{ID: "c", ScheduleID: "sched", Date: date, StartTime: clockPtr(11, 0), EndTime: clockPtr(12, 0)},
	}

	avail, _ := ResolveMonth(day(2026, time.October, 1), models.AppointmentEvent{}, nil, overrides, now)

	if got := avail["2026-09-07"]; len(got) != 0 {
		t.Fatalf("blocked override must win, got %v", got)
	}
}

func TestResolveMonth_IncompleteOverrideRowIsDropped(t *testing.T) {
	now := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	daily := []models.DailySchedule{weeklyRule(1, 9, 17)}
	overrides := []models.ScheduleOverride{
		{ID: "ov1", ScheduleID: "sched", Date: day(2026, time.September, 7), StartTime: clockPtr(13, 0)}, // missing end
	}

	avail, _ := ResolveMonth(day(2026, time.October, 1), models.AppointmentEvent{}, daily, overrides, now)

	// The dropped row leaves no override entry, so the weekly rule applies.
	want := []models.TimeRange{{Start: "09:00", End: "17:00"}}
	if got := avail["2026-09-07"]; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected weekly rule %v after dropped override, got %v", want, got)
	}
}

func TestResolveMonth_Idempotent(t *testing.T) {
	now := time.Date(2026, time.September, 10, 10, 30, 0, 0, time.UTC)
	daily := []models.DailySchedule{weeklyRule(1, 9, 17), weeklyRule(4, 10, 12)}
	overrides := []models.ScheduleOverride{
		{ID: "ov1", ScheduleID: "sched", Date: day(2026, time.September, 14), Blocked: true},
	}
	event := models.AppointmentEvent{}

	first, anchor1 := ResolveMonth(day(2026, time.October, 1), event, daily, overrides, now)
	second, anchor2 := ResolveMonth(day(2026, time.October, 1), event, daily, overrides, now)

	if !anchor1.Equal(anchor2) {
		t.Fatalf("anchors differ: %s vs %s", anchor1, anchor2)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical inputs must yield identical availability")
	}
}

func TestResolveMonth_DoesNotMutateInputs(t *testing.T) {
	now := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	daily := []models.DailySchedule{weeklyRule(1, 9, 17)}

	avail, _ := ResolveMonth(day(2026, time.October, 1), models.AppointmentEvent{}, daily, nil, now)

	// Mutating a returned entry must not leak into other dates.
	avail["2026-09-07"][0].Start = "00:00"
	if got := avail["2026-09-14"][0].Start; got != "09:00" {
		t.Fatalf("entries must be independent copies, got %q", got)
	}
}

func TestResolveDay(t *testing.T) {
	now := time.Date(2026, time.September, 10, 9, 0, 0, 0, time.UTC)
	daily := []models.DailySchedule{weeklyRule(1, 9, 17)}
	overrides := []models.ScheduleOverride{
		{ID: "ov1", ScheduleID: "sched", Date: day(2026, time.September, 21), Blocked: true},
	}
	eventStart := day(2026, time.September, 14)
	eventEnd := day(2026, time.October, 5)
	event := models.AppointmentEvent{StartDate: &eventStart, EndDate: &eventEnd}

	tests := []struct {
		name string
		date time.Time
		want []models.TimeRange
	}{
		{"past date", day(2026, time.September, 7), nil},
		{"before event start", day(2026, time.September, 11), nil},
		{"monday in window", day(2026, time.September, 14), []models.TimeRange{{Start: "09:00", End: "17:00"}}},
		{"blocked monday", day(2026, time.September, 21), []models.TimeRange{}},
		{"tuesday without rule", day(2026, time.September, 15), nil},
		{"event end date itself", day(2026, time.October, 5), []models.TimeRange{{Start: "09:00", End: "17:00"}}},
		{"after event end", day(2026, time.October, 12), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveDay(tt.date, event, daily, overrides, now)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}
