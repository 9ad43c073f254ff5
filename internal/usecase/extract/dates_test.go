package extract

import (
	"testing"
	"time"
)

func TestResolveDateToken(t *testing.T) {
	// Wednesday
	ref := time.Date(2024, 12, 11, 15, 45, 0, 0, time.UTC)

	cases := []struct {
		token string
		want  time.Time
		ok    bool
	}{
		{"tomorrow", time.Date(2024, 12, 12, 0, 0, 0, 0, time.UTC), true},
		{"Tomorrow.", time.Date(2024, 12, 12, 0, 0, 0, 0, time.UTC), true},
		{"today", time.Date(2024, 12, 11, 0, 0, 0, 0, time.UTC), true},
		{"EOD", time.Date(2024, 12, 11, 17, 0, 0, 0, time.UTC), true},
		{"next week", time.Date(2024, 12, 18, 0, 0, 0, 0, time.UTC), true},
		{"sometime next week", time.Date(2024, 12, 18, 0, 0, 0, 0, time.UTC), true},
		{"next month", time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), true},
		{"2024-12-20", time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC), true},
		{"Friday", time.Date(2024, 12, 13, 0, 0, 0, 0, time.UTC), true},
		{"thursday", time.Date(2024, 12, 12, 0, 0, 0, 0, time.UTC), true},
		// same weekday as the reference date lands a full week out
		{"Wednesday", time.Date(2024, 12, 18, 0, 0, 0, 0, time.UTC), true},
		// earlier weekday in the week wraps forward, never backward
		{"Monday", time.Date(2024, 12, 16, 0, 0, 0, 0, time.UTC), true},
		{"whenever", time.Time{}, false},
		{"2024-13-45", time.Time{}, false},
		{"", time.Time{}, false},
	}

	for _, tc := range cases {
		got, ok := resolveDateToken(tc.token, ref)
		if ok != tc.ok {
			t.Errorf("resolveDateToken(%q) ok = %v, want %v", tc.token, ok, tc.ok)
			continue
		}
		if ok && !got.Equal(tc.want) {
			t.Errorf("resolveDateToken(%q) = %v, want %v", tc.token, got, tc.want)
		}
	}
}

func TestNextWeekdayStrictlyFuture(t *testing.T) {
	// Every weekday against every target must land 1..7 days out
	start := time.Date(2024, 12, 8, 0, 0, 0, 0, time.UTC) // a Sunday

	for d := 0; d < 7; d++ {
		ref := start.AddDate(0, 0, d)
		for target := time.Sunday; target <= time.Saturday; target++ {
			got := nextWeekday(ref, target)
			days := int(got.Sub(dayStart(ref)).Hours() / 24)
			if days < 1 || days > 7 {
				t.Errorf("nextWeekday(%v, %v) landed %d days out", ref.Weekday(), target, days)
			}
			if got.Weekday() != target {
				t.Errorf("nextWeekday(%v, %v) = %v", ref.Weekday(), target, got.Weekday())
			}
		}
	}
}

func TestDayStart(t *testing.T) {
	ts := time.Date(2024, 12, 11, 23, 59, 58, 123, time.UTC)
	got := dayStart(ts)
	want := time.Date(2024, 12, 11, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("dayStart(%v) = %v, want %v", ts, got, want)
	}
}
