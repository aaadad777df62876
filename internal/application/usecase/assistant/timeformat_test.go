package assistant

import (
	"testing"
	"time"
)

func TestParseDateTime(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Fatalf("failed to load location: %v", err)
	}
	f := NewTimeFormatter(berlin)

	t.Run("accepts RFC3339 with offset", func(t *testing.T) {
		got, dateOnly, err := f.ParseDateTime("2026-03-02T18:00:00Z")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dateOnly {
			t.Error("expected dateOnly false")
		}
		want := time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("interprets offset-less datetimes in the reference timezone", func(t *testing.T) {
		got, dateOnly, err := f.ParseDateTime("2026-03-02T18:00:00")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dateOnly {
			t.Error("expected dateOnly false")
		}
		want := time.Date(2026, 3, 2, 18, 0, 0, 0, berlin)
		if !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("flags bare dates as date-only", func(t *testing.T) {
		got, dateOnly, err := f.ParseDateTime("2026-03-02")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !dateOnly {
			t.Error("expected dateOnly true")
		}
		want := time.Date(2026, 3, 2, 0, 0, 0, 0, berlin)
		if !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("rejects unrecognized input", func(t *testing.T) {
		if _, _, err := f.ParseDateTime("next tuesday-ish"); err == nil {
			t.Error("expected an error")
		}
	})
}

func TestPresetWindow(t *testing.T) {
	f := NewTimeFormatter(time.UTC)
	// Wednesday
	now := time.Date(2026, 3, 4, 10, 30, 0, 0, time.UTC)

	cases := []struct {
		preset string
		start  time.Time
		end    time.Time
	}{
		{PresetToday, time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC), time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)},
		{PresetTomorrow, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)},
		{PresetThisWeek, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)},
		{PresetNextWeek, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		t.Run(tc.preset, func(t *testing.T) {
			start, end, ok := f.PresetWindow(tc.preset, now)
			if !ok {
				t.Fatalf("expected preset %q to resolve", tc.preset)
			}
			if !start.Equal(tc.start) || !end.Equal(tc.end) {
				t.Errorf("expected [%v, %v), got [%v, %v)", tc.start, tc.end, start, end)
			}
		})
	}

	t.Run("weeks start on Monday even on Sunday", func(t *testing.T) {
		sunday := time.Date(2026, 3, 8, 22, 0, 0, 0, time.UTC)
		start, _, ok := f.PresetWindow(PresetThisWeek, sunday)
		if !ok {
			t.Fatal("expected preset to resolve")
		}
		want := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
		if !start.Equal(want) {
			t.Errorf("expected week start %v, got %v", want, start)
		}
	})

	t.Run("unknown presets report not ok", func(t *testing.T) {
		if _, _, ok := f.PresetWindow("someday", now); ok {
			t.Error("expected ok false for unknown preset")
		}
	})
}

func TestFormatting(t *testing.T) {
	f := NewTimeFormatter(time.UTC)
	start := time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 2, 19, 30, 0, 0, time.UTC)

	if got := f.FormatDateOnly(start); got != "Mon, Mar 2 2026" {
		t.Errorf("unexpected date: %q", got)
	}
	if got := f.FormatTimeRange(start, end); got != "6:00 PM - 7:30 PM" {
		t.Errorf("unexpected range: %q", got)
	}
	if got := f.FormatDateTime(start); got != "Mon, Mar 2 2026 at 6:00 PM" {
		t.Errorf("unexpected datetime: %q", got)
	}
}
