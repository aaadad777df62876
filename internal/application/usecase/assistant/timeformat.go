package assistant

import (
	"time"
)

// TimeFormatter centralizes date/time parsing and rendering against the
// deployment's reference timezone. All methods are pure.
type TimeFormatter struct {
	loc *time.Location
}

// NewTimeFormatter creates a formatter for the given location. A nil
// location falls back to UTC.
func NewTimeFormatter(loc *time.Location) *TimeFormatter {
	if loc == nil {
		loc = time.UTC
	}
	return &TimeFormatter{loc: loc}
}

// Location returns the reference timezone.
func (f *TimeFormatter) Location() *time.Location {
	return f.loc
}

// FormatDateOnly renders just the calendar date of t.
func (f *TimeFormatter) FormatDateOnly(t time.Time) string {
	return t.In(f.loc).Format("Mon, Jan 2 2006")
}

// FormatTime renders just the clock time of t.
func (f *TimeFormatter) FormatTime(t time.Time) string {
	return t.In(f.loc).Format("3:04 PM")
}

// FormatTimeRange renders the clock times of a start/end pair.
func (f *TimeFormatter) FormatTimeRange(start, end time.Time) string {
	return f.FormatTime(start) + " - " + f.FormatTime(end)
}

// FormatDateTime renders a full date plus clock time.
func (f *TimeFormatter) FormatDateTime(t time.Time) string {
	return f.FormatDateOnly(t) + " at " + f.FormatTime(t)
}

// ParseDateTime parses an RFC3339 timestamp, a local datetime without
// offset (interpreted in the reference timezone), or a bare date. The
// second return value reports whether the input was date-only.
func (f *TimeFormatter) ParseDateTime(s string) (time.Time, bool, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, false, nil
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", s, f.loc); err == nil {
		return t, false, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, f.loc)
	if err != nil {
		return time.Time{}, false, err
	}
	return t, true, nil
}

// Preset names accepted for event time windows.
const (
	PresetToday    = "today"
	PresetTomorrow = "tomorrow"
	PresetThisWeek = "this_week"
	PresetNextWeek = "next_week"
)

// PresetWindow computes the [start, end) window for a named preset in the
// reference timezone. Weeks start on Monday. ok is false for unknown names.
func (f *TimeFormatter) PresetWindow(preset string, now time.Time) (start, end time.Time, ok bool) {
	local := now.In(f.loc)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, f.loc)

	switch preset {
	case PresetToday:
		return midnight, midnight.AddDate(0, 0, 1), true
	case PresetTomorrow:
		return midnight.AddDate(0, 0, 1), midnight.AddDate(0, 0, 2), true
	case PresetThisWeek:
		weekStart := midnight.AddDate(0, 0, -mondayOffset(local))
		return weekStart, weekStart.AddDate(0, 0, 7), true
	case PresetNextWeek:
		weekStart := midnight.AddDate(0, 0, 7-mondayOffset(local))
		return weekStart, weekStart.AddDate(0, 0, 7), true
	}
	return time.Time{}, time.Time{}, false
}

func mondayOffset(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
