package entity

import "time"

// Event represents a calendar event as seen through the calendar gateway.
// The remote calendar service is the system of record; this value is a
// read-side projection.
type Event struct {
	ID       string
	Summary  string
	Start    time.Time
	End      time.Time
	Location string
	AllDay   bool
}

// EventDraft is a not-yet-created calendar event produced by a preview turn.
type EventDraft struct {
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	Location    string
	Attendees   []string
	Recurrence  []string
	Reminders   []EventReminder
}

// EventReminder is a reminder override attached to an event draft.
type EventReminder struct {
	Method  string
	Minutes int
}

// PendingAction holds the event drafts produced by a preview call until the
// next turn's confirm call consumes them. It is session-scoped and never
// persisted.
type PendingAction struct {
	Drafts    []EventDraft
	CreatedAt time.Time
}
