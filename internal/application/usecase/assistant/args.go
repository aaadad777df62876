package assistant

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	domainerror "github.com/dolma/backend/internal/domain/error"
)

// Number decodes a JSON number or a numeric string. Models occasionally
// quote numeric arguments; both forms are accepted.
type Number float64

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if string(trimmed) == "null" {
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return domainerror.ErrInvalidNumericValue
		}
		*n = Number(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(trimmed, &f); err != nil {
		return err
	}
	*n = Number(f)
	return nil
}

// Float returns the value as a *float64, or nil when the pointer is nil.
func (n *Number) Float() *float64 {
	if n == nil {
		return nil
	}
	f := float64(*n)
	return &f
}

// decodeArgs strictly decodes raw tool-call arguments into v. Failures are
// reported as malformed-argument errors so the router can reply with a
// clarification instead of crashing the turn. The decoding error is kept in
// the chain so a non-numeric value gets its own clarification.
func decodeArgs(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		raw = []byte("{}")
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return domainerror.NewAssistantError(
			domainerror.ErrCodeMalformedArguments,
			"tool arguments are not valid structured data",
			errors.Join(domainerror.ErrMalformedArguments, err),
		)
	}
	return nil
}

// reminderArgs is a reminder override in tool-call arguments.
type reminderArgs struct {
	Method  string `json:"method"`
	Minutes int    `json:"minutes"`
}

// eventDraftArgs is one event inside a multi-event create_event call.
type eventDraftArgs struct {
	Summary     string         `json:"summary"`
	Description string         `json:"description"`
	StartTime   string         `json:"start_time"`
	EndTime     string         `json:"end_time"`
	Location    string         `json:"location"`
	Attendees   []string       `json:"attendees"`
	Recurrence  []string       `json:"recurrence"`
	Reminders   []reminderArgs `json:"reminders"`
}

// createEventArgs carries either a single event in the top-level fields or
// several under "events".
type createEventArgs struct {
	eventDraftArgs
	Events  []eventDraftArgs `json:"events"`
	Confirm bool             `json:"confirm"`
}

type findEventsArgs struct {
	Query     string `json:"query"`
	Preset    string `json:"preset"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type updateEventArgs struct {
	Query          string  `json:"query"`
	Preset         string  `json:"preset"`
	StartTime      string  `json:"start_time"`
	EndTime        string  `json:"end_time"`
	NewSummary     *string `json:"new_summary"`
	NewDescription *string `json:"new_description"`
	NewLocation    *string `json:"new_location"`
	NewStartTime   *string `json:"new_start_time"`
	NewEndTime     *string `json:"new_end_time"`
	Confirm        bool    `json:"confirm"`
}

type deleteEventArgs struct {
	Query     string `json:"query"`
	Preset    string `json:"preset"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Confirm   bool   `json:"confirm"`
}

type createGoalArgs struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	TargetDate    string  `json:"target_date"`
	TargetValue   *Number `json:"target_value"`
	TargetUnit    string  `json:"target_unit"`
	TargetPeriod  string  `json:"target_period"`
	ProgressValue *Number `json:"progress_value"`
	Confirm       bool    `json:"confirm"`
}

type updateGoalArgs struct {
	GoalID        string  `json:"goal_id"`
	GoalTitle     string  `json:"goal_title"`
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	TargetDate    *string `json:"target_date"`
	TargetValue   *Number `json:"target_value"`
	TargetUnit    *string `json:"target_unit"`
	TargetPeriod  *string `json:"target_period"`
	Progress      *int    `json:"progress"`
	ProgressValue *Number `json:"progress_value"`
	Status        *string `json:"status"`
	Note          *string `json:"note"`
	Confirm       bool    `json:"confirm"`
}

type listGoalsArgs struct {
	Status string `json:"status"`
}
