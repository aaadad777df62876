package assistant

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/dolma/backend/internal/domain/entity"
	domainerror "github.com/dolma/backend/internal/domain/error"
)

const (
	// defaultWindowDays bounds event resolution when neither a preset nor
	// an explicit window is supplied.
	defaultWindowDays = 30

	// maxEventCandidates bounds the gateway fetch during resolution.
	maxEventCandidates = 50

	// maxGoalCandidates bounds a disambiguation listing.
	maxGoalCandidates = 5
)

// keywordSplitter breaks a free-text query on conjunctions into parts that
// are OR-matched against event titles.
var keywordSplitter = regexp.MustCompile(`(?i)\s+and\s+|\s*&\s*|\s*,\s*`)

// splitKeywords lowercases a query and splits it into non-empty keyword parts.
func splitKeywords(query string) []string {
	parts := keywordSplitter.Split(strings.ToLower(query), -1)
	keywords := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			keywords = append(keywords, trimmed)
		}
	}
	return keywords
}

// resolveEvents fetches candidate events for the window described by the
// arguments and keeps those whose summary contains any keyword part.
// Substring matching is intentional; the preview turn is the safety net
// against over-matching.
func (uc *ChatUseCase) resolveEvents(ctx context.Context, query, preset, startStr, endStr string) ([]*entity.Event, error) {
	start, end, err := uc.resolveWindow(preset, startStr, endStr)
	if err != nil {
		return nil, err
	}

	candidates, err := uc.calendar.FindEvents(ctx, start, end, maxEventCandidates)
	if err != nil {
		return nil, domainerror.NewAssistantError(
			domainerror.ErrCodeUpstreamUnavailable,
			"calendar lookup failed",
			errors.Join(domainerror.ErrUpstreamUnavailable, err),
		)
	}

	keywords := splitKeywords(query)
	if len(keywords) == 0 {
		return candidates, nil
	}

	matches := make([]*entity.Event, 0, len(candidates))
	for _, ev := range candidates {
		title := strings.ToLower(ev.Summary)
		for _, kw := range keywords {
			if strings.Contains(title, kw) {
				matches = append(matches, ev)
				break
			}
		}
	}
	return matches, nil
}

// resolveWindow picks the event search window: explicit bounds win over a
// named preset, which wins over the default window around now. A single
// explicit bound opens a default-length window on its missing side.
func (uc *ChatUseCase) resolveWindow(preset, startStr, endStr string) (time.Time, time.Time, error) {
	if startStr != "" || endStr != "" {
		var start, end time.Time
		if startStr != "" {
			var err error
			start, _, err = uc.times.ParseDateTime(startStr)
			if err != nil {
				return time.Time{}, time.Time{}, malformedf("unparseable window start %q", startStr)
			}
		}
		if endStr != "" {
			parsed, dateOnly, err := uc.times.ParseDateTime(endStr)
			if err != nil {
				return time.Time{}, time.Time{}, malformedf("unparseable window end %q", endStr)
			}
			if dateOnly {
				parsed = parsed.AddDate(0, 0, 1)
			}
			end = parsed
		}
		if end.IsZero() {
			end = start.AddDate(0, 0, defaultWindowDays)
		}
		if start.IsZero() {
			start = end.AddDate(0, 0, -defaultWindowDays)
		}
		return start, end, nil
	}

	if preset != "" {
		if start, end, ok := uc.times.PresetWindow(preset, uc.now()); ok {
			return start, end, nil
		}
	}

	now := uc.now()
	return now.AddDate(0, 0, -defaultWindowDays), now.AddDate(0, 0, defaultWindowDays), nil
}

// resolveGoal maps a goal_id or a title fragment to a single goal. When the
// fragment matches several goals the candidate list is returned so the
// caller can ask the user to pick; the resolver never guesses.
func (uc *ChatUseCase) resolveGoal(ctx context.Context, goalID, goalTitle string) (*entity.Goal, []*entity.Goal, error) {
	goalID = strings.TrimSpace(goalID)
	goalTitle = strings.TrimSpace(goalTitle)

	if goalID != "" {
		goal, err := uc.goals.Get(ctx, goalID)
		if err == nil {
			return goal, nil, nil
		}
		if !errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, nil, err
		}
		if goalTitle == "" {
			return nil, nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				fmt.Sprintf("no goal with id %q", goalID),
				domainerror.ErrGoalNotFound,
			)
		}
	}

	if goalTitle == "" {
		return nil, nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"no goal reference supplied",
			domainerror.ErrGoalNotFound,
		)
	}

	all, err := uc.goals.List(ctx, "")
	if err != nil {
		return nil, nil, err
	}

	fragment := strings.ToLower(goalTitle)
	var matches []*entity.Goal
	for _, g := range all {
		if strings.Contains(strings.ToLower(g.Title), fragment) {
			matches = append(matches, g)
		}
	}

	switch len(matches) {
	case 0:
		return nil, nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			fmt.Sprintf("no goal matching %q", goalTitle),
			domainerror.ErrGoalNotFound,
		)
	case 1:
		return matches[0], nil, nil
	default:
		if len(matches) > maxGoalCandidates {
			matches = matches[:maxGoalCandidates]
		}
		return nil, matches, domainerror.NewGoalError(
			domainerror.ErrCodeAmbiguousGoal,
			fmt.Sprintf("%q matches several goals", goalTitle),
			domainerror.ErrAmbiguousGoal,
		)
	}
}

func malformedf(format string, args ...any) error {
	return domainerror.NewAssistantError(
		domainerror.ErrCodeMalformedArguments,
		fmt.Sprintf(format, args...),
		domainerror.ErrMalformedArguments,
	)
}
