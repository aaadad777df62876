package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// handleFindEvents resolves a free-text event query and returns the
// matches. Read-only, so no confirmation phase.
func (uc *ChatUseCase) handleFindEvents(ctx context.Context, _ string, raw json.RawMessage) (*Reply, error) {
	var args findEventsArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}

	events, err := uc.resolveEvents(ctx, args.Query, args.Preset, args.StartTime, args.EndTime)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		if strings.TrimSpace(args.Query) != "" {
			return &Reply{Reply: fmt.Sprintf("I couldn't find any events matching %q in that period.", args.Query)}, nil
		}
		return &Reply{Reply: "Your calendar looks clear for that period."}, nil
	}

	var lines []string
	for _, ev := range events {
		when := uc.times.FormatDateOnly(ev.Start)
		if !ev.AllDay {
			when += ", " + uc.times.FormatTimeRange(ev.Start, ev.End)
		}
		lines = append(lines, fmt.Sprintf("- %s (%s)", ev.Summary, when))
	}

	return &Reply{
		Reply:  fmt.Sprintf("I found %s:\n%s", countNoun(len(events), "event"), strings.Join(lines, "\n")),
		Events: events,
	}, nil
}
