package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	domainerror "github.com/dolma/backend/internal/domain/error"
)

// handleDeleteEvent previews or deletes every event matching the query.
// Deletion is irreversible, so the preview lists each match explicitly.
func (uc *ChatUseCase) handleDeleteEvent(ctx context.Context, _ string, raw json.RawMessage) (*Reply, error) {
	var args deleteEventArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if strings.TrimSpace(args.Query) == "" && args.Preset == "" && args.StartTime == "" {
		return nil, malformedf("delete_event without a query or window")
	}

	events, err := uc.resolveEvents(ctx, args.Query, args.Preset, args.StartTime, args.EndTime)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, domainerror.NewAssistantError(
			domainerror.ErrCodeNoMatchingEvents,
			fmt.Sprintf("no events matching %q", args.Query),
			domainerror.ErrNoMatchingEvents,
		)
	}

	if !args.Confirm {
		items := make([]ReplyItem, 0, len(events))
		var lines []string
		for _, ev := range events {
			when := uc.times.FormatDateOnly(ev.Start)
			if !ev.AllDay {
				when += ", " + uc.times.FormatTimeRange(ev.Start, ev.End)
			}
			items = append(items, ReplyItem{Label: ev.Summary, Value: when})
			lines = append(lines, fmt.Sprintf("- %s (%s)", ev.Summary, when))
		}
		return &Reply{
			Reply: fmt.Sprintf("This would delete %s:\n%s\nAre you sure?",
				countNoun(len(events), "event"), strings.Join(lines, "\n")),
			CTA:   "Delete " + countNoun(len(events), "event"),
			Items: items,
		}, nil
	}

	deleted := 0
	var ids []string
	for _, ev := range events {
		if err := uc.calendar.DeleteEvent(ctx, ev.ID); err != nil {
			slog.Warn("event deletion failed", "event_id", ev.ID, "error", err)
			continue
		}
		deleted++
		ids = append(ids, ev.ID)
	}
	if deleted == 0 {
		return nil, domainerror.NewAssistantError(
			domainerror.ErrCodeUpstreamUnavailable,
			"no events could be deleted",
			domainerror.ErrUpstreamUnavailable,
		)
	}

	return &Reply{
		Reply:    fmt.Sprintf("Deleted %s from your calendar.", countNoun(deleted, "event")),
		EventIDs: ids,
	}, nil
}
