package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dolma/backend/internal/application/adapter"
	domainerror "github.com/dolma/backend/internal/domain/error"
)

// handleUpdateEvent previews or applies field changes to every event
// matching the query. The confirm turn re-resolves against the current
// arguments; matches are patched independently and a success count is
// reported.
func (uc *ChatUseCase) handleUpdateEvent(ctx context.Context, _ string, raw json.RawMessage) (*Reply, error) {
	var args updateEventArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}

	patch, changes, err := uc.patchFromArgs(args)
	if err != nil {
		return nil, err
	}
	if len(changes) == 0 {
		return nil, malformedf("update_event without any field changes")
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
		var lines []string
		for _, ev := range events {
			lines = append(lines, fmt.Sprintf("- %s (%s)", ev.Summary, uc.times.FormatDateOnly(ev.Start)))
		}
		return &Reply{
			Reply: fmt.Sprintf("This would update %s:\n%s\nShall I apply the changes?",
				countNoun(len(events), "event"), strings.Join(lines, "\n")),
			CTA:   "Update " + countNoun(len(events), "event"),
			Items: changes,
		}, nil
	}

	updated := 0
	var ids []string
	for _, ev := range events {
		patched, err := uc.calendar.UpdateEvent(ctx, ev.ID, patch)
		if err != nil {
			slog.Warn("event update failed", "event_id", ev.ID, "error", err)
			continue
		}
		updated++
		ids = append(ids, patched.ID)
	}
	if updated == 0 {
		return nil, domainerror.NewAssistantError(
			domainerror.ErrCodeUpstreamUnavailable,
			"no events could be updated",
			domainerror.ErrUpstreamUnavailable,
		)
	}

	return &Reply{
		Reply:    fmt.Sprintf("Updated %s on your calendar.", countNoun(updated, "event")),
		EventIDs: ids,
	}, nil
}

// patchFromArgs builds the sparse event patch plus the field→new-value
// pairs shown in the preview.
func (uc *ChatUseCase) patchFromArgs(args updateEventArgs) (adapter.EventPatch, []ReplyItem, error) {
	var patch adapter.EventPatch
	var changes []ReplyItem

	if args.NewSummary != nil {
		patch.Summary = args.NewSummary
		changes = append(changes, ReplyItem{Label: "Title", Value: *args.NewSummary})
	}
	if args.NewDescription != nil {
		patch.Description = args.NewDescription
		changes = append(changes, ReplyItem{Label: "Description", Value: *args.NewDescription})
	}
	if args.NewLocation != nil {
		patch.Location = args.NewLocation
		changes = append(changes, ReplyItem{Label: "Location", Value: *args.NewLocation})
	}
	if args.NewStartTime != nil {
		start, err := uc.parsePatchTime(*args.NewStartTime)
		if err != nil {
			return adapter.EventPatch{}, nil, err
		}
		patch.Start = start
		changes = append(changes, ReplyItem{Label: "Starts", Value: uc.times.FormatDateTime(*start)})
	}
	if args.NewEndTime != nil {
		end, err := uc.parsePatchTime(*args.NewEndTime)
		if err != nil {
			return adapter.EventPatch{}, nil, err
		}
		patch.End = end
		changes = append(changes, ReplyItem{Label: "Ends", Value: uc.times.FormatDateTime(*end)})
	}
	return patch, changes, nil
}

func (uc *ChatUseCase) parsePatchTime(s string) (*time.Time, error) {
	t, _, err := uc.times.ParseDateTime(s)
	if err != nil {
		return nil, malformedf("unparseable time %q", s)
	}
	return &t, nil
}
