package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	domainerror "github.com/dolma/backend/internal/domain/error"
	"github.com/dolma/backend/internal/domain/entity"
)

// handleCreateEvent previews or creates one or more calendar events. The
// preview stashes the drafts as the session's pending action; the confirm
// turn consumes the stash unless the confirm call carries fresh drafts.
func (uc *ChatUseCase) handleCreateEvent(ctx context.Context, sessionID string, raw json.RawMessage) (*Reply, error) {
	var args createEventArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}

	if !args.Confirm {
		drafts, err := uc.draftsFromArgs(args)
		if err != nil {
			return nil, err
		}
		if len(drafts) == 0 {
			return nil, malformedf("create_event preview without event details")
		}
		uc.pending.Put(sessionID, drafts, uc.now())
		return uc.createEventPreview(drafts), nil
	}

	// Confirm: inline drafts supersede the stash; otherwise fall back to
	// the previous preview. The stash is dropped either way.
	drafts, inlineErr := uc.draftsFromArgs(args)
	stashed := uc.pending.Take(sessionID)
	if len(drafts) == 0 {
		drafts = stashed
	}
	if len(drafts) == 0 {
		if inlineErr != nil {
			return nil, inlineErr
		}
		return nil, domainerror.NewAssistantError(
			domainerror.ErrCodeNothingPending,
			"confirm with no pending event drafts",
			domainerror.ErrNothingPending,
		)
	}

	created := 0
	var ids []string
	for _, draft := range drafts {
		ev, err := uc.calendar.CreateEvent(ctx, draft)
		if err != nil {
			slog.Warn("event creation failed", "summary", draft.Summary, "error", err)
			continue
		}
		created++
		ids = append(ids, ev.ID)
	}
	if created == 0 {
		return nil, domainerror.NewAssistantError(
			domainerror.ErrCodeUpstreamUnavailable,
			"no events could be created",
			domainerror.ErrUpstreamUnavailable,
		)
	}

	return &Reply{
		Reply:    fmt.Sprintf("Done! I added %s to your calendar.", countNoun(created, "event")),
		EventIDs: ids,
	}, nil
}

// createEventPreview renders the deterministic summary of what a confirm
// turn would create.
func (uc *ChatUseCase) createEventPreview(drafts []entity.EventDraft) *Reply {
	items := make([]ReplyItem, 0, len(drafts))
	var lines []string
	for _, d := range drafts {
		when := uc.times.FormatDateOnly(d.Start) + ", " + uc.times.FormatTimeRange(d.Start, d.End)
		items = append(items, ReplyItem{Label: d.Summary, Value: when})
		lines = append(lines, fmt.Sprintf("- %s (%s)", d.Summary, when))
	}
	return &Reply{
		Reply: fmt.Sprintf("Here's what I'll add to your calendar:\n%s\nShall I go ahead?", strings.Join(lines, "\n")),
		CTA:   "Create " + countNoun(len(drafts), "event"),
		Items: items,
	}
}

// draftsFromArgs converts tool arguments into event drafts. Either the
// "events" array or the top-level single-event fields may be used. An
// empty argument set yields no drafts and no error.
func (uc *ChatUseCase) draftsFromArgs(args createEventArgs) ([]entity.EventDraft, error) {
	raws := args.Events
	if len(raws) == 0 {
		if args.Summary == "" && args.StartTime == "" {
			return nil, nil
		}
		raws = []eventDraftArgs{args.eventDraftArgs}
	}

	drafts := make([]entity.EventDraft, 0, len(raws))
	for _, r := range raws {
		draft, err := uc.draftFromArgs(r)
		if err != nil {
			return nil, err
		}
		drafts = append(drafts, draft)
	}
	return drafts, nil
}

func (uc *ChatUseCase) draftFromArgs(r eventDraftArgs) (entity.EventDraft, error) {
	if strings.TrimSpace(r.Summary) == "" {
		return entity.EventDraft{}, malformedf("event is missing a title")
	}
	if r.StartTime == "" || r.EndTime == "" {
		return entity.EventDraft{}, malformedf("event %q is missing its start or end time", r.Summary)
	}
	start, _, err := uc.times.ParseDateTime(r.StartTime)
	if err != nil {
		return entity.EventDraft{}, malformedf("unparseable start time %q", r.StartTime)
	}
	end, dateOnly, err := uc.times.ParseDateTime(r.EndTime)
	if err != nil {
		return entity.EventDraft{}, malformedf("unparseable end time %q", r.EndTime)
	}
	if dateOnly && !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}

	reminders := make([]entity.EventReminder, 0, len(r.Reminders))
	for _, rem := range r.Reminders {
		reminders = append(reminders, entity.EventReminder{Method: rem.Method, Minutes: rem.Minutes})
	}

	return entity.EventDraft{
		Summary:     strings.TrimSpace(r.Summary),
		Description: r.Description,
		Start:       start,
		End:         end,
		Location:    r.Location,
		Attendees:   r.Attendees,
		Recurrence:  r.Recurrence,
		Reminders:   reminders,
	}, nil
}

// countNoun renders "1 event" / "3 events".
func countNoun(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
