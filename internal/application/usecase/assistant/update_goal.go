package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dolma/backend/internal/application/adapter"
	"github.com/dolma/backend/internal/domain/entity"
)

// handleUpdateGoal resolves the referenced goal, previews the field changes
// and applies them on confirm. An ambiguous title fragment produces a
// disambiguation listing; the handler never guesses between matches.
func (uc *ChatUseCase) handleUpdateGoal(ctx context.Context, _ string, raw json.RawMessage) (*Reply, error) {
	var args updateGoalArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}

	goal, candidates, err := uc.resolveGoal(ctx, args.GoalID, args.GoalTitle)
	if len(candidates) > 0 {
		return disambiguationReply(args.GoalTitle, candidates), nil
	}
	if err != nil {
		return nil, err
	}

	update, changes := updateFromArgs(args)
	if len(changes) == 0 {
		return nil, malformedf("update_goal for %q without any changes", goal.Title)
	}

	if !args.Confirm {
		return &Reply{
			Reply: fmt.Sprintf("Here's what I'll change on %q. Shall I apply it?", goal.Title),
			CTA:   "Update goal",
			Items: changes,
			Goals: []*entity.Goal{goal},
		}, nil
	}

	updated, err := uc.goals.Update(ctx, goal.ID, update)
	if err != nil {
		return nil, err
	}

	reply := fmt.Sprintf("Updated %q.", updated.Title)
	if updated.TargetValue != nil && updated.ProgressValue != nil {
		reply += fmt.Sprintf(" You're at %d%% (%s of %s %s).",
			updated.Progress,
			trimFloat(*updated.ProgressValue),
			trimFloat(*updated.TargetValue),
			unitLabel(updated.TargetUnit))
	}
	if updated.Status == entity.GoalStatusCompleted {
		reply += " Nice work, that one's complete!"
	}
	return &Reply{
		Reply: reply,
		Goals: []*entity.Goal{updated},
	}, nil
}

// disambiguationReply lists the matching goals so the user can re-issue a
// more specific reference.
func disambiguationReply(fragment string, candidates []*entity.Goal) *Reply {
	items := make([]ReplyItem, 0, len(candidates))
	var lines []string
	for _, g := range candidates {
		items = append(items, ReplyItem{Label: g.Title, Value: g.ShortID()})
		lines = append(lines, fmt.Sprintf("- %s (%s)", g.Title, g.ShortID()))
	}
	return &Reply{
		Reply: fmt.Sprintf("I found several goals matching %q:\n%s\nWhich one did you mean?",
			fragment, strings.Join(lines, "\n")),
		Items: items,
		Goals: candidates,
	}
}

// updateFromArgs builds the sparse store update plus the preview items.
func updateFromArgs(args updateGoalArgs) (adapter.GoalUpdate, []ReplyItem) {
	var update adapter.GoalUpdate
	var changes []ReplyItem

	if args.Title != nil {
		update.Title = args.Title
		changes = append(changes, ReplyItem{Label: "Title", Value: *args.Title})
	}
	if args.Description != nil {
		update.Description = args.Description
		changes = append(changes, ReplyItem{Label: "Description", Value: *args.Description})
	}
	if args.TargetDate != nil {
		update.TargetDate = args.TargetDate
		changes = append(changes, ReplyItem{Label: "Target date", Value: *args.TargetDate})
	}
	if args.TargetValue != nil {
		update.TargetValue = args.TargetValue.Float()
		changes = append(changes, ReplyItem{Label: "Target", Value: trimFloat(float64(*args.TargetValue))})
	}
	if args.TargetUnit != nil {
		update.TargetUnit = args.TargetUnit
		changes = append(changes, ReplyItem{Label: "Unit", Value: *args.TargetUnit})
	}
	if args.TargetPeriod != nil {
		update.TargetPeriod = args.TargetPeriod
		changes = append(changes, ReplyItem{Label: "Cadence", Value: *args.TargetPeriod})
	}
	if args.Progress != nil {
		update.Progress = args.Progress
		changes = append(changes, ReplyItem{Label: "Progress", Value: fmt.Sprintf("%d%%", *args.Progress)})
	}
	if args.ProgressValue != nil {
		update.ProgressValue = args.ProgressValue.Float()
		changes = append(changes, ReplyItem{Label: "Progress so far", Value: trimFloat(float64(*args.ProgressValue))})
	}
	if args.Status != nil {
		update.Status = args.Status
		changes = append(changes, ReplyItem{Label: "Status", Value: *args.Status})
	}
	if args.Note != nil && strings.TrimSpace(*args.Note) != "" {
		update.Note = args.Note
		changes = append(changes, ReplyItem{Label: "Note", Value: *args.Note})
	}
	return update, changes
}

func unitLabel(unit *string) string {
	if unit == nil {
		return "done"
	}
	return *unit
}
