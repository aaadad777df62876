package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/dolma/backend/internal/application/adapter"
	"github.com/dolma/backend/internal/domain/entity"
	domainerror "github.com/dolma/backend/internal/domain/error"
)

// handleCreateGoal previews or creates a goal. The confirm turn carries the
// full argument set again, so no session stash is needed.
func (uc *ChatUseCase) handleCreateGoal(ctx context.Context, _ string, raw json.RawMessage) (*Reply, error) {
	var args createGoalArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if strings.TrimSpace(args.Title) == "" {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalTitle,
			"goal title missing from create_goal call",
			domainerror.ErrInvalidGoalTitle,
		)
	}

	if !args.Confirm {
		items := []ReplyItem{{Label: "Goal", Value: strings.TrimSpace(args.Title)}}
		if target := formatTarget(args.TargetValue, args.TargetUnit, args.TargetPeriod); target != "" {
			items = append(items, ReplyItem{Label: "Target", Value: target})
		}
		if args.TargetDate != "" {
			items = append(items, ReplyItem{Label: "Target date", Value: args.TargetDate})
		}
		if args.ProgressValue != nil {
			items = append(items, ReplyItem{Label: "Progress so far", Value: trimFloat(float64(*args.ProgressValue))})
		}
		return &Reply{
			Reply: fmt.Sprintf("I'll set up the goal %q for you. Ready to create it?", strings.TrimSpace(args.Title)),
			CTA:   "Create goal",
			Items: items,
		}, nil
	}

	input := adapter.GoalCreate{
		Title:         args.Title,
		Description:   args.Description,
		TargetValue:   args.TargetValue.Float(),
		ProgressValue: args.ProgressValue.Float(),
	}
	if args.TargetDate != "" {
		input.TargetDate = &args.TargetDate
	}
	if args.TargetUnit != "" {
		input.TargetUnit = &args.TargetUnit
	}
	if args.TargetPeriod != "" {
		input.TargetPeriod = &args.TargetPeriod
	}

	goal, err := uc.goals.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	reply := fmt.Sprintf("Created the goal %q.", goal.Title)
	if goal.TargetValue != nil {
		reply += fmt.Sprintf(" You're at %d%% already.", goal.Progress)
	}
	return &Reply{
		Reply: reply,
		Goals: []*entity.Goal{goal},
	}, nil
}

// formatTarget renders "12 books (weekly)" style target summaries.
func formatTarget(value *Number, unit, period string) string {
	if value == nil {
		return ""
	}
	target := trimFloat(float64(*value))
	if unit != "" {
		target += " " + unit
	}
	if period != "" {
		target += " (" + period + ")"
	}
	return target
}

// trimFloat renders a float without trailing zeros.
func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
