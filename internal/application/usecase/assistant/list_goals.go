package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// handleListGoals returns the user's goals, optionally filtered by status.
// Read-only, so no confirmation phase.
func (uc *ChatUseCase) handleListGoals(ctx context.Context, _ string, raw json.RawMessage) (*Reply, error) {
	var args listGoalsArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}

	goals, err := uc.goals.List(ctx, args.Status)
	if err != nil {
		return nil, err
	}
	if len(goals) == 0 {
		if args.Status != "" {
			return &Reply{Reply: fmt.Sprintf("You don't have any %s goals right now.", strings.ToLower(args.Status))}, nil
		}
		return &Reply{Reply: "You don't have any goals yet. Want to set one up?"}, nil
	}

	var md strings.Builder
	for _, g := range goals {
		md.WriteString("- **" + g.Title + "**")
		if g.TargetValue != nil && g.ProgressValue != nil {
			md.WriteString(fmt.Sprintf(" %d%% (%s/%s %s)",
				g.Progress, trimFloat(*g.ProgressValue), trimFloat(*g.TargetValue), unitLabel(g.TargetUnit)))
		} else if g.Progress > 0 {
			md.WriteString(fmt.Sprintf(" %d%%", g.Progress))
		}
		md.WriteString(" [" + string(g.Status) + "]\n")
	}

	return &Reply{
		Reply:   fmt.Sprintf("You have %s.", countNoun(len(goals), "goal")),
		ReplyMD: md.String(),
		Goals:   goals,
	}, nil
}
