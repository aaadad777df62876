// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/dolma/backend/internal/application/adapter"
)

// DeleteGoalInput represents the input for goal deletion.
type DeleteGoalInput struct {
	GoalID string
}

// DeleteGoalOutput represents the output of goal deletion.
type DeleteGoalOutput struct {
	Deleted bool
}

// DeleteGoalUseCase handles goal deletion logic.
type DeleteGoalUseCase struct {
	store adapter.GoalStore
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(store adapter.GoalStore) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{store: store}
}

// Execute performs the goal deletion. A missing goal is reported as
// Deleted=false, not as an error.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) (*DeleteGoalOutput, error) {
	deleted, err := uc.store.Delete(ctx, input.GoalID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete goal: %w", err)
	}
	return &DeleteGoalOutput{Deleted: deleted}, nil
}
