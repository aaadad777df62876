// Package goal contains goal-related use cases.
package goal

import (
	"context"

	"github.com/dolma/backend/internal/application/adapter"
	"github.com/dolma/backend/internal/domain/entity"
)

// GetGoalInput represents the input for goal retrieval.
type GetGoalInput struct {
	GoalID string
}

// GetGoalOutput represents the output of goal retrieval.
type GetGoalOutput struct {
	Goal *entity.Goal
}

// GetGoalUseCase handles goal retrieval logic.
type GetGoalUseCase struct {
	store adapter.GoalStore
}

// NewGetGoalUseCase creates a new GetGoalUseCase instance.
func NewGetGoalUseCase(store adapter.GoalStore) *GetGoalUseCase {
	return &GetGoalUseCase{store: store}
}

// Execute performs the goal retrieval.
func (uc *GetGoalUseCase) Execute(ctx context.Context, input GetGoalInput) (*GetGoalOutput, error) {
	goal, err := uc.store.Get(ctx, input.GoalID)
	if err != nil {
		return nil, err
	}
	return &GetGoalOutput{Goal: goal}, nil
}
