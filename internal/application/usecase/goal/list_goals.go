// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/dolma/backend/internal/application/adapter"
	"github.com/dolma/backend/internal/domain/entity"
)

// ListGoalsInput represents the input for goal listing.
type ListGoalsInput struct {
	Status string // Optional, case-insensitive status filter
}

// ListGoalsOutput represents the output of goal listing.
type ListGoalsOutput struct {
	Goals []*entity.Goal
}

// ListGoalsUseCase handles goal listing logic.
type ListGoalsUseCase struct {
	store adapter.GoalStore
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(store adapter.GoalStore) *ListGoalsUseCase {
	return &ListGoalsUseCase{store: store}
}

// Execute performs the goal listing.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	goals, err := uc.store.List(ctx, input.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return &ListGoalsOutput{Goals: goals}, nil
}
