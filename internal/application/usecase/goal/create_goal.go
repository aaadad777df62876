// Package goal contains goal-related use cases.
package goal

import (
	"context"

	"github.com/dolma/backend/internal/application/adapter"
	"github.com/dolma/backend/internal/domain/entity"
)

// CreateGoalInput represents the input for goal creation. Title is
// required; everything else is optional.
type CreateGoalInput struct {
	Title         string
	Description   string
	TargetDate    *string
	TargetValue   *float64
	TargetUnit    *string
	TargetPeriod  *string
	ProgressValue *float64
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	store adapter.GoalStore
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(store adapter.GoalStore) *CreateGoalUseCase {
	return &CreateGoalUseCase{store: store}
}

// Execute performs the goal creation. Validation and derived-field
// computation happen inside the store's critical section.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	goal, err := uc.store.Create(ctx, adapter.GoalCreate{
		Title:         input.Title,
		Description:   input.Description,
		TargetDate:    input.TargetDate,
		TargetValue:   input.TargetValue,
		TargetUnit:    input.TargetUnit,
		TargetPeriod:  input.TargetPeriod,
		ProgressValue: input.ProgressValue,
	})
	if err != nil {
		return nil, err
	}
	return &CreateGoalOutput{Goal: goal}, nil
}
