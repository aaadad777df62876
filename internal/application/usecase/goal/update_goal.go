// Package goal contains goal-related use cases.
package goal

import (
	"context"

	"github.com/dolma/backend/internal/application/adapter"
	"github.com/dolma/backend/internal/domain/entity"
)

// UpdateGoalInput represents the input for goal update. Nil fields are
// left unchanged.
type UpdateGoalInput struct {
	GoalID        string
	Title         *string
	Description   *string
	TargetDate    *string
	TargetValue   *float64
	TargetUnit    *string
	TargetPeriod  *string
	Progress      *int
	ProgressValue *float64
	Status        *string
	Note          *string
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal *entity.Goal
}

// UpdateGoalUseCase handles goal update logic.
type UpdateGoalUseCase struct {
	store adapter.GoalStore
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(store adapter.GoalStore) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{store: store}
}

// Execute performs the goal update.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	goal, err := uc.store.Update(ctx, input.GoalID, adapter.GoalUpdate{
		Title:         input.Title,
		Description:   input.Description,
		TargetDate:    input.TargetDate,
		TargetValue:   input.TargetValue,
		TargetUnit:    input.TargetUnit,
		TargetPeriod:  input.TargetPeriod,
		Progress:      input.Progress,
		ProgressValue: input.ProgressValue,
		Status:        input.Status,
		Note:          input.Note,
	})
	if err != nil {
		return nil, err
	}
	return &UpdateGoalOutput{Goal: goal}, nil
}
