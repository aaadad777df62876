// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/dolma/backend/internal/domain/entity"
)

// GoalCreate carries the fields accepted when creating a goal.
// Title is required; everything else is optional.
type GoalCreate struct {
	Title         string
	Description   string
	TargetDate    *string
	TargetValue   *float64
	TargetUnit    *string
	TargetPeriod  *string
	ProgressValue *float64
}

// GoalUpdate is a sparse set of field changes. Nil means "leave unchanged".
// A field equal to its current value is a no-op for that field; Note always
// counts as a modification and is appended to the goal's history.
type GoalUpdate struct {
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

// GoalStore defines the persistent store for goals. Every operation is
// atomic with respect to concurrent callers.
type GoalStore interface {
	// List returns all goals, optionally filtered by status (case-insensitive).
	List(ctx context.Context, status string) ([]*entity.Goal, error)

	// Get returns the goal with the given id, or ErrGoalNotFound.
	Get(ctx context.Context, id string) (*entity.Goal, error)

	// Create validates the input, computes derived fields and persists a new goal.
	Create(ctx context.Context, input GoalCreate) (*entity.Goal, error)

	// Update applies the supplied fields to an existing goal, recomputing
	// derived fields only when a source field actually changed.
	Update(ctx context.Context, id string, input GoalUpdate) (*entity.Goal, error)

	// Delete removes a goal by id. Returns false (not an error) if absent.
	Delete(ctx context.Context, id string) (bool, error)
}
