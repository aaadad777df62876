// Package error defines domain-specific errors for the assistant backend.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the store.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrInvalidGoalTitle is returned when a goal title is empty or whitespace-only.
	ErrInvalidGoalTitle = errors.New("goal title is required")

	// ErrInvalidGoalStatus is returned when a status is outside the allowed set.
	ErrInvalidGoalStatus = errors.New("invalid goal status")

	// ErrInvalidNumericValue is returned when a numeric field cannot be parsed.
	ErrInvalidNumericValue = errors.New("value must be numeric")

	// ErrAmbiguousGoal is returned when a title fragment matches more than one goal.
	ErrAmbiguousGoal = errors.New("goal reference is ambiguous")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalNotFound        GoalErrorCode = "GOL-010001"
	ErrCodeInvalidGoalTitle    GoalErrorCode = "GOL-010002"
	ErrCodeInvalidGoalStatus   GoalErrorCode = "GOL-010003"
	ErrCodeInvalidNumericValue GoalErrorCode = "GOL-010004"
	ErrCodeAmbiguousGoal       GoalErrorCode = "GOL-010005"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
