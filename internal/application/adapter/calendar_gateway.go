package adapter

import (
	"context"
	"time"

	"github.com/dolma/backend/internal/domain/entity"
)

// EventPatch is a sparse set of event field changes. Nil means "leave unchanged".
type EventPatch struct {
	Summary     *string
	Description *string
	Location    *string
	Start       *time.Time
	End         *time.Time
}

// CalendarGateway defines the interface to the external calendar system of
// record. Implementations own authorization and transport; callers must
// check IsConnected before invoking any other operation.
type CalendarGateway interface {
	// IsConnected reports whether a usable calendar authorization exists.
	IsConnected() bool

	// FindEvents returns events within [start, end), bounded by maxResults.
	FindEvents(ctx context.Context, start, end time.Time, maxResults int) ([]*entity.Event, error)

	// CreateEvent creates a single event from the draft.
	CreateEvent(ctx context.Context, draft entity.EventDraft) (*entity.Event, error)

	// UpdateEvent applies the patch to the event with the given id.
	UpdateEvent(ctx context.Context, id string, patch EventPatch) (*entity.Event, error)

	// DeleteEvent removes the event with the given id.
	DeleteEvent(ctx context.Context, id string) error
}
