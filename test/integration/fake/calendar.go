package fake

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dolma/backend/internal/application/adapter"
	"github.com/dolma/backend/internal/domain/entity"
)

// CalendarGateway is an in-memory calendar used in place of the Google
// Calendar gateway during integration tests.
type CalendarGateway struct {
	mu        sync.Mutex
	connected bool
	events    []*entity.Event
	nextID    int
}

// NewCalendarGateway creates a connected, empty fake calendar.
func NewCalendarGateway() *CalendarGateway {
	return &CalendarGateway{connected: true}
}

// SetConnected toggles the connection state seen by the dispatcher.
func (g *CalendarGateway) SetConnected(connected bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.connected = connected
}

// Seed adds an existing event without counting it as created by the test run.
func (g *CalendarGateway) Seed(summary string, start, end time.Time) *entity.Event {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nextID++
	ev := &entity.Event{
		ID:      fmt.Sprintf("evt-%d", g.nextID),
		Summary: summary,
		Start:   start,
		End:     end,
	}
	g.events = append(g.events, ev)
	return ev
}

// Events returns a snapshot of the stored events.
func (g *CalendarGateway) Events() []*entity.Event {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]*entity.Event, len(g.events))
	copy(out, g.events)
	return out
}

// IsConnected implements adapter.CalendarGateway.
func (g *CalendarGateway) IsConnected() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.connected
}

// FindEvents implements adapter.CalendarGateway.
func (g *CalendarGateway) FindEvents(_ context.Context, start, end time.Time, maxResults int) ([]*entity.Event, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	var out []*entity.Event
	for _, ev := range g.events {
		if ev.Start.Before(start) || !ev.Start.Before(end) {
			continue
		}
		out = append(out, ev)
		if maxResults > 0 && len(out) >= maxResults {
			break
		}
	}
	return out, nil
}

// CreateEvent implements adapter.CalendarGateway.
func (g *CalendarGateway) CreateEvent(_ context.Context, draft entity.EventDraft) (*entity.Event, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nextID++
	ev := &entity.Event{
		ID:       fmt.Sprintf("evt-%d", g.nextID),
		Summary:  draft.Summary,
		Start:    draft.Start,
		End:      draft.End,
		Location: draft.Location,
	}
	g.events = append(g.events, ev)
	return ev, nil
}

// UpdateEvent implements adapter.CalendarGateway.
func (g *CalendarGateway) UpdateEvent(_ context.Context, id string, patch adapter.EventPatch) (*entity.Event, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, ev := range g.events {
		if ev.ID != id {
			continue
		}
		if patch.Summary != nil {
			ev.Summary = *patch.Summary
		}
		if patch.Location != nil {
			ev.Location = *patch.Location
		}
		if patch.Start != nil {
			ev.Start = *patch.Start
		}
		if patch.End != nil {
			ev.End = *patch.End
		}
		return ev, nil
	}
	return nil, fmt.Errorf("event %s not found", id)
}

// DeleteEvent implements adapter.CalendarGateway.
func (g *CalendarGateway) DeleteEvent(_ context.Context, id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i, ev := range g.events {
		if ev.ID == id {
			g.events = append(g.events[:i], g.events[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("event %s not found", id)
}
