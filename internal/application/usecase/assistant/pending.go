package assistant

import (
	"sync"
	"time"

	"github.com/dolma/backend/internal/domain/entity"
)

// PendingStore holds the event drafts from each session's latest preview
// until the confirm turn consumes them. Each new preview overwrites the
// previous one; nothing is persisted.
type PendingStore struct {
	mu      sync.Mutex
	actions map[string]*entity.PendingAction
}

// NewPendingStore creates an empty pending-action stash.
func NewPendingStore() *PendingStore {
	return &PendingStore{
		actions: make(map[string]*entity.PendingAction),
	}
}

// Put stores the drafts for a session, replacing any earlier preview.
func (s *PendingStore) Put(sessionID string, drafts []entity.EventDraft, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.actions[sessionID] = &entity.PendingAction{
		Drafts:    drafts,
		CreatedAt: now,
	}
}

// Take removes and returns the session's pending drafts, or nil when none.
func (s *PendingStore) Take(sessionID string) []entity.EventDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	action, ok := s.actions[sessionID]
	if !ok {
		return nil
	}
	delete(s.actions, sessionID)
	return action.Drafts
}
