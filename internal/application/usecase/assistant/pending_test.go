package assistant

import (
	"testing"
	"time"

	"github.com/dolma/backend/internal/domain/entity"
)

func TestPendingStore(t *testing.T) {
	now := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	drafts := []entity.EventDraft{{Summary: "Gym session"}}

	t.Run("take consumes the stash", func(t *testing.T) {
		s := NewPendingStore()
		s.Put("s1", drafts, now)

		got := s.Take("s1")
		if len(got) != 1 || got[0].Summary != "Gym session" {
			t.Errorf("unexpected drafts: %v", got)
		}
		if s.Take("s1") != nil {
			t.Error("expected the stash to be consumed")
		}
	})

	t.Run("a new preview overwrites the previous one", func(t *testing.T) {
		s := NewPendingStore()
		s.Put("s1", drafts, now)
		s.Put("s1", []entity.EventDraft{{Summary: "Swim"}}, now)

		got := s.Take("s1")
		if len(got) != 1 || got[0].Summary != "Swim" {
			t.Errorf("expected the newer drafts, got %v", got)
		}
	})

	t.Run("sessions are independent", func(t *testing.T) {
		s := NewPendingStore()
		s.Put("s1", drafts, now)
		if s.Take("s2") != nil {
			t.Error("expected no drafts for another session")
		}
		if s.Take("s1") == nil {
			t.Error("expected s1's drafts to survive")
		}
	})
}
