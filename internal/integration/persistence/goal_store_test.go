// Package persistence implements the storage adapters.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/dolma/backend/internal/application/adapter"
	"github.com/dolma/backend/internal/domain/entity"
	domainerror "github.com/dolma/backend/internal/domain/error"
)

func newTestStore(t *testing.T) *FileGoalStore {
	t.Helper()
	store, err := NewFileGoalStore(filepath.Join(t.TempDir(), "goals.json"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return store
}

func floatPtr(v float64) *float64 { return &v }

func strPtr(s string) *string { return &s }

func intPtr(v int) *int { return &v }

func TestFileGoalStore_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("persists a goal with derived progress", func(t *testing.T) {
		store := newTestStore(t)
		goal, err := store.Create(ctx, adapter.GoalCreate{
			Title:         "Read 12 books",
			TargetValue:   floatPtr(12),
			TargetUnit:    strPtr("books"),
			ProgressValue: floatPtr(3),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if goal.Progress != 25 {
			t.Errorf("expected progress 25, got %d", goal.Progress)
		}
		if goal.Status != entity.GoalStatusActive {
			t.Errorf("expected status active, got %s", goal.Status)
		}

		reloaded, err := store.Get(ctx, goal.ID)
		if err != nil {
			t.Fatalf("failed to reload goal: %v", err)
		}
		if reloaded.Progress != 25 || reloaded.Title != "Read 12 books" {
			t.Errorf("reloaded goal mismatch: %+v", reloaded)
		}
	})

	t.Run("rejects an empty title without persisting anything", func(t *testing.T) {
		store := newTestStore(t)
		_, err := store.Create(ctx, adapter.GoalCreate{Title: "   "})
		if !errors.Is(err, domainerror.ErrInvalidGoalTitle) {
			t.Fatalf("expected invalid title error, got %v", err)
		}
		goals, err := store.List(ctx, "")
		if err != nil {
			t.Fatalf("failed to list goals: %v", err)
		}
		if len(goals) != 0 {
			t.Errorf("expected no stored goals, got %d", len(goals))
		}
	})
}

func TestFileGoalStore_Get(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Get(context.Background(), "missing")
	if !errors.Is(err, domainerror.ErrGoalNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestFileGoalStore_List(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	first, err := store.Create(ctx, adapter.GoalCreate{Title: "Read 12 books"})
	if err != nil {
		t.Fatalf("failed to create goal: %v", err)
	}
	if _, err := store.Create(ctx, adapter.GoalCreate{Title: "Run a marathon"}); err != nil {
		t.Fatalf("failed to create goal: %v", err)
	}
	if _, err := store.Update(ctx, first.ID, adapter.GoalUpdate{Status: strPtr("archived")}); err != nil {
		t.Fatalf("failed to archive goal: %v", err)
	}

	t.Run("returns everything without a filter", func(t *testing.T) {
		goals, err := store.List(ctx, "")
		if err != nil {
			t.Fatalf("failed to list goals: %v", err)
		}
		if len(goals) != 2 {
			t.Errorf("expected 2 goals, got %d", len(goals))
		}
	})

	t.Run("filters by status case-insensitively", func(t *testing.T) {
		goals, err := store.List(ctx, "Archived")
		if err != nil {
			t.Fatalf("failed to list goals: %v", err)
		}
		if len(goals) != 1 || goals[0].ID != first.ID {
			t.Errorf("expected only the archived goal, got %v", goals)
		}
	})
}

func TestFileGoalStore_Update(t *testing.T) {
	ctx := context.Background()

	newGoalWithTarget := func(t *testing.T, store *FileGoalStore) *entity.Goal {
		t.Helper()
		goal, err := store.Create(ctx, adapter.GoalCreate{
			Title:       "Read 12 books",
			TargetValue: floatPtr(12),
			TargetUnit:  strPtr("books"),
		})
		if err != nil {
			t.Fatalf("failed to create goal: %v", err)
		}
		return goal
	}

	t.Run("reaching the target completes the goal", func(t *testing.T) {
		store := newTestStore(t)
		goal := newGoalWithTarget(t, store)

		updated, err := store.Update(ctx, goal.ID, adapter.GoalUpdate{ProgressValue: floatPtr(12)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Progress != 100 {
			t.Errorf("expected progress 100, got %d", updated.Progress)
		}
		if updated.Status != entity.GoalStatusCompleted {
			t.Errorf("expected status completed, got %s", updated.Status)
		}
	})

	t.Run("an explicit status wins over derivation", func(t *testing.T) {
		store := newTestStore(t)
		goal := newGoalWithTarget(t, store)

		updated, err := store.Update(ctx, goal.ID, adapter.GoalUpdate{
			ProgressValue: floatPtr(12),
			Status:        strPtr("active"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Progress != 100 {
			t.Errorf("expected progress 100, got %d", updated.Progress)
		}
		if updated.Status != entity.GoalStatusActive {
			t.Errorf("expected status active, got %s", updated.Status)
		}
	})

	t.Run("a percentage update back-computes the progress value", func(t *testing.T) {
		store := newTestStore(t)
		goal := newGoalWithTarget(t, store)

		updated, err := store.Update(ctx, goal.ID, adapter.GoalUpdate{Progress: intPtr(50)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Progress != 50 {
			t.Errorf("expected progress 50, got %d", updated.Progress)
		}
		if updated.ProgressValue == nil || *updated.ProgressValue != 6 {
			t.Errorf("expected progress value 6, got %v", updated.ProgressValue)
		}
	})

	t.Run("an invalid status is rejected without changes", func(t *testing.T) {
		store := newTestStore(t)
		goal := newGoalWithTarget(t, store)

		_, err := store.Update(ctx, goal.ID, adapter.GoalUpdate{
			Status: strPtr("paused"),
			Note:   strPtr("should not be stored"),
		})
		if !errors.Is(err, domainerror.ErrInvalidGoalStatus) {
			t.Fatalf("expected invalid status error, got %v", err)
		}

		reloaded, err := store.Get(ctx, goal.ID)
		if err != nil {
			t.Fatalf("failed to reload goal: %v", err)
		}
		if len(reloaded.History) != 0 {
			t.Errorf("expected no history entries, got %d", len(reloaded.History))
		}
	})

	t.Run("a note always counts as a modification", func(t *testing.T) {
		store := newTestStore(t)
		goal := newGoalWithTarget(t, store)

		updated, err := store.Update(ctx, goal.ID, adapter.GoalUpdate{Note: strPtr("started chapter one")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(updated.History) != 1 || updated.History[0].Note != "started chapter one" {
			t.Errorf("expected one note, got %v", updated.History)
		}
	})

	t.Run("dropping the target to zero clears it", func(t *testing.T) {
		store := newTestStore(t)
		goal := newGoalWithTarget(t, store)

		updated, err := store.Update(ctx, goal.ID, adapter.GoalUpdate{TargetValue: floatPtr(0)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.TargetValue != nil {
			t.Errorf("expected nil target value, got %v", *updated.TargetValue)
		}
	})

	t.Run("updating an unknown goal fails", func(t *testing.T) {
		store := newTestStore(t)
		_, err := store.Update(ctx, "missing", adapter.GoalUpdate{Note: strPtr("hello")})
		if !errors.Is(err, domainerror.ErrGoalNotFound) {
			t.Fatalf("expected not-found error, got %v", err)
		}
	})
}

func TestFileGoalStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	goal, err := store.Create(ctx, adapter.GoalCreate{Title: "Old goal"})
	if err != nil {
		t.Fatalf("failed to create goal: %v", err)
	}

	deleted, err := store.Delete(ctx, goal.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !deleted {
		t.Error("expected first delete to report true")
	}

	deleted, err = store.Delete(ctx, goal.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted {
		t.Error("expected second delete to report false")
	}
}

func TestFileGoalStore_Reload(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "goals.json")

	store, err := NewFileGoalStore(path)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	goal, err := store.Create(ctx, adapter.GoalCreate{
		Title:         "Read 12 books",
		TargetValue:   floatPtr(12),
		ProgressValue: floatPtr(3),
	})
	if err != nil {
		t.Fatalf("failed to create goal: %v", err)
	}

	// A fresh store over the same file sees the same state.
	reopened, err := NewFileGoalStore(path)
	if err != nil {
		t.Fatalf("failed to reopen store: %v", err)
	}
	reloaded, err := reopened.Get(ctx, goal.ID)
	if err != nil {
		t.Fatalf("failed to reload goal: %v", err)
	}
	if reloaded.Progress != 25 || reloaded.Status != entity.GoalStatusActive {
		t.Errorf("reloaded goal mismatch: %+v", reloaded)
	}
}

func TestFileGoalStore_ConcurrentUpdates(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	goal, err := store.Create(ctx, adapter.GoalCreate{Title: "Read 12 books"})
	if err != nil {
		t.Fatalf("failed to create goal: %v", err)
	}

	const writers = 10
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			note := fmt.Sprintf("note %d", i)
			if _, err := store.Update(ctx, goal.ID, adapter.GoalUpdate{Note: &note}); err != nil {
				t.Errorf("concurrent update failed: %v", err)
			}
		}(i)
	}
	wg.Wait()

	reloaded, err := store.Get(ctx, goal.ID)
	if err != nil {
		t.Fatalf("failed to reload goal: %v", err)
	}
	if len(reloaded.History) != writers {
		t.Errorf("expected %d history entries, got %d", writers, len(reloaded.History))
	}
}
