// Package entity defines the core business entities for the domain layer.
package entity

import (
	"testing"
	"time"
)

func floatPtr(v float64) *float64 { return &v }

func strPtr(s string) *string { return &s }

func TestNewGoal(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("derives progress from the numeric target", func(t *testing.T) {
		g := NewGoal("Read 12 books", "", nil, strPtr("books"), nil, floatPtr(12), floatPtr(3), now)
		if g.Progress != 25 {
			t.Errorf("expected progress 25, got %d", g.Progress)
		}
		if g.Status != GoalStatusActive {
			t.Errorf("expected status active, got %s", g.Status)
		}
	})

	t.Run("trims the title and description", func(t *testing.T) {
		g := NewGoal("  Run a marathon  ", "  eventually  ", nil, nil, nil, nil, nil, now)
		if g.Title != "Run a marathon" {
			t.Errorf("expected trimmed title, got %q", g.Title)
		}
		if g.Description != "eventually" {
			t.Errorf("expected trimmed description, got %q", g.Description)
		}
	})

	t.Run("drops non-positive targets", func(t *testing.T) {
		g := NewGoal("Save money", "", nil, nil, nil, floatPtr(-5), nil, now)
		if g.TargetValue != nil {
			t.Errorf("expected nil target value, got %v", *g.TargetValue)
		}
	})

	t.Run("clamps negative progress values to zero", func(t *testing.T) {
		g := NewGoal("Save money", "", nil, nil, nil, floatPtr(100), floatPtr(-3), now)
		if g.ProgressValue == nil || *g.ProgressValue != 0 {
			t.Errorf("expected progress value 0, got %v", g.ProgressValue)
		}
		if g.Progress != 0 {
			t.Errorf("expected progress 0, got %d", g.Progress)
		}
	})

	t.Run("drops blank unit and period labels", func(t *testing.T) {
		g := NewGoal("Save money", "", nil, strPtr("  "), strPtr(""), nil, nil, now)
		if g.TargetUnit != nil || g.TargetPeriod != nil {
			t.Error("expected blank labels to become nil")
		}
	})

	t.Run("starts with an empty history", func(t *testing.T) {
		g := NewGoal("Save money", "", nil, nil, nil, nil, nil, now)
		if g.History == nil || len(g.History) != 0 {
			t.Errorf("expected empty history, got %v", g.History)
		}
	})
}

func TestRecomputeProgress(t *testing.T) {
	t.Run("completes the goal at the target", func(t *testing.T) {
		g := &Goal{Status: GoalStatusActive, TargetValue: floatPtr(12), ProgressValue: floatPtr(12)}
		g.RecomputeProgress()
		if g.Progress != 100 {
			t.Errorf("expected progress 100, got %d", g.Progress)
		}
		if g.Status != GoalStatusCompleted {
			t.Errorf("expected status completed, got %s", g.Status)
		}
	})

	t.Run("caps progress above the target at 100", func(t *testing.T) {
		g := &Goal{Status: GoalStatusActive, TargetValue: floatPtr(10), ProgressValue: floatPtr(25)}
		g.RecomputeProgress()
		if g.Progress != 100 {
			t.Errorf("expected progress 100, got %d", g.Progress)
		}
	})

	t.Run("rounds the derived percentage", func(t *testing.T) {
		g := &Goal{Status: GoalStatusActive, TargetValue: floatPtr(3), ProgressValue: floatPtr(1)}
		g.RecomputeProgress()
		if g.Progress != 33 {
			t.Errorf("expected progress 33, got %d", g.Progress)
		}
	})

	t.Run("leaves progress intact when target data is incomplete", func(t *testing.T) {
		g := &Goal{Status: GoalStatusActive, Progress: 40}
		g.RecomputeProgress()
		if g.Progress != 40 {
			t.Errorf("expected progress to stay 40, got %d", g.Progress)
		}
	})

	t.Run("does not resurrect an archived goal", func(t *testing.T) {
		g := &Goal{Status: GoalStatusArchived, TargetValue: floatPtr(5), ProgressValue: floatPtr(5)}
		g.RecomputeProgress()
		if g.Status != GoalStatusArchived {
			t.Errorf("expected status archived, got %s", g.Status)
		}
		if g.Progress != 100 {
			t.Errorf("expected progress 100, got %d", g.Progress)
		}
	})
}

func TestSetProgressPercent(t *testing.T) {
	t.Run("clamps out-of-range percentages", func(t *testing.T) {
		g := &Goal{Status: GoalStatusActive}
		g.SetProgressPercent(-10)
		if g.Progress != 0 {
			t.Errorf("expected progress 0, got %d", g.Progress)
		}
		g.SetProgressPercent(150)
		if g.Progress != 100 {
			t.Errorf("expected progress 100, got %d", g.Progress)
		}
	})

	t.Run("completes the goal at 100", func(t *testing.T) {
		g := &Goal{Status: GoalStatusActive}
		g.SetProgressPercent(100)
		if g.Status != GoalStatusCompleted {
			t.Errorf("expected status completed, got %s", g.Status)
		}
	})

	t.Run("back-computes the progress value from the target", func(t *testing.T) {
		g := &Goal{Status: GoalStatusActive, TargetValue: floatPtr(12)}
		g.SetProgressPercent(50)
		if g.ProgressValue == nil || *g.ProgressValue != 6 {
			t.Errorf("expected progress value 6, got %v", g.ProgressValue)
		}
	})

	t.Run("leaves the progress value alone without a target", func(t *testing.T) {
		g := &Goal{Status: GoalStatusActive}
		g.SetProgressPercent(50)
		if g.ProgressValue != nil {
			t.Errorf("expected nil progress value, got %v", *g.ProgressValue)
		}
	})
}

func TestAppendNote(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	g := &Goal{}
	g.AppendNote("  first 5k done  ", now)
	if len(g.History) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(g.History))
	}
	if g.History[0].Note != "first 5k done" {
		t.Errorf("expected trimmed note, got %q", g.History[0].Note)
	}
	if !g.History[0].Timestamp.Equal(now) {
		t.Errorf("expected timestamp %v, got %v", now, g.History[0].Timestamp)
	}
}

func TestShortID(t *testing.T) {
	g := &Goal{ID: "0a1b2c3d-4e5f-6789-abcd-ef0123456789"}
	if got := g.ShortID(); got != "0a1b2c3d" {
		t.Errorf("expected short id 0a1b2c3d, got %q", got)
	}
	short := &Goal{ID: "abc"}
	if got := short.ShortID(); got != "abc" {
		t.Errorf("expected short id abc, got %q", got)
	}
}
