// Package persistence implements the storage adapters.
package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/dolma/backend/internal/application/adapter"
	"github.com/dolma/backend/internal/domain/entity"
	domainerror "github.com/dolma/backend/internal/domain/error"
	"github.com/dolma/backend/internal/integration/persistence/model"
)

// FileGoalStore persists goals as a single JSON array document. Every
// operation holds the store lock for its full read-modify-write cycle, and
// every write replaces the file atomically via a temp file and rename, so
// no partial state is ever observable.
type FileGoalStore struct {
	path string
	mu   sync.Mutex
	now  func() time.Time
}

// NewFileGoalStore creates a store backed by the given file, creating an
// empty store file if none exists.
func NewFileGoalStore(path string) (*FileGoalStore, error) {
	s := &FileGoalStore{
		path: path,
		now:  func() time.Time { return time.Now().UTC() },
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.writeAll(nil); err != nil {
			return nil, fmt.Errorf("failed to initialize goals file: %w", err)
		}
	}
	return s, nil
}

// List returns all goals, optionally filtered by status (case-insensitive).
func (s *FileGoalStore) List(_ context.Context, status string) ([]*entity.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readAll()
	if err != nil {
		return nil, err
	}

	status = strings.ToLower(strings.TrimSpace(status))
	goals := make([]*entity.Goal, 0, len(records))
	for _, r := range records {
		if status != "" && strings.ToLower(r.Status) != status {
			continue
		}
		goals = append(goals, r.ToEntity())
	}
	return goals, nil
}

// Get returns the goal with the given id.
func (s *FileGoalStore) Get(_ context.Context, id string) (*entity.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readAll()
	if err != nil {
		return nil, err
	}
	for _, r := range records {
		if r.ID == id {
			return r.ToEntity(), nil
		}
	}
	return nil, domainerror.NewGoalError(
		domainerror.ErrCodeGoalNotFound,
		fmt.Sprintf("no goal with id %q", id),
		domainerror.ErrGoalNotFound,
	)
}

// Create validates the input, computes derived fields and persists a new goal.
func (s *FileGoalStore) Create(_ context.Context, input adapter.GoalCreate) (*entity.Goal, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalTitle,
			"goal title is empty",
			domainerror.ErrInvalidGoalTitle,
		)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readAll()
	if err != nil {
		return nil, err
	}

	goal := entity.NewGoal(
		input.Title,
		input.Description,
		input.TargetDate,
		input.TargetUnit,
		input.TargetPeriod,
		input.TargetValue,
		input.ProgressValue,
		s.now(),
	)
	records = append(records, model.FromEntity(goal))
	if err := s.writeAll(records); err != nil {
		return nil, err
	}
	return goal, nil
}

// Update applies the supplied fields to an existing goal. Fields equal to
// their current value are no-ops; derived fields are recomputed only when a
// source field actually changed. A note always counts as a modification.
func (s *FileGoalStore) Update(_ context.Context, id string, input adapter.GoalUpdate) (*entity.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readAll()
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, r := range records {
		if r.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			fmt.Sprintf("no goal with id %q", id),
			domainerror.ErrGoalNotFound,
		)
	}

	goal := records[idx].ToEntity()
	modified, needsRecompute, err := applyUpdate(goal, input, s.now())
	if err != nil {
		return nil, err
	}

	if modified {
		if needsRecompute {
			goal.RecomputeProgress()
		}
		if input.Status != nil {
			// Explicit status wins over any status forced by recomputation.
			goal.Status = entity.GoalStatus(strings.ToLower(strings.TrimSpace(*input.Status)))
		}
		goal.UpdatedAt = s.now()
		records[idx] = model.FromEntity(goal)
		if err := s.writeAll(records); err != nil {
			return nil, err
		}
	}
	return goal, nil
}

// Delete removes a goal by id. Returns false (not an error) if absent.
func (s *FileGoalStore) Delete(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readAll()
	if err != nil {
		return false, err
	}

	kept := records[:0]
	for _, r := range records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(records) {
		return false, nil
	}
	if err := s.writeAll(kept); err != nil {
		return false, err
	}
	return true, nil
}

// applyUpdate mutates goal in place per the sparse input and reports
// whether anything changed and whether progress must be re-derived.
// The explicit status change is validated here but applied by the caller
// after recomputation.
func applyUpdate(goal *entity.Goal, input adapter.GoalUpdate, now time.Time) (modified, needsRecompute bool, err error) {
	if input.Title != nil {
		if trimmed := strings.TrimSpace(*input.Title); trimmed != "" && trimmed != goal.Title {
			goal.Title = trimmed
			modified = true
		}
	}
	if input.Description != nil && *input.Description != goal.Description {
		goal.Description = *input.Description
		modified = true
	}
	if input.TargetDate != nil && !equalPtr(input.TargetDate, goal.TargetDate) {
		goal.TargetDate = input.TargetDate
		modified = true
	}
	if input.TargetValue != nil {
		normalized := input.TargetValue
		if *normalized <= 0 {
			normalized = nil
		}
		if !equalFloatPtr(normalized, goal.TargetValue) {
			goal.TargetValue = normalized
			modified = true
			needsRecompute = true
		}
	}
	if input.TargetUnit != nil {
		if cleaned := cleanLabel(*input.TargetUnit); !equalPtr(cleaned, goal.TargetUnit) {
			goal.TargetUnit = cleaned
			modified = true
		}
	}
	if input.TargetPeriod != nil {
		if cleaned := cleanLabel(*input.TargetPeriod); !equalPtr(cleaned, goal.TargetPeriod) {
			goal.TargetPeriod = cleaned
			modified = true
		}
	}
	if input.Progress != nil {
		pct := *input.Progress
		if pct < 0 {
			pct = 0
		}
		if pct > 100 {
			pct = 100
		}
		if pct != goal.Progress {
			modified = true
			needsRecompute = true
		}
		goal.SetProgressPercent(pct)
	}
	if input.ProgressValue != nil {
		value := *input.ProgressValue
		if value < 0 {
			value = 0
		}
		if goal.ProgressValue == nil || *goal.ProgressValue != value {
			goal.ProgressValue = &value
			modified = true
			needsRecompute = true
		}
	}
	if input.Status != nil {
		status := entity.GoalStatus(strings.ToLower(strings.TrimSpace(*input.Status)))
		if !entity.IsValidGoalStatus(status) {
			return false, false, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidGoalStatus,
				fmt.Sprintf("invalid status %q", *input.Status),
				domainerror.ErrInvalidGoalStatus,
			)
		}
		if status != goal.Status {
			modified = true
		}
	}
	if input.Note != nil && strings.TrimSpace(*input.Note) != "" {
		goal.AppendNote(*input.Note, now)
		modified = true
	}
	return modified, needsRecompute, nil
}

// readAll loads every stored goal. The caller must hold the lock.
func (s *FileGoalStore) readAll() ([]model.GoalModel, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read goals file: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	var records []model.GoalModel
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("goals file is corrupt: %w", err)
	}
	return records, nil
}

// writeAll replaces the goals file atomically. The caller must hold the lock.
func (s *FileGoalStore) writeAll(records []model.GoalModel) error {
	if records == nil {
		records = []model.GoalModel{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode goals: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".goals-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp goals file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write goals file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close goals file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace goals file: %w", err)
	}
	return nil
}

func cleanLabel(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func equalPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalFloatPtr(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
