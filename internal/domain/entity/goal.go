// Package entity defines the core business entities for the domain layer.
package entity

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GoalStatus represents the lifecycle state of a goal.
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusArchived  GoalStatus = "archived"
)

// IsValidGoalStatus reports whether s is one of the allowed goal statuses.
func IsValidGoalStatus(s GoalStatus) bool {
	return s == GoalStatusActive || s == GoalStatusCompleted || s == GoalStatusArchived
}

// HistoryEntry is a single note appended to a goal's history.
type HistoryEntry struct {
	Timestamp time.Time
	Note      string
}

// Goal represents a personal goal tracked by the assistant. Progress is a
// derived percentage; ProgressValue and TargetValue are the source amounts
// expressed in TargetUnit.
type Goal struct {
	ID            string
	Title         string
	Description   string
	TargetDate    *string
	TargetValue   *float64
	TargetUnit    *string
	TargetPeriod  *string
	ProgressValue *float64
	Progress      int
	Status        GoalStatus
	History       []HistoryEntry
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewGoal creates a new Goal entity with derived fields computed.
// Title must be validated by the caller; optional fields may be nil.
func NewGoal(title, description string, targetDate, targetUnit, targetPeriod *string, targetValue, progressValue *float64, now time.Time) *Goal {
	g := &Goal{
		ID:            uuid.New().String(),
		Title:         strings.TrimSpace(title),
		Description:   strings.TrimSpace(description),
		TargetDate:    targetDate,
		TargetValue:   normalizeTarget(targetValue),
		TargetUnit:    normalizeLabel(targetUnit),
		TargetPeriod:  normalizeLabel(targetPeriod),
		ProgressValue: clampProgressValue(progressValue),
		Status:        GoalStatusActive,
		History:       []HistoryEntry{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	g.RecomputeProgress()
	return g
}

// RecomputeProgress derives Progress from ProgressValue vs TargetValue when
// both are present, and forces completion once the target is reached.
// Existing Progress is left intact if the target data is incomplete.
func (g *Goal) RecomputeProgress() {
	if g.TargetValue == nil || *g.TargetValue <= 0 || g.ProgressValue == nil {
		return
	}
	ratio := math.Max(0, *g.ProgressValue) / *g.TargetValue
	g.Progress = int(math.Round(math.Min(ratio, 1.0) * 100))
	if g.Progress >= 100 && g.Status != GoalStatusCompleted && g.Status != GoalStatusArchived {
		g.Status = GoalStatusCompleted
	}
}

// SetProgressPercent applies a directly-supplied percentage (legacy path),
// back-computing ProgressValue when a positive target exists.
func (g *Goal) SetProgressPercent(pct int) {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	g.Progress = pct
	if pct == 100 {
		g.Status = GoalStatusCompleted
	}
	if g.TargetValue != nil && *g.TargetValue > 0 {
		v := *g.TargetValue * float64(pct) / 100.0
		g.ProgressValue = &v
	}
}

// AppendNote adds a timestamped note to the goal's history.
func (g *Goal) AppendNote(note string, now time.Time) {
	g.History = append(g.History, HistoryEntry{
		Timestamp: now,
		Note:      strings.TrimSpace(note),
	})
}

// ShortID returns a shortened identifier suitable for disambiguation lists.
func (g *Goal) ShortID() string {
	if len(g.ID) <= 8 {
		return g.ID
	}
	return g.ID[:8]
}

func normalizeTarget(v *float64) *float64 {
	if v == nil || *v <= 0 {
		return nil
	}
	value := *v
	return &value
}

func clampProgressValue(v *float64) *float64 {
	if v == nil {
		return nil
	}
	value := *v
	if value < 0 {
		value = 0
	}
	return &value
}

func normalizeLabel(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
