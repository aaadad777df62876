// Package model defines the on-disk representation of persisted entities.
package model

import (
	"time"

	"github.com/dolma/backend/internal/domain/entity"
)

// HistoryEntryModel is the stored form of a goal history note.
type HistoryEntryModel struct {
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note"`
}

// GoalModel is the stored form of a goal. The goals file is a single JSON
// array of these records, atomically replaced on every write.
type GoalModel struct {
	ID            string              `json:"id"`
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	TargetDate    *string             `json:"target_date"`
	Progress      int                 `json:"progress"`
	Status        string              `json:"status"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
	History       []HistoryEntryModel `json:"history"`
	TargetValue   *float64            `json:"target_value"`
	TargetUnit    *string             `json:"target_unit"`
	TargetPeriod  *string             `json:"target_period"`
	ProgressValue *float64            `json:"progress_value"`
}

// FromEntity converts a domain Goal to its stored form.
func FromEntity(g *entity.Goal) GoalModel {
	history := make([]HistoryEntryModel, 0, len(g.History))
	for _, h := range g.History {
		history = append(history, HistoryEntryModel{Timestamp: h.Timestamp, Note: h.Note})
	}
	return GoalModel{
		ID:            g.ID,
		Title:         g.Title,
		Description:   g.Description,
		TargetDate:    g.TargetDate,
		Progress:      g.Progress,
		Status:        string(g.Status),
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
		History:       history,
		TargetValue:   g.TargetValue,
		TargetUnit:    g.TargetUnit,
		TargetPeriod:  g.TargetPeriod,
		ProgressValue: g.ProgressValue,
	}
}

// ToEntity converts a stored goal back to the domain entity.
func (m GoalModel) ToEntity() *entity.Goal {
	history := make([]entity.HistoryEntry, 0, len(m.History))
	for _, h := range m.History {
		history = append(history, entity.HistoryEntry{Timestamp: h.Timestamp, Note: h.Note})
	}
	return &entity.Goal{
		ID:            m.ID,
		Title:         m.Title,
		Description:   m.Description,
		TargetDate:    m.TargetDate,
		Progress:      m.Progress,
		Status:        entity.GoalStatus(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		History:       history,
		TargetValue:   m.TargetValue,
		TargetUnit:    m.TargetUnit,
		TargetPeriod:  m.TargetPeriod,
		ProgressValue: m.ProgressValue,
	}
}
