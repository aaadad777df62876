// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/dolma/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Title         string   `json:"title" binding:"required"`
	Description   string   `json:"description"`
	TargetDate    *string  `json:"target_date,omitempty"`
	TargetValue   *float64 `json:"target_value,omitempty"`
	TargetUnit    *string  `json:"target_unit,omitempty"`
	TargetPeriod  *string  `json:"target_period,omitempty"`
	ProgressValue *float64 `json:"progress_value,omitempty"`
}

// UpdateGoalRequest represents the request body for goal update. Absent
// fields are left unchanged.
type UpdateGoalRequest struct {
	Title         *string  `json:"title,omitempty"`
	Description   *string  `json:"description,omitempty"`
	TargetDate    *string  `json:"target_date,omitempty"`
	TargetValue   *float64 `json:"target_value,omitempty"`
	TargetUnit    *string  `json:"target_unit,omitempty"`
	TargetPeriod  *string  `json:"target_period,omitempty"`
	Progress      *int     `json:"progress,omitempty"`
	ProgressValue *float64 `json:"progress_value,omitempty"`
	Status        *string  `json:"status,omitempty" binding:"omitempty,oneof=active completed archived"`
	Note          *string  `json:"note,omitempty"`
}

// HistoryEntryResponse represents a goal history note in API responses.
type HistoryEntryResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID            string                 `json:"id"`
	Title         string                 `json:"title"`
	Description   string                 `json:"description"`
	TargetDate    *string                `json:"target_date"`
	TargetValue   *float64               `json:"target_value"`
	TargetUnit    *string                `json:"target_unit"`
	TargetPeriod  *string                `json:"target_period"`
	ProgressValue *float64               `json:"progress_value"`
	Progress      int                    `json:"progress"`
	Status        string                 `json:"status"`
	History       []HistoryEntryResponse `json:"history"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// DeleteGoalResponse represents the response for goal deletion.
type DeleteGoalResponse struct {
	Deleted bool `json:"deleted"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	history := make([]HistoryEntryResponse, 0, len(g.History))
	for _, h := range g.History {
		history = append(history, HistoryEntryResponse{Timestamp: h.Timestamp, Note: h.Note})
	}
	return GoalResponse{
		ID:            g.ID,
		Title:         g.Title,
		Description:   g.Description,
		TargetDate:    g.TargetDate,
		TargetValue:   g.TargetValue,
		TargetUnit:    g.TargetUnit,
		TargetPeriod:  g.TargetPeriod,
		ProgressValue: g.ProgressValue,
		Progress:      g.Progress,
		Status:        string(g.Status),
		History:       history,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}

// ToGoalListResponse converts domain goals to the list response DTO.
func ToGoalListResponse(goals []*entity.Goal) GoalListResponse {
	response := GoalListResponse{Goals: make([]GoalResponse, 0, len(goals))}
	for _, g := range goals {
		response.Goals = append(response.Goals, ToGoalResponse(g))
	}
	return response
}
