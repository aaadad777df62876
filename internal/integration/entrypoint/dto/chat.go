// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/dolma/backend/internal/application/usecase/assistant"
	"github.com/dolma/backend/internal/domain/entity"
)

// ChatMessage is one prior conversation turn sent by the frontend.
type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// ChatRequest represents the request body for a chat turn.
type ChatRequest struct {
	Message      string        `json:"message" binding:"required"`
	Conversation []ChatMessage `json:"conversation"`
}

// ReplyItemResponse is a label/value pair rendered in a preview card.
type ReplyItemResponse struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// EventResponse represents a calendar event in API responses.
type EventResponse struct {
	ID       string    `json:"id"`
	Summary  string    `json:"summary"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Location string    `json:"location,omitempty"`
	AllDay   bool      `json:"all_day,omitempty"`
}

// ChatResponse is the outward reply payload. Reply is always present; the
// remaining fields appear only when the producing handler populated them.
type ChatResponse struct {
	Reply    string              `json:"reply"`
	ReplyMD  string              `json:"reply_md,omitempty"`
	CTA      string              `json:"cta,omitempty"`
	Items    []ReplyItemResponse `json:"items,omitempty"`
	Events   []EventResponse     `json:"events,omitempty"`
	Goals    []GoalResponse      `json:"goals,omitempty"`
	EventIDs []string            `json:"event_ids,omitempty"`
}

// ToChatResponse converts an assistant reply to the outward payload.
func ToChatResponse(r *assistant.Reply) ChatResponse {
	response := ChatResponse{
		Reply:    r.Reply,
		ReplyMD:  r.ReplyMD,
		CTA:      r.CTA,
		EventIDs: r.EventIDs,
	}
	for _, item := range r.Items {
		response.Items = append(response.Items, ReplyItemResponse{Label: item.Label, Value: item.Value})
	}
	for _, ev := range r.Events {
		response.Events = append(response.Events, ToEventResponse(ev))
	}
	for _, g := range r.Goals {
		response.Goals = append(response.Goals, ToGoalResponse(g))
	}
	return response
}

// ToEventResponse converts a domain event to its API representation.
func ToEventResponse(ev *entity.Event) EventResponse {
	return EventResponse{
		ID:       ev.ID,
		Summary:  ev.Summary,
		Start:    ev.Start,
		End:      ev.End,
		Location: ev.Location,
		AllDay:   ev.AllDay,
	}
}
