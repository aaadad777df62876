// Package assistant contains the tool-call dispatch, confirmation protocol
// and entity resolution use cases behind the chat endpoint.
package assistant

import "github.com/dolma/backend/internal/domain/entity"

// ReplyItem is a label/value pair rendered by the frontend in a preview card.
type ReplyItem struct {
	Label string
	Value string
}

// Reply is the outward payload produced by a chat turn. Reply is always
// present; the optional fields are populated only by the handler that
// produced the response.
type Reply struct {
	Reply    string
	ReplyMD  string
	CTA      string
	Items    []ReplyItem
	Events   []*entity.Event
	Goals    []*entity.Goal
	EventIDs []string
}
