package adapter

import (
	"context"
	"encoding/json"
)

// ChatMessage is a single turn of prior conversation context.
type ChatMessage struct {
	Role string // "user" or "assistant"
	Text string
}

// ToolCall is a structured function invocation emitted by the model.
// Arguments is the raw argument object; each handler performs its own
// strict typed decoding.
type ToolCall struct {
	Name      string
	Arguments json.RawMessage
}

// ChatResult is the model's response to a chat turn: free text plus zero
// or more ordered tool calls.
type ChatResult struct {
	Reply     string
	ToolCalls []ToolCall
}

// ChatService defines the interface to the chat-completion collaborator.
type ChatService interface {
	// Complete sends the trimmed conversation plus the new user message and
	// returns the model's reply and any requested tool calls.
	Complete(ctx context.Context, history []ChatMessage, message string) (*ChatResult, error)

	// IsAvailable checks if the service is configured.
	IsAvailable() bool
}
