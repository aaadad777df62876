// Package fake provides in-memory collaborator doubles for integration tests.
package fake

import (
	"context"
	"sync"

	"github.com/dolma/backend/internal/application/adapter"
)

// ChatService is a scripted stand-in for the completion model. Each call to
// Complete pops the next queued result, so scenarios decide exactly which
// tool calls the dispatcher sees.
type ChatService struct {
	mu    sync.Mutex
	queue []*adapter.ChatResult
}

// NewChatService creates an empty scripted chat service.
func NewChatService() *ChatService {
	return &ChatService{}
}

// Enqueue appends a scripted result for the next Complete call.
func (s *ChatService) Enqueue(result *adapter.ChatResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = append(s.queue, result)
}

// Complete returns the next scripted result, or a bland text reply when the
// script ran out.
func (s *ChatService) Complete(_ context.Context, _ []adapter.ChatMessage, _ string) (*adapter.ChatResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queue) == 0 {
		return &adapter.ChatResult{Reply: "OK."}, nil
	}
	next := s.queue[0]
	s.queue = s.queue[1:]
	return next, nil
}

// IsAvailable always reports true for the fake.
func (s *ChatService) IsAvailable() bool {
	return true
}
