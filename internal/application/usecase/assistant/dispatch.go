package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dolma/backend/internal/application/adapter"
	domainerror "github.com/dolma/backend/internal/domain/error"
)

// ChatInput represents one inbound chat turn.
type ChatInput struct {
	SessionID string
	Message   string
	History   []adapter.ChatMessage
}

// ChatOutput represents the outward reply for a chat turn.
type ChatOutput struct {
	Reply *Reply
}

// toolHandler handles a single dispatched tool call.
type toolHandler func(ctx context.Context, sessionID string, args json.RawMessage) (*Reply, error)

// ChatUseCase routes chat turns through the chat-completion collaborator
// and dispatches any resulting tool calls to their handlers. All expected
// failures are recovered into user-facing replies; Execute only returns an
// error for programming mistakes.
type ChatUseCase struct {
	chat     adapter.ChatService
	calendar adapter.CalendarGateway
	goals    adapter.GoalStore
	pending  *PendingStore
	times    *TimeFormatter
	now      func() time.Time
}

// NewChatUseCase creates a new ChatUseCase instance.
func NewChatUseCase(
	chat adapter.ChatService,
	calendar adapter.CalendarGateway,
	goals adapter.GoalStore,
	pending *PendingStore,
	times *TimeFormatter,
) *ChatUseCase {
	return &ChatUseCase{
		chat:     chat,
		calendar: calendar,
		goals:    goals,
		pending:  pending,
		times:    times,
		now:      time.Now,
	}
}

// handlers returns the dispatch table keyed by tool name.
func (uc *ChatUseCase) handlers() map[string]toolHandler {
	return map[string]toolHandler{
		"create_event": uc.handleCreateEvent,
		"find_events":  uc.handleFindEvents,
		"update_event": uc.handleUpdateEvent,
		"delete_event": uc.handleDeleteEvent,
		"create_goal":  uc.handleCreateGoal,
		"update_goal":  uc.handleUpdateGoal,
		"list_goals":   uc.handleListGoals,
	}
}

// calendarTools names the tools that require a connected calendar.
var calendarTools = map[string]bool{
	"create_event": true,
	"find_events":  true,
	"update_event": true,
	"delete_event": true,
}

// Execute performs one chat turn: completion, dispatch, reply assembly.
// The first tool call that yields a reply wins; with no tool calls the
// model's free-text reply is returned.
func (uc *ChatUseCase) Execute(ctx context.Context, input ChatInput) (*ChatOutput, error) {
	result, err := uc.chat.Complete(ctx, input.History, input.Message)
	if err != nil {
		slog.Error("chat completion failed", "error", err)
		return &ChatOutput{Reply: &Reply{
			Reply: "Sorry, I'm having trouble thinking right now. Please try again in a moment.",
		}}, nil
	}

	table := uc.handlers()
	for _, call := range result.ToolCalls {
		handler, ok := table[call.Name]
		if !ok {
			slog.Warn("model requested unknown tool", "tool", call.Name)
			continue
		}
		if calendarTools[call.Name] && !uc.calendar.IsConnected() {
			return &ChatOutput{Reply: uc.replyForError(domainerror.NewAssistantError(
				domainerror.ErrCodeNotConnected,
				"calendar is not connected",
				domainerror.ErrCalendarNotConnected,
			))}, nil
		}

		reply, err := handler(ctx, input.SessionID, call.Arguments)
		if err != nil {
			slog.Info("tool call recovered into reply", "tool", call.Name, "error", err)
			return &ChatOutput{Reply: uc.replyForError(err)}, nil
		}
		if reply != nil {
			return &ChatOutput{Reply: reply}, nil
		}
	}

	reply := strings.TrimSpace(result.Reply)
	if reply == "" {
		reply = "I'm not sure what to say to that. Could you rephrase?"
	}
	return &ChatOutput{Reply: &Reply{Reply: reply}}, nil
}

// replyForError turns an expected failure into a user-facing reply. Nothing
// in the dispatch path surfaces raw errors to the presentation layer.
func (uc *ChatUseCase) replyForError(err error) *Reply {
	switch {
	case errors.Is(err, domainerror.ErrCalendarNotConnected):
		return &Reply{
			Reply: "Your Google Calendar isn't connected yet. Head to Settings and connect it first, then ask me again.",
			CTA:   "Connect Google Calendar",
		}
	// Numeric failures come joined with the malformed sentinel, so this
	// check runs first to keep the more specific clarification.
	case errors.Is(err, domainerror.ErrInvalidNumericValue):
		return &Reply{Reply: "That value needs to be a number. Could you give me a numeric amount?"}
	case errors.Is(err, domainerror.ErrMalformedArguments):
		return &Reply{Reply: "I didn't quite catch the details there. Could you say that again with a bit more detail?"}
	case errors.Is(err, domainerror.ErrNoMatchingEvents):
		return &Reply{Reply: withDetail("I couldn't find any matching events", err)}
	case errors.Is(err, domainerror.ErrGoalNotFound):
		return &Reply{Reply: withDetail("I couldn't find that goal", err) + " Could you clarify which one you meant?"}
	case errors.Is(err, domainerror.ErrInvalidGoalTitle):
		return &Reply{Reply: "Every goal needs a title. What would you like to call it?"}
	case errors.Is(err, domainerror.ErrInvalidGoalStatus):
		return &Reply{Reply: "A goal can be active, completed or archived. Which should it be?"}
	case errors.Is(err, domainerror.ErrNothingPending):
		return &Reply{Reply: "There's nothing waiting for confirmation. Tell me what you'd like to schedule first."}
	default:
		return &Reply{Reply: "Sorry, something went wrong talking to your calendar. Please try again."}
	}
}

// withDetail appends the resolver's detail message, when present, to a
// user-facing sentence.
func withDetail(prefix string, err error) string {
	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) && goalErr.Message != "" {
		return fmt.Sprintf("%s (%s).", prefix, goalErr.Message)
	}
	var assistantErr *domainerror.AssistantError
	if errors.As(err, &assistantErr) && assistantErr.Message != "" {
		return fmt.Sprintf("%s (%s).", prefix, assistantErr.Message)
	}
	return prefix + "."
}
