// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/dolma/backend/internal/application/adapter"
)

// maxHistoryTurns bounds how much prior conversation is sent to the model.
const maxHistoryTurns = 6

// defaultCompletionTimeout bounds a completion round trip when no timeout
// is configured.
const defaultCompletionTimeout = 10 * time.Second

const systemPrompt = "You are DOLMA, a friendly and intelligent personal assistant. " +
	"You can manage the user's Google Calendar and personal goals through the provided tools. " +
	"Before any create, update or delete you must first call the tool without confirm to show " +
	"a preview, and only call it with confirm=true after the user explicitly agrees. " +
	"Always respond helpfully and conversationally, even for repeated questions."

// GeminiService implements the ChatService using Google Gemini with
// function calling.
type GeminiService struct {
	apiKey    string
	modelName string
	timeout   time.Duration
}

// NewGeminiService creates a new Gemini service instance. A non-positive
// timeout falls back to the default completion timeout.
func NewGeminiService(apiKey string, timeout time.Duration) *GeminiService {
	if timeout <= 0 {
		timeout = defaultCompletionTimeout
	}
	return &GeminiService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash",
		timeout:   timeout,
	}
}

// IsAvailable checks if the Gemini service is properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Complete sends the trimmed conversation plus the new user message and
// returns the model's reply and any requested tool calls.
func (s *GeminiService) Complete(ctx context.Context, history []adapter.ChatMessage, message string) (*adapter.ChatResult, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.4)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}
	model.Tools = []*genai.Tool{assistantTools()}

	chat := model.StartChat()
	chat.History = toGenaiHistory(history)

	resp, err := chat.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	return parseResponse(resp)
}

// toGenaiHistory converts the recent conversation into Gemini content turns.
func toGenaiHistory(history []adapter.ChatMessage) []*genai.Content {
	if len(history) > maxHistoryTurns {
		history = history[len(history)-maxHistoryTurns:]
	}
	contents := make([]*genai.Content, 0, len(history))
	for _, m := range history {
		role := "user"
		if m.Role == "assistant" {
			role = "model"
		}
		text := strings.TrimSpace(m.Text)
		if text == "" {
			continue
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(text)},
		})
	}
	return contents
}

// parseResponse extracts the free-text reply and any function calls.
func parseResponse(resp *genai.GenerateContentResponse) (*adapter.ChatResult, error) {
	result := &adapter.ChatResult{}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return result, nil
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		switch p := part.(type) {
		case genai.Text:
			text.WriteString(string(p))
		case genai.FunctionCall:
			args, err := json.Marshal(p.Args)
			if err != nil {
				// Unencodable arguments are treated as an absent tool call.
				continue
			}
			result.ToolCalls = append(result.ToolCalls, adapter.ToolCall{
				Name:      p.Name,
				Arguments: args,
			})
		}
	}
	result.Reply = strings.TrimSpace(text.String())
	return result, nil
}
