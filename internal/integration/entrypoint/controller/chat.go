// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dolma/backend/internal/application/adapter"
	"github.com/dolma/backend/internal/application/usecase/assistant"
	"github.com/dolma/backend/internal/integration/entrypoint/dto"
)

// sessionHeader identifies the chat session for pending-action scoping.
// Browsers that don't send it fall back to their client IP.
const sessionHeader = "X-Session-ID"

// ChatController handles the conversational endpoint.
type ChatController struct {
	chatUseCase *assistant.ChatUseCase
}

// NewChatController creates a new chat controller instance.
func NewChatController(chatUseCase *assistant.ChatUseCase) *ChatController {
	return &ChatController{chatUseCase: chatUseCase}
}

// Chat handles POST /api/chat requests.
func (c *ChatController) Chat(ctx *gin.Context) {
	var req dto.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "No message provided",
		})
		return
	}

	sessionID := ctx.GetHeader(sessionHeader)
	if sessionID == "" {
		sessionID = ctx.ClientIP()
	}

	history := make([]adapter.ChatMessage, 0, len(req.Conversation))
	for _, m := range req.Conversation {
		if m.Role != "user" && m.Role != "assistant" {
			continue
		}
		history = append(history, adapter.ChatMessage{Role: m.Role, Text: m.Text})
	}

	output, err := c.chatUseCase.Execute(ctx.Request.Context(), assistant.ChatInput{
		SessionID: sessionID,
		Message:   req.Message,
		History:   history,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to process message",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToChatResponse(output.Reply))
}
