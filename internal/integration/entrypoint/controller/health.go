// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	llmAvailable      func() bool
	calendarConnected func() bool
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	LLM       string `json:"llm"`
	Calendar  string `json:"calendar"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(llmAvailable, calendarConnected func() bool) *HealthController {
	return &HealthController{
		llmAvailable:      llmAvailable,
		calendarConnected: calendarConnected,
	}
}

// Check handles GET /health requests.
// It returns the current health status of the API and its collaborators.
func (h *HealthController) Check(c *gin.Context) {
	llmStatus := "unconfigured"
	if h.llmAvailable != nil && h.llmAvailable() {
		llmStatus = "configured"
	}
	calendarStatus := "disconnected"
	if h.calendarConnected != nil && h.calendarConnected() {
		calendarStatus = "connected"
	}

	response := HealthResponse{
		Status:    "ok",
		LLM:       llmStatus,
		Calendar:  calendarStatus,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	c.JSON(http.StatusOK, response)
}
