// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dolma/backend/internal/integration/calendar"
	"github.com/dolma/backend/internal/integration/entrypoint/dto"
)

// GoogleController handles the Google Calendar connect flow.
type GoogleController struct {
	gateway     *calendar.GoogleGateway
	frontendURL string
}

// NewGoogleController creates a new Google controller instance.
func NewGoogleController(gateway *calendar.GoogleGateway, frontendURL string) *GoogleController {
	return &GoogleController{
		gateway:     gateway,
		frontendURL: frontendURL,
	}
}

// Status handles GET /api/google/status requests.
func (c *GoogleController) Status(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"connected": c.gateway.IsConnected()})
}

// Login handles GET /api/google/login requests by redirecting the browser
// to the Google consent screen.
func (c *GoogleController) Login(ctx *gin.Context) {
	state := uuid.NewString()
	ctx.Redirect(http.StatusFound, c.gateway.AuthURL(state))
}

// Callback handles GET /api/google/oauth2callback requests, exchanging the
// authorization code and sending the browser back to the frontend.
func (c *GoogleController) Callback(ctx *gin.Context) {
	code := ctx.Query("code")
	if code == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Missing authorization code"})
		return
	}
	if err := c.gateway.Exchange(ctx.Request.Context(), code); err != nil {
		ctx.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "Failed to connect Google Calendar"})
		return
	}
	ctx.Redirect(http.StatusFound, c.frontendURL+"/settings?connected=1")
}
