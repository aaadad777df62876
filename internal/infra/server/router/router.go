// Package router sets up the HTTP routing for the application.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dolma/backend/internal/integration/entrypoint/controller"
	"github.com/dolma/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine           *gin.Engine
	healthController *controller.HealthController
	chatController   *controller.ChatController
	goalController   *controller.GoalController
	googleController *controller.GoogleController
	chatRateLimiter  *middleware.RateLimiter
	allowedOrigins   []string
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	chatController *controller.ChatController,
	goalController *controller.GoalController,
	googleController *controller.GoogleController,
	chatRateLimiter *middleware.RateLimiter,
	allowedOrigins []string,
) *Router {
	return &Router{
		healthController: healthController,
		chatController:   chatController,
		goalController:   goalController,
		googleController: googleController,
		chatRateLimiter:  chatRateLimiter,
		allowedOrigins:   allowedOrigins,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// The frontend is served from a different origin.
	r.engine.Use(cors.New(cors.Config{
		AllowOrigins:     r.allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Session-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	api := r.engine.Group("/api")
	{
		if r.chatController != nil {
			chat := api.Group("/chat")
			if r.chatRateLimiter != nil {
				chat.Use(r.chatRateLimiter.Middleware())
			}
			chat.POST("", r.chatController.Chat)
		}

		if r.goalController != nil {
			goals := api.Group("/goals")
			{
				goals.GET("", r.goalController.List)
				goals.POST("", r.goalController.Create)
				goals.GET("/:id", r.goalController.Get)
				goals.PATCH("/:id", r.goalController.Update)
				goals.DELETE("/:id", r.goalController.Delete)
			}
		}

		if r.googleController != nil {
			google := api.Group("/google")
			{
				google.GET("/status", r.googleController.Status)
				google.GET("/login", r.googleController.Login)
				google.GET("/oauth2callback", r.googleController.Callback)
			}
		}
	}
}
