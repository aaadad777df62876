// Package main is the entry point for the DOLMA assistant API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/dolma/backend/config"
	"github.com/dolma/backend/internal/application/usecase/assistant"
	"github.com/dolma/backend/internal/application/usecase/goal"
	"github.com/dolma/backend/internal/infra/server/router"
	"github.com/dolma/backend/internal/integration/adapters"
	"github.com/dolma/backend/internal/integration/calendar"
	"github.com/dolma/backend/internal/integration/entrypoint/controller"
	"github.com/dolma/backend/internal/integration/entrypoint/middleware"
	"github.com/dolma/backend/internal/integration/persistence"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting DOLMA API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	loc, err := time.LoadLocation(cfg.Assistant.Timezone)
	if err != nil {
		slog.Warn("Unknown timezone, falling back to UTC",
			"timezone", cfg.Assistant.Timezone,
			"error", err,
		)
		loc = time.UTC
	}

	// Initialize the goal store
	goalStore, err := persistence.NewFileGoalStore(cfg.Store.GoalsFile)
	if err != nil {
		slog.Error("Failed to initialize goal store", "error", err, "file", cfg.Store.GoalsFile)
		os.Exit(1)
	}

	// Initialize the Google Calendar gateway
	calendarGateway := calendar.NewGoogleGateway(calendar.Config{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		RedirectURL:  cfg.Google.RedirectURL,
		TokenFile:    cfg.Google.TokenFile,
		Timeout:      cfg.Google.Timeout,
	}, loc)

	// Initialize the completion service
	chatService := adapters.NewGeminiService(cfg.LLM.GeminiAPIKey, cfg.LLM.Timeout)
	if !chatService.IsAvailable() {
		slog.Warn("GEMINI_API_KEY is not set, chat replies will be unavailable")
	}

	// Create goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalStore)
	getGoalUseCase := goal.NewGetGoalUseCase(goalStore)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalStore)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalStore)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalStore)

	// Create the assistant use case
	chatUseCase := assistant.NewChatUseCase(
		chatService,
		calendarGateway,
		goalStore,
		assistant.NewPendingStore(),
		assistant.NewTimeFormatter(loc),
	)

	// Create controllers and middleware
	healthController := controller.NewHealthController(chatService.IsAvailable, calendarGateway.IsConnected)
	chatController := controller.NewChatController(chatUseCase)
	goalController := controller.NewGoalController(
		listGoalsUseCase,
		getGoalUseCase,
		createGoalUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
	)
	googleController := controller.NewGoogleController(calendarGateway, cfg.Server.FrontendURL)
	chatRateLimiter := middleware.NewRateLimiter()

	// Setup router
	r := router.NewRouter(
		healthController,
		chatController,
		goalController,
		googleController,
		chatRateLimiter,
		cfg.Server.AllowedOrigins,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
