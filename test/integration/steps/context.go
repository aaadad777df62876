// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/dolma/backend/internal/application/usecase/assistant"
	"github.com/dolma/backend/internal/application/usecase/goal"
	"github.com/dolma/backend/internal/infra/server/router"
	"github.com/dolma/backend/internal/integration/entrypoint/controller"
	"github.com/dolma/backend/internal/integration/persistence"
	"github.com/dolma/backend/test/integration/fake"
)

// testSessionID scopes pending actions across the turns of one scenario.
const testSessionID = "godog-session"

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	engine       *gin.Engine
	response     *http.Response
	responseBody []byte

	// Collaborator fakes
	chat     *fake.ChatService
	calendar *fake.CalendarGateway

	// Real store backed by a scenario-scoped temp file
	goalStore *persistence.FileGoalStore
	tempDir   string

	// lastDeletedGoalID lets a second delete hit the same id after the
	// record is gone from the store.
	lastDeletedGoalID string
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		os.Setenv("ENV", "test")
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc := &TestContext{
			chat:     fake.NewChatService(),
			calendar: fake.NewCalendarGateway(),
		}

		dir, err := os.MkdirTemp("", "dolma-goals-*")
		if err != nil {
			return ctx, err
		}
		tc.tempDir = dir
		tc.goalStore, err = persistence.NewFileGoalStore(filepath.Join(dir, "goals.json"))
		if err != nil {
			return ctx, err
		}

		chatUseCase := assistant.NewChatUseCase(
			tc.chat,
			tc.calendar,
			tc.goalStore,
			assistant.NewPendingStore(),
			assistant.NewTimeFormatter(time.UTC),
		)

		healthController := controller.NewHealthController(tc.chat.IsAvailable, tc.calendar.IsConnected)
		chatController := controller.NewChatController(chatUseCase)
		goalController := controller.NewGoalController(
			goal.NewListGoalsUseCase(tc.goalStore),
			goal.NewGetGoalUseCase(tc.goalStore),
			goal.NewCreateGoalUseCase(tc.goalStore),
			goal.NewUpdateGoalUseCase(tc.goalStore),
			goal.NewDeleteGoalUseCase(tc.goalStore),
		)

		r := router.NewRouter(healthController, chatController, goalController, nil, nil, []string{"http://localhost:5173"})
		tc.engine = r.Setup("test")
		tc.server = httptest.NewServer(tc.engine)

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil {
			if tc.server != nil {
				tc.server.Close()
			}
			if tc.tempDir != "" {
				os.RemoveAll(tc.tempDir)
			}
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerResponseSteps(ctx)
	registerChatSteps(ctx)
	registerGoalSteps(ctx)
}
