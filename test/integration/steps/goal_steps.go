package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/dolma/backend/internal/application/adapter"
	"github.com/dolma/backend/internal/domain/entity"
)

// registerGoalSteps registers goal store seeding and assertion steps.
func registerGoalSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^a goal "([^"]*)" exists$`, aGoalExists)
	ctx.Step(`^a goal "([^"]*)" exists with target value (\d+) "([^"]*)"$`, aGoalExistsWithTarget)
	ctx.Step(`^I update the goal "([^"]*)" with body:$`, iUpdateTheGoalWithBody)
	ctx.Step(`^I delete the goal "([^"]*)"$`, iDeleteTheGoal)
	ctx.Step(`^the stored goal "([^"]*)" should have status "([^"]*)"$`, theStoredGoalShouldHaveStatus)
	ctx.Step(`^the stored goal "([^"]*)" should have progress (\d+)$`, theStoredGoalShouldHaveProgress)
}

func aGoalExists(ctx context.Context, title string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	_, err := tc.goalStore.Create(context.Background(), adapter.GoalCreate{Title: title})
	return err
}

func aGoalExistsWithTarget(ctx context.Context, title string, target int, unit string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	value := float64(target)
	_, err := tc.goalStore.Create(context.Background(), adapter.GoalCreate{
		Title:       title,
		TargetValue: &value,
		TargetUnit:  &unit,
	})
	return err
}

// findGoalByTitle looks a goal up in the scenario's store by exact title.
func (tc *TestContext) findGoalByTitle(title string) (*entity.Goal, error) {
	goals, err := tc.goalStore.List(context.Background(), "")
	if err != nil {
		return nil, err
	}
	for _, g := range goals {
		if g.Title == title {
			return g, nil
		}
	}
	return nil, fmt.Errorf("no stored goal titled %q", title)
}

func iUpdateTheGoalWithBody(ctx context.Context, title string, body *godog.DocString) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	g, err := tc.findGoalByTitle(title)
	if err != nil {
		return err
	}
	return tc.doRequest("PATCH", "/api/goals/"+g.ID, []byte(body.Content))
}

func iDeleteTheGoal(ctx context.Context, title string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	g, err := tc.findGoalByTitle(title)
	if err != nil {
		// The goal may already be gone; exercise the endpoint with the
		// last known id recorded in the response instead.
		return tc.doRequest("DELETE", "/api/goals/"+tc.lastDeletedGoalID, nil)
	}
	tc.lastDeletedGoalID = g.ID
	return tc.doRequest("DELETE", "/api/goals/"+g.ID, nil)
}

func theStoredGoalShouldHaveStatus(ctx context.Context, title, status string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	g, err := tc.findGoalByTitle(title)
	if err != nil {
		return err
	}
	if string(g.Status) != status {
		return fmt.Errorf("goal %q has status %q, expected %q", title, g.Status, status)
	}
	return nil
}

func theStoredGoalShouldHaveProgress(ctx context.Context, title string, progress int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	g, err := tc.findGoalByTitle(title)
	if err != nil {
		return err
	}
	if g.Progress != progress {
		return fmt.Errorf("goal %q has progress %d, expected %d", title, g.Progress, progress)
	}
	return nil
}
