package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cucumber/godog"

	"github.com/dolma/backend/internal/application/adapter"
)

// registerChatSteps registers model scripting and calendar steps.
func registerChatSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the model will reply "([^"]*)"$`, theModelWillReply)
	ctx.Step(`^the model will call tool "([^"]*)" with arguments:$`, theModelWillCallTool)
	ctx.Step(`^I send the chat message "([^"]*)"$`, iSendTheChatMessage)
	ctx.Step(`^the calendar is not connected$`, theCalendarIsNotConnected)
	ctx.Step(`^the calendar contains an event "([^"]*)" from "([^"]*)" to "([^"]*)"$`, theCalendarContainsAnEvent)
	ctx.Step(`^the calendar should contain (\d+) events?$`, theCalendarShouldContainEvents)
}

func theModelWillReply(ctx context.Context, reply string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.chat.Enqueue(&adapter.ChatResult{Reply: reply})
	return nil
}

func theModelWillCallTool(ctx context.Context, tool string, args *godog.DocString) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if !json.Valid([]byte(args.Content)) {
		return fmt.Errorf("scripted tool arguments are not valid JSON: %s", args.Content)
	}
	tc.chat.Enqueue(&adapter.ChatResult{
		ToolCalls: []adapter.ToolCall{{Name: tool, Arguments: json.RawMessage(args.Content)}},
	})
	return nil
}

func iSendTheChatMessage(ctx context.Context, message string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	body, err := json.Marshal(map[string]string{"message": message})
	if err != nil {
		return err
	}
	return tc.doRequest("POST", "/api/chat", body)
}

func theCalendarIsNotConnected(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.calendar.SetConnected(false)
	return nil
}

func theCalendarContainsAnEvent(ctx context.Context, summary, startStr, endStr string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	start, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		return fmt.Errorf("bad start time %q: %w", startStr, err)
	}
	end, err := time.Parse(time.RFC3339, endStr)
	if err != nil {
		return fmt.Errorf("bad end time %q: %w", endStr, err)
	}
	tc.calendar.Seed(summary, start, end)
	return nil
}

func theCalendarShouldContainEvents(ctx context.Context, expected int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	events := tc.calendar.Events()
	if len(events) != expected {
		return fmt.Errorf("expected %d calendar events, got %d", expected, len(events))
	}
	return nil
}
