package adapters

import "github.com/google/generative-ai-go/genai"

// assistantTools declares the calendar and goal tools offered to the model.
// Every mutating tool carries the confirm flag that separates preview from
// execution.
func assistantTools() *genai.Tool {
	confirm := &genai.Schema{
		Type:        genai.TypeBoolean,
		Description: "Set true only after the user explicitly agrees to the previewed change.",
	}
	eventQuery := map[string]*genai.Schema{
		"query": {
			Type:        genai.TypeString,
			Description: "Free-text keywords matched against event titles. Multiple alternatives may be joined with 'and' or '&'.",
		},
		"preset": {
			Type:        genai.TypeString,
			Description: "Named time window: today, tomorrow, this_week or next_week.",
			Enum:        []string{"today", "tomorrow", "this_week", "next_week"},
		},
		"start_time": {
			Type:        genai.TypeString,
			Description: "Explicit window start, RFC3339 or YYYY-MM-DD. Overrides preset.",
		},
		"end_time": {
			Type:        genai.TypeString,
			Description: "Explicit window end, RFC3339 or YYYY-MM-DD.",
		},
	}

	eventFields := map[string]*genai.Schema{
		"summary":     {Type: genai.TypeString, Description: "Event title"},
		"description": {Type: genai.TypeString},
		"start_time": {
			Type:        genai.TypeString,
			Description: "ISO8601 datetime with timezone and year (RFC3339). MUST include year and offset, e.g. 2025-11-22T14:00:00+11:00",
		},
		"end_time": {
			Type:        genai.TypeString,
			Description: "ISO8601 datetime with timezone and year (RFC3339). MUST include year and offset, e.g. 2025-11-22T16:00:00+11:00",
		},
		"location": {Type: genai.TypeString},
		"attendees": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "Emails",
		},
		"recurrence": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "e.g. ['RRULE:FREQ=WEEKLY;COUNT=5']",
		},
		"reminders": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"method":  {Type: genai.TypeString},
					"minutes": {Type: genai.TypeInteger},
				},
				Required: []string{"method", "minutes"},
			},
		},
	}

	createEventProps := map[string]*genai.Schema{"confirm": confirm}
	for k, v := range eventFields {
		createEventProps[k] = v
	}
	createEventProps["events"] = &genai.Schema{
		Type:        genai.TypeArray,
		Description: "Use when creating several events at once, instead of the top-level fields.",
		Items: &genai.Schema{
			Type:       genai.TypeObject,
			Properties: eventFields,
			Required:   []string{"summary", "start_time", "end_time"},
		},
	}

	withConfirm := func(props map[string]*genai.Schema) map[string]*genai.Schema {
		merged := map[string]*genai.Schema{"confirm": confirm}
		for k, v := range props {
			merged[k] = v
		}
		return merged
	}

	updateEventProps := withConfirm(eventQuery)
	updateEventProps["new_summary"] = &genai.Schema{Type: genai.TypeString}
	updateEventProps["new_description"] = &genai.Schema{Type: genai.TypeString}
	updateEventProps["new_location"] = &genai.Schema{Type: genai.TypeString}
	updateEventProps["new_start_time"] = &genai.Schema{Type: genai.TypeString, Description: "New start, RFC3339."}
	updateEventProps["new_end_time"] = &genai.Schema{Type: genai.TypeString, Description: "New end, RFC3339."}

	return &genai.Tool{
		FunctionDeclarations: []*genai.FunctionDeclaration{
			{
				Name:        "create_event",
				Description: "Create Google Calendar events. Ask the user for missing details and preview before calling with confirm=true.",
				Parameters: &genai.Schema{
					Type:       genai.TypeObject,
					Properties: createEventProps,
				},
			},
			{
				Name:        "find_events",
				Description: "Look up the user's calendar events by keyword and time window.",
				Parameters: &genai.Schema{
					Type:       genai.TypeObject,
					Properties: eventQuery,
				},
			},
			{
				Name:        "update_event",
				Description: "Change fields on calendar events matching a query. Preview before calling with confirm=true.",
				Parameters: &genai.Schema{
					Type:       genai.TypeObject,
					Properties: updateEventProps,
				},
			},
			{
				Name:        "delete_event",
				Description: "Delete calendar events matching a query. Preview the matches before calling with confirm=true.",
				Parameters: &genai.Schema{
					Type:       genai.TypeObject,
					Properties: withConfirm(eventQuery),
					Required:   []string{"query"},
				},
			},
			{
				Name:        "create_goal",
				Description: "Create a new personal goal for the user. Present a preview before calling with confirm=true.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"title":       {Type: genai.TypeString, Description: "Short goal title."},
						"description": {Type: genai.TypeString, Description: "Optional detail about the goal."},
						"target_date": {
							Type:        genai.TypeString,
							Description: "Optional target completion date in ISO8601 (e.g. 2025-09-12).",
						},
						"target_value": {
							Type:        genai.TypeNumber,
							Description: "Optional numeric target total (e.g. 70 for 70 km, 120 for pages).",
						},
						"target_unit": {
							Type:        genai.TypeString,
							Description: "Unit for the goal target (e.g. km, pages, $, minutes).",
						},
						"target_period": {
							Type:        genai.TypeString,
							Description: "Optional cadence or context like 'this week' or 'by Saturday'.",
						},
						"progress_value": {
							Type:        genai.TypeNumber,
							Description: "Optional starting progress expressed in the same unit as the target.",
						},
						"confirm": confirm,
					},
					Required: []string{"title"},
				},
			},
			{
				Name:        "update_goal",
				Description: "Update an existing goal's progress, details, or status. Confirm with the user before making changes.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"goal_id": {Type: genai.TypeString, Description: "Identifier of the goal to update."},
						"goal_title": {
							Type:        genai.TypeString,
							Description: "Use when the goal ID is unknown; provide the goal title or a distinctive part of it.",
						},
						"title":       {Type: genai.TypeString},
						"description": {Type: genai.TypeString},
						"target_date": {
							Type:        genai.TypeString,
							Description: "New target date in ISO8601 (e.g. 2025-10-01).",
						},
						"progress": {
							Type:        genai.TypeInteger,
							Description: "Progress percentage from 0 to 100.",
						},
						"progress_value": {
							Type:        genai.TypeNumber,
							Description: "Amount of progress completed so far in the goal's unit.",
						},
						"status": {
							Type:        genai.TypeString,
							Enum:        []string{"active", "completed", "archived"},
							Description: "New goal status.",
						},
						"target_value": {
							Type:        genai.TypeNumber,
							Description: "Update the goal's total target amount.",
						},
						"target_unit": {
							Type:        genai.TypeString,
							Description: "Update the goal's unit (e.g. km, pages, $).",
						},
						"target_period": {
							Type:        genai.TypeString,
							Description: "Update the cadence/context like 'this week'.",
						},
						"note": {
							Type:        genai.TypeString,
							Description: "Optional note or milestone update to add to the goal history.",
						},
						"confirm": confirm,
					},
				},
			},
			{
				Name:        "list_goals",
				Description: "Retrieve the user's goals for summary or review.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"status": {
							Type:        genai.TypeString,
							Enum:        []string{"active", "completed", "archived"},
							Description: "Optional filter for goal status.",
						},
					},
				},
			},
		},
	}
}
