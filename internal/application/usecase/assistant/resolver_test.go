package assistant

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	domainerror "github.com/dolma/backend/internal/domain/error"
)

func TestSplitKeywords(t *testing.T) {
	cases := []struct {
		query string
		want  []string
	}{
		{"gym", []string{"gym"}},
		{"Gym AND Dentist", []string{"gym", "dentist"}},
		{"standup, review & retro", []string{"standup", "review", "retro"}},
		{"  ", nil},
		{"band practice", []string{"band practice"}},
	}
	for _, tc := range cases {
		got := splitKeywords(tc.query)
		if len(got) == 0 {
			got = nil
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("splitKeywords(%q) = %v, want %v", tc.query, got, tc.want)
		}
	}
}

func TestResolveEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("matches case-insensitive substrings", func(t *testing.T) {
		cal := newFakeCalendar()
		cal.seed("Gym session", testNow, testNow.Add(time.Hour))
		cal.seed("Dentist", testNow.Add(2*time.Hour), testNow.Add(3*time.Hour))
		uc := newTestUseCase(&fakeChat{}, cal, &fakeGoals{})

		events, err := uc.resolveEvents(ctx, "GYM", "", "", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(events) != 1 || events[0].Summary != "Gym session" {
			t.Errorf("expected only the gym event, got %v", events)
		}
	})

	t.Run("any conjunction part may match", func(t *testing.T) {
		cal := newFakeCalendar()
		cal.seed("Gym session", testNow, testNow.Add(time.Hour))
		cal.seed("Dentist", testNow.Add(2*time.Hour), testNow.Add(3*time.Hour))
		cal.seed("Standup", testNow.Add(4*time.Hour), testNow.Add(5*time.Hour))
		uc := newTestUseCase(&fakeChat{}, cal, &fakeGoals{})

		events, err := uc.resolveEvents(ctx, "gym and dentist", "", "", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(events) != 2 {
			t.Errorf("expected 2 events, got %v", events)
		}
	})

	t.Run("an empty query returns the whole window", func(t *testing.T) {
		cal := newFakeCalendar()
		cal.seed("Gym session", testNow, testNow.Add(time.Hour))
		cal.seed("Dentist", testNow.Add(2*time.Hour), testNow.Add(3*time.Hour))
		uc := newTestUseCase(&fakeChat{}, cal, &fakeGoals{})

		events, err := uc.resolveEvents(ctx, "", "today", "", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(events) != 2 {
			t.Errorf("expected 2 events, got %v", events)
		}
	})

	t.Run("gateway failures surface as upstream errors", func(t *testing.T) {
		cal := newFakeCalendar()
		cal.findErr = errors.New("api down")
		uc := newTestUseCase(&fakeChat{}, cal, &fakeGoals{})

		_, err := uc.resolveEvents(ctx, "gym", "", "", "")
		if !errors.Is(err, domainerror.ErrUpstreamUnavailable) {
			t.Errorf("expected upstream error, got %v", err)
		}
	})
}

func TestResolveWindow(t *testing.T) {
	uc := newTestUseCase(&fakeChat{}, newFakeCalendar(), &fakeGoals{})

	t.Run("explicit bounds win over a preset", func(t *testing.T) {
		start, end, err := uc.resolveWindow("today", "2026-04-01T00:00:00Z", "2026-04-02T00:00:00Z")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if start.Month() != time.April || end.Month() != time.April {
			t.Errorf("expected the explicit April window, got [%v, %v)", start, end)
		}
	})

	t.Run("a date-only end covers its whole day", func(t *testing.T) {
		_, end, err := uc.resolveWindow("", "2026-04-01", "2026-04-02")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2026, 4, 3, 0, 0, 0, 0, time.UTC)
		if !end.Equal(want) {
			t.Errorf("expected end %v, got %v", want, end)
		}
	})

	t.Run("a lone start opens a forward window", func(t *testing.T) {
		start, end, err := uc.resolveWindow("today", "2026-04-01T00:00:00Z", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		wantStart := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
		if !start.Equal(wantStart) || !end.Equal(wantStart.AddDate(0, 0, defaultWindowDays)) {
			t.Errorf("unexpected window [%v, %v)", start, end)
		}
	})

	t.Run("a lone end opens a backward window", func(t *testing.T) {
		start, end, err := uc.resolveWindow("", "", "2026-04-02")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		wantEnd := time.Date(2026, 4, 3, 0, 0, 0, 0, time.UTC)
		if !end.Equal(wantEnd) || !start.Equal(wantEnd.AddDate(0, 0, -defaultWindowDays)) {
			t.Errorf("unexpected window [%v, %v)", start, end)
		}
	})

	t.Run("without bounds or preset the window straddles now", func(t *testing.T) {
		start, end, err := uc.resolveWindow("", "", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !start.Equal(testNow.AddDate(0, 0, -defaultWindowDays)) || !end.Equal(testNow.AddDate(0, 0, defaultWindowDays)) {
			t.Errorf("unexpected default window [%v, %v)", start, end)
		}
	})

	t.Run("an unparseable explicit bound is malformed", func(t *testing.T) {
		_, _, err := uc.resolveWindow("", "soon", "later")
		if !errors.Is(err, domainerror.ErrMalformedArguments) {
			t.Errorf("expected malformed error, got %v", err)
		}
	})
}

func TestResolveGoal(t *testing.T) {
	ctx := context.Background()

	t.Run("an id wins when it exists", func(t *testing.T) {
		goals := &fakeGoals{}
		g := goals.seed("Read 12 books", nil, nil)
		uc := newTestUseCase(&fakeChat{}, newFakeCalendar(), goals)

		got, candidates, err := uc.resolveGoal(ctx, g.ID, "something else")
		if err != nil || candidates != nil {
			t.Fatalf("unexpected result: %v, %v", candidates, err)
		}
		if got.ID != g.ID {
			t.Errorf("expected goal %s, got %s", g.ID, got.ID)
		}
	})

	t.Run("a stale id falls back to the title fragment", func(t *testing.T) {
		goals := &fakeGoals{}
		g := goals.seed("Read 12 books", nil, nil)
		uc := newTestUseCase(&fakeChat{}, newFakeCalendar(), goals)

		got, _, err := uc.resolveGoal(ctx, "stale-id", "books")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != g.ID {
			t.Errorf("expected fallback to find %s, got %s", g.ID, got.ID)
		}
	})

	t.Run("no reference at all is not found", func(t *testing.T) {
		uc := newTestUseCase(&fakeChat{}, newFakeCalendar(), &fakeGoals{})
		_, _, err := uc.resolveGoal(ctx, "", "")
		if !errors.Is(err, domainerror.ErrGoalNotFound) {
			t.Errorf("expected not-found error, got %v", err)
		}
	})

	t.Run("several matches are ambiguous", func(t *testing.T) {
		goals := &fakeGoals{}
		goals.seed("Read 12 books", nil, nil)
		goals.seed("Read more nonfiction", nil, nil)
		uc := newTestUseCase(&fakeChat{}, newFakeCalendar(), goals)

		_, candidates, err := uc.resolveGoal(ctx, "", "read")
		if !errors.Is(err, domainerror.ErrAmbiguousGoal) {
			t.Fatalf("expected ambiguous error, got %v", err)
		}
		if len(candidates) != 2 {
			t.Errorf("expected 2 candidates, got %d", len(candidates))
		}
	})

	t.Run("the candidate list is capped", func(t *testing.T) {
		goals := &fakeGoals{}
		for i := 0; i < maxGoalCandidates+3; i++ {
			goals.seed("Read something", nil, nil)
		}
		uc := newTestUseCase(&fakeChat{}, newFakeCalendar(), goals)

		_, candidates, err := uc.resolveGoal(ctx, "", "read")
		if !errors.Is(err, domainerror.ErrAmbiguousGoal) {
			t.Fatalf("expected ambiguous error, got %v", err)
		}
		if len(candidates) != maxGoalCandidates {
			t.Errorf("expected %d candidates, got %d", maxGoalCandidates, len(candidates))
		}
	})
}
