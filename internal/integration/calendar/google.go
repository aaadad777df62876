// Package calendar implements the calendar gateway against the Google
// Calendar API.
package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/dolma/backend/internal/application/adapter"
	"github.com/dolma/backend/internal/domain/entity"
	domainerror "github.com/dolma/backend/internal/domain/error"
)

// calendarID targets the user's primary calendar.
const calendarID = "primary"

// defaultCallTimeout bounds a calendar API round trip when no timeout is
// configured.
const defaultCallTimeout = 5 * time.Second

// Config holds the OAuth client settings, token location and the per-call
// timeout.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	TokenFile    string
	Timeout      time.Duration
}

// GoogleGateway implements adapter.CalendarGateway over the Google
// Calendar v3 API. Authorization uses a stored OAuth token that is
// refreshed transparently and re-persisted when it changes.
type GoogleGateway struct {
	oauth     *oauth2.Config
	tokenFile string
	loc       *time.Location
	timeout   time.Duration

	// mu guards reads and writes of the token file.
	mu sync.Mutex
}

// NewGoogleGateway creates a gateway from OAuth client settings. A
// non-positive timeout falls back to the default call timeout.
func NewGoogleGateway(cfg Config, loc *time.Location) *GoogleGateway {
	if loc == nil {
		loc = time.UTC
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultCallTimeout
	}
	return &GoogleGateway{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{gcal.CalendarScope},
			Endpoint:     google.Endpoint,
		},
		tokenFile: cfg.TokenFile,
		loc:       loc,
		timeout:   timeout,
	}
}

// bound derives a context that caps one API round trip.
func (g *GoogleGateway) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, g.timeout)
}

// AuthURL returns the Google consent URL for the connect flow.
func (g *GoogleGateway) AuthURL(state string) string {
	return g.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.SetAuthURLParam("prompt", "consent"))
}

// Exchange trades an authorization code for a token and persists it.
func (g *GoogleGateway) Exchange(ctx context.Context, code string) error {
	ctx, cancel := g.bound(ctx)
	defer cancel()

	token, err := g.oauth.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	return g.saveToken(token)
}

// IsConnected reports whether a usable calendar authorization exists.
func (g *GoogleGateway) IsConnected() bool {
	token, err := g.loadToken()
	if err != nil || token == nil {
		return false
	}
	return token.Valid() || token.RefreshToken != ""
}

// FindEvents returns events within [start, end), bounded by maxResults.
func (g *GoogleGateway) FindEvents(ctx context.Context, start, end time.Time, maxResults int) ([]*entity.Event, error) {
	ctx, cancel := g.bound(ctx)
	defer cancel()

	svc, err := g.service(ctx)
	if err != nil {
		return nil, err
	}

	list, err := svc.Events.List(calendarID).
		TimeMin(start.Format(time.RFC3339)).
		TimeMax(end.Format(time.RFC3339)).
		MaxResults(int64(maxResults)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	events := make([]*entity.Event, 0, len(list.Items))
	for _, item := range list.Items {
		ev, err := g.toEntity(item)
		if err != nil {
			continue
		}
		events = append(events, ev)
	}
	return events, nil
}

// CreateEvent creates a single event from the draft.
func (g *GoogleGateway) CreateEvent(ctx context.Context, draft entity.EventDraft) (*entity.Event, error) {
	ctx, cancel := g.bound(ctx)
	defer cancel()

	svc, err := g.service(ctx)
	if err != nil {
		return nil, err
	}

	event := &gcal.Event{
		Summary:     draft.Summary,
		Description: draft.Description,
		Location:    draft.Location,
		Start:       &gcal.EventDateTime{DateTime: draft.Start.Format(time.RFC3339)},
		End:         &gcal.EventDateTime{DateTime: draft.End.Format(time.RFC3339)},
		Recurrence:  draft.Recurrence,
	}
	for _, email := range draft.Attendees {
		event.Attendees = append(event.Attendees, &gcal.EventAttendee{Email: email})
	}
	if len(draft.Reminders) > 0 {
		overrides := make([]*gcal.EventReminder, 0, len(draft.Reminders))
		for _, r := range draft.Reminders {
			overrides = append(overrides, &gcal.EventReminder{Method: r.Method, Minutes: int64(r.Minutes)})
		}
		event.Reminders = &gcal.EventReminders{
			UseDefault:      false,
			Overrides:       overrides,
			ForceSendFields: []string{"UseDefault"},
		}
	}

	created, err := svc.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return g.toEntity(created)
}

// UpdateEvent applies the sparse patch to the event with the given id.
func (g *GoogleGateway) UpdateEvent(ctx context.Context, id string, patch adapter.EventPatch) (*entity.Event, error) {
	ctx, cancel := g.bound(ctx)
	defer cancel()

	svc, err := g.service(ctx)
	if err != nil {
		return nil, err
	}

	event := &gcal.Event{}
	if patch.Summary != nil {
		event.Summary = *patch.Summary
	}
	if patch.Description != nil {
		event.Description = *patch.Description
	}
	if patch.Location != nil {
		event.Location = *patch.Location
	}
	if patch.Start != nil {
		event.Start = &gcal.EventDateTime{DateTime: patch.Start.Format(time.RFC3339)}
	}
	if patch.End != nil {
		event.End = &gcal.EventDateTime{DateTime: patch.End.Format(time.RFC3339)}
	}

	updated, err := svc.Events.Patch(calendarID, id, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to update event %s: %w", id, err)
	}
	return g.toEntity(updated)
}

// DeleteEvent removes the event with the given id.
func (g *GoogleGateway) DeleteEvent(ctx context.Context, id string) error {
	ctx, cancel := g.bound(ctx)
	defer cancel()

	svc, err := g.service(ctx)
	if err != nil {
		return err
	}
	if err := svc.Events.Delete(calendarID, id).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete event %s: %w", id, err)
	}
	return nil
}

// service builds an authorized Calendar client, refreshing and
// re-persisting the stored token when needed.
func (g *GoogleGateway) service(ctx context.Context) (*gcal.Service, error) {
	stored, err := g.loadToken()
	if err != nil || stored == nil {
		return nil, domainerror.NewAssistantError(
			domainerror.ErrCodeNotConnected,
			"no stored calendar authorization",
			domainerror.ErrCalendarNotConnected,
		)
	}

	token, err := g.oauth.TokenSource(ctx, stored).Token()
	if err != nil {
		return nil, domainerror.NewAssistantError(
			domainerror.ErrCodeNotConnected,
			"stored calendar authorization is no longer valid",
			domainerror.ErrCalendarNotConnected,
		)
	}
	if token.AccessToken != stored.AccessToken {
		if err := g.saveToken(token); err != nil {
			return nil, err
		}
	}

	svc, err := gcal.NewService(ctx, option.WithTokenSource(oauth2.StaticTokenSource(token)))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar client: %w", err)
	}
	return svc, nil
}

// toEntity maps an API event, which carries either a dateTime or an
// all-day date, onto the domain event.
func (g *GoogleGateway) toEntity(item *gcal.Event) (*entity.Event, error) {
	start, allDay, err := g.parseEventTime(item.Start)
	if err != nil {
		return nil, err
	}
	end, _, err := g.parseEventTime(item.End)
	if err != nil {
		return nil, err
	}
	return &entity.Event{
		ID:       item.Id,
		Summary:  item.Summary,
		Start:    start,
		End:      end,
		Location: item.Location,
		AllDay:   allDay,
	}, nil
}

func (g *GoogleGateway) parseEventTime(edt *gcal.EventDateTime) (time.Time, bool, error) {
	if edt == nil {
		return time.Time{}, false, fmt.Errorf("event has no time")
	}
	if edt.DateTime != "" {
		t, err := time.Parse(time.RFC3339, edt.DateTime)
		return t, false, err
	}
	t, err := time.ParseInLocation("2006-01-02", edt.Date, g.loc)
	return t, true, err
}

func (g *GoogleGateway) loadToken() (*oauth2.Token, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	data, err := os.ReadFile(g.tokenFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("token file is corrupt: %w", err)
	}
	return &token, nil
}

func (g *GoogleGateway) saveToken(token *oauth2.Token) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	data, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(g.tokenFile, data, 0o600); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}
