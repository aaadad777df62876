package calendar

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	domainerror "github.com/dolma/backend/internal/domain/error"
)

func newTestGateway(t *testing.T, timeout time.Duration) *GoogleGateway {
	t.Helper()
	return NewGoogleGateway(Config{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURL:  "http://localhost:8080/api/google/oauth2callback",
		TokenFile:    filepath.Join(t.TempDir(), "token.json"),
		Timeout:      timeout,
	}, time.UTC)
}

func TestGatewayCallTimeout(t *testing.T) {
	t.Run("configured timeout caps the call context", func(t *testing.T) {
		g := newTestGateway(t, 2*time.Second)

		ctx, cancel := g.bound(context.Background())
		defer cancel()

		deadline, ok := ctx.Deadline()
		if !ok {
			t.Fatal("expected a deadline on the call context")
		}
		if remaining := time.Until(deadline); remaining > 2*time.Second {
			t.Errorf("deadline %v away, want at most 2s", remaining)
		}
	})

	t.Run("non-positive timeout falls back to the default", func(t *testing.T) {
		g := newTestGateway(t, 0)

		ctx, cancel := g.bound(context.Background())
		defer cancel()

		deadline, ok := ctx.Deadline()
		if !ok {
			t.Fatal("expected a deadline on the call context")
		}
		if remaining := time.Until(deadline); remaining > defaultCallTimeout {
			t.Errorf("deadline %v away, want at most %v", remaining, defaultCallTimeout)
		}
	})

	t.Run("caller deadline shorter than the timeout is kept", func(t *testing.T) {
		g := newTestGateway(t, 10*time.Second)

		parent, parentCancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer parentCancel()

		ctx, cancel := g.bound(parent)
		defer cancel()

		deadline, ok := ctx.Deadline()
		if !ok {
			t.Fatal("expected a deadline on the call context")
		}
		if remaining := time.Until(deadline); remaining > 100*time.Millisecond {
			t.Errorf("deadline %v away, want at most 100ms", remaining)
		}
	})
}

func TestGatewayWithoutAuthorization(t *testing.T) {
	g := newTestGateway(t, time.Second)

	if g.IsConnected() {
		t.Error("expected IsConnected to be false without a stored token")
	}

	_, err := g.FindEvents(context.Background(), time.Now(), time.Now().Add(time.Hour), 10)
	if !errors.Is(err, domainerror.ErrCalendarNotConnected) {
		t.Errorf("FindEvents error = %v, want ErrCalendarNotConnected", err)
	}
}
