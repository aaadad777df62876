package assistant

import (
	"encoding/json"
	"errors"
	"testing"

	domainerror "github.com/dolma/backend/internal/domain/error"
)

func TestNumberUnmarshal(t *testing.T) {
	type payload struct {
		Value *Number `json:"value"`
	}

	t.Run("accepts plain numbers", func(t *testing.T) {
		var p payload
		if err := json.Unmarshal([]byte(`{"value": 12.5}`), &p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Value == nil || float64(*p.Value) != 12.5 {
			t.Errorf("expected 12.5, got %v", p.Value)
		}
	})

	t.Run("accepts quoted numbers", func(t *testing.T) {
		var p payload
		if err := json.Unmarshal([]byte(`{"value": " 42 "}`), &p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Value == nil || float64(*p.Value) != 42 {
			t.Errorf("expected 42, got %v", p.Value)
		}
	})

	t.Run("rejects non-numeric strings", func(t *testing.T) {
		var p payload
		err := json.Unmarshal([]byte(`{"value": "a dozen"}`), &p)
		if !errors.Is(err, domainerror.ErrInvalidNumericValue) {
			t.Errorf("expected invalid numeric value error, got %v", err)
		}
	})

	t.Run("leaves the pointer nil for null", func(t *testing.T) {
		var p payload
		if err := json.Unmarshal([]byte(`{"value": null}`), &p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Value.Float() != nil {
			t.Errorf("expected nil, got %v", p.Value)
		}
	})
}

func TestDecodeArgs(t *testing.T) {
	t.Run("treats empty input as an empty object", func(t *testing.T) {
		var args listGoalsArgs
		if err := decodeArgs(nil, &args); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if args.Status != "" {
			t.Errorf("expected zero value, got %q", args.Status)
		}
	})

	t.Run("reports malformed payloads", func(t *testing.T) {
		var args listGoalsArgs
		err := decodeArgs([]byte(`{"status":`), &args)
		if !errors.Is(err, domainerror.ErrMalformedArguments) {
			t.Errorf("expected malformed arguments error, got %v", err)
		}
	})

	t.Run("keeps the numeric sentinel in the chain", func(t *testing.T) {
		var args createGoalArgs
		err := decodeArgs([]byte(`{"title": "Save money", "target_value": "a lot"}`), &args)
		if !errors.Is(err, domainerror.ErrMalformedArguments) {
			t.Errorf("expected malformed arguments error, got %v", err)
		}
		if !errors.Is(err, domainerror.ErrInvalidNumericValue) {
			t.Errorf("expected invalid numeric value in the chain, got %v", err)
		}
	})
}
