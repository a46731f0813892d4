// pkg/logging/logger_test.go
package logging

import (
	"context"
	"errors"
	"testing"
)

func TestCorrelationID_RoundTrip(t *testing.T) {
	ctx := context.Background()

	if got := GetCorrelationID(ctx); got != "" {
		t.Errorf("GetCorrelationID(empty ctx) = %q, expected empty", got)
	}

	ctx = WithCorrelationID(ctx, "abc-123")
	if got := GetCorrelationID(ctx); got != "abc-123" {
		t.Errorf("GetCorrelationID() = %q, expected abc-123", got)
	}
}

func TestWithCorrelationID_GeneratesWhenEmpty(t *testing.T) {
	ctx := WithCorrelationID(context.Background(), "")

	id := GetCorrelationID(ctx)
	if id == "" {
		t.Fatal("expected a generated correlation ID")
	}

	other := GetCorrelationID(WithCorrelationID(context.Background(), ""))
	if id == other {
		t.Errorf("two generated IDs collided: %q", id)
	}
}

func TestWrapError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		context  string
		args     []any
		expected string
		wantNil  bool
	}{
		{
			name:    "nil_error_passes_through",
			err:     nil,
			context: "ignored",
			wantNil: true,
		},
		{
			name:     "plain_context",
			err:      errors.New("boom"),
			context:  "loading config",
			expected: "loading config: boom",
		},
		{
			name:     "formatted_context",
			err:      errors.New("boom"),
			context:  "tick %d",
			args:     []any{42},
			expected: "tick 42: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapError(tt.err, tt.context, tt.args...)
			if tt.wantNil {
				if got != nil {
					t.Errorf("WrapError() = %v, expected nil", got)
				}
				return
			}
			if got == nil || got.Error() != tt.expected {
				t.Errorf("WrapError() = %v, expected %q", got, tt.expected)
			}
			if !errors.Is(got, tt.err) {
				t.Errorf("wrapped error lost its cause")
			}
		})
	}
}
