package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_ErrorsIs(t *testing.T) {
	t.Parallel()

	verr := &ValidationError{Fields: map[string]string{"title": MsgRequired}}

	if !errors.Is(verr, ErrValidation) {
		t.Error("errors.Is(ValidationError, ErrValidation) = false, want true")
	}

	wrapped := fmt.Errorf("operation failed: %w", verr)
	if !errors.Is(wrapped, ErrValidation) {
		t.Error("errors.Is(wrapped ValidationError, ErrValidation) = false, want true")
	}
}

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	verr := &ValidationError{Fields: map[string]string{"title": MsgRequired, "name": MsgInvalid}}
	want := "validation error: name: is invalid; title: is required"

	if got := verr.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestValidationError_Field(t *testing.T) {
	t.Parallel()

	if got := NewValidationError("email", MsgInvalid).Field(); got != "email" {
		t.Errorf("Field() = %q, want %q", got, "email")
	}
	multi := &ValidationError{Fields: map[string]string{"a": "x", "b": "y"}}
	if got := multi.Field(); got != "" {
		t.Errorf("Field() = %q, want empty for multiple fields", got)
	}
}

func TestCodeOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"nil", nil, ""},
		{"validation error type", NewValidationError("x", MsgRequired), CodeValidation},
		{"unauthorized", ErrUnauthorized, CodeUnauthorized},
		{"wrapped forbidden", fmt.Errorf("task 1: %w", ErrForbidden), CodeForbidden},
		{"not found", fmt.Errorf("loading: %w", ErrNotFound), CodeNotFound},
		{"conflict", ErrConflict, CodeConflict},
		{"rate limited", ErrRateLimited, CodeRateLimited},
		{"unavailable is internal", ErrUnavailable, CodeInternal},
		{"unknown is internal", errors.New("disk on fire"), CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}

func TestPriority_IsValid(t *testing.T) {
	t.Parallel()

	for _, p := range Priorities {
		if !p.IsValid() {
			t.Errorf("Priority(%q).IsValid() = false, want true", p)
		}
	}
	if Priority("urgent").IsValid() {
		t.Error(`Priority("urgent").IsValid() = true, want false`)
	}
}

func TestRole_IsValid(t *testing.T) {
	t.Parallel()

	for _, r := range []Role{RoleAdmin, RoleUser, RoleViewer} {
		if !r.IsValid() {
			t.Errorf("Role(%q).IsValid() = false, want true", r)
		}
	}
	if Role("root").IsValid() {
		t.Error(`Role("root").IsValid() = true, want false`)
	}
}

func TestNewEvent(t *testing.T) {
	t.Parallel()

	ev := NewEvent(EventTaskCreated, 1, EntityTask, 2, nil)
	if ev.Details == nil {
		t.Error("Details = nil, want empty map")
	}
	if ev.OccurredAt.IsZero() {
		t.Error("OccurredAt is zero")
	}
}
