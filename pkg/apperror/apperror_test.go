package apperror

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"gorm.io/gorm"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", NewValidation([]FieldError{{Field: "Name", Message: "required"}}), 400},
		{"conflict", NewConflict("brand", "slug", "acme"), 409},
		{"not found", NewNotFound("brand"), 404},
		{"gorm not found", gorm.ErrRecordNotFound, 404},
		{"wrapped not found", fmt.Errorf("lookup: %w", NewNotFound("sale")), 404},
		{"workflow", NewWorkflow("decrement stock", "insufficient stock"), 500},
		{"unexpected", errors.New("boom"), 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusCode(tt.err); got != tt.want {
				t.Errorf("StatusCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPublic(t *testing.T) {
	if Public(errors.New("internal detail")) {
		t.Error("unexpected errors must not be public")
	}
	if !Public(NewConflict("user", "email", "a@b.com")) {
		t.Error("conflict errors are public")
	}
	if !Public(NewWorkflow("step", "failed")) {
		t.Error("workflow errors are public")
	}
}

func TestConflictError_NamesFieldAndValue(t *testing.T) {
	err := NewConflict("supplier", "phone", "0712345678")
	msg := err.Error()
	for _, part := range []string{"supplier", "phone", "0712345678"} {
		if !strings.Contains(msg, part) {
			t.Errorf("conflict message %q missing %q", msg, part)
		}
	}
}

func TestValidationError_Messages(t *testing.T) {
	err := NewValidation([]FieldError{
		{Field: "Email", Message: "required"},
		{Field: "Phone", Message: "required"},
	})
	msgs := err.Messages()
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0] != "Email is required" {
		t.Errorf("msgs[0] = %q", msgs[0])
	}
}
