package validator

import (
	"strings"
	"testing"
)

type registration struct {
	Email string `validate:"required,email"`
	Name  string `validate:"required"`
	Qty   int    `validate:"required,gt=0"`
}

func TestValidateStruct_ReportsAllFailingFields(t *testing.T) {
	verr := ValidateStruct(&registration{})
	if verr == nil {
		t.Fatal("expected a validation error, got nil")
	}
	if len(verr.Fields) != 3 {
		t.Fatalf("expected 3 failing fields, got %d: %v", len(verr.Fields), verr.Messages())
	}

	want := map[string]bool{"Email": false, "Name": false, "Qty": false}
	for _, f := range verr.Fields {
		want[f.Field] = true
	}
	for field, seen := range want {
		if !seen {
			t.Errorf("field %s missing from validation result", field)
		}
	}
}

func TestValidateStruct_Valid(t *testing.T) {
	verr := ValidateStruct(&registration{Email: "a@b.com", Name: "x", Qty: 1})
	if verr != nil {
		t.Fatalf("expected nil, got %v", verr.Messages())
	}
}

func TestValidateStruct_NestedFieldPath(t *testing.T) {
	type line struct {
		Qty int `validate:"required,gt=0"`
	}
	type order struct {
		Lines []line `validate:"dive"`
	}

	verr := ValidateStruct(&order{Lines: []line{{Qty: 1}, {Qty: 0}}})
	if verr == nil {
		t.Fatal("expected a validation error, got nil")
	}
	if len(verr.Fields) != 1 {
		t.Fatalf("expected 1 failing field, got %d", len(verr.Fields))
	}
	if got := verr.Fields[0].Field; got != "Lines[1].Qty" {
		t.Errorf("field path = %q, want %q", got, "Lines[1].Qty")
	}
}

func TestValidateStruct_Messages(t *testing.T) {
	verr := ValidateStruct(&registration{Email: "not-an-email", Name: "x", Qty: 1})
	if verr == nil {
		t.Fatal("expected a validation error, got nil")
	}
	msgs := verr.Messages()
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %v", msgs)
	}
	if !strings.Contains(msgs[0], "Email is") {
		t.Errorf("message %q does not follow 'field is reason' format", msgs[0])
	}
}
