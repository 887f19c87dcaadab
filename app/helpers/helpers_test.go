package helpers

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
)

type phoneHolder struct {
	Phone string `validate:"omitempty,phone"`
}

func TestPhoneValidation(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		phone   string
		wantErr bool
	}{
		{"", false},
		{"+386 40 123 456", false},
		{"(01) 234-5678", false},
		{"040123456", false},
		{"not a number", true},
		{"123#456", true},
	}

	for _, tt := range tests {
		err := v.Struct(phoneHolder{Phone: tt.phone})
		if (err != nil) != tt.wantErr {
			t.Errorf("phone %q error = %v, wantErr %v", tt.phone, err, tt.wantErr)
		}
	}
}

func TestValidationSummaryDeterministic(t *testing.T) {
	v := NewValidator()

	type form struct {
		Username string `validate:"required,min=3"`
		Email    string `validate:"required,email"`
		Website  string `validate:"omitempty,url"`
	}

	err := v.Struct(form{Email: "nope", Website: "also nope"})
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation errors, got %v", err)
	}

	summary := ValidationSummary(verrs)
	if !strings.Contains(summary, "Username is required.") {
		t.Errorf("summary %q misses the username message", summary)
	}
	if !strings.Contains(summary, "valid email address") {
		t.Errorf("summary %q misses the email message", summary)
	}
	if !strings.Contains(summary, "valid URL") {
		t.Errorf("summary %q misses the website message", summary)
	}

	// Map iteration must not leak into the output ordering.
	for range 20 {
		if again := ValidationSummary(verrs); again != summary {
			t.Fatalf("summary order unstable: %q vs %q", summary, again)
		}
	}
}
