package topic

import (
	"errors"
	"testing"

	"github.com/langlearn/langlearn-backend/internal/domain"
)

func TestAddTopicInput_Validate(t *testing.T) {
	tests := []struct {
		name       string
		input      AddTopicInput
		wantFields int
	}{
		{name: "valid", input: AddTopicInput{Title: "Basics", Language: "Go"}},
		{name: "missing title", input: AddTopicInput{Language: "Go"}, wantFields: 1},
		{name: "missing language", input: AddTopicInput{Title: "Basics"}, wantFields: 1},
		{name: "missing both", input: AddTopicInput{}, wantFields: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantFields == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %T: %v", err, err)
			}
			if len(ve.Errors) != tt.wantFields {
				t.Errorf("field errors: got %d, want %d", len(ve.Errors), tt.wantFields)
			}
		})
	}
}

func TestUpdateTopicInput_Validate(t *testing.T) {
	if err := (UpdateTopicInput{ID: "t1", Title: "Basics"}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (UpdateTopicInput{Title: "Basics"}).Validate(); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for missing id, got %v", err)
	}
	if err := (UpdateTopicInput{ID: "t1"}).Validate(); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for missing title, got %v", err)
	}
}

func TestStatusAndDeleteInputs_Validate(t *testing.T) {
	if err := (UpdateTopicStatusInput{ID: "t1", Closed: true}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (UpdateTopicStatusInput{}).Validate(); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := (DeleteTopicInput{}).Validate(); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
