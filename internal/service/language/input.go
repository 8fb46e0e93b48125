package language

import (
	"strings"

	"github.com/langlearn/langlearn-backend/internal/domain"
)

const maxTitleLen = 100

// AddLanguageInput holds the parameters for creating a language.
type AddLanguageInput struct {
	Title string
}

// Validate checks all fields and collects all errors.
func (i AddLanguageInput) Validate() error {
	if errs := titleErrors("title", i.Title); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RenameLanguageInput holds the parameters for renaming a language.
// The language is addressed by its current title, not its id.
type RenameLanguageInput struct {
	OldTitle string
	NewTitle string
}

// Validate checks all fields and collects all errors.
func (i RenameLanguageInput) Validate() error {
	var errs []domain.FieldError
	errs = append(errs, titleErrors("old_title", i.OldTitle)...)
	errs = append(errs, titleErrors("new_title", i.NewTitle)...)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteLanguageInput holds the parameters for deleting a language.
type DeleteLanguageInput struct {
	ID string
}

// Validate checks all fields and collects all errors.
func (i DeleteLanguageInput) Validate() error {
	if strings.TrimSpace(i.ID) == "" {
		return domain.NewValidationError("id", "required")
	}
	return nil
}

func titleErrors(field, title string) []domain.FieldError {
	var errs []domain.FieldError
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		errs = append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if len(trimmed) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: field, Message: "max 100 characters"})
	}
	return errs
}
