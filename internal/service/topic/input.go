package topic

import (
	"strings"

	"github.com/langlearn/langlearn-backend/internal/domain"
)

const maxTitleLen = 200

// AddTopicInput holds the parameters for creating a topic. Language is the
// title of the owning language, resolved to an id before the insert.
type AddTopicInput struct {
	Title    string
	Closed   bool
	Language string
}

// Validate checks all fields and collects all errors.
func (i AddTopicInput) Validate() error {
	var errs []domain.FieldError
	errs = append(errs, titleErrors("title", i.Title)...)
	if strings.TrimSpace(i.Language) == "" {
		errs = append(errs, domain.FieldError{Field: "language", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateTopicInput holds the full payload for overwriting a topic's title
// and status. The owning language never changes on update.
type UpdateTopicInput struct {
	ID     string
	Title  string
	Closed bool
}

// Validate checks all fields and collects all errors.
func (i UpdateTopicInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.ID) == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	errs = append(errs, titleErrors("title", i.Title)...)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateTopicStatusInput holds the parameters for a status-only update.
type UpdateTopicStatusInput struct {
	ID     string
	Closed bool
}

// Validate checks all fields and collects all errors.
func (i UpdateTopicStatusInput) Validate() error {
	if strings.TrimSpace(i.ID) == "" {
		return domain.NewValidationError("id", "required")
	}
	return nil
}

// DeleteTopicInput holds the parameters for deleting a topic.
type DeleteTopicInput struct {
	ID string
}

// Validate checks all fields and collects all errors.
func (i DeleteTopicInput) Validate() error {
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
		errs = append(errs, domain.FieldError{Field: field, Message: "max 200 characters"})
	}
	return errs
}
