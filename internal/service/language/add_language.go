package language

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/langlearn/langlearn-backend/internal/domain"
)

// AddLanguage creates a new language with a fresh id.
// Returns domain.ErrAlreadyExists if a language with the exact same title
// is already present.
func (s *Service) AddLanguage(ctx context.Context, input AddLanguageInput) (*domain.Language, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	title := strings.TrimSpace(input.Title)

	s.guard.Lock()
	defer s.guard.Unlock()

	_, err := s.langs.GetByTitle(ctx, title)
	if err == nil {
		return nil, fmt.Errorf("add language %q: %w", title, domain.ErrAlreadyExists)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check title: %w", err)
	}

	lang := &domain.Language{
		ID:    s.newID(),
		Title: title,
	}
	if err := s.langs.Put(ctx, lang); err != nil {
		return nil, fmt.Errorf("add language: %w", err)
	}

	s.log.InfoContext(ctx, "language added",
		slog.String("language_id", lang.ID),
		slog.String("title", lang.Title),
	)

	return lang, nil
}
