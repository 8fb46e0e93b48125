package language

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/langlearn/langlearn-backend/internal/domain"
)

// RenameLanguage replaces the title of an existing language in place; the
// id is unchanged. Returns domain.ErrNotFound if oldTitle does not resolve.
//
// By default the new title is NOT checked against other languages, matching
// the historical behavior of the catalog. In strict mode the uniqueness
// invariant is enforced and a collision returns domain.ErrAlreadyExists.
func (s *Service) RenameLanguage(ctx context.Context, input RenameLanguageInput) (*domain.Language, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	oldTitle := strings.TrimSpace(input.OldTitle)
	newTitle := strings.TrimSpace(input.NewTitle)

	s.guard.Lock()
	defer s.guard.Unlock()

	lang, err := s.langs.GetByTitle(ctx, oldTitle)
	if err != nil {
		return nil, fmt.Errorf("rename language: %w", err)
	}

	if s.strict && newTitle != oldTitle {
		_, err := s.langs.GetByTitle(ctx, newTitle)
		if err == nil {
			return nil, fmt.Errorf("rename language to %q: %w", newTitle, domain.ErrAlreadyExists)
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("check new title: %w", err)
		}
	}

	lang.Title = newTitle
	if err := s.langs.Put(ctx, lang); err != nil {
		return nil, fmt.Errorf("rename language: %w", err)
	}

	s.log.InfoContext(ctx, "language renamed",
		slog.String("language_id", lang.ID),
		slog.String("old_title", oldTitle),
		slog.String("new_title", newTitle),
	)

	return lang, nil
}
