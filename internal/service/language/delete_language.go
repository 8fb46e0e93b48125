package language

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/langlearn/langlearn-backend/internal/domain"
)

// DeleteLanguage removes a language by id and cascades deletion to every
// topic referencing it. Returns the removed record, or domain.ErrNotFound
// if the id is absent, in which case the cascade never runs.
//
// The cascade is a best-effort cleanup after the primary delete commits:
// it has no failure mode of its own, and a storage error during the sweep
// is logged rather than surfaced.
func (s *Service) DeleteLanguage(ctx context.Context, input DeleteLanguageInput) (*domain.Language, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	s.guard.Lock()
	defer s.guard.Unlock()

	lang, err := s.langs.Get(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("delete language: %w", err)
	}

	if err := s.langs.Delete(ctx, lang.ID); err != nil {
		return nil, fmt.Errorf("delete language: %w", err)
	}

	removed, err := s.topics.DeleteByLanguage(ctx, lang.ID)
	if err != nil {
		s.log.ErrorContext(ctx, "cascade delete failed",
			slog.String("language_id", lang.ID),
			slog.String("error", err.Error()),
		)
	}

	s.log.InfoContext(ctx, "language deleted",
		slog.String("language_id", lang.ID),
		slog.String("title", lang.Title),
		slog.Int("topics_removed", removed),
	)

	return lang, nil
}
