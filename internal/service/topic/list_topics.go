package topic

import (
	"context"
	"fmt"

	"github.com/langlearn/langlearn-backend/internal/domain"
)

// ListByLanguage returns all topics of the language addressed by title,
// in unspecified order. Returns domain.ErrNotFound if the title does not
// resolve to an existing language.
func (s *Service) ListByLanguage(ctx context.Context, languageTitle string) ([]*domain.Topic, error) {
	s.guard.RLock()
	defer s.guard.RUnlock()

	lang, err := s.langs.GetByTitle(ctx, languageTitle)
	if err != nil {
		return nil, fmt.Errorf("resolve language: %w", err)
	}

	topics, err := s.topics.ListByLanguage(ctx, lang.ID)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	return topics, nil
}

// ListByStatus returns all topics across all languages whose closed flag
// equals the argument. Languages are iterated first and their topics
// collected, so a topic whose language no longer exists is never reported
// even if the referential invariant was somehow violated.
func (s *Service) ListByStatus(ctx context.Context, closed bool) ([]*domain.Topic, error) {
	s.guard.RLock()
	defer s.guard.RUnlock()

	langs, err := s.langs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list languages: %w", err)
	}

	result := make([]*domain.Topic, 0)
	for _, lang := range langs {
		topics, err := s.topics.ListByLanguage(ctx, lang.ID)
		if err != nil {
			return nil, fmt.Errorf("list topics of %q: %w", lang.Title, err)
		}
		for _, t := range topics {
			if t.Closed == closed {
				result = append(result, t)
			}
		}
	}
	return result, nil
}
