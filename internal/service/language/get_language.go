package language

import (
	"context"
	"fmt"

	"github.com/langlearn/langlearn-backend/internal/domain"
)

// GetLanguage returns the language with the exact, case-sensitive title.
// Returns domain.ErrNotFound if no language matches.
func (s *Service) GetLanguage(ctx context.Context, title string) (*domain.Language, error) {
	s.guard.RLock()
	defer s.guard.RUnlock()

	lang, err := s.langs.GetByTitle(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("get language: %w", err)
	}
	return lang, nil
}

// ListLanguages returns every stored language. Order is unspecified.
func (s *Service) ListLanguages(ctx context.Context) ([]*domain.Language, error) {
	s.guard.RLock()
	defer s.guard.RUnlock()

	langs, err := s.langs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list languages: %w", err)
	}
	return langs, nil
}
