// Package stats implements the per-language aggregation over the catalog.
package stats

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/langlearn/langlearn-backend/internal/domain"
)

type languageLister interface {
	List(ctx context.Context) ([]*domain.Language, error)
}

type topicCounter interface {
	CountByLanguage(ctx context.Context, languageID string) (int, error)
}

// Service computes catalog statistics. It shares the store guard with the
// language and topic services so aggregates never observe a half-applied
// cascade.
type Service struct {
	langs  languageLister
	topics topicCounter
	guard  *sync.RWMutex
	log    *slog.Logger
}

// NewService creates a new Stats service.
func NewService(log *slog.Logger, langs languageLister, topics topicCounter, guard *sync.RWMutex) *Service {
	return &Service{
		langs:  langs,
		topics: topics,
		guard:  guard,
		log:    log.With("service", "stats"),
	}
}

// LanguageStatistics returns one {title, count} entry per language, in
// unspecified order. Count is the number of topics referencing the
// language and may be zero.
func (s *Service) LanguageStatistics(ctx context.Context) ([]domain.LanguageStats, error) {
	s.guard.RLock()
	defer s.guard.RUnlock()

	langs, err := s.langs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list languages: %w", err)
	}

	stats := make([]domain.LanguageStats, 0, len(langs))
	for _, lang := range langs {
		count, err := s.topics.CountByLanguage(ctx, lang.ID)
		if err != nil {
			return nil, fmt.Errorf("count topics of %q: %w", lang.Title, err)
		}
		stats = append(stats, domain.LanguageStats{Title: lang.Title, Count: count})
	}
	return stats, nil
}
