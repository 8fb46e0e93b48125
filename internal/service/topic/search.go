package topic

import (
	"context"
	"fmt"
	"strings"

	"github.com/langlearn/langlearn-backend/internal/domain"
)

// Search returns every topic whose title contains the query as a
// case-insensitive substring. An empty query matches every topic.
func (s *Service) Search(ctx context.Context, query string) ([]*domain.Topic, error) {
	s.guard.RLock()
	defer s.guard.RUnlock()

	all, err := s.topics.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("search topics: %w", err)
	}

	needle := strings.ToLower(query)
	matches := make([]*domain.Topic, 0, len(all))
	for _, t := range all {
		if strings.Contains(strings.ToLower(t.Title), needle) {
			matches = append(matches, t)
		}
	}
	return matches, nil
}
