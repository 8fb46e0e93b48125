package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/langlearn/langlearn-backend/internal/domain"
)

// DeleteTopic removes a topic by id and returns the removed record.
// Returns domain.ErrNotFound if the id is absent.
func (s *Service) DeleteTopic(ctx context.Context, input DeleteTopicInput) (*domain.Topic, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	s.guard.Lock()
	defer s.guard.Unlock()

	t, err := s.topics.Get(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("delete topic: %w", err)
	}

	if err := s.topics.Delete(ctx, t.ID); err != nil {
		return nil, fmt.Errorf("delete topic: %w", err)
	}

	s.log.InfoContext(ctx, "topic deleted",
		slog.String("topic_id", t.ID),
		slog.String("title", t.Title),
	)

	return t, nil
}
