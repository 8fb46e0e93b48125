package topic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/langlearn/langlearn-backend/internal/domain"
)

// UpdateTopic overwrites a topic's title and status with the full payload;
// the owning language is unchanged. Returns domain.ErrNotFound if the id
// is absent.
//
// By default the per-language title uniqueness invariant is NOT re-checked
// on update, matching the historical behavior of the catalog. In strict
// mode a collision with a sibling topic returns domain.ErrAlreadyExists.
func (s *Service) UpdateTopic(ctx context.Context, input UpdateTopicInput) (*domain.Topic, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	title := strings.TrimSpace(input.Title)

	s.guard.Lock()
	defer s.guard.Unlock()

	t, err := s.topics.Get(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("update topic: %w", err)
	}

	if s.strict && title != t.Title {
		sibling, err := s.topics.GetByTitle(ctx, t.LanguageID, title)
		if err == nil && sibling.ID != t.ID {
			return nil, fmt.Errorf("update topic to %q: %w", title, domain.ErrAlreadyExists)
		}
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("check title: %w", err)
		}
	}

	t.Title = title
	t.Closed = input.Closed
	if err := s.topics.Put(ctx, t); err != nil {
		return nil, fmt.Errorf("update topic: %w", err)
	}

	s.log.InfoContext(ctx, "topic updated",
		slog.String("topic_id", t.ID),
		slog.String("title", t.Title),
		slog.Bool("closed", t.Closed),
	)

	return t, nil
}

// UpdateTopicStatus overwrites only the closed flag of a topic.
// Returns domain.ErrNotFound if the id is absent.
func (s *Service) UpdateTopicStatus(ctx context.Context, input UpdateTopicStatusInput) (*domain.Topic, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	s.guard.Lock()
	defer s.guard.Unlock()

	t, err := s.topics.Get(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("update topic status: %w", err)
	}

	t.Closed = input.Closed
	if err := s.topics.Put(ctx, t); err != nil {
		return nil, fmt.Errorf("update topic status: %w", err)
	}

	s.log.InfoContext(ctx, "topic status updated",
		slog.String("topic_id", t.ID),
		slog.Bool("closed", t.Closed),
	)

	return t, nil
}
