package topic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/langlearn/langlearn-backend/internal/domain"
)

// AddTopic creates a new topic under the language addressed by title.
// Returns domain.ErrNotFound if the language title does not resolve, and
// domain.ErrAlreadyExists if the resolved language already has a topic
// with the same title. The caller-supplied closed value is honored.
func (s *Service) AddTopic(ctx context.Context, input AddTopicInput) (*domain.Topic, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	title := strings.TrimSpace(input.Title)

	s.guard.Lock()
	defer s.guard.Unlock()

	lang, err := s.langs.GetByTitle(ctx, strings.TrimSpace(input.Language))
	if err != nil {
		return nil, fmt.Errorf("resolve language: %w", err)
	}

	_, err = s.topics.GetByTitle(ctx, lang.ID, title)
	if err == nil {
		return nil, fmt.Errorf("add topic %q to language %q: %w", title, lang.Title, domain.ErrAlreadyExists)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check title: %w", err)
	}

	t := &domain.Topic{
		ID:         s.newID(),
		LanguageID: lang.ID,
		Title:      title,
		Closed:     input.Closed,
	}
	if err := s.topics.Put(ctx, t); err != nil {
		return nil, fmt.Errorf("add topic: %w", err)
	}

	s.log.InfoContext(ctx, "topic added",
		slog.String("topic_id", t.ID),
		slog.String("language_id", t.LanguageID),
		slog.String("title", t.Title),
		slog.Bool("closed", t.Closed),
	)

	return t, nil
}
