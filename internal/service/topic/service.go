// Package topic implements the topic operations: create, full and
// status-only update, delete, per-language and per-status listing, and
// free-text search. Every operation addressing a language accepts its
// title and resolves it to an id first; topics never store titles of
// languages, only the resolved id.
package topic

import (
	"context"
	"log/slog"
	"sync"

	"github.com/langlearn/langlearn-backend/internal/domain"
)

type topicRepo interface {
	Get(ctx context.Context, id string) (*domain.Topic, error)
	GetByTitle(ctx context.Context, languageID, title string) (*domain.Topic, error)
	List(ctx context.Context) ([]*domain.Topic, error)
	ListByLanguage(ctx context.Context, languageID string) ([]*domain.Topic, error)
	Put(ctx context.Context, t *domain.Topic) error
	Delete(ctx context.Context, id string) error
}

// languageResolver turns user-facing language titles into ids.
type languageResolver interface {
	GetByTitle(ctx context.Context, title string) (*domain.Language, error)
	List(ctx context.Context) ([]*domain.Language, error)
}

// Service provides topic management operations.
//
// The guard is shared with the language service: AddTopic reads the
// language collection and writes the topic collection, and must be atomic
// with respect to DeleteLanguage's cascade.
type Service struct {
	topics topicRepo
	langs  languageResolver
	guard  *sync.RWMutex
	strict bool
	newID  func() string
	log    *slog.Logger
}

// NewService creates a new Topic service. The guard must be the same mutex
// shared with the language and stats services. When strict is true,
// UpdateTopic re-checks per-language title uniqueness.
func NewService(
	log *slog.Logger,
	topics topicRepo,
	langs languageResolver,
	guard *sync.RWMutex,
	strict bool,
	newID func() string,
) *Service {
	return &Service{
		topics: topics,
		langs:  langs,
		guard:  guard,
		strict: strict,
		newID:  newID,
		log:    log.With("service", "topic"),
	}
}
