// Package language implements the language catalog operations: create,
// rename, lookup by title, list, and delete with cascading topic removal.
package language

import (
	"context"
	"log/slog"
	"sync"

	"github.com/langlearn/langlearn-backend/internal/domain"
)

type languageRepo interface {
	Get(ctx context.Context, id string) (*domain.Language, error)
	GetByTitle(ctx context.Context, title string) (*domain.Language, error)
	List(ctx context.Context) ([]*domain.Language, error)
	Put(ctx context.Context, lang *domain.Language) error
	Delete(ctx context.Context, id string) error
}

// topicCascader removes every topic owned by a language. Invoked only
// after the language delete itself has committed.
type topicCascader interface {
	DeleteByLanguage(ctx context.Context, languageID string) (int, error)
}

// Service provides language management operations.
//
// All operations take the shared store guard for their full span: AddTopic
// and DeleteLanguage each read one collection and write the other, so both
// stores sit behind one mutual-exclusion boundary.
type Service struct {
	langs  languageRepo
	topics topicCascader
	guard  *sync.RWMutex
	strict bool
	newID  func() string
	log    *slog.Logger
}

// NewService creates a new Language service. The guard must be the same
// mutex shared with the topic and stats services. When strict is true,
// RenameLanguage re-checks title uniqueness against other languages.
func NewService(
	log *slog.Logger,
	langs languageRepo,
	topics topicCascader,
	guard *sync.RWMutex,
	strict bool,
	newID func() string,
) *Service {
	return &Service{
		langs:  langs,
		topics: topics,
		guard:  guard,
		strict: strict,
		newID:  newID,
		log:    log.With("service", "language"),
	}
}
