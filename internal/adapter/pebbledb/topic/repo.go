// Package topic implements the Topic repository on top of a pebbledb.Map
// keyed by topic id. Per-language queries and the title collision check
// are full scans filtered by language id.
package topic

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/langlearn/langlearn-backend/internal/adapter/pebbledb"
	"github.com/langlearn/langlearn-backend/internal/domain"
)

// Repo provides topic persistence backed by a pebbledb map.
type Repo struct {
	topics *pebbledb.Map
}

// New creates a new topic repository.
func New(topics *pebbledb.Map) *Repo {
	return &Repo{topics: topics}
}

// Get returns a topic by id.
// Returns domain.ErrNotFound if the id is absent.
func (r *Repo) Get(ctx context.Context, id string) (*domain.Topic, error) {
	raw, ok, err := r.topics.Get(id)
	if err != nil {
		return nil, fmt.Errorf("get topic: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("topic %s: %w", id, domain.ErrNotFound)
	}
	return decode(raw)
}

// GetByTitle returns the topic with the exact title within one language.
// Returns domain.ErrNotFound if no topic matches.
func (r *Repo) GetByTitle(ctx context.Context, languageID, title string) (*domain.Topic, error) {
	topics, err := r.scan(func(t *domain.Topic) bool {
		return t.LanguageID == languageID && t.Title == title
	})
	if err != nil {
		return nil, err
	}
	if len(topics) == 0 {
		return nil, fmt.Errorf("topic %q: %w", title, domain.ErrNotFound)
	}
	return topics[0], nil
}

// List returns every stored topic in key order.
func (r *Repo) List(ctx context.Context) ([]*domain.Topic, error) {
	return r.scan(func(*domain.Topic) bool { return true })
}

// ListByLanguage returns all topics belonging to the given language id.
// Returns an empty slice (not nil) when the language has no topics.
func (r *Repo) ListByLanguage(ctx context.Context, languageID string) ([]*domain.Topic, error) {
	return r.scan(func(t *domain.Topic) bool {
		return t.LanguageID == languageID
	})
}

// CountByLanguage returns the number of topics belonging to the language id.
func (r *Repo) CountByLanguage(ctx context.Context, languageID string) (int, error) {
	topics, err := r.ListByLanguage(ctx, languageID)
	if err != nil {
		return 0, err
	}
	return len(topics), nil
}

// Put inserts or overwrites a topic record keyed by its id.
func (r *Repo) Put(ctx context.Context, t *domain.Topic) error {
	raw, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("encode topic: %w", err)
	}
	if err := r.topics.Insert(t.ID, raw); err != nil {
		return fmt.Errorf("put topic: %w", err)
	}
	return nil
}

// Delete removes a topic by id.
// Returns domain.ErrNotFound if the id is absent.
func (r *Repo) Delete(ctx context.Context, id string) error {
	_, ok, err := r.topics.Get(id)
	if err != nil {
		return fmt.Errorf("get topic: %w", err)
	}
	if !ok {
		return fmt.Errorf("topic %s: %w", id, domain.ErrNotFound)
	}
	if err := r.topics.Remove(id); err != nil {
		return fmt.Errorf("delete topic: %w", err)
	}
	return nil
}

// DeleteByLanguage removes every topic belonging to the language id and
// returns how many were removed. Matching nothing is a no-op, not an error.
func (r *Repo) DeleteByLanguage(ctx context.Context, languageID string) (int, error) {
	topics, err := r.ListByLanguage(ctx, languageID)
	if err != nil {
		return 0, err
	}
	for _, t := range topics {
		if err := r.topics.Remove(t.ID); err != nil {
			return 0, fmt.Errorf("cascade delete topic %s: %w", t.ID, err)
		}
	}
	return len(topics), nil
}

func (r *Repo) scan(keep func(*domain.Topic) bool) ([]*domain.Topic, error) {
	values, err := r.topics.Values()
	if err != nil {
		return nil, fmt.Errorf("scan topics: %w", err)
	}
	topics := make([]*domain.Topic, 0, len(values))
	for _, raw := range values {
		t, err := decode(raw)
		if err != nil {
			return nil, err
		}
		if keep(t) {
			topics = append(topics, t)
		}
	}
	return topics, nil
}

func decode(raw []byte) (*domain.Topic, error) {
	var t domain.Topic
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("decode topic: %w", err)
	}
	return &t, nil
}
