// Package language implements the Language repository on top of a
// pebbledb.Map keyed by language id. Titles are resolved by full scan;
// the collection is small and bounded by design.
package language

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/langlearn/langlearn-backend/internal/adapter/pebbledb"
	"github.com/langlearn/langlearn-backend/internal/domain"
)

// Repo provides language persistence backed by a pebbledb map.
type Repo struct {
	langs *pebbledb.Map
}

// New creates a new language repository.
func New(langs *pebbledb.Map) *Repo {
	return &Repo{langs: langs}
}

// Get returns a language by id.
// Returns domain.ErrNotFound if the id is absent.
func (r *Repo) Get(ctx context.Context, id string) (*domain.Language, error) {
	raw, ok, err := r.langs.Get(id)
	if err != nil {
		return nil, fmt.Errorf("get language: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("language %s: %w", id, domain.ErrNotFound)
	}
	return decode(raw)
}

// GetByTitle returns the language with the exact, case-sensitive title.
// Returns domain.ErrNotFound if no language matches. The title uniqueness
// invariant guarantees at most one match.
func (r *Repo) GetByTitle(ctx context.Context, title string) (*domain.Language, error) {
	values, err := r.langs.Values()
	if err != nil {
		return nil, fmt.Errorf("scan languages: %w", err)
	}
	for _, raw := range values {
		lang, err := decode(raw)
		if err != nil {
			return nil, err
		}
		if lang.Title == title {
			return lang, nil
		}
	}
	return nil, fmt.Errorf("language %q: %w", title, domain.ErrNotFound)
}

// List returns every stored language in key order.
// Returns an empty slice (not nil) when the catalog is empty.
func (r *Repo) List(ctx context.Context) ([]*domain.Language, error) {
	values, err := r.langs.Values()
	if err != nil {
		return nil, fmt.Errorf("scan languages: %w", err)
	}
	langs := make([]*domain.Language, 0, len(values))
	for _, raw := range values {
		lang, err := decode(raw)
		if err != nil {
			return nil, err
		}
		langs = append(langs, lang)
	}
	return langs, nil
}

// Put inserts or overwrites a language record keyed by its id.
func (r *Repo) Put(ctx context.Context, lang *domain.Language) error {
	raw, err := json.Marshal(lang)
	if err != nil {
		return fmt.Errorf("encode language: %w", err)
	}
	if err := r.langs.Insert(lang.ID, raw); err != nil {
		return fmt.Errorf("put language: %w", err)
	}
	return nil
}

// Delete removes a language by id.
// Returns domain.ErrNotFound if the id is absent.
func (r *Repo) Delete(ctx context.Context, id string) error {
	_, ok, err := r.langs.Get(id)
	if err != nil {
		return fmt.Errorf("get language: %w", err)
	}
	if !ok {
		return fmt.Errorf("language %s: %w", id, domain.ErrNotFound)
	}
	if err := r.langs.Remove(id); err != nil {
		return fmt.Errorf("delete language: %w", err)
	}
	return nil
}

func decode(raw []byte) (*domain.Language, error) {
	var lang domain.Language
	if err := json.Unmarshal(raw, &lang); err != nil {
		return nil, fmt.Errorf("decode language: %w", err)
	}
	return &lang, nil
}
