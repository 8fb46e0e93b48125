// Package pebbledb implements the persistent ordered key-value maps the
// catalog repositories are built on, backed by a single pebble database.
// Each entity type gets its own Map, a prefix-isolated keyspace with
// Get / Insert / Remove / Values operations.
package pebbledb

import (
	"context"
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
)

// writeOptions syncs every write to the WAL. The catalog is small and
// mutation-light, so durability wins over write throughput here.
var writeOptions = &pebble.WriteOptions{Sync: true}

// DB wraps a pebble database shared by all entity maps.
type DB struct {
	pdb *pebble.DB
}

// Open opens (or creates) a pebble database at path.
func Open(path string) (*DB, error) {
	pdb, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("pebble open %s: %w", path, err)
	}
	return &DB{pdb: pdb}, nil
}

// OpenMemory opens an in-memory pebble database. Used by tests and the
// storage.in_memory configuration mode; nothing survives a restart.
func OpenMemory() (*DB, error) {
	pdb, err := pebble.Open("", &pebble.Options{FS: vfs.NewMem()})
	if err != nil {
		return nil, fmt.Errorf("pebble open in-memory: %w", err)
	}
	return &DB{pdb: pdb}, nil
}

// Close flushes and closes the underlying database.
func (d *DB) Close() error {
	return d.pdb.Close()
}

// Ping verifies the database is readable. A missing sentinel key is healthy.
func (d *DB) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	value, closer, err := d.pdb.Get([]byte("\x00ping"))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("pebble ping: %w", err)
	}
	_ = value
	return closer.Close()
}

// Metrics exposes the engine metrics snapshot for the Prometheus collector.
func (d *DB) Metrics() *pebble.Metrics {
	return d.pdb.Metrics()
}

// Map returns the prefix-isolated keyspace for one entity type.
// Maps with distinct prefixes are fully independent.
func (d *DB) Map(prefix string) *Map {
	return &Map{pdb: d.pdb, prefix: []byte(prefix)}
}

// Map is a persistent string-keyed map over one key prefix.
type Map struct {
	pdb    *pebble.DB
	prefix []byte
}

// Get returns the stored value for key, with ok reporting presence.
func (m *Map) Get(key string) (value []byte, ok bool, err error) {
	raw, closer, err := m.pdb.Get(m.key(key))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get %q: %w", key, err)
	}
	value = append([]byte(nil), raw...)
	if err := closer.Close(); err != nil {
		return nil, false, fmt.Errorf("get %q: %w", key, err)
	}
	return value, true, nil
}

// Insert stores value under key, overwriting any previous value.
func (m *Map) Insert(key string, value []byte) error {
	if err := m.pdb.Set(m.key(key), value, writeOptions); err != nil {
		return fmt.Errorf("insert %q: %w", key, err)
	}
	return nil
}

// Remove deletes key. Removing an absent key is not an error.
func (m *Map) Remove(key string) error {
	if err := m.pdb.Delete(m.key(key), writeOptions); err != nil {
		return fmt.Errorf("remove %q: %w", key, err)
	}
	return nil
}

// Values scans the whole keyspace and returns every stored value.
// Iteration order follows key order, which callers must treat as unspecified.
func (m *Map) Values() ([][]byte, error) {
	it, err := m.pdb.NewIter(&pebble.IterOptions{
		LowerBound: m.prefix,
		UpperBound: prefixEnd(m.prefix),
	})
	if err != nil {
		return nil, fmt.Errorf("scan %q: %w", m.prefix, err)
	}
	var values [][]byte
	for it.First(); it.Valid(); it.Next() {
		values = append(values, append([]byte(nil), it.Value()...))
	}
	if err := it.Close(); err != nil {
		return nil, fmt.Errorf("scan %q: %w", m.prefix, err)
	}
	return values, nil
}

func (m *Map) key(key string) []byte {
	return append(append([]byte(nil), m.prefix...), key...)
}

// prefixEnd returns the smallest key greater than every key with the prefix.
func prefixEnd(prefix []byte) []byte {
	end := append([]byte(nil), prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	return nil // prefix is all 0xff, scan to the end
}
