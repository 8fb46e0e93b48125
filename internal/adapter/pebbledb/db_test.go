package pebbledb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})
	return db
}

func TestMap_InsertGetRemove(t *testing.T) {
	db := newTestDB(t)
	m := db.Map("lang/")

	_, ok, err := m.Get("a")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Insert("a", []byte("one")))

	value, ok, err := m.Get("a")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("one"), value)

	// Overwrite is allowed.
	require.NoError(t, m.Insert("a", []byte("two")))
	value, ok, err = m.Get("a")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("two"), value)

	require.NoError(t, m.Remove("a"))
	_, ok, err = m.Get("a")
	require.NoError(t, err)
	assert.False(t, ok)

	// Removing an absent key is not an error.
	require.NoError(t, m.Remove("a"))
}

func TestMap_Values(t *testing.T) {
	db := newTestDB(t)
	m := db.Map("topic/")

	values, err := m.Values()
	require.NoError(t, err)
	assert.Empty(t, values)

	require.NoError(t, m.Insert("b", []byte("2")))
	require.NoError(t, m.Insert("a", []byte("1")))
	require.NoError(t, m.Insert("c", []byte("3")))

	values, err = m.Values()
	require.NoError(t, err)
	assert.ElementsMatch(t, [][]byte{[]byte("1"), []byte("2"), []byte("3")}, values)
}

func TestMap_PrefixIsolation(t *testing.T) {
	db := newTestDB(t)
	langs := db.Map("lang/")
	topics := db.Map("topic/")

	require.NoError(t, langs.Insert("x", []byte("language")))
	require.NoError(t, topics.Insert("x", []byte("topic")))

	value, ok, err := langs.Get("x")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("language"), value)

	langValues, err := langs.Values()
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("language")}, langValues)

	topicValues, err := topics.Values()
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("topic")}, topicValues)

	require.NoError(t, langs.Remove("x"))
	_, ok, err = topics.Get("x")
	require.NoError(t, err)
	assert.True(t, ok, "removing from one map must not touch the other")
}

func TestDB_Ping(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Ping(context.Background()))

	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, db.Ping(canceled))
}

func TestPrefixEnd(t *testing.T) {
	assert.Equal(t, []byte("lang0"), prefixEnd([]byte("lang/")))
	assert.Equal(t, []byte{0x02}, prefixEnd([]byte{0x01, 0xff}))
	assert.Nil(t, prefixEnd([]byte{0xff, 0xff}))
}
