package docstore_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamtrackhq/dreamtrack/internal/db"
	"github.com/dreamtrackhq/dreamtrack/internal/docstore"
)

func newTestStore(t *testing.T) docstore.Store {
	t.Helper()

	database, err := db.Init("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	require.NoError(t, db.RunMigrations(database.DB, "sqlite"))

	return docstore.NewSQL(database)
}

func TestGetMissingReturnsNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get("things", "u1", "nope")
	assert.ErrorIs(t, err, docstore.ErrNotFound)
}

func TestPutReplacesByID(t *testing.T) {
	store := newTestStore(t)

	doc, err := docstore.Marshal("u1", "d1", map[string]string{"v": "one"})
	require.NoError(t, err)
	require.NoError(t, store.Put("things", doc))

	doc, err = docstore.Marshal("u1", "d1", map[string]string{"v": "two"})
	require.NoError(t, err)
	require.NoError(t, store.Put("things", doc))

	got, err := store.Get("things", "u1", "d1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":"two"}`, string(got.Body))
}

func TestPutIfAbsentFirstWriteWins(t *testing.T) {
	store := newTestStore(t)

	doc, err := docstore.Marshal("u1", "d1", map[string]string{"v": "first"})
	require.NoError(t, err)
	require.NoError(t, store.PutIfAbsent("things", doc))

	doc, err = docstore.Marshal("u1", "d1", map[string]string{"v": "second"})
	require.NoError(t, err)
	err = store.PutIfAbsent("things", doc)
	assert.ErrorIs(t, err, docstore.ErrExists)

	got, err := store.Get("things", "u1", "d1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":"first"}`, string(got.Body))
}

func TestQueryScansOnePartition(t *testing.T) {
	store := newTestStore(t)

	for _, pair := range [][2]string{{"u1", "a"}, {"u1", "b"}, {"u2", "c"}} {
		doc, err := docstore.Marshal(pair[0], pair[1], map[string]string{"id": pair[1]})
		require.NoError(t, err)
		require.NoError(t, store.Put("things", doc))
	}

	docs, err := store.Query("things", "u1")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "a", docs[0].ID)
	assert.Equal(t, "b", docs[1].ID)

	// A different collection with the same partition is empty
	docs, err = store.Query("other", "u1")
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestDelete(t *testing.T) {
	store := newTestStore(t)

	doc, err := docstore.Marshal("u1", "d1", map[string]string{})
	require.NoError(t, err)
	require.NoError(t, store.Put("things", doc))

	require.NoError(t, store.Delete("things", "u1", "d1"))

	_, err = store.Get("things", "u1", "d1")
	assert.ErrorIs(t, err, docstore.ErrNotFound)

	err = store.Delete("things", "u1", "d1")
	assert.ErrorIs(t, err, docstore.ErrNotFound)
}
