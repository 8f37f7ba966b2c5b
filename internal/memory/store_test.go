package memory

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/facet/internal/semantic"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "memory.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSaveFillsDefaults(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()

	rec, err := s.Save(ctx, semantic.Record{Content: "user prefers dark mode"})
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, semantic.DefaultCollection, rec.Collection)
	assert.False(t, rec.Timestamp.IsZero())

	got, err := s.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.Content, got.Content)
	assert.True(t, rec.Timestamp.Equal(got.Timestamp))
}

func TestSaveKeepsExplicitFields(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	rec, err := s.Save(ctx, semantic.Record{
		ID:         "fixed",
		Collection: "notes",
		Content:    "x",
		Metadata:   json.RawMessage(`{"source":"test"}`),
		Timestamp:  at,
	})
	require.NoError(t, err)
	assert.Equal(t, "fixed", rec.ID)

	got, err := s.Get(ctx, "fixed")
	require.NoError(t, err)
	assert.Equal(t, "notes", got.Collection)
	assert.JSONEq(t, `{"source":"test"}`, string(got.Metadata))
	assert.True(t, at.Equal(got.Timestamp))
}

func TestListOrdersByTimestamp(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()
	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	for i, content := range []string{"third", "first", "second"} {
		offset := map[int]time.Duration{0: 2, 1: 0, 2: 1}[i]
		_, err := s.Save(ctx, semantic.Record{Content: content, Collection: "c", Timestamp: base.Add(offset * time.Hour)})
		require.NoError(t, err)
	}
	_, err := s.Save(ctx, semantic.Record{Content: "other", Collection: "d", Timestamp: base})
	require.NoError(t, err)

	recs, err := s.List(ctx, "c")
	require.NoError(t, err)
	var contents []string
	for _, r := range recs {
		contents = append(contents, r.Content)
	}
	assert.Equal(t, []string{"first", "second", "third"}, contents)

	all, err := s.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestFindIsCaseInsensitive(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()

	_, err := s.Save(ctx, semantic.Record{Content: "Likes GREEN tea"})
	require.NoError(t, err)
	_, err = s.Save(ctx, semantic.Record{Content: "Straße names", Collection: "geo"})
	require.NoError(t, err)
	_, err = s.Save(ctx, semantic.Record{Content: "unrelated"})
	require.NoError(t, err)

	found, err := s.Find(ctx, "green")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Likes GREEN tea", found[0].Content)

	found, err = s.Find(ctx, "STRASSE")
	require.NoError(t, err)
	assert.Len(t, found, 1)

	found, err = s.Find(ctx, "GEO")
	require.NoError(t, err)
	assert.Len(t, found, 1)

	found, err = s.Find(ctx, "  ")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestDelete(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()

	rec, err := s.Save(ctx, semantic.Record{Content: "temporary"})
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, rec.ID))
	_, err = s.Get(ctx, rec.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, rec.ID), ErrNotFound)
}

func TestCanceledContext(t *testing.T) {
	s := openTemp(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Save(ctx, semantic.Record{Content: "x"})
	assert.ErrorIs(t, err, context.Canceled)
	_, err = s.List(ctx, "")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReopenKeepsRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.db")
	ctx := context.Background()

	s, err := Open(path, nil)
	require.NoError(t, err)
	rec, err := s.Save(ctx, semantic.Record{Content: "durable"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path, nil)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "durable", got.Content)
}
