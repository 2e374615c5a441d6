// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/json2md/internal/convert"
	"github.com/pdiddy/json2md/internal/output"
	"github.com/pdiddy/json2md/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "index", "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func doc(collection string, pos int, key, value string) types.Document {
	rec := &types.Record{Fields: []types.Field{{Key: key, Value: value}}}
	return types.Document{
		Collection: collection,
		Source:     collection + ".json",
		Path:       filepath.Join(collection, filepath.Base(collection)+"-"+value+".md"),
		Position:   pos,
		Record:     rec,
		Content:    []byte("---\n" + key + ": " + value + "\n---\n"),
	}
}

func TestOpenCreatesDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "catalog.db")
	store, err := Open(path)
	require.NoError(t, err)
	defer store.Close()

	assert.FileExists(t, path)
	assert.Equal(t, path, store.Path())
}

func TestRecordAndList(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	require.NoError(t, store.Record(ctx, doc("posts", 2, "title", "b")))
	require.NoError(t, store.Record(ctx, doc("posts", 1, "title", "a")))
	require.NoError(t, store.Record(ctx, doc("authors", 1, "name", "ada")))

	all, err := store.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "authors", all[0].Collection)
	assert.Equal(t, "posts", all[1].Collection)
	assert.Equal(t, 1, all[1].Position)
	assert.Equal(t, 2, all[2].Position)
	assert.Equal(t, map[string]any{"title": "a"}, all[1].Fields)
	assert.Len(t, all[1].Checksum, 64)

	posts, err := store.List(ctx, "posts")
	require.NoError(t, err)
	assert.Len(t, posts, 2)

	none, err := store.List(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRecordUpserts(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	first := doc("posts", 1, "title", "a")
	require.NoError(t, store.Record(ctx, first))

	updated := first
	updated.Record = &types.Record{Fields: []types.Field{{Key: "title", Value: "changed"}}}
	updated.Content = []byte("---\ntitle: changed\n---\n")
	require.NoError(t, store.Record(ctx, updated))

	entries, err := store.List(ctx, "posts")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "changed", entries[0].Fields["title"])
}

func TestExport(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()
	require.NoError(t, store.Record(ctx, doc("posts", 1, "title", "a")))
	require.NoError(t, store.Record(ctx, doc("authors", 1, "name", "ada")))

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, store.ExportYAML(ctx, "posts", &buf))

		var got []Entry
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "posts", got[0].Collection)
		assert.Equal(t, "a", got[0].Fields["title"])
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, store.ExportJSON(ctx, "", &buf))

		var got []Entry
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Len(t, got, 2)
	})

	t.Run("empty json is an array", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, store.ExportJSON(ctx, "missing", &buf))
		assert.Equal(t, "[]\n", buf.String())
	})
}

func TestStoreAsRecorder(t *testing.T) {
	store := testStore(t)
	workDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(workDir, "data.json"), []byte(`[{"a": 1}, {"b": [1, 2]}]`), 0o644))

	var out bytes.Buffer
	p := output.NewPrinter(&out, false)
	opts := convert.Options{WorkDir: workDir, Recorder: store}

	// Convert twice: the catalog mirrors the files, it does not accumulate.
	for range 2 {
		_, err := convert.ConvertFile(context.Background(), "data.json", opts, p)
		require.NoError(t, err)
	}

	entries, err := store.List(context.Background(), "data")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "data/1.md", entries[0].Path)
	assert.Equal(t, "data.json", entries[0].Source)
	assert.Equal(t, map[string]any{"b": []any{float64(1), float64(2)}}, entries[1].Fields)
}
