package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/NeoVand/WhyBecause/pkg/adapters/file"
	"github.com/NeoVand/WhyBecause/pkg/domain"
	"github.com/NeoVand/WhyBecause/pkg/ports/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Contract(t *testing.T) {
	storetest.Run(t, file.New(t.TempDir()))
}

func TestFileStore_SanitizesIDs(t *testing.T) {
	dir := t.TempDir()
	store := file.New(dir)
	ctx := context.Background()

	doc := domain.NewAgentDocument(&domain.Agent{ID: "a/b:c", Title: "T", Prompt: "p"})
	doc.ID = "a/b:c"
	require.NoError(t, store.Put(ctx, doc))

	// No nested path may be created; the file lives directly in the base dir.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.False(t, entries[0].IsDir())

	got, err := store.Get(ctx, "a/b:c")
	require.NoError(t, err)
	assert.Equal(t, "a/b:c", got.ID)
}

func TestFileStore_ListEmptyDir(t *testing.T) {
	store := file.New(filepath.Join(t.TempDir(), "never-created"))
	docs, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, docs)
}
