package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTableTest(t *testing.T) (*FileTableStore, string, func()) {
	tempDir, err := os.MkdirTemp("", "exdb_table_test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	path := filepath.Join(tempDir, "db.txt")
	store := NewFileTableStore(path)

	cleanup := func() {
		os.RemoveAll(tempDir)
	}
	return store, path, cleanup
}

func TestTableStoreLoadAbsentFile(t *testing.T) {
	store, _, cleanup := setupTableTest(t)
	defer cleanup()

	data, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestTableStoreRoundTrip(t *testing.T) {
	store, _, cleanup := setupTableTest(t)
	defer cleanup()

	want := map[string]string{
		"name":  "Alice",
		"age":   "30",
		"city":  "Paris",
		"empty": "-",
	}

	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestTableStoreSaveOverwrites(t *testing.T) {
	store, _, cleanup := setupTableTest(t)
	defer cleanup()

	require.NoError(t, store.Save(map[string]string{"a": "1", "b": "2"}))
	require.NoError(t, store.Save(map[string]string{"c": "3"}))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"c": "3"}, got)
}

func TestTableStoreTrailingKeyIgnored(t *testing.T) {
	store, path, cleanup := setupTableTest(t)
	defer cleanup()

	// A value-less trailing key at end-of-file must be skipped.
	require.NoError(t, os.WriteFile(path, []byte("a 1\nb 2\ndangling"), 0644))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, got)
}

func TestTableStoreDuplicateKeysLastWins(t *testing.T) {
	store, path, cleanup := setupTableTest(t)
	defer cleanup()

	require.NoError(t, os.WriteFile(path, []byte("a 1\na 2\n"), 0644))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "2"}, got)
}
