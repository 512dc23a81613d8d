// Package testutil holds helpers shared by package tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nhle/recipients/internal/store"
)

// NewTestStore returns a migrated in-memory contacts store that is closed
// when the test ends.
func NewTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	return open(t, ":memory:")
}

// NewFileStore is like NewTestStore but backed by a file in a temporary
// directory, for tests that reopen the database.
func NewFileStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	return open(t, filepath.Join(t.TempDir(), "contacts.db"))
}

func open(t *testing.T, path string) *store.SQLiteStore {
	t.Helper()

	s, err := store.NewSQLiteStore(path)
	require.NoError(t, err, "opening test store")
	t.Cleanup(func() { _ = s.Close() })
	return s
}
