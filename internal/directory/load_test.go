package directory

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nhle/recipients/internal/model"
	"github.com/nhle/recipients/internal/store"
	"github.com/nhle/recipients/tests/testutil"
)

func TestLoadBuiltin(t *testing.T) {
	d, err := Load(context.Background(), model.DirectoryConfig{Source: model.SourceBuiltin}, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, Default().Entries(), d.Entries())
}

func TestLoadConfigEntries(t *testing.T) {
	cfg := model.DirectoryConfig{
		Source:  model.SourceConfig,
		Entries: []string{"a@x.com", "b@x.com"},
	}
	d, err := Load(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, d.Entries())
}

func TestLoadEmptyConfigFallsBack(t *testing.T) {
	d, err := Load(context.Background(), model.DirectoryConfig{Source: model.SourceConfig}, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, Default().Len(), d.Len())
}

func TestLoadSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.db")
	s, err := store.NewSQLiteStore(path)
	require.NoError(t, err)
	_, err = s.ImportContacts(context.Background(), []model.Contact{
		{Address: "second@x.com"},
		{Address: "first@x.com"},
	})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	d, err := Load(context.Background(), model.DirectoryConfig{
		Source: model.SourceSQLite,
		DBPath: path,
	}, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []string{"second@x.com", "first@x.com"}, d.Entries())
}

func TestLoadFromEmptyStoreFallsBack(t *testing.T) {
	s := testutil.NewTestStore(t)

	d, err := loadFromStore(context.Background(), s, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, Default().Len(), d.Len())
}

func TestLoadUnknownSource(t *testing.T) {
	_, err := Load(context.Background(), model.DirectoryConfig{Source: "ldap"}, zap.NewNop())
	assert.Error(t, err)
}
