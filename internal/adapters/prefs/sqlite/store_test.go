package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/bnema/locations-cli/internal/ports"
	"github.com/bnema/locations-cli/internal/ports/portstest"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreContract(t *testing.T) {
	portstest.RunPreferenceStoreTests(t, func(t *testing.T) ports.PreferenceStore {
		return NewStoreWithDB(setupTestDB(t))
	})
}

func TestStoreRemoveCascadesListItems(t *testing.T) {
	db := setupTestDB(t)
	store := NewStoreWithDB(db)
	ctx := context.Background()

	require.NoError(t, store.SetStringList(ctx, "/plugins/gtk/locations/map", []string{"a", "b"}))
	require.NoError(t, store.Remove(ctx, "/plugins/gtk/locations/map"))

	var count int
	require.NoError(t, db.Reader.QueryRowContext(ctx, `SELECT COUNT(*) FROM pref_list_items`).Scan(&count))
	assert.Zero(t, count)
}

func TestStoreSwitchingKindHidesPreviousValue(t *testing.T) {
	store := NewStoreWithDB(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, store.SetStringList(ctx, "/k", []string{"a"}))
	require.NoError(t, store.SetString(ctx, "/k", "b"))

	_, ok, err := store.GetStringList(ctx, "/k")
	require.NoError(t, err)
	assert.False(t, ok)

	value, ok, err := store.GetString(ctx, "/k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "b", value)
}

func TestNewStoreOnDiskPersistsAcrossReopen(t *testing.T) {
	config := viper.New()
	config.Set("prefs.sqlite_path", filepath.Join(t.TempDir(), "nested", "prefs.db"))
	ctx := context.Background()

	first, err := NewStore(config)
	require.NoError(t, err)
	require.NoError(t, first.SetStringList(ctx, "/plugins/gtk/locations/map", []string{"home:alice@x.com:prpl-jabber:enabled"}))
	require.NoError(t, first.Close())

	second, err := NewStore(config)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })

	values, ok, err := second.GetStringList(ctx, "/plugins/gtk/locations/map")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"home:alice@x.com:prpl-jabber:enabled"}, values)
}
