package toml

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bnema/locations-cli/internal/ports"
	"github.com/bnema/locations-cli/internal/ports/portstest"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, path string) *Store {
	t.Helper()

	config := viper.New()
	config.Set("prefs.path", path)

	store, err := NewStore(config)
	require.NoError(t, err)
	return store
}

func TestStoreContract(t *testing.T) {
	portstest.RunPreferenceStoreTests(t, func(t *testing.T) ports.PreferenceStore {
		return newTestStore(t, filepath.Join(t.TempDir(), "prefs.toml"))
	})
}

func TestStorePersistsAcrossInstances(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "prefs.toml")
	ctx := context.Background()

	require.NoError(t, newTestStore(t, path).SetStringList(ctx, "/plugins/gtk/locations/map", []string{"home:alice@x.com:prpl-jabber:enabled"}))

	values, ok, err := newTestStore(t, path).GetStringList(ctx, "/plugins/gtk/locations/map")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"home:alice@x.com:prpl-jabber:enabled"}, values)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
}

func TestStoreReadOnlyOperationsDoNotCreateFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "prefs.toml")
	store := newTestStore(t, path)

	_, _, err := store.GetStringList(context.Background(), "/plugins/gtk/locations/map")
	require.NoError(t, err)
	require.NoError(t, store.Remove(context.Background(), "/plugins/gtk/locations/map"))

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestStoreFutureSchemaVersionReturnsError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "prefs.toml")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join([]string{
		"version = 999",
		"",
	}, "\n")), 0o600))

	_, _, err := newTestStore(t, path).GetStringList(context.Background(), "/plugins/gtk/locations/map")
	assert.ErrorContains(t, err, "unsupported prefs schema version")
}

func TestStoreDefaultPathUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := NewStore(viper.New())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".locations", "prefs.toml"), store.Path())
}
