// Package portstest holds behavior checks shared by every adapter of a port.
package portstest

import (
	"context"
	"testing"

	"github.com/bnema/locations-cli/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunPreferenceStoreTests checks the PreferenceStore contract against stores
// built by newStore. Each subtest gets a fresh, empty store.
func RunPreferenceStoreTests(t *testing.T, newStore func(t *testing.T) ports.PreferenceStore) {
	t.Helper()

	const (
		namespace = "/plugins/gtk/locations"
		mapKey    = "/plugins/gtk/locations/map"
		lastKey   = "/plugins/gtk/locations/last"
	)

	t.Run("absent keys report not found", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		values, ok, err := store.GetStringList(ctx, mapKey)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, values)

		value, ok, err := store.GetString(ctx, lastKey)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, value)
	})

	t.Run("string list keeps order and is replaced wholesale", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		require.NoError(t, store.SetStringList(ctx, mapKey, []string{"b", "a", "c"}))
		require.NoError(t, store.SetStringList(ctx, mapKey, []string{"z", "y"}))

		values, ok, err := store.GetStringList(ctx, mapKey)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []string{"z", "y"}, values)
	})

	t.Run("empty string list is present", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		require.NoError(t, store.SetStringList(ctx, mapKey, nil))

		values, ok, err := store.GetStringList(ctx, mapKey)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Empty(t, values)
	})

	t.Run("string set and overwrite", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		require.NoError(t, store.SetString(ctx, lastKey, "home"))
		require.NoError(t, store.SetString(ctx, lastKey, "work"))

		value, ok, err := store.GetString(ctx, lastKey)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "work", value)
	})

	t.Run("add namespace is idempotent", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		require.NoError(t, store.AddNamespace(ctx, namespace))
		require.NoError(t, store.AddNamespace(ctx, namespace))
	})

	t.Run("remove deletes values and tolerates absent keys", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		require.NoError(t, store.SetStringList(ctx, mapKey, []string{"a"}))
		require.NoError(t, store.SetString(ctx, lastKey, "home"))

		require.NoError(t, store.Remove(ctx, mapKey))
		require.NoError(t, store.Remove(ctx, lastKey))
		require.NoError(t, store.Remove(ctx, "/never/set"))

		_, ok, err := store.GetStringList(ctx, mapKey)
		require.NoError(t, err)
		assert.False(t, ok)

		_, ok, err = store.GetString(ctx, lastKey)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("values with colons and spaces survive", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		want := []string{"costa coffee:alice@x.com:prpl-jabber:enabled", "home:bob@x.com:prpl-msn:disabled"}
		require.NoError(t, store.SetStringList(ctx, mapKey, want))

		values, _, err := store.GetStringList(ctx, mapKey)
		require.NoError(t, err)
		assert.Equal(t, want, values)
	})

	t.Run("canceled context is rejected", func(t *testing.T) {
		store := newStore(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.ErrorIs(t, store.SetStringList(ctx, mapKey, []string{"a"}), context.Canceled)
		_, _, err := store.GetStringList(ctx, mapKey)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
