package tomlfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Version int      `toml:"version"`
	Names   []string `toml:"names"`
}

func TestWriteThenReadRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "sample.toml")
	want := sample{Version: 1, Names: []string{"home", "work"}}

	require.NoError(t, Write(path, "sample", want))

	var got sample
	found, err := Read(path, "sample", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, want, got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not be left behind")
}

func TestReadMissingFile(t *testing.T) {
	t.Parallel()

	var got sample
	found, err := Read(filepath.Join(t.TempDir(), "missing.toml"), "sample", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestReadMalformedFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("names = ["), 0o600))

	var got sample
	_, err := Read(path, "sample", &got)
	assert.ErrorContains(t, err, "decode sample file")
}

func TestResolvePathDefaultsUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := ResolvePath(viper.New(), "prefs.path", "prefs.toml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ConfigDir, "prefs.toml"), path)
}

func TestResolvePathUsesConfiguredKey(t *testing.T) {
	t.Parallel()

	want := filepath.Join(t.TempDir(), "custom.toml")
	cfg := viper.New()
	cfg.Set("prefs.path", want)

	path, err := ResolvePath(cfg, "prefs.path", "prefs.toml")
	require.NoError(t, err)
	assert.Equal(t, want, path)
}

func TestLockForPathReturnsSameLock(t *testing.T) {
	t.Parallel()

	assert.Same(t, LockForPath("/tmp/a.toml"), LockForPath("/tmp/a.toml"))
	assert.NotSame(t, LockForPath("/tmp/a.toml"), LockForPath("/tmp/b.toml"))
}

func TestCheckVersion(t *testing.T) {
	t.Parallel()

	assert.NoError(t, CheckVersion("prefs", 1, 1))
	assert.ErrorContains(t, CheckVersion("prefs", 2, 1), "unsupported prefs schema version 2 (current 1)")
}
