package application

import (
	"context"
	"path/filepath"
	"testing"

	prefstoml "github.com/bnema/locations-cli/internal/adapters/prefs/toml"
	registrytoml "github.com/bnema/locations-cli/internal/adapters/registry/toml"
	"github.com/bnema/locations-cli/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	alice = domain.Account{Identity: domain.AccountIdentity{Username: "alice@x.com", ProtocolID: "prpl-jabber"}}
	bob   = domain.Account{Identity: domain.AccountIdentity{Username: "bob@x.com", ProtocolID: "prpl-msn"}}
	carol = domain.Account{Identity: domain.AccountIdentity{Username: "carol@x.com", ProtocolID: "prpl-yahoo"}}
)

var sampleRecords = []string{
	"home:alice@x.com:prpl-jabber:enabled",
	"home:bob@x.com:prpl-msn:disabled",
	"work:alice@x.com:prpl-jabber:disabled",
}

func mockAnyContext() interface{} {
	return mock.Anything
}

type fileBackends struct {
	prefs    *prefstoml.Store
	registry *registrytoml.Registry
}

// newFileBackends builds TOML-backed adapters in a temp dir with the given
// accounts registered.
func newFileBackends(t *testing.T, accounts ...domain.Account) fileBackends {
	t.Helper()

	dir := t.TempDir()
	config := viper.New()
	config.Set("prefs.path", filepath.Join(dir, "prefs.toml"))
	config.Set("registry.path", filepath.Join(dir, "accounts.toml"))

	prefs, err := prefstoml.NewStore(config)
	require.NoError(t, err)
	registry, err := registrytoml.NewRegistry(config)
	require.NoError(t, err)

	for _, account := range accounts {
		require.NoError(t, registry.Save(context.Background(), account))
	}

	return fileBackends{prefs: prefs, registry: registry}
}

type triple struct {
	Username   string
	ProtocolID string
	Enabled    bool
}

func triplesOf(states []*domain.AccountState) []triple {
	out := make([]triple, 0, len(states))
	for _, state := range states {
		id := state.Ref.Identity()
		out = append(out, triple{Username: id.Username, ProtocolID: id.ProtocolID, Enabled: state.Enabled})
	}
	return out
}
