package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/locations-cli/internal/domain"
	"github.com/bnema/locations-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newLoadedService(t *testing.T, backends fileBackends, opts ...ServiceOption) (*LocationService, *LocationsModel) {
	t.Helper()

	model := NewLocationsModel(backends.prefs, backends.registry)
	require.NoError(t, model.Load(context.Background()))

	return NewLocationService(model, backends.registry, backends.prefs, opts...), model
}

func TestServiceCreateLocationSnapshotsRegistry(t *testing.T) {
	t.Parallel()

	backends := newFileBackends(t, alice, bob)
	ctx := context.Background()
	require.NoError(t, backends.registry.SetEnabled(ctx, bob.Identity, DefaultUINamespace, true))
	service, model := newLoadedService(t, backends)

	view, err := service.CreateLocation(ctx, "home", []AccountOverride{{Identity: alice.Identity, Enabled: true}})
	require.NoError(t, err)

	assert.Equal(t, "home", view.Name)
	assert.Equal(t, 2, view.EnabledCount())
	assert.Equal(t, []triple{
		{Username: "alice@x.com", ProtocolID: "prpl-jabber", Enabled: true},
		{Username: "bob@x.com", ProtocolID: "prpl-msn", Enabled: true},
	}, triplesOf(model.LookupAccounts("home")))
}

func TestServiceCreateLocationRejectsInvalidName(t *testing.T) {
	t.Parallel()

	backends := newFileBackends(t, alice)
	service, model := newLoadedService(t, backends)

	for _, name := range []string{"", "home:office", "a-location-name-longer-than-thirty"} {
		_, err := service.CreateLocation(context.Background(), name, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidLocationName, name)
	}
	assert.Empty(t, model.LocationNames())
}

func TestServiceCreateLocationRejectsUnknownOverride(t *testing.T) {
	t.Parallel()

	backends := newFileBackends(t, alice)
	service, model := newLoadedService(t, backends)

	_, err := service.CreateLocation(context.Background(), "home", []AccountOverride{
		{Identity: domain.AccountIdentity{Username: "nobody", ProtocolID: "prpl-irc"}, Enabled: true},
	})
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
	assert.False(t, model.LocationExists("home"))
}

func TestServiceUpdateLocationReconcilesAndAppendsNewAccounts(t *testing.T) {
	t.Parallel()

	backends := newFileBackends(t, alice)
	ctx := context.Background()
	service, model := newLoadedService(t, backends)

	_, err := service.CreateLocation(ctx, "home", []AccountOverride{{Identity: alice.Identity, Enabled: true}})
	require.NoError(t, err)

	require.NoError(t, backends.registry.Save(ctx, bob))

	_, err = service.UpdateLocation(ctx, "home", []AccountOverride{
		{Identity: alice.Identity, Enabled: false},
		{Identity: bob.Identity, Enabled: true},
	})
	require.NoError(t, err)

	assert.Equal(t, []triple{
		{Username: "alice@x.com", ProtocolID: "prpl-jabber", Enabled: false},
		{Username: "bob@x.com", ProtocolID: "prpl-msn", Enabled: true},
	}, triplesOf(model.LookupAccounts("home")))
}

func TestServiceUpdateLocationWithoutOverridesIsIdempotent(t *testing.T) {
	t.Parallel()

	backends := newFileBackends(t, alice, bob)
	ctx := context.Background()
	service, model := newLoadedService(t, backends)

	_, err := service.CreateLocation(ctx, "work", []AccountOverride{{Identity: bob.Identity, Enabled: true}})
	require.NoError(t, err)
	before := triplesOf(model.LookupAccounts("work"))

	_, err = service.UpdateLocation(ctx, "work", nil)
	require.NoError(t, err)

	assert.Equal(t, before, triplesOf(model.LookupAccounts("work")))
}

func TestServiceUpdateMissingLocation(t *testing.T) {
	t.Parallel()

	service, _ := newLoadedService(t, newFileBackends(t, alice))

	_, err := service.UpdateLocation(context.Background(), "nowhere", nil)
	assert.ErrorIs(t, err, domain.ErrLocationNotFound)
}

func TestServiceApplyLocationSetsRegistryFlagsAndSkipsUnresolved(t *testing.T) {
	t.Parallel()

	backends := newFileBackends(t, alice, bob)
	ctx := context.Background()
	require.NoError(t, backends.prefs.SetStringList(ctx, "/plugins/gtk/locations/map", []string{
		"home:alice@x.com:prpl-jabber:enabled",
		"home:gone@x.com:prpl-irc:enabled",
		"home:bob@x.com:prpl-msn:disabled",
	}))
	require.NoError(t, backends.registry.SetEnabled(ctx, bob.Identity, "pidgin", true))

	core, logs := observer.New(zap.WarnLevel)
	service, _ := newLoadedService(t, backends, WithUINamespace("pidgin"), WithServiceLogger(zap.New(core)))

	result, err := service.ApplyLocation(ctx, "home")
	require.NoError(t, err)

	assert.Equal(t, []domain.AccountIdentity{alice.Identity, bob.Identity}, result.Applied)
	assert.Equal(t, []domain.AccountIdentity{{Username: "gone@x.com", ProtocolID: "prpl-irc"}}, result.Skipped)
	assert.Equal(t, 1, logs.FilterMessage("skipping unresolved account").Len())

	aliceEnabled, err := backends.registry.Enabled(ctx, alice.Identity, "pidgin")
	require.NoError(t, err)
	assert.True(t, aliceEnabled)
	bobEnabled, err := backends.registry.Enabled(ctx, bob.Identity, "pidgin")
	require.NoError(t, err)
	assert.False(t, bobEnabled)

	last, err := service.LastLocation(ctx)
	require.NoError(t, err)
	assert.Equal(t, "home", last)

	views, err := service.Locations(ctx)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.True(t, views[0].Active)
	assert.False(t, views[0].Accounts[1].Resolved)
}

func TestServiceApplyMissingLocation(t *testing.T) {
	t.Parallel()

	service, _ := newLoadedService(t, newFileBackends(t))

	_, err := service.ApplyLocation(context.Background(), "home")
	assert.ErrorIs(t, err, domain.ErrLocationNotFound)
}

func TestServiceDeleteLocationClearsLastLocation(t *testing.T) {
	t.Parallel()

	backends := newFileBackends(t, alice)
	ctx := context.Background()
	service, model := newLoadedService(t, backends)

	_, err := service.CreateLocation(ctx, "home", nil)
	require.NoError(t, err)
	_, err = service.ApplyLocation(ctx, "home")
	require.NoError(t, err)

	deleted, err := service.DeleteLocation(ctx, "home")
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.False(t, model.LocationExists("home"))

	last, err := service.LastLocation(ctx)
	require.NoError(t, err)
	assert.Empty(t, last)

	deleted, err = service.DeleteLocation(ctx, "home")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestServiceApplyStopsOnRegistryFailure(t *testing.T) {
	store := mocks.NewMockPreferenceStore(t)
	registry := mocks.NewMockAccountRegistry(t)
	model := NewLocationsModel(store, registry)
	model.AddLocation("home", []*domain.AccountState{domain.NewAccountState(alice, true), domain.NewAccountState(bob, true)})
	service := NewLocationService(model, registry, store)

	setErr := errors.New("registry is read-only")
	registry.EXPECT().SetEnabled(mockAnyContext(), alice.Identity, DefaultUINamespace, true).Return(setErr)

	_, err := service.ApplyLocation(context.Background(), "home")
	require.ErrorIs(t, err, setErr)
	assert.ErrorContains(t, err, "apply home to alice@x.com:prpl-jabber")
}

func TestServiceLocationViewOfMissingLocation(t *testing.T) {
	t.Parallel()

	service, _ := newLoadedService(t, newFileBackends(t))

	_, err := service.Location(context.Background(), "home")
	assert.ErrorIs(t, err, domain.ErrLocationNotFound)
}

func TestServiceSavePersistsThroughModel(t *testing.T) {
	t.Parallel()

	backends := newFileBackends(t, alice)
	ctx := context.Background()
	service, _ := newLoadedService(t, backends)

	_, err := service.CreateLocation(ctx, "home", []AccountOverride{{Identity: alice.Identity, Enabled: true}})
	require.NoError(t, err)
	require.NoError(t, service.Save(ctx))

	values, _, err := backends.prefs.GetStringList(ctx, "/plugins/gtk/locations/map")
	require.NoError(t, err)
	assert.Equal(t, []string{"home:alice@x.com:prpl-jabber:enabled"}, values)
}
