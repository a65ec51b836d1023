package application

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/bnema/locations-cli/internal/domain"
	"github.com/bnema/locations-cli/internal/ports"
	"go.uber.org/zap"
)

// LocationsModel maps location names to their ordered account states. It is
// not safe for concurrent use; callers serialize access.
type LocationsModel struct {
	store    ports.PreferenceStore
	registry ports.AccountRegistry
	keys     PrefKeys
	logger   *zap.Logger

	names   []string
	entries map[string]*domain.LocationEntry
	closed  bool
}

type ModelOption func(*LocationsModel)

func WithModelLogger(logger *zap.Logger) ModelOption {
	return func(m *LocationsModel) {
		if logger != nil {
			m.logger = logger
		}
	}
}

func WithModelKeys(keys PrefKeys) ModelOption {
	return func(m *LocationsModel) {
		m.keys = keys
	}
}

func NewLocationsModel(store ports.PreferenceStore, registry ports.AccountRegistry, opts ...ModelOption) *LocationsModel {
	m := &LocationsModel{
		store:    store,
		registry: registry,
		keys:     KeysForPrefix(DefaultPrefPrefix),
		logger:   zap.NewNop(),
		entries:  map[string]*domain.LocationEntry{},
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Load replaces the model content with the persisted records. Missing data
// yields an empty model. Malformed records are skipped; identities the
// registry no longer knows are kept as unresolved states.
func (m *LocationsModel) Load(ctx context.Context) error {
	if m.closed {
		return domain.ErrModelClosed
	}

	if err := m.store.AddNamespace(ctx, m.keys.Namespace); err != nil {
		return fmt.Errorf("declare preference namespace: %w", err)
	}

	raw, ok, err := m.store.GetStringList(ctx, m.keys.Map)
	if err != nil {
		return fmt.Errorf("read locations map: %w", err)
	}

	m.names = nil
	m.entries = map[string]*domain.LocationEntry{}
	if !ok {
		return nil
	}

	for _, line := range raw {
		record, err := domain.ParseRecord(line)
		if err != nil {
			m.logger.Warn("skipping malformed location record", zap.String("record", line), zap.Error(err))
			continue
		}

		ref, err := m.resolve(ctx, record.Identity)
		if err != nil {
			return err
		}

		entry := m.entries[record.Location]
		if entry == nil {
			entry = &domain.LocationEntry{Name: record.Location}
			m.entries[record.Location] = entry
			m.names = append(m.names, record.Location)
		}
		entry.Accounts = append(entry.Accounts, &domain.AccountState{Ref: ref, Enabled: record.Enabled})
	}

	m.logger.Debug("locations loaded", zap.Int("locations", len(m.names)), zap.Int("records", len(raw)))
	return nil
}

func (m *LocationsModel) resolve(ctx context.Context, id domain.AccountIdentity) (domain.AccountRef, error) {
	account, err := m.registry.Find(ctx, id)
	if err == nil {
		return domain.ResolvedAccount{Account: account}, nil
	}
	if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, fmt.Errorf("resolve account %s: %w", id, err)
	}

	m.logger.Warn("location references unknown account", zap.String("account", id.String()))
	return domain.UnresolvedAccount{ID: id}, nil
}

// Save rewrites the whole persisted list, locations in insertion order and
// accounts in stored order.
func (m *LocationsModel) Save(ctx context.Context) error {
	if m.closed {
		return domain.ErrModelClosed
	}

	records := make([]string, 0, len(m.names))
	for _, name := range m.names {
		for _, state := range m.entries[name].Accounts {
			if state == nil || state.Ref == nil {
				continue
			}
			records = append(records, domain.Record{
				Location: name,
				Identity: state.Ref.Identity(),
				Enabled:  state.Enabled,
			}.String())
		}
	}

	if err := m.store.SetStringList(ctx, m.keys.Map, records); err != nil {
		return fmt.Errorf("write locations map: %w", err)
	}

	m.logger.Debug("locations saved", zap.Int("locations", len(m.names)), zap.Int("records", len(records)))
	return nil
}

func (m *LocationsModel) LocationExists(name string) bool {
	_, ok := m.entries[name]
	return ok
}

// AddLocation inserts name or overwrites its account list. An overwritten
// location keeps its position. The name is not validated here.
func (m *LocationsModel) AddLocation(name string, accounts []*domain.AccountState) {
	if m.closed {
		return
	}

	if _, ok := m.entries[name]; !ok {
		m.names = append(m.names, name)
	}
	m.entries[name] = &domain.LocationEntry{Name: name, Accounts: accounts}
}

// LookupAccounts returns the live account states of name, nil when absent.
func (m *LocationsModel) LookupAccounts(name string) []*domain.AccountState {
	entry, ok := m.entries[name]
	if !ok {
		return nil
	}

	return entry.Accounts
}

func (m *LocationsModel) DeleteLocation(name string) bool {
	if _, ok := m.entries[name]; !ok {
		return false
	}

	delete(m.entries, name)
	m.names = slices.DeleteFunc(m.names, func(n string) bool { return n == name })
	return true
}

func (m *LocationsModel) LocationNames() []string {
	return slices.Clone(m.names)
}

// Teardown releases every entry. The model cannot be loaded or saved again.
func (m *LocationsModel) Teardown() {
	for _, entry := range m.entries {
		entry.Accounts = nil
	}
	m.entries = map[string]*domain.LocationEntry{}
	m.names = nil
	m.closed = true
}
