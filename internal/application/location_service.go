package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/locations-cli/internal/domain"
	"github.com/bnema/locations-cli/internal/ports"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// LocationService drives a loaded LocationsModel against the account registry
// and remembers the last applied location.
type LocationService struct {
	model    *LocationsModel
	registry ports.AccountRegistry
	store    ports.PreferenceStore
	keys     PrefKeys
	ui       string
	logger   *zap.Logger
}

type ServiceOption func(*LocationService)

func WithServiceLogger(logger *zap.Logger) ServiceOption {
	return func(s *LocationService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithServiceKeys(keys PrefKeys) ServiceOption {
	return func(s *LocationService) {
		s.keys = keys
	}
}

// WithUINamespace selects which UI's enabled flag is read and written.
func WithUINamespace(ui string) ServiceOption {
	return func(s *LocationService) {
		if ui != "" {
			s.ui = ui
		}
	}
}

func NewLocationService(model *LocationsModel, registry ports.AccountRegistry, store ports.PreferenceStore, opts ...ServiceOption) *LocationService {
	s := &LocationService{
		model:    model,
		registry: registry,
		store:    store,
		keys:     KeysForPrefix(DefaultPrefPrefix),
		ui:       DefaultUINamespace,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *LocationService) Locations(ctx context.Context) ([]LocationView, error) {
	last, err := s.LastLocation(ctx)
	if err != nil {
		return nil, err
	}

	return lo.Map(s.model.LocationNames(), func(name string, _ int) LocationView {
		return newLocationView(name, s.model.LookupAccounts(name), last)
	}), nil
}

func (s *LocationService) Location(ctx context.Context, name string) (LocationView, error) {
	if !s.model.LocationExists(name) {
		return LocationView{}, fmt.Errorf("%w: %q", domain.ErrLocationNotFound, name)
	}

	last, err := s.LastLocation(ctx)
	if err != nil {
		return LocationView{}, err
	}

	return newLocationView(name, s.model.LookupAccounts(name), last), nil
}

// CreateLocation records one state per registry account. States default to the
// registry's current flag unless overridden. An existing location of the same
// name is replaced.
func (s *LocationService) CreateLocation(ctx context.Context, name string, overrides []AccountOverride) (LocationView, error) {
	if err := domain.ValidateLocationName(name); err != nil {
		return LocationView{}, err
	}

	observed, err := s.snapshot(ctx, overrides, func(domain.AccountIdentity) *domain.AccountState { return nil })
	if err != nil {
		return LocationView{}, err
	}

	states := lo.Map(observed, func(obs domain.Observation, _ int) *domain.AccountState {
		return domain.NewAccountState(obs.Account, obs.Enabled)
	})

	if s.model.LocationExists(name) {
		s.logger.Info("replacing existing location", zap.String("location", name))
	}
	s.model.AddLocation(name, states)

	return s.Location(ctx, name)
}

// UpdateLocation reconciles the stored states of name with a fresh snapshot of
// every registry account. Accounts added to the registry since the location
// was created are appended.
func (s *LocationService) UpdateLocation(ctx context.Context, name string, overrides []AccountOverride) (LocationView, error) {
	if !s.model.LocationExists(name) {
		return LocationView{}, fmt.Errorf("%w: %q", domain.ErrLocationNotFound, name)
	}

	existing := s.model.LookupAccounts(name)
	observed, err := s.snapshot(ctx, overrides, func(id domain.AccountIdentity) *domain.AccountState {
		return domain.FindState(existing, id)
	})
	if err != nil {
		return LocationView{}, err
	}

	s.model.AddLocation(name, domain.Reconcile(existing, observed))

	return s.Location(ctx, name)
}

func (s *LocationService) DeleteLocation(ctx context.Context, name string) (bool, error) {
	if !s.model.DeleteLocation(name) {
		return false, nil
	}

	last, err := s.LastLocation(ctx)
	if err != nil {
		return true, err
	}
	if last == name {
		if err := s.store.Remove(ctx, s.keys.Last); err != nil {
			return true, fmt.Errorf("clear last location: %w", err)
		}
	}

	return true, nil
}

// ApplyLocation writes the recorded states of name to the registry. Unresolved
// accounts are skipped and reported.
func (s *LocationService) ApplyLocation(ctx context.Context, name string) (ApplyResult, error) {
	if !s.model.LocationExists(name) {
		return ApplyResult{}, fmt.Errorf("%w: %q", domain.ErrLocationNotFound, name)
	}

	result := ApplyResult{Location: name}
	for _, state := range s.model.LookupAccounts(name) {
		if state == nil {
			continue
		}

		switch ref := state.Ref.(type) {
		case domain.ResolvedAccount:
			id := ref.Account.Identity
			if err := s.registry.SetEnabled(ctx, id, s.ui, state.Enabled); err != nil {
				return result, fmt.Errorf("apply %s to %s: %w", name, id, err)
			}
			result.Applied = append(result.Applied, id)
		case domain.UnresolvedAccount:
			s.logger.Warn("skipping unresolved account", zap.String("location", name), zap.String("account", ref.ID.String()))
			result.Skipped = append(result.Skipped, ref.ID)
		}
	}

	if err := s.store.SetString(ctx, s.keys.Last, name); err != nil {
		return result, fmt.Errorf("record last location: %w", err)
	}

	s.logger.Info("location applied",
		zap.String("location", name),
		zap.Int("applied", len(result.Applied)),
		zap.Int("skipped", len(result.Skipped)),
	)
	return result, nil
}

func (s *LocationService) LastLocation(ctx context.Context) (string, error) {
	last, ok, err := s.store.GetString(ctx, s.keys.Last)
	if err != nil {
		return "", fmt.Errorf("read last location: %w", err)
	}
	if !ok {
		return "", nil
	}

	return last, nil
}

func (s *LocationService) Save(ctx context.Context) error {
	return s.model.Save(ctx)
}

// snapshot lists every registry account with the state to observe for it:
// the override when present, else the stored state from current, else the
// registry's flag.
func (s *LocationService) snapshot(ctx context.Context, overrides []AccountOverride, current func(domain.AccountIdentity) *domain.AccountState) ([]domain.Observation, error) {
	accounts, err := s.registry.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	pinned := make(map[domain.AccountIdentity]bool, len(overrides))
	for _, override := range overrides {
		pinned[override.Identity] = override.Enabled
	}

	known := lo.SliceToMap(accounts, func(a domain.Account) (domain.AccountIdentity, struct{}) {
		return a.Identity, struct{}{}
	})
	var unknown []error
	for id := range pinned {
		if _, ok := known[id]; !ok {
			unknown = append(unknown, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, id))
		}
	}
	if len(unknown) > 0 {
		return nil, errors.Join(unknown...)
	}

	observed := make([]domain.Observation, 0, len(accounts))
	for _, account := range accounts {
		enabled, err := s.observedState(ctx, account.Identity, pinned, current)
		if err != nil {
			return nil, err
		}
		observed = append(observed, domain.Observation{Account: account, Enabled: enabled})
	}

	return observed, nil
}

func (s *LocationService) observedState(ctx context.Context, id domain.AccountIdentity, pinned map[domain.AccountIdentity]bool, current func(domain.AccountIdentity) *domain.AccountState) (bool, error) {
	if enabled, ok := pinned[id]; ok {
		return enabled, nil
	}
	if state := current(id); state != nil {
		return state.Enabled, nil
	}

	enabled, err := s.registry.Enabled(ctx, id, s.ui)
	if err != nil {
		return false, fmt.Errorf("read enabled flag of %s: %w", id, err)
	}

	return enabled, nil
}
