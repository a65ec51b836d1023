package toml

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/locations-cli/internal/adapters/tomlfile"
	"github.com/bnema/locations-cli/internal/domain"
	"github.com/bnema/locations-cli/internal/ports"
	"github.com/spf13/viper"
)

const (
	registryPathKey  = "registry.path"
	registryFileName = "accounts.toml"
	fileLabel        = "accounts"
)

// Registry is a file-backed account registry standing in for the host's
// account list.
type Registry struct {
	path string
	mu   *sync.RWMutex
}

var _ ports.AccountRegistry = (*Registry)(nil)

func NewRegistry(cfg *viper.Viper) (*Registry, error) {
	path, err := tomlfile.ResolvePath(cfg, registryPathKey, registryFileName)
	if err != nil {
		return nil, err
	}

	return &Registry{path: path, mu: tomlfile.LockForPath(path)}, nil
}

func (r *Registry) Find(ctx context.Context, id domain.AccountIdentity) (domain.Account, error) {
	file, err := r.read(ctx)
	if err != nil {
		return domain.Account{}, err
	}

	i := file.indexOf(id)
	if i < 0 {
		return domain.Account{}, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, id)
	}

	return fromSchema(file.Accounts[i]), nil
}

func (r *Registry) List(ctx context.Context) ([]domain.Account, error) {
	file, err := r.read(ctx)
	if err != nil {
		return nil, err
	}

	accounts := make([]domain.Account, 0, len(file.Accounts))
	for _, entry := range file.Accounts {
		accounts = append(accounts, fromSchema(entry))
	}

	return accounts, nil
}

func (r *Registry) Enabled(ctx context.Context, id domain.AccountIdentity, ui string) (bool, error) {
	file, err := r.read(ctx)
	if err != nil {
		return false, err
	}

	i := file.indexOf(id)
	if i < 0 {
		return false, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, id)
	}

	return file.Accounts[i].Enabled[ui], nil
}

func (r *Registry) SetEnabled(ctx context.Context, id domain.AccountIdentity, ui string, enabled bool) error {
	return r.update(ctx, func(file *fileSchema) error {
		i := file.indexOf(id)
		if i < 0 {
			return fmt.Errorf("%w: %s", domain.ErrAccountNotFound, id)
		}

		if file.Accounts[i].Enabled == nil {
			file.Accounts[i].Enabled = map[string]bool{}
		}
		file.Accounts[i].Enabled[ui] = enabled
		return nil
	})
}

// Save adds the account or updates its alias. Enabled flags are kept.
func (r *Registry) Save(ctx context.Context, account domain.Account) error {
	return r.update(ctx, func(file *fileSchema) error {
		encoded := toSchema(account)
		if i := file.indexOf(account.Identity); i >= 0 {
			encoded.Enabled = file.Accounts[i].Enabled
			file.Accounts[i] = encoded
			return nil
		}

		file.Accounts = append(file.Accounts, encoded)
		return nil
	})
}

func (r *Registry) Delete(ctx context.Context, id domain.AccountIdentity) error {
	return r.update(ctx, func(file *fileSchema) error {
		i := file.indexOf(id)
		if i < 0 {
			return fmt.Errorf("%w: %s", domain.ErrAccountNotFound, id)
		}

		file.Accounts = append(file.Accounts[:i], file.Accounts[i+1:]...)
		return nil
	})
}

func (r *Registry) read(ctx context.Context) (fileSchema, error) {
	if err := ctx.Err(); err != nil {
		return fileSchema{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.readSchema()
}

func (r *Registry) update(ctx context.Context, mutate func(*fileSchema) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	if err := mutate(&file); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	file.applyDefaults()
	return tomlfile.Write(r.path, fileLabel, file)
}

func (r *Registry) readSchema() (fileSchema, error) {
	var file fileSchema
	if _, err := tomlfile.Read(r.path, fileLabel, &file); err != nil {
		return fileSchema{}, err
	}
	if err := tomlfile.CheckVersion(fileLabel, file.Version, currentSchemaVersion); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}
