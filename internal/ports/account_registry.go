package ports

import (
	"context"

	"github.com/bnema/locations-cli/internal/domain"
)

// AccountRegistry is the host's account list. Enabled flags are scoped to a UI
// namespace.
type AccountRegistry interface {
	Find(ctx context.Context, id domain.AccountIdentity) (domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
	Enabled(ctx context.Context, id domain.AccountIdentity, ui string) (bool, error)
	SetEnabled(ctx context.Context, id domain.AccountIdentity, ui string, enabled bool) error
	Save(ctx context.Context, account domain.Account) error
	Delete(ctx context.Context, id domain.AccountIdentity) error
}
