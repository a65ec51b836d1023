package application

import "github.com/bnema/locations-cli/internal/domain"

const DefaultUINamespace = "gtk-gaim"

// AccountOverride pins one account's state when a location is created or
// edited.
type AccountOverride struct {
	Identity domain.AccountIdentity
	Enabled  bool
}

type ApplyResult struct {
	Location string
	Applied  []domain.AccountIdentity
	Skipped  []domain.AccountIdentity
}
