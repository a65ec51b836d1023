package application

import (
	"github.com/bnema/locations-cli/internal/domain"
	"github.com/samber/lo"
)

type AccountStateView struct {
	Username   string `json:"username"`
	ProtocolID string `json:"protocol_id"`
	Alias      string `json:"alias,omitempty"`
	Enabled    bool   `json:"enabled"`
	Resolved   bool   `json:"resolved"`
}

type LocationView struct {
	Name     string             `json:"name"`
	Active   bool               `json:"active"`
	Accounts []AccountStateView `json:"accounts"`
}

func (v LocationView) EnabledCount() int {
	return lo.CountBy(v.Accounts, func(a AccountStateView) bool { return a.Enabled && a.Resolved })
}

func newLocationView(name string, states []*domain.AccountState, last string) LocationView {
	accounts := lo.FilterMap(states, func(state *domain.AccountState, _ int) (AccountStateView, bool) {
		if state == nil || state.Ref == nil {
			return AccountStateView{}, false
		}
		return accountStateView(state), true
	})

	return LocationView{Name: name, Active: name == last, Accounts: accounts}
}

func accountStateView(state *domain.AccountState) AccountStateView {
	id := state.Ref.Identity()
	view := AccountStateView{
		Username:   id.Username,
		ProtocolID: id.ProtocolID,
		Enabled:    state.Enabled,
	}

	switch ref := state.Ref.(type) {
	case domain.ResolvedAccount:
		view.Resolved = true
		view.Alias = ref.Account.Alias
	case domain.UnresolvedAccount:
		view.Resolved = false
	}

	return view
}
