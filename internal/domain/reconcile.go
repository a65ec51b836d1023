package domain

// Observation is one row of a freshly observed snapshot for a location.
type Observation struct {
	Account Account
	Enabled bool
}

// Reconcile merges observed into a copy of existing. The first resolved state
// with an equal identity is updated in place; observations without a match are
// appended. Nothing is removed and existing is not modified.
func Reconcile(existing []*AccountState, observed []Observation) []*AccountState {
	updated := make([]*AccountState, 0, len(existing)+len(observed))
	for _, state := range existing {
		if state == nil {
			continue
		}
		copied := *state
		updated = append(updated, &copied)
	}

	for _, obs := range observed {
		if match := firstResolved(updated, obs.Account.Identity); match != nil {
			match.Enabled = obs.Enabled
			continue
		}
		updated = append(updated, NewAccountState(obs.Account, obs.Enabled))
	}

	return updated
}

// FindState returns the first resolved state for id, or nil.
func FindState(states []*AccountState, id AccountIdentity) *AccountState {
	return firstResolved(states, id)
}

func firstResolved(states []*AccountState, id AccountIdentity) *AccountState {
	for _, state := range states {
		if state == nil {
			continue
		}
		ref, ok := state.Ref.(ResolvedAccount)
		if !ok {
			continue
		}
		if ref.Account.Identity == id {
			return state
		}
	}

	return nil
}
