package domain

import (
	"fmt"
	"strings"
)

// AccountIdentity is the registry key of a network account. Equality is exact
// and case-sensitive on both fields.
type AccountIdentity struct {
	Username   string
	ProtocolID string
}

func (id AccountIdentity) String() string {
	return id.Username + ":" + id.ProtocolID
}

// ParseAccountIdentity parses the "username:protocol-id" form used on the
// command line.
func ParseAccountIdentity(raw string) (AccountIdentity, error) {
	username, protocolID, ok := strings.Cut(strings.TrimSpace(raw), ":")
	if !ok || username == "" || protocolID == "" || strings.Contains(protocolID, ":") {
		return AccountIdentity{}, fmt.Errorf("%w: %q (want username:protocol-id)", ErrInvalidAccountIdentity, raw)
	}

	return AccountIdentity{Username: username, ProtocolID: protocolID}, nil
}

type Account struct {
	Identity AccountIdentity
	Alias    string
}

// AccountRef is either a ResolvedAccount or an UnresolvedAccount.
type AccountRef interface {
	Identity() AccountIdentity
	isAccountRef()
}

type ResolvedAccount struct {
	Account Account
}

func (r ResolvedAccount) Identity() AccountIdentity { return r.Account.Identity }
func (ResolvedAccount) isAccountRef()               {}

// UnresolvedAccount keeps a persisted identity that no registry account
// matched at load time. It is never applied and never matched.
type UnresolvedAccount struct {
	ID AccountIdentity
}

func (u UnresolvedAccount) Identity() AccountIdentity { return u.ID }
func (UnresolvedAccount) isAccountRef()                {}

func IsResolved(ref AccountRef) bool {
	_, ok := ref.(ResolvedAccount)
	return ok
}

type AccountState struct {
	Ref     AccountRef
	Enabled bool
}

func NewAccountState(account Account, enabled bool) *AccountState {
	return &AccountState{Ref: ResolvedAccount{Account: account}, Enabled: enabled}
}
