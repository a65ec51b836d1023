package toml

import "github.com/bnema/locations-cli/internal/domain"

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int             `toml:"version"`
	Accounts []accountSchema `toml:"accounts"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s *fileSchema) indexOf(id domain.AccountIdentity) int {
	for i, entry := range s.Accounts {
		if entry.Username == id.Username && entry.ProtocolID == id.ProtocolID {
			return i
		}
	}
	return -1
}

type accountSchema struct {
	Username   string `toml:"username"`
	ProtocolID string `toml:"protocol_id"`
	Alias      string `toml:"alias,omitempty"`
	// Enabled is keyed by UI namespace.
	Enabled map[string]bool `toml:"enabled,omitempty"`
}

func toSchema(account domain.Account) accountSchema {
	return accountSchema{
		Username:   account.Identity.Username,
		ProtocolID: account.Identity.ProtocolID,
		Alias:      account.Alias,
	}
}

func fromSchema(entry accountSchema) domain.Account {
	return domain.Account{
		Identity: domain.AccountIdentity{Username: entry.Username, ProtocolID: entry.ProtocolID},
		Alias:    entry.Alias,
	}
}
