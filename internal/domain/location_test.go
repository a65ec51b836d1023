package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLocationName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		location string
		wantErr  string
	}{
		{name: "simple", location: "home"},
		{name: "mixed allowed characters", location: "Costa Coffee_2-floor"},
		{name: "exactly thirty characters", location: strings.Repeat("a", 30)},
		{name: "empty", location: "", wantErr: "cannot be blank"},
		{name: "thirty one characters", location: strings.Repeat("a", 31), wantErr: "the length must be between 1 and 30"},
		{name: "colon", location: "home:office", wantErr: "must contain only"},
		{name: "slash", location: "home/office", wantErr: "must contain only"},
		{name: "non ascii letter", location: "café", wantErr: "must contain only"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateLocationName(tc.location)
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidLocationName)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestParseAccountIdentity(t *testing.T) {
	t.Parallel()

	id, err := ParseAccountIdentity("alice@x.com:prpl-jabber")
	require.NoError(t, err)
	assert.Equal(t, AccountIdentity{Username: "alice@x.com", ProtocolID: "prpl-jabber"}, id)
	assert.Equal(t, "alice@x.com:prpl-jabber", id.String())

	for _, raw := range []string{"", "alice", ":prpl-jabber", "alice:", "a:b:c"} {
		_, err := ParseAccountIdentity(raw)
		assert.ErrorIs(t, err, ErrInvalidAccountIdentity, raw)
	}
}
