package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    Record
		wantErr string
	}{
		{
			name: "enabled",
			raw:  "home:alice@x.com:prpl-jabber:enabled",
			want: Record{Location: "home", Identity: AccountIdentity{Username: "alice@x.com", ProtocolID: "prpl-jabber"}, Enabled: true},
		},
		{
			name: "disabled with spaces in location",
			raw:  "costa coffee:bob@x.com:prpl-msn:disabled",
			want: Record{Location: "costa coffee", Identity: AccountIdentity{Username: "bob@x.com", ProtocolID: "prpl-msn"}},
		},
		{name: "too few fields", raw: "home:alice@x.com:prpl-jabber", wantErr: "want 4 fields, got 3"},
		{name: "single field", raw: "home", wantErr: "want 4 fields, got 1"},
		{name: "empty string", raw: "", wantErr: "want 4 fields, got 1"},
		{name: "colon inside username", raw: "home:alice:x:prpl-jabber:enabled", wantErr: "want 4 fields, got 5"},
		{name: "unknown state", raw: "home:alice@x.com:prpl-jabber:on", wantErr: "unknown state \"on\""},
		{name: "state is case-sensitive", raw: "home:alice@x.com:prpl-jabber:Enabled", wantErr: "unknown state"},
		{name: "empty location", raw: ":alice@x.com:prpl-jabber:enabled", wantErr: "empty location"},
		{name: "empty username", raw: "home::prpl-jabber:enabled", wantErr: "empty username"},
		{name: "empty protocol", raw: "home:alice@x.com::enabled", wantErr: "empty protocol id"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseRecord(tc.raw)
			if tc.wantErr != "" {
				require.ErrorIs(t, err, ErrMalformedRecord)
				assert.ErrorContains(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRecordStringRoundTrip(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{
		"home:alice@x.com:prpl-jabber:enabled",
		"work:bob@x.com:prpl-msn:disabled",
	} {
		record, err := ParseRecord(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, record.String())
	}
}
