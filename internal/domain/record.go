package domain

import (
	"fmt"
	"strings"
)

const (
	recordSeparator = ":"
	recordFields    = 4

	StateEnabled  = "enabled"
	StateDisabled = "disabled"
)

// Record is one persisted "<location>:<username>:<protocol-id>:<state>" line.
// Colons inside any field are not escaped and make the record malformed.
type Record struct {
	Location string
	Identity AccountIdentity
	Enabled  bool
}

func ParseRecord(raw string) (Record, error) {
	fields := strings.Split(raw, recordSeparator)
	if len(fields) != recordFields {
		return Record{}, fmt.Errorf("%w %q: want %d fields, got %d", ErrMalformedRecord, raw, recordFields, len(fields))
	}

	location, username, protocolID, state := fields[0], fields[1], fields[2], fields[3]
	switch {
	case location == "":
		return Record{}, fmt.Errorf("%w %q: empty location", ErrMalformedRecord, raw)
	case username == "":
		return Record{}, fmt.Errorf("%w %q: empty username", ErrMalformedRecord, raw)
	case protocolID == "":
		return Record{}, fmt.Errorf("%w %q: empty protocol id", ErrMalformedRecord, raw)
	}

	var enabled bool
	switch state {
	case StateEnabled:
		enabled = true
	case StateDisabled:
		enabled = false
	default:
		return Record{}, fmt.Errorf("%w %q: unknown state %q", ErrMalformedRecord, raw, state)
	}

	return Record{
		Location: location,
		Identity: AccountIdentity{Username: username, ProtocolID: protocolID},
		Enabled:  enabled,
	}, nil
}

func (r Record) String() string {
	return strings.Join([]string{r.Location, r.Identity.Username, r.Identity.ProtocolID, stateLabel(r.Enabled)}, recordSeparator)
}

func stateLabel(enabled bool) string {
	if enabled {
		return StateEnabled
	}
	return StateDisabled
}
