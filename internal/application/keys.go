package application

import "strings"

const DefaultPrefPrefix = "/plugins/gtk/locations"

// PrefKeys names the preference entries the locations data lives under.
type PrefKeys struct {
	Namespace string
	Map       string
	Last      string
}

func KeysForPrefix(prefix string) PrefKeys {
	prefix = strings.TrimRight(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		prefix = DefaultPrefPrefix
	}

	return PrefKeys{
		Namespace: prefix,
		Map:       prefix + "/map",
		Last:      prefix + "/last",
	}
}
