package ports

import "context"

// PreferenceStore is a flat key-value store. Getters report absence with
// ok=false instead of an error.
type PreferenceStore interface {
	AddNamespace(ctx context.Context, key string) error
	GetStringList(ctx context.Context, key string) ([]string, bool, error)
	SetStringList(ctx context.Context, key string, values []string) error
	GetString(ctx context.Context, key string) (string, bool, error)
	SetString(ctx context.Context, key string, value string) error
	Remove(ctx context.Context, key string) error
}
