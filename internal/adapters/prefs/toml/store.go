package toml

import (
	"context"
	"slices"
	"sync"

	"github.com/bnema/locations-cli/internal/adapters/tomlfile"
	"github.com/bnema/locations-cli/internal/ports"
	"github.com/spf13/viper"
)

const (
	prefsPathKey  = "prefs.path"
	prefsFileName = "prefs.toml"
	fileLabel     = "prefs"
)

// Store keeps preferences in a single TOML file. Every write rewrites the
// whole file.
type Store struct {
	path string
	mu   *sync.RWMutex
}

var _ ports.PreferenceStore = (*Store)(nil)

func NewStore(cfg *viper.Viper) (*Store, error) {
	path, err := tomlfile.ResolvePath(cfg, prefsPathKey, prefsFileName)
	if err != nil {
		return nil, err
	}

	return &Store{path: path, mu: tomlfile.LockForPath(path)}, nil
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) AddNamespace(ctx context.Context, key string) error {
	return s.update(ctx, func(file *fileSchema) bool {
		if slices.Contains(file.Namespaces, key) {
			return false
		}
		file.Namespaces = append(file.Namespaces, key)
		return true
	})
}

func (s *Store) GetStringList(ctx context.Context, key string) ([]string, bool, error) {
	file, err := s.read(ctx)
	if err != nil {
		return nil, false, err
	}

	for _, entry := range file.StringLists {
		if entry.Key == key {
			return slices.Clone(entry.Values), true, nil
		}
	}

	return nil, false, nil
}

func (s *Store) SetStringList(ctx context.Context, key string, values []string) error {
	encoded := stringListSchema{Key: key, Values: slices.Clone(values)}
	if encoded.Values == nil {
		encoded.Values = []string{}
	}

	return s.update(ctx, func(file *fileSchema) bool {
		for i := range file.StringLists {
			if file.StringLists[i].Key == key {
				file.StringLists[i] = encoded
				return true
			}
		}
		file.StringLists = append(file.StringLists, encoded)
		return true
	})
}

func (s *Store) GetString(ctx context.Context, key string) (string, bool, error) {
	file, err := s.read(ctx)
	if err != nil {
		return "", false, err
	}

	for _, entry := range file.Strings {
		if entry.Key == key {
			return entry.Value, true, nil
		}
	}

	return "", false, nil
}

func (s *Store) SetString(ctx context.Context, key string, value string) error {
	return s.update(ctx, func(file *fileSchema) bool {
		for i := range file.Strings {
			if file.Strings[i].Key == key {
				file.Strings[i].Value = value
				return true
			}
		}
		file.Strings = append(file.Strings, stringSchema{Key: key, Value: value})
		return true
	})
}

func (s *Store) Remove(ctx context.Context, key string) error {
	return s.update(ctx, func(file *fileSchema) bool {
		before := len(file.Namespaces) + len(file.StringLists) + len(file.Strings)
		file.Namespaces = slices.DeleteFunc(file.Namespaces, func(ns string) bool { return ns == key })
		file.StringLists = slices.DeleteFunc(file.StringLists, func(e stringListSchema) bool { return e.Key == key })
		file.Strings = slices.DeleteFunc(file.Strings, func(e stringSchema) bool { return e.Key == key })
		return len(file.Namespaces)+len(file.StringLists)+len(file.Strings) != before
	})
}

func (s *Store) read(ctx context.Context) (fileSchema, error) {
	if err := ctx.Err(); err != nil {
		return fileSchema{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.readSchema()
}

// update applies mutate under the write lock and persists only when mutate
// reports a change.
func (s *Store) update(ctx context.Context, mutate func(*fileSchema) bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.readSchema()
	if err != nil {
		return err
	}

	if !mutate(&file) {
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	file.applyDefaults()
	return tomlfile.Write(s.path, fileLabel, file)
}

func (s *Store) readSchema() (fileSchema, error) {
	var file fileSchema
	if _, err := tomlfile.Read(s.path, fileLabel, &file); err != nil {
		return fileSchema{}, err
	}
	if err := tomlfile.CheckVersion(fileLabel, file.Version, currentSchemaVersion); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}
