package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/locations-cli/internal/adapters/tomlfile"
	"github.com/bnema/locations-cli/internal/ports"
	"github.com/spf13/viper"
)

const (
	dbPathKey  = "prefs.sqlite_path"
	dbFileName = "prefs.db"
	dbDirMode  = 0o700

	kindNone       = "none"
	kindString     = "string"
	kindStringList = "string_list"
)

// Store is the SQLite implementation of ports.PreferenceStore.
type Store struct {
	db *DB
}

var _ ports.PreferenceStore = (*Store)(nil)

// NewStore opens (and migrates) the database configured under
// prefs.sqlite_path, defaulting to ~/.locations/prefs.db.
func NewStore(cfg *viper.Viper) (*Store, error) {
	path, err := tomlfile.ResolvePath(cfg, dbPathKey, dbFileName)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), dbDirMode); err != nil {
		return nil, fmt.Errorf("create prefs database directory: %w", err)
	}

	db, err := NewDB(path)
	if err != nil {
		return nil, fmt.Errorf("open prefs database: %w", err)
	}

	if err := RunMigrations(db.Writer); err != nil {
		_ = db.Close()
		return nil, err
	}

	return NewStoreWithDB(db), nil
}

func NewStoreWithDB(db *DB) *Store {
	return &Store{db: db}
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) AddNamespace(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	const query = `
		INSERT INTO pref_keys (key, kind) VALUES (?, ?)
		ON CONFLICT(key) DO NOTHING
	`

	if _, err := s.db.Writer.ExecContext(ctx, query, key, kindNone); err != nil {
		return fmt.Errorf("add namespace %s: %w", key, err)
	}

	return nil
}

func (s *Store) GetStringList(ctx context.Context, key string) ([]string, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	ok, err := s.hasKind(ctx, key, kindStringList)
	if err != nil || !ok {
		return nil, false, err
	}

	const query = `
		SELECT value FROM pref_list_items
		WHERE key = ?
		ORDER BY position
	`

	rows, err := s.db.Reader.QueryContext(ctx, query, key)
	if err != nil {
		return nil, false, fmt.Errorf("get string list %s: %w", key, err)
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, false, fmt.Errorf("scan string list %s: %w", key, err)
		}
		values = append(values, value)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("iterate string list %s: %w", key, err)
	}

	return values, true, nil
}

// SetStringList replaces the whole list for key in one transaction.
func (s *Store) SetStringList(ctx context.Context, key string, values []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := upsertKey(ctx, tx, key, kindStringList, ""); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM pref_list_items WHERE key = ?`, key); err != nil {
			return fmt.Errorf("clear string list %s: %w", key, err)
		}

		stmt, err := tx.PrepareContext(ctx, `INSERT INTO pref_list_items (key, position, value) VALUES (?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("prepare string list insert: %w", err)
		}
		defer stmt.Close()

		for i, value := range values {
			if _, err := stmt.ExecContext(ctx, key, i, value); err != nil {
				return fmt.Errorf("insert string list %s item %d: %w", key, i, err)
			}
		}

		return nil
	})
}

func (s *Store) GetString(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	const query = `SELECT value FROM pref_keys WHERE key = ? AND kind = ?`

	var value string
	err := s.db.Reader.QueryRowContext(ctx, query, key, kindString).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get string %s: %w", key, err)
	}

	return value, true, nil
}

func (s *Store) SetString(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := upsertKey(ctx, tx, key, kindString, value); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM pref_list_items WHERE key = ?`, key); err != nil {
			return fmt.Errorf("clear string list %s: %w", key, err)
		}

		return nil
	})
}

func (s *Store) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := s.db.Writer.ExecContext(ctx, `DELETE FROM pref_keys WHERE key = ?`, key); err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}

	return nil
}

func (s *Store) hasKind(ctx context.Context, key, kind string) (bool, error) {
	var stored string
	err := s.db.Reader.QueryRowContext(ctx, `SELECT kind FROM pref_keys WHERE key = ?`, key).Scan(&stored)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get kind of %s: %w", key, err)
	}

	return stored == kind, nil
}

func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.Writer.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return errors.Join(err, fmt.Errorf("rollback: %w", rollbackErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

func upsertKey(ctx context.Context, tx *sql.Tx, key, kind, value string) error {
	const query = `
		INSERT INTO pref_keys (key, kind, value) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			kind = excluded.kind,
			value = excluded.value
	`

	if _, err := tx.ExecContext(ctx, query, key, kind, value); err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}

	return nil
}
