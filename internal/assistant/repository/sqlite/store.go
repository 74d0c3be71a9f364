package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"personal-task-assistant/internal/assistant/repository"
	"personal-task-assistant/internal/model"
	"personal-task-assistant/pkg/log"
)

const currentVersion = 1

// Blob keys. Each holds one whole collection as JSON.
const (
	keyState    = "state"
	keyAccounts = "accounts"
)

// Store is the SQLite-backed StateRepository.
type Store struct {
	db *sql.DB
	l  log.Logger
}

var _ repository.StateRepository = (*Store)(nil)

// New opens (or creates) the SQLite database at dbPath and runs migrations.
func New(dbPath string, l log.Logger) (*Store, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db, l: l}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// NewMemory creates an in-memory store for testing.
func NewMemory(l log.Logger) (*Store, error) {
	return New(":memory:", l)
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}

	if version >= currentVersion {
		return nil
	}

	if version < 1 {
		const ddl = `
		CREATE TABLE IF NOT EXISTS blobs (
			key        TEXT PRIMARY KEY,
			value      BLOB NOT NULL,
			updated_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ','now'))
		);`
		if _, err := s.db.Exec(ddl); err != nil {
			return fmt.Errorf("create blobs table: %w", err)
		}
	}

	_, err := s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentVersion))
	return err
}

// Load returns the persisted task/event state. A missing or corrupt blob
// yields empty collections so the application starts usable either way.
func (s *Store) Load(ctx context.Context) (repository.State, error) {
	var state repository.State

	raw, err := s.readBlob(ctx, keyState)
	if err != nil {
		return repository.State{}, err
	}
	if raw == nil {
		return repository.State{}, nil
	}

	if err := json.Unmarshal(raw, &state); err != nil {
		s.l.Warnf(ctx, "sqlite: corrupt state blob, resetting to empty: %v", err)
		return repository.State{}, nil
	}
	return state, nil
}

// SaveState writes the whole task/event blob.
func (s *Store) SaveState(ctx context.Context, state repository.State) error {
	return s.writeBlob(ctx, keyState, state)
}

// LoadAccounts returns the roster, silently dropping any account whose
// expiry is not strictly in the future. A corrupt blob resets to empty.
func (s *Store) LoadAccounts(ctx context.Context) ([]model.GoogleAccount, error) {
	raw, err := s.readBlob(ctx, keyAccounts)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var accounts []model.GoogleAccount
	if err := json.Unmarshal(raw, &accounts); err != nil {
		s.l.Warnf(ctx, "sqlite: corrupt accounts blob, resetting to empty: %v", err)
		return nil, nil
	}

	now := time.Now()
	kept := accounts[:0]
	for _, acc := range accounts {
		if acc.Expired(now) {
			s.l.Debugf(ctx, "sqlite: dropping expired account %s", acc.Email)
			continue
		}
		kept = append(kept, acc)
	}
	return kept, nil
}

// SaveAccounts writes the whole account roster blob.
func (s *Store) SaveAccounts(ctx context.Context, accounts []model.GoogleAccount) error {
	if accounts == nil {
		accounts = []model.GoogleAccount{}
	}
	return s.writeBlob(ctx, keyAccounts, accounts)
}

func (s *Store) readBlob(ctx context.Context, key string) ([]byte, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM blobs WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read blob %q: %w", key, err)
	}
	return raw, nil
}

func (s *Store) writeBlob(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal blob %q: %w", key, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO blobs (key, value, updated_at)
		VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%SZ','now'))
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`,
		key, raw)
	if err != nil {
		return fmt.Errorf("write blob %q: %w", key, err)
	}
	return nil
}
