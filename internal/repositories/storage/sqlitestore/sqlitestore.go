// Package sqlitestore persists the ledger snapshot in a single-row
// SQLite key-value table. The schema is created inline at open; there
// is no migration history for a one-table document store.
package sqlitestore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/SahajKhata/sahaj_khata_app/internal/core/domain"
)

const snapshotKey = "ledger_v1"

const schema = `
CREATE TABLE IF NOT EXISTS ledger_snapshots (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// Store is a SQLite-backed SnapshotStore.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database file and ensures the snapshot
// table exists. WAL mode keeps readers unblocked during saves.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	connStr := fmt.Sprintf("file:%s?_journal_mode=WAL", dbPath)
	db, err := sql.Open("sqlite3", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads the snapshot row. A missing row means no snapshot yet.
func (s *Store) Load(ctx context.Context) (*domain.LedgerState, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM ledger_snapshots WHERE key = ?`, snapshotKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger snapshot: %w", err)
	}
	var state domain.LedgerState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, fmt.Errorf("failed to decode ledger snapshot: %w", err)
	}
	return &state, nil
}

// Save upserts the snapshot row.
func (s *Store) Save(ctx context.Context, state *domain.LedgerState) error {
	doc, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode ledger state: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
INSERT INTO ledger_snapshots (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		snapshotKey, string(doc))
	if err != nil {
		return fmt.Errorf("failed to write ledger snapshot: %w", err)
	}
	return nil
}
