// Package pgstore persists the ledger snapshot as a single jsonb row
// in PostgreSQL, for deployments where the backend does not own local
// disk. One row per snapshot key; the table is created at open.
package pgstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SahajKhata/sahaj_khata_app/internal/core/domain"
)

const snapshotKey = "ledger_v1"

const schema = `
CREATE TABLE IF NOT EXISTS ledger_snapshots (
    key        TEXT PRIMARY KEY,
    value      JSONB NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// Store is a PostgreSQL-backed SnapshotStore.
type Store struct {
	pool *pgxpool.Pool
}

// New ensures the snapshot table exists and returns a store over the
// given pool. The pool's lifecycle belongs to the caller.
func New(ctx context.Context, pool *pgxpool.Pool) (*Store, error) {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return nil, fmt.Errorf("failed to initialize snapshot table: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Load reads the snapshot row. A missing row means no snapshot yet.
func (s *Store) Load(ctx context.Context) (*domain.LedgerState, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx,
		`SELECT value FROM ledger_snapshots WHERE key = $1`, snapshotKey).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger snapshot: %w", err)
	}
	var state domain.LedgerState
	if err := json.Unmarshal(raw, &state); err != nil {
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
	_, err = s.pool.Exec(ctx, `
INSERT INTO ledger_snapshots (key, value, updated_at) VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		snapshotKey, doc)
	if err != nil {
		return fmt.Errorf("failed to write ledger snapshot: %w", err)
	}
	return nil
}
