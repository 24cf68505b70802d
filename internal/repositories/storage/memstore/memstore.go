// Package memstore keeps the ledger snapshot in process memory. It
// backs tests and dry runs; nothing survives a restart.
package memstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/SahajKhata/sahaj_khata_app/internal/core/domain"
)

// Store is an in-memory SnapshotStore. Snapshots are round-tripped
// through JSON so callers cannot alias the stored state, matching the
// isolation the durable stores provide.
type Store struct {
	mu  sync.Mutex
	doc []byte
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{}
}

// Load returns the stored snapshot, or (nil, nil) when none exists.
func (s *Store) Load(ctx context.Context) (*domain.LedgerState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc == nil {
		return nil, nil
	}
	var state domain.LedgerState
	if err := json.Unmarshal(s.doc, &state); err != nil {
		return nil, fmt.Errorf("failed to decode ledger snapshot: %w", err)
	}
	return &state, nil
}

// Save overwrites the stored snapshot.
func (s *Store) Save(ctx context.Context, state *domain.LedgerState) error {
	doc, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode ledger snapshot: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc
	return nil
}
