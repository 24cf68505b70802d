package ports

import (
	"context"

	"github.com/SahajKhata/sahaj_khata_app/internal/core/domain"
)

// SnapshotStore persists the full ledger document. The ledger core
// calls Save after every mutating operation with the entire state;
// the medium and encoding are the store's concern.
type SnapshotStore interface {
	// Load returns the stored ledger state, or (nil, nil) when no
	// snapshot exists yet.
	Load(ctx context.Context) (*domain.LedgerState, error)
	// Save overwrites the stored snapshot with the given state.
	Save(ctx context.Context, state *domain.LedgerState) error
}
