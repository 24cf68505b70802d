package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SahajKhata/sahaj_khata_app/internal/apperrors"
	"github.com/SahajKhata/sahaj_khata_app/internal/core/domain"
	"github.com/SahajKhata/sahaj_khata_app/internal/middleware"
)

// InventoryService maintains the stocked items. The ledger core reads
// the item list for valuation; quantity changes come from here,
// from invoices, and from quantity-bearing postings.
type InventoryService struct {
	ledger *LedgerService
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(ledger *LedgerService) *InventoryService {
	return &InventoryService{ledger: ledger}
}

// UpsertItem creates the named item or replaces its attributes. The
// item name is the unique key, matching the account-registry
// convention.
func (s *InventoryService) UpsertItem(ctx context.Context, item domain.InventoryItem) (*domain.InventoryItem, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if item.Name == "" {
		return nil, fmt.Errorf("%w: item name", apperrors.ErrMissingField)
	}

	var stored domain.InventoryItem
	err := s.ledger.Update(ctx, func(state *domain.LedgerState) error {
		existing := state.FindInventoryItem(item.Name)
		if existing == nil {
			item.ItemID = uuid.NewString()
			state.Inventory = append(state.Inventory, item)
			stored = item
			return nil
		}
		item.ItemID = existing.ItemID
		*existing = item
		stored = item
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Inventory item saved",
		slog.String("item", stored.Name),
		slog.String("quantity", stored.Quantity.String()))
	return &stored, nil
}

// ListItems returns a copy of the inventory.
func (s *InventoryService) ListItems(ctx context.Context) ([]domain.InventoryItem, error) {
	var items []domain.InventoryItem
	err := s.ledger.View(func(state *domain.LedgerState) error {
		items = make([]domain.InventoryItem, len(state.Inventory))
		copy(items, state.Inventory)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// AdjustQuantity shifts an item's quantity by delta (negative for
// sales, positive for purchases). Unknown items are ignored: stock
// tracking is best-effort alongside the ledger, never a posting
// blocker.
func (s *InventoryService) AdjustQuantity(ctx context.Context, name string, delta decimal.Decimal) error {
	return s.ledger.Update(ctx, func(state *domain.LedgerState) error {
		adjustQuantity(state, name, delta)
		return nil
	})
}

// adjustQuantity applies a stock delta inside an existing update.
func adjustQuantity(state *domain.LedgerState, name string, delta decimal.Decimal) {
	item := state.FindInventoryItem(name)
	if item == nil {
		return
	}
	item.Quantity = item.Quantity.Add(delta)
}
