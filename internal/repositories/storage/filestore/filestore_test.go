package filestore_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SahajKhata/sahaj_khata_app/internal/core/domain"
	"github.com/SahajKhata/sahaj_khata_app/internal/repositories/storage/filestore"
)

func TestFileStore_LoadMissingFile(t *testing.T) {
	store, err := filestore.New(filepath.Join(t.TempDir(), "ledger.json"))
	require.NoError(t, err)

	state, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "ledger.json")
	store, err := filestore.New(path)
	require.NoError(t, err)

	now := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	state := domain.NewLedgerState(domain.FirmProfile{
		OrgName:        "Sharma Traders",
		GSTEnabled:     true,
		OpeningCapital: decimal.NewFromInt(10000),
	}, now)
	state.Accounts = append(state.Accounts, domain.Account{
		Name: "Cash", AccountType: domain.Asset, CreatedAt: now,
	})
	state.Journals = append(state.Journals, domain.JournalEntry{
		EntryID:       "e1",
		JournalDate:   now,
		DebitAccount:  "Cash",
		CreditAccount: "Capital",
		Amount:        decimal.NewFromInt(10000),
		Narration:     "Opening Capital",
		CreatedAt:     now,
	})

	require.NoError(t, store.Save(context.Background(), state))

	// A fresh store over the same path sees the saved document.
	reopened, err := filestore.New(path)
	require.NoError(t, err)
	loaded, err := reopened.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, loaded)

	assert.Equal(t, "Sharma Traders", loaded.Firm.OrgName)
	assert.True(t, loaded.Firm.OpeningCapital.Equal(decimal.NewFromInt(10000)))
	require.Len(t, loaded.Accounts, 1)
	require.Len(t, loaded.Journals, 1)
	assert.True(t, loaded.Journals[0].Amount.Equal(decimal.NewFromInt(10000)))
	assert.Equal(t, 1, loaded.Counters.Invoice)
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	store, err := filestore.New(path)
	require.NoError(t, err)

	now := time.Now().UTC()
	state := domain.NewLedgerState(domain.FirmProfile{OrgName: "First"}, now)
	require.NoError(t, store.Save(context.Background(), state))

	state.Firm.OrgName = "Second"
	require.NoError(t, store.Save(context.Background(), state))

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Second", loaded.Firm.OrgName)
}
