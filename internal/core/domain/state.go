package domain

import "time"

// LedgerState is the full ledger document for one firm: the account
// registry, the journal sequence and the collaborating records. It is
// persisted as a single snapshot after every mutation.
//
// Journals are held in arrival order (oldest first); listing reverses
// so the most recent entry comes out first. Reports treat the sequence
// as an unordered multiset except for monthly bucketing.
type LedgerState struct {
	Firm      FirmProfile     `json:"firm"`
	Accounts  []Account       `json:"accounts"`
	Journals  []JournalEntry  `json:"journals"`
	Inventory []InventoryItem `json:"inventory"`
	Invoices  []Invoice       `json:"invoices"`
	Counters  Counters        `json:"counters"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Counters holds monotonic sequence numbers for generated document
// references.
type Counters struct {
	Invoice int `json:"invoice"`
}

// NewLedgerState returns an empty ledger document for the given firm.
func NewLedgerState(firm FirmProfile, now time.Time) *LedgerState {
	return &LedgerState{
		Firm:      firm,
		Accounts:  []Account{},
		Journals:  []JournalEntry{},
		Inventory: []InventoryItem{},
		Invoices:  []Invoice{},
		Counters:  Counters{Invoice: 1},
		CreatedAt: now,
	}
}

// FindAccount returns the account with the given name, or nil. Names
// are case-sensitive unique keys.
func (s *LedgerState) FindAccount(name string) *Account {
	for i := range s.Accounts {
		if s.Accounts[i].Name == name {
			return &s.Accounts[i]
		}
	}
	return nil
}

// FindInventoryItem returns the item with the given name, or nil.
func (s *LedgerState) FindInventoryItem(name string) *InventoryItem {
	for i := range s.Inventory {
		if s.Inventory[i].Name == name {
			return &s.Inventory[i]
		}
	}
	return nil
}
