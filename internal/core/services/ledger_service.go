package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SahajKhata/sahaj_khata_app/internal/apperrors"
	"github.com/SahajKhata/sahaj_khata_app/internal/core/domain"
	"github.com/SahajKhata/sahaj_khata_app/internal/core/ports"
	"github.com/SahajKhata/sahaj_khata_app/internal/middleware"
)

// LedgerService holds the authoritative in-memory ledger document and
// the snapshot store behind it. All mutations run under the exclusive
// lock and end with a full-state save; reads take the shared lock so
// report folds see a stable snapshot.
type LedgerService struct {
	mu    sync.RWMutex
	state *domain.LedgerState
	store ports.SnapshotStore
}

// NewLedgerService loads the persisted snapshot (if any) and returns a
// ledger service over it. A missing snapshot leaves the service
// uninitialized until Initialize is called.
func NewLedgerService(ctx context.Context, store ports.SnapshotStore) (*LedgerService, error) {
	state, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger snapshot: %w", err)
	}
	return &LedgerService{state: state, store: store}, nil
}

// IsInitialized reports whether a ledger document exists yet.
func (s *LedgerService) IsInitialized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state != nil
}

// Initialize creates the ledger document for a firm and seeds the
// given chart of accounts. It fails with ErrDuplicate when a document
// already exists.
func (s *LedgerService) Initialize(ctx context.Context, firm domain.FirmProfile, chart []domain.Account) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != nil {
		return fmt.Errorf("%w: ledger already initialized", apperrors.ErrDuplicate)
	}

	now := time.Now().UTC()
	state := domain.NewLedgerState(firm, now)
	for _, acc := range chart {
		if state.FindAccount(acc.Name) != nil {
			continue
		}
		acc.CreatedAt = now
		state.Accounts = append(state.Accounts, acc)
	}
	s.state = state

	if err := s.store.Save(ctx, s.state); err != nil {
		s.state = nil
		return fmt.Errorf("failed to persist initial ledger state: %w", err)
	}
	logger.Info("Ledger initialized",
		slog.String("org_name", firm.OrgName),
		slog.Int("seed_accounts", len(state.Accounts)))
	return nil
}

// Firm returns the firm profile.
func (s *LedgerService) Firm() (domain.FirmProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state == nil {
		return domain.FirmProfile{}, apperrors.ErrNotInitialized
	}
	return s.state.Firm, nil
}

// UpdateFirm replaces the mutable firm settings. Opening capital is
// fixed at setup time and is deliberately not touched here; changing
// it would silently break the balance sheet equity accrual.
func (s *LedgerService) UpdateFirm(ctx context.Context, firm domain.FirmProfile) error {
	return s.Update(ctx, func(state *domain.LedgerState) error {
		firm.OpeningCapital = state.Firm.OpeningCapital
		state.Firm = firm
		return nil
	})
}

// FindAccount looks up an account by its case-sensitive name.
func (s *LedgerService) FindAccount(name string) (domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state == nil {
		return domain.Account{}, apperrors.ErrNotInitialized
	}
	acc := s.state.FindAccount(name)
	if acc == nil {
		return domain.Account{}, fmt.Errorf("%w: account %q", apperrors.ErrNotFound, name)
	}
	return *acc, nil
}

// ListAccounts returns a copy of the account registry.
func (s *LedgerService) ListAccounts() ([]domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state == nil {
		return nil, apperrors.ErrNotInitialized
	}
	accounts := make([]domain.Account, len(s.state.Accounts))
	copy(accounts, s.state.Accounts)
	return accounts, nil
}

// AddAccount registers an account with an explicit type. It fails with
// ErrDuplicate when the name is already taken; callers that want
// create-if-absent semantics use EnsureAccount instead.
func (s *LedgerService) AddAccount(ctx context.Context, account domain.Account) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if account.Name == "" {
		return fmt.Errorf("%w: account name", apperrors.ErrMissingField)
	}
	if !domain.ValidAccountType(account.AccountType) {
		return fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, account.AccountType)
	}
	err := s.Update(ctx, func(state *domain.LedgerState) error {
		if state.FindAccount(account.Name) != nil {
			return fmt.Errorf("%w: account %q", apperrors.ErrDuplicate, account.Name)
		}
		account.CreatedAt = time.Now().UTC()
		state.Accounts = append(state.Accounts, account)
		return nil
	})
	if err != nil {
		return err
	}
	logger.Info("Account registered",
		slog.String("account", account.Name),
		slog.String("account_type", string(account.AccountType)))
	return nil
}

// EnsureAccount is the idempotent account-creation entry point: it
// returns the existing account when present, otherwise creates one
// typed by the name classifier. The fallback hint applies only when
// the classifier yields nothing, which in practice it never does since
// it terminates at Expense; the hint is kept for contract clarity.
func (s *LedgerService) EnsureAccount(ctx context.Context, name string, fallback domain.AccountType) (domain.Account, error) {
	if name == "" {
		return domain.Account{}, fmt.Errorf("%w: account name", apperrors.ErrMissingField)
	}

	s.mu.RLock()
	if s.state == nil {
		s.mu.RUnlock()
		return domain.Account{}, apperrors.ErrNotInitialized
	}
	if acc := s.state.FindAccount(name); acc != nil {
		existing := *acc
		s.mu.RUnlock()
		return existing, nil
	}
	s.mu.RUnlock()

	var created domain.Account
	err := s.Update(ctx, func(state *domain.LedgerState) error {
		created = ensureAccount(state, name, fallback)
		return nil
	})
	if err != nil {
		return domain.Account{}, err
	}
	return created, nil
}

// ensureAccount creates the named account in state if absent and
// returns it. Callers hold the exclusive lock.
func ensureAccount(state *domain.LedgerState, name string, fallback domain.AccountType) domain.Account {
	if acc := state.FindAccount(name); acc != nil {
		return *acc
	}
	accountType := domain.GuessAccountType(name)
	if accountType == "" && domain.ValidAccountType(fallback) {
		accountType = fallback
	}
	created := domain.Account{
		Name:        name,
		AccountType: accountType,
		CreatedAt:   time.Now().UTC(),
	}
	state.Accounts = append(state.Accounts, created)
	return created
}

// AppendJournalEntry inserts an entry without validation; validating
// belongs to the posting engine. The entry is visible to reports as
// soon as the call returns.
func (s *LedgerService) AppendJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	return s.Update(ctx, func(state *domain.LedgerState) error {
		state.Journals = append(state.Journals, entry)
		return nil
	})
}

// ListJournalEntries returns entries most-recent-first. A limit <= 0
// means no bound.
func (s *LedgerService) ListJournalEntries(limit int) ([]domain.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state == nil {
		return nil, apperrors.ErrNotInitialized
	}
	n := len(s.state.Journals)
	count := n
	if limit > 0 && limit < n {
		count = limit
	}
	entries := make([]domain.JournalEntry, 0, count)
	for i := n - 1; i >= n-count; i-- {
		entries = append(entries, s.state.Journals[i])
	}
	return entries, nil
}

// View runs fn against the current state under the shared lock. fn
// must not retain or mutate the state.
func (s *LedgerService) View(fn func(state *domain.LedgerState) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state == nil {
		return apperrors.ErrNotInitialized
	}
	return fn(s.state)
}

// Update runs fn against the state under the exclusive lock and, when
// fn succeeds, persists the full snapshot. Composite operations (split
// postings, invoices) go through a single Update so they commit or
// fail as one unit. A failed save is reported to the caller; the
// in-memory mutation stands and the next successful save rewrites the
// complete document.
func (s *LedgerService) Update(ctx context.Context, fn func(state *domain.LedgerState) error) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return apperrors.ErrNotInitialized
	}
	if err := fn(s.state); err != nil {
		return err
	}
	if err := s.store.Save(ctx, s.state); err != nil {
		logger.Error("Failed to persist ledger snapshot", slog.String("error", err.Error()))
		return fmt.Errorf("failed to persist ledger snapshot: %w", err)
	}
	return nil
}
