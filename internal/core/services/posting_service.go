package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SahajKhata/sahaj_khata_app/internal/apperrors"
	"github.com/SahajKhata/sahaj_khata_app/internal/core/domain"
	"github.com/SahajKhata/sahaj_khata_app/internal/middleware"
)

// PostingInput describes one proposed double-entry posting.
type PostingInput struct {
	Date          time.Time
	DebitAccount  string
	CreditAccount string
	Amount        decimal.Decimal
	Narration     string
	Meta          map[string]string
}

// PostingService validates and commits journal entries. It is the sole
// mutation path into the journal sequence: accounts are auto-created
// through the classifier, every committed entry is immutable, and the
// snapshot is saved before the call returns.
type PostingService struct {
	ledger *LedgerService
}

// NewPostingService creates a new PostingService.
func NewPostingService(ledger *LedgerService) *PostingService {
	return &PostingService{ledger: ledger}
}

// validate checks a single posting input against the posting contract.
func (s *PostingService) validate(in PostingInput) error {
	if in.Date.IsZero() {
		return fmt.Errorf("%w: date", apperrors.ErrMissingField)
	}
	if in.DebitAccount == "" {
		return fmt.Errorf("%w: debit account", apperrors.ErrMissingField)
	}
	if in.CreditAccount == "" {
		return fmt.Errorf("%w: credit account", apperrors.ErrMissingField)
	}
	if in.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: got %s", apperrors.ErrInvalidAmount, in.Amount.String())
	}
	if in.DebitAccount == in.CreditAccount {
		return fmt.Errorf("%w: debit and credit account must differ", apperrors.ErrValidation)
	}
	return nil
}

// buildEntry materializes a validated input into an immutable entry,
// creating the referenced accounts in state as needed.
func buildEntry(state *domain.LedgerState, in PostingInput, now time.Time) domain.JournalEntry {
	ensureAccount(state, in.DebitAccount, domain.Expense)
	ensureAccount(state, in.CreditAccount, domain.Expense)

	meta := in.Meta
	if meta == nil {
		meta = map[string]string{"source": domain.SourceManual}
	}
	return domain.JournalEntry{
		EntryID:       uuid.NewString(),
		JournalDate:   in.Date,
		DebitAccount:  in.DebitAccount,
		CreditAccount: in.CreditAccount,
		Amount:        in.Amount,
		Narration:     in.Narration,
		Meta:          meta,
		CreatedAt:     now,
	}
}

// Post validates and commits a single posting. On success the entry is
// appended and the snapshot saved; on any validation failure nothing
// changes.
func (s *PostingService) Post(ctx context.Context, in PostingInput) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.validate(in); err != nil {
		return nil, err
	}

	var entry domain.JournalEntry
	err := s.ledger.Update(ctx, func(state *domain.LedgerState) error {
		entry = buildEntry(state, in, time.Now().UTC())
		state.Journals = append(state.Journals, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Journal entry posted",
		slog.String("entry_id", entry.EntryID),
		slog.String("debit", entry.DebitAccount),
		slog.String("credit", entry.CreditAccount),
		slog.String("amount", entry.Amount.String()))
	return &entry, nil
}

// PostSplit commits a multi-leg posting as one unit: every leg is
// validated up front and all legs are appended under a single lock
// with a single snapshot save, so either all of them land or none do.
// GST splits go through here to avoid a half-posted tax leg.
func (s *PostingService) PostSplit(ctx context.Context, legs []PostingInput) ([]domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(legs) == 0 {
		return nil, fmt.Errorf("%w: posting legs", apperrors.ErrMissingField)
	}
	for i, leg := range legs {
		if err := s.validate(leg); err != nil {
			return nil, fmt.Errorf("leg %d: %w", i+1, err)
		}
	}

	entries := make([]domain.JournalEntry, 0, len(legs))
	err := s.ledger.Update(ctx, func(state *domain.LedgerState) error {
		now := time.Now().UTC()
		for _, leg := range legs {
			entry := buildEntry(state, leg, now)
			state.Journals = append(state.Journals, entry)
			entries = append(entries, entry)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Split posting committed", slog.Int("legs", len(entries)))
	return entries, nil
}
