package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SahajKhata/sahaj_khata_app/internal/apperrors"
	"github.com/SahajKhata/sahaj_khata_app/internal/core/domain"
)

// ParseJournalDate parses a wire date (YYYY-MM-DD, no time component).
func ParseJournalDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: date", apperrors.ErrMissingField)
	}
	t, err := time.Parse(domain.JournalDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be YYYY-MM-DD", apperrors.ErrValidation)
	}
	return t, nil
}

// CreatePostingRequest defines the payload for posting a journal entry.
type CreatePostingRequest struct {
	Date          string            `json:"date" binding:"required"`
	DebitAccount  string            `json:"debitAccount" binding:"required"`
	CreditAccount string            `json:"creditAccount" binding:"required"`
	Amount        decimal.Decimal   `json:"amount" binding:"required"`
	Narration     string            `json:"narration"`
	Meta          map[string]string `json:"meta"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	EntryID       string            `json:"entryID"`
	Date          string            `json:"date"`
	DebitAccount  string            `json:"debitAccount"`
	CreditAccount string            `json:"creditAccount"`
	Amount        decimal.Decimal   `json:"amount"`
	Narration     string            `json:"narration"`
	Meta          map[string]string `json:"meta,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
}

// ListJournalEntriesResponse wraps a journal listing.
type ListJournalEntriesResponse struct {
	Entries []JournalEntryResponse `json:"entries"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to its response DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	return JournalEntryResponse{
		EntryID:       e.EntryID,
		Date:          e.JournalDate.Format(domain.JournalDateLayout),
		DebitAccount:  e.DebitAccount,
		CreditAccount: e.CreditAccount,
		Amount:        e.Amount,
		Narration:     e.Narration,
		Meta:          e.Meta,
		CreatedAt:     e.CreatedAt,
	}
}

// ToJournalEntryResponses converts a slice of entries.
func ToJournalEntryResponses(entries []domain.JournalEntry) []JournalEntryResponse {
	responses := make([]JournalEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToJournalEntryResponse(&entries[i])
	}
	return responses
}
