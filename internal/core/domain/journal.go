package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry sources recorded in JournalEntry.Meta under the "source" key.
const (
	SourceManual  = "manual"
	SourceAI      = "ai"
	SourceInvoice = "invoice"
	SourceSystem  = "system"
)

// JournalEntry is a single double-entry posting: the amount is debited
// to one account and credited to another. Entries are immutable once
// recorded; corrections are made with offsetting entries.
type JournalEntry struct {
	EntryID       string            `json:"entryID"`
	JournalDate   time.Time         `json:"journalDate"`
	DebitAccount  string            `json:"debitAccount"`
	CreditAccount string            `json:"creditAccount"`
	Amount        decimal.Decimal   `json:"amount"`
	Narration     string            `json:"narration"`
	Meta          map[string]string `json:"meta,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
}

// MonthKey returns the YYYY-MM bucket the entry falls in.
// Lexicographic order on month keys is chronological order.
func (e JournalEntry) MonthKey() string {
	return e.JournalDate.Format("2006-01")
}

// JournalDateLayout is the wire format for journal dates: a calendar
// date with no time component.
const JournalDateLayout = "2006-01-02"
