package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/SahajKhata/sahaj_khata_app/internal/core/domain"
)

func TestJournalEntry_MonthKey(t *testing.T) {
	entry := domain.JournalEntry{
		JournalDate: time.Date(2025, 4, 30, 23, 59, 0, 0, time.UTC),
	}
	assert.Equal(t, "2025-04", entry.MonthKey())

	entry.JournalDate = time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-12", entry.MonthKey())
}
