package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SahajKhata/sahaj_khata_app/internal/apperrors"
	"github.com/SahajKhata/sahaj_khata_app/internal/dto"
)

func TestParseJournalDate(t *testing.T) {
	parsed, err := dto.ParseJournalDate("2025-04-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC), parsed)
}

func TestParseJournalDate_Empty(t *testing.T) {
	_, err := dto.ParseJournalDate("")
	assert.ErrorIs(t, err, apperrors.ErrMissingField)
}

func TestParseJournalDate_BadFormat(t *testing.T) {
	for _, input := range []string{"10-04-2025", "2025/04/10", "2025-4-1", "yesterday"} {
		_, err := dto.ParseJournalDate(input)
		assert.ErrorIs(t, err, apperrors.ErrValidation, "input %q", input)
	}
}
