package dto_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/SahajKhata/sahaj_khata_app/internal/apperrors"
	"github.com/SahajKhata/sahaj_khata_app/internal/core/domain"
	"github.com/SahajKhata/sahaj_khata_app/internal/dto"
)

func TestToBalanceSheetResponse_CheckZero(t *testing.T) {
	resp := dto.ToBalanceSheetResponse(&domain.BalanceSheetReport{
		Assets:      decimal.NewFromInt(1000),
		Liabilities: decimal.Zero,
		Equity:      decimal.NewFromInt(1000),
		Check:       decimal.Zero,
	})
	assert.Empty(t, resp.Warning)
}

func TestToBalanceSheetResponse_CheckNonzero(t *testing.T) {
	resp := dto.ToBalanceSheetResponse(&domain.BalanceSheetReport{
		Assets:      decimal.NewFromInt(1200),
		Liabilities: decimal.Zero,
		Equity:      decimal.NewFromInt(1000),
		Check:       decimal.NewFromInt(200),
	})
	assert.Contains(t, resp.Warning, apperrors.ErrIntegrityCheck.Error())
}
