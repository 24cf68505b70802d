package dto

import (
	"github.com/shopspring/decimal"

	"github.com/SahajKhata/sahaj_khata_app/internal/apperrors"
	"github.com/SahajKhata/sahaj_khata_app/internal/core/domain"
)

// BalancesResponse maps account name to signed balance.
type BalancesResponse struct {
	Balances map[string]decimal.Decimal `json:"balances"`
}

// BalanceSheetResponse wraps the balance sheet and carries a
// consistency warning when the check value is nonzero.
type BalanceSheetResponse struct {
	domain.BalanceSheetReport
	Warning string `json:"warning,omitempty"`
}

// ToBalanceSheetResponse attaches the integrity warning when needed.
func ToBalanceSheetResponse(report *domain.BalanceSheetReport) BalanceSheetResponse {
	resp := BalanceSheetResponse{BalanceSheetReport: *report}
	if !report.Check.IsZero() {
		resp.Warning = apperrors.ErrIntegrityCheck.Error() + ": assets do not equal liabilities plus equity"
	}
	return resp
}

// InventoryValuationResponse wraps the stock valuation figure.
type InventoryValuationResponse struct {
	Valuation decimal.Decimal `json:"valuation"`
}
