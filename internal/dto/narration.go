package dto

import (
	"github.com/shopspring/decimal"

	"github.com/SahajKhata/sahaj_khata_app/internal/core/services"
)

// SuggestPostingRequest defines the payload for narration
// classification. Amount may be omitted when quantity and price are
// given.
type SuggestPostingRequest struct {
	Narration  string          `json:"narration" binding:"required"`
	Amount     decimal.Decimal `json:"amount"`
	Quantity   decimal.Decimal `json:"qty"`
	Price      decimal.Decimal `json:"price"`
	GSTPercent decimal.Decimal `json:"gstPercent"`
}

// SuggestedLegResponse is one proposed posting leg.
type SuggestedLegResponse struct {
	Debit  string          `json:"debit"`
	Credit string          `json:"credit"`
	Amount decimal.Decimal `json:"amount"`
}

// SuggestPostingResponse is the proposed posting for a narration.
// Nothing is recorded until the caller submits it via the posting API.
type SuggestPostingResponse struct {
	Intent    string                 `json:"intent"`
	Debit     string                 `json:"debit"`
	Credit    string                 `json:"credit"`
	Amount    decimal.Decimal        `json:"amount"`
	Narration string                 `json:"narration"`
	Party     string                 `json:"party,omitempty"`
	Split     []SuggestedLegResponse `json:"split,omitempty"`
}

// ToSuggestPostingResponse converts a services.Suggestion.
func ToSuggestPostingResponse(s *services.Suggestion) SuggestPostingResponse {
	resp := SuggestPostingResponse{
		Intent:    string(s.Intent),
		Debit:     s.Debit,
		Credit:    s.Credit,
		Amount:    s.Amount,
		Narration: s.Narration,
		Party:     s.Party,
	}
	for _, leg := range s.Split {
		resp.Split = append(resp.Split, SuggestedLegResponse{
			Debit:  leg.Debit,
			Credit: leg.Credit,
			Amount: leg.Amount,
		})
	}
	return resp
}
