package dto

import (
	"time"

	"github.com/SahajKhata/sahaj_khata_app/internal/core/domain"
)

// CreateAccountRequest defines the payload for registering an account
// with an explicit type.
type CreateAccountRequest struct {
	Name        string             `json:"name" binding:"required"`
	AccountType domain.AccountType `json:"accountType" binding:"required"`
}

// EnsureAccountRequest defines the payload for the idempotent
// create-if-absent path; the type hint is optional.
type EnsureAccountRequest struct {
	Name     string             `json:"name" binding:"required"`
	TypeHint domain.AccountType `json:"typeHint"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	Name        string             `json:"name"`
	AccountType domain.AccountType `json:"accountType"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// ListAccountsResponse wraps an account listing.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain.Account to its response DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		Name:        a.Name,
		AccountType: a.AccountType,
		CreatedAt:   a.CreatedAt,
	}
}

// ToAccountResponses converts a slice of accounts.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	responses := make([]AccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = ToAccountResponse(&accounts[i])
	}
	return responses
}
