package domain

import "time"

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
)

// ValidAccountType reports whether t is one of the five known types.
func ValidAccountType(t AccountType) bool {
	switch t {
	case Asset, Liability, Equity, Income, Expense:
		return true
	}
	return false
}

// Account represents a ledger account. The name is the unique,
// case-sensitive key; the type is fixed at creation time.
type Account struct {
	Name        string      `json:"name"`
	AccountType AccountType `json:"accountType"`
	CreatedAt   time.Time   `json:"createdAt"`
}
