// Package chart provides the default chart of accounts seeded into a
// new ledger. A yaml file can override the built-in list.
package chart

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/SahajKhata/sahaj_khata_app/internal/core/domain"
)

// seedAccount is one yaml entry in a chart file.
type seedAccount struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

type chartFile struct {
	Accounts []seedAccount `yaml:"accounts"`
}

// Default returns the built-in chart of accounts for a small GST firm.
func Default() []domain.Account {
	return []domain.Account{
		{Name: "Cash", AccountType: domain.Asset},
		{Name: "Bank", AccountType: domain.Asset},
		{Name: "Accounts Receivable", AccountType: domain.Asset},
		{Name: "Inventory", AccountType: domain.Asset},
		{Name: "Input GST", AccountType: domain.Asset},

		{Name: "Accounts Payable", AccountType: domain.Liability},
		{Name: "Output GST", AccountType: domain.Liability},

		{Name: "Capital", AccountType: domain.Equity},
		{Name: "Retained Earnings", AccountType: domain.Equity},

		{Name: "Sales", AccountType: domain.Income},
		{Name: "Other Income", AccountType: domain.Income},

		{Name: "Purchases", AccountType: domain.Expense},
		{Name: "COGS", AccountType: domain.Expense},
		{Name: "Rent Expense", AccountType: domain.Expense},
		{Name: "Salary Expense", AccountType: domain.Expense},
		{Name: "Electricity Expense", AccountType: domain.Expense},
		{Name: "Misc Expense", AccountType: domain.Expense},
	}
}

// Load reads a chart file. An empty path returns the built-in default.
func Load(path string) ([]domain.Account, error) {
	if path == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read chart file %s: %w", path, err)
	}
	var file chartFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse chart file %s: %w", path, err)
	}

	accounts := make([]domain.Account, 0, len(file.Accounts))
	for _, seed := range file.Accounts {
		accountType := domain.AccountType(seed.Type)
		if seed.Name == "" {
			return nil, fmt.Errorf("chart file %s: account with empty name", path)
		}
		if !domain.ValidAccountType(accountType) {
			return nil, fmt.Errorf("chart file %s: unknown account type %q for %q", path, seed.Type, seed.Name)
		}
		accounts = append(accounts, domain.Account{Name: seed.Name, AccountType: accountType})
	}
	return accounts, nil
}
