package chart_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SahajKhata/sahaj_khata_app/internal/core/domain"
	"github.com/SahajKhata/sahaj_khata_app/internal/platform/chart"
)

func TestDefault(t *testing.T) {
	accounts := chart.Default()
	require.NotEmpty(t, accounts)

	byName := make(map[string]domain.AccountType, len(accounts))
	for _, acc := range accounts {
		require.True(t, domain.ValidAccountType(acc.AccountType), "account %q", acc.Name)
		_, dup := byName[acc.Name]
		require.False(t, dup, "duplicate account %q", acc.Name)
		byName[acc.Name] = acc.AccountType
	}

	// The GST and trading accounts the reports key on must be present.
	assert.Equal(t, domain.Asset, byName["Input GST"])
	assert.Equal(t, domain.Liability, byName["Output GST"])
	assert.Equal(t, domain.Income, byName["Sales"])
	assert.Equal(t, domain.Expense, byName["Purchases"])
	assert.Equal(t, domain.Expense, byName["COGS"])
	assert.Equal(t, domain.Equity, byName["Capital"])
}

func TestLoad_EmptyPathReturnsDefault(t *testing.T) {
	accounts, err := chart.Load("")
	require.NoError(t, err)
	assert.Equal(t, chart.Default(), accounts)
}

func TestLoad_YamlFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.yaml")
	content := `accounts:
  - { name: Cash, type: ASSET }
  - { name: Sales, type: INCOME }
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	accounts, err := chart.Load(path)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "Cash", accounts[0].Name)
	assert.Equal(t, domain.Asset, accounts[0].AccountType)
	assert.Equal(t, domain.Income, accounts[1].AccountType)
}

func TestLoad_RejectsUnknownType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.yaml")
	require.NoError(t, os.WriteFile(path, []byte("accounts:\n  - { name: Cash, type: MONEY }\n"), 0o644))

	_, err := chart.Load(path)
	assert.Error(t, err)
}

func TestLoad_RejectsEmptyName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.yaml")
	require.NoError(t, os.WriteFile(path, []byte("accounts:\n  - { name: \"\", type: ASSET }\n"), 0o644))

	_, err := chart.Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := chart.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
