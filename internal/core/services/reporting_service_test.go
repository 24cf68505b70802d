package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/SahajKhata/sahaj_khata_app/internal/core/domain"
	"github.com/SahajKhata/sahaj_khata_app/internal/core/services"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	ledger    *services.LedgerService
	posting   *services.PostingService
	reporting *services.ReportingService
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.ledger = newTestLedger(suite.T())
	suite.posting = services.NewPostingService(suite.ledger)
	suite.reporting = services.NewReportingService(suite.ledger)
}

func (suite *ReportingServiceTestSuite) post(date time.Time, debit, credit string, amount int64) {
	suite.T().Helper()
	_, err := suite.posting.Post(context.Background(), services.PostingInput{
		Date:          date,
		DebitAccount:  debit,
		CreditAccount: credit,
		Amount:        decimal.NewFromInt(amount),
	})
	require.NoError(suite.T(), err)
}

func (suite *ReportingServiceTestSuite) april() time.Time {
	return time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC)
}

func (suite *ReportingServiceTestSuite) may() time.Time {
	return time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC)
}

func (suite *ReportingServiceTestSuite) TestAccountBalances_Signed() {
	suite.post(suite.april(), "Cash", "Capital", 10000)

	balances, err := suite.reporting.AccountBalances(context.Background())
	require.NoError(suite.T(), err)
	assert.True(suite.T(), balances["Cash"].Equal(decimal.NewFromInt(10000)))
	assert.True(suite.T(), balances["Capital"].Equal(decimal.NewFromInt(-10000)))
	// Zero-activity registered accounts still appear.
	sales, ok := balances["Sales"]
	require.True(suite.T(), ok)
	assert.True(suite.T(), sales.IsZero())
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_TotalsAgree() {
	suite.post(suite.april(), "Cash", "Capital", 10000)
	suite.post(suite.april(), "Cash", "Sales", 5000)
	suite.post(suite.april(), "Rent Expense", "Cash", 2000)

	report, err := suite.reporting.TrialBalance(context.Background())
	require.NoError(suite.T(), err)

	assert.True(suite.T(), report.TotalDebit.Equal(report.TotalCredit))
	assert.True(suite.T(), report.TotalDebit.Equal(decimal.NewFromInt(15000)))

	byAccount := make(map[string]domain.TrialBalanceRow)
	for _, row := range report.Rows {
		byAccount[row.Account] = row
	}
	assert.True(suite.T(), byAccount["Cash"].Debit.Equal(decimal.NewFromInt(13000)))
	assert.True(suite.T(), byAccount["Capital"].Credit.Equal(decimal.NewFromInt(10000)))
	assert.True(suite.T(), byAccount["Sales"].Credit.Equal(decimal.NewFromInt(5000)))
	assert.True(suite.T(), byAccount["Rent Expense"].Debit.Equal(decimal.NewFromInt(2000)))
}

func (suite *ReportingServiceTestSuite) TestProfitAndLoss() {
	suite.post(suite.april(), "Cash", "Sales", 5000)
	suite.post(suite.april(), "Rent Expense", "Cash", 2000)

	report, err := suite.reporting.ProfitAndLoss(context.Background())
	require.NoError(suite.T(), err)

	assert.True(suite.T(), report.Sales.Equal(decimal.NewFromInt(5000)))
	assert.True(suite.T(), report.Expenses.Equal(decimal.NewFromInt(2000)))
	assert.True(suite.T(), report.Gross.Equal(decimal.NewFromInt(5000)))
	assert.True(suite.T(), report.Net.Equal(decimal.NewFromInt(3000)))
}

func (suite *ReportingServiceTestSuite) TestProfitAndLoss_COGSWinsOverPurchases() {
	suite.post(suite.april(), "Cash", "Sales", 5000)
	suite.post(suite.april(), "Purchases", "Cash", 600)
	suite.post(suite.april(), "COGS", "Inventory", 400)

	report, err := suite.reporting.ProfitAndLoss(context.Background())
	require.NoError(suite.T(), err)

	// COGS carries the cost of goods when nonzero; Purchases only
	// feeds gross when COGS is zero.
	assert.True(suite.T(), report.COGS.Equal(decimal.NewFromInt(400)))
	assert.True(suite.T(), report.Purchases.Equal(decimal.NewFromInt(600)))
	assert.True(suite.T(), report.Gross.Equal(decimal.NewFromInt(4600)))
	// Neither COGS nor Purchases double as ordinary expenses.
	assert.True(suite.T(), report.Expenses.IsZero())
}

func (suite *ReportingServiceTestSuite) TestProfitAndLoss_PurchasesFallback() {
	suite.post(suite.april(), "Cash", "Sales", 5000)
	suite.post(suite.april(), "Purchases", "Cash", 600)

	report, err := suite.reporting.ProfitAndLoss(context.Background())
	require.NoError(suite.T(), err)
	assert.True(suite.T(), report.Gross.Equal(decimal.NewFromInt(4400)))
}

func (suite *ReportingServiceTestSuite) TestProfitAndLoss_OtherIncome() {
	suite.post(suite.april(), "Cash", "Other Income", 700)

	report, err := suite.reporting.ProfitAndLoss(context.Background())
	require.NoError(suite.T(), err)
	assert.True(suite.T(), report.Sales.IsZero())
	assert.True(suite.T(), report.OtherIncome.Equal(decimal.NewFromInt(700)))
	assert.True(suite.T(), report.Net.Equal(decimal.NewFromInt(700)))
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet_CheckZero() {
	suite.post(suite.april(), "Cash", "Capital", 10000)
	suite.post(suite.april(), "Cash", "Sales", 5000)
	suite.post(suite.april(), "Rent Expense", "Cash", 2000)

	report, err := suite.reporting.BalanceSheet(context.Background())
	require.NoError(suite.T(), err)

	assert.True(suite.T(), report.Assets.Equal(decimal.NewFromInt(13000)))
	assert.True(suite.T(), report.Liabilities.IsZero())
	// Opening capital plus retained net.
	assert.True(suite.T(), report.Equity.Equal(decimal.NewFromInt(13000)))
	assert.True(suite.T(), report.Check.IsZero())
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet_GSTLiability() {
	suite.post(suite.april(), "Cash", "Capital", 10000)
	suite.post(suite.april(), "Cash", "Sales", 1000)
	suite.post(suite.april(), "Cash", "Output GST", 180)

	report, err := suite.reporting.BalanceSheet(context.Background())
	require.NoError(suite.T(), err)
	assert.True(suite.T(), report.Assets.Equal(decimal.NewFromInt(11180)))
	assert.True(suite.T(), report.Liabilities.Equal(decimal.NewFromInt(180)))
	assert.True(suite.T(), report.Equity.Equal(decimal.NewFromInt(11000)))
	assert.True(suite.T(), report.Check.IsZero())
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet_IncludesInventoryValuation() {
	suite.post(suite.april(), "Cash", "Capital", 10000)

	inventory := services.NewInventoryService(suite.ledger)
	_, err := inventory.UpsertItem(context.Background(), domain.InventoryItem{
		Name:         "Widget",
		PurchaseCost: decimal.NewFromInt(50),
		Quantity:     decimal.NewFromInt(4),
	})
	require.NoError(suite.T(), err)

	report, err := suite.reporting.BalanceSheet(context.Background())
	require.NoError(suite.T(), err)
	assert.True(suite.T(), report.Assets.Equal(decimal.NewFromInt(10200)))
	// Stock is not a ledger account, so the check drifts by its value.
	assert.True(suite.T(), report.Check.Equal(decimal.NewFromInt(200)))
}

func (suite *ReportingServiceTestSuite) TestMonthlySeries() {
	suite.post(suite.april(), "Cash", "Sales", 5000)
	suite.post(suite.april(), "Purchases", "Cash", 1200)
	suite.post(suite.may(), "Cash", "Sales", 3000)
	suite.post(suite.may(), "Rent Expense", "Cash", 2000)

	report, err := suite.reporting.MonthlySeries(context.Background())
	require.NoError(suite.T(), err)

	require.Equal(suite.T(), []string{"2025-04", "2025-05"}, report.Months)
	april := report.ByMonth["2025-04"]
	assert.True(suite.T(), april.Sales.Equal(decimal.NewFromInt(5000)))
	assert.True(suite.T(), april.Purchases.Equal(decimal.NewFromInt(1200)))
	may := report.ByMonth["2025-05"]
	assert.True(suite.T(), may.Sales.Equal(decimal.NewFromInt(3000)))
	assert.True(suite.T(), may.Expenses.Equal(decimal.NewFromInt(2000)))
}

func (suite *ReportingServiceTestSuite) TestTaxSummary() {
	suite.post(suite.april(), "Cash", "Sales", 1000)
	suite.post(suite.april(), "Cash", "Output GST", 180)
	suite.post(suite.april(), "Purchases", "Cash", 500)
	suite.post(suite.april(), "Input GST", "Cash", 90)

	report, err := suite.reporting.TaxSummary(context.Background())
	require.NoError(suite.T(), err)
	assert.True(suite.T(), report.InputGST.Equal(decimal.NewFromInt(90)))
	assert.True(suite.T(), report.OutputGST.Equal(decimal.NewFromInt(180)))
	assert.True(suite.T(), report.Due.Equal(decimal.NewFromInt(90)))
}

func (suite *ReportingServiceTestSuite) TestTaxSummary_RefundPosition() {
	suite.post(suite.april(), "Input GST", "Cash", 250)

	report, err := suite.reporting.TaxSummary(context.Background())
	require.NoError(suite.T(), err)
	assert.True(suite.T(), report.Due.Equal(decimal.NewFromInt(-250)))
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
