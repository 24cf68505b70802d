package services

import (
	"context"
	"log/slog"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/SahajKhata/sahaj_khata_app/internal/core/domain"
	"github.com/SahajKhata/sahaj_khata_app/internal/middleware"
)

// Names with dedicated reporting treatment.
const (
	accountCOGS      = "COGS"
	accountPurchases = "Purchases"
	accountInputGST  = "Input GST"
	accountOutputGST = "Output GST"
)

// ReportingService derives reports as pure folds over the current
// ledger snapshot. None of its methods mutate state.
type ReportingService struct {
	ledger *LedgerService
}

// NewReportingService creates a new ReportingService.
func NewReportingService(ledger *LedgerService) *ReportingService {
	return &ReportingService{ledger: ledger}
}

// balances folds the journal sequence into per-account signed
// balances: debits add, credits subtract. Every registered account
// appears, including zero-activity ones. Addition commutes, so the
// result is independent of entry order.
func balances(state *domain.LedgerState) map[string]decimal.Decimal {
	bal := make(map[string]decimal.Decimal, len(state.Accounts))
	for _, acc := range state.Accounts {
		bal[acc.Name] = decimal.Zero
	}
	for _, entry := range state.Journals {
		bal[entry.DebitAccount] = bal[entry.DebitAccount].Add(entry.Amount)
		bal[entry.CreditAccount] = bal[entry.CreditAccount].Sub(entry.Amount)
	}
	return bal
}

// accountType resolves the recorded type of an account, falling back
// to the name classifier for names that appear in the journal without
// a registry entry.
func accountType(state *domain.LedgerState, name string) domain.AccountType {
	if acc := state.FindAccount(name); acc != nil {
		return acc.AccountType
	}
	return domain.GuessAccountType(name)
}

// AccountBalances returns the signed balance per account name
// (positive means debit-heavy, negative credit-heavy).
func (s *ReportingService) AccountBalances(ctx context.Context) (map[string]decimal.Decimal, error) {
	var result map[string]decimal.Decimal
	err := s.ledger.View(func(state *domain.LedgerState) error {
		result = balances(state)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// TrialBalance lists every account with its balance split into debit
// and credit columns. Column totals agree by construction.
func (s *ReportingService) TrialBalance(ctx context.Context) (*domain.TrialBalanceReport, error) {
	report := &domain.TrialBalanceReport{
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}
	err := s.ledger.View(func(state *domain.LedgerState) error {
		bal := balances(state)
		for _, acc := range state.Accounts {
			v := bal[acc.Name]
			row := domain.TrialBalanceRow{
				Account:     acc.Name,
				AccountType: acc.AccountType,
				Debit:       decimal.Zero,
				Credit:      decimal.Zero,
			}
			if v.IsPositive() {
				row.Debit = v
			} else if v.IsNegative() {
				row.Credit = v.Neg()
			}
			report.TotalDebit = report.TotalDebit.Add(row.Debit)
			report.TotalCredit = report.TotalCredit.Add(row.Credit)
			report.Rows = append(report.Rows, row)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// profitAndLoss computes the P&L over a snapshot. Income balances are
// credit-heavy (negative), so they are sign-inverted into positive
// revenue. COGS and Purchases are matched by exact name; when both
// carry a nonzero balance only COGS enters gross, to avoid counting
// the cost of goods twice.
func profitAndLoss(state *domain.LedgerState) domain.PAndLReport {
	bal := balances(state)
	report := domain.PAndLReport{
		Sales:       decimal.Zero,
		OtherIncome: decimal.Zero,
		COGS:        decimal.Zero,
		Purchases:   decimal.Zero,
		Expenses:    decimal.Zero,
	}
	for name, v := range bal {
		t := accountType(state, name)
		if t == domain.Income {
			if containsFold(name, "sale") {
				report.Sales = report.Sales.Sub(v)
			} else {
				report.OtherIncome = report.OtherIncome.Sub(v)
			}
		}
		if name == accountCOGS {
			report.COGS = report.COGS.Add(v)
		}
		if name == accountPurchases {
			report.Purchases = report.Purchases.Add(v)
		}
		if t == domain.Expense && name != accountCOGS && name != accountPurchases {
			report.Expenses = report.Expenses.Add(v)
		}
	}
	costOfGoods := report.COGS
	if costOfGoods.IsZero() {
		costOfGoods = report.Purchases
	}
	report.Gross = report.Sales.Sub(costOfGoods)
	report.Net = report.Gross.Add(report.OtherIncome).Sub(report.Expenses)
	return report
}

// ProfitAndLoss generates the profit and loss report.
func (s *ReportingService) ProfitAndLoss(ctx context.Context) (*domain.PAndLReport, error) {
	var report domain.PAndLReport
	err := s.ledger.View(func(state *domain.LedgerState) error {
		report = profitAndLoss(state)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// inventoryValuation sums quantity * purchase cost over all items.
func inventoryValuation(state *domain.LedgerState) decimal.Decimal {
	total := decimal.Zero
	for _, item := range state.Inventory {
		total = total.Add(item.Quantity.Mul(item.PurchaseCost))
	}
	return total
}

// InventoryValuation values the stock on hand at purchase cost. The
// figure is an asset-equivalent; it is not itself a ledger account.
func (s *ReportingService) InventoryValuation(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := s.ledger.View(func(state *domain.LedgerState) error {
		total = inventoryValuation(state)
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// BalanceSheet generates the balance sheet. Liability and equity
// balances are credit-heavy, so they are negated into positive
// figures; inventory valuation joins the asset side; equity is opening
// capital plus retained P&L net. A nonzero check means the ledger was
// edited outside the posting engine and is surfaced with a warning.
func (s *ReportingService) BalanceSheet(ctx context.Context) (*domain.BalanceSheetReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	report := &domain.BalanceSheetReport{
		Assets:      decimal.Zero,
		Liabilities: decimal.Zero,
		Equity:      decimal.Zero,
	}
	err := s.ledger.View(func(state *domain.LedgerState) error {
		bal := balances(state)
		for name, v := range bal {
			switch accountType(state, name) {
			case domain.Asset:
				report.Assets = report.Assets.Add(v)
			case domain.Liability:
				report.Liabilities = report.Liabilities.Sub(v)
			case domain.Equity:
				report.Equity = report.Equity.Sub(v)
			}
		}
		report.Assets = report.Assets.Add(inventoryValuation(state))

		// Equity is accrued from opening capital and retained earnings
		// rather than read off the equity ledger accounts.
		pl := profitAndLoss(state)
		report.Equity = state.Firm.OpeningCapital.Add(pl.Net)

		report.Check = report.Assets.Sub(report.Liabilities.Add(report.Equity))
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !report.Check.IsZero() {
		logger.Warn("Balance sheet check is nonzero",
			slog.String("check", report.Check.String()))
	}
	return report, nil
}

// MonthlySeries buckets journal activity by calendar month: sales when
// the credit account name contains "sales", purchases when the debit
// account name contains "purchases", expenses when the debit account
// is Expense-typed or its name contains "expense".
func (s *ReportingService) MonthlySeries(ctx context.Context) (*domain.MonthlySeriesReport, error) {
	report := &domain.MonthlySeriesReport{
		ByMonth: make(map[string]domain.MonthAggregate),
	}
	err := s.ledger.View(func(state *domain.LedgerState) error {
		for _, entry := range state.Journals {
			month := entry.MonthKey()
			agg, ok := report.ByMonth[month]
			if !ok {
				agg = domain.MonthAggregate{
					Sales:     decimal.Zero,
					Purchases: decimal.Zero,
					Expenses:  decimal.Zero,
				}
			}
			if containsFold(entry.CreditAccount, "sales") {
				agg.Sales = agg.Sales.Add(entry.Amount)
			}
			if containsFold(entry.DebitAccount, "purchases") {
				agg.Purchases = agg.Purchases.Add(entry.Amount)
			}
			if accountType(state, entry.DebitAccount) == domain.Expense || containsFold(entry.DebitAccount, "expense") {
				agg.Expenses = agg.Expenses.Add(entry.Amount)
			}
			report.ByMonth[month] = agg
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	report.Months = make([]string, 0, len(report.ByMonth))
	for month := range report.ByMonth {
		report.Months = append(report.Months, month)
	}
	sort.Strings(report.Months)
	return report, nil
}

// TaxSummary reads the GST accounts: Input GST is debit-positive and
// recoverable, Output GST is credit-heavy and negated into the payable
// figure. Due stays signed; negative means a refund position.
func (s *ReportingService) TaxSummary(ctx context.Context) (*domain.TaxSummaryReport, error) {
	report := &domain.TaxSummaryReport{}
	err := s.ledger.View(func(state *domain.LedgerState) error {
		bal := balances(state)
		report.InputGST = bal[accountInputGST]
		report.OutputGST = bal[accountOutputGST].Neg()
		report.Due = report.OutputGST.Sub(report.InputGST)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}
