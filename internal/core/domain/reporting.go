package domain

import "github.com/shopspring/decimal"

// TrialBalanceRow is a single account line in a trial balance: a
// debit-heavy balance lands in the debit column, a credit-heavy one
// (negated) in the credit column.
type TrialBalanceRow struct {
	Account     string          `json:"account"`
	AccountType AccountType     `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalanceReport lists every account with column totals. The two
// totals are equal for any ledger built from balanced postings.
type TrialBalanceReport struct {
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
}

// PAndLReport is the profit and loss summary. Sales and OtherIncome
// are sign-inverted to positive revenue figures. Gross subtracts COGS
// when nonzero, otherwise Purchases; only one of the two enters gross.
type PAndLReport struct {
	Sales       decimal.Decimal `json:"sales"`
	OtherIncome decimal.Decimal `json:"otherIncome"`
	COGS        decimal.Decimal `json:"cogs"`
	Purchases   decimal.Decimal `json:"purchases"`
	Expenses    decimal.Decimal `json:"expenses"`
	Gross       decimal.Decimal `json:"gross"`
	Net         decimal.Decimal `json:"net"`
}

// BalanceSheetReport is the balance sheet summary. Assets include the
// inventory valuation; equity is opening capital plus the P&L net
// (retained-earnings accrual). Check is assets - (liabilities +
// equity) and must be zero for a consistent ledger.
type BalanceSheetReport struct {
	Assets      decimal.Decimal `json:"assets"`
	Liabilities decimal.Decimal `json:"liabilities"`
	Equity      decimal.Decimal `json:"equity"`
	Check       decimal.Decimal `json:"check"`
}

// MonthAggregate holds the per-month totals of the monthly series.
type MonthAggregate struct {
	Sales     decimal.Decimal `json:"sales"`
	Purchases decimal.Decimal `json:"purchases"`
	Expenses  decimal.Decimal `json:"expenses"`
}

// MonthlySeriesReport buckets journal activity by calendar month.
// Months is sorted lexicographically on YYYY-MM, which is also
// chronological.
type MonthlySeriesReport struct {
	Months  []string                  `json:"months"`
	ByMonth map[string]MonthAggregate `json:"byMonth"`
}

// TaxSummaryReport is the GST position. Due is signed: a negative due
// is a net refund position, and callers wanting a floor at zero clamp
// it themselves.
type TaxSummaryReport struct {
	InputGST  decimal.Decimal `json:"inputGST"`
	OutputGST decimal.Decimal `json:"outputGST"`
	Due       decimal.Decimal `json:"due"`
}
