package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newTrialBalanceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "trial-balance",
		Short: "Print the trial balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svcs, err := openContainer(cmd.Context())
			if err != nil {
				return err
			}
			report, err := svcs.Reporting.TrialBalance(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ACCOUNT\tTYPE\tDEBIT\tCREDIT")
			for _, row := range report.Rows {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					row.Account, row.AccountType,
					row.Debit.StringFixed(2), row.Credit.StringFixed(2))
			}
			fmt.Fprintf(w, "TOTAL\t\t%s\t%s\n",
				report.TotalDebit.StringFixed(2), report.TotalCredit.StringFixed(2))
			return w.Flush()
		},
	}
}

func newProfitLossCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pnl",
		Short: "Print the profit and loss statement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svcs, err := openContainer(cmd.Context())
			if err != nil {
				return err
			}
			report, err := svcs.Reporting.ProfitAndLoss(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Sales:        %s\n", report.Sales.StringFixed(2))
			fmt.Fprintf(out, "Other income: %s\n", report.OtherIncome.StringFixed(2))
			fmt.Fprintf(out, "COGS:         %s\n", report.COGS.StringFixed(2))
			fmt.Fprintf(out, "Purchases:    %s\n", report.Purchases.StringFixed(2))
			fmt.Fprintf(out, "Expenses:     %s\n", report.Expenses.StringFixed(2))
			fmt.Fprintf(out, "Gross profit: %s\n", report.Gross.StringFixed(2))
			fmt.Fprintf(out, "Net profit:   %s\n", report.Net.StringFixed(2))
			return nil
		},
	}
}

func newBalanceSheetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "balance-sheet",
		Short: "Print the balance sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svcs, err := openContainer(cmd.Context())
			if err != nil {
				return err
			}
			report, err := svcs.Reporting.BalanceSheet(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Assets:      %s\n", report.Assets.StringFixed(2))
			fmt.Fprintf(out, "Liabilities: %s\n", report.Liabilities.StringFixed(2))
			fmt.Fprintf(out, "Equity:      %s\n", report.Equity.StringFixed(2))
			if !report.Check.IsZero() {
				fmt.Fprintf(out, "WARNING: integrity check off by %s\n", report.Check.StringFixed(2))
			}
			return nil
		},
	}
}

func newMonthlyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "monthly",
		Short: "Print the monthly sales, purchases and expenses series",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svcs, err := openContainer(cmd.Context())
			if err != nil {
				return err
			}
			report, err := svcs.Reporting.MonthlySeries(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "MONTH\tSALES\tPURCHASES\tEXPENSES")
			for _, month := range report.Months {
				agg := report.ByMonth[month]
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", month,
					agg.Sales.StringFixed(2),
					agg.Purchases.StringFixed(2),
					agg.Expenses.StringFixed(2))
			}
			return w.Flush()
		},
	}
}

func newTaxCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tax",
		Short: "Print the GST summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svcs, err := openContainer(cmd.Context())
			if err != nil {
				return err
			}
			report, err := svcs.Reporting.TaxSummary(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Input GST:  %s\n", report.InputGST.StringFixed(2))
			fmt.Fprintf(out, "Output GST: %s\n", report.OutputGST.StringFixed(2))
			fmt.Fprintf(out, "GST due:    %s\n", report.Due.StringFixed(2))
			return nil
		},
	}
}
