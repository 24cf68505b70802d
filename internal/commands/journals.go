package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/SahajKhata/sahaj_khata_app/internal/core/domain"
)

func newJournalsCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "journals",
		Short: "List journal entries most-recent-first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svcs, err := openContainer(cmd.Context())
			if err != nil {
				return err
			}
			entries, err := svcs.Ledger.ListJournalEntries(limit)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tDEBIT\tCREDIT\tAMOUNT\tNARRATION")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					e.JournalDate.Format(domain.JournalDateLayout),
					e.DebitAccount, e.CreditAccount,
					e.Amount.StringFixed(2), e.Narration)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum entries to show (0 means all)")

	return cmd
}

func newAccountsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List registered accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svcs, err := openContainer(cmd.Context())
			if err != nil {
				return err
			}
			accounts, err := svcs.Ledger.ListAccounts()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTYPE")
			for _, a := range accounts {
				fmt.Fprintf(w, "%s\t%s\n", a.Name, a.AccountType)
			}
			return w.Flush()
		},
	}

	return cmd
}
