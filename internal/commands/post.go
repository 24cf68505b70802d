package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/SahajKhata/sahaj_khata_app/internal/core/domain"
	"github.com/SahajKhata/sahaj_khata_app/internal/core/services"
)

func newPostCommand() *cobra.Command {
	var (
		date      string
		debit     string
		credit    string
		amount    string
		narration string
	)

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Record a journal entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			journalDate := time.Now().UTC().Truncate(24 * time.Hour)
			if date != "" {
				parsed, err := time.Parse(domain.JournalDateLayout, date)
				if err != nil {
					return fmt.Errorf("parsing --date: must be YYYY-MM-DD")
				}
				journalDate = parsed
			}
			value, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("parsing --amount: %w", err)
			}

			ctx := cmd.Context()
			svcs, err := openContainer(ctx)
			if err != nil {
				return err
			}

			entry, err := svcs.Posting.Post(ctx, services.PostingInput{
				Date:          journalDate,
				DebitAccount:  debit,
				CreditAccount: credit,
				Amount:        value,
				Narration:     narration,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Posted %s: %s -> %s %s\n",
				entry.EntryID, entry.DebitAccount, entry.CreditAccount, entry.Amount.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "journal date YYYY-MM-DD (today when empty)")
	cmd.Flags().StringVar(&debit, "debit", "", "debit account (required)")
	_ = cmd.MarkFlagRequired("debit")
	cmd.Flags().StringVar(&credit, "credit", "", "credit account (required)")
	_ = cmd.MarkFlagRequired("credit")
	cmd.Flags().StringVar(&amount, "amount", "", "amount (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&narration, "narration", "", "free-text narration")

	return cmd
}
