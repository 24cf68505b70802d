package commands

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/SahajKhata/sahaj_khata_app/internal/core/services"
)

func newSuggestCommand() *cobra.Command {
	var (
		amount     string
		qty        string
		price      string
		gstPercent string
	)

	cmd := &cobra.Command{
		Use:   "suggest <narration>",
		Short: "Classify a narration into a posting suggestion",
		Long:  "Classifies a free-text narration and prints the proposed posting. Nothing is recorded; use the post command to commit it.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parse := func(flag, s string) (decimal.Decimal, error) {
				if s == "" {
					return decimal.Zero, nil
				}
				v, err := decimal.NewFromString(s)
				if err != nil {
					return decimal.Zero, fmt.Errorf("parsing --%s: %w", flag, err)
				}
				return v, nil
			}
			amountValue, err := parse("amount", amount)
			if err != nil {
				return err
			}
			qtyValue, err := parse("qty", qty)
			if err != nil {
				return err
			}
			priceValue, err := parse("price", price)
			if err != nil {
				return err
			}
			gstValue, err := parse("gst-percent", gstPercent)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			svcs, err := openContainer(ctx)
			if err != nil {
				return err
			}

			suggestion, err := svcs.Narration.Suggest(ctx, services.SuggestionInput{
				Narration:  strings.Join(args, " "),
				Amount:     amountValue,
				Quantity:   qtyValue,
				Price:      priceValue,
				GSTPercent: gstValue,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Intent: %s\n", suggestion.Intent)
			if suggestion.Party != "" {
				fmt.Fprintf(out, "Party:  %s\n", suggestion.Party)
			}
			if len(suggestion.Split) > 0 {
				for _, leg := range suggestion.Split {
					fmt.Fprintf(out, "Leg:    %s -> %s %s\n",
						leg.Debit, leg.Credit, leg.Amount.StringFixed(2))
				}
				return nil
			}
			fmt.Fprintf(out, "Post:   %s -> %s %s\n",
				suggestion.Debit, suggestion.Credit, suggestion.Amount.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "total amount")
	cmd.Flags().StringVar(&qty, "qty", "", "quantity (with --price, overrides --amount)")
	cmd.Flags().StringVar(&price, "price", "", "unit price")
	cmd.Flags().StringVar(&gstPercent, "gst-percent", "", "GST rate override")

	return cmd
}
