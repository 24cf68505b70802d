package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/SahajKhata/sahaj_khata_app/internal/core/domain"
	"github.com/SahajKhata/sahaj_khata_app/internal/core/services"
	"github.com/SahajKhata/sahaj_khata_app/internal/platform/chart"
)

func newSetupCommand() *cobra.Command {
	var (
		name           string
		contact        string
		gstin          string
		gstEnabled     bool
		gstPercent     string
		openingCapital string
		chartPath      string
	)

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Initialize the ledger for a firm",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			capital, err := decimal.NewFromString(openingCapital)
			if err != nil {
				return fmt.Errorf("parsing --opening-capital: %w", err)
			}
			defaultGST, err := decimal.NewFromString(gstPercent)
			if err != nil {
				return fmt.Errorf("parsing --gst-percent: %w", err)
			}

			chartAccounts, err := chart.Load(chartPath)
			if err != nil {
				return fmt.Errorf("loading chart of accounts: %w", err)
			}

			ctx := cmd.Context()
			svcs, err := openContainer(ctx)
			if err != nil {
				return err
			}

			firm := domain.FirmProfile{
				OrgName:           name,
				ContactPerson:     contact,
				GSTIN:             gstin,
				GSTEnabled:        gstEnabled,
				DefaultGSTPercent: defaultGST,
				OpeningCapital:    capital,
			}
			if err := svcs.Ledger.Initialize(ctx, firm, chartAccounts); err != nil {
				return err
			}

			if capital.IsPositive() {
				_, err := svcs.Posting.Post(ctx, services.PostingInput{
					Date:          time.Now().UTC().Truncate(24 * time.Hour),
					DebitAccount:  "Cash",
					CreditAccount: "Capital",
					Amount:        capital,
					Narration:     "Opening Capital",
					Meta:          map[string]string{"source": domain.SourceSystem},
				})
				if err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Ledger initialized for %s at %s\n", name, ledgerPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "firm name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&contact, "contact", "", "contact person")
	cmd.Flags().StringVar(&gstin, "gstin", "", "GST registration number")
	cmd.Flags().BoolVar(&gstEnabled, "gst", false, "enable GST splitting")
	cmd.Flags().StringVar(&gstPercent, "gst-percent", "18", "default GST rate percent")
	cmd.Flags().StringVar(&openingCapital, "opening-capital", "0", "opening capital amount")
	cmd.Flags().StringVar(&chartPath, "chart", "", "chart of accounts YAML (built-in chart when empty)")

	return cmd
}
