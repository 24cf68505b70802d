package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/SahajKhata/sahaj_khata_app/internal/core/services"
	"github.com/SahajKhata/sahaj_khata_app/internal/repositories/storage/filestore"
)

// ledgerPath is the snapshot file every subcommand operates on. It is
// bound to the root --ledger flag.
var ledgerPath string

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ska",
		Short: "Double-entry bookkeeping for small businesses",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Keep service logs out of the report output.
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelWarn,
			})))
		},
	}

	rootCmd.PersistentFlags().StringVar(&ledgerPath, "ledger", "data/ledger.json", "path to the ledger snapshot file")

	rootCmd.AddCommand(newSetupCommand())
	rootCmd.AddCommand(newPostCommand())
	rootCmd.AddCommand(newJournalsCommand())
	rootCmd.AddCommand(newAccountsCommand())
	rootCmd.AddCommand(newTrialBalanceCommand())
	rootCmd.AddCommand(newProfitLossCommand())
	rootCmd.AddCommand(newBalanceSheetCommand())
	rootCmd.AddCommand(newMonthlyCommand())
	rootCmd.AddCommand(newTaxCommand())
	rootCmd.AddCommand(newSuggestCommand())

	return rootCmd
}

// openContainer wires the service container over the file-backed
// ledger named by --ledger.
func openContainer(ctx context.Context) (*services.Container, error) {
	store, err := filestore.New(ledgerPath)
	if err != nil {
		return nil, fmt.Errorf("opening ledger file: %w", err)
	}
	ledger, err := services.NewLedgerService(ctx, store)
	if err != nil {
		return nil, err
	}
	return services.NewContainer(ledger), nil
}
