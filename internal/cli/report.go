package cli

import (
	"github.com/spf13/cobra"

	"trade-tracker/internal/journal"
)

// addReportCommand adds the performance report command.
func addReportCommand(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "report",
		Short: "Summarize journal performance",
		Long:  "Compute win rate, profit factor and per-symbol/per-strategy breakdowns over the journal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.requireSession(); err != nil {
				return err
			}

			sum := journal.Summarize(app.Store.Records())
			if output.IsJSON() {
				return output.JSON(sum)
			}

			if sum.Trades == 0 {
				output.Println("No trades recorded yet.")
				return nil
			}

			output.Bold("Summary")
			output.Printf("  Total Trades:     %d\n", sum.Trades)
			output.Printf("  Open Trades:      %d\n", sum.Open)
			output.Printf("  Winning Trades:   %d (%.0f%%)\n", sum.Wins, sum.WinRate())
			output.Printf("  Losing Trades:    %d\n", sum.Losses)
			output.Printf("  Gross Profit:     %s\n", output.Green(FormatIndianCurrency(sum.GrossProfit)))
			output.Printf("  Gross Loss:       %s\n", output.Red(FormatIndianCurrency(sum.GrossLoss)))
			output.Printf("  Net P&L:          %s\n", output.FormatPnL(sum.NetPnL()))
			output.Println()

			output.Bold("Performance Metrics")
			output.Printf("  Win Rate:         %.1f%%\n", sum.WinRate())
			output.Printf("  Profit Factor:    %.2f\n", sum.ProfitFactor())
			output.Printf("  Avg Win:          %s\n", FormatIndianCurrency(sum.AvgWin()))
			output.Printf("  Avg Loss:         %s\n", FormatIndianCurrency(sum.AvgLoss()))
			output.Printf("  Largest Win:      %s\n", FormatIndianCurrency(sum.LargestWin))
			output.Printf("  Largest Loss:     %s\n", FormatIndianCurrency(sum.LargestLoss))
			output.Printf("  Expectancy:       %s\n", FormatIndianCurrency(sum.Expectancy()))
			output.Println()

			if len(sum.BySymbol) > 0 {
				output.Bold("By Symbol")
				for symbol, stats := range sum.BySymbol {
					output.Printf("  %-12s %d trades  %s  %.0f%% win\n",
						symbol, stats.Trades, output.FormatPnL(stats.PnL), stats.WinRate())
				}
				output.Println()
			}

			if len(sum.ByStrategy) > 0 {
				output.Bold("By Strategy")
				for strategy, stats := range sum.ByStrategy {
					output.Printf("  %-12s %d trades  %s  %.0f%% win\n",
						strategy, stats.Trades, output.FormatPnL(stats.PnL), stats.WinRate())
				}
			}

			return nil
		},
	})
}
