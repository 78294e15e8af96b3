package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"trade-tracker/internal/journal"
	"trade-tracker/internal/logging"
	"trade-tracker/internal/models"
)

// addTradeCommands adds the journal CRUD commands.
func addTradeCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newAddCmd(app))
	rootCmd.AddCommand(newListCmd(app))
	rootCmd.AddCommand(newEditCmd(app))
	rootCmd.AddCommand(newDeleteCmd(app))
	rootCmd.AddCommand(newClearCmd(app))
}

// tradeFlags registers the raw-field flags shared by add and edit. Numeric
// fields are plain strings: blank means unknown and coercion belongs to the
// journal, not the flag parser.
func tradeFlags(cmd *cobra.Command) {
	cmd.Flags().String("date", "", "trade date (most common formats accepted; default today)")
	cmd.Flags().String("symbol", "", "stock or index symbol")
	cmd.Flags().String("strategy", "", "strategy name")
	cmd.Flags().String("type", "", "option type: CE or PE")
	cmd.Flags().String("strike", "", "strike price")
	cmd.Flags().String("expiry", "", "option expiry date")
	cmd.Flags().String("entry", "", "entry price")
	cmd.Flags().String("exit", "", "exit price")
	cmd.Flags().String("ltp", "", "last traded price")
	cmd.Flags().String("lot-size", "", "contract lot size")
	cmd.Flags().String("qty", "", "quantity in lots")
	cmd.Flags().String("confidence", "", "confidence level (1-5)")
	cmd.Flags().StringSlice("criteria", nil, "setup criteria tags (comma separated)")
	cmd.Flags().String("wave", "", "current wave: 1-5, A, B or C")
	cmd.Flags().String("notes", "", "free-form notes")
	cmd.Flags().String("image", "", "path to a screenshot to attach (PNG/JPEG)")
}

// rawFromFlags overlays changed flags onto a base raw trade. For add the base
// is empty; for edit it is the existing record, which gives update its
// full-replacement semantics without forcing the user to retype every field.
func rawFromFlags(cmd *cobra.Command, app *App, raw journal.RawTrade) (journal.RawTrade, error) {
	flags := cmd.Flags()

	if flags.Changed("date") {
		v, _ := flags.GetString("date")
		d, err := models.ParseDate(v)
		if err != nil {
			return raw, fmt.Errorf("invalid trade date %q: %w", v, err)
		}
		raw.TradeDate = d
	}
	if flags.Changed("expiry") {
		v, _ := flags.GetString("expiry")
		if strings.TrimSpace(v) == "" {
			raw.ExpiryDate = models.Date{}
		} else {
			d, err := models.ParseDate(v)
			if err != nil {
				return raw, fmt.Errorf("invalid expiry date %q: %w", v, err)
			}
			raw.ExpiryDate = d
		}
	}
	if flags.Changed("symbol") {
		raw.Symbol, _ = flags.GetString("symbol")
	}
	if flags.Changed("strategy") {
		v, _ := flags.GetString("strategy")
		if v != "" && !contains(app.Config.Journal.Strategies, v) {
			return raw, fmt.Errorf("unknown strategy %q (configured: %s)",
				v, strings.Join(app.Config.Journal.Strategies, ", "))
		}
		raw.Strategy = v
	}
	if flags.Changed("type") {
		v, _ := flags.GetString("type")
		raw.OptionType = models.OptionType(strings.ToUpper(v))
	}
	if flags.Changed("strike") {
		raw.StrikePrice, _ = flags.GetString("strike")
	}
	if flags.Changed("entry") {
		raw.EntryPrice, _ = flags.GetString("entry")
	}
	if flags.Changed("exit") {
		raw.ExitPrice, _ = flags.GetString("exit")
	}
	if flags.Changed("ltp") {
		raw.LastTradedPrice, _ = flags.GetString("ltp")
	}
	if flags.Changed("lot-size") {
		raw.LotSize, _ = flags.GetString("lot-size")
	}
	if flags.Changed("qty") {
		raw.Quantity, _ = flags.GetString("qty")
	}
	if flags.Changed("confidence") {
		raw.Confidence, _ = flags.GetString("confidence")
	}
	if flags.Changed("criteria") {
		tags, _ := flags.GetStringSlice("criteria")
		var list models.CriteriaList
		for _, tag := range tags {
			tag = strings.TrimSpace(tag)
			if tag == "" {
				continue
			}
			if !contains(app.Config.Journal.Criteria, tag) {
				return raw, fmt.Errorf("unknown criterion %q (configured: %s)",
					tag, strings.Join(app.Config.Journal.Criteria, ", "))
			}
			list = append(list, models.Criterion(tag))
		}
		raw.Criteria = list
	}
	if flags.Changed("wave") {
		v, _ := flags.GetString("wave")
		raw.CurrentWave = models.Wave(strings.ToUpper(v))
	}
	if flags.Changed("notes") {
		raw.Notes, _ = flags.GetString("notes")
	}
	if flags.Changed("image") {
		path, _ := flags.GetString("image")
		data, err := os.ReadFile(path)
		if err != nil {
			return raw, fmt.Errorf("reading image %s: %w", path, err)
		}
		raw.Image = data
	}

	return raw, nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func newAddCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new trade",
		Long:  "Record a new trade. Derived fields are computed from the raw inputs; blank numeric fields stay unknown.",
		Example: `  tracker add --symbol NIFTY --type CE --entry 100 --exit 110 --lot-size 50 --qty 2
  tracker add --symbol BANKNIFTY --strategy "3rd wave" --wave 3 --criteria RBD,HBD`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.requireSession(); err != nil {
				return err
			}

			raw, err := rawFromFlags(cmd, app, journal.RawTrade{TradeDate: models.Today()})
			if err != nil {
				output.Error("%v", err)
				return err
			}

			rec, err := app.Store.Add(raw)
			if err != nil {
				output.Error("%v", err)
				return err
			}
			if err := app.saveSession(); err != nil {
				return err
			}

			logging.LogTradeAdded(app.Logger, app.Store.Len()-1, rec.Symbol, rec.ProfitLoss)

			if output.IsJSON() {
				return output.JSON(rec)
			}
			output.Success("✓ Trade added at index %d", app.Store.Len()-1)
			printDerived(output, rec)
			return nil
		},
	}
	tradeFlags(cmd)
	return cmd
}

func printDerived(output *Output, rec models.TradeRecord) {
	output.Printf("  Total Quantity: %s\n", FormatOptionalPrice(rec.TotalQuantity))
	output.Printf("  Profit/Loss:    %s\n", output.FormatOptionalPnL(rec.ProfitLoss))
	output.Printf("  RRR:            %s\n", FormatOptionalRatio(rec.RiskReward))
	output.Printf("  Buy Size:       %s\n", FormatOptionalPrice(rec.NotionalExposure))
}

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Display the journal as a table",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.requireSession(); err != nil {
				return err
			}

			records := app.Store.Records()
			if output.IsJSON() {
				return output.JSON(records)
			}
			if len(records) == 0 {
				output.Println("No trades recorded yet.")
				return nil
			}

			table := NewTable(output, "#", "Date", "Symbol", "Strategy", "CE/PE",
				"Entry", "Exit", "Lot", "Qty", "Tot Qty", "P&L", "RRR", "Conf", "Wave", "Notes")
			for i, rec := range records {
				table.AddRow(
					strconv.Itoa(i),
					FormatDate(rec.TradeDate),
					rec.Symbol,
					TruncateString(rec.Strategy, 12),
					string(rec.OptionType),
					FormatOptionalPrice(rec.EntryPrice),
					FormatOptionalPrice(rec.ExitPrice),
					FormatOptionalPrice(rec.LotSize),
					FormatOptionalInt(rec.Quantity),
					FormatOptionalPrice(rec.TotalQuantity),
					output.FormatOptionalPnL(rec.ProfitLoss),
					FormatOptionalRatio(rec.RiskReward),
					FormatStars(rec.Confidence),
					string(rec.CurrentWave),
					TruncateString(rec.Notes, 24),
				)
			}
			table.Render()
			return nil
		},
	}
}

func newEditCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <index>",
		Short: "Edit the trade at a position",
		Long: `Edit the trade at a zero-based position. Unspecified flags keep the
existing values; the journal still receives a full replacement record and
recomputes every derived field.`,
		Example: `  tracker edit 2 --exit 125
  tracker edit 0 --symbol NIFTY --entry 101.5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.requireSession(); err != nil {
				return err
			}

			index, err := strconv.Atoi(args[0])
			if err != nil {
				output.Error("Invalid index %q", args[0])
				return err
			}
			existing, err := app.Store.Record(index)
			if err != nil {
				output.Error("No trade at index %d (journal has %d)", index, app.Store.Len())
				return err
			}

			raw, err := rawFromFlags(cmd, app, journal.RawFromRecord(existing))
			if err != nil {
				output.Error("%v", err)
				return err
			}

			rec, err := app.Store.Update(index, raw)
			if err != nil {
				output.Error("%v", err)
				return err
			}
			if err := app.saveSession(); err != nil {
				return err
			}

			logging.LogTradeUpdated(app.Logger, index, rec.Symbol)

			if output.IsJSON() {
				return output.JSON(rec)
			}
			output.Success("✓ Trade %d updated", index)
			printDerived(output, rec)
			return nil
		},
	}
	tradeFlags(cmd)
	return cmd
}

func newDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <index>",
		Short: "Delete the trade at a position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.requireSession(); err != nil {
				return err
			}

			index, err := strconv.Atoi(args[0])
			if err != nil {
				output.Error("Invalid index %q", args[0])
				return err
			}

			before := app.Store.Len()
			app.Store.Delete(index)
			if app.Store.Len() == before {
				output.Info("No trade at index %d, nothing deleted.", index)
				return nil
			}
			if err := app.saveSession(); err != nil {
				return err
			}

			logging.LogTradeDeleted(app.Logger, index)
			output.Success("✓ Trade %d deleted", index)
			return nil
		},
	}
}

func newClearCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Discard all trades",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			yes, _ := cmd.Flags().GetBool("yes")
			if !yes {
				output.Warning("This discards every trade in the journal. Re-run with --yes to confirm.")
				return nil
			}

			app.Store.Clear()
			if err := app.saveSession(); err != nil {
				return err
			}
			output.Success("✓ All trades cleared")
			return nil
		},
	}
	cmd.Flags().Bool("yes", false, "skip the confirmation")
	return cmd
}
