package cli

import (
	"os"

	"github.com/spf13/cobra"

	"trade-tracker/internal/logging"
)

// addTransferCommands adds the interchange import/export commands.
func addTransferCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newExportCmd(app))
	rootCmd.AddCommand(newImportCmd(app))
}

func newExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Export the journal as CSV",
		Long:  "Serialize every trade, raw and derived fields, to CSV. Writes to stdout when no file is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.requireSession(); err != nil {
				return err
			}

			text, err := app.Codec.Export(app.Store.Records())
			if err != nil {
				output.Error("Export failed: %v", err)
				return err
			}

			if len(args) == 0 {
				output.Printf("%s", text)
				return nil
			}

			path := args[0]
			if err := os.WriteFile(path, []byte(text), 0644); err != nil {
				output.Error("Writing %s: %v", path, err)
				return err
			}

			logging.LogExport(app.Logger, app.Store.Len(), path)
			output.Success("✓ Exported %d trades to %s", app.Store.Len(), path)
			return nil
		},
	}
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the journal from a CSV file",
		Long: `Parse a CSV journal and replace the current record set with it. Import is
never a merge. Rows whose trade date does not parse are dropped and counted;
a structurally malformed document rejects the whole import and leaves the
current journal untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			path := args[0]
			data, err := os.ReadFile(path)
			if err != nil {
				output.Error("Reading %s: %v", path, err)
				return err
			}

			records, dropped, err := app.Codec.Import(string(data))
			if err != nil {
				output.Error("Import failed, journal unchanged: %v", err)
				return err
			}

			app.Store.Replace(records)
			if err := app.saveSession(); err != nil {
				return err
			}

			logging.LogImport(app.Logger, len(records), dropped)

			if output.IsJSON() {
				return output.JSON(map[string]int{"imported": len(records), "dropped": dropped})
			}
			output.Success("✓ Imported %d trades from %s", len(records), path)
			if dropped > 0 {
				output.Warning("%d row(s) dropped: trade date did not parse", dropped)
			}
			return nil
		},
	}
}
