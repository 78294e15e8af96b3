package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"trade-tracker/internal/config"
	"trade-tracker/internal/journal"
	"trade-tracker/internal/logging"
)

// Version information
const (
	Version = "0.1.0"
)

// App holds the application dependencies. The TradeStore is the in-memory
// working set for this invocation; the session blob carries it between
// invocations through the interchange codec.
type App struct {
	Config    *config.Config
	Logger    zerolog.Logger
	Store     *journal.TradeStore
	Codec     *journal.Codec
	ConfigDir string

	sessionErr error
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	rootCmd := &cobra.Command{
		Use:   "tracker",
		Short: "Trade Tracker - a personal stock/options trade journal",
		Long: `Trade Tracker is a personal journal for discretionary stock and options
trades. It records symbol, strategy, entry/exit prices and position sizing,
derives profit/loss and risk metrics, and round-trips the journal through a
CSV interchange format.

Use 'tracker help <command>' for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}

			if dir, _ := cmd.Flags().GetString("config"); dir != "" {
				cfg, err := config.Load(dir)
				if err != nil {
					return err
				}
				app.Config = cfg
				app.ConfigDir = dir
			}

			mode, err := journal.ParseMode(app.Config.Journal.DerivationMode)
			if err != nil {
				return err
			}
			app.Store = journal.New(mode)
			app.Codec = journal.NewCodec(mode, app.Logger)

			app.sessionErr = app.loadSession()
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/trade-tracker)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	addCoreCommands(rootCmd, app)
	addTradeCommands(rootCmd, app)
	addTransferCommands(rootCmd, app)
	addReportCommand(rootCmd, app)

	return rootCmd
}

// requireSession blocks commands that work on the current journal when the
// session blob failed to load. Import and clear replace the journal wholesale
// and skip this check.
func (app *App) requireSession() error {
	return app.sessionErr
}

// addCoreCommands adds core utility commands.
func addCoreCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(app))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"version": Version})
			} else {
				output.Printf("Trade Tracker v%s\n", Version)
			}
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "View and manage application configuration.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(app.Config)
			}
			showConfig(output, app)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration directory path",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			dir := app.ConfigDir
			if dir == "" {
				dir = config.DefaultConfigDir()
			}
			if output.IsJSON() {
				output.JSON(map[string]string{"path": dir})
			} else {
				output.Println(dir)
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate configuration files",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.Config.Validate(); err != nil {
				output.Error("Configuration validation failed: %v", err)
				return err
			}
			if output.IsJSON() {
				output.JSON(map[string]bool{"valid": true})
			} else {
				output.Success("✓ Configuration is valid")
			}
			return nil
		},
	})

	return cmd
}

func showConfig(output *Output, app *App) {
	cfg := app.Config
	output.Bold("Journal Configuration")
	output.Printf("  Derivation Mode: %s\n", cfg.Journal.DerivationMode)
	output.Printf("  Session File:    %s\n", cfg.SessionPath(app.ConfigDir))
	output.Printf("  Strategies:      %v\n", cfg.Journal.Strategies)
	output.Printf("  Criteria:        %v\n", cfg.Journal.Criteria)
	output.Println()

	output.Bold("UI Configuration")
	output.Printf("  Color Enabled:   %v\n", cfg.UI.ColorEnabled)
	output.Printf("  Date Format:     %s\n", cfg.UI.DateFormat)
	output.Println()

	output.Bold("Logging")
	output.Printf("  Level:           %s\n", cfg.Logging.Level)
	output.Printf("  Console:         %v\n", cfg.Logging.Console)
	output.Printf("  File:            %v\n", cfg.Logging.File)
}
