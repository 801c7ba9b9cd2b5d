// Package commands defines the budget CLI.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"budget/internal/cli"
	"budget/internal/config"
	applog "budget/internal/log"
	"budget/internal/services"
	"budget/internal/shell"
)

// Options controls a single CLI invocation.
type Options struct {
	Args          []string
	In            io.Reader
	Out           io.Writer
	HandleSignals bool
}

// app carries state from flag parsing to the command bodies.
type app struct {
	opts Options

	dbPath         string
	categoriesFile string
	logLevel       string

	logger     *applog.Logger
	ledger     *services.Ledger
	stopSignal func()
}

// Execute runs the CLI. The ledger is closed before returning, whatever the
// command's outcome.
func Execute(ctx context.Context, opts Options) (err error) {
	a := &app{opts: opts}
	defer func() {
		err = errors.Join(err, a.close())
	}()

	root := newRootCommand(a)
	root.SetArgs(opts.Args)
	if opts.In != nil {
		root.SetIn(opts.In)
	}
	if opts.Out != nil {
		root.SetOut(opts.Out)
	}
	return root.ExecuteContext(ctx)
}

func newRootCommand(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "budget",
		Short: "Personal income and expense ledger",
		Long: "budget records income and expense transactions in a local SQLite file.\n" +
			"Run without a subcommand for the interactive menu.",
		Args: cobra.NoArgs,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return shell.New(a.ledger, cmd.InOrStdin(), cmd.OutOrStdout(), a.logger).Run(cmd.Context())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.dbPath, "db", "", "SQLite database file (overrides BUDGET_DB_PATH)")
	flags.StringVar(&a.categoriesFile, "categories", "", "YAML category catalog (overrides BUDGET_CATEGORIES_FILE)")
	flags.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (overrides LOG_LEVEL)")

	rootCmd.AddCommand(
		newListCommand(a),
		newSummaryCommand(a),
		newBalanceCommand(a),
		newCategoriesCommand(a),
		newExportCommand(a),
	)

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	if a.dbPath != "" {
		cfg.SQLiteDBPath = a.dbPath
	}
	if a.categoriesFile != "" {
		cfg.CategoriesFile = a.categoriesFile
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := cli.SetupLogger(cfg)
	if err != nil {
		return err
	}
	a.logger = logger

	ledger, err := cli.InitLedger(cfg, logger)
	if err != nil {
		return fmt.Errorf("open ledger: %w", err)
	}
	a.ledger = ledger

	if a.opts.HandleSignals {
		a.stopSignal = cli.CloseOnSignal(logger, ledger.Close)
	}
	return nil
}

func (a *app) close() error {
	if a.stopSignal != nil {
		a.stopSignal()
	}
	if a.ledger == nil {
		return nil
	}
	return a.ledger.Close()
}
