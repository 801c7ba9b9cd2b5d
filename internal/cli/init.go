// Package cli provides the initialization steps shared by every command:
// environment, configuration, logging, the ledger and signal handling.
package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"budget/internal/catalog"
	"budget/internal/config"
	applog "budget/internal/log"
	"budget/internal/report"
	"budget/internal/services"
	"budget/internal/storage"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// SetupLogger builds the application logger for the configured level and
// installs it as the slog default.
func SetupLogger(cfg *config.Config) (*applog.Logger, error) {
	level, err := applog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logCfg := applog.DefaultConfig()
	logCfg.Level = level
	logger := applog.New(logCfg)
	applog.SetDefault(logger)
	return logger, nil
}

// LoadCatalog reads the catalog override file when one is configured.
func LoadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.CategoriesFile == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(cfg.CategoriesFile)
}

// InitLedger opens the SQLite store and wires the report engine and ledger
// service on top of it. The caller owns the returned ledger and must Close it.
func InitLedger(cfg *config.Config, logger *applog.Logger) (*services.Ledger, error) {
	cat, err := LoadCatalog(cfg)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}

	repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath, cat)
	if err != nil {
		logger.Error("Failed to initialize SQLite repository",
			applog.FieldError, err,
			applog.FieldPath, cfg.SQLiteDBPath)
		return nil, err
	}

	logger.Debug("Ledger ready", applog.FieldPath, cfg.SQLiteDBPath)
	return services.NewLedger(repo, report.NewEngine(repo), logger, cfg.ExportDir), nil
}

// CloseOnSignal runs cleanup and exits when SIGINT or SIGTERM arrives, so the
// database file is released even while the menu is blocked reading input.
// The returned function stops listening.
func CloseOnSignal(logger *applog.Logger, cleanup func() error) (stop func()) {
	sigChan := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			logger.Info("Shutdown signal received", "signal", sig.String())
			if cleanup != nil {
				if err := cleanup(); err != nil {
					logger.Error("Cleanup failed", applog.FieldOperation, applog.OpShutdown, applog.FieldError, err)
				}
			}
			os.Exit(130)
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigChan)
		close(done)
	}
}
