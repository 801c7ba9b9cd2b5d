package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budget/internal/config"
	"budget/internal/core"
	applog "budget/internal/log"
)

func TestInitLedgerWithCategoriesFile(t *testing.T) {
	dir := t.TempDir()
	catFile := filepath.Join(dir, "categories.yaml")
	require.NoError(t, os.WriteFile(catFile, []byte("income: [Pension]\n"), 0o644))

	cfg := &config.Config{
		SQLiteDBPath:   filepath.Join(dir, "budget.db"),
		CategoriesFile: catFile,
		LogLevel:       "error",
		ExportDir:      dir,
	}
	logger := applog.New(applog.Config{Output: &bytes.Buffer{}})

	ledger, err := InitLedger(cfg, logger)
	require.NoError(t, err)
	defer ledger.Close()

	ctx := context.Background()
	_, err = ledger.Add(ctx, core.Transaction{Date: "2025-01-01", Category: "Pension", Amount: 1, Type: core.Income})
	require.NoError(t, err)
	_, err = ledger.Add(ctx, core.Transaction{Date: "2025-01-01", Category: "Salary", Amount: 1, Type: core.Income})
	assert.ErrorIs(t, err, core.ErrUnknownCategory)
}

func TestInitLedgerSurfacesStorageErrors(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	cfg := &config.Config{SQLiteDBPath: filepath.Join(blocker, "budget.db"), LogLevel: "error"}
	_, err := InitLedger(cfg, applog.New(applog.Config{Output: &bytes.Buffer{}}))
	assert.Error(t, err)
}

func TestSetupLogger(t *testing.T) {
	logger, err := SetupLogger(&config.Config{LogLevel: "debug"})
	require.NoError(t, err)
	assert.Equal(t, applog.ComponentApp, logger.Component())

	_, err = SetupLogger(&config.Config{LogLevel: "chatty"})
	assert.Error(t, err)
}

func TestCloseOnSignalStop(t *testing.T) {
	called := false
	stop := CloseOnSignal(applog.New(applog.Config{Output: &bytes.Buffer{}}), func() error {
		called = true
		return nil
	})
	stop()
	assert.False(t, called)
}
