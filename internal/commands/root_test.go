package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, db, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := Execute(context.Background(), Options{
		Args: append([]string{"--db", db, "--log-level", "error"}, args...),
		In:   strings.NewReader(stdin),
		Out:  &out,
	})
	return out.String(), err
}

func TestInteractiveThenReports(t *testing.T) {
	db := filepath.Join(t.TempDir(), "budget.db")

	out, err := runCLI(t, db, strings.Join([]string{
		"1", "2025-01-01", "income", "1", "pay", "100",
		"1", "2025-01-02", "income", "3", "dividends", "50",
		"1", "2025-01-03", "expense", "1", "groceries", "30",
		"8",
	}, "\n")+"\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Transaction 3 added.")

	out, err = runCLI(t, db, "", "balance")
	require.NoError(t, err)
	assert.Equal(t, "Current Balance: 120.00\n", out)

	out, err = runCLI(t, db, "", "summary")
	require.NoError(t, err)
	assert.Equal(t, "income: 150.00\nexpense: 30.00\n", out)

	out, err = runCLI(t, db, "", "list", "--type", "expense")
	require.NoError(t, err)
	assert.Contains(t, out, "groceries")
	assert.NotContains(t, out, "dividends")
}

func TestCategoriesCommand(t *testing.T) {
	db := filepath.Join(t.TempDir(), "budget.db")

	out, err := runCLI(t, db, "", "categories")
	require.NoError(t, err)
	assert.Contains(t, out, "Income:\n  1. Salary\n")
	assert.Contains(t, out, "  15. Miscellaneous\n")
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "budget.db")
	target := filepath.Join(dir, "out", "ledger.json")

	out, err := runCLI(t, db, "", "export", "--format", "json", "-o", target)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported to "+target)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"balance": 0`)

	_, err = runCLI(t, db, "", "export", "--format", "xml")
	assert.Error(t, err)
}

func TestInvalidConfiguration(t *testing.T) {
	db := filepath.Join(t.TempDir(), "budget.db")

	var out bytes.Buffer
	err := Execute(context.Background(), Options{
		Args: []string{"--db", db, "--log-level", "shouty", "balance"},
		Out:  &out,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}
