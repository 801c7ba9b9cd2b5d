package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budget/internal/core"
)

func TestDefaultLabels(t *testing.T) {
	c := Default()
	assert.Equal(t, []string{"Salary", "Freelance", "Investments", "Gifts", "Rental Income", "Other"}, c.Income())
	require.Len(t, c.Expense(), 15)
	assert.Equal(t, "Food", c.Expense()[0])
	assert.Equal(t, "Miscellaneous", c.Expense()[14])
}

func TestLookup(t *testing.T) {
	c := Default()

	label, err := c.Lookup(core.Income, 1)
	require.NoError(t, err)
	assert.Equal(t, "Salary", label)

	label, err = c.Lookup(core.Expense, 2)
	require.NoError(t, err)
	assert.Equal(t, "Rent/Mortgage", label)

	_, err = c.Lookup(core.Income, 0)
	assert.ErrorIs(t, err, ErrPosition)
	_, err = c.Lookup(core.Income, 7)
	assert.ErrorIs(t, err, ErrPosition)
	_, err = c.Lookup("transfer", 1)
	assert.ErrorIs(t, err, core.ErrInvalidType)
}

func TestCopiesAreIndependent(t *testing.T) {
	c := Default()
	labels := c.Income()
	labels[0] = "Changed"
	assert.Equal(t, "Salary", c.Income()[0])
	assert.Nil(t, c.Categories("transfer"))
}

func TestValidate(t *testing.T) {
	c := Default()
	tx := core.Transaction{Date: "2025-03-01", Category: "Food", Amount: 12.5, Type: core.Expense}
	require.NoError(t, c.Validate(tx))

	tx.Type = core.Income
	err := c.Validate(tx)
	require.ErrorIs(t, err, core.ErrUnknownCategory)
	var verr *core.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "category", verr.Field)

	tx.Category = "food"
	tx.Type = core.Expense
	assert.ErrorIs(t, c.Validate(tx), core.ErrUnknownCategory, "membership is case-sensitive")
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	// No file -> defaults
	c, err := LoadFile(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Expense(), c.Expense())

	path := filepath.Join(dir, "categories.yaml")
	content := "income:\n  - Salary\n  - Bonus\n  - Salary\n  - \"  \"\nexpense: []\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	c, err = LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Salary", "Bonus"}, c.Income())
	assert.Equal(t, Default().Expense(), c.Expense(), "empty list falls back to defaults")

	require.NoError(t, os.WriteFile(path, []byte("income: [unclosed"), 0o644))
	_, err = LoadFile(path)
	assert.Error(t, err)
}
