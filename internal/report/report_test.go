package report

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budget/internal/core"
	"budget/internal/storage"
)

func newStore(t *testing.T) *storage.SQLiteRepository {
	t.Helper()
	repo, err := storage.NewSQLiteRepository(filepath.Join(t.TempDir(), "budget.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func add(t *testing.T, repo *storage.SQLiteRepository, category string, amount float64, typ core.TransactionType) {
	t.Helper()
	_, err := repo.Add(context.Background(), core.Transaction{
		Date: "2025-01-01", Category: category, Amount: amount, Type: typ,
	})
	require.NoError(t, err)
}

func TestBalanceEmptyStore(t *testing.T) {
	engine := NewEngine(newStore(t))

	balance, err := engine.Balance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.0, balance)

	summary, err := engine.SummaryByType(context.Background())
	require.NoError(t, err)
	assert.Empty(t, summary)
}

func TestBalanceAndSummary(t *testing.T) {
	repo := newStore(t)
	add(t, repo, "Salary", 100, core.Income)
	add(t, repo, "Freelance", 50, core.Income)
	add(t, repo, "Food", 30, core.Expense)
	engine := NewEngine(repo)

	balance, err := engine.Balance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 120.0, balance)

	summary, err := engine.SummaryByType(context.Background())
	require.NoError(t, err)
	assert.Equal(t, core.Summary{core.Income: 150, core.Expense: 30}, summary)
}

func TestOnlyOneSidePresent(t *testing.T) {
	repo := newStore(t)
	add(t, repo, "Rent/Mortgage", 900, core.Expense)
	engine := NewEngine(repo)

	balance, err := engine.Balance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, -900.0, balance)

	summary, err := engine.SummaryByType(context.Background())
	require.NoError(t, err)
	_, hasIncome := summary[core.Income]
	assert.False(t, hasIncome, "types without rows must not appear")
}

type fakeSource struct {
	totals []core.TypeTotal
	sums   map[core.TransactionType]float64
	err    error
}

func (f fakeSource) SumByType(context.Context) ([]core.TypeTotal, error) {
	return f.totals, f.err
}

func (f fakeSource) SumForType(_ context.Context, t core.TransactionType) (float64, bool, error) {
	if f.err != nil {
		return 0, false, f.err
	}
	v, ok := f.sums[t]
	return v, ok, nil
}

func TestOtherTypesExcludedFromBalance(t *testing.T) {
	engine := NewEngine(fakeSource{
		totals: []core.TypeTotal{{Type: core.Income, Total: 10}, {Type: "transfer", Total: 99}},
		sums:   map[core.TransactionType]float64{core.Income: 10, "transfer": 99},
	})

	balance, err := engine.Balance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10.0, balance)

	summary, err := engine.SummaryByType(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 99.0, summary["transfer"])
}

func TestErrorsPropagate(t *testing.T) {
	boom := errors.New("disk I/O error")
	engine := NewEngine(fakeSource{err: boom})

	_, err := engine.Balance(context.Background())
	assert.ErrorIs(t, err, boom)
	_, err = engine.SummaryByType(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestCoalesce(t *testing.T) {
	assert.True(t, coalesce(0, false).IsZero())
	assert.True(t, coalesce(42, false).IsZero(), "a missing aggregate is zero whatever the scan left behind")
	assert.Equal(t, "42.5", coalesce(42.5, true).String())
}
