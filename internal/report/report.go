// Package report derives read-only aggregates from the transaction store.
package report

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"budget/internal/core"
)

// Source is the subset of the store the reports read from.
type Source interface {
	SumByType(ctx context.Context) ([]core.TypeTotal, error)
	SumForType(ctx context.Context, t core.TransactionType) (total float64, ok bool, err error)
}

type Engine struct {
	source Source
}

func NewEngine(source Source) *Engine {
	return &Engine{source: source}
}

// SummaryByType sums amounts per type label. Labels without rows are absent.
func (e *Engine) SummaryByType(ctx context.Context) (core.Summary, error) {
	totals, err := e.source.SumByType(ctx)
	if err != nil {
		return nil, fmt.Errorf("summary by type: %w", err)
	}

	summary := make(core.Summary, len(totals))
	for _, t := range totals {
		summary[t.Type] = t.Total
	}
	return summary, nil
}

// Balance is total income minus total expense. Rows of any other type do not
// count toward either side.
func (e *Engine) Balance(ctx context.Context) (float64, error) {
	income, err := e.total(ctx, core.Income)
	if err != nil {
		return 0, err
	}
	expense, err := e.total(ctx, core.Expense)
	if err != nil {
		return 0, err
	}
	return income.Sub(expense).InexactFloat64(), nil
}

func (e *Engine) total(ctx context.Context, t core.TransactionType) (decimal.Decimal, error) {
	sum, ok, err := e.source.SumForType(ctx, t)
	if err != nil {
		return decimal.Zero, fmt.Errorf("balance: %w", err)
	}
	return coalesce(sum, ok), nil
}

// coalesce turns a missing aggregate into zero. A type with no rows
// contributes nothing to the balance.
func coalesce(sum float64, ok bool) decimal.Decimal {
	if !ok {
		return decimal.Zero
	}
	return decimal.NewFromFloat(sum)
}
