package services

import (
	"context"

	"budget/internal/catalog"
	"budget/internal/core"
)

// Ports the ledger depends on.
type (
	TransactionStore interface {
		Add(ctx context.Context, tx core.Transaction) (int64, error)
		Update(ctx context.Context, tx core.Transaction) (rowsAffected int64, err error)
		Delete(ctx context.Context, id int64) (rowsAffected int64, err error)
		Get(ctx context.Context, id int64) (core.Transaction, error)
		ListAll(ctx context.Context) ([]core.Transaction, error)
		ListByType(ctx context.Context, t core.TransactionType) ([]core.Transaction, error)
		Catalog() *catalog.Catalog
		Close() error
	}

	Reporter interface {
		SummaryByType(ctx context.Context) (core.Summary, error)
		Balance(ctx context.Context) (float64, error)
	}
)
