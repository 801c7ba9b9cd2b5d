package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"budget/internal/catalog"
	"budget/internal/core"
	"budget/internal/export"
	applog "budget/internal/log"
	"budget/internal/storage"
)

// Ledger is the single entry point the menu and CLI commands use. It joins the
// transaction store, the report engine and the exporters.
type Ledger struct {
	store     TransactionStore
	reports   Reporter
	logger    *applog.Logger
	exportDir string
	now       func() time.Time
}

func NewLedger(store TransactionStore, reports Reporter, logger *applog.Logger, exportDir string) *Ledger {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	return &Ledger{
		store:     store,
		reports:   reports,
		logger:    logger.WithComponent(applog.ComponentLedger),
		exportDir: exportDir,
		now:       time.Now,
	}
}

// Catalog returns the category catalog writes are validated against.
func (l *Ledger) Catalog() *catalog.Catalog {
	return l.store.Catalog()
}

// Add records a new transaction and returns its id.
func (l *Ledger) Add(ctx context.Context, tx core.Transaction) (int64, error) {
	id, err := l.store.Add(ctx, tx)
	if err != nil {
		l.logFailure(ctx, applog.OpAdd, tx, err)
		return 0, fmt.Errorf("add transaction: %w", err)
	}
	return id, nil
}

// Update replaces a transaction. found is false when no row has tx.ID.
func (l *Ledger) Update(ctx context.Context, tx core.Transaction) (found bool, err error) {
	n, err := l.store.Update(ctx, tx)
	if err != nil {
		l.logFailure(ctx, applog.OpUpdate, tx, err)
		return false, fmt.Errorf("update transaction: %w", err)
	}
	return n > 0, nil
}

// Delete removes a transaction. found is false when no row has id.
func (l *Ledger) Delete(ctx context.Context, id int64) (found bool, err error) {
	n, err := l.store.Delete(ctx, id)
	if err != nil {
		l.logFailure(ctx, applog.OpDelete, core.Transaction{ID: id}, err)
		return false, fmt.Errorf("delete transaction: %w", err)
	}
	return n > 0, nil
}

func (l *Ledger) Get(ctx context.Context, id int64) (core.Transaction, error) {
	return l.store.Get(ctx, id)
}

func (l *Ledger) ListAll(ctx context.Context) ([]core.Transaction, error) {
	items, err := l.store.ListAll(ctx)
	if err != nil {
		l.logger.ErrorContext(ctx, "List failed", applog.NewFields().
			WithOperation(applog.OpList).
			WithErrorType(applog.ErrorTypeDatabase).
			WithError(err).ToSlice()...)
		return nil, err
	}
	return items, nil
}

func (l *Ledger) ListByType(ctx context.Context, t core.TransactionType) ([]core.Transaction, error) {
	items, err := l.store.ListByType(ctx, t)
	if err != nil {
		l.logger.ErrorContext(ctx, "List by type failed", applog.NewFields().
			WithOperation(applog.OpList).
			WithErrorType(applog.ErrorTypeDatabase).
			WithError(err).ToSlice()...)
		return nil, err
	}
	return items, nil
}

func (l *Ledger) Summary(ctx context.Context) (core.Summary, error) {
	return l.reports.SummaryByType(ctx)
}

func (l *Ledger) Balance(ctx context.Context) (float64, error) {
	return l.reports.Balance(ctx)
}

// Snapshot gathers every transaction with the summary and balance.
func (l *Ledger) Snapshot(ctx context.Context) (export.Snapshot, error) {
	items, err := l.store.ListAll(ctx)
	if err != nil {
		return export.Snapshot{}, err
	}
	summary, err := l.reports.SummaryByType(ctx)
	if err != nil {
		return export.Snapshot{}, err
	}
	balance, err := l.reports.Balance(ctx)
	if err != nil {
		return export.Snapshot{}, err
	}
	return export.Snapshot{
		GeneratedAt:  l.now(),
		Transactions: items,
		Summary:      summary,
		Balance:      balance,
	}, nil
}

// Export writes a snapshot in the given format. An empty path writes a
// timestamped file under the configured export directory. It returns the path
// written.
func (l *Ledger) Export(ctx context.Context, format export.Format, path string) (string, error) {
	enc, err := export.EncoderFor(format)
	if err != nil {
		return "", err
	}

	snap, err := l.Snapshot(ctx)
	if err != nil {
		return "", fmt.Errorf("export snapshot: %w", err)
	}

	if path == "" {
		path = filepath.Join(l.exportDir, export.DefaultFileName(snap, enc))
	}
	if err := export.WriteFile(path, snap, enc); err != nil {
		return "", err
	}

	l.logger.InfoContext(ctx, "Ledger exported",
		applog.FieldOperation, applog.OpExport,
		applog.FieldFormat, string(format),
		applog.FieldPath, path,
		applog.FieldCount, len(snap.Transactions))
	return path, nil
}

// Close releases the store's connection.
func (l *Ledger) Close() error {
	if l.store == nil {
		return nil
	}
	if err := l.store.Close(); err != nil {
		return fmt.Errorf("close ledger: %w", err)
	}
	return nil
}

func (l *Ledger) logFailure(ctx context.Context, op string, tx core.Transaction, err error) {
	fields := applog.NewFields().
		WithOperation(op).
		WithTransaction(tx.ID, string(tx.Type), tx.Category, tx.Amount).
		WithError(err)

	var verr *core.ValidationError
	switch {
	case errors.As(err, &verr):
		l.logger.WarnContext(ctx, "Transaction rejected", fields.WithErrorType(applog.ErrorTypeValidation).ToSlice()...)
	case errors.Is(err, storage.ErrNotFound):
		l.logger.WarnContext(ctx, "Transaction not found", fields.WithErrorType(applog.ErrorTypeNotFound).ToSlice()...)
	default:
		l.logger.ErrorContext(ctx, "Storage operation failed", fields.WithErrorType(applog.ErrorTypeDatabase).ToSlice()...)
	}
}
