package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"budget/internal/catalog"
	"budget/internal/core"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned by Get when no row has the requested id.
var ErrNotFound = errors.New("transaction not found")

type SQLiteRepository struct {
	db      *sql.DB
	queries *Queries
	catalog *catalog.Catalog
	dbPath  string
}

// NewSQLiteRepository opens the ledger file, creating it and its directory if
// needed, and makes sure the schema exists. The repository holds a single
// connection until Close.
func NewSQLiteRepository(dbPath string, cat *catalog.Catalog) (*SQLiteRepository, error) {
	if cat == nil {
		cat = catalog.Default()
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	repo := &SQLiteRepository{
		db:      db,
		queries: New(db),
		catalog: cat,
		dbPath:  dbPath,
	}

	if err := repo.Initialize(context.Background()); err != nil {
		db.Close()
		return nil, err
	}

	return repo, nil
}

// Initialize ensures the transactions table exists. Safe to call repeatedly.
func (r *SQLiteRepository) Initialize(ctx context.Context) error {
	if err := RunMigrations(r.dbPath); err != nil {
		return fmt.Errorf("initialize schema: %w", err)
	}
	slog.DebugContext(ctx, "Schema ready", "path", r.dbPath)
	return nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Catalog returns the catalog used to validate writes.
func (r *SQLiteRepository) Catalog() *catalog.Catalog {
	return r.catalog
}

// Add validates and inserts a transaction, returning the assigned id.
// The ID field of tx is ignored.
func (r *SQLiteRepository) Add(ctx context.Context, tx core.Transaction) (int64, error) {
	if err := r.catalog.Validate(tx); err != nil {
		return 0, err
	}

	id, err := r.queries.CreateTransaction(ctx, CreateTransactionParams{
		Date:        tx.Date,
		Category:    tx.Category,
		Description: tx.Description,
		Amount:      tx.Amount,
		Type:        string(tx.Type),
	})
	if err != nil {
		return 0, fmt.Errorf("create transaction: %w", err)
	}

	slog.InfoContext(ctx, "Transaction saved to SQLite",
		"transaction_id", id,
		"type", tx.Type,
		"category", tx.Category,
		"amount", tx.Amount,
		"date", tx.Date)

	return id, nil
}

// Update replaces every field except the id. A missing id affects zero rows
// and is not an error.
func (r *SQLiteRepository) Update(ctx context.Context, tx core.Transaction) (int64, error) {
	if err := r.catalog.Validate(tx); err != nil {
		return 0, err
	}

	n, err := r.queries.UpdateTransaction(ctx, UpdateTransactionParams{
		ID:          tx.ID,
		Date:        tx.Date,
		Category:    tx.Category,
		Description: tx.Description,
		Amount:      tx.Amount,
		Type:        string(tx.Type),
	})
	if err != nil {
		return 0, fmt.Errorf("update transaction %d: %w", tx.ID, err)
	}

	if n == 0 {
		slog.WarnContext(ctx, "Update matched no transaction", "transaction_id", tx.ID)
	} else {
		slog.InfoContext(ctx, "Transaction updated", "transaction_id", tx.ID, "rows_affected", n)
	}
	return n, nil
}

// Delete removes the row with the given id. A missing id affects zero rows.
func (r *SQLiteRepository) Delete(ctx context.Context, id int64) (int64, error) {
	n, err := r.queries.DeleteTransaction(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("delete transaction %d: %w", id, err)
	}

	if n == 0 {
		slog.WarnContext(ctx, "Delete matched no transaction", "transaction_id", id)
	} else {
		slog.InfoContext(ctx, "Transaction deleted", "transaction_id", id)
	}
	return n, nil
}

// Get retrieves a single transaction by ID
func (r *SQLiteRepository) Get(ctx context.Context, id int64) (core.Transaction, error) {
	row, err := r.queries.GetTransaction(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Transaction{}, fmt.Errorf("get transaction %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return core.Transaction{}, fmt.Errorf("get transaction %d: %w", id, err)
	}
	return toCore(row), nil
}

// ListAll returns every transaction in insertion order.
func (r *SQLiteRepository) ListAll(ctx context.Context) ([]core.Transaction, error) {
	rows, err := r.queries.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return toCoreSlice(rows), nil
}

// ListByType returns transactions whose type equals t exactly, in insertion order.
func (r *SQLiteRepository) ListByType(ctx context.Context, t core.TransactionType) ([]core.Transaction, error) {
	rows, err := r.queries.ListTransactionsByType(ctx, string(t))
	if err != nil {
		return nil, fmt.Errorf("list transactions by type %s: %w", t, err)
	}
	return toCoreSlice(rows), nil
}

// SumByType groups every row by its type label.
func (r *SQLiteRepository) SumByType(ctx context.Context) ([]core.TypeTotal, error) {
	rows, err := r.queries.SumAmountByType(ctx)
	if err != nil {
		return nil, fmt.Errorf("sum amount by type: %w", err)
	}

	totals := make([]core.TypeTotal, len(rows))
	for i, row := range rows {
		totals[i] = core.TypeTotal{Type: core.TransactionType(row.Type), Total: row.Total}
	}
	return totals, nil
}

// SumForType returns the raw aggregate for one type; ok is false when no row
// has that type.
func (r *SQLiteRepository) SumForType(ctx context.Context, t core.TransactionType) (total float64, ok bool, err error) {
	sum, err := r.queries.SumAmountForType(ctx, string(t))
	if err != nil {
		return 0, false, fmt.Errorf("sum amount for type %s: %w", t, err)
	}
	return sum.Float64, sum.Valid, nil
}

func toCore(row TransactionRow) core.Transaction {
	return core.Transaction{
		ID:          row.ID,
		Date:        row.Date,
		Category:    row.Category,
		Description: row.Description.String,
		Amount:      row.Amount,
		Type:        core.TransactionType(row.Type),
	}
}

func toCoreSlice(rows []TransactionRow) []core.Transaction {
	out := make([]core.Transaction, len(rows))
	for i, row := range rows {
		out[i] = toCore(row)
	}
	return out
}
