package storage

import (
	"context"
	"database/sql"
)

// DBTX is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

// Queries holds the SQL for the transactions table. Every caller-supplied
// value is passed as a bound parameter.
type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// TransactionRow mirrors one row of the transactions table.
type TransactionRow struct {
	ID          int64
	Date        string
	Category    string
	Description sql.NullString
	Amount      float64
	Type        string
}

type CreateTransactionParams struct {
	Date        string
	Category    string
	Description string
	Amount      float64
	Type        string
}

const createTransaction = `INSERT INTO transactions (date, category, description, amount, type)
VALUES (?, ?, ?, ?, ?)`

func (q *Queries) CreateTransaction(ctx context.Context, arg CreateTransactionParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, createTransaction,
		arg.Date,
		arg.Category,
		arg.Description,
		arg.Amount,
		arg.Type,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

type UpdateTransactionParams struct {
	ID          int64
	Date        string
	Category    string
	Description string
	Amount      float64
	Type        string
}

const updateTransaction = `UPDATE transactions
SET date = ?, category = ?, description = ?, amount = ?, type = ?
WHERE id = ?`

func (q *Queries) UpdateTransaction(ctx context.Context, arg UpdateTransactionParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, updateTransaction,
		arg.Date,
		arg.Category,
		arg.Description,
		arg.Amount,
		arg.Type,
		arg.ID,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const deleteTransaction = `DELETE FROM transactions WHERE id = ?`

func (q *Queries) DeleteTransaction(ctx context.Context, id int64) (int64, error) {
	res, err := q.db.ExecContext(ctx, deleteTransaction, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const getTransaction = `SELECT id, date, category, description, amount, type
FROM transactions WHERE id = ?`

func (q *Queries) GetTransaction(ctx context.Context, id int64) (TransactionRow, error) {
	var r TransactionRow
	err := q.db.QueryRowContext(ctx, getTransaction, id).Scan(
		&r.ID,
		&r.Date,
		&r.Category,
		&r.Description,
		&r.Amount,
		&r.Type,
	)
	return r, err
}

const listTransactions = `SELECT id, date, category, description, amount, type
FROM transactions ORDER BY id ASC`

func (q *Queries) ListTransactions(ctx context.Context) ([]TransactionRow, error) {
	rows, err := q.db.QueryContext(ctx, listTransactions)
	if err != nil {
		return nil, err
	}
	return scanTransactions(rows)
}

const listTransactionsByType = `SELECT id, date, category, description, amount, type
FROM transactions WHERE type = ? ORDER BY id ASC`

func (q *Queries) ListTransactionsByType(ctx context.Context, txType string) ([]TransactionRow, error) {
	rows, err := q.db.QueryContext(ctx, listTransactionsByType, txType)
	if err != nil {
		return nil, err
	}
	return scanTransactions(rows)
}

func scanTransactions(rows *sql.Rows) ([]TransactionRow, error) {
	defer rows.Close()
	var items []TransactionRow
	for rows.Next() {
		var r TransactionRow
		if err := rows.Scan(
			&r.ID,
			&r.Date,
			&r.Category,
			&r.Description,
			&r.Amount,
			&r.Type,
		); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

type SumByTypeRow struct {
	Type  string
	Total float64
}

const sumAmountByType = `SELECT type, SUM(amount) FROM transactions GROUP BY type ORDER BY type`

func (q *Queries) SumAmountByType(ctx context.Context) ([]SumByTypeRow, error) {
	rows, err := q.db.QueryContext(ctx, sumAmountByType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []SumByTypeRow
	for rows.Next() {
		var r SumByTypeRow
		if err := rows.Scan(&r.Type, &r.Total); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const sumAmountForType = `SELECT SUM(amount) FROM transactions WHERE type = ?`

// SumAmountForType yields NULL when no row has the given type.
func (q *Queries) SumAmountForType(ctx context.Context, txType string) (sql.NullFloat64, error) {
	var total sql.NullFloat64
	err := q.db.QueryRowContext(ctx, sumAmountForType, txType).Scan(&total)
	return total, err
}
