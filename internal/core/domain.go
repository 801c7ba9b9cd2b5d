package core

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// DateLayout is the on-disk text form of a transaction date.
const DateLayout = "2006-01-02"

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

type (
	// TransactionType classifies a transaction into a report bucket.
	TransactionType string

	Transaction struct {
		ID          int64 // Assigned by the store, zero before the first save
		Date        string
		Category    string
		Description string
		Amount      float64
		Type        TransactionType
	}
)

var (
	ErrInvalidType     = errors.New("invalid transaction type")
	ErrUnknownCategory = errors.New("unknown category")
	ErrEmptyCategory   = errors.New("empty category")
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidAmount   = errors.New("invalid amount")
)

// ValidationError reports which field of a transaction was rejected.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(field, value string, err error) error {
	return &ValidationError{Field: field, Value: value, Err: err}
}

// Types returns the recognised transaction types in menu order.
func Types() []TransactionType {
	return []TransactionType{Income, Expense}
}

// ParseTransactionType accepts the exact lowercase labels only.
func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(s)
	if !t.IsValid() {
		return "", invalid("type", s, ErrInvalidType)
	}
	return t, nil
}

func (t TransactionType) String() string {
	return string(t)
}

func (t TransactionType) IsValid() bool {
	switch t {
	case Income, Expense:
		return true
	default:
		return false
	}
}

// ValidateDate checks the strict YYYY-MM-DD form.
func ValidateDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return invalid("date", s, ErrInvalidDate)
	}
	if _, err := time.Parse(DateLayout, s); err != nil {
		return invalid("date", s, ErrInvalidDate)
	}
	return nil
}

// Validate checks everything that does not need the category catalog.
func (t Transaction) Validate() error {
	if !t.Type.IsValid() {
		return invalid("type", string(t.Type), ErrInvalidType)
	}
	if err := ValidateDate(t.Date); err != nil {
		return err
	}
	if strings.TrimSpace(t.Category) == "" {
		return invalid("category", t.Category, ErrEmptyCategory)
	}
	if math.IsNaN(t.Amount) || math.IsInf(t.Amount, 0) {
		return invalid("amount", fmt.Sprint(t.Amount), ErrInvalidAmount)
	}
	return nil
}
