// Package catalog holds the permissible category labels for each transaction type.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"budget/internal/core"
)

var (
	defaultIncome = []string{"Salary", "Freelance", "Investments", "Gifts", "Rental Income", "Other"}

	defaultExpense = []string{
		"Food", "Rent/Mortgage", "Utilities", "Transportation", "Healthcare", "Entertainment",
		"Education", "Clothing", "Personal Care", "Insurance", "Savings", "Debt Payments",
		"Gifts & Donations", "Household Supplies", "Miscellaneous",
	}
)

// ErrPosition is returned by Lookup for a position outside the list.
var ErrPosition = errors.New("category position out of range")

// Catalog is an immutable pair of ordered label lists.
type Catalog struct {
	income  []string
	expense []string
}

// Default returns a catalog with the built-in labels.
func Default() *Catalog {
	return New(defaultIncome, defaultExpense)
}

// New builds a catalog, dropping blank and duplicate labels while keeping order.
func New(income, expense []string) *Catalog {
	return &Catalog{income: dedupe(income), expense: dedupe(expense)}
}

type file struct {
	Income  []string `yaml:"income"`
	Expense []string `yaml:"expense"`
}

// LoadFile reads labels from a YAML file. A missing file, or an empty list in
// it, falls back to the built-in labels for that type.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}

	c := New(f.Income, f.Expense)
	if len(c.income) == 0 {
		c.income = dedupe(defaultIncome)
	}
	if len(c.expense) == 0 {
		c.expense = dedupe(defaultExpense)
	}
	return c, nil
}

// Income returns a copy of the income labels.
func (c *Catalog) Income() []string {
	return append([]string(nil), c.income...)
}

// Expense returns a copy of the expense labels.
func (c *Catalog) Expense() []string {
	return append([]string(nil), c.expense...)
}

// Categories returns the labels for t, or nil for an unknown type.
func (c *Catalog) Categories(t core.TransactionType) []string {
	switch t {
	case core.Income:
		return c.Income()
	case core.Expense:
		return c.Expense()
	default:
		return nil
	}
}

func (c *Catalog) list(t core.TransactionType) []string {
	switch t {
	case core.Income:
		return c.income
	case core.Expense:
		return c.expense
	default:
		return nil
	}
}

// Lookup maps a 1-based menu position to its label.
func (c *Catalog) Lookup(t core.TransactionType, position int) (string, error) {
	if !t.IsValid() {
		return "", &core.ValidationError{Field: "type", Value: string(t), Err: core.ErrInvalidType}
	}
	labels := c.list(t)
	if position < 1 || position > len(labels) {
		return "", fmt.Errorf("%s category %d: %w", t, position, ErrPosition)
	}
	return labels[position-1], nil
}

// Contains reports whether label is an exact entry for t.
func (c *Catalog) Contains(t core.TransactionType, label string) bool {
	for _, l := range c.list(t) {
		if l == label {
			return true
		}
	}
	return false
}

// Validate runs the transaction's own checks and then catalog membership.
func (c *Catalog) Validate(tx core.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	if !c.Contains(tx.Type, tx.Category) {
		return &core.ValidationError{Field: "category", Value: tx.Category, Err: core.ErrUnknownCategory}
	}
	return nil
}

func dedupe(in []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
