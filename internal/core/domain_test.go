package core

import (
	"errors"
	"math"
	"testing"
)

func TestParseTransactionType(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"income", true},
		{"expense", true},
		{"Income", false},
		{"", false},
		{"transfer", false},
	}
	for _, tc := range cases {
		got, err := ParseTransactionType(tc.in)
		if tc.ok {
			if err != nil || string(got) != tc.in {
				t.Fatalf("%q expected ok, got %q (err=%v)", tc.in, got, err)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidType) {
			t.Fatalf("%q expected ErrInvalidType, got %v", tc.in, err)
		}
	}
}

func TestValidateDate(t *testing.T) {
	cases := []struct {
		d  string
		ok bool
	}{
		{"2025-01-01", true},
		{"2024-02-29", true},
		{"2025-02-29", false},
		{"2025-1-1", false},
		{"01/01/2025", false},
		{"", false},
	}
	for i, tc := range cases {
		err := ValidateDate(tc.d)
		if tc.ok && err != nil {
			t.Fatalf("case %d expected ok, got %v", i, err)
		}
		if !tc.ok && !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("case %d expected ErrInvalidDate, got %v", i, err)
		}
	}
}

func TestTransactionValidate(t *testing.T) {
	good := Transaction{
		Date:     "2025-01-01",
		Category: "Salary",
		Amount:   100,
		Type:     Income,
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []struct {
		tx    Transaction
		field string
		want  error
	}{
		{Transaction{Date: "2025-01-01", Category: "Salary", Amount: 1, Type: "transfer"}, "type", ErrInvalidType},
		{Transaction{Date: "yesterday", Category: "Salary", Amount: 1, Type: Income}, "date", ErrInvalidDate},
		{Transaction{Date: "2025-01-01", Category: "  ", Amount: 1, Type: Income}, "category", ErrEmptyCategory},
		{Transaction{Date: "2025-01-01", Category: "Salary", Amount: math.NaN(), Type: Income}, "amount", ErrInvalidAmount},
		{Transaction{Date: "2025-01-01", Category: "Salary", Amount: math.Inf(1), Type: Income}, "amount", ErrInvalidAmount},
	}
	for i, tc := range bads {
		err := tc.tx.Validate()
		if !errors.Is(err, tc.want) {
			t.Fatalf("case %d expected %v, got %v", i, tc.want, err)
		}
		var verr *ValidationError
		if !errors.As(err, &verr) || verr.Field != tc.field {
			t.Fatalf("case %d expected validation error on %s, got %v", i, tc.field, err)
		}
	}
}

func TestSummaryTotalsOrder(t *testing.T) {
	s := Summary{"transfer": 5, Expense: 30, Income: 150, "adjustment": 1}
	got := s.Totals()
	want := []TransactionType{Income, Expense, "adjustment", "transfer"}
	if len(got) != len(want) {
		t.Fatalf("expected %d totals, got %v", len(want), got)
	}
	for i, w := range want {
		if got[i].Type != w {
			t.Fatalf("position %d expected %s, got %s", i, w, got[i].Type)
		}
	}
}
