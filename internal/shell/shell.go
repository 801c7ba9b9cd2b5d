package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"budget/internal/core"
	applog "budget/internal/log"
	"budget/internal/services"
)

// inputError is a problem with what the user typed; the menu reports it and
// carries on.
type inputError struct {
	msg string
}

func (e inputError) Error() string { return e.msg }

func badInput(format string, args ...any) error {
	return inputError{msg: fmt.Sprintf(format, args...)}
}

type Shell struct {
	ledger *services.Ledger
	menu   Menu
	in     *bufio.Scanner
	out    io.Writer
	logger *applog.Logger
}

func New(ledger *services.Ledger, in io.Reader, out io.Writer, logger *applog.Logger) *Shell {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	return &Shell{
		ledger: ledger,
		menu:   DefaultMenu(),
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger.WithComponent(applog.ComponentShell),
	}
}

// Run shows the menu until the user exits, input ends or ctx is cancelled.
// Failed operations are reported and the loop continues.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		drawMenu(s.out, s.menu)
		raw, err := s.prompt("Enter choice: ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		n, convErr := strconv.Atoi(raw)
		if convErr != nil || n < 1 || n > len(s.menu.Items) {
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
			continue
		}

		key := s.menu.Items[n-1].Key
		if key == keyExit {
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		}

		err = s.execute(ctx, key)
		var ie inputError
		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			return nil
		case errors.As(err, &ie):
			fmt.Fprintf(s.out, "%s. Please try again.\n", ie.msg)
		default:
			s.logger.ErrorContext(ctx, "Menu action failed", applog.FieldOperation, key, applog.FieldError, err)
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
	}
}

func (s *Shell) execute(ctx context.Context, key string) error {
	switch key {
	case keyAdd:
		return s.add(ctx)
	case keyUpdate:
		return s.update(ctx)
	case keyDelete:
		return s.delete(ctx)
	case keyListAll:
		return s.listAll(ctx)
	case keyListByType:
		return s.listByType(ctx)
	case keySummary:
		return s.summary(ctx)
	case keyBalance:
		return s.balance(ctx)
	default:
		return fmt.Errorf("unknown menu action %q", key)
	}
}

func (s *Shell) add(ctx context.Context) error {
	tx, err := s.readTransaction()
	if err != nil {
		return err
	}
	id, err := s.ledger.Add(ctx, tx)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Transaction %d added.\n", id)
	return nil
}

func (s *Shell) update(ctx context.Context) error {
	id, err := s.readID()
	if err != nil {
		return err
	}
	tx, err := s.readTransaction()
	if err != nil {
		return err
	}
	tx.ID = id
	found, err := s.ledger.Update(ctx, tx)
	if err != nil {
		return err
	}
	if !found {
		fmt.Fprintf(s.out, "No transaction with ID %d.\n", id)
		return nil
	}
	fmt.Fprintf(s.out, "Transaction %d updated.\n", id)
	return nil
}

func (s *Shell) delete(ctx context.Context) error {
	id, err := s.readID()
	if err != nil {
		return err
	}
	found, err := s.ledger.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		fmt.Fprintf(s.out, "No transaction with ID %d.\n", id)
		return nil
	}
	fmt.Fprintf(s.out, "Transaction %d deleted.\n", id)
	return nil
}

func (s *Shell) listAll(ctx context.Context) error {
	items, err := s.ledger.ListAll(ctx)
	if err != nil {
		return err
	}
	RenderTransactions(s.out, items)
	return nil
}

func (s *Shell) listByType(ctx context.Context) error {
	raw, err := s.prompt("Enter type (income/expense): ")
	if err != nil {
		return err
	}
	items, err := s.ledger.ListByType(ctx, core.TransactionType(raw))
	if err != nil {
		return err
	}
	RenderTransactions(s.out, items)
	return nil
}

func (s *Shell) summary(ctx context.Context) error {
	summary, err := s.ledger.Summary(ctx)
	if err != nil {
		return err
	}
	RenderSummary(s.out, summary)
	return nil
}

func (s *Shell) balance(ctx context.Context) error {
	balance, err := s.ledger.Balance(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Current Balance: %s\n", core.FormatAmount(balance))
	return nil
}

// readTransaction collects every field except the id, in the order date,
// type, category, description, amount.
func (s *Shell) readTransaction() (core.Transaction, error) {
	date, err := s.prompt("Enter date (YYYY-MM-DD): ")
	if err != nil {
		return core.Transaction{}, err
	}
	if err := core.ValidateDate(date); err != nil {
		return core.Transaction{}, badInput("Invalid date %q, expected YYYY-MM-DD", date)
	}

	raw, err := s.prompt("Enter type (income/expense): ")
	if err != nil {
		return core.Transaction{}, err
	}
	txType, err := core.ParseTransactionType(raw)
	if err != nil {
		return core.Transaction{}, badInput("Invalid type")
	}

	cat := s.ledger.Catalog()
	drawChoices(s.out, cat.Categories(txType))
	raw, err = s.prompt("Enter choice: ")
	if err != nil {
		return core.Transaction{}, err
	}
	pos, err := strconv.Atoi(raw)
	if err != nil {
		return core.Transaction{}, badInput("Invalid category choice %q", raw)
	}
	category, err := cat.Lookup(txType, pos)
	if err != nil {
		return core.Transaction{}, badInput("Invalid category choice %d", pos)
	}

	description, err := s.prompt("Enter description: ")
	if err != nil {
		return core.Transaction{}, err
	}

	raw, err = s.prompt("Enter amount: ")
	if err != nil {
		return core.Transaction{}, err
	}
	amount, err := core.ParseAmount(raw)
	if err != nil {
		return core.Transaction{}, badInput("Invalid amount %q", raw)
	}

	return core.Transaction{
		Date:        date,
		Category:    category,
		Description: description,
		Amount:      amount,
		Type:        txType,
	}, nil
}

func (s *Shell) readID() (int64, error) {
	raw, err := s.prompt("Enter transaction ID: ")
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, badInput("Invalid transaction ID %q", raw)
	}
	return id, nil
}

// prompt prints label and returns the next trimmed line, or io.EOF when input
// is exhausted.
func (s *Shell) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		fmt.Fprintln(s.out)
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

// RenderTransactions prints transactions as a table.
func RenderTransactions(w io.Writer, items []core.Transaction) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No transactions found.")
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Date", "Type", "Category", "Description", "Amount"})
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
	})
	for _, t := range items {
		table.Append([]string{
			strconv.FormatInt(t.ID, 10),
			t.Date,
			string(t.Type),
			t.Category,
			t.Description,
			core.FormatAmount(t.Amount),
		})
	}
	table.Render()
}

// RenderSummary prints one "type: total" line per type label.
func RenderSummary(w io.Writer, summary core.Summary) {
	if len(summary) == 0 {
		fmt.Fprintln(w, "No transactions recorded.")
		return
	}
	for _, t := range summary.Totals() {
		fmt.Fprintf(w, "%s: %s\n", t.Type, core.FormatAmount(t.Total))
	}
}
