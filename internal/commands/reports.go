package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"budget/internal/core"
	"budget/internal/shell"
)

func newListCommand(a *app) *cobra.Command {
	var txType string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions in insertion order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				items []core.Transaction
				err   error
			)
			if txType == "" {
				items, err = a.ledger.ListAll(cmd.Context())
			} else {
				items, err = a.ledger.ListByType(cmd.Context(), core.TransactionType(txType))
			}
			if err != nil {
				return err
			}
			shell.RenderTransactions(cmd.OutOrStdout(), items)
			return nil
		},
	}

	cmd.Flags().StringVar(&txType, "type", "", "only transactions of this type (income or expense)")
	return cmd
}

func newSummaryCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Total amount per transaction type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := a.ledger.Summary(cmd.Context())
			if err != nil {
				return err
			}
			shell.RenderSummary(cmd.OutOrStdout(), summary)
			return nil
		},
	}
}

func newBalanceCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Total income minus total expense",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			balance, err := a.ledger.Balance(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Current Balance: %s\n", core.FormatAmount(balance))
			return nil
		},
	}
}

func newCategoriesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Show the category catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := a.ledger.Catalog()
			out := cmd.OutOrStdout()
			for _, t := range core.Types() {
				fmt.Fprintf(out, "%s:\n", strings.ToUpper(t.String()[:1])+t.String()[1:])
				for i, label := range cat.Categories(t) {
					fmt.Fprintf(out, "  %d. %s\n", i+1, label)
				}
			}
			return nil
		},
	}
}
