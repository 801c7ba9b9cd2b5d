// Package shell is the interactive numbered menu over the ledger.
package shell

import (
	"fmt"
	"io"
)

type Item struct {
	Key   string
	Title string
}

type Menu struct {
	Items []Item
}

const (
	keyAdd        = "add"
	keyUpdate     = "update"
	keyDelete     = "delete"
	keyListAll    = "list_all"
	keyListByType = "list_by_type"
	keySummary    = "summary"
	keyBalance    = "balance"
	keyExit       = "exit"
)

// DefaultMenu is the eight-action main menu.
func DefaultMenu() Menu {
	return Menu{Items: []Item{
		{Key: keyAdd, Title: "Add Transaction"},
		{Key: keyUpdate, Title: "Update Transaction"},
		{Key: keyDelete, Title: "Delete Transaction"},
		{Key: keyListAll, Title: "View All Transactions"},
		{Key: keyListByType, Title: "View Transactions by Type"},
		{Key: keySummary, Title: "Generate Summary Report"},
		{Key: keyBalance, Title: "Calculate Current Balance"},
		{Key: keyExit, Title: "Exit"},
	}}
}

func drawMenu(w io.Writer, m Menu) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Budget Tracker")
	for i, it := range m.Items {
		fmt.Fprintf(w, "%d. %s\n", i+1, it.Title)
	}
}

func drawChoices(w io.Writer, labels []string) {
	fmt.Fprintln(w, "Select category:")
	for i, l := range labels {
		fmt.Fprintf(w, "%d. %s\n", i+1, l)
	}
}
