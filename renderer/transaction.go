package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/moneytracker"
)

// Transaction renders a transaction to a single line.
func Transaction(tx moneytracker.Transaction, cur string) string {
	var b strings.Builder
	switch tx.Kind {
	case moneytracker.Income:
		fmt.Fprintf(&b, "Received %s", tx.Amount.Format(cur))
	case moneytracker.Expense:
		fmt.Fprintf(&b, "Spent %s", tx.Amount.Format(cur))
	default:
		fmt.Fprintf(&b, "%s %s", tx.Kind, tx.Amount.Format(cur))
	}
	if tx.Category != "" {
		fmt.Fprintf(&b, " in %s", tx.Category)
	}
	fmt.Fprintf(&b, " on %s", tx.Date)
	if tx.Note != "" {
		fmt.Fprintf(&b, " (%s)", tx.Note)
	}
	return b.String()
}

// TransactionsMarkdown lists records in a table. notes returns the notes
// attached to a record, it may be nil.
func TransactionsMarkdown(records []moneytracker.Transaction, notes func(id string) []string, cur string) string {
	r := newRenderer(cur)
	if len(records) == 0 {
		r.Printf("No transactions.\n")
		return r.String()
	}
	r.transactions(records, notes, true)
	return r.String()
}

func (r *mdRenderer) transactions(records []moneytracker.Transaction, notes func(id string) []string, withDate bool) {
	header := []string{"ID", "Date", "Category", "Amount", "Tags", "Note"}
	if !withDate {
		header = []string{"ID", "Category", "Amount", "Tags", "Note"}
	}
	rows := make([][]string, 0, len(records))
	for _, tx := range records {
		amount := r.amount(tx.Amount)
		if tx.Kind == moneytracker.Expense {
			amount = "-" + amount
		} else {
			amount = "+" + amount
		}
		note := []string{}
		if tx.Note != "" {
			note = append(note, tx.Note)
		}
		if notes != nil {
			note = append(note, notes(tx.ID)...)
		}
		row := []string{shortID(tx.ID)}
		if withDate {
			row = append(row, tx.Date.String())
		}
		row = append(row,
			cell(tx.Category),
			amount,
			cell(strings.Join(tx.Tags, ", ")),
			cell(strings.Join(note, "; ")),
		)
		rows = append(rows, row)
	}
	r.table(header, rows)
}

// WriteTransactions writes one line per record to w, and nothing at all
// when there are no records.
func WriteTransactions(w io.Writer, records []moneytracker.Transaction, cur string) {
	ConditionalBlock(w, func(w io.Writer) bool {
		for _, tx := range records {
			fmt.Fprintf(w, "- %s\n", Transaction(tx, cur))
		}
		return len(records) > 0
	})
}
