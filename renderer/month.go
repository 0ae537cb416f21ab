package renderer

import (
	"github.com/etnz/moneytracker"
)

// MonthMarkdown renders the calendar view of a month: its totals, its
// category breakdown, then each active day with its running balance.
func MonthMarkdown(mv moneytracker.MonthView, notes func(id string) []string, cur string) string {
	r := newRenderer(cur)
	r.Printf("# %s\n\n", monthTitle(mv.Range))

	r.table([]string{"", "Amount"}, [][]string{
		{"Opening balance", r.amount(mv.Opening)},
		{"Income", r.amount(mv.Summary.Income)},
		{"Expense", r.amount(mv.Summary.Expense)},
		{"Net", r.signed(mv.Summary.Balance)},
		{"Closing balance", r.amount(mv.Closing)},
	})

	if len(mv.Days) == 0 {
		r.Printf("No transactions this month.\n")
		return r.String()
	}

	r.Printf("## Categories\n\n")
	r.categories(mv.Breakdown)

	for _, day := range mv.Days {
		r.Printf("## %s\n\n", dayTitle(day.Day))
		r.transactions(day.Transactions, notes, false)
		r.Printf("Balance: %s\n\n", r.amount(day.Balance))
	}
	return r.String()
}

// CategoriesMarkdown renders a category breakdown.
func CategoriesMarkdown(breakdown []moneytracker.CategorySlice, cur string) string {
	r := newRenderer(cur)
	if len(breakdown) == 0 {
		r.Printf("No categories.\n")
		return r.String()
	}
	r.categories(breakdown)
	return r.String()
}

func (r *mdRenderer) categories(breakdown []moneytracker.CategorySlice) {
	rows := make([][]string, 0, len(breakdown))
	for _, c := range breakdown {
		rows = append(rows, []string{cell(c.Name), c.Color, r.amount(c.Income), r.amount(c.Expense), r.signed(c.Net())})
	}
	r.table([]string{"Category", "Color", "Income", "Expense", "Net"}, rows)
}
