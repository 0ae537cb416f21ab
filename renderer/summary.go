package renderer

import (
	"strconv"

	"github.com/etnz/moneytracker"
)

// ReportMarkdown renders the statement of a period.
func ReportMarkdown(rep moneytracker.Report, notes func(id string) []string, cur string) string {
	r := newRenderer(cur)
	r.Printf("# Report %s\n\n", rep.Range)

	r.table([]string{"", "Amount"}, [][]string{
		{"Income", r.amount(rep.Summary.Income)},
		{"Expense", r.amount(rep.Summary.Expense)},
		{"Balance", r.signed(rep.Summary.Balance)},
		{"Transactions", strconv.Itoa(rep.Summary.Count)},
	})

	if len(rep.Transactions) > 0 {
		r.Printf("## Transactions\n\n")
		r.transactions(rep.Transactions, notes, true)
	}

	if len(rep.GoalsCompleted)+len(rep.GoalsPending) > 0 {
		r.Printf("## Goals\n\n")
		for _, g := range rep.GoalsCompleted {
			r.Printf("- [x] %s %s\n", g.Emoji, g.Title)
		}
		for _, g := range rep.GoalsPending {
			r.Printf("- [ ] %s %s (%d%%)\n", g.Emoji, g.Title, moneytracker.GoalProgress(g))
		}
		r.Printf("\n")
	}
	return r.String()
}

// TrendMarkdown renders the activity of successive periods.
func TrendMarkdown(points []moneytracker.TrendPoint, cur string) string {
	r := newRenderer(cur)
	if len(points) == 0 {
		r.Printf("No transactions.\n")
		return r.String()
	}
	rows := make([][]string, 0, len(points))
	for _, p := range points {
		rows = append(rows, []string{p.Range.Identifier(), r.amount(p.Income), r.amount(p.Expense), r.signed(p.Net())})
	}
	r.table([]string{"Period", "Income", "Expense", "Net"}, rows)
	return r.String()
}
