package renderer

import (
	"github.com/etnz/moneytracker"
)

// YearCloseMarkdown renders the review of a year.
func YearCloseMarkdown(yc moneytracker.YearClose, cur string) string {
	r := newRenderer(cur)
	r.Printf("# %d in review\n\n", yc.Year)

	rows := make([][]string, 0, len(yc.Months)+1)
	for _, m := range yc.Months {
		rows = append(rows, []string{monthName(m.Month), r.amount(m.Income), r.amount(m.Expense), r.signed(m.Savings)})
	}
	rows = append(rows, []string{"**Total**", r.amount(yc.Totals.Income), r.amount(yc.Totals.Expense), r.signed(yc.Totals.Balance)})
	r.table([]string{"Month", "Income", "Expense", "Savings"}, rows)

	if yc.DominantMood != "" {
		r.Printf("Mood of the year: %s %s\n\n", yc.DominantMood.Emoji(), yc.DominantMood)
	}
	if len(yc.Reflections) > 0 {
		r.Printf("## Reflections\n\n")
		for _, ref := range yc.Reflections {
			r.Printf("> %s\n>\n> _%s_\n\n", cell(ref.Text), ref.Day())
		}
		if yc.MoreReflections > 0 {
			r.Printf("And %d more.\n", yc.MoreReflections)
		}
	}
	return r.String()
}
