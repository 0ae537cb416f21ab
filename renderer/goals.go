package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/moneytracker"
)

// progressBar draws pct out of 100 on ten cells.
func progressBar(pct int) string {
	full := min(10, max(0, pct/10))
	return strings.Repeat("█", full) + strings.Repeat("░", 10-full)
}

// GoalsMarkdown renders the highlighted goals then the full list.
func GoalsMarkdown(o moneytracker.GoalsOverview, cur string) string {
	r := newRenderer(cur)
	r.Printf("# Goals\n\n")
	if len(o.All) == 0 {
		r.Printf("No goals yet.\n")
		return r.String()
	}
	r.Printf("%d active, %d completed.\n\n", o.Active, o.Completed)

	r.Printf("## Highlighted\n\n")
	for _, g := range o.Highlighted {
		r.goal(g)
	}

	rows := make([][]string, 0, len(o.All))
	for _, g := range o.All {
		state := ""
		switch {
		case g.Completed:
			state = "done"
		case g.Favorite:
			state = "★"
		}
		deadline := ""
		if !g.Deadline.IsZero() {
			deadline = g.Deadline.String()
		}
		rows = append(rows, []string{
			shortID(g.ID),
			cell(strings.TrimSpace(g.Emoji + " " + g.Title)),
			g.Saved.Format(g.Currency),
			g.Target.Format(g.Currency),
			fmt.Sprintf("%d%%", g.Progress),
			deadline,
			state,
		})
	}
	r.Printf("## All goals\n\n")
	r.table([]string{"ID", "Goal", "Saved", "Target", "Progress", "Deadline", ""}, rows)
	return r.String()
}

func (r *mdRenderer) goal(g moneytracker.GoalStatus) {
	r.Printf("### %s %s\n\n", g.Emoji, g.Title)
	r.Printf("`%s` %d%%, %s of %s\n\n", progressBar(g.Progress), g.Progress, g.Saved.Format(g.Currency), g.Target.Format(g.Currency))
	if !g.Deadline.IsZero() {
		r.Printf("- Deadline: %s\n", g.Deadline)
	}
	if g.Remaining.IsPositive() {
		r.Printf("- Remaining: %s\n", g.Remaining.Format(g.Currency))
	}
	if g.Weekly.IsPositive() {
		r.Printf("- Save %s a week to make it\n", g.Weekly.Format(g.Currency))
	}
	r.Printf("\n")
}

// ReflectionsMarkdown renders reflections in the given order.
func ReflectionsMarkdown(reflections []moneytracker.Reflection) string {
	r := newRenderer("")
	if len(reflections) == 0 {
		r.Printf("No reflections yet.\n")
		return r.String()
	}
	for _, ref := range reflections {
		title := ref.Timestamp.Local().Format("2006-01-02 15:04")
		switch {
		case !ref.Timestamp.IsZero():
		case ref.RawTimestamp != "":
			title = ref.RawTimestamp
		default:
			title = "undated"
		}
		if ref.Mood != "" {
			title += fmt.Sprintf(" %s %s", ref.Mood.Emoji(), ref.Mood)
		}
		r.Printf("## %s\n\n", title)
		r.Printf("%s\n\n", ref.Text)
		r.Printf("_id %s_\n\n", shortID(ref.ID))
	}
	return r.String()
}

// BudgetMarkdown renders an income allocation.
func BudgetMarkdown(a moneytracker.Allocation, cur string) string {
	r := newRenderer(cur)
	r.Printf("# Budget %s\n\n", a.Plan.Name)
	r.Printf("Income: %s\n\n", r.amount(a.Income))
	r.table([]string{"Bucket", "Share", "Amount"}, [][]string{
		{"Needs", fmt.Sprintf("%d%%", a.Plan.Needs), r.amount(a.Needs)},
		{"Wants", fmt.Sprintf("%d%%", a.Plan.Wants), r.amount(a.Wants)},
		{"Savings", fmt.Sprintf("%d%%", a.Plan.Savings), r.amount(a.Savings)},
	})
	return r.String()
}
