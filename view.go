package moneytracker

import (
	"maps"
	"slices"
	"strings"

	"github.com/etnz/moneytracker/date"
	"github.com/shopspring/decimal"
)

// Palette is cycled through to color categories without an explicit color.
var Palette = []string{
	"#3b82f6",
	"#4caf50",
	"#f44336",
	"#ff9800",
	"#9c27b0",
	"#00bcd4",
	"#ffeb3b",
	"#795548",
}

// MaxHighlightedGoals is the number of goals HighlightedGoals returns at most.
const MaxHighlightedGoals = 5

// MonthOptions returns the distinct month keys of records, most recent first.
func MonthOptions(records []Transaction) []string {
	months := slices.Collect(maps.Keys(GroupByMonth(records)))
	slices.SortFunc(months, func(a, b string) int { return strings.Compare(b, a) })
	return months
}

// CategorySlice is one category of a breakdown.
type CategorySlice struct {
	Name  string
	Color string
	CategoryTotals
}

// CategoryBreakdown totals records per category, sorted by name. A category
// takes its color from categories when defined there, else Palette[i%len]
// where i is its position in the breakdown.
func CategoryBreakdown(records []Transaction, categories []Category) []CategorySlice {
	colors := make(map[string]string, len(categories))
	for _, c := range categories {
		if c.Color != "" {
			colors[strings.ToLower(c.Name)] = c.Color
		}
	}
	groups := GroupByCategory(records)
	out := make([]CategorySlice, 0, len(groups))
	for i, name := range slices.Sorted(maps.Keys(groups)) {
		color, ok := colors[strings.ToLower(name)]
		if !ok {
			color = Palette[i%len(Palette)]
		}
		out = append(out, CategorySlice{Name: name, Color: color, CategoryTotals: groups[name]})
	}
	return out
}

// GoalProgress returns min(100, round(saved/target*100)), and 0 when the
// target is not positive.
func GoalProgress(g Goal) int {
	if !g.Target.IsPositive() {
		return 0
	}
	pct := g.Saved.value.Mul(decimal.NewFromInt(100)).Div(g.Target.value).Round(0).IntPart()
	return int(min(100, max(0, pct)))
}

// HighlightedGoals returns the goals to feature: the favorites if there are
// any, else all of them, by ascending deadline with undated goals last,
// at most MaxHighlightedGoals.
func HighlightedGoals(goals []Goal) []Goal {
	var picked []Goal
	for _, g := range goals {
		if g.Favorite {
			picked = append(picked, g)
		}
	}
	if len(picked) == 0 {
		picked = slices.Clone(goals)
	}
	slices.SortStableFunc(picked, func(a, b Goal) int {
		switch {
		case a.Deadline.IsZero() && b.Deadline.IsZero():
			return 0
		case a.Deadline.IsZero():
			return 1
		case b.Deadline.IsZero():
			return -1
		default:
			return a.Deadline.Compare(b.Deadline)
		}
	})
	if len(picked) > MaxHighlightedGoals {
		picked = picked[:MaxHighlightedGoals]
	}
	return picked
}

// View computes the derived data presented to the user from a snapshot.
// It is a value computed on demand, it is never persisted.
type View struct {
	snap    Snapshot
	today   date.Date
	balance *BalanceIndex
}

// NewView returns the view of snap as of today.
func NewView(snap Snapshot, today date.Date) *View {
	return &View{
		snap:    snap,
		today:   today,
		balance: RunningBalanceIndex(snap.Transactions),
	}
}

// Snapshot returns the snapshot the view was computed from.
func (v *View) Snapshot() Snapshot { return v.snap }

// Today returns the day the view considers as today.
func (v *View) Today() date.Date { return v.today }

// Currency returns the preferred display currency.
func (v *View) Currency() string {
	if v.snap.CurrencyPreference == "" {
		return DefaultCurrency
	}
	return v.snap.CurrencyPreference
}

// Balance returns the balance at the end of day.
func (v *View) Balance(day date.Date) Amount { return v.balance.AsOf(day) }

// Months returns the month selector options.
func (v *View) Months() []string { return MonthOptions(v.snap.Transactions) }

// Breakdown returns the category breakdown of records.
func (v *View) Breakdown(records []Transaction) []CategorySlice {
	return CategoryBreakdown(records, v.snap.Categories)
}

// Notes returns the notes attached to a transaction.
func (v *View) Notes(id string) []string { return v.snap.NotesByTransactionID[id] }

// DayGroup is the activity of a single day.
type DayGroup struct {
	Day          date.Date
	Transactions []Transaction
	Balance      Amount // end of day balance, all history included
}

// MonthView is everything shown for one month.
type MonthView struct {
	Key       string
	Range     date.Range
	Opening   Amount // balance at the end of the previous month
	Closing   Amount
	Summary   Summary
	Breakdown []CategorySlice
	Days      []DayGroup
}

// Month returns the view of a "YYYY-MM" month.
func (v *View) Month(key string) (MonthView, error) {
	r, err := date.MonthRange(key)
	if err != nil {
		return MonthView{}, err
	}
	records := FilterRange(v.snap.Transactions, r)
	Sort(records)

	mv := MonthView{
		Key:       key,
		Range:     r,
		Opening:   v.balance.AsOf(r.From.Add(-1)),
		Closing:   v.balance.AsOf(r.To),
		Summary:   Summarize(records),
		Breakdown: v.Breakdown(records),
	}
	for _, rec := range records {
		if n := len(mv.Days); n > 0 && mv.Days[n-1].Day == rec.Date {
			mv.Days[n-1].Transactions = append(mv.Days[n-1].Transactions, rec)
			continue
		}
		mv.Days = append(mv.Days, DayGroup{Day: rec.Date, Transactions: []Transaction{rec}, Balance: v.balance.AsOf(rec.Date)})
	}
	return mv, nil
}

// SelectedMonth returns the view of the month under the cursor.
func (v *View) SelectedMonth() (MonthView, error) {
	key := v.snap.SelectedMonth
	if key == "" {
		key = v.today.MonthKey()
	}
	return v.Month(key)
}

// GoalStatus is a goal with its derived figures.
type GoalStatus struct {
	Goal
	Progress  int
	Remaining Amount
	Weekly    Amount // suggested weekly saving, zero when not available
}

// GoalsOverview summarizes all goals.
type GoalsOverview struct {
	Highlighted []GoalStatus
	All         []GoalStatus
	Active      int
	Completed   int
}

func (v *View) status(g Goal) GoalStatus {
	weekly, _ := g.SuggestedWeekly(v.today)
	return GoalStatus{Goal: g, Progress: GoalProgress(g), Remaining: g.Remaining(), Weekly: weekly}
}

// GoalsOverview returns the state of every goal.
func (v *View) GoalsOverview() GoalsOverview {
	var o GoalsOverview
	for _, g := range v.snap.Goals {
		o.All = append(o.All, v.status(g))
		if g.Completed {
			o.Completed++
		} else {
			o.Active++
		}
	}
	for _, g := range HighlightedGoals(v.snap.Goals) {
		o.Highlighted = append(o.Highlighted, v.status(g))
	}
	return o
}

// Tags returns the distinct tags in use, sorted.
func (v *View) Tags() []string {
	set := map[string]bool{}
	for _, t := range v.snap.Transactions {
		for _, tag := range t.Tags {
			set[tag] = true
		}
	}
	return slices.Sorted(maps.Keys(set))
}
