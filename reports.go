package moneytracker

import (
	"time"

	"github.com/etnz/moneytracker/date"
)

// Report is the statement of a period: its totals, its transactions, and
// where the goals stand.
type Report struct {
	Range          date.Range
	Summary        Summary
	Transactions   []Transaction // sorted by day
	GoalsCompleted []Goal
	GoalsPending   []Goal
}

// Report returns the statement of r.
func (v *View) Report(r date.Range) Report {
	records := FilterRange(v.snap.Transactions, r)
	Sort(records)
	rep := Report{
		Range:        r,
		Summary:      Summarize(records),
		Transactions: records,
	}
	for _, g := range v.snap.Goals {
		if g.Completed {
			rep.GoalsCompleted = append(rep.GoalsCompleted, g)
		} else {
			rep.GoalsPending = append(rep.GoalsPending, g)
		}
	}
	return rep
}

// MonthTotals are the totals of one month of a year close.
type MonthTotals struct {
	Month   time.Month
	Income  Amount
	Expense Amount
	Savings Amount // Income - Expense
}

// YearCloseReflections is the number of reflections quoted in a year close.
const YearCloseReflections = 3

// YearClose reviews a whole year, month by month.
type YearClose struct {
	Year            int
	Months          [12]MonthTotals
	Totals          Summary
	DominantMood    Mood // empty when no reflection of the year has a mood
	Reflections     []Reflection
	MoreReflections int // reflections of the year not quoted
}

// YearClose returns the review of year.
func (v *View) YearClose(year int) YearClose {
	yc := YearClose{Year: year}
	records := FilterRange(v.snap.Transactions, date.YearRange(year))
	for i := range yc.Months {
		yc.Months[i].Month = time.Month(i + 1)
	}
	for _, r := range records {
		m := &yc.Months[r.Date.Month()-1]
		switch r.Kind {
		case Income:
			m.Income = m.Income.Add(r.Amount)
		case Expense:
			m.Expense = m.Expense.Add(r.Amount)
		}
	}
	for i := range yc.Months {
		yc.Months[i].Savings = yc.Months[i].Income.Sub(yc.Months[i].Expense)
	}
	yc.Totals = Summarize(records)

	var ofYear []Reflection
	for _, r := range v.snap.Reflections {
		if r.Day().Year() == year {
			ofYear = append(ofYear, r)
		}
	}
	yc.DominantMood = dominantMood(ofYear)
	n := min(len(ofYear), YearCloseReflections)
	yc.Reflections = ofYear[:n:n]
	yc.MoreReflections = len(ofYear) - n
	return yc
}

// dominantMood returns the most frequent mood, ties go to the first in Moods.
func dominantMood(reflections []Reflection) Mood {
	counts := make(map[Mood]int)
	for _, r := range reflections {
		if r.Mood != "" {
			counts[r.Mood]++
		}
	}
	var best Mood
	for _, m := range Moods {
		if counts[m] > counts[best] {
			best = m
		}
	}
	return best
}
