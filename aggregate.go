package moneytracker

import (
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/etnz/moneytracker/date"
)

// Uncategorized is the bucket of transactions with a blank category.
const Uncategorized = "Uncategorized"

// SumByKind returns the total amount of records of the given kind.
func SumByKind(records []Transaction, kind Kind) Amount {
	var sum Amount
	for _, r := range records {
		if r.Kind == kind {
			sum = sum.Add(r.Amount)
		}
	}
	return sum
}

// CategoryTotals are the income and expense totals of a category.
type CategoryTotals struct {
	Income  Amount
	Expense Amount
}

// Net returns income minus expense.
func (c CategoryTotals) Net() Amount { return c.Income.Sub(c.Expense) }

func categoryOf(r Transaction) string {
	if c := strings.TrimSpace(r.Category); c != "" {
		return c
	}
	return Uncategorized
}

// GroupByCategory totals records per category. The result does not depend on
// the order of records.
func GroupByCategory(records []Transaction) map[string]CategoryTotals {
	groups := make(map[string]CategoryTotals)
	for _, r := range records {
		c := categoryOf(r)
		t := groups[c]
		switch r.Kind {
		case Income:
			t.Income = t.Income.Add(r.Amount)
		case Expense:
			t.Expense = t.Expense.Add(r.Amount)
		}
		groups[c] = t
	}
	return groups
}

// GroupByMonth splits records per "YYYY-MM" month key, keeping their order.
func GroupByMonth(records []Transaction) map[string][]Transaction {
	groups := make(map[string][]Transaction)
	for _, r := range records {
		k := r.Date.MonthKey()
		groups[k] = append(groups[k], r)
	}
	return groups
}

// BalanceIndex is the cumulative balance at the end of every day that has
// at least one record.
type BalanceIndex struct {
	h date.History[Amount]
}

// RunningBalanceIndex builds the balance index of records, in any order.
func RunningBalanceIndex(records []Transaction) *BalanceIndex {
	daily := make(map[date.Date]Amount)
	for _, r := range records {
		daily[r.Date] = daily[r.Date].Add(r.Signed())
	}
	days := slices.SortedFunc(maps.Keys(daily), date.Date.Compare)

	idx := new(BalanceIndex)
	var total Amount
	for _, day := range days {
		total = total.Add(daily[day])
		idx.h.Append(day, total)
	}
	return idx
}

// Len returns the number of days in the index.
func (b *BalanceIndex) Len() int { return b.h.Len() }

// Days returns the indexed days in ascending order.
func (b *BalanceIndex) Days() []date.Date { return b.h.Days() }

// Values iterates over days and their end of day balance.
func (b *BalanceIndex) Values() iter.Seq2[date.Date, Amount] { return b.h.Values() }

// AsOf returns the balance at the end of day: the value of day itself if
// indexed, else of the latest indexed day before it, else 0.
func (b *BalanceIndex) AsOf(day date.Date) Amount {
	if b == nil {
		return Amount{}
	}
	v, _ := b.h.ValueAsOf(day)
	return v
}

// BalanceAsOf is AsOf for a day key.
func BalanceAsOf(index *BalanceIndex, key string) (Amount, error) {
	day, err := date.Parse(key)
	if err != nil {
		return Amount{}, err
	}
	return index.AsOf(day), nil
}

// FilterRange returns the records within r.
func FilterRange(records []Transaction, r date.Range) []Transaction {
	var out []Transaction
	for _, rec := range records {
		if r.Contains(rec.Date) {
			out = append(out, rec)
		}
	}
	return out
}

// Summary totals a set of records.
type Summary struct {
	Income  Amount
	Expense Amount
	Balance Amount // Income - Expense
	Count   int
}

// Summarize returns the totals of records.
func Summarize(records []Transaction) Summary {
	s := Summary{
		Income:  SumByKind(records, Income),
		Expense: SumByKind(records, Expense),
		Count:   len(records),
	}
	s.Balance = s.Income.Sub(s.Expense)
	return s
}

// TrendPoint is the activity of one period.
type TrendPoint struct {
	Range   date.Range
	Income  Amount
	Expense Amount
}

// Net returns income minus expense.
func (p TrendPoint) Net() Amount { return p.Income.Sub(p.Expense) }

// Trend buckets records per period, in ascending order. Only periods with
// records are returned.
func Trend(records []Transaction, period date.Period) []TrendPoint {
	buckets := make(map[date.Date]*TrendPoint)
	for _, r := range records {
		start := r.Date.StartOf(period)
		p, ok := buckets[start]
		if !ok {
			p = &TrendPoint{Range: date.NewRange(start, period)}
			buckets[start] = p
		}
		switch r.Kind {
		case Income:
			p.Income = p.Income.Add(r.Amount)
		case Expense:
			p.Expense = p.Expense.Add(r.Amount)
		}
	}
	points := make([]TrendPoint, 0, len(buckets))
	for _, start := range slices.SortedFunc(maps.Keys(buckets), date.Date.Compare) {
		points = append(points, *buckets[start])
	}
	return points
}
