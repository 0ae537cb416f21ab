package moneytracker

import (
	"testing"
	"time"

	"github.com/etnz/moneytracker/date"
	"github.com/google/go-cmp/cmp"
)

func TestReport(t *testing.T) {
	snap := DefaultSnapshot(D("2024-03-01"))
	snap.Transactions = []Transaction{
		T("b", Expense, 30, "Food", "2024-02-20"),
		T("a", Income, 100, "Salary", "2024-02-01"),
		T("c", Income, 7, "Gift", "2024-03-01"),
	}
	snap.Goals = []Goal{
		{ID: "g1", Title: "Bike", Completed: true},
		{ID: "g2", Title: "Trip"},
	}
	r, _ := date.MonthRange("2024-02")
	got := NewView(snap, D("2024-03-01")).Report(r)

	want := Report{
		Range:          r,
		Summary:        Summary{Income: A(100), Expense: A(30), Balance: A(70), Count: 2},
		Transactions:   []Transaction{snap.Transactions[1], snap.Transactions[0]},
		GoalsCompleted: []Goal{snap.Goals[0]},
		GoalsPending:   []Goal{snap.Goals[1]},
	}
	if diff := cmp.Diff(want, got, cmpOpts...); diff != "" {
		t.Errorf("Report() mismatch (-want +got):\n%s", diff)
	}
}

func TestYearClose(t *testing.T) {
	snap := DefaultSnapshot(D("2024-12-31"))
	snap.Transactions = []Transaction{
		T("a", Income, 100, "", "2024-01-15"),
		T("b", Expense, 30, "", "2024-01-20"),
		T("c", Expense, 10, "", "2024-12-01"),
		T("d", Income, 999, "", "2023-12-31"),
	}
	reflection := func(id string, mood Mood, ts string) Reflection {
		return Reflection{ID: id, Text: id, Mood: mood, Timestamp: mustTime(ts)}
	}
	snap.Reflections = []Reflection{
		reflection("r1", Tired, "2024-06-10T12:00:00Z"),
		reflection("r2", Happy, "2024-06-09T12:00:00Z"),
		reflection("r3", Tired, "2024-06-08T12:00:00Z"),
		reflection("r4", "", "2024-06-07T12:00:00Z"),
		reflection("r5", Happy, "2024-06-06T12:00:00Z"),
		reflection("old", Sad, "2023-06-06T12:00:00Z"),
	}

	yc := NewView(snap, D("2024-12-31")).YearClose(2024)

	jan := MonthTotals{Month: time.January, Income: A(100), Expense: A(30), Savings: A(70)}
	if diff := cmp.Diff(jan, yc.Months[0], cmpOpts...); diff != "" {
		t.Errorf("January mismatch (-want +got):\n%s", diff)
	}
	dec := MonthTotals{Month: time.December, Expense: A(10), Savings: A(-10)}
	if diff := cmp.Diff(dec, yc.Months[11], cmpOpts...); diff != "" {
		t.Errorf("December mismatch (-want +got):\n%s", diff)
	}
	if yc.Months[5].Month != time.June || !yc.Months[5].Savings.IsZero() {
		t.Errorf("June = %+v, want empty", yc.Months[5])
	}
	if !yc.Totals.Balance.Equal(A(60)) || yc.Totals.Count != 3 {
		t.Errorf("Totals = %+v", yc.Totals)
	}

	// Happy and Tired are tied, Happy comes first.
	if yc.DominantMood != Happy {
		t.Errorf("DominantMood = %q, want %q", yc.DominantMood, Happy)
	}
	if len(yc.Reflections) != YearCloseReflections || yc.Reflections[0].ID != "r1" {
		t.Errorf("Reflections = %v", yc.Reflections)
	}
	if yc.MoreReflections != 2 {
		t.Errorf("MoreReflections = %d, want 2", yc.MoreReflections)
	}

	empty := NewView(snap, D("2024-12-31")).YearClose(2020)
	if empty.DominantMood != "" || len(empty.Reflections) != 0 || empty.MoreReflections != 0 {
		t.Errorf("YearClose(2020) = %+v", empty)
	}
}
