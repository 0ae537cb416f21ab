package moneytracker

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/etnz/moneytracker/date"
	"github.com/google/go-cmp/cmp"
)

func TestParseKind(t *testing.T) {
	for in, want := range map[string]Kind{
		"income":  Income,
		"Ingreso": Income,
		"expense": Expense,
		"egreso":  Expense,
		" gasto ": Expense,
		"EXPENSE": Expense,
	} {
		got, err := ParseKind(in)
		if err != nil || got != want {
			t.Errorf("ParseKind(%q) = %q, %v want %q", in, got, err, want)
		}
	}
	if _, err := ParseKind("transfer"); !errors.Is(err, ErrInvalidKind) {
		t.Errorf("ParseKind(transfer) error = %v, want ErrInvalidKind", err)
	}
}

func TestNewTransaction(t *testing.T) {
	tx, err := NewTransaction(Expense, A(10.005), "  ", " lunch ", D("2024-01-05"))
	if err != nil {
		t.Fatalf("NewTransaction() error = %v", err)
	}
	if tx.ID == "" {
		t.Errorf("NewTransaction() did not assign an id")
	}
	if got, want := tx.Amount.String(), "10.01"; got != want {
		t.Errorf("Amount = %s, want %s", got, want)
	}
	if got, want := tx.Category, "Expense"; got != want {
		t.Errorf("Category = %q, want %q", got, want)
	}
	if got, want := tx.Note, "lunch"; got != want {
		t.Errorf("Note = %q, want %q", got, want)
	}

	other, _ := NewTransaction(Income, A(1), "", "", D("2024-01-05"))
	if other.ID == tx.ID {
		t.Errorf("NewTransaction() ids should be unique, got %q twice", tx.ID)
	}
	if got, want := other.Category, "Income"; got != want {
		t.Errorf("Category = %q, want %q", got, want)
	}

	for _, amount := range []float64{0, -5, 0.004} {
		if _, err := NewTransaction(Income, A(amount), "", "", D("2024-01-05")); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("NewTransaction(%v) error = %v, want ErrInvalidAmount", amount, err)
		}
	}
	if _, err := NewTransaction("refund", A(1), "", "", D("2024-01-05")); !errors.Is(err, ErrInvalidKind) {
		t.Errorf("NewTransaction(refund) error = %v, want ErrInvalidKind", err)
	}
}

func TestTags(t *testing.T) {
	tx := T("t1", Expense, 5, "Food", "2024-01-05")
	tagged := tx.WithTags("trip", " ", "trip", "work")
	if diff := cmp.Diff([]string{"trip", "work"}, tagged.Tags); diff != "" {
		t.Errorf("WithTags() mismatch (-want +got):\n%s", diff)
	}
	if tx.Tags != nil {
		t.Errorf("WithTags() modified the receiver")
	}
	more := tagged.WithTags("cash")
	if diff := cmp.Diff([]string{"trip", "work", "cash"}, more.Tags); diff != "" {
		t.Errorf("WithTags() mismatch (-want +got):\n%s", diff)
	}
	if len(tagged.Tags) != 2 {
		t.Errorf("WithTags() modified a previous copy: %v", tagged.Tags)
	}
	replaced := more.ReplaceTags("home")
	if diff := cmp.Diff([]string{"home"}, replaced.Tags); diff != "" {
		t.Errorf("ReplaceTags() mismatch (-want +got):\n%s", diff)
	}
}

func TestTransactionJSON(t *testing.T) {
	tx := T("t1", Income, 100, "Salary", "2024-01-05").WithTags("job")
	tx.Note = "january"
	b, err := json.Marshal(tx)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"id":"t1","kind":"income","amount":100,"category":"Salary","note":"january","date":"2024-01-05","tags":["job"]}`
	if got := string(b); got != want {
		t.Errorf("Marshal() =\n%s\nwant\n%s", got, want)
	}

	var back Transaction
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(tx, back, cmpOpts...); diff != "" {
		t.Errorf("Unmarshal() mismatch (-want +got):\n%s", diff)
	}
}

func TestTransactionUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		json string
		want Transaction
		err  error
	}{
		{
			name: "calendar record of the web app",
			json: `{"id":"1717171717171_k3j9x2ab","tipo":"egreso","monto":12.5,"categoria":"Food","detalle":"tacos","fecha":"2024-02-01"}`,
			want: Transaction{ID: "1717171717171_k3j9x2ab", Kind: Expense, Amount: A(12.5), Category: "Food", Note: "tacos", Date: D("2024-02-01")},
		},
		{
			name: "numeric id",
			json: `{"id":1717171717171,"tipo":"ingreso","monto":100,"categoria":"Salary","fecha":"2024-02-01"}`,
			want: T("1717171717171", Income, 100, "Salary", "2024-02-01"),
		},

		{
			name: "malformed amount is zero",
			json: `{"id":"b","kind":"income","amount":"lots","category":"Gift","date":"2024-02-01"}`,
			want: T("b", Income, 0, "Gift", "2024-02-01"),
		},
		{
			name: "invalid date",
			json: `{"id":"c","kind":"income","amount":1,"date":"2024-02-30"}`,
			err:  date.ErrInvalidDateKey,
		},
		{
			name: "missing date",
			json: `{"id":"c","kind":"income","amount":1}`,
			err:  date.ErrInvalidDateKey,
		},
		{
			name: "unknown kind",
			json: `{"id":"d","kind":"loan","amount":1,"date":"2024-02-01"}`,
			err:  ErrInvalidKind,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Transaction
			err := json.Unmarshal([]byte(tt.json), &got)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("Unmarshal() error = %v, want %v", err, tt.err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got, cmpOpts...); diff != "" {
				t.Errorf("Unmarshal() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUnmarshalRejectsObjectID(t *testing.T) {
	var got Transaction
	if err := json.Unmarshal([]byte(`{"id":{"n":1},"kind":"income","amount":1,"date":"2024-02-01"}`), &got); err == nil {
		t.Errorf("Unmarshal() = %+v, want an error", got)
	}
}

func TestMarshalRejectsUndatedTransaction(t *testing.T) {
	_, err := json.Marshal(Transaction{ID: "abcd1234", Kind: Income, Amount: A(10)})
	if !errors.Is(err, date.ErrInvalidDateKey) {
		t.Errorf("Marshal() error = %v, want ErrInvalidDateKey", err)
	}
}

func TestUnmarshalAssignsMissingID(t *testing.T) {
	var got Transaction
	if err := json.Unmarshal([]byte(`{"kind":"income","amount":1,"date":"2024-02-01"}`), &got); err != nil {
		t.Fatal(err)
	}
	if got.ID == "" {
		t.Errorf("Unmarshal() should assign an id")
	}
}
