package moneytracker

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/moneytracker/date"
	"github.com/google/uuid"
)

// Kind is the direction of a transaction.
type Kind string

const (
	Income  Kind = "income"
	Expense Kind = "expense"
)

// ParseKind parses a kind name. The Spanish names of the former web app are
// accepted.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income", "ingreso":
		return Income, nil
	case "expense", "egreso", "gasto":
		return Expense, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
	}
}

func (k Kind) String() string { return string(k) }

// defaultCategory is used when a transaction is created with a blank category.
func (k Kind) defaultCategory() string {
	if k == Income {
		return "Income"
	}
	return "Expense"
}

// Transaction is a dated income or expense record.
type Transaction struct {
	ID       string
	Kind     Kind
	Amount   Amount
	Category string
	Note     string
	Date     date.Date
	Tags     []string
}

// NewTransaction creates a transaction with a fresh id.
// amount is rounded to cents and must be positive.
func NewTransaction(kind Kind, amount Amount, category, note string, on date.Date) (Transaction, error) {
	if kind != Income && kind != Expense {
		return Transaction{}, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}
	amount = amount.Cents()
	if !amount.IsPositive() {
		return Transaction{}, fmt.Errorf("%w: %s must be positive", ErrInvalidAmount, amount)
	}
	if on.IsZero() {
		on = date.Today()
	}
	category = strings.TrimSpace(category)
	if category == "" {
		category = kind.defaultCategory()
	}
	return Transaction{
		ID:       uuid.NewString(),
		Kind:     kind,
		Amount:   amount,
		Category: category,
		Note:     strings.TrimSpace(note),
		Date:     on,
	}, nil
}

// Signed returns the amount, negated for expenses.
func (t Transaction) Signed() Amount {
	if t.Kind == Expense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// WithTags returns a copy of t with tags appended, skipping blanks and duplicates.
func (t Transaction) WithTags(tags ...string) Transaction {
	t.Tags = appendTags(slices.Clone(t.Tags), tags...)
	return t
}

// ReplaceTags returns a copy of t whose tag list is replaced.
func (t Transaction) ReplaceTags(tags ...string) Transaction {
	t.Tags = appendTags(nil, tags...)
	return t
}

func appendTags(list []string, tags ...string) []string {
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || slices.Contains(list, tag) {
			continue
		}
		list = append(list, tag)
	}
	return list
}

// MarshalJSON writes the transaction with a stable field order.
// A transaction without a day cannot be written, it would not read back.
func (t Transaction) MarshalJSON() ([]byte, error) {
	if t.Date.IsZero() {
		return nil, fmt.Errorf("%w: transaction %s has no date", date.ErrInvalidDateKey, t.ID)
	}
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("kind", t.Kind)
	w.Append("amount", t.Amount)
	w.Append("category", t.Category)
	w.Optional("note", t.Note)
	w.Append("date", t.Date)
	w.Optional("tags", t.Tags)
	return w.MarshalJSON()
}

// UnmarshalJSON reads a persisted transaction.
// The date must be a valid key and the kind known, the amount is lenient.
// A missing id is replaced by a fresh one. Records written by the calendar of
// the former web app (tipo, monto, categoria, detalle, fecha and numeric ids)
// are read too.
func (t *Transaction) UnmarshalJSON(b []byte) error {
	var jt struct {
		ID       recordID  `json:"id"`
		Kind     string    `json:"kind"`
		Amount   Amount    `json:"amount"`
		Category string    `json:"category"`
		Note     string    `json:"note"`
		Date     date.Date `json:"date"`
		Tags     []string  `json:"tags"`

		Tipo      string    `json:"tipo"`
		Monto     Amount    `json:"monto"`
		Categoria string    `json:"categoria"`
		Detalle   string    `json:"detalle"`
		Fecha     date.Date `json:"fecha"`
	}
	if err := json.Unmarshal(b, &jt); err != nil {
		return err
	}
	if jt.Kind == "" {
		jt.Kind = jt.Tipo
	}
	if jt.Amount.IsZero() {
		jt.Amount = jt.Monto
	}
	if jt.Category == "" {
		jt.Category = jt.Categoria
	}
	if jt.Note == "" {
		jt.Note = jt.Detalle
	}
	if jt.Date.IsZero() {
		jt.Date = jt.Fecha
	}
	if jt.Date.IsZero() {
		return fmt.Errorf("%w: missing transaction date", date.ErrInvalidDateKey)
	}
	kind, err := ParseKind(jt.Kind)
	if err != nil {
		return err
	}
	if jt.ID == "" {
		jt.ID = recordID(uuid.NewString())
	}
	*t = Transaction{
		ID:       string(jt.ID),
		Kind:     kind,
		Amount:   jt.Amount,
		Category: jt.Category,
		Note:     jt.Note,
		Date:     jt.Date,
		Tags:     appendTags(nil, jt.Tags...),
	}
	return nil
}

// Sort orders transactions by day, keeping insertion order within a day.
func Sort(records []Transaction) {
	slices.SortStableFunc(records, func(a, b Transaction) int { return a.Date.Compare(b.Date) })
}
