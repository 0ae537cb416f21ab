package moneytracker

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/moneytracker/date"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultGoalEmoji decorates goals created without one.
const DefaultGoalEmoji = "🎯"

// Contribution is an amount put aside for a goal on a given day.
type Contribution struct {
	ID     string    `json:"id"`
	Amount Amount    `json:"amount"`
	Date   date.Date `json:"date"`
}

// UnmarshalJSON reads a contribution, the "monto" and "fecha" names of the
// former web app included. A contribution must have a day.
func (c *Contribution) UnmarshalJSON(b []byte) error {
	var jc struct {
		ID     recordID  `json:"id"`
		Amount Amount    `json:"amount"`
		Date   date.Date `json:"date"`
		Monto  Amount    `json:"monto"`
		Fecha  date.Date `json:"fecha"`
	}
	if err := json.Unmarshal(b, &jc); err != nil {
		return err
	}
	if jc.Amount.IsZero() {
		jc.Amount = jc.Monto
	}
	if jc.Date.IsZero() {
		jc.Date = jc.Fecha
	}
	if jc.Date.IsZero() {
		return fmt.Errorf("%w: missing contribution date", date.ErrInvalidDateKey)
	}
	if jc.ID == "" {
		jc.ID = recordID(uuid.NewString())
	}
	*c = Contribution{ID: string(jc.ID), Amount: jc.Amount, Date: jc.Date}
	return nil
}

// Goal is a savings target.
//
// Saved is the sum of all Contributions. It is only changed by Contribute.
type Goal struct {
	ID            string
	Title         string
	Emoji         string
	Target        Amount
	Currency      string
	Deadline      date.Date // zero when there is no deadline
	Favorite      bool
	Completed     bool
	Saved         Amount
	Contributions []Contribution
}

// GoalOptions are the optional attributes of a new goal.
type GoalOptions struct {
	Emoji    string
	Currency string    // defaults to DefaultCurrency
	Deadline date.Date // zero for none
	Favorite bool
	Initial  Amount    // recorded as the first contribution when positive
	On       date.Date // day of the initial contribution, defaults to today
}

// NewGoal creates a goal with a fresh id.
func NewGoal(title string, target Amount, opts GoalOptions) (Goal, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Goal{}, ErrEmptyTitle
	}
	target = target.Cents()
	if !target.IsPositive() {
		return Goal{}, fmt.Errorf("%w: target %s must be positive", ErrInvalidAmount, target)
	}
	if opts.Currency == "" {
		opts.Currency = DefaultCurrency
	}
	cur, err := ValidCurrency(opts.Currency)
	if err != nil {
		return Goal{}, err
	}
	emoji := strings.TrimSpace(opts.Emoji)
	if emoji == "" {
		emoji = DefaultGoalEmoji
	}
	g := Goal{
		ID:       uuid.NewString(),
		Title:    title,
		Emoji:    emoji,
		Target:   target,
		Currency: cur,
		Deadline: opts.Deadline,
		Favorite: opts.Favorite,
	}
	if initial := opts.Initial.Cents(); initial.IsPositive() {
		on := opts.On
		if on.IsZero() {
			on = date.Today()
		}
		return g.Contribute(initial, on)
	}
	return g, nil
}

// Contribute returns a copy of g with a new contribution appended.
func (g Goal) Contribute(amount Amount, on date.Date) (Goal, error) {
	amount = amount.Cents()
	if !amount.IsPositive() {
		return g, fmt.Errorf("%w: contribution %s must be positive", ErrInvalidAmount, amount)
	}
	if on.IsZero() {
		on = date.Today()
	}
	g.Contributions = append(slices.Clone(g.Contributions), Contribution{
		ID:     uuid.NewString(),
		Amount: amount,
		Date:   on,
	})
	g.Saved = g.Saved.Add(amount)
	return g, nil
}

// Progress returns the completion percentage, see GoalProgress.
func (g Goal) Progress() int { return GoalProgress(g) }

// Remaining returns how much is left to save, never negative.
func (g Goal) Remaining() Amount {
	r := g.Target.Sub(g.Saved)
	if r.IsNegative() {
		return Amount{}
	}
	return r
}

// Reached reports whether the saved amount covers the target.
func (g Goal) Reached() bool { return g.Target.IsPositive() && !g.Saved.LessThan(g.Target) }

// SuggestedWeekly returns the whole amount to put aside each week to reach
// the target by the deadline, counting months as 30 days and four weeks.
// It is not available without a deadline, once the deadline has passed, or
// when nothing remains to save.
func (g Goal) SuggestedWeekly(today date.Date) (Amount, bool) {
	if g.Deadline.IsZero() {
		return Amount{}, false
	}
	remaining := g.Remaining()
	if !remaining.IsPositive() {
		return Amount{}, false
	}
	days := g.Deadline.Sub(today)
	if days <= 0 {
		return Amount{}, false
	}
	months := (days + 29) / 30
	weekly := remaining.value.Div(decimal.NewFromInt(int64(months))).Div(decimal.NewFromInt(4)).Ceil()
	return Amount{weekly}, true
}

// MarshalJSON writes the goal with a stable field order.
func (g Goal) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", g.ID)
	w.Append("title", g.Title)
	w.Optional("emoji", g.Emoji)
	w.Append("targetAmount", g.Target)
	w.Append("currency", g.Currency)
	w.Optional("deadline", g.Deadline)
	w.Append("favorite", g.Favorite)
	w.Append("completed", g.Completed)
	w.Append("savedAmount", g.Saved)
	contributions := g.Contributions
	if contributions == nil {
		contributions = []Contribution{}
	}
	w.Append("contributions", contributions)
	return w.MarshalJSON()
}

// UnmarshalJSON reads a persisted goal.
// Contributions without a valid date are dropped, Saved is kept as stored.
// Goals of the former web app (titulo, montoObjetivo, ahorrado, aportes and
// numeric ids) are read too.
func (g *Goal) UnmarshalJSON(b []byte) error {
	var jg struct {
		ID            recordID          `json:"id"`
		Title         string            `json:"title"`
		Emoji         string            `json:"emoji"`
		Target        Amount            `json:"targetAmount"`
		Currency      string            `json:"currency"`
		Deadline      string            `json:"deadline"`
		Favorite      bool              `json:"favorite"`
		Completed     bool              `json:"completed"`
		Saved         Amount            `json:"savedAmount"`
		Contributions []json.RawMessage `json:"contributions"`

		Titulo        string            `json:"titulo"`
		MontoObjetivo Amount            `json:"montoObjetivo"`
		Moneda        string            `json:"moneda"`
		FechaLimite   string            `json:"fechaLimite"`
		Favorita      bool              `json:"favorita"`
		Cumplida      bool              `json:"cumplida"`
		Ahorrado      Amount            `json:"ahorrado"`
		Aportes       []json.RawMessage `json:"aportes"`
	}
	if err := json.Unmarshal(b, &jg); err != nil {
		return err
	}
	if jg.Title == "" {
		jg.Title = jg.Titulo
	}
	if strings.TrimSpace(jg.Title) == "" {
		return ErrEmptyTitle
	}
	if jg.Target.IsZero() {
		jg.Target = jg.MontoObjetivo
	}
	if jg.Currency == "" {
		jg.Currency = jg.Moneda
	}
	if jg.Deadline == "" {
		jg.Deadline = jg.FechaLimite
	}
	if jg.Saved.IsZero() {
		jg.Saved = jg.Ahorrado
	}
	if jg.Contributions == nil {
		jg.Contributions = jg.Aportes
	}
	var deadline date.Date
	if jg.Deadline != "" {
		d, err := date.Parse(jg.Deadline)
		if err != nil {
			return err
		}
		deadline = d
	}
	cur, err := ValidCurrency(jg.Currency)
	if err != nil {
		cur = DefaultCurrency
	}
	if jg.ID == "" {
		jg.ID = recordID(uuid.NewString())
	}
	contributions := make([]Contribution, 0, len(jg.Contributions))
	for _, raw := range jg.Contributions {
		var c Contribution
		if err := json.Unmarshal(raw, &c); err != nil {
			continue
		}
		contributions = append(contributions, c)
	}
	*g = Goal{
		ID:            string(jg.ID),
		Title:         jg.Title,
		Emoji:         jg.Emoji,
		Target:        jg.Target,
		Currency:      cur,
		Deadline:      deadline,
		Favorite:      jg.Favorite || jg.Favorita,
		Completed:     jg.Completed || jg.Cumplida,
		Saved:         jg.Saved,
		Contributions: contributions,
	}
	return nil
}
