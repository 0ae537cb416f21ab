package moneytracker

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency used when none is configured.
const DefaultCurrency = "MXN"

// centDigits is the number of digits amounts are rounded to at creation.
const centDigits = 2

// Amount is a currency-less decimal amount of money.
// Its zero value is 0.
type Amount struct {
	value decimal.Decimal
}

// NewAmount returns an Amount holding value, unrounded.
func NewAmount[T float64 | int | int64 | decimal.Decimal](value T) Amount {
	switch v := any(value).(type) {
	case float64:
		return Amount{decimal.NewFromFloat(v)}
	case int:
		return Amount{decimal.NewFromInt(int64(v))}
	case int64:
		return Amount{decimal.NewFromInt(v)}
	case decimal.Decimal:
		return Amount{v}
	default:
		panic(fmt.Sprintf("unsupported amount type %T", value))
	}
}

// ParseAmount parses a user typed amount. A decimal comma is accepted.
// The result is rounded half-up to cents and must be strictly positive.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	a := Amount{v.Round(centDigits)}
	if !a.IsPositive() {
		return Amount{}, fmt.Errorf("%w: %q must be positive", ErrInvalidAmount, s)
	}
	return a, nil
}

// Cents rounds the amount half-up to cents.
func (a Amount) Cents() Amount { return Amount{a.value.Round(centDigits)} }

func (a Amount) Add(b Amount) Amount       { return Amount{a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount       { return Amount{a.value.Sub(b.value)} }
func (a Amount) Neg() Amount               { return Amount{a.value.Neg()} }
func (a Amount) Cmp(b Amount) int          { return a.value.Cmp(b.value) }
func (a Amount) Equal(b Amount) bool       { return a.value.Equal(b.value) }
func (a Amount) LessThan(b Amount) bool    { return a.value.LessThan(b.value) }
func (a Amount) GreaterThan(b Amount) bool { return a.value.GreaterThan(b.value) }
func (a Amount) IsZero() bool              { return a.value.IsZero() }
func (a Amount) IsPositive() bool          { return a.value.IsPositive() }
func (a Amount) IsNegative() bool          { return a.value.IsNegative() }
func (a Amount) Decimal() decimal.Decimal  { return a.value }

// Float64 returns the nearest float, for display purposes only.
func (a Amount) Float64() float64 { return a.value.InexactFloat64() }

// Percent returns share percent of a, rounded to cents.
func (a Amount) Percent(share int) Amount {
	return Amount{a.value.Mul(decimal.NewFromInt(int64(share))).Div(decimal.NewFromInt(100)).Round(centDigits)}
}

// String returns the amount with two decimals, like "1234.50".
func (a Amount) String() string { return a.value.StringFixed(centDigits) }

// Format returns the amount formatted in currency cur, like "$1,234.50".
// Unknown currencies fall back to String followed by the code.
func (a Amount) Format(cur string) string {
	c := money.GetCurrency(cur)
	if c == nil {
		return strings.TrimSpace(a.String() + " " + cur)
	}
	minor := a.value.Shift(int32(c.Fraction)).Round(0)
	return c.Formatter().Format(minor.IntPart())
}

// SignedFormat is like Format with an explicit sign, 0 is rendered as "-".
func (a Amount) SignedFormat(cur string) string {
	switch {
	case a.IsZero():
		return "-"
	case a.IsPositive():
		return "+" + a.Format(cur)
	default:
		return a.Format(cur)
	}
}

// MarshalJSON writes the amount as a JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.value.String()), nil
}

// UnmarshalJSON is lenient: numbers and numeric strings are read, anything
// else (null, booleans, objects, garbage, negative values) decodes to 0.
func (a *Amount) UnmarshalJSON(b []byte) error {
	*a = Amount{}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil
	}
	var v decimal.Decimal
	var err error
	switch x := raw.(type) {
	case json.Number:
		v, err = decimal.NewFromString(x.String())
	case string:
		v, err = decimal.NewFromString(strings.TrimSpace(x))
	default:
		return nil
	}
	if err != nil || v.IsNegative() {
		return nil
	}
	a.value = v
	return nil
}

// ValidCurrency returns the upper-cased ISO 4217 code, or ErrUnknownCurrency.
func ValidCurrency(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if money.GetCurrency(code) == nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
	return code, nil
}
