package moneytracker

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input string
		want  string
		err   bool
	}{
		{"12", "12.00", false},
		{"12.345", "12.35", false},
		{"12.344", "12.34", false},
		{"0.005", "0.01", false},
		{" 7,5 ", "7.50", false},
		{"0", "", true},
		{"0.004", "", true},
		{"-3", "", true},
		{"abc", "", true},
		{"", "", true},
		{"NaN", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.err {
				if !errors.Is(err, ErrInvalidAmount) {
					t.Fatalf("ParseAmount(%q) error = %v, want ErrInvalidAmount", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount(%q) unexpected error: %v", tt.input, err)
			}
			if got.String() != tt.want {
				t.Errorf("ParseAmount(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestAmountFormat(t *testing.T) {
	if got, want := A(1234.5).Format("MXN"), "$1,234.50"; got != want {
		t.Errorf("Format(MXN) = %q, want %q", got, want)
	}
	if got, want := A(12).Format("XXX-unknown"), "12.00 XXX-unknown"; got != want {
		t.Errorf("Format(unknown) = %q, want %q", got, want)
	}
	if got, want := A(0).SignedFormat("MXN"), "-"; got != want {
		t.Errorf("SignedFormat(0) = %q, want %q", got, want)
	}
	if got, want := A(3).SignedFormat("MXN"), "+$3.00"; got != want {
		t.Errorf("SignedFormat(3) = %q, want %q", got, want)
	}
}

func TestAmountUnmarshalIsLenient(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`12.5`, "12.50"},
		{`"40"`, "40.00"},
		{`" 3.25 "`, "3.25"},
		{`null`, "0.00"},
		{`true`, "0.00"},
		{`{}`, "0.00"},
		{`"abc"`, "0.00"},
		{`"NaN"`, "0.00"},
		{`-5`, "0.00"},
	}
	for _, tt := range tests {
		var got Amount
		if err := json.Unmarshal([]byte(tt.input), &got); err != nil {
			t.Errorf("Unmarshal(%s) error = %v", tt.input, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("Unmarshal(%s) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestAmountMarshalIsANumber(t *testing.T) {
	b, err := json.Marshal(struct{ A Amount }{A(10.25)})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(b), `{"A":10.25}`; got != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
}

func TestValidCurrency(t *testing.T) {
	if got, err := ValidCurrency(" usd "); err != nil || got != "USD" {
		t.Errorf("ValidCurrency(usd) = %q, %v", got, err)
	}
	if _, err := ValidCurrency("ZZZ"); !errors.Is(err, ErrUnknownCurrency) {
		t.Errorf("ValidCurrency(ZZZ) error = %v, want ErrUnknownCurrency", err)
	}
}
