package date

import (
	"testing"
	"time"
)

func TestNewRange(t *testing.T) {
	testCases := []struct {
		name   string
		in     Date
		period Period
		want   Range
	}{
		{
			name:   "a day",
			in:     New(2025, time.September, 8),
			period: Daily,
			want:   Range{From: New(2025, time.September, 8), To: New(2025, time.September, 8)},
		},
		{
			name:   "a Wednesday",
			in:     New(2025, time.September, 10),
			period: Weekly,
			want:   Range{From: New(2025, time.September, 8), To: New(2025, time.September, 14)},
		},
		{
			name:   "a Sunday",
			in:     New(2025, time.September, 14),
			period: Weekly,
			want:   Range{From: New(2025, time.September, 8), To: New(2025, time.September, 14)},
		},
		{
			name:   "a leap February",
			in:     New(2024, time.February, 15),
			period: Monthly,
			want:   Range{From: New(2024, time.February, 1), To: New(2024, time.February, 29)},
		},
		{
			name:   "a year",
			in:     New(2024, time.June, 15),
			period: Yearly,
			want:   Range{From: New(2024, time.January, 1), To: New(2024, time.December, 31)},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NewRange(tc.in, tc.period); got != tc.want {
				t.Errorf("NewRange() = %v..%v, want %v..%v", got.From, got.To, tc.want.From, tc.want.To)
			}
		})
	}
}

func TestRangeIdentifier(t *testing.T) {
	testCases := []struct {
		r    Range
		want string
	}{
		{NewRange(New(2025, time.January, 8), Daily), "2025-01-08"},
		{NewRange(New(2025, time.January, 8), Weekly), "2025-W02"},
		{NewRange(New(2025, time.January, 8), Monthly), "2025-01"},
		{YearRange(2025), "2025"},
		{Range{From: New(2025, time.January, 8), To: New(2025, time.January, 20)}, "2025-01-08_2025-01-20"},
	}
	for _, tc := range testCases {
		if got := tc.r.Identifier(); got != tc.want {
			t.Errorf("Identifier() = %q, want %q", got, tc.want)
		}
	}
}

func TestMonthRange(t *testing.T) {
	r, err := MonthRange("2024-01")
	if err != nil {
		t.Fatalf("MonthRange() error: %v", err)
	}
	if !r.Contains(New(2024, time.January, 31)) || r.Contains(New(2024, time.February, 1)) {
		t.Errorf("MonthRange(2024-01) = %v..%v has wrong bounds", r.From, r.To)
	}
}

func TestParsePeriod(t *testing.T) {
	for in, want := range map[string]Period{"day": Daily, "WEEK": Weekly, "monthly": Monthly, "year": Yearly} {
		got, err := ParsePeriod(in)
		if err != nil || got != want {
			t.Errorf("ParsePeriod(%q) = %v, %v want %v", in, got, err, want)
		}
	}
	if _, err := ParsePeriod("quarter"); err == nil {
		t.Errorf("ParsePeriod(quarter) should fail")
	}
}
