package cmd

import (
	"testing"

	"github.com/etnz/moneytracker/date"
)

func TestRangeFlags(t *testing.T) {
	t.Setenv(EnvTestingNow, "2024-02-10 12:00:00")
	tests := []struct {
		name    string
		flags   rangeFlags
		want    date.Range
		all     bool
		wantErr bool
	}{
		{name: "nothing", all: true},
		{
			name:  "month of today",
			flags: rangeFlags{period: "month"},
			want:  date.Range{From: date.MustParse("2024-02-01"), To: date.MustParse("2024-02-29")},
		},
		{
			name:  "year of a date",
			flags: rangeFlags{period: "year", date: "2023-06-01"},
			want:  date.Range{From: date.MustParse("2023-01-01"), To: date.MustParse("2023-12-31")},
		},
		{
			name:  "a date alone selects its month",
			flags: rangeFlags{date: "2023-06-15"},
			want:  date.Range{From: date.MustParse("2023-06-01"), To: date.MustParse("2023-06-30")},
		},
		{
			name:  "custom range",
			flags: rangeFlags{period: "week", start: "2024-01-15"},
			want:  date.Range{From: date.MustParse("2024-01-15"), To: date.MustParse("2024-02-10")},
		},
		{name: "start after end", flags: rangeFlags{start: "2024-03-01"}, wantErr: true},
		{name: "unknown period", flags: rangeFlags{period: "fortnight"}, wantErr: true},
		{name: "bad date", flags: rangeFlags{date: "2024-02-30"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, all, err := tt.flags.Range()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Range() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if all != tt.all || got != tt.want {
				t.Errorf("Range() = %v, %v, want %v, %v", got, all, tt.want, tt.all)
			}
		})
	}
}
