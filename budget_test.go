package moneytracker

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParsePlan(t *testing.T) {
	for _, name := range []string{"balanced", " Conservative", "AGGRESSIVE"} {
		if _, err := ParsePlan(name); err != nil {
			t.Errorf("ParsePlan(%q) error = %v", name, err)
		}
	}
	if _, err := ParsePlan("yolo"); err == nil {
		t.Errorf("ParsePlan(yolo) should fail")
	}
	for _, p := range Plans {
		if p.Needs+p.Wants+p.Savings != 100 {
			t.Errorf("plan %s does not add up to 100%%", p.Name)
		}
	}
}

func TestDistribute(t *testing.T) {
	tests := []struct {
		plan   Plan
		income float64
		want   Allocation
	}{
		{
			plan:   Balanced,
			income: 10000,
			want:   Allocation{Plan: Balanced, Income: A(10000), Needs: A(5000), Wants: A(3000), Savings: A(2000)},
		},
		{
			plan:   Aggressive,
			income: 0.01,
			want:   Allocation{Plan: Aggressive, Income: A(0.01), Needs: A(0), Wants: A(0), Savings: A(0.01)},
		},
		{
			plan:   Conservative,
			income: 333.33,
			want:   Allocation{Plan: Conservative, Income: A(333.33), Needs: A(200), Wants: A(66.67), Savings: A(66.66)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.plan.Name, func(t *testing.T) {
			got := tt.plan.Distribute(A(tt.income))
			if diff := cmp.Diff(tt.want, got, cmpOpts...); diff != "" {
				t.Errorf("Distribute(%v) mismatch (-want +got):\n%s", tt.income, diff)
			}
			if sum := got.Needs.Add(got.Wants).Add(got.Savings); !sum.Equal(got.Income) {
				t.Errorf("parts add up to %s, want %s", sum, got.Income)
			}
		})
	}
}
