package moneytracker

import (
	"fmt"
	"strings"
)

// Plan splits an income into needs, wants and savings, in percent.
type Plan struct {
	Name    string
	Needs   int
	Wants   int
	Savings int
}

var (
	Balanced     = Plan{Name: "balanced", Needs: 50, Wants: 30, Savings: 20}
	Conservative = Plan{Name: "conservative", Needs: 60, Wants: 20, Savings: 20}
	Aggressive   = Plan{Name: "aggressive", Needs: 40, Wants: 30, Savings: 30}
)

// Plans lists the available budget plans.
var Plans = []Plan{Balanced, Conservative, Aggressive}

// ParsePlan returns the plan with that name.
func ParsePlan(name string) (Plan, error) {
	for _, p := range Plans {
		if strings.EqualFold(strings.TrimSpace(name), p.Name) {
			return p, nil
		}
	}
	return Plan{}, fmt.Errorf("unknown budget plan %q", name)
}

// Allocation is an income distributed according to a plan.
type Allocation struct {
	Plan    Plan
	Income  Amount
	Needs   Amount
	Wants   Amount
	Savings Amount
}

// Distribute splits income. Needs and wants are rounded to cents and savings
// take the rest, so the three parts always add up to income.
func (p Plan) Distribute(income Amount) Allocation {
	needs := income.Percent(p.Needs)
	wants := income.Percent(p.Wants)
	return Allocation{
		Plan:    p,
		Income:  income,
		Needs:   needs,
		Wants:   wants,
		Savings: income.Sub(needs).Sub(wants),
	}
}
