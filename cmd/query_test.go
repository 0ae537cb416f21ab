package cmd

import (
	"testing"
)

func TestQuery(t *testing.T) {
	doc := map[string]any{
		"transactions": []map[string]any{
			{"id": "t1", "kind": "income", "amount": 100},
			{"id": "t2", "kind": "expense", "amount": 40.5},
		},
		"currencyPreference": "USD",
	}
	tests := []struct {
		expr string
		want string
	}{
		{"$.currencyPreference", `"USD"`},
		{`$.transactions[?(@.kind=="expense")].amount`, "[\n  40.5\n]"},
		{"$.transactions[*].id", "[\n  \"t1\",\n  \"t2\"\n]"},
	}
	for _, tt := range tests {
		got, err := query(doc, tt.expr)
		if err != nil {
			t.Errorf("query(%q) error = %v", tt.expr, err)
			continue
		}
		if got != tt.want {
			t.Errorf("query(%q) = %s, want %s", tt.expr, got, tt.want)
		}
	}

	if _, err := query(doc, "$.nope"); err == nil {
		t.Errorf("query($.nope) should fail")
	}
}
