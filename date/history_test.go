package date

import "testing"

func TestAppend(t *testing.T) {
	h := new(History[string])
	d1, v1 := New(2025, 7, 1), "25 Jul 1"
	d2, v2 := New(2024, 7, 1), "24 Jul 1"

	// Appending in reverse order must keep the series sorted.
	if h.Len() != 0 {
		t.Errorf("History.Len() = %v want 0", h.Len())
	}

	h.Append(d1, v1)
	if h.Len() != 1 {
		t.Errorf("Append(d1, v1).Len() = %v want 1", h.Len())
	}

	h.Append(d2, v2)
	if h.Len() != 2 {
		t.Errorf("Append(d2, v2).Len() = %v want 2", h.Len())
	}

	if h.days[0] != d2 || h.days[1] != d1 {
		t.Errorf("history days = %v want [%v %v]", h.days, d2, d1)
	}
	if h.values[0] != v2 || h.values[1] != v1 {
		t.Errorf("history values = %v want [%v %v]", h.values, v2, v1)
	}

	h.Append(d2, "replaced")
	if h.Len() != 2 {
		t.Errorf("Append(existing).Len() = %v want 2", h.Len())
	}
	if got, _ := h.Get(d2); got != "replaced" {
		t.Errorf("Get(d2) = %q want %q", got, "replaced")
	}
}

func TestValueAsOf(t *testing.T) {
	h := new(History[int])
	h.Append(New(2024, 1, 5), 60)
	h.Append(New(2024, 1, 10), 50)

	tests := []struct {
		day   Date
		want  int
		found bool
	}{
		{New(2024, 1, 4), 0, false},
		{New(2024, 1, 5), 60, true},
		{New(2024, 1, 7), 60, true},
		{New(2024, 1, 10), 50, true},
		{New(2024, 1, 20), 50, true},
		{New(2030, 1, 1), 50, true},
	}
	for _, tt := range tests {
		got, found := h.ValueAsOf(tt.day)
		if got != tt.want || found != tt.found {
			t.Errorf("ValueAsOf(%v) = %v, %v want %v, %v", tt.day, got, found, tt.want, tt.found)
		}
	}

	if _, ok := h.Get(New(2024, 1, 7)); ok {
		t.Errorf("Get() on a day without value should not be found")
	}
	if day, v := h.Latest(); day != New(2024, 1, 10) || v != 50 {
		t.Errorf("Latest() = %v, %v", day, v)
	}
	if day, v := h.Earliest(); day != New(2024, 1, 5) || v != 60 {
		t.Errorf("Earliest() = %v, %v", day, v)
	}
}

func TestValuesIteratesInOrder(t *testing.T) {
	h := new(History[int])
	h.Append(New(2024, 3, 1), 3)
	h.Append(New(2024, 1, 1), 1)
	h.Append(New(2024, 2, 1), 2)

	want := 1
	for _, v := range h.Values() {
		if v != want {
			t.Errorf("Values() yielded %d want %d", v, want)
		}
		want++
	}
	if want != 4 {
		t.Errorf("Values() yielded %d values want 3", want-1)
	}
}
