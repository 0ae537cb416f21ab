package date

import (
	"iter"
	"slices"
)

// History stores a chronological series of values, one per day.
// Days are unique and the series is always sorted.
type History[T any] struct {
	days   []Date
	values []T
}

// Len returns the number of days in the history.
func (h *History[T]) Len() int { return len(h.days) }

// Days returns the recorded days in ascending order.
func (h *History[T]) Days() []Date { return slices.Clone(h.days) }

// Latest returns the last day and its value, or zero values for an empty history.
func (h *History[T]) Latest() (day Date, value T) {
	last := len(h.days) - 1
	if last < 0 {
		return Date{}, value
	}
	return h.days[last], h.values[last]
}

// Earliest returns the first day and its value, or zero values for an empty history.
func (h *History[T]) Earliest() (day Date, value T) {
	if len(h.days) == 0 {
		return Date{}, value
	}
	return h.days[0], h.values[0]
}

func (h *History[T]) search(day Date) (int, bool) {
	return slices.BinarySearchFunc(h.days, day, Date.Compare)
}

// Append sets the value of a day.
//
// An existing value on that day is overwritten. Appending in chronological
// order is the fast path.
func (h *History[T]) Append(on Date, v T) *History[T] {
	if n := len(h.days); n == 0 || h.days[n-1].Before(on) {
		h.days, h.values = append(h.days, on), append(h.values, v)
		return h
	}
	i, found := h.search(on)
	if found {
		h.values[i] = v
		return h
	}
	h.days = slices.Insert(h.days, i, on)
	h.values = slices.Insert(h.values, i, v)
	return h
}

// Values returns an iterator over all day/value pairs, in chronological order.
func (h *History[T]) Values() iter.Seq2[Date, T] {
	return func(yield func(Date, T) bool) {
		for i, on := range h.days {
			if !yield(on, h.values[i]) {
				return
			}
		}
	}
}

// Get returns the value recorded exactly on day.
func (h *History[T]) Get(day Date) (T, bool) {
	var zero T
	if i, found := h.search(day); found {
		return h.values[i], true
	}
	return zero, false
}

// ValueAsOf returns the value on day, or the most recent value before it.
// It returns false if nothing was recorded on or before day.
func (h *History[T]) ValueAsOf(day Date) (T, bool) {
	i, found := h.search(day)
	if found {
		return h.values[i], true
	}
	// i is where day would be inserted, so i-1 is the last day before it.
	if i == 0 {
		var zero T
		return zero, false
	}
	return h.values[i-1], true
}
