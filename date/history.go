package date

import (
	"iter"
	"slices"
	"sort"
)

// History stores a chronological series of values, each associated with a specific date.
// It ensures that dates are unique and the series is always sorted.
type History[T any] struct {
	days   []Date
	values []T
}

// Len returns the number of items in the history.
func (h *History[T]) Len() int {
	if h == nil {
		return 0
	}
	return len(h.days)
}

// chronological is a private implementation to make this history chronologically sorted.
type chronological[T any] struct{ *History[T] }

func (s chronological[T]) Less(i, j int) bool { return s.days[i].Before(s.days[j]) }

func (s chronological[T]) Swap(i, j int) {
	s.days[i], s.days[j] = s.days[j], s.days[i]
	s.values[i], s.values[j] = s.values[j], s.values[i]
}

// sort sorts the history in chronological order.
func (h *History[T]) sort() { sort.Sort(chronological[T]{h}) }

// Append adds a point to the history.
//
// Existing value at that date are overwritten.
func (h *History[T]) Append(on Date, q T) *History[T] {
	if i := slices.Index(h.days, on); i >= 0 {
		// Found a point at that exact same day.
		// We choose to replace, because it will give higher priority to the last data
		h.values[i] = q
		return h
	}
	h.days, h.values = append(h.days, on), append(h.values, q)
	// appending in order is the common case, don't pay for a sort.
	if n := len(h.days); n > 1 && h.days[n-1].Before(h.days[n-2]) {
		h.sort()
	}
	return h
}

// Values returns an iterator over all date/value pairs in the history, in chronological order.
func (h *History[T]) Values() iter.Seq2[Date, T] {
	return func(yield func(Date, T) bool) {
		if h == nil {
			return
		}
		for i, on := range h.days {
			if !yield(on, h.values[i]) {
				return
			}
		}
	}
}

// Get returns the value at 'day' and true or zero value and false.
func (h *History[T]) Get(day Date) (T, bool) {
	var value T
	i, found := h.search(day)
	if found {
		return h.values[i], true
	}
	return value, false
}

// search returns the index where day is, or would be inserted.
func (h *History[T]) search(day Date) (int, bool) {
	return slices.BinarySearchFunc(h.days, day, Date.Compare)
}

// ValueAsOf returns the value on a given day, or the most recent value before it.
// It returns the value and true if found, otherwise it returns the zero value and false.
func (h *History[T]) ValueAsOf(day Date) (T, bool) {
	var zero T
	if h == nil {
		return zero, false
	}
	i, found := h.search(day)
	if found {
		return h.values[i], true
	}

	// Not found. `i` is the index where `day` would be inserted.
	// The value we want is at `i-1`, which is the last entry before the target date.
	if i == 0 {
		return zero, false // No date on or before the given day.
	}
	return h.values[i-1], true
}

// In returns an iterator over the date/value pairs within r, in chronological order.
func (h *History[T]) In(r Range) iter.Seq2[Date, T] {
	return func(yield func(Date, T) bool) {
		if h == nil || r.IsEmpty() {
			return
		}
		lo, _ := h.search(r.From)
		hi, _ := h.search(r.To)
		for i := lo; i < hi; i++ {
			if !yield(h.days[i], h.values[i]) {
				return
			}
		}
	}
}
