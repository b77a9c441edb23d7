package date

import "fmt"

// Range is the half-open range of days [From, To).
type Range struct{ From, To Date }

// MonthBefore returns the month preceding d: from the same day of the
// previous month (clamped to its end) included, to d excluded.
func MonthBefore(d Date) Range { return Range{From: d.AddMonths(-1), To: d} }

// IsEmpty returns true if the range contains no day.
func (r Range) IsEmpty() bool { return !r.From.Before(r.To) }

// Contains returns true if d is within the range.
func (r Range) Contains(d Date) bool { return !d.Before(r.From) && d.Before(r.To) }

func (r Range) String() string { return fmt.Sprintf("[%s, %s)", r.From, r.To) }
