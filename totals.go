package mortgage

import (
	"iter"

	"github.com/shopspring/decimal"
)

// Totals sums up the payments of a schedule.
type Totals struct {
	Periods   int
	Principal decimal.Decimal // scheduled principal, prepayments excluded
	Interest  decimal.Decimal
	Prepaid   decimal.Decimal // prepayments applied to the principal
}

// Paid returns everything paid: principal, interest and prepayments.
func (t Totals) Paid() decimal.Decimal { return t.Principal.Add(t.Interest).Add(t.Prepaid) }

func newTotals() Totals {
	return Totals{Principal: decimal.Zero, Interest: decimal.Zero, Prepaid: decimal.Zero}
}

// Totals returns the totals of the whole schedule.
//
// Principal + Prepaid + Remaining always equals the loan principal.
func (s *Schedule) Totals() Totals {
	t := newTotals()
	for _, p := range s.Periods {
		t.Periods++
		t.Principal = t.Principal.Add(p.Principal)
		t.Interest = t.Interest.Add(p.Interest)
	}
	t.Prepaid = s.Prepaid
	return t
}

// Running iterates over the periods with the totals accumulated up to and
// including each of them.
func (s *Schedule) Running() iter.Seq2[Period, Totals] {
	return func(yield func(Period, Totals) bool) {
		t := newTotals()
		seg := 0
		for i, p := range s.Periods {
			for ; seg < len(s.Segments) && s.Segments[seg].Start <= i; seg++ {
				t.Prepaid = t.Prepaid.Add(s.Segments[seg].Prepayment)
			}
			t.Periods++
			t.Principal = t.Principal.Add(p.Principal)
			t.Interest = t.Interest.Add(p.Interest)
			if !yield(p, t) {
				return
			}
		}
	}
}
