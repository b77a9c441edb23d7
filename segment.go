package mortgage

import (
	"github.com/etnz/mortgage/date"
	"github.com/shopspring/decimal"
)

// SegmentState is the loop-carried state of the schedule generator.
//
// A segment is a run of periods sharing the same rate and principal basis. The
// state is replaced as a whole when a segment starts, and advanced once per
// emitted period.
type SegmentState struct {
	Principal    decimal.Decimal // principal basis of the segment
	Remaining    decimal.Decimal // principal still owed
	Installments int             // periods in the segment
	Index        int             // 0-based position inside the segment
	Rate         decimal.Decimal // monthly rate of the segment
}

// newSegmentState returns the state of the first segment of a loan.
func newSegmentState(principal decimal.Decimal, installments int, rate decimal.Decimal) SegmentState {
	return SegmentState{
		Principal:    principal,
		Remaining:    principal,
		Installments: installments,
		Rate:         rate,
	}
}

// reset starts a new segment at iteration i of a total-installments loan,
// after prepayment has been deducted from what is still owed.
func (s SegmentState) reset(i, total int, rate, prepayment decimal.Decimal) SegmentState {
	remaining := s.Remaining.Sub(prepayment)
	return SegmentState{
		Principal:    remaining,
		Remaining:    remaining,
		Installments: total - i,
		Rate:         rate,
	}
}

// advance returns the state after p has been paid.
func (s SegmentState) advance(p Period) SegmentState {
	s.Index++
	s.Remaining = s.Remaining.Sub(p.Principal)
	return s
}

// Segment describes how a segment of a schedule started.
type Segment struct {
	Start        int       // index of the first period of the segment in the schedule
	On           date.Date // payment date of that first period
	Rate         decimal.Decimal
	Principal    decimal.Decimal // principal basis
	Installments int
	Prepayment   decimal.Decimal // prepaid during the month before On, zero for the first segment unless prepaid early
}
