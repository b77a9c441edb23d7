package mortgage

import (
	"github.com/etnz/mortgage/date"
	"github.com/shopspring/decimal"
)

// Entry is a dated value of a loan timeline: a monthly rate, a prepayment or
// a fixed payment amount.
type Entry struct {
	On    date.Date
	Value decimal.Decimal
}

// E is a convenient Entry factory.
func E(on date.Date, value decimal.Decimal) Entry { return Entry{On: on, Value: value} }

// newHistory builds the history behind a timeline.
//
// Entries must have strictly increasing dates and positive values.
func newHistory(op string, entries []Entry) (*date.History[decimal.Decimal], error) {
	h := new(date.History[decimal.Decimal])
	for i, e := range entries {
		if e.On.IsZero() {
			return nil, configErrorf(op, date.Date{}, "entry #%d has no date", i)
		}
		if i > 0 && !entries[i-1].On.Before(e.On) {
			return nil, configErrorf(op, e.On, "entry #%d is not after %s", i, entries[i-1].On)
		}
		if !e.Value.IsPositive() {
			return nil, configErrorf(op, e.On, "value %s must be positive", e.Value)
		}
		h.Append(e.On, e.Value)
	}
	return h, nil
}

// RateTimeline is the history of the monthly interest rate of a loan.
//
// A rate takes effect on its date and holds until superseded.
type RateTimeline struct {
	h *date.History[decimal.Decimal]
}

// NewRateTimeline returns a RateTimeline from entries sorted by date.
func NewRateTimeline(entries ...Entry) (*RateTimeline, error) {
	if len(entries) == 0 {
		return nil, configErrorf("rates", date.Date{}, "at least one rate is required")
	}
	h, err := newHistory("rates", entries)
	if err != nil {
		return nil, err
	}
	return &RateTimeline{h: h}, nil
}

// Lookup returns the monthly rate in effect on a date.
func (t *RateTimeline) Lookup(on date.Date) (decimal.Decimal, error) {
	if t == nil {
		return decimal.Zero, configErrorf("rates lookup", on, "no rate timeline")
	}
	rate, ok := t.h.ValueAsOf(on)
	if !ok {
		return decimal.Zero, configErrorf("rates lookup", on, "date precedes all known rates")
	}
	return rate, nil
}

// FixedPaymentTimeline is the history of the payment amount of a
// FixedPayment loan.
type FixedPaymentTimeline struct {
	h *date.History[decimal.Decimal]
}

// NewFixedPaymentTimeline returns a FixedPaymentTimeline from entries sorted by date.
func NewFixedPaymentTimeline(entries ...Entry) (*FixedPaymentTimeline, error) {
	if len(entries) == 0 {
		return nil, configErrorf("fixed payments", date.Date{}, "at least one payment amount is required")
	}
	h, err := newHistory("fixed payments", entries)
	if err != nil {
		return nil, err
	}
	return &FixedPaymentTimeline{h: h}, nil
}

// Lookup returns the payment amount in effect on a date.
//
// A nil timeline is "not applicable" and returns an invalid NullDecimal and no
// error.
func (t *FixedPaymentTimeline) Lookup(on date.Date) (decimal.NullDecimal, error) {
	if t == nil {
		return decimal.NullDecimal{}, nil
	}
	amount, ok := t.h.ValueAsOf(on)
	if !ok {
		return decimal.NullDecimal{}, configErrorf("fixed payments lookup", on, "date precedes all known payment amounts")
	}
	return decimal.NewNullDecimal(amount), nil
}

// PrepaymentLedger records the lump-sum principal payments made outside the
// schedule. A nil ledger is empty.
type PrepaymentLedger struct {
	h *date.History[decimal.Decimal]
}

// NewPrepaymentLedger returns a PrepaymentLedger from entries sorted by date.
// It may be empty.
func NewPrepaymentLedger(entries ...Entry) (*PrepaymentLedger, error) {
	h, err := newHistory("prepayments", entries)
	if err != nil {
		return nil, err
	}
	return &PrepaymentLedger{h: h}, nil
}

// SumInPeriod returns the total prepaid during the month preceding a payment
// date, that is within [on - 1 month, on).
//
// A prepayment made exactly on a payment date belongs to the next period.
func (l *PrepaymentLedger) SumInPeriod(on date.Date) decimal.Decimal {
	sum := decimal.Zero
	if l == nil {
		return sum
	}
	for _, amount := range l.h.In(date.MonthBefore(on)) {
		sum = sum.Add(amount)
	}
	return sum
}

// Total returns the sum of all prepayments in the ledger.
func (l *PrepaymentLedger) Total() decimal.Decimal {
	sum := decimal.Zero
	if l == nil {
		return sum
	}
	for _, amount := range l.h.Values() {
		sum = sum.Add(amount)
	}
	return sum
}
