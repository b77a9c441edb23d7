package mortgage

import (
	"github.com/etnz/mortgage/date"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Loan gathers everything needed to compute an amortization schedule.
//
// Timelines are read-only once built, a Loan can be shared between goroutines.
type Loan struct {
	Principal     decimal.Decimal
	Installments  int       // total number of monthly periods
	Start         date.Date // date of the first payment
	Method        Method
	Rates         *RateTimeline
	Prepayments   *PrepaymentLedger     // optional
	FixedPayments *FixedPaymentTimeline // required by FixedPayment only
}

// Validate checks that the loan can produce a schedule.
func (l Loan) Validate() error {
	const op = "loan"
	switch {
	case !l.Principal.IsPositive():
		return configErrorf(op, date.Date{}, "principal %s must be positive", l.Principal)
	case l.Installments <= 0:
		return configErrorf(op, date.Date{}, "installments %d must be positive", l.Installments)
	case l.Start.IsZero():
		return configErrorf(op, date.Date{}, "start date is missing")
	case l.Rates == nil:
		return configErrorf(op, date.Date{}, "rate timeline is missing")
	case l.Method.calculator() == nil:
		return configErrorf(op, date.Date{}, "unsupported repayment method %d", int(l.Method))
	case l.Method.needsFixedPayments() && l.FixedPayments == nil:
		return configErrorf(op, date.Date{}, "%s requires a fixed payment timeline", l.Method)
	case !l.Method.needsFixedPayments() && l.FixedPayments != nil:
		return configErrorf(op, date.Date{}, "%s does not use a fixed payment timeline", l.Method)
	}
	return nil
}

// Schedule is the result of a schedule generation.
type Schedule struct {
	Loan     Loan
	Periods  []Period  // in date order
	Segments []Segment // in date order, the first one starts the loan

	// PaidOff is true when the loan was repaid before its last installment,
	// the schedule is then shorter than Loan.Installments.
	PaidOff bool
	// Prepaid is the part of the prepayments actually applied to the principal.
	Prepaid decimal.Decimal
	// Remaining is the principal still owed after the last period. It is
	// negative when the last fixed payment overpaid the loan.
	Remaining decimal.Decimal
}

// Option configures a schedule generation.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger logs segment resets and early payoffs at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// GenerateSchedule computes the periods of an amortization schedule.
//
// prepayments may be nil. fixedPayments must be set if and only if method is
// FixedPayment. The returned error is a *ConfigurationError.
func GenerateSchedule(principal decimal.Decimal, installments int, rates *RateTimeline,
	prepayments *PrepaymentLedger, fixedPayments *FixedPaymentTimeline,
	start date.Date, method Method) ([]Period, error) {

	s, err := Loan{
		Principal:     principal,
		Installments:  installments,
		Start:         start,
		Method:        method,
		Rates:         rates,
		Prepayments:   prepayments,
		FixedPayments: fixedPayments,
	}.Schedule()
	if err != nil {
		return nil, err
	}
	return s.Periods, nil
}

// Schedule computes the amortization schedule of the loan.
//
// Periods are due every month from Start. A new segment starts whenever the
// rate changes or a prepayment was made during the month before a payment
// date: the remaining principal, net of the prepayment, is then re-amortized
// over the remaining installments. A prepayment that covers what is still owed
// pays the loan off and no period is produced for that month.
func (l Loan) Schedule(opts ...Option) (*Schedule, error) {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	calc := l.Method.calculator()
	log := o.logger.With(zap.Stringer("method", l.Method), zap.Stringer("start", l.Start))

	rate, err := l.Rates.Lookup(l.Start)
	if err != nil {
		return nil, err
	}
	state := newSegmentState(l.Principal, l.Installments, rate)

	s := &Schedule{
		Loan:    l,
		Periods: make([]Period, 0, l.Installments),
		Segments: []Segment{{
			On:           l.Start,
			Rate:         rate,
			Principal:    l.Principal,
			Installments: l.Installments,
			Prepayment:   decimal.Zero,
		}},
		Prepaid: decimal.Zero,
	}

	for i := 0; i < l.Installments; i++ {
		on := l.Start.AddMonths(i)
		rate, err := l.Rates.Lookup(on)
		if err != nil {
			return nil, err
		}
		prepayment := l.Prepayments.SumInPeriod(on)
		fixed := decimal.Zero
		if l.Method.needsFixedPayments() {
			amount, err := l.FixedPayments.Lookup(on)
			if err != nil {
				return nil, err
			}
			fixed = amount.Decimal
		}

		if !rate.Equal(state.Rate) || !prepayment.IsZero() {
			if state.Remaining.LessThanOrEqual(prepayment) {
				log.Debug("loan paid off by prepayment",
					zap.Int("index", i), zap.Stringer("on", on),
					zap.Stringer("prepayment", prepayment), zap.Stringer("remaining", state.Remaining))
				if state.Remaining.IsPositive() {
					s.Prepaid = s.Prepaid.Add(state.Remaining)
					state.Remaining = decimal.Zero
				}
				s.PaidOff = true
				break
			}
			state = state.reset(i, l.Installments, rate, prepayment)
			s.Prepaid = s.Prepaid.Add(prepayment)
			seg := Segment{
				Start:        i,
				On:           on,
				Rate:         rate,
				Principal:    state.Principal,
				Installments: state.Installments,
				Prepayment:   prepayment,
			}
			if i == 0 {
				// the first segment never produced a period, replace it.
				s.Segments[0] = seg
			} else {
				s.Segments = append(s.Segments, seg)
			}
			log.Debug("new segment",
				zap.Int("index", i), zap.Stringer("on", on), zap.Stringer("rate", rate),
				zap.Stringer("prepayment", prepayment), zap.Stringer("principal", state.Principal),
				zap.Int("installments", state.Installments))
		}

		if l.Method == FixedPayment && !state.Remaining.IsPositive() {
			log.Debug("loan paid off by fixed payments",
				zap.Int("index", i), zap.Stringer("on", on), zap.Stringer("remaining", state.Remaining))
			s.PaidOff = true
			break
		}

		p := calc.period(state, on, fixed)
		s.Periods = append(s.Periods, p)
		state = state.advance(p)
	}
	s.Remaining = state.Remaining
	return s, nil
}
