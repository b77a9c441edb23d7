package mortgage

import (
	"github.com/etnz/mortgage/date"
	"github.com/shopspring/decimal"
)

// calculator computes the period of a repayment method from the current segment.
//
// fixed is only meaningful for FixedPayment.
type calculator interface {
	period(s SegmentState, on date.Date, fixed decimal.Decimal) Period
}

type equalPrincipal struct{}

func (equalPrincipal) period(s SegmentState, on date.Date, _ decimal.Decimal) Period {
	return EqualPrincipalPeriod(s.Principal, s.Rate, s.Installments, s.Index, on)
}

type equalInstallment struct{}

func (equalInstallment) period(s SegmentState, on date.Date, _ decimal.Decimal) Period {
	return EqualInstallmentPeriod(s.Principal, s.Remaining, s.Rate, s.Installments, on)
}

type fixedPayment struct{}

func (fixedPayment) period(s SegmentState, on date.Date, fixed decimal.Decimal) Period {
	return FixedPaymentPeriod(fixed, s.Remaining, s.Rate, on)
}

// EqualPrincipalPeriod returns the index-th period (0-based) of a segment
// repaid with the same principal every period.
//
// The principal portion is principal/installments rounded to Scale digits,
// the interest is charged on what the segment still owes.
func EqualPrincipalPeriod(principal, rate decimal.Decimal, installments, index int, on date.Date) Period {
	monthly := principal.DivRound(decimal.NewFromInt(int64(installments)), Scale)
	interest := principal.Sub(monthly.Mul(decimal.NewFromInt(int64(index)))).Mul(rate)
	return Period{Date: on, Principal: monthly, Interest: interest}
}

// AnnuityPayment returns the constant payment that repays principal over
// installments periods at a periodic rate:
//
//	principal × rate × (1+rate)^n / ((1+rate)^n − 1)
//
// rounded half-up to Scale digits. rate must be positive.
func AnnuityPayment(principal, rate decimal.Decimal, installments int) decimal.Decimal {
	factor := rate.Add(one).Pow(decimal.NewFromInt(int64(installments)))
	return principal.Mul(rate).Mul(factor).DivRound(factor.Sub(one), Scale)
}

// EqualInstallmentPeriod returns the period of an annuity segment when
// remaining is still owed. The total payment is constant within the segment.
func EqualInstallmentPeriod(principal, remaining, rate decimal.Decimal, installments int, on date.Date) Period {
	payment := AnnuityPayment(principal, rate, installments)
	interest := remaining.Mul(rate)
	return Period{Date: on, Principal: payment.Sub(interest), Interest: interest}
}

// FixedPaymentPeriod splits a fixed payment into interest on the remaining
// principal and principal repayment.
//
// The caller must make sure remaining is positive.
func FixedPaymentPeriod(amount, remaining, rate decimal.Decimal, on date.Date) Period {
	interest := remaining.Mul(rate)
	return Period{Date: on, Principal: amount.Sub(interest), Interest: interest}
}
