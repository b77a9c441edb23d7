package mortgage

import (
	"github.com/etnz/mortgage/date"
	"github.com/shopspring/decimal"
)

// D is a helper for test to create decimals from const.
func D(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// On is a helper for test to create dates from const.
func On(s string) date.Date { return date.MustParse(s) }

// annual returns the monthly rate of an annual rate given as a string.
func annual(s string) decimal.Decimal { return MonthlyRate(D(s)) }

// mustRates builds a RateTimeline or panics.
func mustRates(entries ...Entry) *RateTimeline {
	t, err := NewRateTimeline(entries...)
	if err != nil {
		panic(err)
	}
	return t
}

// mustPrepayments builds a PrepaymentLedger or panics.
func mustPrepayments(entries ...Entry) *PrepaymentLedger {
	l, err := NewPrepaymentLedger(entries...)
	if err != nil {
		panic(err)
	}
	return l
}

// mustFixedPayments builds a FixedPaymentTimeline or panics.
func mustFixedPayments(entries ...Entry) *FixedPaymentTimeline {
	t, err := NewFixedPaymentTimeline(entries...)
	if err != nil {
		panic(err)
	}
	return t
}

// bankRates is the rate history of a Beijing second-home mortgage, LPR + 105bp
// then LPR + 55bp after its requalification as a first home, and LPR - 30bp
// after the 2024 revision of existing mortgages.
func bankRates() *RateTimeline {
	return mustRates(
		E(On("2022-01-01"), annual("0.0565")),
		E(On("2023-01-01"), annual("0.0535")),
		E(On("2023-11-01"), annual("0.0485")),
		E(On("2024-01-01"), annual("0.0475")),
		E(On("2024-11-01"), annual("0.039")),
	)
}

// bankPrepayments are three prepayments made on the bank mortgage.
func bankPrepayments() *PrepaymentLedger {
	return mustPrepayments(
		E(On("2024-01-06"), D("180000")),
		E(On("2024-04-02"), D("200000")),
		E(On("2024-09-03"), D("200000")),
	)
}
