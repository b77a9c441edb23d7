// Package mortgage computes amortization schedules of installment loans.
//
// A loan is described by its principal, its number of monthly installments,
// the date of the first payment and a repayment method. Three dated
// timelines complete it:
//   - RateTimeline: the monthly interest rate, each rate holds from its date
//     until the next one.
//   - PrepaymentLedger: lump-sum principal payments made outside the schedule.
//   - FixedPaymentTimeline: the payment amount, for the FixedPayment method
//     only.
//
// Three methods are supported: EqualPrincipal (constant principal portion),
// EqualInstallment (constant total payment, a.k.a. annuity) and FixedPayment
// (housing provident fund loans, where the payment amount is set and revised
// externally).
//
// The schedule is split into segments. A segment starts whenever the rate
// changes or a prepayment is made: what is still owed is then re-amortized
// over the remaining installments. All arithmetic is exact decimal, with
// half-up rounding to Scale digits wherever a division is required.
//
// The package neither prints nor persists anything. The renderer package
// formats schedules, and the `mortgage` command line tool reads scenario
// files and prints their schedule.
package mortgage
