package mortgage

import (
	"fmt"

	"github.com/etnz/mortgage/date"
	"github.com/shopspring/decimal"
)

// Period is one installment of an amortization schedule.
//
// A Period is produced once by a calculator and never mutated.
type Period struct {
	Date      date.Date
	Principal decimal.Decimal // principal portion
	Interest  decimal.Decimal // interest portion
}

// Payment returns the total amount paid for the period.
func (p Period) Payment() decimal.Decimal { return p.Principal.Add(p.Interest) }

func (p Period) String() string {
	return fmt.Sprintf("%s %s (principal %s, interest %s)",
		p.Date, p.Payment().StringFixed(2), p.Principal.StringFixed(2), p.Interest.StringFixed(2))
}
