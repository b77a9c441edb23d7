package renderer

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/etnz/mortgage"
	"github.com/shopspring/decimal"
)

// Schedule is a struct to represent an amortization schedule for rendering.
type Schedule struct {
	Title        string    `json:"title"`
	Method       string    `json:"method"`
	Principal    string    `json:"principal"`
	Installments int       `json:"installments"`
	Start        string    `json:"start"`
	Segments     []Segment `json:"segments"`
	Periods      []Period  `json:"periods"`
	Totals       Totals    `json:"totals"`
	PaidOff      bool      `json:"paidOff,omitempty"`
	LastPayment  string    `json:"lastPayment,omitempty"`
}

// Segment holds the data of a segment line.
type Segment struct {
	Number       int    `json:"number"` // period number the segment starts with
	On           string `json:"on"`
	AnnualRate   string `json:"annualRate"`
	MonthlyRate  string `json:"monthlyRate"`
	Prepayment   string `json:"prepayment"`
	Principal    string `json:"principal"`
	Installments int    `json:"installments"`
}

// Period holds the data of a single payment line, with amounts paid to date.
type Period struct {
	Number        int    `json:"number"`
	Date          string `json:"date"`
	Payment       string `json:"payment"`
	Principal     string `json:"principal"`
	Interest      string `json:"interest"`
	PrincipalPaid string `json:"principalPaid"`
	InterestPaid  string `json:"interestPaid"`
}

// Totals holds the totals of the schedule.
type Totals struct {
	Periods   int    `json:"periods"`
	Principal string `json:"principal"`
	Interest  string `json:"interest"`
	Prepaid   string `json:"prepaid"`
	Paid      string `json:"paid"`
	Remaining string `json:"remaining"`
}

// NewSchedule builds the renderable form of s, amounts are formatted in currency.
func NewSchedule(s *mortgage.Schedule, title, currency string) *Schedule {
	amount := func(d decimal.Decimal) string { return FormatAmount(d, currency) }
	l := s.Loan
	if title == "" {
		title = l.Method.Title() + " Schedule"
	}

	r := &Schedule{
		Title:        title,
		Method:       l.Method.Title(),
		Principal:    amount(l.Principal),
		Installments: l.Installments,
		Start:        l.Start.String(),
		Segments:     make([]Segment, 0, len(s.Segments)),
		Periods:      make([]Period, 0, len(s.Periods)),
		PaidOff:      s.PaidOff,
	}

	for _, seg := range s.Segments {
		r.Segments = append(r.Segments, Segment{
			Number:       seg.Start + 1,
			On:           seg.On.String(),
			AnnualRate:   FormatAnnualRate(seg.Rate),
			MonthlyRate:  FormatMonthlyRate(seg.Rate),
			Prepayment:   amount(seg.Prepayment),
			Principal:    amount(seg.Principal),
			Installments: seg.Installments,
		})
	}

	for p, running := range s.Running() {
		r.Periods = append(r.Periods, Period{
			Number:        running.Periods,
			Date:          p.Date.String(),
			Payment:       amount(p.Payment()),
			Principal:     amount(p.Principal),
			Interest:      amount(p.Interest),
			PrincipalPaid: amount(running.Principal),
			InterestPaid:  amount(running.Interest),
		})
	}
	if s.PaidOff && len(s.Periods) > 0 {
		r.LastPayment = s.Periods[len(s.Periods)-1].Date.String()
	}

	t := s.Totals()
	r.Totals = Totals{
		Periods:   t.Periods,
		Principal: amount(t.Principal),
		Interest:  amount(t.Interest),
		Prepaid:   amount(t.Prepaid),
		Paid:      amount(t.Paid()),
		Remaining: amount(s.Remaining),
	}
	return r
}

// FormatAmount formats an amount the way currency is usually written, rounded
// to its minor unit. Unknown or empty currencies get two plain decimals.
func FormatAmount(d decimal.Decimal, currency string) string {
	cur := money.GetCurrency(strings.ToUpper(currency))
	if cur == nil {
		return d.StringFixed(2)
	}
	minor := d.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// FormatAnnualRate formats a monthly rate as the annual percentage it derives from.
func FormatAnnualRate(monthly decimal.Decimal) string {
	return monthly.Mul(decimal.NewFromInt(12)).Shift(2).StringFixed(2) + "%"
}

// FormatMonthlyRate formats a monthly rate in per mille, as lenders quote it.
func FormatMonthlyRate(monthly decimal.Decimal) string {
	return monthly.Shift(3).StringFixed(4) + "‰"
}
