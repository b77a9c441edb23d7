package mortgage

import (
	"encoding/json"
	"io"
)

// Schedules are encoded as JSON objects with a stable field order, amounts
// are decimal strings with every digit kept.

func (p Period) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", p.Date)
	w.Append("payment", p.Payment())
	w.Append("principal", p.Principal)
	w.Append("interest", p.Interest)
	return w.MarshalJSON()
}

func (s Segment) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("start", s.Start)
	w.Append("on", s.On)
	w.Append("rate", s.Rate)
	w.Append("principal", s.Principal)
	w.Append("installments", s.Installments)
	w.AppendIf(!s.Prepayment.IsZero(), "prepayment", s.Prepayment)
	return w.MarshalJSON()
}

func (t Totals) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("periods", t.Periods)
	w.Append("principal", t.Principal)
	w.Append("interest", t.Interest)
	w.Append("prepaid", t.Prepaid)
	w.Append("paid", t.Paid())
	return w.MarshalJSON()
}

func (s *Schedule) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("method", s.Loan.Method)
	w.Append("principal", s.Loan.Principal)
	w.Append("installments", s.Loan.Installments)
	w.Append("start", s.Loan.Start)
	w.AppendIf(s.PaidOff, "paidOff", true)
	w.Append("remaining", s.Remaining)
	w.Append("totals", s.Totals())
	w.Append("segments", s.Segments)
	w.Append("periods", s.Periods)
	return w.MarshalJSON()
}

// EncodeSchedule writes s as an indented JSON document.
func EncodeSchedule(w io.Writer, s *Schedule) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
