package mortgage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/mortgage/date"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// This file contains the scenario format: a human-readable description of a
// loan, in JSON or YAML, e.g.
//
//	name: second home
//	principal: 890000
//	installments: 300
//	start: 2022-04-24
//	method: equal-principal
//	rates:
//	  - {from: 2022-01-01, annual: 0.0565}
//	  - {from: 2023-01-01, benchmark: 0.043, spread: 105}
//	prepayments:
//	  - {on: 2024-01-06, amount: 180000}
//
// Annual rates are converted with MonthlyRate, 'monthly' may be used to give
// the monthly rate directly, and 'benchmark' plus 'spread' (in basis points)
// composes the annual rate.

// Format is the encoding of a scenario file.
type Format int

const (
	JSON Format = iota
	YAML
)

// FormatOf guesses the format from a file name, JSON by default.
func FormatOf(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return JSON
	}
}

// Scenario is a named loan read from a scenario file.
type Scenario struct {
	Name     string
	Currency string // ISO 4217 code, empty if unspecified
	Loan     Loan
}

// jrate is a rate entry as written in scenario files.
type jrate struct {
	From      date.Date           `json:"from"`
	Annual    decimal.NullDecimal `json:"annual"`
	Monthly   decimal.NullDecimal `json:"monthly"`
	Benchmark decimal.NullDecimal `json:"benchmark"`
	Spread    int64               `json:"spread"` // basis points over benchmark
}

func (r jrate) monthly() (decimal.Decimal, error) {
	switch {
	case r.Monthly.Valid && !r.Annual.Valid && !r.Benchmark.Valid:
		return r.Monthly.Decimal, nil
	case r.Annual.Valid && !r.Monthly.Valid && !r.Benchmark.Valid:
		return MonthlyRate(r.Annual.Decimal), nil
	case r.Benchmark.Valid && !r.Annual.Valid && !r.Monthly.Valid:
		return MonthlyRate(BasisPoints(r.Benchmark.Decimal, r.Spread)), nil
	default:
		return decimal.Zero, fmt.Errorf("rate from %s: exactly one of 'annual', 'monthly' or 'benchmark' is required", r.From)
	}
}

// jamount is a dated amount as written in scenario files.
type jamount struct {
	On     date.Date       `json:"on"`
	From   date.Date       `json:"from"` // alias of 'on' reading better for payment amounts
	Amount decimal.Decimal `json:"amount"`
}

func (a jamount) date() (date.Date, error) {
	switch {
	case !a.On.IsZero() && !a.From.IsZero():
		return date.Date{}, fmt.Errorf("amount %s: 'on' (%s) and 'from' (%s) are exclusive", a.Amount, a.On, a.From)
	case a.On.IsZero():
		return a.From, nil
	default:
		return a.On, nil
	}
}

// amountEntries converts dated amounts to timeline entries sorted by date.
func amountEntries(amounts []jamount) ([]Entry, error) {
	entries := make([]Entry, 0, len(amounts))
	for _, a := range amounts {
		on, err := a.date()
		if err != nil {
			return nil, err
		}
		entries = append(entries, E(on, a.Amount))
	}
	return sortedEntries(entries), nil
}

type jscenario struct {
	Name          string          `json:"name"`
	Currency      string          `json:"currency"`
	Principal     decimal.Decimal `json:"principal"`
	Installments  int             `json:"installments"`
	Start         date.Date       `json:"start"`
	Method        Method          `json:"method"`
	Rates         []jrate         `json:"rates"`
	Prepayments   []jamount       `json:"prepayments"`
	FixedPayments []jamount       `json:"fixedPayments"`
}

func sortedEntries(entries []Entry) []Entry {
	slices.SortStableFunc(entries, func(a, b Entry) int { return a.On.Compare(b.On) })
	return entries
}

func (js jscenario) scenario() (*Scenario, error) {
	rates := make([]Entry, 0, len(js.Rates))
	for _, r := range js.Rates {
		rate, err := r.monthly()
		if err != nil {
			return nil, err
		}
		rates = append(rates, E(r.From, rate))
	}
	rt, err := NewRateTimeline(sortedEntries(rates)...)
	if err != nil {
		return nil, err
	}

	prepayments, err := amountEntries(js.Prepayments)
	if err != nil {
		return nil, err
	}
	pl, err := NewPrepaymentLedger(prepayments...)
	if err != nil {
		return nil, err
	}

	var fp *FixedPaymentTimeline
	if len(js.FixedPayments) > 0 {
		payments, err := amountEntries(js.FixedPayments)
		if err != nil {
			return nil, err
		}
		if fp, err = NewFixedPaymentTimeline(payments...); err != nil {
			return nil, err
		}
	}

	s := &Scenario{
		Name:     js.Name,
		Currency: js.Currency,
		Loan: Loan{
			Principal:     js.Principal,
			Installments:  js.Installments,
			Start:         js.Start,
			Method:        js.Method,
			Rates:         rt,
			Prepayments:   pl,
			FixedPayments: fp,
		},
	}
	if err := s.Loan.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// plainDates replaces the timestamps yaml resolves unquoted dates to with
// their date string, the form date.Date decodes.
func plainDates(v any) any {
	switch v := v.(type) {
	case time.Time:
		return v.Format(date.DateFormat)
	case map[string]any:
		for k, e := range v {
			v[k] = plainDates(e)
		}
	case []any:
		for i, e := range v {
			v[i] = plainDates(e)
		}
	}
	return v
}

// DecodeScenario reads a scenario from r.
//
// selector is an optional JSONPath expression (e.g. "$.loans.hpf") selecting
// the scenario object inside a larger document.
func DecodeScenario(r io.Reader, format Format, selector string) (*Scenario, error) {
	var doc any
	switch format {
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("invalid yaml scenario: %w", err)
		}
		doc = plainDates(doc)
	default:
		dec := json.NewDecoder(r)
		dec.UseNumber() // keep decimals exact
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("invalid json scenario: %w", err)
		}
	}

	if selector != "" {
		selected, err := jsonpath.Get(selector, doc)
		if err != nil {
			return nil, fmt.Errorf("error selecting %q: %w", selector, err)
		}
		// jsonpath is never clear about wheter it returns a list of 1 answer, or a single answer:
		// keep the first one if any.
		if list, ok := selected.([]any); ok {
			if len(list) == 0 {
				return nil, fmt.Errorf("selector %q matches nothing", selector)
			}
			selected = list[0]
		}
		doc = selected
	}
	if _, ok := doc.(map[string]any); !ok {
		return nil, fmt.Errorf("a scenario must be an object, got %T", doc)
	}

	// the generic document is bound to the scenario struct through json, so
	// that both formats share the same field names and decoders.
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	var js jscenario
	if err := dec.Decode(&js); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return js.scenario()
}
