package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/mortgage"
	"github.com/google/subcommands"
)

func TestScenarioFlags_Decode(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "loans.json")
	content := `{"car": {"name": "car", "principal": 12000, "installments": 12, "start": "2024-01-15",
		"method": "principal", "rates": [{"from": "2024-01-01", "annual": 0.06}]}}`
	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		name     string
		flags    scenarioFlags
		method   mortgage.Method
		currency string
		title    string
		fixed    bool // fixed payment timeline kept
	}{
		{
			name:     "sample",
			flags:    scenarioFlags{sample: "fixed_payment"},
			method:   mortgage.FixedPayment,
			currency: "CNY",
			title:    "housing provident fund",
			fixed:    true,
		},
		{
			name:     "sample with another method",
			flags:    scenarioFlags{sample: "fixed_payment", method: "annuity", currency: "usd", title: "what if"},
			method:   mortgage.EqualInstallment,
			currency: "USD",
			title:    "what if",
		},
		{
			name:   "file with selector",
			flags:  scenarioFlags{file: file, selector: "$.car"},
			method: mortgage.EqualPrincipal,
			title:  "car",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := tc.flags.decode()
			if err != nil {
				t.Fatalf("decode() unexpected error: %v", err)
			}
			if s.Loan.Method != tc.method || s.Currency != tc.currency || s.Name != tc.title {
				t.Errorf("decode() = (%v, %q, %q) want (%v, %q, %q)", s.Loan.Method, s.Currency, s.Name, tc.method, tc.currency, tc.title)
			}
			if got := s.Loan.FixedPayments != nil; got != tc.fixed {
				t.Errorf("decode() has fixed payments = %v want %v", got, tc.fixed)
			}
			if _, err := s.Loan.Schedule(); err != nil {
				t.Errorf("Schedule() unexpected error: %v", err)
			}
		})
	}
}

func TestScenarioFlags_DecodeErrors(t *testing.T) {
	testCases := []struct {
		name   string
		flags  scenarioFlags
		status subcommands.ExitStatus
	}{
		{name: "nothing", flags: scenarioFlags{}, status: subcommands.ExitUsageError},
		{name: "file and sample", flags: scenarioFlags{file: "a.json", sample: "fixed_payment"}, status: subcommands.ExitUsageError},
		{name: "unknown sample", flags: scenarioFlags{sample: "balloon"}, status: subcommands.ExitUsageError},
		{name: "missing file", flags: scenarioFlags{file: filepath.Join(t.TempDir(), "missing.yaml")}, status: subcommands.ExitUsageError},
		{name: "unknown method", flags: scenarioFlags{sample: "equal_principal", method: "balloon"}, status: subcommands.ExitUsageError},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.flags.decode()
			if err == nil {
				t.Fatalf("decode() expected an error")
			}
			if got := exitStatus(err); got != tc.status {
				t.Errorf("exitStatus(%v) = %v want %v", err, got, tc.status)
			}
		})
	}
}

func TestScenarioFlags_FixedPaymentWithoutAmounts(t *testing.T) {
	s, err := (&scenarioFlags{sample: "equal_principal", method: "fixed-payment"}).decode()
	if err != nil {
		t.Fatalf("decode() unexpected error: %v", err)
	}
	_, err = s.Loan.Schedule()
	if !errors.Is(err, mortgage.ErrConfiguration) {
		t.Fatalf("Schedule() error = %v want a configuration error", err)
	}
	if got := exitStatus(err); got != subcommands.ExitFailure {
		t.Errorf("exitStatus(%v) = %v want %v", err, got, subcommands.ExitFailure)
	}
}
