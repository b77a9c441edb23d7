package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/mortgage"
	"github.com/etnz/mortgage/renderer"
	"github.com/etnz/mortgage/samples"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// scenarioFlags are the flags shared by the commands that compute a schedule.
type scenarioFlags struct {
	file     string
	selector string
	sample   string
	method   string
	currency string
	title    string
	html     bool
	json     bool
}

func (c *scenarioFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "scenario file (JSON or YAML, by extension), '-' reads JSON from stdin")
	f.StringVar(&c.selector, "select", "", "JSONPath selecting the scenario inside the file, e.g. $.loans.hpf")
	f.StringVar(&c.sample, "sample", "", "use a built-in sample instead of a file, see 'mortgage samples'")
	f.StringVar(&c.method, "method", "", "override the repayment method (equal-principal, equal-installment, fixed-payment)")
	f.StringVar(&c.currency, "currency", "", "currency of amounts, overrides the scenario and the configuration")
	f.StringVar(&c.title, "title", "", "report title, defaults to the scenario name")
	f.BoolVar(&c.html, "html", false, "print HTML instead of terminal markdown")
	f.BoolVar(&c.json, "json", false, "print the schedule as JSON, with every digit")
}

// decode reads the selected scenario and applies flag overrides.
func (c *scenarioFlags) decode() (*mortgage.Scenario, error) {
	var (
		s   *mortgage.Scenario
		err error
	)
	switch {
	case c.file != "" && c.sample != "":
		return nil, errors.New("-f and -sample are mutually exclusive")
	case c.sample != "":
		s, err = samples.Load(c.sample)
	case c.file == "-":
		s, err = mortgage.DecodeScenario(os.Stdin, mortgage.JSON, c.selector)
	case c.file != "":
		f, openErr := os.Open(c.file)
		if openErr != nil {
			return nil, openErr
		}
		defer f.Close()
		s, err = mortgage.DecodeScenario(f, mortgage.FormatOf(c.file), c.selector)
	default:
		return nil, errors.New("a scenario is required, use -f or -sample")
	}
	if err != nil {
		return nil, err
	}

	if c.method != "" {
		m, err := mortgage.ParseMethod(c.method)
		if err != nil {
			return nil, err
		}
		s.Loan.Method = m
		if m != mortgage.FixedPayment {
			s.Loan.FixedPayments = nil
		}
	}
	if c.currency != "" {
		s.Currency = strings.ToUpper(c.currency)
	}
	if c.title != "" {
		s.Name = c.title
	}
	return s, nil
}

// run computes the schedule of the selected scenario and prints it with render.
func (c *scenarioFlags) run(render func(*renderer.Schedule) string) subcommands.ExitStatus {
	cfg, err := LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitUsageError
	}
	logger, err := NewLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		return subcommands.ExitFailure
	}
	defer logger.Sync()

	s, err := c.decode()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading scenario: %v\n", err)
		return exitStatus(err)
	}
	if s.Currency == "" {
		s.Currency = cfg.Currency
	}
	logger.Info("scenario loaded", zap.String("name", s.Name), zap.Stringer("method", s.Loan.Method),
		zap.Stringer("principal", s.Loan.Principal), zap.Int("installments", s.Loan.Installments),
		zap.Stringer("prepayments", s.Loan.Prepayments.Total()))

	schedule, err := s.Loan.Schedule(mortgage.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing schedule: %v\n", err)
		return exitStatus(err)
	}

	if c.json {
		if err := mortgage.EncodeSchedule(os.Stdout, schedule); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding schedule: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	md := render(renderer.NewSchedule(schedule, s.Name, s.Currency))
	if c.html {
		html, err := renderer.HTML(md)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering html: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Print(html)
		return subcommands.ExitSuccess
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}

// exitStatus maps an input error to an exit status: configuration errors fail,
// anything else is a usage error.
func exitStatus(err error) subcommands.ExitStatus {
	if errors.Is(err, mortgage.ErrConfiguration) {
		return subcommands.ExitFailure
	}
	return subcommands.ExitUsageError
}
