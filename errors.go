package mortgage

import (
	"errors"
	"fmt"

	"github.com/etnz/mortgage/date"
)

// ErrConfiguration is the sentinel behind every ConfigurationError, use it with errors.Is.
var ErrConfiguration = errors.New("configuration error")

// ConfigurationError reports an input that cannot produce a schedule: a
// timeline with no entry covering a date, an unsupported repayment method, or
// a loan that breaks a precondition.
//
// It is fatal for the schedule being computed, the caller must fix the input.
type ConfigurationError struct {
	Op  string    // operation that failed, e.g. "rates lookup"
	On  date.Date // date involved, zero if none
	Msg string
}

func (e *ConfigurationError) Error() string {
	if e.On.IsZero() {
		return fmt.Sprintf("%s: %s", e.Op, e.Msg)
	}
	return fmt.Sprintf("%s on %s: %s", e.Op, e.On, e.Msg)
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

func configErrorf(op string, on date.Date, format string, args ...any) error {
	return &ConfigurationError{Op: op, On: on, Msg: fmt.Sprintf(format, args...)}
}
