package mortgage

import (
	"fmt"
	"strings"
)

// Method is the repayment style of a loan.
type Method int

const (
	// EqualPrincipal repays the same principal every period, the payment decreases over time.
	EqualPrincipal Method = iota + 1
	// EqualInstallment (equal principal and interest, or annuity) keeps the
	// total payment constant within a segment.
	EqualInstallment
	// FixedPayment applies an externally set payment amount each period, as
	// housing provident fund loans do. The amount may be revised over time.
	FixedPayment
)

func (m Method) String() string {
	switch m {
	case EqualPrincipal:
		return "equal-principal"
	case EqualInstallment:
		return "equal-installment"
	case FixedPayment:
		return "fixed-payment"
	default:
		return "unknown"
	}
}

// Title returns a human readable name for the method.
func (m Method) Title() string {
	switch m {
	case EqualPrincipal:
		return "Equal Principal"
	case EqualInstallment:
		return "Equal Principal and Interest"
	case FixedPayment:
		return "Fixed Payment"
	default:
		return "Unknown"
	}
}

// ParseMethod parses a string into a Method.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "equal-principal", "principal":
		return EqualPrincipal, nil
	case "equal-installment", "equal-principal-and-interest", "annuity", "installment":
		return EqualInstallment, nil
	case "fixed-payment", "fixed", "hpf":
		return FixedPayment, nil
	default:
		return 0, fmt.Errorf("unknown repayment method: %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) {
	if m.calculator() == nil {
		return nil, fmt.Errorf("unknown repayment method: %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Method) UnmarshalText(text []byte) error {
	v, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// needsFixedPayments reports whether the method reads the fixed payment timeline.
func (m Method) needsFixedPayments() bool { return m == FixedPayment }

// calculator returns the period calculator of the method, or nil for an unsupported one.
func (m Method) calculator() calculator {
	switch m {
	case EqualPrincipal:
		return equalPrincipal{}
	case EqualInstallment:
		return equalInstallment{}
	case FixedPayment:
		return fixedPayment{}
	default:
		return nil
	}
}
