package textformat

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ScientificNotation selects how an exponent is produced and accepted.
type ScientificNotation int

const (
	// NotationNone forbids exponents.
	NotationNone ScientificNotation = iota
	// NotationStandard accepts an exponent with any mantissa when reading and
	// never adds one when writing.
	NotationStandard
	// NotationNormalized keeps the mantissa in [1, 10).
	NotationNormalized
	// NotationEngineering keeps the mantissa in [1, 1000) with an exponent
	// multiple of 3.
	NotationEngineering
)

var notationNames = map[ScientificNotation]string{
	NotationNone:        "none",
	NotationStandard:    "standard",
	NotationNormalized:  "normalized",
	NotationEngineering: "engineering",
}

func (n ScientificNotation) String() string {
	if name, ok := notationNames[n]; ok {
		return name
	}
	return fmt.Sprintf("ScientificNotation(%d)", int(n))
}

// ParseScientificNotation resolves a notation from its name.
func ParseScientificNotation(name string) (ScientificNotation, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for notation, candidate := range notationNames {
		if candidate == normalized {
			return notation, nil
		}
	}
	return NotationNone, fmt.Errorf("%w: unknown scientific notation %q", ErrInvalidFormat, name)
}

func (n ScientificNotation) allowsExponent() bool {
	return n != NotationNone
}

func (n ScientificNotation) step() int {
	if n == NotationEngineering {
		return 3
	}
	return 1
}

// adjust shifts the decimal point of a non-negative value so that the
// mantissa satisfies the notation.
func (n ScientificNotation) adjust(abs decimal.Decimal) (decimal.Decimal, int) {
	if n != NotationNormalized && n != NotationEngineering {
		return abs, 0
	}
	if abs.IsZero() {
		return decimal.Zero, 0
	}

	magnitude := decimalMagnitude(abs)
	exponent := magnitude
	if n == NotationEngineering {
		exponent = floorDiv(magnitude, 3) * 3
	}
	return abs.Shift(int32(-exponent)), exponent
}

// renormalize fixes a mantissa pushed out of range by rounding up.
func (n ScientificNotation) renormalize(mantissa decimal.Decimal, exponent int) (decimal.Decimal, int) {
	if n != NotationNormalized && n != NotationEngineering {
		return mantissa, exponent
	}
	limit := n.mantissaLimit()
	for mantissa.Abs().GreaterThanOrEqual(limit) {
		mantissa = mantissa.Shift(int32(-n.step()))
		exponent += n.step()
	}
	return mantissa, exponent
}

func (n ScientificNotation) mantissaLimit() decimal.Decimal {
	if n == NotationEngineering {
		return decimal.NewFromInt(1000)
	}
	return decimal.NewFromInt(10)
}

// validate applies the read-side constraints on an unsigned mantissa and its exponent.
func (n ScientificNotation) validate(mantissa decimal.Decimal, exponent int, hasExponent bool) error {
	if !n.allowsExponent() {
		if hasExponent {
			return fmt.Errorf("%w: exponent not allowed", ErrFormatMismatch)
		}
		return nil
	}
	if n == NotationStandard || mantissa.IsZero() {
		return nil
	}
	if mantissa.LessThan(decimal.NewFromInt(1)) || mantissa.GreaterThanOrEqual(n.mantissaLimit()) {
		return fmt.Errorf("%w: mantissa %s outside of %s notation range", ErrOutOfRange, mantissa.String(), n)
	}
	if n == NotationEngineering && exponent%3 != 0 {
		return fmt.Errorf("%w: exponent %d is not a multiple of 3", ErrOutOfRange, exponent)
	}
	return nil
}

func (n ScientificNotation) describe() string {
	switch n {
	case NotationStandard:
		return " in standard scientific notation"
	case NotationNormalized:
		return " in normalized scientific notation"
	case NotationEngineering:
		return " in engineering notation"
	default:
		return ""
	}
}

// decimalMagnitude returns floor(log10(abs)) for a non-zero value.
func decimalMagnitude(abs decimal.Decimal) int {
	digits := len(abs.Coefficient().Text(10))
	if abs.Sign() < 0 {
		digits--
	}
	return digits + int(abs.Exponent()) - 1
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
