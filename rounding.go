package textformat

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// RoundingMode selects how discarded decimal digits are handled.
type RoundingMode int

const (
	RoundHalfExpand RoundingMode = iota
	RoundCeil
	RoundFloor
	RoundTrunc
	RoundExpand
	RoundHalfCeil
	RoundHalfFloor
	RoundHalfTrunc
	RoundHalfEven
)

var roundingModeNames = map[RoundingMode]string{
	RoundHalfExpand: "half-expand",
	RoundCeil:       "ceil",
	RoundFloor:      "floor",
	RoundTrunc:      "trunc",
	RoundExpand:     "expand",
	RoundHalfCeil:   "half-ceil",
	RoundHalfFloor:  "half-floor",
	RoundHalfTrunc:  "half-trunc",
	RoundHalfEven:   "half-even",
}

func (m RoundingMode) String() string {
	if name, ok := roundingModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("RoundingMode(%d)", int(m))
}

// ParseRoundingMode resolves a rounding mode from its name.
func ParseRoundingMode(name string) (RoundingMode, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for mode, candidate := range roundingModeNames {
		if candidate == normalized {
			return mode, nil
		}
	}
	return RoundHalfExpand, fmt.Errorf("%w: unknown rounding mode %q", ErrInvalidFormat, name)
}

var bigTen = big.NewInt(10)

// Round rounds d to the given number of fractional digits. A negative number
// of places leaves d untouched.
func Round(d decimal.Decimal, places int, mode RoundingMode) decimal.Decimal {
	if places < 0 {
		return d
	}

	exp := int(d.Exponent())
	if exp >= -places {
		return d
	}

	coef := d.Coefficient()
	drop := -places - exp
	divisor := new(big.Int).Exp(bigTen, big.NewInt(int64(drop)), nil)

	quo, rem := new(big.Int).QuoRem(coef, divisor, new(big.Int))
	if rem.Sign() == 0 {
		return decimal.NewFromBigInt(quo, int32(-places))
	}

	sign := coef.Sign()
	half := new(big.Int).Abs(rem)
	half.Lsh(half, 1)
	cmp := half.Cmp(divisor)

	if mode.awayFromZero(sign, cmp, quo) {
		quo.Add(quo, big.NewInt(int64(sign)))
	}
	return decimal.NewFromBigInt(quo, int32(-places))
}

// awayFromZero reports whether the truncated quotient must be bumped by one
// unit away from zero. cmp compares twice the discarded remainder with one unit.
func (m RoundingMode) awayFromZero(sign, cmp int, quo *big.Int) bool {
	switch m {
	case RoundTrunc:
		return false
	case RoundExpand:
		return true
	case RoundCeil:
		return sign > 0
	case RoundFloor:
		return sign < 0
	}

	if cmp != 0 {
		return cmp > 0
	}

	switch m {
	case RoundHalfTrunc:
		return false
	case RoundHalfCeil:
		return sign > 0
	case RoundHalfFloor:
		return sign < 0
	case RoundHalfEven:
		return quo.Bit(0) == 1
	default:
		return true
	}
}
