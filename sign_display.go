package textformat

import (
	"fmt"
	"strings"
)

// SignDisplay controls when a sign is written and which signs are accepted
// when reading.
type SignDisplay int

const (
	// SignAuto writes '-' for negative numbers (including -0) and nothing otherwise.
	SignAuto SignDisplay = iota
	// SignAlways writes '+' or '-' for every number.
	SignAlways
	// SignExceptZero writes '+' or '-' except for zero.
	SignExceptZero
	// SignNegative writes '-' for negative non-zero numbers only.
	SignNegative
	// SignNever never writes a sign.
	SignNever
)

var signDisplayNames = map[SignDisplay]string{
	SignAuto:       "auto",
	SignAlways:     "always",
	SignExceptZero: "except-zero",
	SignNegative:   "negative",
	SignNever:      "never",
}

func (s SignDisplay) String() string {
	if name, ok := signDisplayNames[s]; ok {
		return name
	}
	return fmt.Sprintf("SignDisplay(%d)", int(s))
}

// ParseSignDisplay resolves a sign display option from its name.
func ParseSignDisplay(name string) (SignDisplay, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for option, candidate := range signDisplayNames {
		if candidate == normalized {
			return option, nil
		}
	}
	return SignAuto, fmt.Errorf("%w: unknown sign display %q", ErrInvalidFormat, name)
}

func (s SignDisplay) format(negative, isZero bool) string {
	switch s {
	case SignAlways:
		if negative {
			return "-"
		}
		return "+"
	case SignExceptZero:
		switch {
		case isZero:
			return ""
		case negative:
			return "-"
		default:
			return "+"
		}
	case SignNegative:
		if negative && !isZero {
			return "-"
		}
		return ""
	case SignNever:
		return ""
	default:
		if negative {
			return "-"
		}
		return ""
	}
}

// validate applies the read-side rule to the sign actually present in the input.
func (s SignDisplay) validate(sign string, isZero bool) error {
	switch s {
	case SignAlways:
		if sign == "" {
			return fmt.Errorf("%w: a sign is required", ErrSignMismatch)
		}
	case SignExceptZero:
		if isZero && sign != "" {
			return fmt.Errorf("%w: zero must not carry a sign", ErrSignMismatch)
		}
		if !isZero && sign == "" {
			return fmt.Errorf("%w: a sign is required for non-zero values", ErrSignMismatch)
		}
	case SignNegative:
		if sign == "+" {
			return fmt.Errorf("%w: '+' is not accepted", ErrSignMismatch)
		}
		if sign == "-" && isZero {
			return fmt.Errorf("%w: zero must not be negative", ErrSignMismatch)
		}
	case SignNever:
		if sign != "" {
			return fmt.Errorf("%w: no sign is accepted", ErrSignMismatch)
		}
	default:
		if sign == "+" {
			return fmt.Errorf("%w: '+' is not accepted", ErrSignMismatch)
		}
	}
	return nil
}

func (s SignDisplay) describe() string {
	switch s {
	case SignAlways:
		return "signed "
	case SignExceptZero:
		return "signed non-zero "
	case SignNever:
		return "unsigned "
	default:
		return ""
	}
}
