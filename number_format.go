package textformat

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/currency"
)

// Unbounded removes the upper limit on fractional digits.
const Unbounded = math.MaxInt

// NumberFormat describes how base-10 numbers are written and read.
// It is a value type: modifiers return an updated copy.
type NumberFormat struct {
	// Name is an optional style label used in descriptions, e.g. "French-style".
	Name string
	// ThousandSeparator is inserted between groups of three integer digits.
	// Empty disables grouping.
	ThousandSeparator string
	// FractionalSeparator separates integer and fractional digits.
	FractionalSeparator string
	// ShowNullIntegerPart writes 0.5 as "0.5" instead of ".5".
	ShowNullIntegerPart bool
	// MinimumIntegerPartLength left-pads the integer part with FillChar.
	MinimumIntegerPartLength int
	FillChar                 string
	MinimumFractionalDigits  int
	// MaximumFractionalDigits may be Unbounded.
	MaximumFractionalDigits int
	// ENotationChars lists the accepted exponent markers; the first one is written.
	ENotationChars     []string
	ScientificNotation ScientificNotation
	Rounding           RoundingMode
	SignDisplay        SignDisplay
}

// Validate reports inconsistent configurations.
func (f NumberFormat) Validate() error {
	if f.MinimumFractionalDigits < 0 || f.MaximumFractionalDigits < 0 {
		return fmt.Errorf("%w: fractional digit counts must be non-negative", ErrInvalidFormat)
	}
	if f.MinimumFractionalDigits > f.MaximumFractionalDigits {
		return fmt.Errorf("%w: minimum fractional digits %d exceed maximum %d",
			ErrInvalidFormat, f.MinimumFractionalDigits, f.MaximumFractionalDigits)
	}
	if f.MinimumIntegerPartLength < 0 {
		return fmt.Errorf("%w: minimum integer part length must be non-negative", ErrInvalidFormat)
	}
	if f.MinimumIntegerPartLength > 0 && utf8.RuneCountInString(f.FillChar) != 1 {
		return fmt.Errorf("%w: fill char %q must be a single character", ErrInvalidFormat, f.FillChar)
	}
	if f.ScientificNotation.allowsExponent() && len(f.ENotationChars) == 0 {
		return fmt.Errorf("%w: scientific notation requires at least one e-notation char", ErrInvalidFormat)
	}
	if f.FractionalSeparator != "" && f.FractionalSeparator == f.ThousandSeparator {
		return fmt.Errorf("%w: thousand and fractional separators must differ", ErrInvalidFormat)
	}
	return nil
}

// clone gives the copy its own ENotationChars backing array.
func (f NumberFormat) clone() NumberFormat {
	if f.ENotationChars != nil {
		f.ENotationChars = append([]string(nil), f.ENotationChars...)
	}
	return f
}

// WithName returns a copy labelled with the given style name.
func (f NumberFormat) WithName(name string) NumberFormat {
	f.Name = name
	return f.clone()
}

// WithThousandSeparator returns a copy using sep between digit groups.
func (f NumberFormat) WithThousandSeparator(sep string) NumberFormat {
	f.ThousandSeparator = sep
	return f.clone()
}

// WithoutThousandSeparator returns a copy that does not group digits.
func (f NumberFormat) WithoutThousandSeparator() NumberFormat {
	return f.WithThousandSeparator("")
}

func (f NumberFormat) WithFractionalSeparator(sep string) NumberFormat {
	f.FractionalSeparator = sep
	return f.clone()
}

func (f NumberFormat) WithNullIntegerPartShown() NumberFormat {
	f.ShowNullIntegerPart = true
	return f.clone()
}

func (f NumberFormat) WithNullIntegerPartHidden() NumberFormat {
	f.ShowNullIntegerPart = false
	return f.clone()
}

// WithMinimumIntegerPartLength returns a copy padding the integer part to
// length characters with fillChar.
func (f NumberFormat) WithMinimumIntegerPartLength(length int, fillChar string) NumberFormat {
	f.MinimumIntegerPartLength = length
	f.FillChar = fillChar
	return f.clone()
}

func (f NumberFormat) WithFillChar(fillChar string) NumberFormat {
	f.FillChar = fillChar
	return f.clone()
}

// WithNDecimals returns a copy writing exactly n fractional digits.
func (f NumberFormat) WithNDecimals(n int) NumberFormat {
	f.MinimumFractionalDigits = n
	f.MaximumFractionalDigits = n
	return f.clone()
}

// WithMinNDecimals raises the maximum when it would fall below n.
func (f NumberFormat) WithMinNDecimals(n int) NumberFormat {
	f.MinimumFractionalDigits = n
	if f.MaximumFractionalDigits < n {
		f.MaximumFractionalDigits = n
	}
	return f.clone()
}

// WithMaxNDecimals lowers the minimum when it would exceed n.
func (f NumberFormat) WithMaxNDecimals(n int) NumberFormat {
	f.MaximumFractionalDigits = n
	if f.MinimumFractionalDigits > n {
		f.MinimumFractionalDigits = n
	}
	return f.clone()
}

func (f NumberFormat) WithRounding(mode RoundingMode) NumberFormat {
	f.Rounding = mode
	return f.clone()
}

func (f NumberFormat) WithSignDisplay(display SignDisplay) NumberFormat {
	f.SignDisplay = display
	return f.clone()
}

func (f NumberFormat) WithScientificNotation(notation ScientificNotation) NumberFormat {
	f.ScientificNotation = notation
	return f.clone()
}

func (f NumberFormat) WithENotationChars(chars ...string) NumberFormat {
	f.ENotationChars = append([]string(nil), chars...)
	return f
}

// WithCurrencyDecimals returns a copy writing the standard number of
// fractional digits for the ISO 4217 currency code.
func (f NumberFormat) WithCurrencyDecimals(code string) (NumberFormat, error) {
	unit, err := currency.ParseISO(strings.TrimSpace(code))
	if err != nil {
		return f, fmt.Errorf("%w: unknown currency %q: %v", ErrInvalidFormat, code, err)
	}
	scale, _ := currency.Standard.Rounding(unit)
	return f.WithNDecimals(scale), nil
}

// Description returns a short English phrase describing the format, used in
// error messages.
func (f NumberFormat) Description() string {
	var b strings.Builder

	if f.MinimumIntegerPartLength > 0 {
		fill := f.FillChar
		if fill == " " {
			fill = "space"
		}
		b.WriteString(fill)
		b.WriteString("-left-padded ")
	}

	b.WriteString(f.SignDisplay.describe())

	if f.Name != "" {
		b.WriteString(f.Name)
		b.WriteString(" ")
	}

	switch {
	case f.MaximumFractionalDigits == 0:
		b.WriteString("integer")
	case f.MinimumFractionalDigits == f.MaximumFractionalDigits:
		fmt.Fprintf(&b, "%d-decimal number", f.MinimumFractionalDigits)
	case f.MaximumFractionalDigits == Unbounded && f.MinimumFractionalDigits == 0:
		b.WriteString("number")
	case f.MaximumFractionalDigits == Unbounded:
		fmt.Fprintf(&b, "number with at least %d decimals", f.MinimumFractionalDigits)
	case f.MinimumFractionalDigits == 0:
		fmt.Fprintf(&b, "number with up to %d decimals", f.MaximumFractionalDigits)
	default:
		fmt.Fprintf(&b, "number with %d to %d decimals", f.MinimumFractionalDigits, f.MaximumFractionalDigits)
	}

	b.WriteString(f.ScientificNotation.describe())
	return b.String()
}

func (f NumberFormat) String() string {
	return f.Description()
}

// cacheKey is a canonical serialization of every field that shapes the
// read pattern.
func (f NumberFormat) cacheKey() string {
	return fmt.Sprintf("%q|%q|%t|%d|%q|%d|%d|%q|%d",
		f.ThousandSeparator,
		f.FractionalSeparator,
		f.ShowNullIntegerPart,
		f.MinimumIntegerPartLength,
		f.FillChar,
		f.MinimumFractionalDigits,
		f.MaximumFractionalDigits,
		f.ENotationChars,
		f.ScientificNotation,
	)
}
