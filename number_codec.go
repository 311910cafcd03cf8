package textformat

import (
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const digitGroupSize = 3

// maxDecimalExponent bounds the adjusted exponent of the values read and
// written, so that a number never expands to more digits than that.
const maxDecimalExponent = 6144

// withinMagnitude reports whether the leading digit of value sits within
// 10^±maxDecimalExponent.
func withinMagnitude(value decimal.Decimal) bool {
	if value.IsZero() {
		return true
	}
	adjusted := int64(value.Exponent()) + int64(value.NumDigits()) - 1
	return adjusted <= maxDecimalExponent && adjusted >= -maxDecimalExponent
}

// Format writes value. A decimal zero is always treated as positive.
func (f NumberFormat) Format(value decimal.Decimal) (string, error) {
	return f.format(value, value.Sign() < 0)
}

// FormatFloat writes value. Negative zero is treated as negative.
func (f NumberFormat) FormatFloat(value float64) (string, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "", fmt.Errorf("%w: %v cannot be written as %s", ErrNotRepresentable, value, withArticle(f.Description()))
	}
	return f.format(decimal.NewFromFloat(value), math.Signbit(value))
}

// FormatInt writes an integer value.
func (f NumberFormat) FormatInt(value int64) (string, error) {
	return f.Format(decimal.NewFromInt(value))
}

// Formatter returns Format as a function.
func (f NumberFormat) Formatter() func(decimal.Decimal) (string, error) {
	return f.Format
}

func (f NumberFormat) format(value decimal.Decimal, negative bool) (string, error) {
	if err := f.Validate(); err != nil {
		return "", err
	}
	if !withinMagnitude(value) {
		return "", fmt.Errorf("%w: magnitude beyond 1e±%d cannot be written as %s",
			ErrNotRepresentable, maxDecimalExponent, withArticle(f.Description()))
	}

	mantissa, exponent := f.ScientificNotation.adjust(value.Abs())
	if negative {
		mantissa = mantissa.Neg()
	}

	places := f.MaximumFractionalDigits
	if places == Unbounded {
		places = -1
	}
	rounded := Round(mantissa, places, f.Rounding).Abs()
	rounded, exponent = f.ScientificNotation.renormalize(rounded, exponent)

	isZero := rounded.IsZero()
	intDigits, fracDigits := splitDigits(rounded)

	if missing := f.MinimumFractionalDigits - len(fracDigits); missing > 0 {
		fracDigits += strings.Repeat("0", missing)
	}
	if fracDigits != "" && f.FractionalSeparator == "" {
		return "", fmt.Errorf("%w: %s has fractional digits but %s has no fractional separator",
			ErrNotRepresentable, value.String(), withArticle(f.Description()))
	}

	integerPart := groupDigits(intDigits, f.ThousandSeparator)
	if integerPart == "0" && !f.ShowNullIntegerPart && fracDigits != "" {
		integerPart = ""
	}
	if missing := f.MinimumIntegerPartLength - utf8.RuneCountInString(integerPart); missing > 0 {
		integerPart = strings.Repeat(f.FillChar, missing) + integerPart
	}

	var b strings.Builder
	b.WriteString(f.SignDisplay.format(negative, isZero))
	b.WriteString(integerPart)
	if fracDigits != "" {
		b.WriteString(f.FractionalSeparator)
		b.WriteString(fracDigits)
	}
	if exponent != 0 {
		b.WriteString(f.ENotationChars[0])
		b.WriteString(strconv.Itoa(exponent))
	}
	return b.String(), nil
}

// splitDigits returns the integer and fractional digits of a non-negative
// value, without trailing fractional zeros.
func splitDigits(abs decimal.Decimal) (string, string) {
	text := abs.String()
	if idx := strings.IndexByte(text, '.'); idx >= 0 {
		return text[:idx], strings.TrimRight(text[idx+1:], "0")
	}
	return text, ""
}

func groupDigits(digits, sep string) string {
	if sep == "" || len(digits) <= digitGroupSize {
		return digits
	}

	var b strings.Builder
	head := len(digits) % digitGroupSize
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += digitGroupSize {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+digitGroupSize])
	}
	return b.String()
}

// Extract reads a number from the start of input and returns it with the
// unread remainder.
func (f NumberFormat) Extract(input string) (decimal.Decimal, string, error) {
	if err := f.Validate(); err != nil {
		return decimal.Zero, input, err
	}

	re := f.pattern()
	loc := re.FindStringSubmatchIndex(input)
	if loc == nil {
		return decimal.Zero, input, f.readError(input, ErrFormatMismatch)
	}

	group := func(name string) string {
		idx := re.SubexpIndex(name)
		if idx < 0 || loc[2*idx] < 0 {
			return ""
		}
		return input[loc[2*idx]:loc[2*idx+1]]
	}

	sign := group("sign")
	fill := group("fill")
	intPart := group("int")
	fracPart := group("frac")
	expPart := group("exp")
	rest := input[loc[1]:]

	if rest != "" && rest[0] >= '0' && rest[0] <= '9' {
		return decimal.Zero, input, f.readError(input, ErrFormatMismatch)
	}

	zeroFill := fill != "" && f.FillChar == "0"
	if intPart == "" {
		switch {
		case zeroFill:
			intPart = "0"
		case fracPart == "":
			return decimal.Zero, input, f.readError(input, ErrFormatMismatch)
		case f.ShowNullIntegerPart:
			return decimal.Zero, input, f.readError(input,
				fmt.Errorf("%w: missing integer part", ErrFormatMismatch))
		}
	}

	if n := len(fracPart); n < f.MinimumFractionalDigits || n > f.MaximumFractionalDigits {
		return decimal.Zero, input, f.readError(input,
			fmt.Errorf("%w: %d fractional digits", ErrFormatMismatch, n))
	}

	digits := intPart + fracPart
	if f.ThousandSeparator != "" {
		digits = strings.ReplaceAll(intPart, f.ThousandSeparator, "") + fracPart
	}
	if digits == "" {
		digits = "0"
	}
	if len(fracPart) > math.MaxInt32-maxDecimalExponent {
		return decimal.Zero, input, f.readError(input,
			fmt.Errorf("%w: %d fractional digits", ErrOutOfRange, len(fracPart)))
	}
	coef, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return decimal.Zero, input, f.readError(input, ErrFormatMismatch)
	}
	mantissa := decimal.NewFromBigInt(coef, int32(-len(fracPart)))

	exponent := 0
	if expPart != "" {
		parsed, err := strconv.ParseInt(expPart, 10, 64)
		if err != nil || parsed > maxDecimalExponent || parsed < -maxDecimalExponent {
			return decimal.Zero, input, f.readError(input,
				fmt.Errorf("%w: exponent %s", ErrOutOfRange, expPart))
		}
		exponent = int(parsed)
	}
	if err := f.ScientificNotation.validate(mantissa, exponent, expPart != ""); err != nil {
		return decimal.Zero, input, f.readError(input, err)
	}

	value := mantissa.Shift(int32(exponent))
	if !withinMagnitude(value) {
		return decimal.Zero, input, f.readError(input,
			fmt.Errorf("%w: magnitude beyond 1e±%d", ErrOutOfRange, maxDecimalExponent))
	}
	if err := f.SignDisplay.validate(sign, value.IsZero()); err != nil {
		return decimal.Zero, input, f.readError(input, err)
	}
	if sign == "-" {
		value = value.Neg()
	}
	return value, rest, nil
}

// Parse reads a number that must span the whole input.
func (f NumberFormat) Parse(input string) (decimal.Decimal, error) {
	value, rest, err := f.Extract(input)
	if err != nil {
		return decimal.Zero, err
	}
	if rest != "" {
		return decimal.Zero, f.readError(input,
			fmt.Errorf("%w: '%s'", ErrTrailingInput, rest))
	}
	return value, nil
}

// ParseFloat is Parse converted to float64.
func (f NumberFormat) ParseFloat(input string) (float64, error) {
	value, err := f.Parse(input)
	if err != nil {
		return 0, err
	}
	out, _ := value.Float64()
	return out, nil
}

// Extractor returns Extract as a function.
func (f NumberFormat) Extractor() func(string) (decimal.Decimal, string, error) {
	return f.Extract
}

// Parser returns Parse as a function.
func (f NumberFormat) Parser() func(string) (decimal.Decimal, error) {
	return f.Parse
}

func (f NumberFormat) readError(input string, cause error) error {
	return fmt.Errorf("%s could not be parsed from the start of '%s': %w",
		capitalize(withArticle(f.Description())), input, cause)
}

func (f NumberFormat) pattern() *regexp.Regexp {
	return numberPatterns.get(f.cacheKey(), f.compilePattern)
}

func (f NumberFormat) compilePattern() *regexp.Regexp {
	var b strings.Builder
	b.WriteString(`^(?P<sign>[+-])?`)

	if f.MinimumIntegerPartLength > 0 && f.FillChar != "" {
		fmt.Fprintf(&b, `(?P<fill>(?:%s)*)`, regexp.QuoteMeta(f.FillChar))
	}

	if f.ThousandSeparator != "" {
		fmt.Fprintf(&b, `(?P<int>(?:\d{1,3}(?:%s\d{3})*)?)`, regexp.QuoteMeta(f.ThousandSeparator))
	} else {
		b.WriteString(`(?P<int>\d*)`)
	}

	if f.FractionalSeparator != "" && f.MaximumFractionalDigits > 0 {
		fmt.Fprintf(&b, `(?:%s(?P<frac>\d+))?`, regexp.QuoteMeta(f.FractionalSeparator))
	}

	if f.ScientificNotation.allowsExponent() && len(f.ENotationChars) > 0 {
		markers := make([]string, 0, len(f.ENotationChars))
		for _, char := range f.ENotationChars {
			markers = append(markers, regexp.QuoteMeta(char))
		}
		fmt.Fprintf(&b, `(?:(?:%s)(?P<exp>[+-]?\d+))?`, strings.Join(markers, "|"))
	}

	return regexp.MustCompile(b.String())
}

func withArticle(phrase string) string {
	if phrase == "" {
		return phrase
	}
	switch phrase[0] {
	case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
		return "an " + phrase
	default:
		return "a " + phrase
	}
}

func capitalize(phrase string) string {
	if phrase == "" {
		return phrase
	}
	return strings.ToUpper(phrase[:1]) + phrase[1:]
}
