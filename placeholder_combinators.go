package textformat

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// RealTag reads and writes decimal.Decimal values with format.
func RealTag(name string, format NumberFormat) Tag {
	return NewTypedTag(name, format.Description(), format.Extract, format.Format)
}

// IntTag reads and writes int values with format. Values with a fractional
// part are rejected.
func IntTag(name string, format NumberFormat) Tag {
	description := format.Description()
	return NewTypedTag(name, description,
		func(input string) (int, string, error) {
			value, rest, err := format.Extract(input)
			if err != nil {
				return 0, input, err
			}
			if !value.IsInteger() {
				return 0, input, fmt.Errorf("%w: %s is not an integer", ErrFormatMismatch, value.String())
			}
			if value.GreaterThan(decimal.NewFromInt(math.MaxInt32)) || value.LessThan(decimal.NewFromInt(math.MinInt32)) {
				return 0, input, fmt.Errorf("%w: %s does not fit in an int", ErrOutOfRange, value.String())
			}
			return int(value.IntPart()), rest, nil
		},
		func(value int) (string, error) {
			return format.Format(decimal.NewFromInt(int64(value)))
		},
	)
}

// FixedLength wraps tag so that it reads exactly length characters, stripping
// the left padding made of fillChar, and left-pads what it writes to length.
func FixedLength(tag Tag, length int, fillChar string) Tag {
	composed := Compose(PaddedStringTransformer(length, fillChar), TagTransformer(tag))
	description := fmt.Sprintf("%d-character %s", length, tag.Description())
	return NewTag(tag.Name, description, composed.Read, composed.Write)
}

// FixedLengthToReal reads and writes decimal values spread over exactly length
// characters, left-padded with fillChar.
func FixedLengthToReal(name string, length int, fillChar string, format NumberFormat) Tag {
	return FixedLength(RealTag(name, format), length, fillChar)
}

// FixedLengthToInt is FixedLengthToReal for int values.
func FixedLengthToInt(name string, length int, fillChar string, format NumberFormat) Tag {
	return FixedLength(IntTag(name, format), length, fillChar)
}

// MappedLiterals builds a tag from an ordered list of literals. Reading tries
// each literal as a prefix in list order and the first match wins.
func MappedLiterals[T comparable](name string, literals []Literal[T], caseSensitive bool) Tag {
	return MappedLiteralsTransformer(literals, caseSensitive).Tag(name)
}

// Modifier customizes an existing tag. Nil fields leave the corresponding
// behavior untouched.
type Modifier struct {
	// DescriptionMapper rewrites the tag description.
	DescriptionMapper func(description string) string
	// PostParser maps a successfully read value.
	PostParser func(value any) (any, error)
	// PreFormatter maps a value before it is written.
	PreFormatter func(value any) (any, error)
}

// Modify returns a tag combining tag with the modifier hooks.
func Modify(tag Tag, m Modifier) Tag {
	description := tag.Description()
	if m.DescriptionMapper != nil {
		description = m.DescriptionMapper(description)
	}

	return NewTag(tag.Name, description,
		func(input string) (any, string, error) {
			value, rest, err := tag.Read(input)
			if err != nil {
				return nil, input, err
			}
			if m.PostParser == nil {
				return value, rest, nil
			}
			mapped, err := m.PostParser(value)
			if err != nil {
				return nil, input, fmt.Errorf("%s: %w", description, err)
			}
			return mapped, rest, nil
		},
		func(value any) (string, error) {
			if m.PreFormatter != nil {
				mapped, err := m.PreFormatter(value)
				if err != nil {
					return "", fmt.Errorf("%s: %w", description, err)
				}
				value = mapped
			}
			return tag.Write(value)
		},
	)
}

// FixedLengthString reads exactly length characters as a string value.
func FixedLengthString(name string, length int) Tag {
	return FixedLengthStringTransformer(length).Tag(name)
}

// StringUntil reads up to, but not including, the first occurrence of
// terminator, or up to the end of the input when it never occurs.
func StringUntil(name, terminator string) Tag {
	description := fmt.Sprintf("string not containing '%s'", terminator)
	return NewTypedTag(name, description,
		func(input string) (string, string, error) {
			if terminator == "" {
				return input, "", nil
			}
			if idx := strings.Index(input, terminator); idx >= 0 {
				return input[:idx], input[idx:], nil
			}
			return input, "", nil
		},
		func(value string) (string, error) {
			if terminator != "" && strings.Contains(value, terminator) {
				return "", fmt.Errorf("%w: '%s' contains '%s'", ErrNotRepresentable, value, terminator)
			}
			return value, nil
		},
	)
}

// WindowedYear maps two-digit values read by tag into [base, base+99] and
// back.
func WindowedYear(tag Tag, base int) Tag {
	inRange := func(year int) error {
		if year < base || year > base+99 {
			return fmt.Errorf("%w: %d is outside of [%d, %d]", ErrOutOfRange, year, base, base+99)
		}
		return nil
	}

	return Modify(tag, Modifier{
		DescriptionMapper: func(description string) string {
			return fmt.Sprintf("%s (year between %d and %d)", description, base, base+99)
		},
		PostParser: func(value any) (any, error) {
			short, ok := value.(int)
			if !ok {
				return nil, fmt.Errorf("%w: expected int, got %T", ErrInvalidValue, value)
			}
			year := base + short
			return year, inRange(year)
		},
		PreFormatter: func(value any) (any, error) {
			year, ok := value.(int)
			if !ok {
				return nil, fmt.Errorf("%w: expected int, got %T", ErrInvalidValue, value)
			}
			if err := inRange(year); err != nil {
				return nil, err
			}
			return year - base, nil
		},
	})
}
