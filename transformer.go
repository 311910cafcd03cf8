package textformat

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// Transformer is a typed read/write pair. Tags are built from transformers
// and transformers chain through Compose.
type Transformer[T any] struct {
	// Name describes the expected input in error messages.
	Name  string
	Read  func(input string) (T, string, error)
	Write func(value T) (string, error)
}

// Parse reads a value that must span the whole input.
func (t Transformer[T]) Parse(input string) (T, error) {
	value, rest, err := t.Read(input)
	if err != nil {
		var zero T
		return zero, err
	}
	if rest != "" {
		var zero T
		return zero, fmt.Errorf("%w: %s left '%s' unread", ErrTrailingInput, t.Name, rest)
	}
	return value, nil
}

// Tag exposes the transformer as a template tag recorded under name.
func (t Transformer[T]) Tag(name string) Tag {
	return NewTypedTag(name, t.Name, t.Read, t.Write)
}

// TagTransformer exposes a tag as an untyped transformer.
func TagTransformer(tag Tag) Transformer[any] {
	return Transformer[any]{
		Name:  tag.Description(),
		Read:  tag.Read,
		Write: tag.Write,
	}
}

// Compose feeds the string read by outer to inner, which must consume it
// entirely. Writing goes the other way round.
func Compose[T any](outer Transformer[string], inner Transformer[T]) Transformer[T] {
	return Transformer[T]{
		Name: inner.Name,
		Read: func(input string) (T, string, error) {
			var zero T
			chunk, rest, err := outer.Read(input)
			if err != nil {
				return zero, input, err
			}
			value, left, err := inner.Read(chunk)
			if err != nil {
				return zero, input, err
			}
			if left != "" {
				return zero, input, fmt.Errorf("%w: %s left '%s' unread in '%s'", ErrTrailingInput, inner.Name, left, chunk)
			}
			return value, rest, nil
		},
		Write: func(value T) (string, error) {
			text, err := inner.Write(value)
			if err != nil {
				return "", err
			}
			return outer.Write(text)
		},
	}
}

// FixedLengthStringTransformer reads exactly length characters.
func FixedLengthStringTransformer(length int) Transformer[string] {
	name := fmt.Sprintf("%d-character string", length)
	return Transformer[string]{
		Name: name,
		Read: func(input string) (string, string, error) {
			chunk, rest, ok := splitRunes(input, length)
			if !ok {
				return "", input, fmt.Errorf("%w: expected %s at the start of '%s'", ErrFormatMismatch, withArticle(name), input)
			}
			return chunk, rest, nil
		},
		Write: func(value string) (string, error) {
			if n := utf8.RuneCountInString(value); n != length {
				return "", fmt.Errorf("%w: '%s' has %d characters, expected %d", ErrNotRepresentable, value, n, length)
			}
			return value, nil
		},
	}
}

// PaddedStringTransformer reads exactly length characters and strips the left
// padding; it left-pads with fill when writing.
func PaddedStringTransformer(length int, fill string) Transformer[string] {
	name := fmt.Sprintf("%d-character %s-left-padded string", length, fill)
	return Transformer[string]{
		Name: name,
		Read: func(input string) (string, string, error) {
			chunk, rest, ok := splitRunes(input, length)
			if !ok {
				return "", input, fmt.Errorf("%w: expected %s at the start of '%s'", ErrFormatMismatch, withArticle(name), input)
			}
			for fill != "" && utf8.RuneCountInString(chunk) > 1 && strings.HasPrefix(chunk, fill) {
				chunk = chunk[len(fill):]
			}
			return chunk, rest, nil
		},
		Write: func(value string) (string, error) {
			n := utf8.RuneCountInString(value)
			if n > length {
				return "", fmt.Errorf("%w: '%s' does not fit in %d characters", ErrNotRepresentable, value, length)
			}
			return strings.Repeat(fill, length-n) + value, nil
		},
	}
}

// NumberInBasis reads and writes signed integers written in base 2 to 36.
func NumberInBasis(base int) Transformer[int64] {
	if base < 2 || base > 36 {
		panic(fmt.Sprintf("textformat: invalid base %d", base))
	}
	name := fmt.Sprintf("base-%d integer", base)
	return Transformer[int64]{
		Name: name,
		Read: func(input string) (int64, string, error) {
			end := 0
			if strings.HasPrefix(input, "-") {
				end = 1
			}
			start := end
			for end < len(input) && digitValue(input[end]) < base {
				end++
			}
			if end == start {
				return 0, input, fmt.Errorf("%w: expected %s at the start of '%s'", ErrFormatMismatch, withArticle(name), input)
			}
			value, err := strconv.ParseInt(input[:end], base, 64)
			if err != nil {
				return 0, input, fmt.Errorf("%w: %v", ErrOutOfRange, err)
			}
			return value, input[end:], nil
		},
		Write: func(value int64) (string, error) {
			return strconv.FormatInt(value, base), nil
		},
	}
}

// Literal associates a text with the value it stands for.
type Literal[T any] struct {
	Text  string
	Value T
}

// MappedLiteralsTransformer reads the first literal of the list that prefixes
// the input, so order matters when literals overlap. Writing uses the first
// literal whose value matches.
func MappedLiteralsTransformer[T comparable](literals []Literal[T], caseSensitive bool) Transformer[T] {
	texts := make([]string, len(literals))
	for i, literal := range literals {
		texts[i] = literal.Text
	}
	name := "one of: " + strings.Join(quoteAll(texts), ", ")

	return Transformer[T]{
		Name: name,
		Read: func(input string) (T, string, error) {
			for _, literal := range literals {
				if rest, ok := cutLiteral(input, literal.Text, caseSensitive); ok {
					return literal.Value, rest, nil
				}
			}
			var zero T
			return zero, input, fmt.Errorf("%w: expected '%s' to start with %s", ErrFormatMismatch, input, name)
		},
		Write: func(value T) (string, error) {
			for _, literal := range literals {
				if literal.Value == value {
					return literal.Text, nil
				}
			}
			return "", fmt.Errorf("%w: %v has no literal among %s", ErrOutOfRange, value, name)
		},
	}
}

func cutLiteral(input, literal string, caseSensitive bool) (string, bool) {
	if caseSensitive {
		return strings.CutPrefix(input, literal)
	}
	head, rest, ok := splitRunes(input, utf8.RuneCountInString(literal))
	if !ok {
		return input, false
	}
	folder := cases.Fold()
	if folder.String(head) != folder.String(literal) {
		return input, false
	}
	return rest, true
}

// splitRunes cuts the first n runes of input.
func splitRunes(input string, n int) (string, string, bool) {
	if n < 0 {
		return "", input, false
	}
	offset := 0
	for i := 0; i < n; i++ {
		if offset >= len(input) {
			return "", input, false
		}
		_, size := utf8.DecodeRuneInString(input[offset:])
		offset += size
	}
	return input[:offset], input[offset:], true
}

func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	default:
		return 36
	}
}

func quoteAll(values []string) []string {
	out := make([]string, len(values))
	for i, value := range values {
		out[i] = "'" + value + "'"
	}
	return out
}
