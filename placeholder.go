package textformat

import (
	"fmt"
)

// Placeholder is one part of a Template: either a Tag or a Separator.
type Placeholder interface {
	// Description is a short human readable label used in error messages.
	Description() string
	isPlaceholder()
}

// ReadFunc consumes a prefix of input and returns the value read and the rest.
type ReadFunc func(input string) (value any, rest string, err error)

// WriteFunc renders a value.
type WriteFunc func(value any) (string, error)

// Tag is a named, typed and reversible field of a Template. The name is the
// record key used by the template parser and formatter.
type Tag struct {
	Name        string
	description string
	read        ReadFunc
	write       WriteFunc
}

var _ Placeholder = Tag{}

// NewTag builds a Tag from untyped read and write functions.
func NewTag(name, description string, read ReadFunc, write WriteFunc) Tag {
	if read == nil || write == nil {
		panic(fmt.Sprintf("textformat: tag %q needs both a reader and a writer", name))
	}
	return Tag{
		Name:        name,
		description: description,
		read:        read,
		write:       write,
	}
}

// NewTypedTag builds a Tag whose values have type T. The writer rejects values
// of any other dynamic type with ErrInvalidValue.
func NewTypedTag[T any](name, description string,
	read func(input string) (T, string, error),
	write func(value T) (string, error),
) Tag {
	return NewTag(name, description,
		func(input string) (any, string, error) {
			value, rest, err := read(input)
			if err != nil {
				return nil, input, err
			}
			return value, rest, nil
		},
		func(value any) (string, error) {
			typed, ok := value.(T)
			if !ok {
				var zero T
				return "", fmt.Errorf("%w: tag %q expects %T, got %T", ErrInvalidValue, name, zero, value)
			}
			return write(typed)
		},
	)
}

func (Tag) isPlaceholder() {}

// Description describes the expected input.
func (t Tag) Description() string {
	if t.description != "" {
		return t.description
	}
	return "#" + t.Name
}

// Read consumes a prefix of input.
func (t Tag) Read(input string) (any, string, error) {
	if t.read == nil {
		return nil, input, fmt.Errorf("%w: tag %q has no reader", ErrInvalidValue, t.Name)
	}
	return t.read(input)
}

// Write renders value.
func (t Tag) Write(value any) (string, error) {
	if t.write == nil {
		return "", fmt.Errorf("%w: tag %q has no writer", ErrInvalidValue, t.Name)
	}
	return t.write(value)
}

// Rename returns a copy of the tag recorded under another name.
func (t Tag) Rename(name string) Tag {
	t.Name = name
	return t
}

func (t Tag) String() string {
	return t.Description()
}

// Separator is a literal substring matched verbatim when parsing and written
// verbatim when formatting.
type Separator struct {
	Value string
}

var _ Placeholder = Separator{}

// NewSeparator builds a literal separator.
func NewSeparator(value string) Separator {
	return Separator{Value: value}
}

func (Separator) isPlaceholder() {}

func (s Separator) Description() string {
	return fmt.Sprintf("'%s'", s.Value)
}

func (s Separator) String() string {
	return s.Value
}

var (
	Slash     = NewSeparator("/")
	Backslash = NewSeparator(`\`)
	Dot       = NewSeparator(".")
	Hyphen    = NewSeparator("-")
	Colon     = NewSeparator(":")
	Comma     = NewSeparator(",")
	Space     = NewSeparator(" ")
)
