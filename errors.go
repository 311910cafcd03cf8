package textformat

import (
	"errors"
	"fmt"
)

var (
	// ErrLiteralMismatch indicates that a separator was not found where expected.
	ErrLiteralMismatch = errors.New("textformat: literal mismatch")

	// ErrFormatMismatch indicates that the input does not have the shape a tag expects.
	ErrFormatMismatch = errors.New("textformat: format mismatch")

	// ErrOutOfRange indicates a well-formed value outside of its allowed range.
	ErrOutOfRange = errors.New("textformat: value out of range")

	// ErrNotRepresentable indicates a value that cannot be written with the configured format.
	ErrNotRepresentable = errors.New("textformat: value not representable")

	// ErrSignMismatch indicates a sign rejected by the sign display option.
	ErrSignMismatch = errors.New("textformat: sign not allowed")

	// ErrMissingValue indicates that a record lacks the value for a tag.
	ErrMissingValue = errors.New("textformat: missing value")

	// ErrInvalidValue indicates a record value of the wrong type for its tag.
	ErrInvalidValue = errors.New("textformat: invalid value")

	// ErrTrailingInput indicates characters left over after a full parse.
	ErrTrailingInput = errors.New("textformat: trailing input")

	// ErrUnknownToken indicates an unrecognized token in a date-time layout.
	ErrUnknownToken = errors.New("textformat: unknown token")

	// ErrInvalidFormat indicates an inconsistent number format configuration.
	ErrInvalidFormat = errors.New("textformat: invalid format")
)

// TemplateError reports the template part that failed while parsing or formatting.
type TemplateError struct {
	// Index of the failing part within the template.
	Index int
	// Tag is the tag name, empty for separators.
	Tag string
	// Position is the byte offset in the input where parsing failed. It is -1
	// for formatting errors.
	Position int
	Err      error
}

func (e *TemplateError) Error() string {
	if e == nil {
		return ""
	}
	subject := fmt.Sprintf("part %d", e.Index)
	if e.Tag != "" {
		subject = fmt.Sprintf("tag %q (part %d)", e.Tag, e.Index)
	}
	if e.Position >= 0 {
		return fmt.Sprintf("%s at position %d: %v", subject, e.Position, e.Err)
	}
	return fmt.Sprintf("%s: %v", subject, e.Err)
}

func (e *TemplateError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
