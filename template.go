package textformat

import (
	"fmt"
	"strings"
)

// Record holds the values read or written by a Template, keyed by tag name.
type Record map[string]any

// Template is an ordered sequence of tags and separators. It is read and
// written left to right in a single pass.
type Template struct {
	parts []Placeholder
}

// NewTemplate builds a template from its parts.
func NewTemplate(parts ...Placeholder) Template {
	for i, part := range parts {
		if part == nil {
			panic(fmt.Sprintf("textformat: template part %d is nil", i))
		}
	}
	return Template{parts: append([]Placeholder(nil), parts...)}
}

// Parts returns a copy of the template parts.
func (t Template) Parts() []Placeholder {
	return append([]Placeholder(nil), t.parts...)
}

// Tags returns the tags of the template in order.
func (t Template) Tags() []Tag {
	tags := make([]Tag, 0, len(t.parts))
	for _, part := range t.parts {
		if tag, ok := part.(Tag); ok {
			tags = append(tags, tag)
		}
	}
	return tags
}

// Description renders the template with tags shown by name, e.g. "#year-#month".
func (t Template) Description() string {
	var b strings.Builder
	for _, part := range t.parts {
		switch p := part.(type) {
		case Tag:
			b.WriteString("#")
			b.WriteString(p.Name)
		case Separator:
			b.WriteString(p.Value)
		}
	}
	return b.String()
}

func (t Template) String() string {
	return t.Description()
}

// ParsePrefix reads the template from the start of input and returns the
// record with the unread remainder. When a tag name appears several times, the
// last value read wins.
func (t Template) ParsePrefix(input string) (Record, string, error) {
	record := make(Record, len(t.parts))
	rest := input

	for i, part := range t.parts {
		position := len(input) - len(rest)

		switch p := part.(type) {
		case Separator:
			after, ok := strings.CutPrefix(rest, p.Value)
			if !ok {
				return nil, input, &TemplateError{
					Index:    i,
					Position: position,
					Err: fmt.Errorf("%w: expected remaining text '%s' to start with '%s'",
						ErrLiteralMismatch, rest, p.Value),
				}
			}
			rest = after

		case Tag:
			value, after, err := p.Read(rest)
			if err != nil {
				return nil, input, &TemplateError{Index: i, Tag: p.Name, Position: position, Err: err}
			}
			record[p.Name] = value
			rest = after

		default:
			panic(fmt.Sprintf("textformat: unsupported placeholder %T", part))
		}
	}

	return record, rest, nil
}

// Parse reads a record from input, which must be consumed entirely.
func (t Template) Parse(input string) (Record, error) {
	record, rest, err := t.ParsePrefix(input)
	if err != nil {
		return nil, err
	}
	if rest != "" {
		return nil, &TemplateError{
			Index:    len(t.parts),
			Position: len(input) - len(rest),
			Err:      fmt.Errorf("%w: '%s' after template %s", ErrTrailingInput, rest, t.Description()),
		}
	}
	return record, nil
}

// Format writes record. Every occurrence of a tag name renders the same
// record value.
func (t Template) Format(record Record) (string, error) {
	var b strings.Builder

	for i, part := range t.parts {
		switch p := part.(type) {
		case Separator:
			b.WriteString(p.Value)

		case Tag:
			value, ok := record[p.Name]
			if !ok {
				return "", &TemplateError{
					Index:    i,
					Tag:      p.Name,
					Position: -1,
					Err:      fmt.Errorf("%w: no value for %s", ErrMissingValue, p.Description()),
				}
			}
			text, err := p.Write(value)
			if err != nil {
				return "", &TemplateError{Index: i, Tag: p.Name, Position: -1, Err: err}
			}
			b.WriteString(text)

		default:
			panic(fmt.Sprintf("textformat: unsupported placeholder %T", part))
		}
	}

	return b.String(), nil
}

// Parser returns Parse as a function.
func (t Template) Parser() func(string) (Record, error) {
	return t.Parse
}

// Formatter returns Format as a function.
func (t Template) Formatter() func(Record) (string, error) {
	return t.Format
}
