package textformat

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-textformat/calendar"
)

// DateTimePart is a TagName or a Separator.
type DateTimePart interface {
	isDateTimePart()
}

func (Separator) isDateTimePart() {}

// DateTimeFormat reads and writes calendar.DateTime values through a
// template bound to a Context.
type DateTimeFormat struct {
	context  *Context
	parts    []DateTimePart
	template Template
}

// NewDateTimeFormat binds parts to the tags of ctx. It panics when a token has
// no tag in ctx.
func NewDateTimeFormat(ctx *Context, parts ...DateTimePart) *DateTimeFormat {
	if ctx == nil {
		panic("textformat: nil date-time context")
	}

	placeholders := make([]Placeholder, 0, len(parts))
	for _, part := range parts {
		switch p := part.(type) {
		case TagName:
			placeholders = append(placeholders, ctx.MustTag(p))
		case Separator:
			placeholders = append(placeholders, p)
		default:
			panic(fmt.Sprintf("textformat: unsupported date-time part %T", part))
		}
	}

	return &DateTimeFormat{
		context:  ctx,
		parts:    append([]DateTimePart(nil), parts...),
		template: NewTemplate(placeholders...),
	}
}

// NewDateTimeFormatFromLayout parses layout with ParseLayout and binds it to ctx.
func NewDateTimeFormatFromLayout(ctx *Context, layout string) (*DateTimeFormat, error) {
	parts, err := ParseLayout(layout)
	if err != nil {
		return nil, err
	}
	return NewDateTimeFormat(ctx, parts...), nil
}

// Context returns the context the format is bound to.
func (f *DateTimeFormat) Context() *Context {
	return f.context
}

// Template returns the underlying generic template.
func (f *DateTimeFormat) Template() Template {
	return f.template
}

// Format writes dt.
func (f *DateTimeFormat) Format(dt calendar.DateTime) (string, error) {
	record := make(Record)
	for _, tag := range f.template.Tags() {
		value, ok := dt.Get(tag.Name)
		if !ok {
			panic(fmt.Sprintf("textformat: tag %q is not a calendar field", tag.Name))
		}
		// A zero zone hour cannot carry the sign of a negative sub-hour offset.
		if tag.Name == calendar.FieldZoneHour && value == 0 && dt.Offset() < 0 {
			return "", fmt.Errorf("%w: zone offset of -%ds is shorter than an hour",
				ErrNotRepresentable, -dt.Offset())
		}
		record[tag.Name] = value
	}
	return f.template.Format(record)
}

// Parse reads a date-time spanning the whole input.
func (f *DateTimeFormat) Parse(input string) (calendar.DateTime, error) {
	record, err := f.template.Parse(input)
	if err != nil {
		return calendar.DateTime{}, err
	}

	parts := make(calendar.Parts, len(record))
	for name, value := range record {
		number, ok := value.(int)
		if !ok {
			return calendar.DateTime{}, fmt.Errorf("%w: %s holds %T", ErrInvalidValue, name, value)
		}
		parts[name] = number
	}
	return calendar.FromParts(parts)
}

// Layout renders the parts back into layout syntax.
func (f *DateTimeFormat) Layout() string {
	return FormatLayout(f.parts...)
}

func (f *DateTimeFormat) String() string {
	return f.Layout()
}

var tokensByLength = func() []TagName {
	tokens := append([]TagName(nil), TagNames...)
	sort.SliceStable(tokens, func(i, j int) bool {
		return len(tokens[i]) > len(tokens[j])
	})
	return tokens
}()

// ParseLayout splits a layout such as "yyyy-MM-dd'T'HH:mm:ss" into parts.
// Tokens are matched longest first; text between single quotes is literal and
// '' stands for a quote. Letters outside quotes must form tokens.
func ParseLayout(layout string) ([]DateTimePart, error) {
	var (
		parts   []DateTimePart
		literal strings.Builder
	)
	flush := func() {
		if literal.Len() > 0 {
			parts = append(parts, NewSeparator(literal.String()))
			literal.Reset()
		}
	}

	for i := 0; i < len(layout); {
		c := layout[i]

		if c == '\'' {
			if i+1 < len(layout) && layout[i+1] == '\'' {
				literal.WriteByte('\'')
				i += 2
				continue
			}
			j := i + 1
			closed := false
			for j < len(layout) {
				if layout[j] == '\'' {
					if j+1 < len(layout) && layout[j+1] == '\'' {
						literal.WriteByte('\'')
						j += 2
						continue
					}
					closed = true
					break
				}
				literal.WriteByte(layout[j])
				j++
			}
			if !closed {
				return nil, fmt.Errorf("%w: unterminated quote at position %d in %q", ErrUnknownToken, i, layout)
			}
			i = j + 1
			continue
		}

		if token, ok := matchToken(layout[i:]); ok {
			flush()
			parts = append(parts, token)
			i += len(token)
			continue
		}

		if isASCIILetter(c) {
			return nil, fmt.Errorf("%w: %q at position %d in %q", ErrUnknownToken, string(c), i, layout)
		}

		literal.WriteByte(c)
		i++
	}
	flush()

	return parts, nil
}

// FormatLayout is the inverse of ParseLayout.
func FormatLayout(parts ...DateTimePart) string {
	var b strings.Builder
	for _, part := range parts {
		switch p := part.(type) {
		case TagName:
			b.WriteString(string(p))
		case Separator:
			b.WriteString(quoteLiteral(p.Value))
		}
	}
	return b.String()
}

func matchToken(input string) (TagName, bool) {
	for _, token := range tokensByLength {
		if strings.HasPrefix(input, string(token)) {
			return token, true
		}
	}
	return "", false
}

func quoteLiteral(value string) string {
	needsQuotes := false
	for i := 0; i < len(value); i++ {
		if isASCIILetter(value[i]) {
			needsQuotes = true
			break
		}
	}
	escaped := strings.ReplaceAll(value, "'", "''")
	if needsQuotes {
		return "'" + escaped + "'"
	}
	return escaped
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
