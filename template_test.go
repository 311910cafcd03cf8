package textformat

import (
	"errors"
	"strings"
	"testing"
)

func yearMonthTemplate() Template {
	return NewTemplate(
		IntTag("year", PlainInteger),
		Hyphen,
		FixedLengthToInt("month", 2, "0", PlainInteger),
	)
}

func TestTemplateParse(t *testing.T) {
	record, err := yearMonthTemplate().Parse("2024-09")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if record["year"] != 2024 || record["month"] != 9 {
		t.Fatalf("record = %v", record)
	}
}

func TestTemplateFormat(t *testing.T) {
	out, err := yearMonthTemplate().Format(Record{"year": 2024, "month": 9})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if out != "2024-09" {
		t.Fatalf("Format = %q", out)
	}
}

func TestTemplateSeparatorMismatch(t *testing.T) {
	_, err := yearMonthTemplate().Parse("2024_09")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrLiteralMismatch) {
		t.Fatalf("error = %v, want literal mismatch", err)
	}
	if !strings.Contains(err.Error(), "'-'") {
		t.Fatalf("error should name the separator: %v", err)
	}

	var tplErr *TemplateError
	if !errors.As(err, &tplErr) {
		t.Fatalf("expected *TemplateError, got %T", err)
	}
	if tplErr.Index != 1 || tplErr.Position != 4 || tplErr.Tag != "" {
		t.Fatalf("TemplateError = %+v", tplErr)
	}
}

func TestTemplateTagFailureReportsTag(t *testing.T) {
	_, err := yearMonthTemplate().Parse("2024-x9")
	var tplErr *TemplateError
	if !errors.As(err, &tplErr) {
		t.Fatalf("expected *TemplateError, got %v", err)
	}
	if tplErr.Tag != "month" || tplErr.Position != 5 {
		t.Fatalf("TemplateError = %+v", tplErr)
	}
}

func TestTemplateTrailingInput(t *testing.T) {
	tmpl := yearMonthTemplate()

	if _, err := tmpl.Parse("2024-09 and more"); !errors.Is(err, ErrTrailingInput) {
		t.Fatalf("Parse error = %v, want trailing input", err)
	}

	record, rest, err := tmpl.ParsePrefix("2024-09 and more")
	if err != nil {
		t.Fatalf("ParsePrefix: %v", err)
	}
	if rest != " and more" || record["month"] != 9 {
		t.Fatalf("ParsePrefix = %v, %q", record, rest)
	}
}

func TestTemplateFormatMissingValue(t *testing.T) {
	_, err := yearMonthTemplate().Format(Record{"year": 2024})
	if !errors.Is(err, ErrMissingValue) {
		t.Fatalf("error = %v, want missing value", err)
	}
	var tplErr *TemplateError
	if !errors.As(err, &tplErr) || tplErr.Tag != "month" || tplErr.Position != -1 {
		t.Fatalf("TemplateError = %+v", tplErr)
	}
}

func TestTemplateFormatWrongType(t *testing.T) {
	_, err := yearMonthTemplate().Format(Record{"year": "2024", "month": 9})
	if !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("error = %v, want invalid value", err)
	}
}

func TestTemplateDuplicateTagNames(t *testing.T) {
	tmpl := NewTemplate(IntTag("n", PlainInteger), Slash, IntTag("n", PlainInteger))

	record, err := tmpl.Parse("1/2")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if record["n"] != 2 {
		t.Fatalf("last value should win, got %v", record["n"])
	}

	out, err := tmpl.Format(Record{"n": 3})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if out != "3/3" {
		t.Fatalf("Format = %q", out)
	}
}

func TestTemplateDescription(t *testing.T) {
	tmpl := yearMonthTemplate()
	if got := tmpl.Description(); got != "#year-#month" {
		t.Fatalf("Description = %q", got)
	}
	if len(tmpl.Tags()) != 2 || len(tmpl.Parts()) != 3 {
		t.Fatalf("Tags/Parts = %d/%d", len(tmpl.Tags()), len(tmpl.Parts()))
	}
}

func TestTemplateMixedTags(t *testing.T) {
	tmpl := NewTemplate(
		StringUntil("unit", " "),
		Space,
		RealTag("amount", FrenchStyleNumber),
		Space,
		MappedLiterals("currency", []Literal[string]{
			{Text: "€", Value: "EUR"},
			{Text: "$", Value: "USD"},
		}, true),
	)

	record, err := tmpl.Parse("total 1 234,5 €")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if record["unit"] != "total" || record["currency"] != "EUR" {
		t.Fatalf("record = %v", record)
	}

	out, err := tmpl.Format(record)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if out != "total 1 234,5 €" {
		t.Fatalf("Format = %q", out)
	}
}

func TestTemplateParserFormatterFuncs(t *testing.T) {
	tmpl := yearMonthTemplate()
	parse := tmpl.Parser()
	format := tmpl.Formatter()

	record, err := parse("1999-12")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	out, err := format(record)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if out != "1999-12" {
		t.Fatalf("round trip = %q", out)
	}
}

func TestNewTemplateRejectsNilPart(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewTemplate(Hyphen, nil)
}

func TestTemplateZeroValueTag(t *testing.T) {
	tmpl := NewTemplate(Tag{Name: "x"}, Hyphen)

	_, err := tmpl.Parse("1-")
	if !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("Parse error = %v, want invalid value", err)
	}
	var tplErr *TemplateError
	if !errors.As(err, &tplErr) || tplErr.Tag != "x" {
		t.Fatalf("TemplateError = %+v", tplErr)
	}

	if _, err := tmpl.Format(Record{"x": 1}); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("Format error = %v, want invalid value", err)
	}
}
