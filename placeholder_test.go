package textformat

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMappedLiteralsCaseInsensitive(t *testing.T) {
	tag := MappedLiterals("meridiem", []Literal[int]{
		{Text: "AM", Value: 0},
		{Text: "PM", Value: 12},
	}, false)

	value, rest, err := tag.Read("Pmfoo")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if value != 12 || rest != "foo" {
		t.Fatalf("Read = %v, %q", value, rest)
	}

	out, err := tag.Write(12)
	if err != nil || out != "PM" {
		t.Fatalf("Write = %q, %v", out, err)
	}

	if _, err := tag.Write(5); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("Write(5) error = %v", err)
	}
}

func TestMappedLiteralsCaseSensitive(t *testing.T) {
	tag := MappedLiterals("meridiem", []Literal[int]{
		{Text: "AM", Value: 0},
		{Text: "PM", Value: 12},
	}, true)

	_, rest, err := tag.Read("pmfoo")
	if !errors.Is(err, ErrFormatMismatch) {
		t.Fatalf("Read error = %v", err)
	}
	if rest != "pmfoo" {
		t.Fatalf("failed read must not consume input, rest = %q", rest)
	}
}

func TestMappedLiteralsOrderMatters(t *testing.T) {
	tag := MappedLiterals("size", []Literal[string]{
		{Text: "X", Value: "x"},
		{Text: "XL", Value: "xl"},
	}, true)

	value, rest, err := tag.Read("XL")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if value != "x" || rest != "L" {
		t.Fatalf("first listed literal should win, got %v, %q", value, rest)
	}
}

func TestIntTag(t *testing.T) {
	tag := IntTag("n", PlainNumber)

	value, rest, err := tag.Read("42;")
	if err != nil || value != 42 || rest != ";" {
		t.Fatalf("Read = %v, %q, %v", value, rest, err)
	}
	if _, _, err := tag.Read("1.5"); !errors.Is(err, ErrFormatMismatch) {
		t.Fatalf("fractional error = %v", err)
	}
	if _, _, err := tag.Read("3000000000"); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("overflow error = %v", err)
	}
	if _, err := tag.Write(int64(1)); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("wrong type error = %v", err)
	}
}

func TestRealTag(t *testing.T) {
	tag := RealTag("amount", FrenchStyleNumber)

	value, rest, err := tag.Read("1 234,5x")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !value.(decimal.Decimal).Equal(decimal.RequireFromString("1234.5")) || rest != "x" {
		t.Fatalf("Read = %v, %q", value, rest)
	}
	if tag.Description() != "French-style number with up to 3 decimals" {
		t.Fatalf("Description = %q", tag.Description())
	}
}

func TestFixedLength(t *testing.T) {
	tag := FixedLengthToInt("day", 2, "0", PlainInteger)

	value, rest, err := tag.Read("07/")
	if err != nil || value != 7 || rest != "/" {
		t.Fatalf("Read = %v, %q, %v", value, rest, err)
	}

	out, err := tag.Write(7)
	if err != nil || out != "07" {
		t.Fatalf("Write = %q, %v", out, err)
	}

	if _, err := tag.Write(123); !errors.Is(err, ErrNotRepresentable) {
		t.Fatalf("Write(123) error = %v", err)
	}
	if _, _, err := tag.Read("7"); !errors.Is(err, ErrFormatMismatch) {
		t.Fatalf("short input error = %v", err)
	}
	if _, _, err := tag.Read("7/"); !errors.Is(err, ErrTrailingInput) {
		t.Fatalf("partial chunk error = %v", err)
	}
}

func TestFixedLengthToReal(t *testing.T) {
	tag := FixedLengthToReal("price", 6, " ", PlainNumber.WithNDecimals(2))

	value, _, err := tag.Read("  3.50")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !value.(decimal.Decimal).Equal(decimal.RequireFromString("3.5")) {
		t.Fatalf("Read = %v", value)
	}

	out, err := tag.Write(decimal.RequireFromString("3.5"))
	if err != nil || out != "  3.50" {
		t.Fatalf("Write = %q, %v", out, err)
	}
}

func TestFixedLengthString(t *testing.T) {
	tag := FixedLengthString("code", 3)

	value, rest, err := tag.Read("abcdef")
	if err != nil || value != "abc" || rest != "def" {
		t.Fatalf("Read = %v, %q, %v", value, rest, err)
	}
	if _, _, err := tag.Read("ab"); !errors.Is(err, ErrFormatMismatch) {
		t.Fatalf("short input error = %v", err)
	}
	if _, err := tag.Write("abcd"); !errors.Is(err, ErrNotRepresentable) {
		t.Fatalf("long value error = %v", err)
	}
}

func TestStringUntil(t *testing.T) {
	tag := StringUntil("name", ";")

	value, rest, err := tag.Read("foo;bar")
	if err != nil || value != "foo" || rest != ";bar" {
		t.Fatalf("Read = %v, %q, %v", value, rest, err)
	}

	value, rest, err = tag.Read("foo")
	if err != nil || value != "foo" || rest != "" {
		t.Fatalf("Read without terminator = %v, %q, %v", value, rest, err)
	}

	if _, err := tag.Write("a;b"); !errors.Is(err, ErrNotRepresentable) {
		t.Fatalf("Write error = %v", err)
	}
}

func TestModify(t *testing.T) {
	base := IntTag("n", PlainInteger)
	doubled := Modify(base, Modifier{
		DescriptionMapper: func(description string) string { return "doubled " + description },
		PostParser: func(value any) (any, error) {
			return value.(int) * 2, nil
		},
		PreFormatter: func(value any) (any, error) {
			n := value.(int)
			if n%2 != 0 {
				return nil, ErrNotRepresentable
			}
			return n / 2, nil
		},
	})

	value, _, err := doubled.Read("21")
	if err != nil || value != 42 {
		t.Fatalf("Read = %v, %v", value, err)
	}

	out, err := doubled.Write(42)
	if err != nil || out != "21" {
		t.Fatalf("Write = %q, %v", out, err)
	}

	if _, err := doubled.Write(3); !errors.Is(err, ErrNotRepresentable) {
		t.Fatalf("Write(3) error = %v", err)
	}

	if doubled.Description() != "doubled integer" {
		t.Fatalf("Description = %q", doubled.Description())
	}
}

func TestWindowedYear(t *testing.T) {
	tag := WindowedYear(FixedLengthToInt("year", 2, "0", PlainInteger), 2000)

	value, _, err := tag.Read("24")
	if err != nil || value != 2024 {
		t.Fatalf("Read = %v, %v", value, err)
	}

	out, err := tag.Write(2005)
	if err != nil || out != "05" {
		t.Fatalf("Write = %q, %v", out, err)
	}

	if _, err := tag.Write(1999); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("Write(1999) error = %v", err)
	}
}

func TestTagRenameAndDescription(t *testing.T) {
	tag := NewTag("raw", "", func(input string) (any, string, error) {
		return input, "", nil
	}, func(value any) (string, error) {
		return value.(string), nil
	})

	if tag.Description() != "#raw" {
		t.Fatalf("Description = %q", tag.Description())
	}

	renamed := tag.Rename("other")
	if renamed.Name != "other" || tag.Name != "raw" {
		t.Fatalf("Rename = %q / %q", renamed.Name, tag.Name)
	}
}

func TestNewTagRequiresFunctions(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewTag("broken", "", nil, nil)
}

func TestSeparatorDescription(t *testing.T) {
	if Colon.Description() != "':'" || Colon.String() != ":" {
		t.Fatalf("Colon = %q / %q", Colon.Description(), Colon.String())
	}
}
