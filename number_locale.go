package textformat

import (
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// numberProbe has distinct digits on both sides of each separator so the
// separators can be read back from the CLDR rendering.
const numberProbe = 1234567.891

// NumberFormatFromLocale derives the digit grouping and fractional separators
// of a locale from CLDR data. It returns false when the locale cannot be parsed
// or uses non-latin digits.
func NumberFormatFromLocale(locale string) (NumberFormat, bool) {
	tag, err := language.Parse(normalizeLocale(locale))
	if err != nil {
		return NumberFormat{}, false
	}

	printer := message.NewPrinter(tag)
	rendered := printer.Sprintf("%v", number.Decimal(numberProbe,
		number.MinFractionDigits(3), number.MaxFractionDigits(3)))

	thousand, fractional, ok := readSeparators(rendered)
	if !ok {
		return NumberFormat{}, false
	}

	return PlainNumber.
		WithThousandSeparator(thousand).
		WithFractionalSeparator(fractional).
		WithName(tag.String() + "-style"), true
}

// readSeparators expects the digits 1234567891 interleaved with separators.
func readSeparators(rendered string) (string, string, bool) {
	var (
		chunks  []string
		current strings.Builder
		digits  strings.Builder
	)
	for _, r := range rendered {
		if r >= '0' && r <= '9' {
			if current.Len() > 0 {
				chunks = append(chunks, current.String())
				current.Reset()
			}
			digits.WriteRune(r)
			continue
		}
		if unicode.IsDigit(r) {
			return "", "", false
		}
		if digits.Len() == 0 {
			continue
		}
		current.WriteRune(r)
	}

	if digits.String() != "1234567891" || len(chunks) == 0 {
		return "", "", false
	}

	fractional := chunks[len(chunks)-1]
	thousand := ""
	if len(chunks) > 1 {
		thousand = chunks[0]
	}
	if thousand == fractional {
		return "", "", false
	}
	return thousand, fractional, true
}
