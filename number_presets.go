package textformat

import (
	"sort"
	"strings"
)

// PlainNumber uses '.' as fractional separator, no digit grouping, up to 3
// decimals, half-expand rounding and a sign for negative numbers only.
var PlainNumber = NumberFormat{
	ThousandSeparator:        "",
	FractionalSeparator:      ".",
	ShowNullIntegerPart:      true,
	MinimumIntegerPartLength: 0,
	FillChar:                 " ",
	MinimumFractionalDigits:  0,
	MaximumFractionalDigits:  3,
	ENotationChars:           []string{"e", "E"},
	ScientificNotation:       NotationNone,
	Rounding:                 RoundHalfExpand,
	SignDisplay:              SignNegative,
}

// PlainInteger is PlainNumber without fractional digits.
var PlainInteger = PlainNumber.WithNDecimals(0)

// UKStyleNumber groups digits with ',' and uses '.' as fractional separator.
var UKStyleNumber = PlainNumber.
	WithThousandSeparator(",").
	WithName("UK-style")

var UKStyleInteger = UKStyleNumber.WithNDecimals(0)

// USStyleNumber follows the same conventions as UKStyleNumber.
var USStyleNumber = UKStyleNumber.WithName("US-style")

var USStyleInteger = USStyleNumber.WithNDecimals(0)

// FrenchStyleNumber groups digits with a space and uses ',' as fractional separator.
var FrenchStyleNumber = PlainNumber.
	WithThousandSeparator(" ").
	WithFractionalSeparator(",").
	WithName("French-style")

var FrenchStyleInteger = FrenchStyleNumber.WithNDecimals(0)

// GermanStyleNumber groups digits with '.' and uses ',' as fractional separator.
var GermanStyleNumber = PlainNumber.
	WithThousandSeparator(".").
	WithFractionalSeparator(",").
	WithName("German-style")

var GermanStyleInteger = GermanStyleNumber.WithNDecimals(0)

// DutchStyleNumber follows the same conventions as GermanStyleNumber.
var DutchStyleNumber = GermanStyleNumber.WithName("Dutch-style")

var DutchStyleInteger = DutchStyleNumber.WithNDecimals(0)

// ItalianStyleNumber follows the same conventions as GermanStyleNumber.
var ItalianStyleNumber = GermanStyleNumber.WithName("Italian-style")

var ItalianStyleInteger = ItalianStyleNumber.WithNDecimals(0)

// SwissStyleNumber groups digits with an apostrophe and uses '.' as fractional separator.
var SwissStyleNumber = PlainNumber.
	WithThousandSeparator("'").
	WithName("Swiss-style")

var SwissStyleInteger = SwissStyleNumber.WithNDecimals(0)

var numberPresets = map[string]NumberFormat{
	"plain":           PlainNumber,
	"plain-integer":   PlainInteger,
	"uk":              UKStyleNumber,
	"uk-integer":      UKStyleInteger,
	"us":              USStyleNumber,
	"us-integer":      USStyleInteger,
	"french":          FrenchStyleNumber,
	"french-integer":  FrenchStyleInteger,
	"german":          GermanStyleNumber,
	"german-integer":  GermanStyleInteger,
	"dutch":           DutchStyleNumber,
	"dutch-integer":   DutchStyleInteger,
	"italian":         ItalianStyleNumber,
	"italian-integer": ItalianStyleInteger,
	"swiss":           SwissStyleNumber,
	"swiss-integer":   SwissStyleInteger,
}

// Preset returns a built-in style by key, e.g. "french" or "uk-integer".
func Preset(name string) (NumberFormat, bool) {
	format, ok := numberPresets[strings.ToLower(strings.TrimSpace(name))]
	return format.clone(), ok
}

// PresetNames lists the keys accepted by Preset.
func PresetNames() []string {
	names := make([]string, 0, len(numberPresets))
	for name := range numberPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
