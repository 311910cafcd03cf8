package textformat

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-textformat/calendar"
)

// TagName is a date-time layout token.
type TagName string

const (
	TagYear             TagName = "y"
	TagYear2            TagName = "yy"
	TagYear4            TagName = "yyyy"
	TagIsoYear          TagName = "R"
	TagIsoYear2         TagName = "RR"
	TagIsoYear4         TagName = "RRRR"
	TagMonth            TagName = "M"
	TagMonth2           TagName = "MM"
	TagMonthShortName   TagName = "MMM"
	TagMonthLongName    TagName = "MMMM"
	TagIsoWeek          TagName = "I"
	TagIsoWeek2         TagName = "II"
	TagMonthDay         TagName = "d"
	TagMonthDay2        TagName = "dd"
	TagOrdinalDay       TagName = "D"
	TagOrdinalDay3      TagName = "DDD"
	TagWeekday          TagName = "i"
	TagWeekdayShortName TagName = "iii"
	TagWeekdayLongName  TagName = "iiii"
	TagMeridiem         TagName = "a"
	TagHour23           TagName = "H"
	TagHour23Padded     TagName = "HH"
	TagHour11           TagName = "K"
	TagHour11Padded     TagName = "KK"
	TagMinute           TagName = "m"
	TagMinute2          TagName = "mm"
	TagSecond           TagName = "s"
	TagSecond2          TagName = "ss"
	TagMillisecond      TagName = "S"
	TagMillisecond3     TagName = "SSS"
	TagZoneHour         TagName = "zH"
	TagZoneHourPadded   TagName = "zHzH"
	TagZoneMinute       TagName = "zm"
	TagZoneMinutePadded TagName = "zmzm"
	TagZoneSecond       TagName = "zs"
	TagZoneSecondPadded TagName = "zszs"
)

// TagNames lists every supported token, longest first within each family.
var TagNames = []TagName{
	TagYear4, TagYear2, TagYear,
	TagIsoYear4, TagIsoYear2, TagIsoYear,
	TagMonthLongName, TagMonthShortName, TagMonth2, TagMonth,
	TagIsoWeek2, TagIsoWeek,
	TagMonthDay2, TagMonthDay,
	TagOrdinalDay3, TagOrdinalDay,
	TagWeekdayLongName, TagWeekdayShortName, TagWeekday,
	TagMeridiem,
	TagHour23Padded, TagHour23,
	TagHour11Padded, TagHour11,
	TagMinute2, TagMinute,
	TagSecond2, TagSecond,
	TagMillisecond3, TagMillisecond,
	TagZoneHourPadded, TagZoneHour,
	TagZoneMinutePadded, TagZoneMinute,
	TagZoneSecondPadded, TagZoneSecond,
}

func (n TagName) isDateTimePart() {}

// TwoDigitYearBase is the first year of the window used by yy and RR.
const TwoDigitYearBase = 2000

// Names holds the locale-specific names used by the textual tokens. Weekdays
// start on Monday.
type Names struct {
	ShortWeekdays [7]string  `json:"short_weekdays" yaml:"short_weekdays"`
	LongWeekdays  [7]string  `json:"long_weekdays" yaml:"long_weekdays"`
	ShortMonths   [12]string `json:"short_months" yaml:"short_months"`
	LongMonths    [12]string `json:"long_months" yaml:"long_months"`
	DayPeriods    [2]string  `json:"day_periods" yaml:"day_periods"`
}

// Validate reports empty names.
func (n Names) Validate() error {
	check := func(kind string, values []string) error {
		for i, value := range values {
			if strings.TrimSpace(value) == "" {
				return fmt.Errorf("%w: %s name %d is empty", ErrInvalidFormat, kind, i+1)
			}
		}
		return nil
	}
	if err := check("short weekday", n.ShortWeekdays[:]); err != nil {
		return err
	}
	if err := check("long weekday", n.LongWeekdays[:]); err != nil {
		return err
	}
	if err := check("short month", n.ShortMonths[:]); err != nil {
		return err
	}
	if err := check("long month", n.LongMonths[:]); err != nil {
		return err
	}
	return check("day period", n.DayPeriods[:])
}

// EnglishNames are the en-US names.
var EnglishNames = Names{
	ShortWeekdays: [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
	LongWeekdays:  [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"},
	ShortMonths:   [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	LongMonths: [12]string{"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"},
	DayPeriods: [2]string{"AM", "PM"},
}

// Context maps every TagName to the tag implementing it for one locale.
type Context struct {
	Name  string
	names Names
	tags  map[TagName]Tag
}

// EnglishContext is the en-US context.
var EnglishContext = ContextFromNames("en-US", EnglishNames)

// ContextFromNames builds a context from explicit name tables.
func ContextFromNames(name string, names Names) *Context {
	unsigned := PlainInteger.WithSignDisplay(SignNever)
	year := PlainInteger.WithSignDisplay(SignNegative)
	zoneHour := PlainInteger.WithSignDisplay(SignAlways)

	fixed := func(field string, length int) Tag {
		return nonNegative(FixedLengthToInt(field, length, "0", unsigned))
	}
	numeric := func(field string) Tag {
		return nonNegative(IntTag(field, unsigned))
	}

	tags := map[TagName]Tag{
		TagYear:             IntTag(calendar.FieldYear, year),
		TagYear2:            WindowedYear(fixed(calendar.FieldYear, 2), TwoDigitYearBase),
		TagYear4:            fixed(calendar.FieldYear, 4),
		TagIsoYear:          IntTag(calendar.FieldIsoYear, year),
		TagIsoYear2:         WindowedYear(fixed(calendar.FieldIsoYear, 2), TwoDigitYearBase),
		TagIsoYear4:         fixed(calendar.FieldIsoYear, 4),
		TagMonth:            numeric(calendar.FieldMonth),
		TagMonth2:           fixed(calendar.FieldMonth, 2),
		TagMonthShortName:   MappedLiterals(calendar.FieldMonth, indexedLiterals(names.ShortMonths[:]), true),
		TagMonthLongName:    MappedLiterals(calendar.FieldMonth, indexedLiterals(names.LongMonths[:]), true),
		TagIsoWeek:          numeric(calendar.FieldIsoWeek),
		TagIsoWeek2:         fixed(calendar.FieldIsoWeek, 2),
		TagMonthDay:         numeric(calendar.FieldMonthDay),
		TagMonthDay2:        fixed(calendar.FieldMonthDay, 2),
		TagOrdinalDay:       numeric(calendar.FieldOrdinalDay),
		TagOrdinalDay3:      fixed(calendar.FieldOrdinalDay, 3),
		TagWeekday:          fixed(calendar.FieldWeekday, 1),
		TagWeekdayShortName: MappedLiterals(calendar.FieldWeekday, indexedLiterals(names.ShortWeekdays[:]), true),
		TagWeekdayLongName:  MappedLiterals(calendar.FieldWeekday, indexedLiterals(names.LongWeekdays[:]), true),
		TagMeridiem: MappedLiterals(calendar.FieldMeridiem, []Literal[int]{
			{Text: names.DayPeriods[0], Value: 0},
			{Text: names.DayPeriods[1], Value: 12},
		}, true),
		TagHour23:           numeric(calendar.FieldHour23),
		TagHour23Padded:     fixed(calendar.FieldHour23, 2),
		TagHour11:           numeric(calendar.FieldHour11),
		TagHour11Padded:     fixed(calendar.FieldHour11, 2),
		TagMinute:           numeric(calendar.FieldMinute),
		TagMinute2:          fixed(calendar.FieldMinute, 2),
		TagSecond:           numeric(calendar.FieldSecond),
		TagSecond2:          fixed(calendar.FieldSecond, 2),
		TagMillisecond:      numeric(calendar.FieldMillisecond),
		TagMillisecond3:     fixed(calendar.FieldMillisecond, 3),
		TagZoneHour:         IntTag(calendar.FieldZoneHour, zoneHour),
		TagZoneHourPadded:   FixedLengthToInt(calendar.FieldZoneHour, 3, "0", zoneHour.WithMinimumIntegerPartLength(2, "0")),
		TagZoneMinute:       numeric(calendar.FieldZoneMinute),
		TagZoneMinutePadded: fixed(calendar.FieldZoneMinute, 2),
		TagZoneSecond:       numeric(calendar.FieldZoneSecond),
		TagZoneSecondPadded: fixed(calendar.FieldZoneSecond, 2),
	}

	return &Context{Name: name, names: names, tags: tags}
}

// nonNegative rejects negative values before they reach a writer that drops
// the sign.
func nonNegative(tag Tag) Tag {
	return Modify(tag, Modifier{
		PreFormatter: func(value any) (any, error) {
			if n, ok := value.(int); ok && n < 0 {
				return nil, fmt.Errorf("%w: %d is negative", ErrOutOfRange, n)
			}
			return value, nil
		},
	})
}

// indexedLiterals numbers names from 1. Longer names are tried first so that
// a name that prefixes another one cannot shadow it.
func indexedLiterals(names []string) []Literal[int] {
	literals := make([]Literal[int], len(names))
	for i, name := range names {
		literals[i] = Literal[int]{Text: name, Value: i + 1}
	}
	sort.SliceStable(literals, func(i, j int) bool {
		return len(literals[i].Text) > len(literals[j].Text)
	})
	return literals
}

// Names returns the name tables of the context.
func (c *Context) Names() Names {
	if c == nil {
		return Names{}
	}
	return c.names
}

// Tag returns the tag bound to a token.
func (c *Context) Tag(name TagName) (Tag, bool) {
	if c == nil {
		return Tag{}, false
	}
	tag, ok := c.tags[name]
	return tag, ok
}

// MustTag is Tag for statically known tokens; it panics when name is not bound.
func (c *Context) MustTag(name TagName) Tag {
	tag, ok := c.Tag(name)
	if !ok {
		contextName := "<nil>"
		if c != nil {
			contextName = c.Name
		}
		panic(fmt.Sprintf("textformat: context %q has no tag for %q", contextName, name))
	}
	return tag
}
