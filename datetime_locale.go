package textformat

import (
	"sort"
	"strings"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

// Reference dates: 2024-01-01 is a Monday, so the first seven days of 2024
// cover one full week. Months use the 15th to stay clear of month edges.
var (
	weekdayReference = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	monthReference   = time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
)

// ContextFromLocale derives the name tables of a locale from CLDR-backed
// locale data. It returns false when the locale identifier is invalid, the
// locale is not supported, or any name cannot be resolved.
func ContextFromLocale(locale string) (ctx *Context, ok bool) {
	names, ok := NamesFromLocale(locale)
	if !ok {
		return nil, false
	}
	return ContextFromNames(normalizeLocale(locale), names), true
}

// NamesFromLocale is the name-table half of ContextFromLocale.
func NamesFromLocale(locale string) (names Names, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			names, ok = Names{}, false
		}
	}()

	target, found := resolveMondayLocale(locale)
	if !found {
		return Names{}, false
	}

	resolve := func(t time.Time, layout string) (string, bool) {
		value := strings.TrimSpace(monday.Format(t, layout, target))
		return value, value != ""
	}

	for i := 0; i < 7; i++ {
		day := weekdayReference.AddDate(0, 0, i)
		if names.LongWeekdays[i], ok = resolve(day, "Monday"); !ok {
			return Names{}, false
		}
		if names.ShortWeekdays[i], ok = resolve(day, "Mon"); !ok {
			return Names{}, false
		}
	}

	for i := 0; i < 12; i++ {
		month := monthReference.AddDate(0, i, 0)
		if names.LongMonths[i], ok = resolve(month, "January"); !ok {
			return Names{}, false
		}
		if names.ShortMonths[i], ok = resolve(month, "Jan"); !ok {
			return Names{}, false
		}
	}

	for i, hour := range []int{9, 21} {
		period := weekdayReference.Add(time.Duration(hour) * time.Hour)
		if names.DayPeriods[i], ok = resolve(period, "PM"); !ok {
			return Names{}, false
		}
	}

	return names, true
}

// resolveMondayLocale maps a BCP 47 identifier onto the locale keys of the
// name database ("fr_FR"). A bare language resolves through its most likely
// region.
func resolveMondayLocale(locale string) (monday.Locale, bool) {
	tag, err := language.Parse(normalizeLocale(locale))
	if err != nil {
		return "", false
	}

	supported := make(map[string]monday.Locale)
	for _, candidate := range monday.ListLocales() {
		supported[strings.ToLower(string(candidate))] = candidate
	}

	base, _ := tag.Base()
	region, _ := tag.Region()
	key := strings.ToLower(base.String() + "_" + region.String())
	if match, ok := supported[key]; ok {
		return match, true
	}

	if tag.String() != base.String() {
		return "", false
	}

	prefix := strings.ToLower(base.String()) + "_"
	var matches []string
	for lowered := range supported {
		if strings.HasPrefix(lowered, prefix) {
			matches = append(matches, lowered)
		}
	}
	if len(matches) == 0 {
		return "", false
	}
	sort.Strings(matches)
	return supported[matches[0]], true
}
