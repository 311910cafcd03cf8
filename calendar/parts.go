package calendar

import (
	"fmt"
	"sort"
	"time"
)

// Parts is a record of calendar fields keyed by field name.
type Parts map[string]int

func (p Parts) get(field string, fallback int) int {
	if value, ok := p[field]; ok {
		return value
	}
	return fallback
}

func (p Parts) has(fields ...string) bool {
	for _, field := range fields {
		if _, ok := p[field]; ok {
			return true
		}
	}
	return false
}

// FromParts builds a DateTime from the fields present in p. Missing fields
// default to 1970-01-01T00:00:00.000+00:00. The date is resolved from the
// ordinal day, then from year/month/day, then from the ISO week date. Every
// field present must agree with the result.
func FromParts(p Parts) (DateTime, error) {
	for field := range p {
		if !IsField(field) {
			return DateTime{}, invalid("unknown field %q", field)
		}
	}

	offset, err := p.offset()
	if err != nil {
		return DateTime{}, err
	}

	year, month, day, err := p.date()
	if err != nil {
		return DateTime{}, err
	}

	hour, err := p.hour()
	if err != nil {
		return DateTime{}, err
	}

	minute := p.get(FieldMinute, 0)
	second := p.get(FieldSecond, 0)
	millisecond := p.get(FieldMillisecond, 0)
	if err := inRange(FieldMinute, minute, 0, 59); err != nil {
		return DateTime{}, err
	}
	if err := inRange(FieldSecond, second, 0, 59); err != nil {
		return DateTime{}, err
	}
	if err := inRange(FieldMillisecond, millisecond, 0, 999); err != nil {
		return DateTime{}, err
	}

	result := Date(year, month, day, hour, minute, second, millisecond, offset)

	fields := make([]string, 0, len(p))
	for field := range p {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		if actual, _ := result.Get(field); actual != p[field] {
			return DateTime{}, fmt.Errorf("%w: %s is %d but the resolved date-time %s has %d",
				ErrInconsistentParts, field, p[field], result, actual)
		}
	}

	return result, nil
}

func (p Parts) offset() (int, error) {
	zoneHour := p.get(FieldZoneHour, 0)
	zoneMinute := p.get(FieldZoneMinute, 0)
	zoneSecond := p.get(FieldZoneSecond, 0)

	if err := inRange(FieldZoneHour, zoneHour, -12, 14); err != nil {
		return 0, err
	}
	if err := inRange(FieldZoneMinute, zoneMinute, 0, 59); err != nil {
		return 0, err
	}
	if err := inRange(FieldZoneSecond, zoneSecond, 0, 59); err != nil {
		return 0, err
	}

	offset := abs(zoneHour)*3600 + zoneMinute*60 + zoneSecond
	if zoneHour < 0 {
		offset = -offset
	}
	return offset, nil
}

func (p Parts) date() (int, int, int, error) {
	switch {
	case p.has(FieldOrdinalDay):
		year := p.get(FieldYear, 1970)
		ordinal := p[FieldOrdinalDay]
		if err := inRange(FieldOrdinalDay, ordinal, 1, daysInYear(year)); err != nil {
			return 0, 0, 0, err
		}
		t := time.Date(year, time.January, ordinal, 0, 0, 0, 0, time.UTC)
		return t.Year(), int(t.Month()), t.Day(), nil

	case p.has(FieldYear, FieldMonth, FieldMonthDay) || !p.has(FieldIsoYear, FieldIsoWeek):
		year := p.get(FieldYear, 1970)
		month := p.get(FieldMonth, 1)
		day := p.get(FieldMonthDay, 1)
		if err := inRange(FieldMonth, month, 1, 12); err != nil {
			return 0, 0, 0, err
		}
		if err := inRange(FieldMonthDay, day, 1, daysInMonth(year, month)); err != nil {
			return 0, 0, 0, err
		}
		return year, month, day, nil

	default:
		isoYear := p.get(FieldIsoYear, 1970)
		week := p.get(FieldIsoWeek, 1)
		weekday := p.get(FieldWeekday, 1)
		if err := inRange(FieldIsoWeek, week, 1, isoWeeksInYear(isoYear)); err != nil {
			return 0, 0, 0, err
		}
		if err := inRange(FieldWeekday, weekday, 1, 7); err != nil {
			return 0, 0, 0, err
		}
		t := isoWeekStart(isoYear).AddDate(0, 0, (week-1)*7+weekday-1)
		return t.Year(), int(t.Month()), t.Day(), nil
	}
}

func (p Parts) hour() (int, error) {
	if hour, ok := p[FieldHour23]; ok {
		return hour, inRange(FieldHour23, hour, 0, 23)
	}

	hour11 := p.get(FieldHour11, 0)
	meridiem := p.get(FieldMeridiem, 0)
	if err := inRange(FieldHour11, hour11, 0, 11); err != nil {
		return 0, err
	}
	if meridiem != 0 && meridiem != 12 {
		return 0, invalid("%s must be 0 or 12, got %d", FieldMeridiem, meridiem)
	}
	return hour11 + meridiem, nil
}

func inRange(field string, value, lo, hi int) error {
	if value < lo || value > hi {
		return invalid("%s must be between %d and %d, got %d", field, lo, hi, value)
	}
	return nil
}

func daysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func daysInYear(year int) int {
	return time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC).YearDay()
}

// isoWeekStart returns the Monday of ISO week 1, which contains January 4th.
func isoWeekStart(isoYear int) time.Time {
	jan4 := time.Date(isoYear, time.January, 4, 0, 0, 0, 0, time.UTC)
	weekday := int(jan4.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return jan4.AddDate(0, 0, 1-weekday)
}

func isoWeeksInYear(isoYear int) int {
	_, week := time.Date(isoYear, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return week
}
