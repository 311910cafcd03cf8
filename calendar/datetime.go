// Package calendar provides the DateTime value consumed by date-time
// templates: pure accessors for every calendar field and a constructor from
// a record of parts.
package calendar

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidParts indicates a field outside of its range or an unknown field.
	ErrInvalidParts = errors.New("calendar: invalid date-time parts")
	// ErrInconsistentParts indicates fields that describe different instants.
	ErrInconsistentParts = errors.New("calendar: inconsistent date-time parts")
)

// Field names used as keys in Parts.
const (
	FieldYear        = "year"
	FieldMonth       = "month"
	FieldMonthDay    = "monthDay"
	FieldIsoYear     = "isoYear"
	FieldIsoWeek     = "isoWeek"
	FieldWeekday     = "weekday"
	FieldOrdinalDay  = "ordinalDay"
	FieldHour23      = "hour23"
	FieldHour11      = "hour11"
	FieldMeridiem    = "meridiem"
	FieldMinute      = "minute"
	FieldSecond      = "second"
	FieldMillisecond = "millisecond"
	FieldZoneHour    = "zoneHour"
	FieldZoneMinute  = "zoneMinute"
	FieldZoneSecond  = "zoneSecond"
)

// DateTime is an instant in a fixed UTC offset.
type DateTime struct {
	t time.Time
}

// New wraps t, keeping its offset.
func New(t time.Time) DateTime {
	_, offset := t.Zone()
	return DateTime{t: t.In(time.FixedZone("", offset))}
}

// Date builds a DateTime from calendar fields and a UTC offset in seconds.
func Date(year, month, day, hour, minute, second, millisecond, offset int) DateTime {
	return DateTime{t: time.Date(year, time.Month(month), day, hour, minute, second,
		millisecond*int(time.Millisecond), time.FixedZone("", offset))}
}

// Time returns the underlying time.
func (d DateTime) Time() time.Time { return d.t }

// Equal reports whether both values denote the same instant and offset.
func (d DateTime) Equal(other DateTime) bool {
	return d.t.Equal(other.t) && d.Offset() == other.Offset()
}

func (d DateTime) String() string {
	return d.t.Format("2006-01-02T15:04:05.000Z07:00")
}

// Offset returns the UTC offset in seconds.
func (d DateTime) Offset() int {
	_, offset := d.t.Zone()
	return offset
}

func (d DateTime) Year() int     { return d.t.Year() }
func (d DateTime) Month() int    { return int(d.t.Month()) }
func (d DateTime) MonthDay() int { return d.t.Day() }

func (d DateTime) IsoYear() int {
	year, _ := d.t.ISOWeek()
	return year
}

func (d DateTime) IsoWeek() int {
	_, week := d.t.ISOWeek()
	return week
}

// Weekday returns 1 for Monday through 7 for Sunday.
func (d DateTime) Weekday() int {
	if wd := int(d.t.Weekday()); wd != 0 {
		return wd
	}
	return 7
}

func (d DateTime) OrdinalDay() int { return d.t.YearDay() }
func (d DateTime) Hour23() int     { return d.t.Hour() }
func (d DateTime) Hour11() int     { return d.t.Hour() % 12 }

// Meridiem returns 0 before noon and 12 after.
func (d DateTime) Meridiem() int {
	if d.t.Hour() < 12 {
		return 0
	}
	return 12
}

func (d DateTime) Minute() int      { return d.t.Minute() }
func (d DateTime) Second() int      { return d.t.Second() }
func (d DateTime) Millisecond() int { return d.t.Nanosecond() / int(time.Millisecond) }

// ZoneHour returns the hour part of the offset, carrying its sign.
func (d DateTime) ZoneHour() int { return d.Offset() / 3600 }

func (d DateTime) ZoneMinute() int { return abs(d.Offset()) % 3600 / 60 }
func (d DateTime) ZoneSecond() int { return abs(d.Offset()) % 60 }

var accessors = map[string]func(DateTime) int{
	FieldYear:        DateTime.Year,
	FieldMonth:       DateTime.Month,
	FieldMonthDay:    DateTime.MonthDay,
	FieldIsoYear:     DateTime.IsoYear,
	FieldIsoWeek:     DateTime.IsoWeek,
	FieldWeekday:     DateTime.Weekday,
	FieldOrdinalDay:  DateTime.OrdinalDay,
	FieldHour23:      DateTime.Hour23,
	FieldHour11:      DateTime.Hour11,
	FieldMeridiem:    DateTime.Meridiem,
	FieldMinute:      DateTime.Minute,
	FieldSecond:      DateTime.Second,
	FieldMillisecond: DateTime.Millisecond,
	FieldZoneHour:    DateTime.ZoneHour,
	FieldZoneMinute:  DateTime.ZoneMinute,
	FieldZoneSecond:  DateTime.ZoneSecond,
}

// Get returns the value of a field by name.
func (d DateTime) Get(field string) (int, bool) {
	accessor, ok := accessors[field]
	if !ok {
		return 0, false
	}
	return accessor(d), true
}

// IsField reports whether name is a known field.
func IsField(name string) bool {
	_, ok := accessors[name]
	return ok
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParts, fmt.Sprintf(format, args...))
}
