package value

import (
	"fmt"
	"time"
)

// Date is a plain Gregorian calendar date with no time-of-day or
// timezone component. It is a Key.
type Date struct {
	Year  int
	Month int
	Day   int
}

func (Date) Kind() Kind { return KindDate }
func (Date) isValue()   {}
func (Date) isKey()     {}

// NewDate validates and constructs a Date.
func NewDate(year, month, day int) (Date, error) {
	d := Date{Year: year, Month: month, Day: day}
	if !d.valid() {
		return Date{}, fmt.Errorf("invalid date %04d-%02d-%02d", year, month, day)
	}
	return d, nil
}

func (d Date) valid() bool {
	if d.Month < 1 || d.Month > 12 {
		return false
	}
	if d.Day < 1 || d.Day > daysInMonth(d.Year, d.Month) {
		return false
	}
	return true
}

func daysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DateFromTime truncates t to its calendar date in t's own location.
func DateFromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: int(m), Day: d}
}

// ToTime returns d as a time.Time at midnight UTC.
func (d Date) ToTime() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Compare returns -1, 0 or 1 as d is chronologically before, equal to,
// or after other.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return cmpInt(d.Year, other.Year)
	case d.Month != other.Month:
		return cmpInt(d.Month, other.Month)
	default:
		return cmpInt(d.Day, other.Day)
	}
}

// DateTime is a calendar date plus a time of day, with no timezone —
// the format carries no UTC offset or zone name (spec.md §3.1). It is
// a Key.
type DateTime struct {
	Date
	Hour   int
	Minute int
	Second int
}

func (DateTime) Kind() Kind { return KindDateTime }
func (DateTime) isValue()   {}
func (DateTime) isKey()     {}

// NewDateTime validates and constructs a DateTime.
func NewDateTime(year, month, day, hour, minute, second int) (DateTime, error) {
	d, err := NewDate(year, month, day)
	if err != nil {
		return DateTime{}, err
	}
	dt := DateTime{Date: d, Hour: hour, Minute: minute, Second: second}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 60 {
		return DateTime{}, fmt.Errorf("invalid time %02d:%02d:%02d", hour, minute, second)
	}
	return dt, nil
}

// DateTimeFromTime truncates away monotonic reading and timezone,
// keeping only the wall-clock fields, in t's own location.
func DateTimeFromTime(t time.Time) DateTime {
	d := DateFromTime(t)
	return DateTime{Date: d, Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
}

// ToTime returns dt as a time.Time in UTC (the format has no timezone,
// so UTC is used as the canonical zone for interop with time.Time).
func (dt DateTime) ToTime() time.Time {
	return time.Date(dt.Year, time.Month(dt.Month), dt.Day, dt.Hour, dt.Minute, dt.Second, 0, time.UTC)
}

func (dt DateTime) String() string {
	return fmt.Sprintf("%s %02d:%02d:%02d", dt.Date.String(), dt.Hour, dt.Minute, dt.Second)
}

// Compare returns -1, 0 or 1 as dt is chronologically before, equal
// to, or after other.
func (dt DateTime) Compare(other DateTime) int {
	if c := dt.Date.Compare(other.Date); c != 0 {
		return c
	}
	switch {
	case dt.Hour != other.Hour:
		return cmpInt(dt.Hour, other.Hour)
	case dt.Minute != other.Minute:
		return cmpInt(dt.Minute, other.Minute)
	default:
		return cmpInt(dt.Second, other.Second)
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
