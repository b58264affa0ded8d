package domain

import (
	"fmt"
	"strconv"
	"time"
)

// Supported calendar window. The century bands of the code cover 1800-2299
// in practice; anything outside is rejected at construction.
const (
	MinBirthYear = 1800
	MaxBirthYear = 2299
)

const birthDateLayout = "2006-01-02"

// BirthDate is an immutable calendar date with no time-of-day or location.
// The zero value is not a valid date; use IsZero to detect it.
type BirthDate struct {
	year  int
	month int
	day   int
}

// NewBirthDate creates a validated BirthDate.
// Returns an error wrapping ErrInvalidDate if any component is out of range.
func NewBirthDate(year, month, day int) (BirthDate, error) {
	if year < MinBirthYear || year > MaxBirthYear {
		return BirthDate{}, fmt.Errorf("%w: year %d outside %d-%d",
			ErrInvalidDate, year, MinBirthYear, MaxBirthYear)
	}
	if month < 1 || month > 12 {
		return BirthDate{}, fmt.Errorf("%w: month %d", ErrInvalidDate, month)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return BirthDate{}, fmt.Errorf("%w: day %d for %04d-%02d", ErrInvalidDate, day, year, month)
	}
	return BirthDate{year: year, month: month, day: day}, nil
}

// MustBirthDate creates a BirthDate, panicking if invalid.
// Use only in tests or when the value is known to be valid.
func MustBirthDate(year, month, day int) BirthDate {
	d, err := NewBirthDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// ParseBirthDate parses a strict YYYY-MM-DD string.
func ParseBirthDate(s string) (BirthDate, error) {
	if len(s) != len(birthDateLayout) || s[4] != '-' || s[7] != '-' {
		return BirthDate{}, fmt.Errorf("%w: %q is not YYYY-MM-DD", ErrInvalidDate, s)
	}
	year, err := parseDigits(s[0:4])
	if err != nil {
		return BirthDate{}, fmt.Errorf("%w: year in %q", ErrInvalidDate, s)
	}
	month, err := parseDigits(s[5:7])
	if err != nil {
		return BirthDate{}, fmt.Errorf("%w: month in %q", ErrInvalidDate, s)
	}
	day, err := parseDigits(s[8:10])
	if err != nil {
		return BirthDate{}, fmt.Errorf("%w: day in %q", ErrInvalidDate, s)
	}
	return NewBirthDate(year, month, day)
}

// parseDigits accepts only ASCII decimal digits; strconv alone would allow signs.
func parseDigits(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.Atoi(s)
}

// Year returns the four-digit year.
func (d BirthDate) Year() int { return d.year }

// Month returns the month, 1-12.
func (d BirthDate) Month() int { return d.month }

// Day returns the day of month.
func (d BirthDate) Day() int { return d.day }

// IsZero returns true if this is the zero value (uninitialized).
func (d BirthDate) IsZero() bool {
	return d.year == 0
}

// Time returns the date at midnight UTC.
func (d BirthDate) Time() time.Time {
	return time.Date(d.year, time.Month(d.month), d.day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days later (or earlier for negative n).
// The result may fall outside the supported window, so it is validated again.
func (d BirthDate) AddDays(n int) (BirthDate, error) {
	t := d.Time().AddDate(0, 0, n)
	return NewBirthDate(t.Year(), int(t.Month()), t.Day())
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after o.
func (d BirthDate) Compare(o BirthDate) int {
	switch {
	case d.year != o.year:
		return sign(d.year - o.year)
	case d.month != o.month:
		return sign(d.month - o.month)
	default:
		return sign(d.day - o.day)
	}
}

// Before reports whether d is strictly earlier than o.
func (d BirthDate) Before(o BirthDate) bool { return d.Compare(o) < 0 }

// After reports whether d is strictly later than o.
func (d BirthDate) After(o BirthDate) bool { return d.Compare(o) > 0 }

// Equal reports whether d and o are the same calendar day.
func (d BirthDate) Equal(o BirthDate) bool { return d == o }

// String formats the date as YYYY-MM-DD.
func (d BirthDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the calendar length of month in year, or 0 for an invalid month.
func DaysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// dayNumber counts days since 1970-01-01 in the proleptic Gregorian calendar.
// time.Duration cannot span the full supported window, so range arithmetic uses this.
func (d BirthDate) dayNumber() int {
	y, m := d.year, d.month
	if m <= 2 {
		y--
	}
	era := y / 400
	if y < 0 && y%400 != 0 {
		era--
	}
	yoe := y - era*400
	mp := (m + 9) % 12
	doy := (153*mp+2)/5 + d.day - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
