package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/username/jp-holidays/pkg/dateutil"
)

// Date is a civil date without time of day or timezone
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate validates the year/month/day triple against the proleptic Gregorian calendar
func NewDate(year int, month time.Month, day int) (Date, error) {
	if month < time.January || month > time.December || day < 1 || day > daysIn(year, month) {
		return Date{}, &InvalidDateError{Year: year, Month: int(month), Day: day}
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// DateOf returns the civil date of t in its own location
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseISODate parses YYYY-MM-DD
func ParseISODate(s string) (Date, error) {
	return parseDate(s, "-")
}

// ParseSlashDate parses the feed's year/month/day form; zero padding is optional
func ParseSlashDate(s string) (Date, error) {
	return parseDate(s, "/")
}

func parseDate(s, sep string) (Date, error) {
	parts := strings.Split(s, sep)
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("date %q does not match year%smonth%sday", s, sep, sep)
	}

	var nums [3]int
	for i, part := range parts {
		if part == "" || !isDigits(part) {
			return Date{}, fmt.Errorf("date %q has non-numeric component %q", s, part)
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return Date{}, fmt.Errorf("date %q: %w", s, err)
		}
		nums[i] = n
	}

	return NewDate(nums[0], time.Month(nums[1]), nums[2])
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysIn(year int, month time.Month) int {
	switch month {
	case time.February:
		if isLeap(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// Time returns midnight UTC of the date
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the day of the week
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// IsWeekend returns true for Saturday and Sunday
func (d Date) IsWeekend() bool {
	return dateutil.IsWeekend(d.Time())
}

// AddDays returns the date n days later (or earlier for negative n)
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// Compare returns -1, 0 or +1
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return cmpInt(d.Year, other.Year)
	case d.Month != other.Month:
		return cmpInt(int(d.Month), int(other.Month))
	default:
		return cmpInt(d.Day, other.Day)
	}
}

// Before reports whether d is strictly earlier than other
func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

// After reports whether d is strictly later than other
func (d Date) After(other Date) bool {
	return d.Compare(other) > 0
}

// String formats the date as YYYY-MM-DD
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MonthKey formats the date as YYYY-MM
func (d Date) MonthKey() string {
	return fmt.Sprintf("%04d-%02d", d.Year, int(d.Month))
}

// YearKey formats the date as YYYY
func (d Date) YearKey() string {
	return fmt.Sprintf("%04d", d.Year)
}

func cmpInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}
