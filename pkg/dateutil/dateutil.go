package dateutil

import "time"

var japaneseWeekdays = [...]string{
	time.Sunday:    "日",
	time.Monday:    "月",
	time.Tuesday:   "火",
	time.Wednesday: "水",
	time.Thursday:  "木",
	time.Friday:    "金",
	time.Saturday:  "土",
}

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// JapaneseWeekday returns the single-character Japanese name of the weekday
// Example: time.Monday -> "月"
func JapaneseWeekday(weekday time.Weekday) string {
	if weekday < time.Sunday || weekday > time.Saturday {
		return ""
	}
	return japaneseWeekdays[weekday]
}

// Today returns today's date (start of day)
func Today() time.Time {
	return StartOfDay(time.Now())
}
