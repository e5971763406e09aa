package calendar

import (
	"sort"
	"time"
)

// Calendar is an immutable, date-ordered set of gazetted holidays.
// It is safe for concurrent use once constructed.
type Calendar struct {
	entries []Holiday // ascending, unique dates
}

// DayInfo classifies a single date
type DayInfo struct {
	Date     Date
	Name     string
	Holiday  bool
	Weekend  bool
	IsDayOff bool
}

// New folds holidays into a calendar. A later record overrides an earlier one on the same date.
func New(holidays []Holiday) *Calendar {
	byDate := make(map[Date]string, len(holidays))
	for _, h := range holidays {
		byDate[h.Date] = h.Name
	}

	entries := make([]Holiday, 0, len(byDate))
	for date, name := range byDate {
		entries = append(entries, Holiday{Date: date, Name: name})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})

	return &Calendar{entries: entries}
}

// search returns the index of the first entry not before date
func (c *Calendar) search(date Date) int {
	return sort.Search(len(c.entries), func(i int) bool {
		return !c.entries[i].Date.Before(date)
	})
}

// Lookup returns the holiday name for date
func (c *Calendar) Lookup(date Date) (string, bool) {
	i := c.search(date)
	if i < len(c.entries) && c.entries[i].Date == date {
		return c.entries[i].Name, true
	}
	return "", false
}

// Contains reports whether date is a gazetted holiday
func (c *Calendar) Contains(date Date) bool {
	_, ok := c.Lookup(date)
	return ok
}

// IsDayOff reports whether date is a Saturday, a Sunday or a gazetted holiday
func (c *Calendar) IsDayOff(date Date) bool {
	return date.IsWeekend() || c.Contains(date)
}

// Day returns the full classification of date
func (c *Calendar) Day(date Date) DayInfo {
	name, ok := c.Lookup(date)
	weekend := date.IsWeekend()
	return DayInfo{
		Date:     date,
		Name:     name,
		Holiday:  ok,
		Weekend:  weekend,
		IsDayOff: ok || weekend,
	}
}

// Range returns the holidays with start <= date < end in ascending order
func (c *Calendar) Range(start, end Date) []Holiday {
	if !start.Before(end) {
		return []Holiday{}
	}
	lo := c.search(start)
	hi := c.search(end)

	out := make([]Holiday, hi-lo)
	copy(out, c.entries[lo:hi])
	return out
}

// Entries returns every holiday in ascending order
func (c *Calendar) Entries() []Holiday {
	out := make([]Holiday, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of distinct holiday dates
func (c *Calendar) Len() int {
	return len(c.entries)
}

// First returns the earliest known holiday
func (c *Calendar) First() (Holiday, bool) {
	if len(c.entries) == 0 {
		return Holiday{}, false
	}
	return c.entries[0], true
}

// Last returns the latest known holiday
func (c *Calendar) Last() (Holiday, bool) {
	if len(c.entries) == 0 {
		return Holiday{}, false
	}
	return c.entries[len(c.entries)-1], true
}

// LookupYMD validates the triple before calling Lookup
func (c *Calendar) LookupYMD(year int, month time.Month, day int) (string, bool, error) {
	date, err := NewDate(year, month, day)
	if err != nil {
		return "", false, err
	}
	name, ok := c.Lookup(date)
	return name, ok, nil
}

// ContainsYMD validates the triple before calling Contains
func (c *Calendar) ContainsYMD(year int, month time.Month, day int) (bool, error) {
	date, err := NewDate(year, month, day)
	if err != nil {
		return false, err
	}
	return c.Contains(date), nil
}

// IsDayOffYMD validates the triple before calling IsDayOff
func (c *Calendar) IsDayOffYMD(year int, month time.Month, day int) (bool, error) {
	date, err := NewDate(year, month, day)
	if err != nil {
		return false, err
	}
	return c.IsDayOff(date), nil
}
