package snapshot

import (
	"github.com/username/jp-holidays/internal/calendar"
	"github.com/username/jp-holidays/pkg/dateutil"
)

// Response is the per-day JSON document.
// Public and Holiday are both true only for gazetted holidays; weekends are not
// folded into Holiday.
type Response struct {
	Name        *string `json:"name"`
	Date        string  `json:"date"`
	Year        int     `json:"year"`
	Month       int     `json:"month"`
	Day         int     `json:"day"`
	DayOfWeek   string  `json:"day_of_week"`
	DayOfWeekJa string  `json:"day_of_week_ja"`
	Public      bool    `json:"public"`
	Holiday     bool    `json:"holiday"`
}

// ResponseList wraps a group of responses
type ResponseList struct {
	Results []Response `json:"results"`
}

// NewResponse builds the document for date
func NewResponse(cal *calendar.Calendar, date calendar.Date) Response {
	weekday := date.Weekday()
	resp := Response{
		Date:        date.String(),
		Year:        date.Year,
		Month:       int(date.Month),
		Day:         date.Day,
		DayOfWeek:   weekday.String(),
		DayOfWeekJa: dateutil.JapaneseWeekday(weekday),
	}

	if name, ok := cal.Lookup(date); ok {
		resp.Name = &name
		resp.Public = true
		resp.Holiday = true
	}

	return resp
}
