package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/username/jp-holidays/internal/calendar"
	"github.com/username/jp-holidays/internal/snapshot"
)

// listHolidays handles GET /holidays?from=YYYY-MM-DD&to=YYYY-MM-DD, to exclusive.
// Missing bounds default to the calendar's own span.
func listHolidays(ctx *gin.Context, cal *calendar.Calendar) (any, *Error) {
	list := snapshot.ResponseList{Results: []snapshot.Response{}}

	first, ok := cal.First()
	if !ok {
		return list, nil
	}
	last, _ := cal.Last()

	from, apiErr := dateQuery(ctx, "from", first.Date)
	if apiErr != nil {
		return nil, apiErr
	}
	to, apiErr := dateQuery(ctx, "to", last.Date.AddDays(1))
	if apiErr != nil {
		return nil, apiErr
	}

	for _, h := range cal.Range(from, to) {
		list.Results = append(list.Results, snapshot.NewResponse(cal, h.Date))
	}
	return list, nil
}

// getHoliday handles GET /holidays/:date; 404 when the date is not a holiday
func getHoliday(ctx *gin.Context, cal *calendar.Calendar) (any, *Error) {
	date, apiErr := dateParam(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	if !cal.Contains(date) {
		return nil, &Error{Code: http.StatusNotFound, Message: fmt.Sprintf("%s is not a holiday", date)}
	}
	return snapshot.NewResponse(cal, date), nil
}

// getDay handles GET /days/:date
func getDay(ctx *gin.Context, cal *calendar.Calendar) (any, *Error) {
	date, apiErr := dateParam(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	info := cal.Day(date)
	return DayResponse{
		Response: snapshot.NewResponse(cal, date),
		Weekend:  info.Weekend,
		DayOff:   info.IsDayOff,
	}, nil
}

func dateParam(ctx *gin.Context) (calendar.Date, *Error) {
	date, err := calendar.ParseISODate(ctx.Param("date"))
	if err != nil {
		return calendar.Date{}, &Error{Code: http.StatusBadRequest, Message: err.Error()}
	}
	return date, nil
}

func dateQuery(ctx *gin.Context, key string, def calendar.Date) (calendar.Date, *Error) {
	raw := ctx.Query(key)
	if raw == "" {
		return def, nil
	}
	date, err := calendar.ParseISODate(raw)
	if err != nil {
		return calendar.Date{}, &Error{Code: http.StatusBadRequest, Message: fmt.Sprintf("%s: %v", key, err)}
	}
	return date, nil
}
