package calendar

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork is returned when the feed cannot be fetched or read
	ErrNetwork = errors.New("network error")
	// ErrDecode is returned when the feed is not valid Shift-JIS
	ErrDecode = errors.New("decode error")
	// ErrParse is returned when a feed line is malformed
	ErrParse = errors.New("parse error")
	// ErrInvalidDate is returned when a caller-supplied year/month/day is not a calendar date
	ErrInvalidDate = errors.New("invalid date")
)

// ParseReason classifies line parse failures
type ParseReason int

const (
	ReasonMissingDate ParseReason = iota + 1
	ReasonMissingName
	ReasonBadDate
)

func (r ParseReason) String() string {
	switch r {
	case ReasonMissingDate:
		return "missing date field"
	case ReasonMissingName:
		return "missing name field"
	case ReasonBadDate:
		return "bad date"
	default:
		return "unknown"
	}
}

// ParseError reports the offending feed line
type ParseError struct {
	Line   int // 1-based, including the header
	Text   string
	Reason ParseReason
	Err    error
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	msg := fmt.Sprintf("%s: line %d %q: %s", ErrParse.Error(), e.Line, e.Text, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Is(target error) bool { return target == ErrParse }

func (e *ParseError) Unwrap() error { return e.Err }

// InvalidDateError reports a year/month/day triple that is not a calendar date
type InvalidDateError struct {
	Year  int
	Month int
	Day   int
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("%s: %d-%d-%d", ErrInvalidDate.Error(), e.Year, e.Month, e.Day)
}

func (e *InvalidDateError) Unwrap() error { return ErrInvalidDate }

// DecodeError reports where the legacy-encoded input stopped being valid
type DecodeError struct {
	Line int
	Msg  string
}

func (e *DecodeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: line %d: %s", ErrDecode.Error(), e.Line, e.Msg)
	}
	return fmt.Sprintf("%s: %s", ErrDecode.Error(), e.Msg)
}

func (e *DecodeError) Unwrap() error { return ErrDecode }

