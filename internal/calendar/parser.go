package calendar

import (
	"bufio"
	"errors"
	"fmt"
	"strings"
)

const fieldSeparator = ","

// Holiday is a single gazetted holiday
type Holiday struct {
	Date Date
	Name string
}

// ParseRecords parses the UTF-8 feed into holidays in file order.
// The first line is a header and is always skipped. Blank lines are ignored.
// Any malformed line fails the whole parse.
func ParseRecords(text string) ([]Holiday, error) {
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var records []Holiday
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		if lineNo == 1 {
			continue
		}

		raw := scanner.Text()
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		record, err := parseLine(line)
		if err != nil {
			err.Line = lineNo
			err.Text = raw
			return nil, err
		}
		records = append(records, record)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading feed: %w", ErrParse, err)
	}

	return records, nil
}

func parseLine(line string) (Holiday, *ParseError) {
	// Format: YYYY/M/D,name
	// Example: 1955/1/1,元日
	dateStr, name, found := strings.Cut(line, fieldSeparator)
	dateStr = strings.TrimSpace(dateStr)
	name = strings.TrimSpace(name)

	if dateStr == "" {
		return Holiday{}, &ParseError{Reason: ReasonMissingDate}
	}
	if !found || name == "" {
		return Holiday{}, &ParseError{Reason: ReasonMissingName}
	}

	date, err := ParseSlashDate(dateStr)
	if err != nil {
		// Feed errors stay parse errors; ErrInvalidDate is for caller-supplied dates
		return Holiday{}, &ParseError{Reason: ReasonBadDate, Err: errors.New(err.Error())}
	}

	return Holiday{Date: date, Name: name}, nil
}

// FormatRecords renders holidays back into the feed's line format, header included
func FormatRecords(holidays []Holiday) string {
	var b strings.Builder
	b.WriteString(feedHeader)
	b.WriteString("\n")
	for _, h := range holidays {
		fmt.Fprintf(&b, "%d/%d/%d%s%s\n", h.Date.Year, int(h.Date.Month), h.Date.Day, fieldSeparator, h.Name)
	}
	return b.String()
}

const feedHeader = "国民の祝日・休日月日,国民の祝日・休日名称"
