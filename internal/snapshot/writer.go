package snapshot

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/username/jp-holidays/internal/calendar"
	"go.uber.org/zap"
)

const listName = "list"

// Writer emits the static JSON API for a calendar
type Writer struct {
	fs     afero.Fs
	dir    string
	logger *zap.Logger
}

// Summary describes a finished generation run
type Summary struct {
	First  calendar.Date
	Last   calendar.Date
	Days   int
	Months int
	Years  int
}

// NewWriter creates a new Writer rooted at dir
func NewWriter(fs afero.Fs, dir string, logger *zap.Logger) *Writer {
	return &Writer{
		fs:     fs,
		dir:    dir,
		logger: logger,
	}
}

// Write emits one file per day from the first to the last known holiday,
// one per month (YYYY-MM) and per year (YYYY) listing that period's holidays,
// and list.json with every holiday. When clean is set the directory is wiped first.
func (w *Writer) Write(cal *calendar.Calendar, clean bool) (*Summary, error) {
	first, ok := cal.First()
	if !ok {
		return nil, fmt.Errorf("calendar is empty")
	}
	last, _ := cal.Last()

	if clean {
		if err := w.fs.RemoveAll(w.dir); err != nil {
			return nil, fmt.Errorf("failed to clean output dir: %w", err)
		}
	}
	if err := w.fs.MkdirAll(w.dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}

	monthly := make(map[string][]Response)
	yearly := make(map[string][]Response)
	summary := &Summary{First: first.Date, Last: last.Date}

	for date := first.Date; !date.After(last.Date); date = date.AddDays(1) {
		resp := NewResponse(cal, date)

		monthKey, yearKey := date.MonthKey(), date.YearKey()
		if _, ok := monthly[monthKey]; !ok {
			monthly[monthKey] = []Response{}
		}
		if _, ok := yearly[yearKey]; !ok {
			yearly[yearKey] = []Response{}
		}
		if resp.Public {
			monthly[monthKey] = append(monthly[monthKey], resp)
			yearly[yearKey] = append(yearly[yearKey], resp)
		}

		if err := w.save(date.String(), resp); err != nil {
			return nil, err
		}
		summary.Days++
	}

	for key, results := range monthly {
		if err := w.save(key, ResponseList{Results: results}); err != nil {
			return nil, err
		}
	}
	for key, results := range yearly {
		if err := w.save(key, ResponseList{Results: results}); err != nil {
			return nil, err
		}
	}

	entries := cal.Entries()
	all := ResponseList{Results: make([]Response, 0, len(entries))}
	for _, h := range entries {
		all.Results = append(all.Results, NewResponse(cal, h.Date))
	}
	if err := w.save(listName, all); err != nil {
		return nil, err
	}

	summary.Months = len(monthly)
	summary.Years = len(yearly)

	w.logger.Info("Snapshot written",
		zap.String("dir", w.dir),
		zap.String("first", summary.First.String()),
		zap.String("last", summary.Last.String()),
		zap.Int("days", summary.Days),
		zap.Int("months", summary.Months),
		zap.Int("years", summary.Years))

	return summary, nil
}

func (w *Writer) save(name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}

	path := filepath.Join(w.dir, name+".json")
	if err := afero.WriteFile(w.fs, path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
