package calendar

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Builder turns a Source into a Calendar: fetch, decode, parse, fold.
// It never retries; retry policy belongs to the Source.
type Builder struct {
	source Source
	logger *zap.Logger
}

// NewBuilder creates a new Builder
func NewBuilder(source Source, logger *zap.Logger) *Builder {
	return &Builder{
		source: source,
		logger: logger,
	}
}

// Build fetches the feed and constructs the calendar
func (b *Builder) Build(ctx context.Context) (*Calendar, error) {
	raw, err := b.source.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch holiday feed: %w", err)
	}

	text, err := DecodeShiftJIS(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode holiday feed: %w", err)
	}

	records, err := ParseRecords(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse holiday feed: %w", err)
	}

	cal := New(records)

	fields := []zap.Field{
		zap.Int("records", len(records)),
		zap.Int("holidays", cal.Len()),
	}
	if first, ok := cal.First(); ok {
		last, _ := cal.Last()
		fields = append(fields,
			zap.String("first", first.Date.String()),
			zap.String("last", last.Date.String()))
	}
	b.logger.Info("Holiday calendar built", fields...)

	return cal, nil
}
