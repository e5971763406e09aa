package calendar

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// FallbackSource tries the primary source and falls back to a second one on failure.
// Typical use: live download first, bundled file second.
type FallbackSource struct {
	primary  Source
	fallback Source
	logger   *zap.Logger
}

// NewFallbackSource creates a new FallbackSource
func NewFallbackSource(primary, fallback Source, logger *zap.Logger) *FallbackSource {
	return &FallbackSource{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// Fetch returns the primary's bytes, or the fallback's if the primary fails
func (fs *FallbackSource) Fetch(ctx context.Context) ([]byte, error) {
	data, err := fs.primary.Fetch(ctx)
	if err == nil {
		return data, nil
	}

	fs.logger.Warn("Primary source failed, falling back", zap.Error(err))

	data, fallbackErr := fs.fallback.Fetch(ctx)
	if fallbackErr != nil {
		return nil, fmt.Errorf("primary and fallback both failed: primary=%w, fallback=%v", err, fallbackErr)
	}

	fs.logger.Info("Using fallback source data")
	return data, nil
}
