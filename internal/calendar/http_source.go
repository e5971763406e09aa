package calendar

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultURL is the Cabinet Office CSV of national holidays
	DefaultURL         = "https://www8.cao.go.jp/chosei/shukujitsu/syukujitsu.csv"
	defaultHTTPTimeout = 10 * time.Second
	defaultRetries     = 3
)

// HTTPSource downloads the feed with a plain GET
type HTTPSource struct {
	url        string
	retries    int
	backoff    time.Duration
	httpClient *http.Client
	logger     *zap.Logger
}

// NewHTTPSource creates a new HTTPSource instance
func NewHTTPSource(url string, timeout time.Duration, retries int, logger *zap.Logger) *HTTPSource {
	if url == "" {
		url = DefaultURL
	}
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	if retries <= 0 {
		retries = defaultRetries
	}

	return &HTTPSource{
		url:     url,
		retries: retries,
		backoff: time.Second,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Fetch downloads the feed, retrying transport failures and non-200 responses
func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	var lastErr error
	for attempt := 1; attempt <= s.retries; attempt++ {
		body, err := s.fetchOnce(ctx)
		if err == nil {
			return body, nil
		}

		lastErr = err
		s.logger.Warn("Feed download failed",
			zap.String("url", s.url),
			zap.Int("attempt", attempt),
			zap.Int("max_retries", s.retries),
			zap.Error(err))

		if attempt < s.retries {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("%w: %w", ErrNetwork, ctx.Err())
			case <-time.After(s.backoff * time.Duration(attempt)):
			}
		}
	}

	return nil, fmt.Errorf("%w: download failed after %d attempts: %w", ErrNetwork, s.retries, lastErr)
}

func (s *HTTPSource) fetchOnce(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	s.logger.Debug("Fetching holiday feed", zap.String("url", s.url))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	s.logger.Info("Holiday feed downloaded",
		zap.String("url", s.url),
		zap.Int("bytes", len(body)))

	return body, nil
}
