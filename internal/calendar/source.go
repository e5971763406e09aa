package calendar

import "context"

// Source supplies the raw Shift-JIS CSV bytes of the holiday feed
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// StaticSource returns a fixed buffer
type StaticSource []byte

// Fetch returns the buffer itself
func (s StaticSource) Fetch(ctx context.Context) ([]byte, error) {
	return s, nil
}
