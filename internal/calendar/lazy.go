package calendar

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Lazy builds the calendar on first use and keeps it for the life of the process.
// Concurrent first callers share one in-flight build. A failed build is not
// cached, so the next call tries again. There is no expiry.
type Lazy struct {
	builder *Builder
	logger  *zap.Logger
	group   singleflight.Group

	mu  sync.RWMutex
	cal *Calendar
}

// NewLazy creates a new Lazy handle
func NewLazy(builder *Builder, logger *zap.Logger) *Lazy {
	return &Lazy{
		builder: builder,
		logger:  logger,
	}
}

// Get returns the cached calendar, building it if needed.
// The shared build is detached from any single caller's cancellation;
// each caller stops waiting when its own ctx is done.
func (l *Lazy) Get(ctx context.Context) (*Calendar, error) {
	if cal := l.cached(); cal != nil {
		return cal, nil
	}

	buildCtx := context.WithoutCancel(ctx)
	ch := l.group.DoChan("calendar", func() (interface{}, error) {
		if cal := l.cached(); cal != nil {
			return cal, nil
		}

		cal, err := l.builder.Build(buildCtx)
		if err != nil {
			return nil, err
		}

		l.mu.Lock()
		l.cal = cal
		l.mu.Unlock()
		return cal, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			l.logger.Debug("Joined in-flight calendar build")
		}
		return res.Val.(*Calendar), nil
	}
}

func (l *Lazy) cached() *Calendar {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.cal
}
