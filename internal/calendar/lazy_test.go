package calendar

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"
)

type countingSource struct {
	calls   int32
	release chan struct{}
	fail    int32 // number of initial calls that fail
}

func (s *countingSource) Fetch(ctx context.Context) ([]byte, error) {
	n := atomic.AddInt32(&s.calls, 1)
	if s.release != nil {
		<-s.release
	}
	if n <= s.fail {
		return nil, ErrNetwork
	}
	return []byte("header\r\n1955/1/1,x\r\n"), nil
}

func TestLazy_SingleBuild(t *testing.T) {
	src := &countingSource{release: make(chan struct{})}
	lazy := NewLazy(NewBuilder(src, zap.NewNop()), zap.NewNop())

	const callers = 16
	results := make([]*Calendar, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			cal, err := lazy.Get(context.Background())
			if err != nil {
				t.Errorf("Get() error = %v", err)
				return
			}
			results[i] = cal
		}(i)
	}

	time.Sleep(50 * time.Millisecond)
	close(src.release)
	wg.Wait()

	if got := atomic.LoadInt32(&src.calls); got != 1 {
		t.Errorf("source fetched %d times, want 1", got)
	}
	for i, cal := range results {
		if cal == nil || cal != results[0] {
			t.Errorf("caller %d got a different calendar", i)
		}
	}

	again, err := lazy.Get(context.Background())
	if err != nil || again != results[0] {
		t.Errorf("Get() after build = %p, %v, want cached %p", again, err, results[0])
	}
}

func TestLazy_RetriesAfterFailure(t *testing.T) {
	src := &countingSource{fail: 1}
	lazy := NewLazy(NewBuilder(src, zap.NewNop()), zap.NewNop())

	if _, err := lazy.Get(context.Background()); !errors.Is(err, ErrNetwork) {
		t.Fatalf("first Get() error = %v, want ErrNetwork", err)
	}

	cal, err := lazy.Get(context.Background())
	if err != nil {
		t.Fatalf("second Get() error = %v", err)
	}
	if !cal.Contains(Date{1955, time.January, 1}) {
		t.Error("calendar missing 1955-01-01")
	}
	if got := atomic.LoadInt32(&src.calls); got != 2 {
		t.Errorf("source fetched %d times, want 2", got)
	}
}

func TestLazy_CancelledCallerDoesNotFailOthers(t *testing.T) {
	src := &countingSource{release: make(chan struct{})}
	lazy := NewLazy(NewBuilder(src, zap.NewNop()), zap.NewNop())

	leaderCtx, cancel := context.WithCancel(context.Background())
	leaderErr := make(chan error, 1)
	go func() {
		_, err := lazy.Get(leaderCtx)
		leaderErr <- err
	}()

	// Let the leader start the build before the follower joins
	for atomic.LoadInt32(&src.calls) == 0 {
		time.Sleep(time.Millisecond)
	}

	type result struct {
		cal *Calendar
		err error
	}
	follower := make(chan result, 1)
	go func() {
		cal, err := lazy.Get(context.Background())
		follower <- result{cal, err}
	}()

	cancel()
	if err := <-leaderErr; !errors.Is(err, context.Canceled) {
		t.Errorf("leader Get() error = %v, want context.Canceled", err)
	}

	close(src.release)
	res := <-follower
	if res.err != nil {
		t.Fatalf("follower Get() error = %v", res.err)
	}
	if !res.cal.Contains(Date{1955, time.January, 1}) {
		t.Error("calendar missing 1955-01-01")
	}

	cached, err := lazy.Get(leaderCtx)
	if err != nil || cached != res.cal {
		t.Errorf("Get() after build = %p, %v, want cached %p", cached, err, res.cal)
	}
	if got := atomic.LoadInt32(&src.calls); got != 1 {
		t.Errorf("source fetched %d times, want 1", got)
	}
}
