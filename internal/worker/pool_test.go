package worker

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestEachProcessesAllItems(t *testing.T) {
	var sum int64
	err := Each(context.Background(), 2, []int{1, 2, 3, 4}, func(_ context.Context, n int) error {
		atomic.AddInt64(&sum, int64(n))
		return nil
	})
	if err != nil {
		t.Fatalf("Each returned unexpected error: %v", err)
	}
	if got := atomic.LoadInt64(&sum); got != 10 {
		t.Fatalf("expected every item to be processed, got sum %d", got)
	}
}

func TestEachCollectsErrors(t *testing.T) {
	err := Each(context.Background(), 2, []string{"a", "ok", "b"}, func(_ context.Context, s string) error {
		if s == "ok" {
			return nil
		}
		return errors.New("track " + s + " failed")
	})
	if err == nil {
		t.Fatalf("expected joined error")
	}
	text := err.Error()
	if !strings.Contains(text, "track a failed") || !strings.Contains(text, "track b failed") {
		t.Fatalf("joined error should include both errors, got: %v", err)
	}
}

func TestEachBoundsConcurrency(t *testing.T) {
	var inFlight, peak int32
	items := make([]int, 12)
	err := Each(context.Background(), 3, items, func(context.Context, int) error {
		n := atomic.AddInt32(&inFlight, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		atomic.AddInt32(&inFlight, -1)
		return nil
	})
	if err != nil {
		t.Fatalf("Each returned unexpected error: %v", err)
	}
	if peak > 3 {
		t.Fatalf("expected at most 3 concurrent calls, saw %d", peak)
	}
}

func TestEachReturnsContextErrorWhenCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Each(ctx, 1, []int{1}, func(context.Context, int) error { return nil })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestEachEmpty(t *testing.T) {
	called := false
	err := Each(context.Background(), 4, nil, func(context.Context, int) error {
		called = true
		return nil
	})
	if err != nil || called {
		t.Fatalf("expected no-op, got err=%v called=%v", err, called)
	}
}
