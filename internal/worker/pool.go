package worker

import (
	"context"
	"errors"
	"sync"
)

// Each calls fn for every item with at most workers calls in flight and returns the joined
// errors. Items not yet started when ctx is canceled are skipped and ctx.Err() is included.
func Each[T any](ctx context.Context, workers int, items []T, fn func(context.Context, T) error) error {
	if workers < 1 {
		workers = 1
	}
	if workers > len(items) {
		workers = len(items)
	}
	if len(items) == 0 {
		return nil
	}

	itemCh := make(chan T)
	errCh := make(chan error, len(items))

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range itemCh {
				if err := fn(ctx, item); err != nil {
					errCh <- err
				}
			}
		}()
	}

feed:
	for _, item := range items {
		select {
		case <-ctx.Done():
			break feed
		case itemCh <- item:
		}
	}
	close(itemCh)

	wg.Wait()
	close(errCh)

	var errs []error
	for err := range errCh {
		errs = append(errs, err)
	}
	if err := ctx.Err(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
