package services

import (
	"context"
	"sync"
	"time"
)

// BatchedMap applies fn to every item, batchSize items at a time, waiting
// delay between consecutive batches (not after the last one). Within a batch
// all calls run concurrently; results are collected in input order no matter
// which call finishes first, and batch N fully settles before batch N+1
// starts. This windowed throttle is the sole rate-limiting mechanism against
// the upstream per-minute quota: burstiness within a batch is intentional.
//
// fn is expected to absorb its own errors and return a sentinel value (zero
// value, nil pointer, placeholder record) so one item's failure never aborts
// the batch or its siblings.
//
// If ctx is cancelled during an inter-batch delay, the remaining items keep
// their zero values and the partial results are returned.
func BatchedMap[T, R any](ctx context.Context, items []T, fn func(context.Context, T) R, batchSize int, delay time.Duration) []R {
	results := make([]R, len(items))
	if batchSize <= 0 {
		batchSize = len(items)
	}

	for start := 0; start < len(items); start += batchSize {
		end := start + batchSize
		if end > len(items) {
			end = len(items)
		}

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			wg.Add(1)
			go func(idx int) {
				defer wg.Done()
				results[idx] = fn(ctx, items[idx])
			}(i)
		}
		wg.Wait()

		if end < len(items) {
			select {
			case <-ctx.Done():
				return results
			case <-time.After(delay):
			}
		}
	}

	return results
}
