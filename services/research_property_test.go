package services

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestBatchedMapOrderingProperties verifies batch scheduling invariants for
// arbitrary inputs and batch sizes
func TestBatchedMapOrderingProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("result order always matches input order", prop.ForAll(
		func(items []int, batchSize int) bool {
			results := BatchedMap(context.Background(), items, func(_ context.Context, n int) int {
				return n * 3
			}, batchSize, time.Microsecond)

			if len(results) != len(items) {
				return false
			}
			for i, n := range items {
				if results[i] != n*3 {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(-1000, 1000)),
		gen.IntRange(1, 10),
	))

	properties.Property("every input item is visited exactly once", prop.ForAll(
		func(size int, batchSize int) bool {
			items := make([]int, size)
			for i := range items {
				items[i] = i
			}

			seen := make([]int32, size)
			BatchedMap(context.Background(), items, func(_ context.Context, idx int) struct{} {
				seen[idx]++
				return struct{}{}
			}, batchSize, time.Microsecond)

			for _, count := range seen {
				if count != 1 {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 40),
		gen.IntRange(1, 10),
	))

	properties.TestingRun(t)
}

// TestRoundingProperties verifies the rounding helpers the published
// aggregates are built on
func TestRoundingProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("round1 produces at most one decimal place", prop.ForAll(
		func(v float64) bool {
			r := round1(v)
			scaled := r * 10
			return math.Abs(scaled-math.Round(scaled)) < 1e-6
		},
		gen.Float64Range(-1e6, 1e6),
	))

	properties.Property("round1 is idempotent", prop.ForAll(
		func(v float64) bool {
			return round1(round1(v)) == round1(v)
		},
		gen.Float64Range(-1e6, 1e6),
	))

	properties.Property("round1 never moves a value more than 0.05", prop.ForAll(
		func(v float64) bool {
			return math.Abs(round1(v)-v) <= 0.05+1e-9
		},
		gen.Float64Range(-1e6, 1e6),
	))

	properties.TestingRun(t)
}

// TestCacheRoundtripProperties verifies set/get consistency for arbitrary
// keys and values
func TestCacheRoundtripProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("an unexpired set is always readable", prop.ForAll(
		func(key string, value int) bool {
			cache := newTestCache()
			cache.SetWithTTL(key, value, time.Hour)

			got, found := cache.Get(key)
			return found && got == value
		},
		gen.AlphaString(),
		gen.Int(),
	))

	properties.TestingRun(t)
}
