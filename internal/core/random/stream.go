// Package random provides the seeded random stream every generator draws
// from. A single Stream with a fixed seed yields the same draw sequence on
// every run, which is what makes the whole dataset reproducible.
package random

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"time"
)

// Stream is a deterministic random source. It must not be shared across
// goroutines; parallel generators get their own stream via Derive.
type Stream struct {
	seed int64
	rng  *rand.Rand
}

// NewStream creates a stream seeded with the given value.
func NewStream(seed int64) *Stream {
	return &Stream{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Derive creates an independent sub-stream whose seed is a function of the
// master seed and the label only, never of how many draws the parent has
// made. Generators that run concurrently each derive their own stream.
func (s *Stream) Derive(label string) *Stream {
	h := fnv.New64a()
	h.Write([]byte(label))
	return NewStream(s.seed ^ int64(h.Sum64()))
}

// Uniform returns a float drawn uniformly from [lo, hi).
func (s *Stream) Uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// IntBetween returns an integer drawn uniformly from [lo, hi] inclusive.
// An inverted range is a programming error, not a recoverable condition.
func (s *Stream) IntBetween(lo, hi int) int {
	if hi < lo {
		panic(fmt.Sprintf("random: inverted range [%d, %d]", lo, hi))
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// DateBetween returns a date drawn uniformly (day granularity) from
// [lo, hi] inclusive. Both bounds are treated as midnight dates.
func (s *Stream) DateBetween(lo, hi time.Time) time.Time {
	days := int(hi.Sub(lo).Hours() / 24)
	if days <= 0 {
		return lo
	}
	return lo.AddDate(0, 0, s.IntBetween(0, days))
}

// TimeBetween returns a timestamp drawn uniformly (second granularity) from
// [lo, hi].
func (s *Stream) TimeBetween(lo, hi time.Time) time.Time {
	secs := int64(hi.Sub(lo).Seconds())
	if secs <= 0 {
		return lo
	}
	return lo.Add(time.Duration(s.rng.Int63n(secs+1)) * time.Second)
}

// Choice returns one element drawn uniformly from items.
func Choice[T any](s *Stream, items []T) T {
	return items[s.rng.Intn(len(items))]
}

// Sample returns k elements drawn without replacement, via a partial
// Fisher-Yates shuffle over a copy of items. The order of the returned
// slice is part of the deterministic contract.
func Sample[T any](s *Stream, items []T, k int) []T {
	if k > len(items) {
		k = len(items)
	}
	pool := make([]T, len(items))
	copy(pool, items)
	for i := 0; i < k; i++ {
		j := i + s.rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}

// Weighted returns one element drawn from items with probability
// proportional to its weight. Weights must be positive and len(weights)
// must equal len(items).
func Weighted[T any](s *Stream, items []T, weights []float64) T {
	var total float64
	for _, w := range weights {
		total += w
	}
	target := s.rng.Float64() * total
	for i, w := range weights {
		target -= w
		if target < 0 {
			return items[i]
		}
	}
	return items[len(items)-1]
}
