package sieve

import (
	"errors"
	"sync"
)

// ErrBadWorkerCount is returned by NewParallel for workers < 1.
var ErrBadWorkerCount = errors.New("sieve: workers must be at least 1")

// minParallelLimit is the bound below which NewParallel falls back to
// serial marking: segment bookkeeping costs more than it saves.
const minParallelLimit = 1 << 16

// NewParallel builds the same sieve as New by partitioning composite
// marking into disjoint segments handled by a bounded worker pool.
//
// Construction: base primes up to √limit are sieved serially, then the
// remaining odd range is cut into one contiguous segment per worker.
// Each worker marks multiples of every base prime inside its own
// segment only, so writes never overlap and no locking is needed.
// The resulting sieve is indistinguishable from a serial one.
func NewParallel(limit int64, workers int) (*Sieve, error) {
	if workers < 1 {
		return nil, ErrBadWorkerCount
	}
	if workers == 1 || limit < minParallelLimit {
		return New(limit)
	}

	s, err := alloc(limit)
	if err != nil {
		return nil, err
	}

	// Serial prefix: primes up to √limit seed the segment marking.
	root := int64(2)
	for root*root <= limit {
		root++
	}
	root-- // now root = ⌊√limit⌋
	for p := int64(3); p*p <= root; p += 2 {
		if s.composite[p>>1] {
			continue
		}
		for m := p * p; m <= root; m += 2 * p {
			s.composite[m>>1] = true
		}
	}
	var base []int64
	for p := int64(3); p <= root; p += 2 {
		if !s.composite[p>>1] {
			base = append(base, p)
		}
	}

	// Split (root, limit] into equal segments, one goroutine each.
	span := limit - root
	chunk := span/int64(workers) + 1
	var wg sync.WaitGroup
	for lo := root + 1; lo <= limit; lo += chunk {
		hi := lo + chunk - 1
		if hi > limit {
			hi = limit
		}
		wg.Add(1)
		go func(lo, hi int64) {
			defer wg.Done()
			markSegment(s.composite, base, lo, hi)
		}(lo, hi)
	}
	wg.Wait()

	return s, nil
}

// markSegment marks composites in [lo, hi] using the base primes.
// Writes stay inside the segment's index range, keeping goroutines
// disjoint.
func markSegment(composite []bool, base []int64, lo, hi int64) {
	for _, p := range base {
		// First odd multiple of p inside [lo, hi], not below p².
		start := ((lo + p - 1) / p) * p
		if start < p*p {
			start = p * p
		}
		if start%2 == 0 {
			start += p
		}
		for m := start; m <= hi; m += 2 * p {
			composite[m>>1] = true
		}
	}
}
