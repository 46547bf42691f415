package sieve

import (
	"errors"

	"github.com/katalvlaran/intseq/predicate"
)

// ErrNegativeLimit is returned by constructors for limit < 0.
var ErrNegativeLimit = errors.New("sieve: limit must be non-negative")

// Sieve answers primality for every n in [0, Limit()] in O(1).
// Immutable after construction; safe for concurrent queries.
type Sieve struct {
	limit int64
	// composite[i] marks the odd number 2i+1 as composite.
	// Evens never hit this slice (only 2 is prime, answered directly).
	composite []bool
}

// New builds a sieve covering [0, limit] with serial marking.
// O(limit log log limit) time, limit/2 bytes of storage.
func New(limit int64) (*Sieve, error) {
	s, err := alloc(limit)
	if err != nil {
		return nil, err
	}

	for p := int64(3); p*p <= limit; p += 2 {
		if s.composite[p>>1] {
			continue
		}
		// Start at p²: smaller multiples carry a smaller prime factor
		// and are already marked. Step 2p skips the even multiples.
		for m := p * p; m <= limit; m += 2 * p {
			s.composite[m>>1] = true
		}
	}

	return s, nil
}

// alloc prepares the odd-only backing store shared by both constructors.
func alloc(limit int64) (*Sieve, error) {
	if limit < 0 {
		return nil, ErrNegativeLimit
	}
	s := &Sieve{limit: limit}
	if limit >= 1 {
		s.composite = make([]bool, limit/2+1)
		s.composite[0] = true // 1 is not prime
	}

	return s, nil
}

// Limit returns the inclusive upper bound this sieve covers.
func (s *Sieve) Limit() int64 { return s.limit }

// IsPrime reports whether n is prime. O(1); false outside [0, limit].
func (s *Sieve) IsPrime(n int64) bool {
	if n < 2 || n > s.limit {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}

	return !s.composite[n>>1]
}

// Primes returns every prime ≤ limit in ascending order.
func (s *Sieve) Primes() []int64 {
	if s.limit < 2 {
		return nil
	}
	primes := []int64{2}
	for n := int64(3); n <= s.limit; n += 2 {
		if !s.composite[n>>1] {
			primes = append(primes, n)
		}
	}

	return primes
}

// Count returns the number of primes ≤ limit (π(limit)).
func (s *Sieve) Count() int {
	if s.limit < 2 {
		return 0
	}
	count := 1 // the prime 2
	for n := int64(3); n <= s.limit; n += 2 {
		if !s.composite[n>>1] {
			count++
		}
	}

	return count
}

// Predicate adapts the sieve to a predicate.Predicate. Queries beyond
// the sieve's limit return false, mirroring every other classifier's
// total-over-int64 contract.
func (s *Sieve) Predicate() predicate.Predicate {
	return s.IsPrime
}
