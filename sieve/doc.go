// Package sieve implements a bounded Sieve of Eratosthenes with O(1)
// primality queries up to a fixed limit, in serial or partitioned form.
//
// What
//
//   - New(limit) precomputes primality of every n in [0, limit].
//   - NewParallel(limit, workers) produces the identical sieve by
//     marking composites in disjoint segments across a small worker
//     pool. Observable behavior is byte-for-byte the same as New;
//     partitioning is purely a construction-time optimization.
//   - IsPrime(n) answers in O(1); n outside [0, limit] is false.
//   - Primes() materializes the ascending prime list; Count() just
//     counts.
//   - Predicate() adapts the sieve to a predicate.Predicate so the seq
//     generator can swap it in transparently for trial division.
//
// Memory
//
//	Odd-only storage: one bool per odd number ≤ limit, i.e. limit/2
//	bytes. Evens are answered arithmetically (only 2 is prime).
//
// Determinism
//
//	A sieve is immutable after construction; concurrent IsPrime calls
//	need no synchronization, and serial vs parallel construction is
//	indistinguishable to callers (cross-checked in tests).
//
// Complexity (L = limit)
//
//   - Construction: O(L log log L) marking work, serial or split.
//   - Query: O(1). Primes(): O(L).
//
// Usage
//
//	s := sieve.New(1_000_000)
//	s.IsPrime(999_983)       // true, O(1)
//	ps := s.Primes()         // ascending []int64
//
// For one-off primality checks of isolated integers, predicate.IsPrime
// is cheaper; the sieve pays off on repeated queries over a range.
package sieve
