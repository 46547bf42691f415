// Package seq generates lazy, finite, restartable sequences of
// integers satisfying a predicate over a bounded range, with
// OEIS-style index/offset handling.
//
// What
//
//   - Range{Start, End}: inclusive by default, half-open via options.
//   - Entry{Index, Value}: Value is a qualifying integer, Index its
//     1-based (default) or 0-based position among qualifiers.
//   - Generate(r, p, opts) returns an iter.Seq[Entry]: values strictly
//     ascending, every one satisfying p, bounded by the range.
//   - GenerateNamed(r, name, opts) resolves the predicate registry and
//     transparently substitutes a memoized sieve for primality-backed
//     names on large ranges — a pure optimization, never an observable
//     behavior change (cross-checked in tests).
//   - Collect / CollectNamed are the eager conveniences.
//
// Determinism & restartability
//
//	Generation is a pure transformation (Range, Predicate) → sequence.
//	The returned iterator captures no mutable state: ranging over it
//	twice, or calling Generate twice with identical inputs, yields
//	identical sequences.
//
// Edge cases
//
//   - Start > End is ErrInvalidRange, reported before any value is
//     produced (no silent normalization, no partial output).
//   - A range whose effective bounds admit no qualifying integer
//     (e.g. End < 2 under a primality predicate) yields an empty
//     sequence, not an error.
//
// Complexity (S = range span)
//
//   - Trial-division scan: O(S·√End) worst case.
//   - Sieved scan (primality-backed names, span ≥ SieveThreshold):
//     O(End log log End) construction + O(S) scan.
//
// Usage
//
//	entries, err := seq.CollectNamed(seq.Range{Start: 1, End: 20},
//	    predicate.NameOddPrime, nil)
//	// entries: [1]3 [2]5 [3]7 [4]11 [5]13 [6]17 [7]19  (A065091)
//
//	it, err := seq.Generate(r, myPredicate, nil)
//	for e := range it {
//	    fmt.Println(e.Index, e.Value)
//	}
package seq
