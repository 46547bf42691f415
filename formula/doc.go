// Package formula implements the combinatorial max-y machinery used to
// reproduce OEIS sequences from binary integer formulas.
//
// What
//
//	A Spec maps an ordered pair a < b to a candidate (x, y):
//
//	    x, y := spec.Map(a, b)
//
//	Compute sweeps the pair space induced by the range, keeping the
//	maximal y seen for each x (the max_y table). Survivors extracts,
//	in ascending x, the fixed points max_y(x) == x — the integers whose
//	every non-trivial pair representation is dominated by the trivial
//	one. For the square-difference formula those fixed points are
//	exactly the odd primes (OEIS A065091): an odd composite m·n is
//	also reachable as a difference of non-consecutive squares, which
//	inflates its max_y beyond itself.
//
// Catalog
//
//   - square_difference  — x = |a²−b²|,  y = x·|b−a|   → A065091 (odd primes, fixed points)
//   - sum_of_squares     — x = a²+b²,    y = x·|x−(a+b)²| → A004431 (whole table)
//   - centered_square    — x = (a−1)²+(b−1)², y = x·|b−a| → A027862 (fixed points)
//   - quartic_difference — x = |a⁴−b⁴|·|a²−b²|, y = x·|b−a| → A272850 (fixed points)
//   - scaled_difference  — x = b·|a−b|, y = x·(a²+b²) → A059722 (y values)
//
// Entries disagree on how the table becomes a sequence: the
// difference-style formulas keep only fixed points max_y(x) == x,
// sum_of_squares lists every swept x (the sums of two distinct nonzero
// squares), and scaled_difference reports max_y(x) per x. Spec.Options
// captures each entry's canonical reading; a nil *Options passed to
// Sequence selects it.
//
// Filters (mirroring the exploration flags of the research scripts):
// StopAtIndex truncates the survivor list, UseYValues reports max_y(x)
// instead of x, ExcludeEven and PrimesOnly drop survivors post hoc.
//
// Determinism
//
//	Pair sweeps are plain nested loops over integer bounds; the table
//	is reduced with max, an order-independent operation. Identical
//	inputs always produce identical survivor sequences.
//
// Complexity (E = Range.End)
//
//   - HalfRootPairs / FullRootPairs sweep: O(E·√E) pairs.
//   - TrianglePairs sweep: O(E²) pairs — research-scale ranges only.
//   - Survivors: O(T log T) for T distinct x values (sort).
//
// Usage
//
//	spec, _ := formula.Lookup(formula.NameSquareDifference)
//	entries, err := formula.Sequence(seq.Range{Start: 1, End: 100}, spec, nil)
//	// entries values: 3 5 7 11 13 … (odd primes below 100)
package formula
