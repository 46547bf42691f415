package formula

import (
	"fmt"
	"sort"
)

// Canonical formula names, the full catalog accepted by Lookup and the
// CLI's -formula flag.
const (
	// NameSquareDifference — x = |a²−b²|, y = x·|b−a|; fixed points are
	// the odd primes (A065091).
	NameSquareDifference = "square_difference"
	// NameSumOfSquares — x = a²+b², y = x·|x−(a+b)²|; A004431.
	NameSumOfSquares = "sum_of_squares"
	// NameCenteredSquare — x = (a−1)²+(b−1)², y = x·|b−a|; A027862.
	NameCenteredSquare = "centered_square"
	// NameQuarticDifference — x = |a⁴−b⁴|·|a²−b²|, y = x·|b−a|; A272850.
	NameQuarticDifference = "quartic_difference"
	// NameScaledDifference — x = b·|a−b|, y = x·(a²+b²); the y values of
	// the table are n·(2n²−2n+1) (A059722).
	NameScaledDifference = "scaled_difference"
)

// catalog is fixed at init and never mutated; concurrent Lookup is safe.
// FixedPoints/UseYValues record each formula's canonical reading:
// difference-style entries publish their fixed points, while
// sum_of_squares publishes the whole table (every sum of two distinct
// nonzero squares) and scaled_difference publishes y values.
var catalog = map[string]Spec{
	NameSquareDifference: {
		Name:        NameSquareDifference,
		OEIS:        "A065091",
		Map:         squareDifference,
		Pairs:       HalfRootPairs,
		FixedPoints: true,
	},
	NameSumOfSquares: {
		Name:  NameSumOfSquares,
		OEIS:  "A004431",
		Map:   sumOfSquares,
		Pairs: HalfRootPairs,
	},
	NameCenteredSquare: {
		Name:        NameCenteredSquare,
		OEIS:        "A027862",
		Map:         centeredSquare,
		Pairs:       TrianglePairs,
		FixedPoints: true,
	},
	NameQuarticDifference: {
		Name:        NameQuarticDifference,
		OEIS:        "A272850",
		Map:         quarticDifference,
		Pairs:       HalfRootPairs,
		FixedPoints: true,
	},
	NameScaledDifference: {
		Name:       NameScaledDifference,
		OEIS:       "A059722",
		Map:        scaledDifference,
		Pairs:      FullRootPairs,
		UseYValues: true,
	},
}

// Lookup resolves a catalog name to its Spec.
// Returns ErrUnknownFormula (wrapped with the name) if absent.
func Lookup(name string) (Spec, error) {
	spec, ok := catalog[name]
	if !ok {
		return Spec{}, fmt.Errorf("%w: %q", ErrUnknownFormula, name)
	}

	return spec, nil
}

// Names returns the catalog names in sorted order, for usage output.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// squareDifference: x = |a²−b²|, y = x·|b−a|.
// A pair of consecutive squares (b = a+1) gives y = x, so any x whose
// sole in-window representation is consecutive survives the fixed-point
// filter — exactly the odd primes.
func squareDifference(a, b int64) (int64, int64) {
	x := abs(a*a - b*b)

	return x, x * abs(b-a)
}

// sumOfSquares: x = a²+b², y = x·|x−(a+b)²| (A004431 exploration).
func sumOfSquares(a, b int64) (int64, int64) {
	x := a*a + b*b
	s := a + b

	return x, x * abs(x-s*s)
}

// centeredSquare: x = (a−1)²+(b−1)², y = x·|b−a| (A027862 exploration).
func centeredSquare(a, b int64) (int64, int64) {
	x := (a-1)*(a-1) + (b-1)*(b-1)

	return x, x * abs(b-a)
}

// quarticDifference: x = |a⁴−b⁴|·|a²−b²|, y = x·|b−a| (A272850).
func quarticDifference(a, b int64) (int64, int64) {
	a2, b2 := a*a, b*b
	x := abs(a2*a2-b2*b2) * abs(a2-b2)

	return x, x * abs(b-a)
}

// scaledDifference: x = b·|a−b|, y = x·(a²+b²) (A059722 exploration).
// Every x < end keeps its maximal weight at the consecutive pair
// (x−1, x), so max_y(x) = x·(2x²−2x+1).
func scaledDifference(a, b int64) (int64, int64) {
	x := b * abs(a-b)

	return x, x * (a*a + b*b)
}

// HalfRootPairs sweeps a ∈ [0, end/2), b ∈ (a, a+√end]: wide in a,
// narrow in b. Sufficient for difference-style formulas, where any
// disqualifying representation of x < end has pair distance ≤ √end.
func HalfRootPairs(end int64, visit func(a, b int64)) {
	root := isqrt(end)
	for a := int64(0); a < end/2; a++ {
		for b := a + 1; b <= a+root; b++ {
			visit(a, b)
		}
	}
}

// FullRootPairs sweeps a ∈ [0, end), b ∈ (a, a+√end]: the same narrow
// band as HalfRootPairs but over the whole a range, so the consecutive
// pair (x−1, x) is reached for every x < end. Required when the
// maximal weight of x sits at a large a.
func FullRootPairs(end int64, visit func(a, b int64)) {
	root := isqrt(end)
	for a := int64(0); a < end; a++ {
		for b := a + 1; b <= a+root; b++ {
			visit(a, b)
		}
	}
}

// TrianglePairs sweeps the full triangle a ∈ [0, end), b ∈ (a, end−a].
// O(end²) pairs; used by formulas whose representations are not
// distance-bounded.
func TrianglePairs(end int64, visit func(a, b int64)) {
	for a := int64(0); a < end; a++ {
		for b := a + 1; b <= end-a; b++ {
			visit(a, b)
		}
	}
}

// abs returns the absolute value of an int64.
func abs(x int64) int64 {
	if x < 0 {
		return -x
	}

	return x
}

// isqrt returns ⌊√n⌋ for n ≥ 0 using only integer arithmetic.
func isqrt(n int64) int64 {
	if n < 2 {
		return n
	}
	r := n / 2
	for {
		next := (r + n/r) / 2
		if next >= r {
			return r
		}
		r = next
	}
}
