package seq_test

import (
	"fmt"

	"github.com/katalvlaran/intseq/predicate"
	"github.com/katalvlaran/intseq/seq"
)

// ExampleCollectNamed reproduces the opening terms of OEIS A065091,
// the odd primes, with their 1-based indices.
//
// Scenario:
//
//	Range [1, 20], predicate "odd_prime", default options.
//
// Complexity: O(S·√End) with trial division (the span is far below the
// sieve threshold).
func ExampleCollectNamed() {
	entries, err := seq.CollectNamed(seq.Range{Start: 1, End: 20}, predicate.NameOddPrime, nil)
	if err != nil {
		fmt.Println("generate failed:", err)

		return
	}

	for _, e := range entries {
		fmt.Printf("[%d] %d\n", e.Index, e.Value)
	}
	// Output:
	// [1] 3
	// [2] 5
	// [3] 7
	// [4] 11
	// [5] 13
	// [6] 17
	// [7] 19
}

// ExampleGenerate streams lazily and stops after the first three
// abundant numbers — the rest of the range is never scanned.
func ExampleGenerate() {
	it, err := seq.Generate(seq.Range{Start: 1, End: 1_000_000}, predicate.IsAbundant, nil)
	if err != nil {
		fmt.Println("generate failed:", err)

		return
	}

	seen := 0
	for e := range it {
		fmt.Println(e.Value)
		seen++
		if seen == 3 {
			break
		}
	}
	// Output:
	// 12
	// 18
	// 20
}
