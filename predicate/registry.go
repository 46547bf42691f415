package predicate

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownPredicate is returned by Lookup for a name outside the
// enumerated set. Branch with errors.Is; the wrapped message carries
// the offending name.
var ErrUnknownPredicate = errors.New("predicate: unknown predicate name")

// Canonical predicate names, the full enumerated set accepted by Lookup
// and by the CLI's -p flag.
const (
	// NamePrime selects IsPrime.
	NamePrime = "prime"
	// NameOddPrime selects IsOddPrime (OEIS A065091).
	NameOddPrime = "odd_prime"
	// NamePerfect selects IsPerfect.
	NamePerfect = "perfect"
	// NameAbundant selects IsAbundant.
	NameAbundant = "abundant"
	// NameDeficient selects IsDeficient.
	NameDeficient = "deficient"
	// NameSquare selects IsSquare.
	NameSquare = "square"
	// NameTriangular selects IsTriangular.
	NameTriangular = "triangular"
	// NameOdd selects IsOdd.
	NameOdd = "odd"
	// NameEven selects IsEven.
	NameEven = "even"
)

// registry is fixed at init and never mutated afterwards, so concurrent
// Lookup calls need no locking.
var registry = map[string]Predicate{
	NamePrime:      IsPrime,
	NameOddPrime:   IsOddPrime,
	NamePerfect:    IsPerfect,
	NameAbundant:   IsAbundant,
	NameDeficient:  IsDeficient,
	NameSquare:     IsSquare,
	NameTriangular: IsTriangular,
	NameOdd:        IsOdd,
	NameEven:       IsEven,
}

// Lookup resolves a canonical name to its Predicate.
// Returns ErrUnknownPredicate (wrapped with the name) if absent.
func Lookup(name string) (Predicate, error) {
	p, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPredicate, name)
	}

	return p, nil
}

// MustLookup is Lookup for the canonical Name* constants; it panics on
// an unknown name and is intended for static selections in examples and
// wiring code, never for user input.
func MustLookup(name string) Predicate {
	p, err := Lookup(name)
	if err != nil {
		panic(err)
	}

	return p
}

// Names returns the enumerated predicate names in sorted order,
// suitable for usage/help output.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// PrimalityBacked reports whether the named predicate is defined in
// terms of primality. The seq generator uses this to substitute a
// memoized sieve on large ranges without changing observable output.
func PrimalityBacked(name string) bool {
	return name == NamePrime || name == NameOddPrime
}
