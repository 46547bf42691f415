// Package predicate provides pure, composable number-theoretic
// classifiers over int64, plus a fixed name registry for CLI and
// configuration lookup.
//
// What
//
//   - A Predicate is any func(int64) bool. No interfaces, no hierarchy:
//     functional polymorphism only.
//   - Classifiers: IsPrime, IsOddPrime, IsPerfect, IsAbundant,
//     IsDeficient, IsSquare, IsTriangular, IsOdd, IsEven.
//   - Combinators: And, Or, Not — build composite predicates such as
//     "odd AND prime" by conjunction, not inheritance.
//   - Registry: Lookup(name) resolves one of the enumerated Name*
//     constants; unknown names surface ErrUnknownPredicate.
//
// Contracts
//
//   - Every predicate is total over all of int64: out-of-domain inputs
//     return false rather than misbehaving. Primality is false for n < 2,
//     perfection/abundance/deficiency are false for n < 1.
//   - Every predicate is stateless and side-effect-free, hence safe to
//     invoke from any goroutine, in any order.
//
// Complexity
//
//   - IsPrime: O(√n) trial division on a 6k±1 wheel.
//   - Divisor-sum classifiers (perfect/abundant/deficient): O(√n).
//   - Parity/shape checks: O(1) (IsSquare and IsTriangular use integer
//     square roots, no floating point).
//
// Usage
//
//	p, err := predicate.Lookup(predicate.NameOddPrime)
//	if err != nil {
//	    // errors.Is(err, predicate.ErrUnknownPredicate)
//	}
//	p(19) // true
//
//	// Or compose by hand:
//	oddPrime := predicate.And(predicate.IsOdd, predicate.IsPrime)
//
// For bulk primality over a bounded range prefer sieve.Sieve, which the
// seq generator substitutes transparently.
package predicate
