package predicate

// Predicate classifies an integer. Implementations must be pure:
// stateless, side-effect-free, and total over all of int64.
type Predicate func(n int64) bool

// And returns a predicate satisfied only when every p in ps is satisfied.
// With no arguments it is vacuously true.
func And(ps ...Predicate) Predicate {
	return func(n int64) bool {
		for _, p := range ps {
			if !p(n) {
				return false
			}
		}

		return true
	}
}

// Or returns a predicate satisfied when at least one p in ps is satisfied.
// With no arguments it is vacuously false.
func Or(ps ...Predicate) Predicate {
	return func(n int64) bool {
		for _, p := range ps {
			if p(n) {
				return true
			}
		}

		return false
	}
}

// Not returns the logical negation of p.
func Not(p Predicate) Predicate {
	return func(n int64) bool { return !p(n) }
}
