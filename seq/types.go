package seq

import "errors"

// Sentinel errors for sequence generation. Branch with errors.Is.
var (
	// ErrInvalidRange is returned when Start > End under the configured
	// bound convention. Reported before any generation begins.
	ErrInvalidRange = errors.New("seq: invalid range, start must not exceed end")

	// ErrNilPredicate is returned when Generate receives a nil predicate.
	ErrNilPredicate = errors.New("seq: predicate is nil")

	// ErrBadOption is returned when an Options field is outside its
	// documented domain (IndexOrigin not 0/1, negative workers, …).
	ErrBadOption = errors.New("seq: invalid option supplied")
)

// Range is a bounded interval of integers to scan. Inclusive of both
// ends by default; Options.HalfOpen drops End, matching the
// n_start ≤ x < n_end convention of OEIS b-file tooling.
type Range struct {
	Start int64
	End   int64
}

// Entry pairs a qualifying integer with its position among qualifiers,
// aligned to the configured index origin (OEIS offset conventions).
type Entry struct {
	Index int64
	Value int64
}

// DefaultSieveThreshold is the range span at which GenerateNamed swaps
// trial division for a memoized sieve on primality-backed predicates.
const DefaultSieveThreshold = 10_000

// Options tunes generation. The zero value is NOT the default; use
// DefaultOptions (a nil *Options in Generate means DefaultOptions).
//
// Fields:
//   - HalfOpen     — treat Range as [Start, End) instead of [Start, End].
//   - IndexOrigin  — 0 or 1 (default 1): origin of Entry.Index, matching
//     the OEIS offset of the sequence being reproduced.
//   - SieveThreshold — span at which primality-backed named predicates
//     switch to a sieve; ≤ 0 keeps the default.
//   - SieveWorkers — workers for partitioned sieve construction; 1
//     (default) builds serially. Purely a construction-time knob, the
//     generated sequence is identical either way.
type Options struct {
	HalfOpen       bool
	IndexOrigin    int64
	SieveThreshold int64
	SieveWorkers   int
}

// DefaultOptions returns the canonical defaults: inclusive bounds,
// 1-based indexing, DefaultSieveThreshold, serial sieve construction.
func DefaultOptions() Options {
	return Options{
		IndexOrigin:    1,
		SieveThreshold: DefaultSieveThreshold,
		SieveWorkers:   1,
	}
}

// resolve applies defaulting and validates the option domain.
func resolve(opts *Options) (Options, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
		if o.SieveThreshold <= 0 {
			o.SieveThreshold = DefaultSieveThreshold
		}
		if o.SieveWorkers == 0 {
			o.SieveWorkers = 1
		}
	}
	if o.IndexOrigin != 0 && o.IndexOrigin != 1 {
		return o, ErrBadOption
	}
	if o.SieveWorkers < 1 {
		return o, ErrBadOption
	}

	return o, nil
}
