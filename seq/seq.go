package seq

import (
	"iter"
	"math"

	"github.com/katalvlaran/intseq/predicate"
	"github.com/katalvlaran/intseq/sieve"
)

// Generate returns a lazy iterator over the integers in r satisfying p,
// paired with their position among qualifiers. Values are strictly
// ascending and bounded by the range; the iterator is restartable
// (ranging twice yields the same sequence).
//
// Validation (nil predicate, inverted range, bad options) happens here,
// before any entry can be produced. A valid range with no qualifying
// integers yields an empty sequence, not an error.
//
// Example:
//
//	it, err := seq.Generate(seq.Range{Start: 1, End: 20}, predicate.IsOddPrime, nil)
func Generate(r Range, p predicate.Predicate, opts *Options) (iter.Seq[Entry], error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNilPredicate
	}
	if r.Start > r.End {
		return nil, ErrInvalidRange
	}

	end := r.End
	if o.HalfOpen {
		if end == math.MinInt64 {
			return emptySeq(), nil
		}
		end--
	}

	return scan(r.Start, end, o.IndexOrigin, p), nil
}

// GenerateNamed resolves name in the predicate registry and generates
// over r. For primality-backed names on spans of at least
// SieveThreshold, evaluation switches to a memoized sieve bounded by
// the range — the qualifying integers are identical with or without
// the substitution.
func GenerateNamed(r Range, name string, opts *Options) (iter.Seq[Entry], error) {
	p, err := predicate.Lookup(name)
	if err != nil {
		return nil, err
	}

	o, rerr := resolve(opts)
	if rerr != nil {
		return nil, rerr
	}
	if r.Start > r.End {
		return nil, ErrInvalidRange
	}

	end := r.End
	if o.HalfOpen {
		if end == math.MinInt64 {
			return emptySeq(), nil
		}
		end--
	}

	if predicate.PrimalityBacked(name) && end >= 2 && end-r.Start >= o.SieveThreshold {
		s, serr := sieve.NewParallel(end, o.SieveWorkers)
		if serr != nil {
			return nil, serr
		}
		p = s.Predicate()
		if name == predicate.NameOddPrime {
			p = predicate.And(predicate.IsOdd, p)
		}
	}

	return scan(r.Start, end, o.IndexOrigin, p), nil
}

// Collect eagerly materializes Generate's sequence.
func Collect(r Range, p predicate.Predicate, opts *Options) ([]Entry, error) {
	it, err := Generate(r, p, opts)
	if err != nil {
		return nil, err
	}

	return gather(it), nil
}

// CollectNamed eagerly materializes GenerateNamed's sequence.
func CollectNamed(r Range, name string, opts *Options) ([]Entry, error) {
	it, err := GenerateNamed(r, name, opts)
	if err != nil {
		return nil, err
	}

	return gather(it), nil
}

// Values projects entries onto their integer values.
func Values(entries []Entry) []int64 {
	vals := make([]int64, len(entries))
	for i, e := range entries {
		vals[i] = e.Value
	}

	return vals
}

// scan is the single iteration core shared by both entry points.
// It captures only immutable inputs, which is what makes the returned
// iterator restartable.
func scan(start, end, origin int64, p predicate.Predicate) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		idx := origin
		n := start
		for n <= end {
			if p(n) {
				if !yield(Entry{Index: idx, Value: n}) {
					return
				}
				idx++
			}
			if n == math.MaxInt64 {
				return // int64 wraparound guard at the top end
			}
			n++
		}
	}
}

// emptySeq yields nothing; used when bound arithmetic degenerates.
func emptySeq() iter.Seq[Entry] {
	return func(func(Entry) bool) {}
}

// gather drains an iterator into a slice.
func gather(it iter.Seq[Entry]) []Entry {
	var entries []Entry
	for e := range it {
		entries = append(entries, e)
	}

	return entries
}
