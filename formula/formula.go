package formula

import (
	"sort"

	"github.com/katalvlaran/intseq/predicate"
	"github.com/katalvlaran/intseq/seq"
)

// Compute sweeps spec's pair space for the range and returns the
// max_y table restricted to Start ≤ x < End (the half-open window the
// research scripts use for table construction). Pairs with y == 0 are
// discarded.
//
// Errors: ErrNilSpec for an incomplete spec, seq.ErrInvalidRange for
// Start > End — both reported before any sweeping.
func Compute(r seq.Range, spec Spec) (Table, error) {
	if spec.Map == nil || spec.Pairs == nil {
		return nil, ErrNilSpec
	}
	if r.Start > r.End {
		return nil, seq.ErrInvalidRange
	}

	table := make(Table)
	spec.Pairs(r.End, func(a, b int64) {
		x, y := spec.Map(a, b)
		if y == 0 || x < r.Start || x >= r.End {
			return
		}
		if y > table[x] {
			table[x] = y
		}
	})

	return table, nil
}

// Survivors extracts the fixed points max_y(x) == x from a table in
// ascending x (x == 1 always skipped; FixedPointsOnly=false keeps every
// swept x), applies the post-filters, and pairs each survivor with its
// index.
func Survivors(table Table, opts *Options) ([]seq.Entry, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	xs := make([]int64, 0, len(table))
	for x := range table {
		xs = append(xs, x)
	}
	sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })

	var entries []seq.Entry
	idx := o.IndexOrigin
	for _, x := range xs {
		y := table[x]
		if x == 1 {
			continue
		}
		if o.FixedPointsOnly && y != x {
			continue
		}
		value := x
		if o.UseYValues {
			value = y
		}
		if o.ExcludeEven && value%2 == 0 {
			continue
		}
		if o.PrimesOnly && !predicate.IsPrime(value) {
			continue
		}
		entries = append(entries, seq.Entry{Index: idx, Value: value})
		idx++
		if o.StopAtIndex > 0 && int64(len(entries)) == o.StopAtIndex {
			break
		}
	}

	return entries, nil
}

// Sequence is Compute followed by Survivors: the full pipeline from
// range + formula to an indexed sequence. A nil opts selects the
// formula's canonical reading, spec.Options() — not DefaultOptions,
// because catalog entries disagree on the fixed-point filter.
func Sequence(r seq.Range, spec Spec, opts *Options) ([]seq.Entry, error) {
	table, err := Compute(r, spec)
	if err != nil {
		return nil, err
	}
	if opts == nil {
		o := spec.Options()
		opts = &o
	}

	return Survivors(table, opts)
}
