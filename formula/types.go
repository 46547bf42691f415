package formula

import "errors"

// Sentinel errors. Branch with errors.Is.
var (
	// ErrUnknownFormula is returned by Lookup for a name outside the
	// catalog.
	ErrUnknownFormula = errors.New("formula: unknown formula name")

	// ErrNilSpec is returned when Compute receives a Spec with a nil
	// Map or Pairs strategy.
	ErrNilSpec = errors.New("formula: spec is incomplete")

	// ErrBadOption is returned when an Options field is outside its
	// documented domain.
	ErrBadOption = errors.New("formula: invalid option supplied")
)

// Map is a binary combinatorial formula: an ordered pair a < b yields
// a candidate x and its weight y. Pairs mapping to y == 0 are ignored
// by Compute.
type Map func(a, b int64) (x, y int64)

// Pairs enumerates the pair space to sweep for a range bounded by end,
// invoking visit for every ordered pair a < b. Strategies are pure and
// deterministic.
type Pairs func(end int64, visit func(a, b int64))

// Spec bundles a named formula with its pair-sweep strategy and the
// OEIS sequence its fixed points reproduce.
type Spec struct {
	// Name is the catalog key (see the Name* constants).
	Name string
	// OEIS is the A-number of the sequence the survivors match.
	OEIS string
	// Map produces (x, y) candidates from pairs.
	Map Map
	// Pairs bounds the sweep for a given range end.
	Pairs Pairs
	// FixedPoints reports whether the canonical reading of this formula
	// keeps only x with max_y(x) == x. Explorations that publish every
	// table entry leave it false.
	FixedPoints bool
	// UseYValues reports whether the canonical reading publishes
	// max_y(x) instead of x for each survivor.
	UseYValues bool
}

// Options returns the canonical reading of the formula: the per-catalog
// filter flags with no truncation and 1-based indices. Pass the result
// (or a modified copy) to Survivors or Sequence.
func (s Spec) Options() Options {
	return Options{
		FixedPointsOnly: s.FixedPoints,
		UseYValues:      s.UseYValues,
		IndexOrigin:     1,
	}
}

// Table records the maximal y observed per x during a sweep.
type Table map[int64]int64

// Options tunes Survivors. Zero value is NOT the default; a nil
// *Options means DefaultOptions for Survivors and the formula's own
// Spec.Options for Sequence.
//
// Fields mirror the exploration flags of the original research runs:
//   - FixedPointsOnly — keep only x with max_y(x) == x (default true).
//     Disable to list every x the sweep reached, as the raw table
//     explorations do.
//   - StopAtIndex — if > 0, truncate the survivor list at that length.
//   - UseYValues  — report max_y(x) instead of x for each survivor
//     (only distinguishable with FixedPointsOnly disabled).
//   - ExcludeEven — drop even survivors.
//   - PrimesOnly  — keep only prime survivors.
//   - IndexOrigin — 0 or 1 (default 1) for survivor indices.
type Options struct {
	FixedPointsOnly bool
	StopAtIndex     int64
	UseYValues      bool
	ExcludeEven     bool
	PrimesOnly      bool
	IndexOrigin     int64
}

// DefaultOptions returns the canonical defaults: fixed points only, no
// truncation, report x values, no post-filters, 1-based indices.
func DefaultOptions() Options {
	return Options{FixedPointsOnly: true, IndexOrigin: 1}
}

// resolve applies defaulting and validates the option domain.
func resolve(opts *Options) (Options, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.IndexOrigin != 0 && o.IndexOrigin != 1 {
		return o, ErrBadOption
	}
	if o.StopAtIndex < 0 {
		return o, ErrBadOption
	}

	return o, nil
}
