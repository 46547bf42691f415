package oeis

// Report summarizes a comparison of a computed sequence against a
// catalogued reference.
type Report struct {
	// InitialOffset counts the leading computed values absent from the
	// reference before the first match — the alignment shift against
	// the catalogued offset.
	InitialOffset int
	// Differences lists computed values absent from the reference
	// after alignment (i.e. after the first match).
	Differences []int64
	// Matched counts computed values present in the reference.
	Matched int
}

// AnyMatch reports whether at least one computed value was found in
// the reference.
func (r Report) AnyMatch() bool { return r.Matched > 0 }

// Clean reports a fully explained comparison: some match was found and
// nothing diverged after alignment.
func (r Report) Clean() bool { return r.Matched > 0 && len(r.Differences) == 0 }

// Compare walks the computed values in order against ref. Values
// before the first reference hit accumulate into InitialOffset; values
// missing from the reference afterwards are Differences. Pure and
// deterministic; an empty input yields the zero Report.
func Compare(values []int64, ref Sequence) Report {
	var report Report
	matched := false
	for _, v := range values {
		if ref.Contains(v) {
			matched = true
			report.Matched++

			continue
		}
		if matched {
			report.Differences = append(report.Differences, v)
		} else {
			report.InitialOffset++
		}
	}

	return report
}
