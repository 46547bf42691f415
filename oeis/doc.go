// Package oeis parses OEIS b-files and cross-checks locally computed
// sequences against them, reporting initial offsets and post-alignment
// differences.
//
// What
//
//   - ParseBFile reads the standard OEIS b-file format ("index value"
//     per line) from any io.Reader, tolerating comments, blank lines,
//     and malformed rows. The first index recorded per value wins.
//   - Client fetches a b-file for an A-number over HTTP
//     (https://oeis.org/A065091/b065091.txt); both the endpoint and
//     the underlying http.Client are replaceable for tests.
//   - Compare walks a computed sequence in order against a reference:
//     the number of leading values absent from the reference is the
//     initial offset, and any later absentee is a difference. A clean
//     report (offset explained, no differences) means the computation
//     reproduces the catalogued sequence over the inspected window.
//
// Determinism & I/O
//
//	Parsing and comparison are pure; only Client touches the network,
//	and nothing in this package performs I/O during comparison. Tests
//	run entirely against in-memory readers and httptest servers.
//
// Usage
//
//	ref, err := oeis.NewClient().FetchBFile(ctx, "A065091")
//	if err != nil { /* errors.Is(err, oeis.ErrFetch) — work offline */ }
//
//	report := oeis.Compare(values, ref)
//	if report.Clean() {
//	    // all computed values match after the initial offset
//	}
package oeis
