// Package cli turns command-line flags into sequence generation runs
// with strict validate-then-emit semantics: all input validation
// completes before a single line of output is produced.
//
// Exit codes:
//
//	0 — successful generation (an empty sequence is a success)
//	2 — invalid invocation (bad flags, unparseable endpoints, start > end)
//	3 — unknown predicate or formula name
//	4 — anything else (should not happen in normal operation)
//
// Run is the testable entrypoint; cmd/intseq wires it to the process.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/intseq/formula"
	"github.com/katalvlaran/intseq/predicate"
	"github.com/katalvlaran/intseq/seq"
)

// Semantic exit codes for cmd/intseq.
const (
	ExitSuccess      = 0
	ExitInvalidRange = 2
	ExitUnknownName  = 3
	ExitInternal     = 4
)

// ErrUsage covers invocation mistakes that are neither a range nor a
// name problem (e.g. mutually exclusive flags). Reported with the
// invalid-invocation exit code.
var ErrUsage = errors.New("cli: invalid invocation")

// invocation is the fully parsed, validated description of a run.
type invocation struct {
	rng        seq.Range
	pred       string
	form       string
	halfOpen   bool
	zeroIndex  bool
	valuesOnly bool
}

// Run parses args (excluding argv[0]), generates, and prints entries
// to stdout as "[index] value" lines ("value" alone with -values-only).
// Errors go to stderr; the return value is the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	inv, err := parseArgs(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stderr, "intseq:", err)
		}

		return exitCode(err)
	}

	entries, err := generate(inv)
	if err != nil {
		fmt.Fprintln(stderr, "intseq:", err)

		return exitCode(err)
	}

	for _, e := range entries {
		if inv.valuesOnly {
			fmt.Fprintln(stdout, e.Value)
		} else {
			fmt.Fprintf(stdout, "[%d] %d\n", e.Index, e.Value)
		}
	}

	return ExitSuccess
}

// parseArgs canonicalizes flags into an invocation. Unparseable
// -start/-end endpoints surface as ErrInvalidRange-class failures;
// every other flag-set error (unknown flags, bad booleans) is an
// ErrUsage-class failure. Only -h prints to stderr via usage.
func parseArgs(args []string, stderr io.Writer) (invocation, error) {
	fs := flag.NewFlagSet("intseq", flag.ContinueOnError)
	fs.SetOutput(io.Discard) // parse errors are returned, not printed

	var inv invocation
	// Endpoints parse as strings so that bad integer syntax can be
	// told apart from other flag-set errors below. flag's own errors
	// are opaque strings with no wrapped sentinel to branch on.
	start := fs.String("start", "1", "range start (inclusive)")
	end := fs.String("end", "0", "range end (inclusive unless -half-open)")
	fs.StringVar(&inv.pred, "p", "", "predicate name: "+joined(predicate.Names()))
	fs.StringVar(&inv.form, "formula", "", "formula name: "+joined(formula.Names()))
	fs.BoolVar(&inv.halfOpen, "half-open", false, "treat the range as [start, end)")
	fs.BoolVar(&inv.zeroIndex, "zero-index", false, "0-based entry indices")
	fs.BoolVar(&inv.valuesOnly, "values-only", false, "print bare values without indices")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stderr)
			fs.Usage()

			return invocation{}, err
		}

		return invocation{}, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	var err error
	if inv.rng.Start, err = strconv.ParseInt(*start, 10, 64); err != nil {
		return invocation{}, fmt.Errorf("%w: -start %q is not an integer", seq.ErrInvalidRange, *start)
	}
	if inv.rng.End, err = strconv.ParseInt(*end, 10, 64); err != nil {
		return invocation{}, fmt.Errorf("%w: -end %q is not an integer", seq.ErrInvalidRange, *end)
	}

	if inv.pred == "" && inv.form == "" {
		inv.pred = predicate.NamePrime
	}
	if inv.pred != "" && inv.form != "" {
		return invocation{}, fmt.Errorf("%w: -p and -formula are mutually exclusive", ErrUsage)
	}

	return inv, nil
}

// generate routes the invocation to the predicate scan or the formula
// pipeline. Every validation error fires before any entry exists.
func generate(inv invocation) ([]seq.Entry, error) {
	origin := int64(1)
	if inv.zeroIndex {
		origin = 0
	}

	if inv.form != "" {
		spec, err := formula.Lookup(inv.form)
		if err != nil {
			return nil, err
		}
		opts := spec.Options()
		opts.IndexOrigin = origin
		// The formula table is built on a half-open window; extend the
		// bound so -end stays inclusive unless -half-open was given.
		r := inv.rng
		if !inv.halfOpen {
			if r.End < r.Start {
				return nil, seq.ErrInvalidRange
			}
			if r.End == math.MaxInt64 {
				return nil, fmt.Errorf("%w: inclusive -end %d has no half-open bound", seq.ErrInvalidRange, r.End)
			}
			r.End++
		}

		return formula.Sequence(r, spec, &opts)
	}

	opts := seq.DefaultOptions()
	opts.HalfOpen = inv.halfOpen
	opts.IndexOrigin = origin

	return seq.CollectNamed(inv.rng, inv.pred, &opts)
}

// exitCode maps error classes to process exit codes.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, flag.ErrHelp):
		return ExitSuccess
	case errors.Is(err, seq.ErrInvalidRange), errors.Is(err, ErrUsage):
		return ExitInvalidRange
	case errors.Is(err, predicate.ErrUnknownPredicate),
		errors.Is(err, formula.ErrUnknownFormula):
		return ExitUnknownName
	default:
		return ExitInternal
	}
}

// joined renders a name list for flag usage text.
func joined(names []string) string {
	return strings.Join(names, "|")
}
