package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/intseq/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI black-box and captures both streams.
func run(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = cli.Run(args, &out, &errOut)

	return code, out.String(), errOut.String()
}

// TestRun_OddPrimes is the canonical scenario: odd primes in [1, 20],
// printed as "[index] value" lines, exit 0.
func TestRun_OddPrimes(t *testing.T) {
	code, stdout, stderr := run(t, "-start", "1", "-end", "20", "-p", "odd_prime")

	assert.Equal(t, cli.ExitSuccess, code)
	assert.Empty(t, stderr)
	want := "[1] 3\n[2] 5\n[3] 7\n[4] 11\n[5] 13\n[6] 17\n[7] 19\n"
	assert.Equal(t, want, stdout)
}

// TestRun_DefaultPredicate falls back to "prime" when neither -p nor
// -formula is given.
func TestRun_DefaultPredicate(t *testing.T) {
	code, stdout, _ := run(t, "-start", "1", "-end", "10")

	assert.Equal(t, cli.ExitSuccess, code)
	assert.Equal(t, "[1] 2\n[2] 3\n[3] 5\n[4] 7\n", stdout)
}

// TestRun_EmptySequenceIsSuccess: no qualifying integers is still a
// clean exit with no output.
func TestRun_EmptySequenceIsSuccess(t *testing.T) {
	code, stdout, stderr := run(t, "-start", "1", "-end", "1", "-p", "prime")

	assert.Equal(t, cli.ExitSuccess, code)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)
}

// TestRun_InvalidRange: start > end exits 2 with no stdout at all.
func TestRun_InvalidRange(t *testing.T) {
	code, stdout, stderr := run(t, "-start", "10", "-end", "5")

	assert.Equal(t, cli.ExitInvalidRange, code)
	assert.Empty(t, stdout, "no partial output may precede a validation failure")
	assert.Contains(t, stderr, "invalid range")
}

// TestRun_UnparseableEndpoint: non-integer -end is an invalid range.
func TestRun_UnparseableEndpoint(t *testing.T) {
	code, stdout, _ := run(t, "-start", "1", "-end", "twenty")

	assert.Equal(t, cli.ExitInvalidRange, code)
	assert.Empty(t, stdout)
}

// TestRun_UnknownFlag: a flag the CLI does not define is an invocation
// mistake, not a range problem.
func TestRun_UnknownFlag(t *testing.T) {
	code, stdout, stderr := run(t, "-bogus", "-end", "10")

	assert.Equal(t, cli.ExitInvalidRange, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "invalid invocation")
	assert.NotContains(t, stderr, "invalid range")
}

// TestRun_UnknownPredicate exits 3 and names the offender on stderr.
func TestRun_UnknownPredicate(t *testing.T) {
	code, stdout, stderr := run(t, "-start", "1", "-end", "10", "-p", "mersenne")

	assert.Equal(t, cli.ExitUnknownName, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "mersenne")
}

// TestRun_UnknownFormula exits 3 as well.
func TestRun_UnknownFormula(t *testing.T) {
	code, _, stderr := run(t, "-start", "1", "-end", "10", "-formula", "cubic")

	assert.Equal(t, cli.ExitUnknownName, code)
	assert.Contains(t, stderr, "unknown formula")
}

// TestRun_MutuallyExclusiveSelectors rejects -p together with -formula.
func TestRun_MutuallyExclusiveSelectors(t *testing.T) {
	code, stdout, stderr := run(t, "-end", "10", "-p", "prime", "-formula", "square_difference")

	assert.Equal(t, cli.ExitInvalidRange, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "mutually exclusive")
}

// TestRun_FormulaPipeline generates A065091 through the formula path
// and matches the predicate path over the same inclusive range.
func TestRun_FormulaPipeline(t *testing.T) {
	code, viaFormula, stderr := run(t, "-start", "1", "-end", "100", "-formula", "square_difference")
	require.Equal(t, cli.ExitSuccess, code, "stderr: %s", stderr)

	code, viaPredicate, _ := run(t, "-start", "1", "-end", "100", "-p", "odd_prime")
	require.Equal(t, cli.ExitSuccess, code)

	assert.Equal(t, viaPredicate, viaFormula, "both paths print the odd primes in [1, 100]")
}

// TestRun_SumOfSquaresFormula: the whole-table catalog entry prints its
// values through the CLI, inclusive -end.
func TestRun_SumOfSquaresFormula(t *testing.T) {
	code, stdout, stderr := run(t, "-start", "1", "-end", "37", "-formula", "sum_of_squares", "-values-only")

	require.Equal(t, cli.ExitSuccess, code, "stderr: %s", stderr)
	assert.Equal(t, "5\n10\n13\n17\n20\n25\n26\n29\n34\n37\n", stdout)
}

// TestRun_FormulaEndOverflow: an inclusive -end at the int64 ceiling
// cannot be widened to a half-open bound and is rejected up front.
func TestRun_FormulaEndOverflow(t *testing.T) {
	code, stdout, stderr := run(t, "-start", "1", "-end", "9223372036854775807", "-formula", "square_difference")

	assert.Equal(t, cli.ExitInvalidRange, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "invalid range")
}

// TestRun_HalfOpenAndZeroIndex exercises the bound and origin flags.
func TestRun_HalfOpenAndZeroIndex(t *testing.T) {
	code, stdout, _ := run(t, "-start", "1", "-end", "19", "-p", "odd_prime", "-half-open", "-zero-index")

	assert.Equal(t, cli.ExitSuccess, code)
	assert.Equal(t, "[0] 3\n[1] 5\n[2] 7\n[3] 11\n[4] 13\n[5] 17\n", stdout, "19 excluded, 0-based")
}

// TestRun_ValuesOnly prints bare values.
func TestRun_ValuesOnly(t *testing.T) {
	code, stdout, _ := run(t, "-start", "1", "-end", "30", "-p", "perfect", "-values-only")

	assert.Equal(t, cli.ExitSuccess, code)
	assert.Equal(t, "6\n28\n", stdout)
}

// TestRun_Help prints usage to stderr and exits 0.
func TestRun_Help(t *testing.T) {
	code, stdout, stderr := run(t, "-h")

	assert.Equal(t, cli.ExitSuccess, code)
	assert.Empty(t, stdout)
	assert.True(t, strings.Contains(stderr, "-start"), "usage should list flags")
}
