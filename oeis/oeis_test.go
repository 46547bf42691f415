package oeis_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/katalvlaran/intseq/oeis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// a065091Head is a faithful b-file prefix for the odd primes,
// including the comment header real b-files carry.
const a065091Head = `# A065091: odd primes
1 3
2 5
3 7
4 11
5 13
`

// TestParseBFile_Basic parses a well-formed prefix.
func TestParseBFile_Basic(t *testing.T) {
	seq, err := oeis.ParseBFile(strings.NewReader(a065091Head))
	require.NoError(t, err)

	assert.Equal(t, 5, seq.Len())
	assert.Equal(t, []int64{3, 5, 7, 11, 13}, seq.Values())

	idx, ok := seq.IndexOf(11)
	require.True(t, ok)
	assert.Equal(t, int64(4), idx)
	assert.False(t, seq.Contains(9))
}

// TestParseBFile_Tolerance skips comments, blanks, and garbage rows,
// and keeps the first index for duplicate values.
func TestParseBFile_Tolerance(t *testing.T) {
	raw := `
# leading comment

1 3
not a data row
2 five
3
4 7 extra
2 5
9 3
`
	seq, err := oeis.ParseBFile(strings.NewReader(raw))
	require.NoError(t, err)

	assert.Equal(t, []int64{3, 5, 3}, seq.Values(), "only parseable pairs survive")
	idx, ok := seq.IndexOf(3)
	require.True(t, ok)
	assert.Equal(t, int64(1), idx, "first index wins on duplicates")
}

// TestParseBFile_Empty yields an empty sequence, not an error.
func TestParseBFile_Empty(t *testing.T) {
	seq, err := oeis.ParseBFile(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, seq.Len())
	assert.False(t, seq.Contains(0))
}

// TestCompare_CleanMatch: every computed value catalogued, no offset.
func TestCompare_CleanMatch(t *testing.T) {
	ref, err := oeis.ParseBFile(strings.NewReader(a065091Head))
	require.NoError(t, err)

	report := oeis.Compare([]int64{3, 5, 7, 11, 13}, ref)
	assert.Equal(t, 0, report.InitialOffset)
	assert.Empty(t, report.Differences)
	assert.Equal(t, 5, report.Matched)
	assert.True(t, report.Clean())
}

// TestCompare_InitialOffset counts leading absentees before the first
// hit, as the research scripts report.
func TestCompare_InitialOffset(t *testing.T) {
	ref, err := oeis.ParseBFile(strings.NewReader(a065091Head))
	require.NoError(t, err)

	report := oeis.Compare([]int64{1, 2, 3, 5, 7}, ref)
	assert.Equal(t, 2, report.InitialOffset, "1 and 2 precede the first match")
	assert.Empty(t, report.Differences)
	assert.True(t, report.Clean())
}

// TestCompare_Differences flags post-alignment divergence.
func TestCompare_Differences(t *testing.T) {
	ref, err := oeis.ParseBFile(strings.NewReader(a065091Head))
	require.NoError(t, err)

	report := oeis.Compare([]int64{3, 5, 9, 11, 15}, ref)
	assert.Equal(t, 0, report.InitialOffset)
	assert.Equal(t, []int64{9, 15}, report.Differences)
	assert.Equal(t, 3, report.Matched)
	assert.False(t, report.Clean())
	assert.True(t, report.AnyMatch())
}

// TestCompare_NoMatch: everything lands in the offset, nothing aligns.
func TestCompare_NoMatch(t *testing.T) {
	ref, err := oeis.ParseBFile(strings.NewReader(a065091Head))
	require.NoError(t, err)

	report := oeis.Compare([]int64{4, 6, 8}, ref)
	assert.Equal(t, 3, report.InitialOffset)
	assert.False(t, report.AnyMatch())
	assert.False(t, report.Clean())

	assert.Equal(t, oeis.Report{}, oeis.Compare(nil, ref), "empty input, zero report")
}

// TestFetchBFile_Success serves a b-file from httptest and checks the
// request path construction.
func TestFetchBFile_Success(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(a065091Head))
	}))
	defer srv.Close()

	c := oeis.NewClient()
	c.BaseURL = srv.URL

	seq, err := c.FetchBFile(context.Background(), "A065091")
	require.NoError(t, err)
	assert.Equal(t, "/A065091/b065091.txt", gotPath)
	assert.Equal(t, []int64{3, 5, 7, 11, 13}, seq.Values())
}

// TestFetchBFile_BadANumber rejects malformed identifiers before any
// request is made.
func TestFetchBFile_BadANumber(t *testing.T) {
	c := oeis.NewClient()
	c.BaseURL = "http://127.0.0.1:0" // must never be contacted

	for _, id := range []string{"", "65091", "A65091", "B065091", "A0650911"} {
		_, err := c.FetchBFile(context.Background(), id)
		assert.ErrorIs(t, err, oeis.ErrBadANumber, "id=%q", id)
	}
}

// TestFetchBFile_HTTPFailure maps non-200 statuses to ErrFetch.
func TestFetchBFile_HTTPFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := oeis.NewClient()
	c.BaseURL = srv.URL

	_, err := c.FetchBFile(context.Background(), "A065091")
	assert.ErrorIs(t, err, oeis.ErrFetch)
}

// TestFetchBFile_TransportFailure maps connection errors to ErrFetch.
func TestFetchBFile_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // refuse connections

	c := oeis.NewClient()
	c.BaseURL = srv.URL

	_, err := c.FetchBFile(context.Background(), "A065091")
	assert.ErrorIs(t, err, oeis.ErrFetch)
}
