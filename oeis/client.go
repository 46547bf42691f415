package oeis

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"time"
)

// Sentinel errors for fetching. Branch with errors.Is.
var (
	// ErrBadANumber is returned for an identifier not of the form
	// "A" followed by six digits.
	ErrBadANumber = errors.New("oeis: malformed A-number")

	// ErrFetch is returned when the b-file cannot be retrieved
	// (transport failure or non-200 status). Callers typically degrade
	// to offline operation, as the research scripts do.
	ErrFetch = errors.New("oeis: failed to fetch b-file")
)

// DefaultBaseURL is the public OEIS endpoint.
const DefaultBaseURL = "https://oeis.org"

// defaultTimeout bounds a fetch when the caller's context carries no
// deadline of its own.
const defaultTimeout = 5 * time.Second

var aNumberPattern = regexp.MustCompile(`^A\d{6}$`)

// Client fetches b-files. The zero value is NOT usable; construct with
// NewClient and override fields for tests (httptest server URL, custom
// transport).
type Client struct {
	// HTTPClient performs the requests.
	HTTPClient *http.Client
	// BaseURL is the endpoint root, DefaultBaseURL in production.
	BaseURL string
}

// NewClient returns a Client against the public OEIS endpoint with a
// bounded default timeout.
func NewClient() *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: defaultTimeout},
		BaseURL:    DefaultBaseURL,
	}
}

// FetchBFile retrieves and parses the b-file for aNumber ("A065091" →
// <base>/A065091/b065091.txt). Transport failures and non-200 statuses
// surface as ErrFetch (wrapped with detail); the body is parsed with
// the same tolerance as ParseBFile.
func (c *Client) FetchBFile(ctx context.Context, aNumber string) (Sequence, error) {
	if !aNumberPattern.MatchString(aNumber) {
		return Sequence{}, fmt.Errorf("%w: %q", ErrBadANumber, aNumber)
	}

	url := fmt.Sprintf("%s/%s/b%s.txt", c.BaseURL, aNumber, aNumber[1:])
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Sequence{}, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return Sequence{}, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Sequence{}, fmt.Errorf("%w: unexpected status %s", ErrFetch, resp.Status)
	}

	return ParseBFile(resp.Body)
}
