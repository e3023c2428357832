// Package edgar fetches filings and filing lists from SEC EDGAR. It is the
// I/O layer around the sections engine: all HTTP policy (user agent,
// timeouts, status handling) lives here, and the core never does I/O itself.
package edgar

import (
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout bounds a single filing fetch.
const DefaultTimeout = 30 * time.Second

// RetrievalError reports a failed document fetch: a transport error or a
// non-200 response.
type RetrievalError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *RetrievalError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: HTTP %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *RetrievalError) Unwrap() error { return e.Err }

// Client talks to SEC EDGAR. The SEC requires a User-Agent naming a contact
// address on every request, so construct clients through NewClient.
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient builds an EDGAR client. contact should be an e-mail address; the
// SEC blocks anonymous scrapers. A zero timeout means DefaultTimeout.
func NewClient(contact string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if contact == "" {
		contact = "nobody@example.com"
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  fmt.Sprintf("edgarex/1.0 (%s)", contact),
	}
}

// UserAgent returns the User-Agent header the client sends.
func (c *Client) UserAgent() string { return c.userAgent }

// FetchFiling downloads and parses one filing document. Any network or
// status failure comes back as a *RetrievalError.
func (c *Client) FetchFiling(url string) (*goquery.Document, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RetrievalError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &RetrievalError{URL: url, StatusCode: resp.StatusCode}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse filing HTML: %w", err)
	}
	return doc, nil
}
