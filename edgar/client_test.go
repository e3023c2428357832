package edgar

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewClient_UserAgent verifies the contact address lands in the
// User-Agent header value
func TestNewClient_UserAgent(t *testing.T) {
	c := NewClient("filings@example.com", 0)
	assert.Equal(t, "edgarex/1.0 (filings@example.com)", c.UserAgent())

	anon := NewClient("", 0)
	assert.Equal(t, "edgarex/1.0 (nobody@example.com)", anon.UserAgent())
}

// TestFetchFiling verifies a successful fetch parses into a queryable
// document and sends the identifying User-Agent
func TestFetchFiling(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><body><h1>Annual Report</h1></body></html>`))
	}))
	defer server.Close()

	c := NewClient("filings@example.com", 0)
	doc, err := c.FetchFiling(server.URL)
	require.NoError(t, err)

	assert.Equal(t, "Annual Report", doc.Find("h1").Text())
	assert.Equal(t, "edgarex/1.0 (filings@example.com)", gotUA)
}

// TestFetchFiling_HTTPError verifies non-200 responses surface as a
// RetrievalError carrying the status code
func TestFetchFiling_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	c := NewClient("filings@example.com", 0)
	doc, err := c.FetchFiling(server.URL + "/missing.htm")
	assert.Nil(t, doc)

	var retrieval *RetrievalError
	require.ErrorAs(t, err, &retrieval)
	assert.Equal(t, http.StatusNotFound, retrieval.StatusCode)
	assert.Contains(t, retrieval.Error(), "HTTP 404")
}

// TestFetchFiling_TransportError verifies connection failures surface as a
// RetrievalError wrapping the underlying error
func TestFetchFiling_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	c := NewClient("filings@example.com", 0)
	_, err := c.FetchFiling(url)

	var retrieval *RetrievalError
	require.ErrorAs(t, err, &retrieval)
	assert.Zero(t, retrieval.StatusCode)
	assert.NotNil(t, errors.Unwrap(retrieval))
}
