package edgar

import (
	"fmt"
	"net/url"
	"regexp"
	"time"

	"github.com/mmcdole/gofeed"
)

// browseURL is EDGAR's company browse endpoint, which serves an Atom feed of
// a company's filings when output=atom is requested.
const browseURL = "https://www.sec.gov/cgi-bin/browse-edgar"

// Filing describes one entry from a company's filing feed.
type Filing struct {
	Title       string    `json:"title"`
	Form        string    `json:"form"`
	AccessionNo string    `json:"accession_no"`
	FilingDate  time.Time `json:"filing_date"`
	// IndexURL points at the filing's index page, which links to the primary
	// document.
	IndexURL string `json:"index_url"`
}

var accessionPattern = regexp.MustCompile(`\d{10}-\d{2}-\d{6}`)

// BrowseFeedURL builds the Atom feed URL for a company's filings of the
// given form type.
func BrowseFeedURL(cik, form string, count int) string {
	q := url.Values{}
	q.Set("action", "getcompany")
	q.Set("CIK", cik)
	q.Set("type", form)
	q.Set("owner", "include")
	q.Set("count", fmt.Sprintf("%d", count))
	q.Set("output", "atom")
	return browseURL + "?" + q.Encode()
}

// RecentFilings lists a company's recent filings of the given form type
// (e.g. "10-K") from the EDGAR Atom feed. limit caps the number of entries
// returned; zero or negative means all.
func (c *Client) RecentFilings(cik, form string, limit int) ([]Filing, error) {
	count := limit
	if count <= 0 {
		count = 40
	}
	return c.RecentFilingsFromURL(BrowseFeedURL(cik, form, count), limit)
}

// RecentFilingsFromURL parses a filing Atom feed at an explicit URL. The
// gofeed parser handles both Atom and RSS renditions transparently.
func (c *Client) RecentFilingsFromURL(feedURL string, limit int) ([]Filing, error) {
	fp := gofeed.NewParser()
	fp.UserAgent = c.userAgent

	feed, err := fp.ParseURL(feedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse filing feed: %w", err)
	}

	filings := make([]Filing, 0, len(feed.Items))
	for _, item := range feed.Items {
		if limit > 0 && len(filings) >= limit {
			break
		}
		filings = append(filings, feedItemToFiling(item))
	}
	return filings, nil
}

// feedItemToFiling maps one feed entry to a Filing. EDGAR encodes the form
// type in the entry's category term and the accession number in the entry
// id and link.
func feedItemToFiling(item *gofeed.Item) Filing {
	f := Filing{
		Title:    item.Title,
		IndexURL: item.Link,
	}

	if len(item.Categories) > 0 {
		f.Form = item.Categories[0]
	}

	if m := accessionPattern.FindString(item.GUID); m != "" {
		f.AccessionNo = m
	} else if m := accessionPattern.FindString(item.Link); m != "" {
		f.AccessionNo = m
	}

	if item.UpdatedParsed != nil {
		f.FilingDate = *item.UpdatedParsed
	} else if item.PublishedParsed != nil {
		f.FilingDate = *item.PublishedParsed
	}

	return f
}
