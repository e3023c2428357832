package sections

import (
	"fmt"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// headerLengthMax is the longest visible text still plausible as a section
// header. Anything longer is body text.
const headerLengthMax = 200

// headerCandidates are the node types scanned by the text-based discovery
// fallback.
const headerCandidates = "h1, h2, h3, h4, h5, h6, p, div, span, td, th"

// Anchor is one discovered section boundary: an item key plus a boundary id
// that can be resolved back to a position in the document.
type Anchor struct {
	Key        Key
	BoundaryID string
	// Synthetic marks ids invented by the text-scan fallback for nodes that
	// carried no id or name of their own. Synthetic ids resolve through the
	// catalog's side table rather than through document attributes.
	Synthetic bool
}

// Catalog is the ordered set of anchors discovered in one document, sorted
// by canonical item order. It is used for boundary lookups only; extraction
// order comes from the target set.
type Catalog struct {
	Anchors []Anchor

	// synthetic maps invented boundary ids to their nodes, so fallback
	// discovery never has to write ids into the caller's document.
	synthetic map[string]*html.Node
}

// syntheticNode returns the node a fallback-invented boundary id refers to.
func (c *Catalog) syntheticNode(id string) (*html.Node, bool) {
	n, ok := c.synthetic[id]
	return n, ok
}

// Contains reports whether the catalog discovered an anchor for key.
func (c *Catalog) Contains(key Key) bool {
	for _, a := range c.Anchors {
		if a.Key == key {
			return true
		}
	}
	return false
}

// DiscoverAnchors builds the anchor catalog for a document. The primary
// strategy classifies the label of every internal-fragment link (the filing's
// table of contents). When that yields nothing, a text scan over header-like
// nodes takes over. Either way the first anchor discovered for a key wins and
// later duplicates are ignored.
func DiscoverAnchors(doc *goquery.Document, cls *Classifier) *Catalog {
	cat := &Catalog{synthetic: make(map[string]*html.Node)}
	seen := make(map[Key]bool)

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href := strings.TrimSpace(a.AttrOr("href", ""))
		if !strings.HasPrefix(href, "#") {
			return
		}
		label := visibleText(a)
		if label == "" {
			return
		}
		key, ok := cls.Classify(label)
		if !ok || seen[key] {
			return
		}
		seen[key] = true
		cat.Anchors = append(cat.Anchors, Anchor{
			Key:        key,
			BoundaryID: strings.TrimPrefix(href, "#"),
		})
	})

	if len(cat.Anchors) == 0 {
		discoverByTextScan(doc, cls, cat, seen)
	}

	sort.SliceStable(cat.Anchors, func(i, j int) bool {
		return cat.Anchors[i].Key.Less(cat.Anchors[j].Key)
	})
	return cat
}

// discoverByTextScan finds section headers directly in the document body.
// Nodes that already carry an id or name are referenced by it; the rest get
// a synthetic id recorded in the catalog's side table.
func discoverByTextScan(doc *goquery.Document, cls *Classifier, cat *Catalog, seen map[Key]bool) {
	doc.Find(headerCandidates).Each(func(_ int, s *goquery.Selection) {
		text := visibleText(s)
		if text == "" || len(text) > headerLengthMax {
			return
		}
		key, ok := cls.Classify(text)
		if !ok || seen[key] {
			return
		}

		id := s.AttrOr("id", "")
		if id == "" {
			id = s.AttrOr("name", "")
		}
		synthetic := false
		if id == "" {
			id = fmt.Sprintf("section_%s_%d", key, len(cat.Anchors))
			cat.synthetic[id] = s.Get(0)
			synthetic = true
		}

		seen[key] = true
		cat.Anchors = append(cat.Anchors, Anchor{
			Key:        key,
			BoundaryID: id,
			Synthetic:  synthetic,
		})
	})
}

// visibleText returns a selection's text with all whitespace runs collapsed
// to single spaces.
func visibleText(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}
