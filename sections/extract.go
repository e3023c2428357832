package sections

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const (
	// minFragmentLen filters out decorative fragments (page numbers,
	// horizontal-rule captions) during sibling walks.
	minFragmentLen = 10
	// minOwnTextLen applies when falling back to the start node's own text,
	// which holds the section header and so needs more substance.
	minOwnTextLen = 50
)

// extractSection collects the cleaned text between a start anchor and an
// optional stop boundary id. It returns "" when the start boundary cannot be
// located or nothing substantial is found between the boundaries.
func extractSection(doc *goquery.Document, cat *Catalog, cls *Classifier, start Anchor, stopID string) string {
	startSel := resolveBoundary(doc, cat, start.BoundaryID)
	if startSel == nil {
		return ""
	}

	var stop *html.Node
	if stopID != "" {
		if stopSel := resolveBoundary(doc, cat, stopID); stopSel != nil {
			stop = stopSel.Get(0)
		}
	}

	if start.Synthetic {
		return extractTextScan(cls, startSel, stop)
	}
	return extractStructural(startSel, stop)
}

// resolveBoundary locates the node a boundary id refers to. Synthetic ids
// resolve through the catalog's side table; document ids are tried as an id
// attribute (case-sensitive, then case-insensitive), then as the name
// attribute of a link, then as a name attribute on anything.
func resolveBoundary(doc *goquery.Document, cat *Catalog, id string) *goquery.Selection {
	if n, ok := cat.syntheticNode(id); ok {
		return doc.FindNodes(n)
	}
	if sel := findByAttr(doc, "[id]", "id", id); sel != nil {
		return sel
	}
	if sel := findByAttr(doc, "a[name]", "name", id); sel != nil {
		return sel
	}
	return findByAttr(doc, "[name]", "name", id)
}

// findByAttr finds the first node matching selector whose attr equals want,
// preferring an exact match over a case-insensitive one.
func findByAttr(doc *goquery.Document, selector, attr, want string) *goquery.Selection {
	var exact, folded *goquery.Selection
	doc.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		v := s.AttrOr(attr, "")
		if v == want {
			exact = s
			return false
		}
		if folded == nil && strings.EqualFold(v, want) {
			folded = s
		}
		return true
	})
	if exact != nil {
		return exact
	}
	return folded
}

// extractStructural walks forward through sibling nodes from a boundary
// discovered via navigation links, collecting visible text until the stop
// node. Filings differ in how they place anchors relative to content, hence
// the ladder of retries: parent-level walk for bare <a> anchors, the start
// node's own text, then a parent-level walk for everything else.
func extractStructural(start *goquery.Selection, stop *html.Node) string {
	nodeName := goquery.NodeName(start)

	// An <a name> anchor with visible text of its own is part of the
	// section; start the walk at the anchor itself. An empty one is a pure
	// position marker, so start just past it.
	var cur *goquery.Selection
	if nodeName == "a" && start.AttrOr("name", "") != "" && visibleText(start) != "" {
		cur = start
	} else {
		cur = start.Next()
	}

	parts := collectSiblings(cur, stop)

	if len(parts) == 0 && nodeName == "a" {
		if parent := start.Parent(); parent.Length() > 0 {
			parts = collectSiblings(parent.Next(), stop)
		}
	}

	if len(parts) == 0 && nodeName != "a" {
		if text := visibleText(start); len(text) > minOwnTextLen {
			parts = append(parts, text)
		}
	}

	if len(parts) == 0 {
		if parent := start.Parent(); parent.Length() > 0 {
			parts = collectSiblings(parent.Next(), stop)
		}
	}

	return joinFragments(parts)
}

// extractTextScan walks siblings of a boundary discovered by the text scan.
// Because that discovery pass can miss legitimate boundaries, the walk also
// stops early at any sibling whose own text classifies as a section header.
func extractTextScan(cls *Classifier, start *goquery.Selection, stop *html.Node) string {
	startNode := start.Get(0)

	cur := start.Next()
	if cur.Length() == 0 {
		if parent := start.Parent(); parent.Length() > 0 {
			cur = parent.Next()
		}
	}

	var parts []string
	for ; cur.Length() > 0; cur = cur.Next() {
		node := cur.Get(0)
		if stop != nil && node == stop {
			break
		}

		text := visibleText(cur)
		if text != "" && len(text) < headerLengthMax && node != startNode {
			if _, ok := cls.Classify(text); ok {
				break
			}
		}
		if len(text) > minFragmentLen {
			parts = append(parts, text)
		}
	}

	return joinFragments(parts)
}

// collectSiblings gathers the visible text of cur and its following siblings
// until the stop node or the end of the sibling chain.
func collectSiblings(cur *goquery.Selection, stop *html.Node) []string {
	var parts []string
	for ; cur.Length() > 0; cur = cur.Next() {
		if stop != nil && cur.Get(0) == stop {
			break
		}
		if text := visibleText(cur); len(text) > minFragmentLen {
			parts = append(parts, text)
		}
	}
	return parts
}

func joinFragments(parts []string) string {
	return strings.TrimSpace(strings.Join(parts, "\n\n"))
}
