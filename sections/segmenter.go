package sections

import (
	"errors"

	"github.com/PuerkitoBio/goquery"
)

// Method identifies which extraction strategy produced a result.
type Method string

const (
	// MethodStructural means boundaries came from the document's own
	// structure (navigation links or discovered header nodes).
	MethodStructural Method = "structural"
	// MethodPatternFallback means the structural result was rejected and the
	// sections were sliced out of the flattened text by regex.
	MethodPatternFallback Method = "pattern-fallback"
)

// ErrNilDocument is returned when Segment is handed no document. It is the
// only fatal condition: every "not found" outcome is an empty value, never
// an error.
var ErrNilDocument = errors.New("sections: nil document")

// Result is the outcome of segmenting one filing.
type Result struct {
	// Method records which strategy produced Sections.
	Method Method
	// Sections maps target keys to cleaned section text. Keys that yielded
	// no content are absent. An empty map is a legitimate terminal outcome,
	// not a failure.
	Sections map[Key]string
	// Found lists the target keys present in the anchor catalog, whether or
	// not they yielded content. Useful for reporting.
	Found []Key
}

// Segmenter runs the full multi-strategy extraction pipeline over parsed
// filings. It holds only immutable configuration, so one Segmenter may be
// reused across documents; each Segment call builds fresh state.
type Segmenter struct {
	classifier *Classifier
	targets    []Key
}

// NewSegmenter returns a segmenter with the default synonym table and
// target set.
func NewSegmenter() *Segmenter {
	return &Segmenter{
		classifier: NewClassifier(DefaultSynonyms()),
		targets:    Targets(),
	}
}

// Segment extracts the target sections from a parsed filing document.
//
// Anchors are discovered first (navigation links, then the text-scan
// fallback). Each target with an anchor is extracted up to the next
// discovered boundary. The quality gate then judges the result as a whole;
// on rejection the pattern fallback replaces it wholesale. The gate decision
// is computed once and reused as the result's method label, so the two can
// never disagree.
func (sg *Segmenter) Segment(doc *goquery.Document) (*Result, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}

	catalog := DiscoverAnchors(doc, sg.classifier)

	var found []Key
	for _, t := range sg.targets {
		if catalog.Contains(t) {
			found = append(found, t)
		}
	}

	extracted := make(map[Key]string)
	for _, anchor := range catalog.Anchors {
		if !isTarget(anchor.Key, sg.targets) {
			continue
		}
		var stopID string
		if stop, ok := catalog.NextBoundary(anchor.Key); ok {
			stopID = stop.BoundaryID
		}
		if text := extractSection(doc, catalog, sg.classifier, anchor, stopID); text != "" {
			extracted[anchor.Key] = text
		}
	}

	if fallbackNeeded(extracted, sg.targets) {
		return &Result{
			Method:   MethodPatternFallback,
			Sections: patternFallback(doc, sg.targets),
			Found:    found,
		}, nil
	}

	return &Result{
		Method:   MethodStructural,
		Sections: extracted,
		Found:    found,
	}, nil
}
