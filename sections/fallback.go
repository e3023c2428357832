package sections

import (
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// contextWindow is how many characters around a candidate header match are
// inspected when deciding whether the match really is a header.
const contextWindow = 100

// headerShapes are the contexts that qualify a candidate match as a section
// header rather than an in-text cross reference.
var headerShapes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)item\s*\d+[a-c]?\s*\.`),
	regexp.MustCompile(`(?i)^\s*item\s*\d+[a-c]?\s*`),
	regexp.MustCompile(`(?i)part\s*[iv]+\s*item\s*\d+[a-c]?`),
}

// letterSuffix spots a spaced trailing letter after a bare item number
// ("item 1 a"), meaning the match actually belongs to a lettered item.
var letterSuffix = regexp.MustCompile(`(?i)^\s*[a-c]\b`)

// headerPattern is one way a section header can appear in flattened text.
// bareNumber marks unlettered item-number patterns, which must reject
// matches that a spaced letter turns into a different item.
type headerPattern struct {
	re         *regexp.Regexp
	bareNumber bool
}

func pat(expr string) headerPattern {
	return headerPattern{re: regexp.MustCompile(`(?i)` + expr)}
}

func bare(expr string) headerPattern {
	return headerPattern{re: regexp.MustCompile(`(?i)` + expr), bareNumber: true}
}

// fallbackTable holds, per target item, the ordered header patterns the
// degraded extractor scans for. Earlier patterns are more reliable.
var fallbackTable = []struct {
	key      Key
	patterns []headerPattern
}{
	{Item1, []headerPattern{
		bare(`item\s*1\b`),
		pat(`business\s*$`),
		pat(`item\s*1\s*\.\s*business`),
	}},
	{Item1A, []headerPattern{
		pat(`item\s*1a\b`),
		pat(`risk\s*factors`),
		pat(`item\s*1\s*a\s*\.\s*risk`),
	}},
	{Item1B, []headerPattern{
		pat(`item\s*1b\b`),
		pat(`unresolved\s*staff\s*comments`),
		pat(`item\s*1\s*b\s*\.\s*unresolved`),
	}},
	{Item1C, []headerPattern{
		pat(`item\s*1c\b`),
		pat(`cybersecurity`),
		pat(`item\s*1\s*c\s*\.\s*cybersecurity`),
	}},
	{Item7, []headerPattern{
		bare(`item\s*7\b`),
		pat(`management'?s\s*discussion\s*and\s*analysis`),
		pat(`md&a`),
		pat(`item\s*7\s*\.\s*management`),
	}},
	{Item7A, []headerPattern{
		pat(`item\s*7a\b`),
		pat(`quantitative\s*and\s*qualitative\s*disclosures`),
		pat(`market\s*risk`),
		pat(`item\s*7\s*a\s*\.\s*quantitative`),
	}},
}

var entityRemnant = regexp.MustCompile(`&[a-zA-Z]+;`)

// patternFallback is the degraded extraction path: regex-scan the document's
// flattened text for section headers and slice the text between successive
// accepted matches. No structural validation happens here; the result is
// only as good as the header patterns.
func patternFallback(doc *goquery.Document, targets []Key) map[Key]string {
	allText := doc.Text()

	type boundary struct {
		key   Key
		start int
	}
	var boundaries []boundary

	for _, entry := range fallbackTable {
		if !isTarget(entry.key, targets) {
			continue
		}
		if start, ok := findHeader(allText, entry.patterns); ok {
			boundaries = append(boundaries, boundary{key: entry.key, start: start})
		}
	}

	// End offsets come from the next accepted header in document order; the
	// last section runs to the end of the text.
	sort.Slice(boundaries, func(i, j int) bool {
		return boundaries[i].start < boundaries[j].start
	})

	extracted := make(map[Key]string)
	for i, b := range boundaries {
		end := len(allText)
		if i+1 < len(boundaries) {
			end = boundaries[i+1].start
		}
		if text := cleanFlattened(allText[b.start:end]); text != "" {
			extracted[b.key] = text
		}
	}
	return extracted
}

// findHeader returns the start offset of the first candidate match whose
// surrounding context looks like a section header.
func findHeader(text string, patterns []headerPattern) (int, bool) {
	for _, p := range patterns {
		for _, loc := range p.re.FindAllStringIndex(text, -1) {
			if p.bareNumber && letterSuffix.MatchString(text[loc[1]:]) {
				continue
			}
			if isHeaderContext(text, loc[0], loc[1]) {
				return loc[0], true
			}
		}
	}
	return 0, false
}

// isHeaderContext checks a symmetric window around the match against the
// header shapes.
func isHeaderContext(text string, start, end int) bool {
	lo := start - contextWindow
	if lo < 0 {
		lo = 0
	}
	hi := end + contextWindow
	if hi > len(text) {
		hi = len(text)
	}
	window := text[lo:hi]
	for _, shape := range headerShapes {
		if shape.MatchString(window) {
			return true
		}
	}
	return false
}

// cleanFlattened strips HTML character-reference remnants and collapses
// whitespace in a slice of flattened document text.
func cleanFlattened(s string) string {
	s = entityRemnant.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}
