package sections

import (
	"regexp"
	"strings"
)

// SynonymEntry maps one item key to the lowercase phrase variants that
// identify it when a label carries no explicit "Item N" reference.
type SynonymEntry struct {
	Key     Key
	Phrases []string
}

// SynonymTable is an ordered list of synonym entries. Order matters: the
// first entry whose phrase appears in a label wins, so more commonly labeled
// items should come first. Treat tables as read-only once built.
type SynonymTable []SynonymEntry

// DefaultSynonyms returns the phrase variants seen across 10-K filings.
// Phrases are stored pre-normalized (lowercase, no punctuation) so they can
// be matched against Normalize output directly.
func DefaultSynonyms() SynonymTable {
	return SynonymTable{
		{Item1, []string{
			"business", "our business", "the business", "overview",
			"company overview", "general", "general development of business",
			"description of business",
		}},
		{Item1A, []string{
			"risk factors", "risks", "principal risks", "key risks",
		}},
		{Item1B, []string{
			"unresolved staff comments", "unresolved sec staff comments",
		}},
		{Item1C, []string{
			"cybersecurity", "cyber security", "information security",
			"security risks", "cybersecurity risk management",
			"cybersecurity governance", "cybersecurity threats",
		}},
		{Item2, []string{
			"properties", "real estate", "facilities",
		}},
		{Item3, []string{
			"legal proceedings", "litigation", "legal matters",
		}},
		{Item4, []string{
			"mine safety disclosures", "mine safety",
		}},
		{Item5, []string{
			"market for registrant", "market for common equity",
			"stockholder matters",
		}},
		{Item6, []string{
			"selected financial data", "selected consolidated financial data",
		}},
		{Item7, []string{
			"managements discussion and analysis", "mda",
			"management discussion and analysis",
			"financial condition and results", "managements discussion",
			"results of operations",
		}},
		{Item7A, []string{
			"quantitative and qualitative disclosures about market risk",
			"market risk", "quantitative disclosures",
			"market risk disclosures",
		}},
		{Item8, []string{
			"financial statements", "consolidated financial statements",
			"financial statements and supplementary data",
		}},
		{Item9, []string{
			"changes in and disagreements",
			"accounting and financial disclosure",
		}},
		{Item9A, []string{
			"controls and procedures", "disclosure controls and procedures",
		}},
		{Item9B, []string{
			"other information",
		}},
	}
}

// explicitPattern finds "item" followed by a number and an optional trailing
// letter in normalized label text.
var explicitPattern = regexp.MustCompile(`item\s*(\d+)([a-z]?)`)

// Classifier decides whether a text label names an item section. The
// explicit "Item N" form is tried first; the synonym table second.
type Classifier struct {
	synonyms SynonymTable
}

// NewClassifier builds a classifier over the given synonym table. Pass
// DefaultSynonyms() unless a run needs a custom taxonomy.
func NewClassifier(table SynonymTable) *Classifier {
	return &Classifier{synonyms: table}
}

// Classify maps label text to an item key. Explicit references win over
// synonym matches. The second return is false when the label names no known
// section.
func (c *Classifier) Classify(label string) (Key, bool) {
	normalized := Normalize(label)
	if key, ok := classifyExplicit(normalized); ok {
		return key, true
	}
	return c.classifySemantic(normalized)
}

// classifyExplicit synthesizes a key from an "item N[letter]" reference. Any
// number/letter combination is accepted, even ones outside the known
// universe, so that every labeled item can serve as a boundary marker.
func classifyExplicit(normalized string) (Key, bool) {
	m := explicitPattern.FindStringSubmatch(normalized)
	if m == nil {
		return "", false
	}
	return makeKey(m[1], m[2]), true
}

// classifySemantic scans the synonym table for a phrase contained in the
// label. The first matching entry wins; ambiguous labels resolve by table
// order.
func (c *Classifier) classifySemantic(normalized string) (Key, bool) {
	for _, entry := range c.synonyms {
		for _, phrase := range entry.Phrases {
			if strings.Contains(normalized, phrase) {
				return entry.Key, true
			}
		}
	}
	return "", false
}
