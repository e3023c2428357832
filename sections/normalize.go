package sections

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var punctuation = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)

// Normalize canonicalizes label text for comparison: Unicode canonical
// decomposition, non-breaking spaces to ordinary spaces, lowercase, strip
// punctuation, collapse runs of whitespace. Idempotent, and empty input
// yields empty output.
func Normalize(s string) string {
	s = norm.NFKD.String(s)
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.ToLower(s)
	s = punctuation.ReplaceAllString(s, "")
	return strings.Join(strings.Fields(s), " ")
}
