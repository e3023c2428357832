package sections

import "strings"

// maxSectionWords is the largest plausible single-section size. A section
// bigger than this almost always means a boundary was missed and the walk
// swallowed the rest of the filing.
const maxSectionWords = 30000

// fallbackNeeded decides whether a structural extraction is trustworthy
// enough to keep. It rejects the result when nothing was extracted, when
// half or fewer of the targets produced content, or when any one section is
// implausibly large. A heuristic, not a proof: it prefers discarding a weak
// structural result over accepting a wrong one.
func fallbackNeeded(extracted map[Key]string, targets []Key) bool {
	if len(extracted) == 0 {
		return true
	}

	found := 0
	for _, t := range targets {
		if extracted[t] != "" {
			found++
		}
	}
	if found <= len(targets)/2 {
		return true
	}

	for _, text := range extracted {
		if len(strings.Fields(text)) > maxSectionWords {
			return true
		}
	}
	return false
}
