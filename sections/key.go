// Package sections segments SEC 10-K filings into their named disclosure
// items. It discovers section boundaries from table-of-contents anchor links
// (or, failing that, from a scan of header-like text nodes), resolves a stop
// boundary for each target item, collects the text in between, and falls back
// to whole-document pattern matching when the structural result looks
// untrustworthy.
package sections

import (
	"regexp"
	"strconv"
)

// Key identifies a single 10-K item section, e.g. "item_1" or "item_7a".
type Key string

// Known item keys. Items outside the target set still matter: they act as
// boundary markers when deciding where a target section ends.
const (
	Item1  Key = "item_1"
	Item1A Key = "item_1a"
	Item1B Key = "item_1b"
	Item1C Key = "item_1c"
	Item2  Key = "item_2"
	Item3  Key = "item_3"
	Item4  Key = "item_4"
	Item5  Key = "item_5"
	Item6  Key = "item_6"
	Item7  Key = "item_7"
	Item7A Key = "item_7a"
	Item8  Key = "item_8"
	Item9  Key = "item_9"
	Item9A Key = "item_9a"
	Item9B Key = "item_9b"
)

// Targets returns the item sections an extraction run attempts to pull out.
// The remaining known keys are used only as stop boundaries.
func Targets() []Key {
	return []Key{Item1, Item1A, Item1B, Item1C, Item7, Item7A}
}

var keyPattern = regexp.MustCompile(`^item_(\d+)([a-z]?)$`)

// sortRank is the (number, letter) pair a key sorts by. Malformed keys get
// number 999 so they sort after every well-formed key.
type sortRank struct {
	number int
	letter string
}

func (k Key) rank() sortRank {
	m := keyPattern.FindStringSubmatch(string(k))
	if m == nil {
		return sortRank{number: 999}
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return sortRank{number: 999}
	}
	return sortRank{number: n, letter: m[2]}
}

// Less reports whether k precedes other in canonical item order: by number
// first, then by letter, with the letterless form ("item_7") preceding any
// lettered form ("item_7a").
func (k Key) Less(other Key) bool {
	a, b := k.rank(), other.rank()
	if a.number != b.number {
		return a.number < b.number
	}
	return a.letter < b.letter
}

// makeKey builds a key from the number and letter captured out of label text.
func makeKey(number, letter string) Key {
	return Key("item_" + number + letter)
}

// isTarget reports whether k belongs to the given target set.
func isTarget(k Key, targets []Key) bool {
	for _, t := range targets {
		if t == k {
			return true
		}
	}
	return false
}
