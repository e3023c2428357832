package sections

// NextBoundary finds the stop boundary for a target section: the anchor with
// the smallest key strictly greater than target in canonical order. The
// second return is false when no later anchor exists, meaning the section
// runs to the end of the document. Should two anchors ever share the minimal
// greater key, the first in sorted order wins.
func (c *Catalog) NextBoundary(target Key) (Anchor, bool) {
	var best *Anchor
	for i := range c.Anchors {
		a := &c.Anchors[i]
		if !target.Less(a.Key) {
			continue
		}
		if best == nil || a.Key.Less(best.Key) {
			best = a
		}
	}
	if best == nil {
		return Anchor{}, false
	}
	return *best, true
}
