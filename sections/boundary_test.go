package sections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNextBoundary_NearestGreaterKey verifies the stop boundary is the
// nearest anchor strictly after the target in canonical order
func TestNextBoundary_NearestGreaterKey(t *testing.T) {
	cat := &Catalog{Anchors: []Anchor{
		{Key: Item1, BoundaryID: "biz"},
		{Key: Item1A, BoundaryID: "risk"},
		{Key: Item7, BoundaryID: "mdna"},
	}}

	next, ok := cat.NextBoundary(Item1)
	require.True(t, ok)
	assert.Equal(t, "risk", next.BoundaryID)

	next, ok = cat.NextBoundary(Item1A)
	require.True(t, ok)
	assert.Equal(t, "mdna", next.BoundaryID)
}

// TestNextBoundary_LastSectionRunsToEnd verifies the final anchor has no
// stop boundary
func TestNextBoundary_LastSectionRunsToEnd(t *testing.T) {
	cat := &Catalog{Anchors: []Anchor{
		{Key: Item1, BoundaryID: "biz"},
		{Key: Item7, BoundaryID: "mdna"},
	}}

	_, ok := cat.NextBoundary(Item7)
	assert.False(t, ok)
}

// TestNextBoundary_SkipsGaps verifies boundaries need not be adjacent items
func TestNextBoundary_SkipsGaps(t *testing.T) {
	cat := &Catalog{Anchors: []Anchor{
		{Key: Item1, BoundaryID: "biz"},
		{Key: Item8, BoundaryID: "fin"},
	}}

	next, ok := cat.NextBoundary(Item1)
	require.True(t, ok)
	assert.Equal(t, "fin", next.BoundaryID)
}

// TestNextBoundary_TargetAbsentFromCatalog verifies lookups work for keys
// the catalog never discovered
func TestNextBoundary_TargetAbsentFromCatalog(t *testing.T) {
	cat := &Catalog{Anchors: []Anchor{
		{Key: Item2, BoundaryID: "props"},
	}}

	next, ok := cat.NextBoundary(Item1A)
	require.True(t, ok)
	assert.Equal(t, "props", next.BoundaryID)
}

// TestNextBoundary_DuplicateMinimalKey verifies the defensive tie-break:
// first anchor in sorted order wins
func TestNextBoundary_DuplicateMinimalKey(t *testing.T) {
	cat := &Catalog{Anchors: []Anchor{
		{Key: Item1, BoundaryID: "biz"},
		{Key: Item1A, BoundaryID: "risk-1"},
		{Key: Item1A, BoundaryID: "risk-2"},
	}}

	next, ok := cat.NextBoundary(Item1)
	require.True(t, ok)
	assert.Equal(t, "risk-1", next.BoundaryID)
}

// TestNextBoundary_EmptyCatalog verifies the empty case
func TestNextBoundary_EmptyCatalog(t *testing.T) {
	cat := &Catalog{}
	_, ok := cat.NextBoundary(Item1)
	assert.False(t, ok)
}
