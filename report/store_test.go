package report

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvickers/edgarex/sections"
)

// createTestStore creates a Store backed by a temporary database
func createTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "archive.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testReport(ts time.Time) *Report {
	return &Report{
		Method:    string(sections.MethodStructural),
		Timestamp: ts,
		SourceURL: "https://www.sec.gov/filing.htm",
		Sections: SectionList{
			{Key: sections.Item1, Text: "the company makes widgets"},
			{Key: sections.Item1A, Text: "demand may decline"},
			{Key: sections.Item7, Text: "revenue grew nine percent on volume"},
		},
	}
}

// TestSaveReport_RoundTrip verifies a saved report comes back intact through
// GetRun, word counts included
func TestSaveReport_RoundTrip(t *testing.T) {
	store := createTestStore(t)
	ts := time.Date(2026, 2, 3, 15, 4, 5, 0, time.UTC)

	runID, err := store.SaveReport(testReport(ts))
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, runID)

	run, err := store.GetRun(runID)
	require.NoError(t, err)

	assert.Equal(t, runID, run.RunID)
	assert.Equal(t, "https://www.sec.gov/filing.htm", run.SourceURL)
	assert.Equal(t, "structural", run.Method)
	assert.True(t, run.ExtractedAt.Equal(ts))
	assert.Equal(t, 3, run.SectionCount)

	require.Len(t, run.Sections, 3)
	assert.Equal(t, "item_1", run.Sections[0].Key)
	assert.Equal(t, 4, run.Sections[0].WordCount)
	assert.Equal(t, "the company makes widgets", run.Sections[0].Text)
	assert.Equal(t, "item_1a", run.Sections[1].Key)
	assert.Equal(t, 3, run.Sections[1].WordCount)
	assert.Equal(t, "item_7", run.Sections[2].Key)
	assert.Equal(t, 6, run.Sections[2].WordCount)
}

// TestGetRun_NotFound verifies the sentinel error for unknown run ids
func TestGetRun_NotFound(t *testing.T) {
	store := createTestStore(t)

	_, err := store.GetRun(uuid.New())
	assert.ErrorIs(t, err, ErrRunNotFound)
}

// TestListRuns verifies newest-first ordering and that section text stays out
// of listings
func TestListRuns(t *testing.T) {
	store := createTestStore(t)

	older := testReport(time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC))
	newer := testReport(time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC))
	newer.SourceURL = "https://www.sec.gov/other.htm"

	olderID, err := store.SaveReport(older)
	require.NoError(t, err)
	newerID, err := store.SaveReport(newer)
	require.NoError(t, err)

	runs, err := store.ListRuns(0)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	assert.Equal(t, newerID, runs[0].RunID)
	assert.Equal(t, "https://www.sec.gov/other.htm", runs[0].SourceURL)
	assert.Equal(t, olderID, runs[1].RunID)

	assert.Equal(t, 3, runs[0].SectionCount)
	assert.Nil(t, runs[0].Sections)
}

// TestListRuns_Limit verifies the limit caps the result at the newest runs
func TestListRuns_Limit(t *testing.T) {
	store := createTestStore(t)

	for day := 1; day <= 3; day++ {
		r := testReport(time.Date(2026, 2, day, 10, 0, 0, 0, time.UTC))
		_, err := store.SaveReport(r)
		require.NoError(t, err)
	}

	runs, err := store.ListRuns(2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.True(t, runs[0].ExtractedAt.After(runs[1].ExtractedAt))
}

// TestListRuns_Empty verifies an empty archive lists no runs without error
func TestListRuns_Empty(t *testing.T) {
	store := createTestStore(t)

	runs, err := store.ListRuns(0)
	require.NoError(t, err)
	assert.Empty(t, runs)
}
