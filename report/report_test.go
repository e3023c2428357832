package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvickers/edgarex/sections"
)

// TestNew_CanonicalSectionOrder verifies sections come out in item order
// regardless of map iteration order
func TestNew_CanonicalSectionOrder(t *testing.T) {
	res := &sections.Result{
		Method: sections.MethodStructural,
		Sections: map[sections.Key]string{
			sections.Item7:  "discussion text",
			sections.Item1:  "business text",
			sections.Item1A: "risk text",
		},
	}

	r := New(res, "https://www.sec.gov/filing.htm", time.Now())

	require.Len(t, r.Sections, 3)
	assert.Equal(t, sections.Item1, r.Sections[0].Key)
	assert.Equal(t, sections.Item1A, r.Sections[1].Key)
	assert.Equal(t, sections.Item7, r.Sections[2].Key)
}

// TestNew_DoubleDigitItemOrder verifies item_10 sorts after item_7, where
// plain string ordering would put it first
func TestNew_DoubleDigitItemOrder(t *testing.T) {
	res := &sections.Result{
		Method: sections.MethodStructural,
		Sections: map[sections.Key]string{
			sections.Key("item_10"): "directors and officers",
			sections.Item7:          "discussion text",
		},
	}

	r := New(res, "https://www.sec.gov/filing.htm", time.Now())

	require.Len(t, r.Sections, 2)
	assert.Equal(t, sections.Item7, r.Sections[0].Key)
	assert.Equal(t, sections.Key("item_10"), r.Sections[1].Key)
}

// TestSectionList_MarshalPreservesOrder verifies the serialized object keeps
// list order instead of re-sorting keys alphabetically
func TestSectionList_MarshalPreservesOrder(t *testing.T) {
	list := SectionList{
		{Key: sections.Item7, Text: "seventh"},
		{Key: sections.Key("item_10"), Text: "tenth"},
	}

	data, err := json.Marshal(list)
	require.NoError(t, err)

	out := string(data)
	assert.Less(t, strings.Index(out, `"item_7"`), strings.Index(out, `"item_10"`))
}

// TestReport_JSONFieldOrder verifies the top-level key order of the report
// document
func TestReport_JSONFieldOrder(t *testing.T) {
	r := &Report{
		Method:    string(sections.MethodStructural),
		Timestamp: time.Date(2026, 2, 3, 15, 4, 5, 0, time.UTC),
		SourceURL: "https://www.sec.gov/filing.htm",
		Sections:  SectionList{{Key: sections.Item1, Text: "business text"}},
	}

	data, err := json.Marshal(r)
	require.NoError(t, err)

	out := string(data)
	method := strings.Index(out, `"extraction_method"`)
	timestamp := strings.Index(out, `"extraction_timestamp"`)
	source := strings.Index(out, `"source_url"`)
	secs := strings.Index(out, `"sections"`)

	assert.Less(t, method, timestamp)
	assert.Less(t, timestamp, source)
	assert.Less(t, source, secs)
}

// TestReport_WriteFile verifies the report round-trips through disk
func TestReport_WriteFile(t *testing.T) {
	res := &sections.Result{
		Method: sections.MethodPatternFallback,
		Sections: map[sections.Key]string{
			sections.Item1: "business text",
		},
	}
	r := New(res, "https://www.sec.gov/filing.htm", time.Date(2026, 2, 3, 15, 4, 5, 0, time.UTC))

	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, r.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got struct {
		Method    string            `json:"extraction_method"`
		Timestamp time.Time         `json:"extraction_timestamp"`
		SourceURL string            `json:"source_url"`
		Sections  map[string]string `json:"sections"`
	}
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, "pattern-fallback", got.Method)
	assert.Equal(t, "https://www.sec.gov/filing.htm", got.SourceURL)
	assert.True(t, got.Timestamp.Equal(r.Timestamp))
	assert.Equal(t, map[string]string{"item_1": "business text"}, got.Sections)
}

// TestNew_EmptyResult verifies an empty extraction still produces a valid
// report with an empty sections object
func TestNew_EmptyResult(t *testing.T) {
	res := &sections.Result{
		Method:   sections.MethodPatternFallback,
		Sections: map[sections.Key]string{},
	}
	r := New(res, "https://www.sec.gov/filing.htm", time.Now())

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"sections":{}`)
}
