// Package report turns extraction results into persistent artifacts: a JSON
// report file and an optional SQLite archive of past runs.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/pvickers/edgarex/sections"
)

// Section is one extracted section in a report.
type Section struct {
	Key  sections.Key
	Text string
}

// SectionList marshals as a JSON object whose keys appear in canonical item
// order. Plain maps would serialize alphabetically, which happens to match
// for the default targets but breaks for double-digit items.
type SectionList []Section

// MarshalJSON implements json.Marshaler.
func (l SectionList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, s := range l {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(s.Key))
		if err != nil {
			return nil, err
		}
		text, err := json.Marshal(s.Text)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(text)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Report is the JSON document produced for one extraction run. Field order
// here is the key order in the serialized output.
type Report struct {
	Method    string      `json:"extraction_method"`
	Timestamp time.Time   `json:"extraction_timestamp"`
	SourceURL string      `json:"source_url"`
	Sections  SectionList `json:"sections"`
}

// New builds a report from a segmentation result, ordering the sections
// canonically.
func New(res *sections.Result, sourceURL string, now time.Time) *Report {
	keys := make([]sections.Key, 0, len(res.Sections))
	for k := range res.Sections {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })

	list := make(SectionList, 0, len(keys))
	for _, k := range keys {
		list = append(list, Section{Key: k, Text: res.Sections[k]})
	}

	return &Report{
		Method:    string(res.Method),
		Timestamp: now.UTC(),
		SourceURL: sourceURL,
		Sections:  list,
	}
}

// WriteFile persists the report as indented JSON.
func (r *Report) WriteFile(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
