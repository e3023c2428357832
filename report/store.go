package report

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// ErrRunNotFound is returned when a run id is not in the archive.
var ErrRunNotFound = errors.New("extraction run not found")

// Store archives extraction runs in SQLite.
type Store struct {
	db *sql.DB
}

// Run is one archived extraction run.
type Run struct {
	RunID        uuid.UUID `json:"run_id"`
	SourceURL    string    `json:"source_url"`
	Method       string    `json:"method"`
	ExtractedAt  time.Time `json:"extracted_at"`
	SectionCount int       `json:"section_count"`
	// Sections is populated by GetRun; ListRuns leaves it nil.
	Sections []StoredSection `json:"sections,omitempty"`
}

// StoredSection is one section row of an archived run.
type StoredSection struct {
	Key       string `json:"key"`
	WordCount int    `json:"word_count"`
	Text      string `json:"text"`
}

// NewStore opens (creating if necessary) a run archive at the given path.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the archive tables if they don't exist.
func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		run_id TEXT PRIMARY KEY,
		source_url TEXT NOT NULL,
		method TEXT NOT NULL,
		extracted_at TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS run_sections (
		run_id TEXT NOT NULL REFERENCES runs(run_id) ON DELETE CASCADE,
		section_key TEXT NOT NULL,
		word_count INTEGER NOT NULL,
		content TEXT NOT NULL,
		PRIMARY KEY (run_id, section_key)
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveReport archives a report and returns the new run's id.
func (s *Store) SaveReport(r *Report) (uuid.UUID, error) {
	runID := uuid.New()

	tx, err := s.db.Begin()
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO runs (run_id, source_url, method, extracted_at) VALUES (?, ?, ?, ?)",
		runID.String(), r.SourceURL, r.Method, r.Timestamp.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert run: %w", err)
	}

	for _, sec := range r.Sections {
		_, err = tx.Exec(
			"INSERT INTO run_sections (run_id, section_key, word_count, content) VALUES (?, ?, ?, ?)",
			runID.String(), string(sec.Key), len(strings.Fields(sec.Text)), sec.Text,
		)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to insert section %s: %w", sec.Key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return uuid.Nil, fmt.Errorf("failed to commit run: %w", err)
	}
	return runID, nil
}

// GetRun retrieves one archived run, sections included.
func (s *Store) GetRun(id uuid.UUID) (*Run, error) {
	var run Run
	var idStr, extractedAt string

	err := s.db.QueryRow(
		"SELECT run_id, source_url, method, extracted_at FROM runs WHERE run_id = ?",
		id.String(),
	).Scan(&idStr, &run.SourceURL, &run.Method, &extractedAt)
	if err == sql.ErrNoRows {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query run: %w", err)
	}

	run.RunID, err = uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse run id: %w", err)
	}
	run.ExtractedAt, err = time.Parse(time.RFC3339, extractedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse run timestamp: %w", err)
	}

	rows, err := s.db.Query(
		"SELECT section_key, word_count, content FROM run_sections WHERE run_id = ? ORDER BY section_key",
		id.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query sections: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var sec StoredSection
		if err := rows.Scan(&sec.Key, &sec.WordCount, &sec.Text); err != nil {
			return nil, fmt.Errorf("failed to scan section: %w", err)
		}
		run.Sections = append(run.Sections, sec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sections: %w", err)
	}

	run.SectionCount = len(run.Sections)
	return &run, nil
}

// ListRuns returns archived runs newest first, without section text. limit
// caps the result; zero or negative means all.
func (s *Store) ListRuns(limit int) ([]Run, error) {
	query := `
	SELECT r.run_id, r.source_url, r.method, r.extracted_at,
	       (SELECT COUNT(*) FROM run_sections rs WHERE rs.run_id = r.run_id)
	FROM runs r
	ORDER BY r.extracted_at DESC`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var idStr, extractedAt string
		if err := rows.Scan(&idStr, &run.SourceURL, &run.Method, &extractedAt, &run.SectionCount); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		run.RunID, err = uuid.Parse(idStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse run id: %w", err)
		}
		run.ExtractedAt, err = time.Parse(time.RFC3339, extractedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse run timestamp: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read runs: %w", err)
	}
	return runs, nil
}
