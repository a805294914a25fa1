// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive keeps a local SQLite index of finished research runs
// so past reports can be listed without scanning the reports directory.
// The report text itself lives on disk; the archive stores metadata and
// the file path.
package archive

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const dbFile = "reports.db"

// Store manages the report archive SQLite database.
type Store struct {
	db *sql.DB
}

// Entry is one archived research run.
type Entry struct {
	ID         int64
	Industry   string
	Question   string
	Outcome    string
	Findings   int
	Iterations int
	Degraded   bool
	ReportPath string
	CreatedAt  time.Time
}

// Open opens or creates the archive database at dir/reports.db, creating
// the schema if needed.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating archive directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening archive database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating archive schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS reports (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		industry TEXT NOT NULL,
		question TEXT NOT NULL,
		outcome TEXT NOT NULL,
		findings INTEGER NOT NULL,
		iterations INTEGER NOT NULL,
		degraded INTEGER NOT NULL DEFAULT 0,
		report_path TEXT,
		created_at TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Record inserts one finished run and returns its row ID.
func (s *Store) Record(e Entry) (int64, error) {
	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	res, err := s.db.Exec(
		`INSERT INTO reports (industry, question, outcome, findings, iterations, degraded, report_path, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Industry, e.Question, e.Outcome, e.Findings, e.Iterations,
		boolToInt(e.Degraded), e.ReportPath, createdAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("recording report: %w", err)
	}
	return res.LastInsertId()
}

// List returns up to limit archived runs, newest first. A limit of 0
// returns everything.
func (s *Store) List(limit int) ([]Entry, error) {
	query := `SELECT id, industry, question, outcome, findings, iterations, degraded, report_path, created_at
		FROM reports ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var degraded int
		var createdAt string
		if err := rows.Scan(&e.ID, &e.Industry, &e.Question, &e.Outcome,
			&e.Findings, &e.Iterations, &degraded, &e.ReportPath, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning report row: %w", err)
		}
		e.Degraded = degraded != 0
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			e.CreatedAt = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// FormatTable writes entries as an aligned text table.
func FormatTable(entries []Entry, w io.Writer) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No archived reports.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-22s  %-50s  %-10s  %-8s  %s\n",
		"ID", "Industry", "Question", "Outcome", "Findings", "Created")
	fmt.Fprintln(w, strings.Repeat("-", 110))

	for _, e := range entries {
		question := e.Question
		if len(question) > 50 {
			question = question[:47] + "..."
		}
		outcome := e.Outcome
		if e.Degraded {
			outcome += "*"
		}
		fmt.Fprintf(w, "%-4d  %-22s  %-50s  %-10s  %-8d  %s\n",
			e.ID, e.Industry, question, outcome, e.Findings,
			e.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	fmt.Fprintf(w, "\n%d reports (* = degraded synthesis)\n", len(entries))
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
