// Package catalog records dispatch outcomes in a SQLite database.
package catalog

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/simonhull/echoproc"
)

// Status values stored per dataset.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// Entry is one row of the datasets table.
type Entry struct {
	Path       string
	Format     string
	SonarModel string
	Status     string
	ErrorKind  string
	Message    string
	ScannedAt  time.Time
}

// EntryFromResult converts a dispatch result into a catalog row.
func EntryFromResult(r echoproc.Result, scannedAt time.Time) Entry {
	format, _ := echoproc.FormatFromPath(r.Path)
	e := Entry{
		Path:      r.Path,
		Format:    format.String(),
		Status:    StatusOK,
		ScannedAt: scannedAt.UTC(),
	}
	if r.Processor != nil {
		e.SonarModel = r.Processor.Model().String()
	}
	if r.Err != nil {
		e.Status = StatusFailed
		e.ErrorKind = r.Kind().String()
		e.Message = r.Err.Error()
	}
	return e
}

// Store is an open catalog database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating if needed) the catalog at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{db: db, now: time.Now}
	if err := store.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	const schema = `
CREATE TABLE IF NOT EXISTS datasets (
	path TEXT PRIMARY KEY,
	format TEXT NOT NULL,
	sonar_model TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL CHECK(status IN ('ok', 'failed')),
	error_kind TEXT NOT NULL DEFAULT '',
	message TEXT NOT NULL DEFAULT '',
	scanned_at TEXT NOT NULL
);
`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Record upserts one row per result in a single transaction. A later scan of
// the same path replaces the earlier row.
func (s *Store) Record(results []echoproc.Result) (int, error) {
	if len(results) == 0 {
		return 0, nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}

	const upsertStmt = `
INSERT INTO datasets (path, format, sonar_model, status, error_kind, message, scanned_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(path) DO UPDATE SET
	format = excluded.format,
	sonar_model = excluded.sonar_model,
	status = excluded.status,
	error_kind = excluded.error_kind,
	message = excluded.message,
	scanned_at = excluded.scanned_at;`

	stmt, err := tx.Prepare(upsertStmt)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("prepare upsert: %w", err)
	}
	defer stmt.Close()

	scannedAt := s.now()
	for _, r := range results {
		e := EntryFromResult(r, scannedAt)
		if _, err := stmt.Exec(
			e.Path,
			e.Format,
			e.SonarModel,
			e.Status,
			e.ErrorKind,
			e.Message,
			e.ScannedAt.Format(time.RFC3339Nano),
		); err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("upsert dataset %s: %w", e.Path, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}

	return len(results), nil
}

// List returns every row ordered by path.
func (s *Store) List() ([]Entry, error) {
	rows, err := s.db.Query(`
SELECT path, format, sonar_model, status, error_kind, message, scanned_at
FROM datasets
ORDER BY path;`)
	if err != nil {
		return nil, fmt.Errorf("query datasets: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e         Entry
			scannedAt string
		)
		if err := rows.Scan(&e.Path, &e.Format, &e.SonarModel, &e.Status, &e.ErrorKind, &e.Message, &scannedAt); err != nil {
			return nil, fmt.Errorf("scan dataset row: %w", err)
		}
		e.ScannedAt, err = time.Parse(time.RFC3339Nano, scannedAt)
		if err != nil {
			return nil, fmt.Errorf("parse scanned_at for %s: %w", e.Path, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate datasets: %w", err)
	}

	return entries, nil
}

// Count returns the number of catalogued datasets.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM datasets;`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count datasets: %w", err)
	}
	return n, nil
}
