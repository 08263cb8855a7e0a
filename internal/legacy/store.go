// Package legacy implements the historical SQLite-backed feature store
// and 2-star voting identifier. It is a documented, independently
// testable alternative to the default catalog (internal/catalog) and
// Pyramid identifier (internal/identify); the default pipeline never
// calls it.
package legacy

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"startracker/internal/starerr"
)

// FeatureRow is one row of the legacy featureList table.
type FeatureRow struct {
	Hip1, Hip2 int32
	Theta      float64
}

// Store wraps an in-memory copy of a legacy feature database, copied
// from disk to memory once at open rather than queried on disk per call.
type Store struct {
	db *sql.DB
}

// OpenDatabase reads every row of the on-disk featureList table at path
// and copies it into a fresh in-memory database.
func OpenDatabase(path string) (*Store, error) {
	disk, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("legacy: open %s: %w", path, starerr.ErrIO)
	}
	defer disk.Close()

	rows, err := disk.Query(`SELECT hip1, hip2, theta FROM featureList`)
	if err != nil {
		return nil, fmt.Errorf("legacy: query %s: %w", path, starerr.ErrIO)
	}
	defer rows.Close()

	mem, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("legacy: open in-memory db: %w", err)
	}

	if _, err := mem.Exec(`CREATE TABLE featureList (hip1 INTEGER, hip2 INTEGER, theta REAL)`); err != nil {
		mem.Close()
		return nil, fmt.Errorf("legacy: create table: %w", err)
	}

	tx, err := mem.Begin()
	if err != nil {
		mem.Close()
		return nil, fmt.Errorf("legacy: begin copy: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO featureList (hip1, hip2, theta) VALUES (?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		mem.Close()
		return nil, fmt.Errorf("legacy: prepare insert: %w", err)
	}

	n := 0
	for rows.Next() {
		var r FeatureRow
		if err := rows.Scan(&r.Hip1, &r.Hip2, &r.Theta); err != nil {
			stmt.Close()
			tx.Rollback()
			mem.Close()
			return nil, fmt.Errorf("legacy: scan row: %w", starerr.ErrParse)
		}
		if _, err := stmt.Exec(r.Hip1, r.Hip2, r.Theta); err != nil {
			stmt.Close()
			tx.Rollback()
			mem.Close()
			return nil, fmt.Errorf("legacy: copy row: %w", err)
		}
		n++
	}
	stmt.Close()
	if err := tx.Commit(); err != nil {
		mem.Close()
		return nil, fmt.Errorf("legacy: commit copy: %w", err)
	}
	if n == 0 {
		mem.Close()
		return nil, fmt.Errorf("legacy: %s has no features: %w", path, starerr.ErrParse)
	}

	return &Store{db: mem}, nil
}

// Close releases the in-memory database.
func (s *Store) Close() error {
	return s.db.Close()
}

// RangeTheta returns every row whose theta lies in (low, high).
func (s *Store) RangeTheta(low, high float64) ([]FeatureRow, error) {
	rows, err := s.db.Query(`SELECT hip1, hip2, theta FROM featureList WHERE theta > ? AND theta < ?`, low, high)
	if err != nil {
		return nil, fmt.Errorf("legacy: range query: %w", err)
	}
	defer rows.Close()

	var out []FeatureRow
	for rows.Next() {
		var r FeatureRow
		if err := rows.Scan(&r.Hip1, &r.Hip2, &r.Theta); err != nil {
			return nil, fmt.Errorf("legacy: scan range row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// ExactPair returns the theta stored for the (unordered) pair (hip1,
// hip2), and whether a row was found.
func (s *Store) ExactPair(hip1, hip2 int32) (float64, bool, error) {
	row := s.db.QueryRow(
		`SELECT theta FROM featureList WHERE (hip1 = ? AND hip2 = ?) OR (hip1 = ? AND hip2 = ?)`,
		hip1, hip2, hip2, hip1)

	var theta float64
	if err := row.Scan(&theta); err != nil {
		if err == sql.ErrNoRows {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("legacy: exact pair query: %w", err)
	}
	return theta, true, nil
}
