package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/desertthunder/songbreeze/internal/store"
)

var _ store.Backend = (*SourceRepository)(nil)

// SourceRepository stores the ordered source list in the sources table.
type SourceRepository struct {
	db       *sql.DB
	location string
}

// NewSourceRepository creates a new SourceRepository with the given database connection.
//
// location names the database in logs; it does not affect queries.
func NewSourceRepository(db *sql.DB, location string) *SourceRepository {
	return &SourceRepository{db: db, location: location}
}

// Location returns the database description given at construction.
func (r *SourceRepository) Location() string { return r.location }

// Read returns every source ordered by position.
func (r *SourceRepository) Read() ([]string, error) {
	rows, err := r.db.Query("SELECT path FROM sources ORDER BY position ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query sources: %w", err)
	}
	defer rows.Close()

	sources := []string{}
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, fmt.Errorf("failed to scan source: %w", err)
		}
		sources = append(sources, path)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return sources, nil
}

// Write replaces the stored list with items in a single transaction.
func (r *SourceRepository) Write(items []string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM sources"); err != nil {
		return fmt.Errorf("failed to clear sources: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO sources (position, path, updated_at) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now()
	for i, path := range items {
		if _, err := stmt.Exec(i, path, now); err != nil {
			return fmt.Errorf("failed to insert source %q: %w", path, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit sources: %w", err)
	}
	return nil
}

// Import seeds an empty table from items, leaving existing rows untouched.
//
// Used when switching the store driver from JSON to SQLite.
func (r *SourceRepository) Import(items []string) (bool, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM sources").Scan(&count); err != nil {
		return false, fmt.Errorf("failed to count sources: %w", err)
	}
	if count > 0 || len(items) == 0 {
		return false, nil
	}
	return true, r.Write(items)
}
