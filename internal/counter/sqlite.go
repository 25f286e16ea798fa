package counter

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB is a Store persisted in a SQLite database, so suffixes survive across
// command invocations.
type DB struct {
	db *sql.DB
}

// OpenDB opens (or creates) the counter database at the given path.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening counter database: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS counters (
  note TEXT PRIMARY KEY,
  last INTEGER NOT NULL
)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating counters table: %w", err)
	}

	return &DB{db: db}, nil
}

// Next assigns and persists the next suffix for a note. The new value is
// durable before this returns, so the caller may mint the block identifier
// and only then issue note writes.
func (d *DB) Next(noteID string) (int, error) {
	row := d.db.QueryRow(`INSERT INTO counters (note, last) VALUES (?, 1)
ON CONFLICT(note) DO UPDATE SET last = last + 1
RETURNING last`, noteID)

	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("incrementing counter for %s: %w", noteID, err)
	}
	return n, nil
}

// Close closes the underlying database.
func (d *DB) Close() error {
	return d.db.Close()
}
