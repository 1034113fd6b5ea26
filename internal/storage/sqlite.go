// Package storage provides SQLite-based history of scene mutations.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for mutation history.
type Store struct {
	db *sql.DB
}

// Entry is one recorded change to one item.
type Entry struct {
	ID        int64
	Scene     string
	Op        string // "clip", "constrain" or "repair"
	Item      string
	Before    string
	After     string
	OK        bool
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			scene TEXT NOT NULL,
			op TEXT NOT NULL,
			item TEXT NOT NULL,
			before_rect TEXT NOT NULL,
			after_rect TEXT NOT NULL,
			ok INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_history_scene ON history(scene, id DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Record saves a batch of entries in one transaction.
func (s *Store) Record(entries []Entry) (err error) {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, tx.Rollback())
		}
	}()

	stmt, err := tx.Prepare(
		`INSERT INTO history (scene, op, item, before_rect, after_rect, ok)
		 VALUES (?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err = stmt.Exec(e.Scene, e.Op, e.Item, e.Before, e.After, e.OK); err != nil {
			return fmt.Errorf("storage: cannot save entry for %q: %w", e.Item, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit: %w", err)
	}
	return nil
}

// History returns the most recent entries for a scene, newest first.
// An empty scene name returns entries for every scene.
func (s *Store) History(scene string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, scene, op, item, before_rect, after_rect, ok, created_at
		 FROM history
		 WHERE ? = '' OR scene = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		scene, scene, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Scene, &e.Op, &e.Item, &e.Before, &e.After, &e.OK, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Clear deletes all history for the given scene.
func (s *Store) Clear(scene string) error {
	_, err := s.db.Exec("DELETE FROM history WHERE scene = ?", scene)
	if err != nil {
		return fmt.Errorf("storage: cannot clear history: %w", err)
	}
	return nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
