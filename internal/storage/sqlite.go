// Package storage persists the player's campaign progress in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// KeyCurrentLevel holds the level the player resumes at.
const KeyCurrentLevel = "current_level"

// FirstLevel is where a fresh or reset campaign starts.
const FirstLevel = 1

// Store manages the SQLite database connection for progress persistence.
type Store struct {
	db *sql.DB
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
		CREATE TABLE IF NOT EXISTS progress (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
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

// CurrentLevel returns the stored level, or FirstLevel when nothing has
// been saved yet. Stored values below FirstLevel read as FirstLevel.
func (s *Store) CurrentLevel() (int, error) {
	var raw string
	err := s.db.QueryRow("SELECT value FROM progress WHERE key = ?", KeyCurrentLevel).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return FirstLevel, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query current level: %w", err)
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("storage: corrupt current level %q: %w", raw, err)
	}
	return max(n, FirstLevel), nil
}

// SetCurrentLevel stores n, clamped to FirstLevel.
func (s *Store) SetCurrentLevel(n int) error {
	n = max(n, FirstLevel)
	_, err := s.db.Exec(
		`INSERT INTO progress (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		KeyCurrentLevel, strconv.Itoa(n),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save current level: %w", err)
	}
	return nil
}

// ResetProgress starts the campaign over.
func (s *Store) ResetProgress() error {
	_, err := s.db.Exec("DELETE FROM progress WHERE key = ?", KeyCurrentLevel)
	if err != nil {
		return fmt.Errorf("storage: cannot reset progress: %w", err)
	}
	return nil
}

// AllLevelsCompleted reports whether progress is past the last of
// maxLevel levels.
func (s *Store) AllLevelsCompleted(maxLevel int) (bool, error) {
	cur, err := s.CurrentLevel()
	if err != nil {
		return false, err
	}
	return cur > maxLevel, nil
}
