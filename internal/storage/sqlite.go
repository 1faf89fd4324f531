// Package storage provides SQLite-based persistence for the high score.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/Vivian202511/snake-game-vivian/internal/game"
)

// Store manages the SQLite database connection for high-score persistence.
// The schema is a single key/value table so the game core only ever deals
// with one named scalar.
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
		CREATE TABLE IF NOT EXISTS high_scores (
			name  TEXT PRIMARY KEY,
			value INTEGER NOT NULL
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

// HighScore returns the stored value for the given name, or 0 if none exists.
func (s *Store) HighScore(name string) (int, error) {
	var value sql.NullInt64
	err := s.db.QueryRow(
		"SELECT value FROM high_scores WHERE name = ?",
		name,
	).Scan(&value)

	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !value.Valid {
		return 0, nil
	}

	return int(value.Int64), nil
}

// SetHighScore stores the value for the given name. The stored value only
// ever increases; a lower value than the current one is kept as-is.
func (s *Store) SetHighScore(name string, value int) error {
	_, err := s.db.Exec(
		`INSERT INTO high_scores (name, value) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value
		 WHERE excluded.value > high_scores.value`,
		name, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// Clear removes the stored value for the given name.
func (s *Store) Clear(name string) error {
	_, err := s.db.Exec("DELETE FROM high_scores WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("storage: cannot clear high score: %w", err)
	}
	return nil
}

// NamedScore binds a Store to a single score name so the game core can read
// and write its one scalar without knowing about names or SQL.
type NamedScore struct {
	store *Store
	name  string
}

// Named returns a view of the store scoped to the given score name.
func (s *Store) Named(name string) *NamedScore {
	return &NamedScore{store: s, name: name}
}

// HighScore implements game.ScoreStore.
func (n *NamedScore) HighScore() (int, error) {
	return n.store.HighScore(n.name)
}

// SetHighScore implements game.ScoreStore.
func (n *NamedScore) SetHighScore(v int) error {
	return n.store.SetHighScore(n.name, v)
}

// Ensure NamedScore implements the game's persistence contract.
var _ game.ScoreStore = (*NamedScore)(nil)
