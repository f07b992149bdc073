// Package scores persists the high score in a local SQLite database.
package scores

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// highScoreKey is the fixed key the single persisted value lives under.
const highScoreKey = "highscore"

const migrationsSQL = `
CREATE TABLE IF NOT EXISTS scores (
	key TEXT PRIMARY KEY,
	value INTEGER NOT NULL
)`

// Store is a SQLite-backed implementation of game.ScoreStore.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the score database at path. Use ":memory:"
// for an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("scores: open %s: %w", path, err)
	}
	if err := initDB(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// initDB runs the embedded migration statements.
func initDB(db *sql.DB) error {
	for _, s := range strings.Split(migrationsSQL, ";") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, err := db.Exec(s); err != nil {
			return fmt.Errorf("scores: migrate: %w", err)
		}
	}
	return nil
}

// HighScore returns the persisted high score, or zero for a fresh database.
func (s *Store) HighScore() (int, error) {
	var value int
	err := s.db.QueryRow(`SELECT value FROM scores WHERE key = ?`, highScoreKey).Scan(&value)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("scores: read high score: %w", err)
	}
	return value, nil
}

// SetHighScore stores the new high score, replacing any previous value.
func (s *Store) SetHighScore(score int) error {
	_, err := s.db.Exec(
		`INSERT INTO scores (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		highScoreKey, score,
	)
	if err != nil {
		return fmt.Errorf("scores: write high score: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
