// Package scoredb persists per-mode high scores in a small sqlite database
// in the user's config dir.
package scoredb

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/mwinters/dexduel/game"
)

const schema = `
CREATE TABLE IF NOT EXISTS high_scores (
	mode  TEXT PRIMARY KEY,
	score INTEGER NOT NULL CHECK (score >= 0)
);`

// The upsert keeps MAX(stored, new) so a high score can never go down, even
// if a caller hands us a lower value.
const upsertQuery = `
INSERT INTO high_scores (mode, score) VALUES (?, ?)
ON CONFLICT (mode) DO UPDATE SET score = MAX(score, excluded.score);`

type Store struct {
	db *sql.DB
}

// Open creates or opens the score database at path and makes sure the
// schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("couldn't open score db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("couldn't create score table: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) HighScore(mode game.Mode) (int, error) {
	var score int
	err := s.db.QueryRow("SELECT score FROM high_scores WHERE mode = ?", string(mode)).Scan(&score)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("couldn't read high score: %w", err)
	}

	return score, nil
}

func (s *Store) SetHighScore(mode game.Mode, score int) error {
	if _, err := s.db.Exec(upsertQuery, string(mode), score); err != nil {
		return fmt.Errorf("couldn't write high score: %w", err)
	}

	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
