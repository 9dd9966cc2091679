package scoredb

import (
	"path/filepath"
	"testing"

	"github.com/mwinters/dexduel/game"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("couldn't open store: %s", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func TestHighScoreRoundTrip(t *testing.T) {
	store := openTestStore(t)

	if got, err := store.HighScore(game.ModeStatDuel); err != nil || got != 0 {
		t.Fatalf("fresh store should read 0, got %d (%v)", got, err)
	}

	if err := store.SetHighScore(game.ModeStatDuel, 7); err != nil {
		t.Fatalf("write failed: %s", err)
	}
	if got, _ := store.HighScore(game.ModeStatDuel); got != 7 {
		t.Fatalf("read back %d, want 7", got)
	}

	// other modes are independent
	if got, _ := store.HighScore(game.ModeDexGuess); got != 0 {
		t.Fatalf("modes should not share scores, got %d", got)
	}
}

func TestHighScoreNeverDecreases(t *testing.T) {
	store := openTestStore(t)

	if err := store.SetHighScore(game.ModeMoveMatch, 10); err != nil {
		t.Fatalf("write failed: %s", err)
	}
	if err := store.SetHighScore(game.ModeMoveMatch, 4); err != nil {
		t.Fatalf("write failed: %s", err)
	}

	if got, _ := store.HighScore(game.ModeMoveMatch); got != 10 {
		t.Fatalf("high score decreased: got %d, want 10", got)
	}
}
