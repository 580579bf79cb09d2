package storage

import (
	"os"
	"path/filepath"
	"testing"
)

// openTestStore opens a store in a temp directory and closes it when the
// test ends.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenCreatesDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("database file not created: %v", err)
	}
}

func TestPlayerNameRoundTrip(t *testing.T) {
	store := openTestStore(t)

	// No profile yet: empty name, no error.
	name, err := store.PlayerName()
	if err != nil {
		t.Fatalf("PlayerName failed: %v", err)
	}
	if name != "" {
		t.Errorf("PlayerName = %q on fresh database, expected empty", name)
	}

	if err := store.SavePlayerName("ada"); err != nil {
		t.Fatalf("SavePlayerName failed: %v", err)
	}
	name, err = store.PlayerName()
	if err != nil {
		t.Fatalf("PlayerName failed: %v", err)
	}
	if name != "ada" {
		t.Errorf("PlayerName = %q, expected %q", name, "ada")
	}

	// Saving again replaces, never duplicates.
	if err := store.SavePlayerName("grace"); err != nil {
		t.Fatalf("SavePlayerName failed: %v", err)
	}
	name, _ = store.PlayerName()
	if name != "grace" {
		t.Errorf("PlayerName = %q after update, expected %q", name, "grace")
	}
}

func TestSubmitScoreHighScoreDetection(t *testing.T) {
	store := openTestStore(t)

	tests := []struct {
		name     string
		player   string
		score    int
		expected bool
	}{
		{"first score is always a high score", "ada", 100, true},
		{"lower score is not", "ada", 50, false},
		{"equal score is not", "grace", 100, false},
		{"strictly greater is", "grace", 101, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			newHigh, err := store.SubmitScore(tt.player, tt.score)
			if err != nil {
				t.Fatalf("SubmitScore failed: %v", err)
			}
			if newHigh != tt.expected {
				t.Errorf("SubmitScore(%q, %d) newHigh = %v, expected %v",
					tt.player, tt.score, newHigh, tt.expected)
			}
		})
	}
}

func TestBest(t *testing.T) {
	store := openTestStore(t)

	best, err := store.Best()
	if err != nil {
		t.Fatalf("Best failed: %v", err)
	}
	if best != nil {
		t.Errorf("Best = %+v on fresh database, expected nil", best)
	}

	store.SubmitScore("ada", 200)
	store.SubmitScore("grace", 350)
	store.SubmitScore("ada", 150)

	best, err = store.Best()
	if err != nil {
		t.Fatalf("Best failed: %v", err)
	}
	if best == nil {
		t.Fatal("Best = nil, expected a high score")
	}
	if best.PlayerName != "grace" || best.Score != 350 {
		t.Errorf("Best = %+v, expected grace/350", best)
	}
}

func TestTopScoresOrdering(t *testing.T) {
	store := openTestStore(t)

	store.SubmitScore("ada", 120)
	store.SubmitScore("grace", 300)
	store.SubmitScore("alan", 210)
	store.SubmitScore("ada", 90)

	entries, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("TopScores returned %d entries, expected 3", len(entries))
	}

	wantScores := []int{300, 210, 120}
	for i, want := range wantScores {
		if entries[i].Score != want {
			t.Errorf("entry %d score = %d, expected %d", i, entries[i].Score, want)
		}
	}
	if entries[0].PlayerName != "grace" {
		t.Errorf("top entry player = %q, expected %q", entries[0].PlayerName, "grace")
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SubmitScore("ada", 100)
	store.SubmitScore("grace", 200)

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores failed: %v", err)
	}

	entries, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("TopScores returned %d entries after clear, expected 0", len(entries))
	}

	// The profile survives a score wipe.
	store.SavePlayerName("ada")
	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores failed: %v", err)
	}
	name, _ := store.PlayerName()
	if name != "ada" {
		t.Errorf("PlayerName = %q after ClearScores, expected %q", name, "ada")
	}
}
