package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, hs := range []struct {
		name  string
		score int
	}{
		{"ADA", 100},
		{"BOB", 50},
		{"CY", 200},
		{"DEE", 100},
	} {
		if err := store.SaveHighscore(hs.name, hs.score); err != nil {
			t.Fatalf("SaveHighscore() failed: %v", err)
		}
	}

	scores, err := store.TopHighscores(10)
	if err != nil {
		t.Fatalf("TopHighscores() failed: %v", err)
	}
	if len(scores) != 4 {
		t.Fatalf("Expected 4 scores, got %d", len(scores))
	}

	want := []string{"CY", "ADA", "DEE", "BOB"}
	for i, name := range want {
		if scores[i].Name != name {
			t.Errorf("scores[%d] = %+v, expected %s", i, scores[i], name)
		}
	}
	if scores[0].CreatedAt.IsZero() || time.Since(scores[0].CreatedAt) > 24*time.Hour {
		t.Errorf("CreatedAt = %v", scores[0].CreatedAt)
	}

	top2, err := store.TopHighscores(2)
	if err != nil {
		t.Fatalf("TopHighscores() failed: %v", err)
	}
	if len(top2) != 2 {
		t.Errorf("Expected 2 scores with limit, got %d", len(top2))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty store, got %d", high)
	}

	store.SaveHighscore("ADA", 100)
	store.SaveHighscore("BOB", 300)

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score 300, got %d", high)
	}
}

func TestStoreStatsAndClear(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Games != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveHighscore("ADA", 10)
	store.SaveHighscore("BOB", 30)

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Games != 2 || stats.HighScore != 30 || stats.AvgScore != 20 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	scores, err := store.TopHighscores(10)
	if err != nil {
		t.Fatalf("TopHighscores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
}

func TestStorePersistsAcrossOpen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SaveHighscore("ADA", 42); err != nil {
		t.Fatal(err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore()
	if err != nil || high != 42 {
		t.Errorf("HighScore() = %d, %v after reopen", high, err)
	}
}
