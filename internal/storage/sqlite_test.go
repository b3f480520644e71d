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

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "runs.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndTopScores(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{Player: "ana", Score: 100, PeakScore: 140, PeakTier: "Normal", Bricks: 14, Collisions: 3},
		{Player: "bo", Score: 350, PeakScore: 520, PeakTier: "Extreme", Bricks: 60, Collisions: 3},
		{Player: "ana", Score: 50, PeakScore: 90, PeakTier: "Normal", Bricks: 9, Collisions: 3},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}
	expected := []int{350, 100, 50}
	for i, score := range expected {
		if top[i].Score != score {
			t.Errorf("top[%d].Score = %d, expected %d", i, top[i].Score, score)
		}
	}
	if top[0].PeakTier != "Extreme" || top[0].PeakScore != 520 || top[0].Bricks != 60 {
		t.Errorf("run fields not round-tripped: %+v", top[0])
	}

	limited, _ := store.TopScores(2)
	if len(limited) != 2 {
		t.Errorf("TopScores(2) returned %d runs", len(limited))
	}
}

func TestStoreDurationAndSeed(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Player: "p", Score: 10, Duration: 42500 * time.Millisecond, Seed: 777})

	runs, err := store.RecentRuns(1)
	if err != nil || len(runs) != 1 {
		t.Fatalf("RecentRuns() = %v, %v", runs, err)
	}
	if runs[0].Duration != 42500*time.Millisecond {
		t.Errorf("Duration = %v, expected 42.5s", runs[0].Duration)
	}
	if runs[0].Seed != 777 {
		t.Errorf("Seed = %d, expected 777", runs[0].Seed)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 5; i++ {
		store.SaveRun(Run{Player: "p", Score: i * 10})
	}

	recent, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 3 || recent[0].Score != 50 || recent[2].Score != 30 {
		t.Errorf("RecentRuns(3) = %+v", recent)
	}
}

func TestStorePlayerRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Player: "ana", Score: 30})
	store.SaveRun(Run{Player: "bo", Score: 300})
	store.SaveRun(Run{Player: "ana", Score: 70})

	runs, err := store.PlayerRuns("ana", 10)
	if err != nil {
		t.Fatalf("PlayerRuns() failed: %v", err)
	}
	if len(runs) != 2 || runs[0].Score != 70 {
		t.Errorf("PlayerRuns(ana) = %+v", runs)
	}
}

func TestStoreHighScoreAndStats(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil || high != 0 {
		t.Errorf("HighScore() on empty store = %d, %v", high, err)
	}
	stats, err := store.Stats()
	if err != nil || stats.Runs != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Stats() on empty store = %+v, %v", stats, err)
	}

	store.SaveRun(Run{Player: "p", Score: 100})
	store.SaveRun(Run{Player: "p", Score: 300})

	high, _ = store.HighScore()
	if high != 300 {
		t.Errorf("HighScore() = %d, expected 300", high)
	}
	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.AvgScore != 200 || stats.TotalScore != 400 {
		t.Errorf("Stats() = %+v", stats)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)
	store.SaveRun(Run{Player: "p", Score: 100})

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	runs, _ := store.TopScores(10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
}
