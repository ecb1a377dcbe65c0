package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []RunRecord{
		{Seed: "0x12345678", Score: 57.25, Ticks: 1800, Collided: true},
		{Seed: "0x12345678", Score: 12.50, Ticks: 500, Collided: true},
		{Seed: "0x12345678", Score: 103.75, Ticks: 3200, Collided: true},
		{Seed: "0xdeadbeef", Score: 44.00, Ticks: 1400, Collided: false},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	// Retrieve runs for one seed
	got, err := store.RunsForSeed("0x12345678", 10)
	if err != nil {
		t.Fatalf("RunsForSeed() failed: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(got))
	}

	// Should be sorted descending by score
	if got[0].Score != 103.75 || got[1].Score != 57.25 || got[2].Score != 12.50 {
		t.Errorf("Runs not in expected order: %v", got)
	}
	if got[0].Ticks != 3200 || !got[0].Collided {
		t.Errorf("Run fields not round-tripped: %+v", got[0])
	}

	// The other seed is untouched
	other, err := store.RunsForSeed("0xdeadbeef", 10)
	if err != nil {
		t.Fatalf("RunsForSeed() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 run for other seed, got %d", len(other))
	}
	if other[0].Collided {
		t.Error("Collided flag should round-trip as false")
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(RunRecord{Seed: "0x1", Score: float64((i + 1) * 100)})
	}

	// Request only top 3
	got, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(got))
	}

	if got[0].Score != 500 || got[1].Score != 400 || got[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", got)
	}
}

func TestStoreTopRunsAcrossSeeds(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{Seed: "0x1", Score: 10})
	store.SaveRun(RunRecord{Seed: "0x2", Score: 30})
	store.SaveRun(RunRecord{Seed: "0x3", Score: 20})

	got, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(got))
	}
	if got[0].Seed != "0x2" {
		t.Errorf("Best run should come from seed 0x2, got %q", got[0].Seed)
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	// No runs yet
	best, ok, err := store.BestScore("0x12345678")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if ok || best != 0 {
		t.Errorf("Expected no best score for empty seed, got %v (ok=%v)", best, ok)
	}

	store.SaveRun(RunRecord{Seed: "0x12345678", Score: 10.5})
	store.SaveRun(RunRecord{Seed: "0x12345678", Score: 30.25})
	store.SaveRun(RunRecord{Seed: "0x12345678", Score: 20.0})

	best, ok, err = store.BestScore("0x12345678")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if !ok || best != 30.25 {
		t.Errorf("Expected best score of 30.25, got %v (ok=%v)", best, ok)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{Seed: "0x1", Score: 100})
	store.SaveRun(RunRecord{Seed: "0x1", Score: 200})
	store.SaveRun(RunRecord{Seed: "0x2", Score: 300})

	// Clear only one seed
	if err := store.ClearRuns("0x1"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	cleared, _ := store.RunsForSeed("0x1", 10)
	if len(cleared) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(cleared))
	}

	kept, _ := store.RunsForSeed("0x2", 10)
	if len(kept) != 1 {
		t.Errorf("Other seed should not be affected by clear")
	}
}

func TestStoreSeedStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{Seed: "0x1", Score: 10})
	store.SaveRun(RunRecord{Seed: "0x1", Score: 30})
	store.SaveRun(RunRecord{Seed: "0x2", Score: 999})

	stats, err := store.GetSeedStats("0x1")
	if err != nil {
		t.Fatalf("GetSeedStats() failed: %v", err)
	}
	if stats.RunsCount != 2 {
		t.Errorf("RunsCount = %d, want 2", stats.RunsCount)
	}
	if stats.BestScore != 30 {
		t.Errorf("BestScore = %v, want 30", stats.BestScore)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %v, want 20", stats.AvgScore)
	}
}

func TestStoreSeeds(t *testing.T) {
	store := openTestStore(t)

	seeds, err := store.Seeds()
	if err != nil {
		t.Fatalf("Seeds() failed: %v", err)
	}
	if len(seeds) != 0 {
		t.Errorf("Expected no seeds in empty store, got %v", seeds)
	}

	store.SaveRun(RunRecord{Seed: "0x2", Score: 1})
	store.SaveRun(RunRecord{Seed: "0x1", Score: 2})
	store.SaveRun(RunRecord{Seed: "0x1", Score: 3})

	seeds, err = store.Seeds()
	if err != nil {
		t.Fatalf("Seeds() failed: %v", err)
	}
	if len(seeds) != 2 || seeds[0] != "0x1" || seeds[1] != "0x2" {
		t.Errorf("Seeds() = %v, want [0x1 0x2]", seeds)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
