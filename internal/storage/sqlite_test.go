package storage

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("cannot open test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, rec := range []struct{ score, tile int }{
		{100, 64}, {300, 256}, {200, 128},
	} {
		if _, err := store.SaveScore("qube", rec.score, rec.tile); err != nil {
			t.Fatalf("SaveScore failed: %v", err)
		}
	}

	entries, err := store.TopScores("qube", 10)
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}

	// Ordered by score descending.
	wantScores := []int{300, 200, 100}
	wantTiles := []int{256, 128, 64}
	for i, e := range entries {
		if e.Score != wantScores[i] {
			t.Errorf("entry %d score = %d, want %d", i, e.Score, wantScores[i])
		}
		if e.MaxTile != wantTiles[i] {
			t.Errorf("entry %d max tile = %d, want %d", i, e.MaxTile, wantTiles[i])
		}
		if e.GameID != "qube" {
			t.Errorf("entry %d game id = %q, want qube", i, e.GameID)
		}
	}
}

func TestTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		if _, err := store.SaveScore("qube", i*10, 2); err != nil {
			t.Fatalf("SaveScore failed: %v", err)
		}
	}

	entries, err := store.TopScores("qube", 3)
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("got %d entries, want limit of 3", len(entries))
	}
}

func TestScoresIsolatedPerVariant(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("qube", 500, 512)
	store.SaveScore("qube_faces", 900, 1024)

	entries, err := store.TopScores("qube", 10)
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Score != 500 {
		t.Errorf("qube scores = %+v, want only the 500 entry", entries)
	}
}

func TestHighScoreAndBestTile(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("qube")
	if err != nil {
		t.Fatalf("HighScore failed: %v", err)
	}
	if high != 0 {
		t.Errorf("high score of empty table = %d, want 0", high)
	}

	store.SaveScore("qube", 150, 128)
	store.SaveScore("qube", 75, 2048)

	high, err = store.HighScore("qube")
	if err != nil {
		t.Fatalf("HighScore failed: %v", err)
	}
	if high != 150 {
		t.Errorf("high score = %d, want 150", high)
	}

	tile, err := store.BestTile("qube")
	if err != nil {
		t.Fatalf("BestTile failed: %v", err)
	}
	if tile != 2048 {
		t.Errorf("best tile = %d, want 2048", tile)
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("qube", 100, 64)
	store.SaveScore("qube_faces", 200, 128)

	if err := store.ClearScores("qube"); err != nil {
		t.Fatalf("ClearScores failed: %v", err)
	}

	entries, _ := store.AllScores("qube")
	if len(entries) != 0 {
		t.Errorf("qube still has %d entries after clear", len(entries))
	}

	// Other variants are untouched.
	entries, _ = store.AllScores("qube_faces")
	if len(entries) != 1 {
		t.Errorf("qube_faces has %d entries, want 1", len(entries))
	}
}

func TestGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("qube", 100, 64)
	store.SaveScore("qube", 200, 256)
	store.SaveScore("qube", 300, 128)

	stats, err := store.GetGameStats("qube")
	if err != nil {
		t.Fatalf("GetGameStats failed: %v", err)
	}

	if stats.GamesCount != 3 {
		t.Errorf("games count = %d, want 3", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("high score = %d, want 300", stats.HighScore)
	}
	if stats.BestTile != 256 {
		t.Errorf("best tile = %d, want 256", stats.BestTile)
	}
	if stats.AvgScore != 200 {
		t.Errorf("avg score = %f, want 200", stats.AvgScore)
	}
	if stats.TotalScore != 600 {
		t.Errorf("total score = %d, want 600", stats.TotalScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("last played should be set")
	}
}

func TestGameStatsEmpty(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("qube")
	if err != nil {
		t.Fatalf("GetGameStats failed: %v", err)
	}
	if stats.GamesCount != 0 || stats.HighScore != 0 || stats.BestTile != 0 {
		t.Errorf("stats for empty table = %+v, want zeros", stats)
	}
}

func TestGetAllGamesStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("qube", 100, 64)
	store.SaveScore("qube_faces", 250, 512)

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats failed: %v", err)
	}

	if len(all) != 2 {
		t.Fatalf("got stats for %d variants, want 2", len(all))
	}
	if all["qube"].HighScore != 100 || all["qube_faces"].BestTile != 512 {
		t.Errorf("unexpected stats: %+v", all)
	}
}

func TestOpenCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "scores.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open with nested path failed: %v", err)
	}
	store.Close()
}
