package storage

import (
	"os"
	"path/filepath"
	"testing"
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

	id, err := store.SaveSession(Session{
		Preset:   "layered",
		Seed:     42,
		Width:    20,
		Height:   20,
		Ticks:    900,
		Deaths:   2,
		Duration: 30,
	})
	if err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	got, err := store.SessionByID(id)
	if err != nil {
		t.Fatalf("SessionByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("SessionByID() returned nil for a saved session")
	}
	if got.Preset != "layered" || got.Seed != 42 || got.Ticks != 900 || got.Deaths != 2 || got.Duration != 30 {
		t.Errorf("unexpected session %+v", got)
	}
	if got.Width != 20 || got.Height != 20 {
		t.Errorf("size = %dx%d, expected 20x20", got.Width, got.Height)
	}
	if got.Origin != "local" {
		t.Errorf("origin = %q, expected default %q", got.Origin, "local")
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}
}

func TestStoreSessionByIDMissing(t *testing.T) {
	store := openTestStore(t)

	got, err := store.SessionByID(999)
	if err != nil {
		t.Fatalf("SessionByID() failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing session, got %+v", got)
	}
}

func TestStoreRecentSessions(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 25; i++ {
		preset := "layered"
		if i%5 == 0 {
			preset = "flat"
		}
		if _, err := store.SaveSession(Session{Preset: preset, Seed: int64(i), Width: 10, Height: 10}); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	tests := []struct {
		name   string
		preset string
		limit  int
		want   int
	}{
		{"all with default limit", "", 0, 20},
		{"all limited", "", 5, 5},
		{"filtered", "flat", 10, 5},
		{"unknown preset", "deep", 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions, err := store.RecentSessions(tt.preset, tt.limit)
			if err != nil {
				t.Fatalf("RecentSessions() failed: %v", err)
			}
			if len(sessions) != tt.want {
				t.Errorf("got %d sessions, expected %d", len(sessions), tt.want)
			}
			for _, s := range sessions {
				if tt.preset != "" && s.Preset != tt.preset {
					t.Errorf("session %d has preset %q", s.ID, s.Preset)
				}
			}
		})
	}

	// Newest first
	sessions, _ := store.RecentSessions("", 3)
	if len(sessions) == 3 && (sessions[0].Seed != 24 || sessions[2].Seed != 22) {
		t.Errorf("unexpected order: %d, %d, %d", sessions[0].Seed, sessions[1].Seed, sessions[2].Seed)
	}
}

func TestStorePresetStats(t *testing.T) {
	store := openTestStore(t)

	saves := []Session{
		{Preset: "layered", Ticks: 100, Deaths: 1},
		{Preset: "layered", Ticks: 50, Deaths: 0},
		{Preset: "deep", Ticks: 10, Deaths: 3, Origin: "ssh"},
	}
	for _, s := range saves {
		if _, err := store.SaveSession(s); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	stats, err := store.PresetStats()
	if err != nil {
		t.Fatalf("PresetStats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected 2 presets, got %d", len(stats))
	}

	layered := stats["layered"]
	if layered == nil || layered.Sessions != 2 || layered.TotalTicks != 150 || layered.Deaths != 1 {
		t.Errorf("unexpected layered stats %+v", layered)
	}
	deep := stats["deep"]
	if deep == nil || deep.Sessions != 1 || deep.Deaths != 3 {
		t.Errorf("unexpected deep stats %+v", deep)
	}
}

func TestStoreClearSessions(t *testing.T) {
	store := openTestStore(t)

	for _, p := range []string{"flat", "flat", "deep"} {
		if _, err := store.SaveSession(Session{Preset: p}); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	if err := store.ClearSessions("flat"); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}
	sessions, _ := store.RecentSessions("", 10)
	if len(sessions) != 1 || sessions[0].Preset != "deep" {
		t.Errorf("expected only the deep session to remain, got %+v", sessions)
	}

	if err := store.ClearSessions(""); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}
	sessions, _ = store.RecentSessions("", 10)
	if len(sessions) != 0 {
		t.Errorf("expected empty history, got %d sessions", len(sessions))
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

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.sandbox/history.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".sandbox", "history.db")); err != nil {
		t.Errorf("Database file was not created under HOME: %v", err)
	}
}
