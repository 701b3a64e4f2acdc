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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

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

func TestCurrentLevelDefault(t *testing.T) {
	store := openTestStore(t)

	lvl, err := store.CurrentLevel()
	if err != nil {
		t.Fatalf("CurrentLevel() failed: %v", err)
	}
	if lvl != FirstLevel {
		t.Errorf("Expected default level %d, got %d", FirstLevel, lvl)
	}
}

func TestSetCurrentLevel(t *testing.T) {
	tests := []struct {
		name string
		set  int
		want int
	}{
		{"normal", 4, 4},
		{"first", 1, 1},
		{"zero clamps", 0, 1},
		{"negative clamps", -3, 1},
		{"past the pack", 11, 11},
	}

	store := openTestStore(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := store.SetCurrentLevel(tt.set); err != nil {
				t.Fatalf("SetCurrentLevel(%d) failed: %v", tt.set, err)
			}
			got, err := store.CurrentLevel()
			if err != nil {
				t.Fatalf("CurrentLevel() failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("CurrentLevel() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestReset(t *testing.T) {
	store := openTestStore(t)

	if err := store.SetCurrentLevel(4); err != nil {
		t.Fatalf("SetCurrentLevel() failed: %v", err)
	}
	if err := store.ResetProgress(); err != nil {
		t.Fatalf("ResetProgress() failed: %v", err)
	}
	if lvl, _ := store.CurrentLevel(); lvl != FirstLevel {
		t.Errorf("After reset expected level %d, got %d", FirstLevel, lvl)
	}
}

func TestAllLevelsCompleted(t *testing.T) {
	store := openTestStore(t)

	if done, _ := store.AllLevelsCompleted(10); done {
		t.Error("fresh progress should not be complete")
	}
	if err := store.SetCurrentLevel(10); err != nil {
		t.Fatal(err)
	}
	if done, _ := store.AllLevelsCompleted(10); done {
		t.Error("playing the last level is not complete")
	}
	if err := store.SetCurrentLevel(11); err != nil {
		t.Fatal(err)
	}
	if done, _ := store.AllLevelsCompleted(10); !done {
		t.Error("progress past the last level should be complete")
	}
}

func TestProgressSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SetCurrentLevel(7); err != nil {
		t.Fatal(err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if lvl, _ := store.CurrentLevel(); lvl != 7 {
		t.Errorf("Expected level 7 after reopen, got %d", lvl)
	}
}
