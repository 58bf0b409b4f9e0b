package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mazeworks/maze-solver/service"
)

func createTestPersistence(t *testing.T) (*FilePersistence, string) {
	t.Helper()

	dir, err := os.MkdirTemp("", "solves-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })

	fp, err := NewFilePersistence(dir)
	if err != nil {
		t.Fatalf("Failed to create file persistence: %v", err)
	}
	return fp, dir
}

func testSession(t *testing.T, id string) *service.Session {
	t.Helper()
	return &service.Session{
		ID:             id,
		MazeName:       "tiny",
		Algorithm:      "bfs",
		Result:         testResult(t),
		CreatedAt:      time.Now().Add(-time.Minute).Truncate(time.Second),
		LastAccessedAt: time.Now().Truncate(time.Second),
	}
}

func TestNewFilePersistence(t *testing.T) {
	dir, err := os.MkdirTemp("", "solves-parent-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(dir)

	// Should create the nested directory
	nested := filepath.Join(dir, "a", "b", "solves")
	if _, err := NewFilePersistence(nested); err != nil {
		t.Fatalf("Failed to create persistence with nested dir: %v", err)
	}
	if _, err := os.Stat(nested); err != nil {
		t.Errorf("Expected solves directory to exist: %v", err)
	}
}

func TestFilePersistence_SaveLoad(t *testing.T) {
	fp, dir := createTestPersistence(t)
	sess := testSession(t, "round-trip")

	if err := fp.Save(sess); err != nil {
		t.Fatalf("Failed to save solve: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "round-trip.json")); err != nil {
		t.Fatalf("Expected solve file on disk: %v", err)
	}

	loaded, err := fp.Load("round-trip")
	if err != nil {
		t.Fatalf("Failed to load solve: %v", err)
	}

	if loaded.ID != sess.ID {
		t.Errorf("Expected ID '%s', got '%s'", sess.ID, loaded.ID)
	}
	if loaded.MazeName != sess.MazeName {
		t.Errorf("Expected maze name '%s', got '%s'", sess.MazeName, loaded.MazeName)
	}
	if loaded.Algorithm != sess.Algorithm {
		t.Errorf("Expected algorithm '%s', got '%s'", sess.Algorithm, loaded.Algorithm)
	}
	if loaded.Result == nil {
		t.Fatal("Expected loaded result to be non-nil")
	}
	if loaded.Result.PathLen != sess.Result.PathLen {
		t.Errorf("Expected path length %d, got %d", sess.Result.PathLen, loaded.Result.PathLen)
	}
	if len(loaded.Result.Path) != len(sess.Result.Path) {
		t.Errorf("Expected %d path cells, got %d", len(sess.Result.Path), len(loaded.Result.Path))
	}
	if !loaded.CreatedAt.Equal(sess.CreatedAt) {
		t.Errorf("Expected created at %v, got %v", sess.CreatedAt, loaded.CreatedAt)
	}
}

func TestFilePersistence_SaveNil(t *testing.T) {
	fp, _ := createTestPersistence(t)
	if err := fp.Save(nil); err == nil {
		t.Error("Expected error saving nil session")
	}
}

func TestFilePersistence_LoadMissing(t *testing.T) {
	fp, _ := createTestPersistence(t)
	_, err := fp.Load("missing")
	if !errors.Is(err, ErrSolveNotFound) {
		t.Errorf("Expected ErrSolveNotFound, got %v", err)
	}
}

func TestFilePersistence_LoadCorrupt(t *testing.T) {
	fp, dir := createTestPersistence(t)

	if err := os.WriteFile(filepath.Join(dir, "corrupt.json"), []byte("{not json"), 0644); err != nil {
		t.Fatalf("Failed to write corrupt file: %v", err)
	}

	if _, err := fp.Load("corrupt"); err == nil {
		t.Error("Expected error loading corrupt solve file")
	}
}

func TestFilePersistence_Delete(t *testing.T) {
	fp, _ := createTestPersistence(t)
	sess := testSession(t, "deletable")

	if err := fp.Save(sess); err != nil {
		t.Fatalf("Failed to save solve: %v", err)
	}

	if err := fp.Delete("deletable"); err != nil {
		t.Fatalf("Failed to delete solve: %v", err)
	}
	if fp.Exists("deletable") {
		t.Error("Expected solve to be gone after delete")
	}

	if err := fp.Delete("deletable"); !errors.Is(err, ErrSolveNotFound) {
		t.Errorf("Expected ErrSolveNotFound deleting twice, got %v", err)
	}
}

func TestFilePersistence_ListAll(t *testing.T) {
	fp, dir := createTestPersistence(t)

	for _, id := range []string{"one", "two", "three"} {
		if err := fp.Save(testSession(t, id)); err != nil {
			t.Fatalf("Failed to save solve %s: %v", id, err)
		}
	}

	// Non-JSON files are ignored
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("notes"), 0644)

	ids, err := fp.ListAll()
	if err != nil {
		t.Fatalf("Failed to list solves: %v", err)
	}
	if len(ids) != 3 {
		t.Errorf("Expected 3 solve IDs, got %d", len(ids))
	}

	found := make(map[string]bool)
	for _, id := range ids {
		found[id] = true
	}
	for _, id := range []string{"one", "two", "three"} {
		if !found[id] {
			t.Errorf("Solve ID '%s' not listed", id)
		}
	}
}

func TestManager_PersistenceIntegration(t *testing.T) {
	fp, _ := createTestPersistence(t)
	manager := NewManagerWithPersistence(fp)
	result := testResult(t)

	sess, err := manager.Create("persisted", "tiny", "bfs", result)
	if err != nil {
		t.Fatalf("Failed to create solve: %v", err)
	}

	// Create should write through to disk
	if !fp.Exists(sess.ID) {
		t.Error("Expected solve to be persisted on create")
	}

	// A fresh manager should load it on demand
	fresh := NewManagerWithPersistence(fp)
	loaded, err := fresh.Get("persisted")
	if err != nil {
		t.Fatalf("Failed to load persisted solve: %v", err)
	}
	if loaded.MazeName != "tiny" {
		t.Errorf("Expected maze name 'tiny', got '%s'", loaded.MazeName)
	}

	// Bulk load should populate memory
	bulk := NewManagerWithPersistence(fp)
	if err := bulk.LoadPersistedSolves(); err != nil {
		t.Fatalf("Failed to load persisted solves: %v", err)
	}
	if bulk.Count() != 1 {
		t.Errorf("Expected 1 loaded solve, got %d", bulk.Count())
	}

	// Delete should remove from both memory and disk
	if err := manager.Delete("persisted"); err != nil {
		t.Fatalf("Failed to delete solve: %v", err)
	}
	if fp.Exists("persisted") {
		t.Error("Expected persisted file to be removed")
	}
}
