package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mazeworks/maze-solver/service"
)

// FilePersistence implements SolvePersistence using file system storage
type FilePersistence struct {
	solvesDir string
}

// NewFilePersistence creates a new file-based solve persistence layer
func NewFilePersistence(solvesDir string) (*FilePersistence, error) {
	// Create solves directory if it doesn't exist
	if err := os.MkdirAll(solvesDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create solves directory: %w", err)
	}

	return &FilePersistence{
		solvesDir: solvesDir,
	}, nil
}

// Save persists a solve session to a JSON file
func (fp *FilePersistence) Save(session *service.Session) error {
	if session == nil {
		return fmt.Errorf("session cannot be nil")
	}

	data := PersistedSolveData{
		ID:             session.ID,
		MazeName:       session.MazeName,
		Algorithm:      session.Algorithm,
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		Result:         session.Result,
	}

	// Marshal to JSON with indentation for readability
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal solve data: %w", err)
	}

	filePath := fp.getFilePath(session.ID)
	if err := os.WriteFile(filePath, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write solve file: %w", err)
	}

	return nil
}

// Load retrieves a solve session from a JSON file
func (fp *FilePersistence) Load(id string) (*service.Session, error) {
	filePath := fp.getFilePath(id)

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, ErrSolveNotFound
	}

	jsonData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read solve file: %w", err)
	}

	var data PersistedSolveData
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal solve data: %w", err)
	}

	if data.Result == nil {
		return nil, fmt.Errorf("solve file %s has no result", filePath)
	}

	session := &service.Session{
		ID:             data.ID,
		MazeName:       data.MazeName,
		Algorithm:      data.Algorithm,
		Result:         data.Result,
		CreatedAt:      data.CreatedAt,
		LastAccessedAt: data.LastAccessedAt,
	}

	return session, nil
}

// Delete removes a solve file
func (fp *FilePersistence) Delete(id string) error {
	filePath := fp.getFilePath(id)

	if !fp.Exists(id) {
		return ErrSolveNotFound
	}

	if err := os.Remove(filePath); err != nil {
		return fmt.Errorf("failed to remove solve file: %w", err)
	}

	return nil
}

// ListAll returns all persisted solve IDs
func (fp *FilePersistence) ListAll() ([]string, error) {
	entries, err := os.ReadDir(fp.solvesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read solves directory: %w", err)
	}

	var solveIDs []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if strings.HasSuffix(name, ".json") {
			solveIDs = append(solveIDs, strings.TrimSuffix(name, ".json"))
		}
	}

	return solveIDs, nil
}

// Exists checks if a solve file exists
func (fp *FilePersistence) Exists(id string) bool {
	_, err := os.Stat(fp.getFilePath(id))
	return err == nil
}

// getFilePath returns the full file path for a solve ID
func (fp *FilePersistence) getFilePath(id string) string {
	return filepath.Join(fp.solvesDir, fmt.Sprintf("%s.json", id))
}
