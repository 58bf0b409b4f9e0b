package session

import (
	"time"

	"github.com/mazeworks/maze-solver/service"
	"github.com/mazeworks/maze-solver/solver"
)

// SolvePersistence defines the interface for persisting solve sessions
type SolvePersistence interface {
	// Save persists a solve session to storage
	Save(session *service.Session) error

	// Load retrieves a solve session from storage by ID
	Load(id string) (*service.Session, error)

	// Delete removes a solve session from storage
	Delete(id string) error

	// ListAll returns all persisted solve IDs
	ListAll() ([]string, error)

	// Exists checks if a solve session exists in storage
	Exists(id string) bool
}

// PersistedSolveData represents the JSON structure for persisted solves
type PersistedSolveData struct {
	ID             string         `json:"id"`
	MazeName       string         `json:"maze_name"`
	Algorithm      string         `json:"algorithm"`
	CreatedAt      time.Time      `json:"created_at"`
	LastAccessedAt time.Time      `json:"last_accessed_at"`
	Result         *solver.Result `json:"result"`
}
