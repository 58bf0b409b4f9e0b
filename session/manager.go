package session

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mazeworks/maze-solver/service"
	"github.com/mazeworks/maze-solver/solver"
)

var (
	ErrSolveNotFound      = errors.New("solve not found")
	ErrSolveAlreadyExists = errors.New("solve already exists")
)

// Manager handles solve session lifecycle
type Manager struct {
	solves      map[string]*service.Session
	persistence SolvePersistence
	mu          sync.RWMutex
}

// NewManager creates a new solve session manager
func NewManager() *Manager {
	return &Manager{
		solves: make(map[string]*service.Session),
	}
}

// NewManagerWithPersistence creates a new solve session manager with persistence
func NewManagerWithPersistence(persistence SolvePersistence) *Manager {
	return &Manager{
		solves:      make(map[string]*service.Session),
		persistence: persistence,
	}
}

// Create stores a completed solve under the given ID. An empty ID gets
// a generated one.
func (m *Manager) Create(id, mazeName, algorithm string, result *solver.Result) (*service.Session, error) {
	if id == "" {
		id = uuid.NewString()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Check if solve already exists (case-insensitive)
	if m.solveExists(id) {
		return nil, ErrSolveAlreadyExists
	}

	session := &service.Session{
		ID:             id,
		MazeName:       mazeName,
		Algorithm:      algorithm,
		Result:         result,
		CreatedAt:      time.Now(),
		LastAccessedAt: time.Now(),
	}

	m.solves[strings.ToLower(id)] = session

	// Auto-save if persistence is enabled
	if m.persistence != nil {
		if err := m.persistence.Save(session); err != nil {
			// Log error but don't fail the creation
			fmt.Printf("Warning: Failed to persist solve %s: %v\n", id, err)
		}
	}

	return session, nil
}

// Get retrieves a solve by ID (case-insensitive)
func (m *Manager) Get(id string) (*service.Session, error) {
	m.mu.RLock()
	session, exists := m.solves[strings.ToLower(id)]
	m.mu.RUnlock()

	if exists {
		return session, nil
	}

	// Try loading from persistence if not in memory
	if m.persistence != nil && m.persistence.Exists(id) {
		session, err := m.persistence.Load(id)
		if err != nil {
			return nil, fmt.Errorf("failed to load persisted solve: %w", err)
		}

		// Add to memory cache
		m.mu.Lock()
		m.solves[strings.ToLower(id)] = session
		m.mu.Unlock()

		return session, nil
	}

	return nil, ErrSolveNotFound
}

// List returns all in-memory solves
func (m *Manager) List() []*service.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*service.Session, 0, len(m.solves))
	for _, session := range m.solves {
		result = append(result, session)
	}

	return result
}

// Delete removes a solve from memory and persistence
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	lowerID := strings.ToLower(id)
	inMemory := false

	if _, exists := m.solves[lowerID]; exists {
		delete(m.solves, lowerID)
		inMemory = true
	}

	// Delete from persistence if it exists
	if m.persistence != nil && m.persistence.Exists(id) {
		if err := m.persistence.Delete(id); err != nil {
			return fmt.Errorf("failed to delete persisted solve: %w", err)
		}
		return nil
	}

	// If not in persistence and not in memory, it doesn't exist
	if !inMemory {
		return ErrSolveNotFound
	}

	return nil
}

// DeleteFromMemory removes a solve from memory only (not from persistence)
func (m *Manager) DeleteFromMemory(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	lowerID := strings.ToLower(id)
	if _, exists := m.solves[lowerID]; exists {
		delete(m.solves, lowerID)
		return nil
	}

	return ErrSolveNotFound
}

// UpdateLastAccessed updates the last accessed time for a solve
func (m *Manager) UpdateLastAccessed(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, exists := m.solves[strings.ToLower(id)]
	if !exists {
		return ErrSolveNotFound
	}

	session.LastAccessedAt = time.Now()

	// Auto-save if persistence is enabled
	if m.persistence != nil {
		if err := m.persistence.Save(session); err != nil {
			fmt.Printf("Warning: Failed to persist solve %s after access update: %v\n", id, err)
		}
	}

	return nil
}

// Save saves a specific solve to persistence
func (m *Manager) Save(id string) error {
	if m.persistence == nil {
		return nil // No persistence configured
	}

	m.mu.RLock()
	session, exists := m.solves[strings.ToLower(id)]
	m.mu.RUnlock()

	if !exists {
		return ErrSolveNotFound
	}

	return m.persistence.Save(session)
}

// CleanupExpiredSolves removes solves that haven't been accessed in the given duration
func (m *Manager) CleanupExpiredSolves(maxAge time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	removed := 0

	for id, session := range m.solves {
		if session.LastAccessedAt.Before(cutoff) {
			delete(m.solves, id)
			removed++
		}
	}

	return removed
}

// Count returns the number of in-memory solves
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.solves)
}

// solveExists checks if a solve exists (case-insensitive). Callers hold the lock.
func (m *Manager) solveExists(id string) bool {
	_, exists := m.solves[strings.ToLower(id)]
	return exists
}

// LoadPersistedSolves loads all persisted solves into memory
func (m *Manager) LoadPersistedSolves() error {
	if m.persistence == nil {
		return nil // No persistence configured
	}

	solveIDs, err := m.persistence.ListAll()
	if err != nil {
		return fmt.Errorf("failed to list persisted solves: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	loadedCount := 0
	for _, id := range solveIDs {
		// Skip if already loaded in memory
		if _, exists := m.solves[strings.ToLower(id)]; exists {
			continue
		}

		session, err := m.persistence.Load(id)
		if err != nil {
			fmt.Printf("Warning: Failed to load persisted solve %s: %v\n", id, err)
			continue
		}

		m.solves[strings.ToLower(id)] = session
		loadedCount++
	}

	if loadedCount > 0 {
		fmt.Printf("Loaded %d persisted solves from storage\n", loadedCount)
	}

	return nil
}

// SaveAllSolves saves all in-memory solves to persistence
func (m *Manager) SaveAllSolves() error {
	if m.persistence == nil {
		return nil // No persistence configured
	}

	m.mu.RLock()
	solves := make([]*service.Session, 0, len(m.solves))
	for _, session := range m.solves {
		solves = append(solves, session)
	}
	m.mu.RUnlock()

	errorCount := 0
	for _, session := range solves {
		if err := m.persistence.Save(session); err != nil {
			fmt.Printf("Warning: Failed to save solve %s: %v\n", session.ID, err)
			errorCount++
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("failed to save %d solves", errorCount)
	}

	return nil
}
