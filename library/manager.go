package library

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mazeworks/maze-solver/maze"
	"github.com/mazeworks/maze-solver/service"
)

var (
	ErrMazeNotFound = errors.New("maze not found")
	ErrInvalidMaze  = errors.New("invalid maze")
)

// Manager handles maze library loading and caching
type Manager struct {
	mazeDir     string
	defaultName string
	defaultMaze *maze.Maze
	mazes       map[string]*maze.Maze
	mu          sync.RWMutex
}

// NewManager creates a new maze library manager
func NewManager(mazeDir string) (*Manager, error) {
	// Ensure maze directory exists
	if _, err := os.Stat(mazeDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("maze directory does not exist: %s", mazeDir)
	}

	m := &Manager{
		mazeDir: mazeDir,
		mazes:   make(map[string]*maze.Maze),
	}

	// Load default maze
	if err := m.loadDefaultMaze(); err != nil {
		return nil, fmt.Errorf("failed to load default maze: %w", err)
	}

	return m, nil
}

// LoadMaze loads a maze by name
func (m *Manager) LoadMaze(name string) (*maze.Maze, error) {
	m.mu.RLock()
	// Check cache first
	if mz, exists := m.mazes[name]; exists {
		m.mu.RUnlock()
		return mz, nil
	}
	m.mu.RUnlock()

	// Load from file
	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if mz, exists := m.mazes[name]; exists {
		return mz, nil
	}

	mz, err := m.loadFromDisk(name)
	if err != nil {
		return nil, err
	}

	// Cache the maze
	m.mazes[name] = mz
	return mz, nil
}

// loadFromDisk reads and parses a maze file. Callers hold the write lock.
func (m *Manager) loadFromDisk(name string) (*maze.Maze, error) {
	// Add .maze extension if not present
	filename := name
	if !strings.HasSuffix(filename, ".maze") {
		filename = name + ".maze"
	}

	mazePath := filepath.Join(m.mazeDir, filename)

	mz, err := maze.LoadFile(mazePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrMazeNotFound
		}
		var formatErr *maze.FormatError
		if errors.As(err, &formatErr) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidMaze, err)
		}
		return nil, fmt.Errorf("failed to read maze file: %w", err)
	}
	return mz, nil
}

// ListMazes returns information about all available mazes
func (m *Manager) ListMazes() ([]*service.MazeInfo, error) {
	entries, err := os.ReadDir(m.mazeDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read maze directory: %w", err)
	}

	var mazes []*service.MazeInfo

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".maze") {
			continue
		}

		// Remove .maze extension for maze name
		name := strings.TrimSuffix(entry.Name(), ".maze")

		// Try to load the maze to get details
		mz, err := m.LoadMaze(name)
		if err != nil {
			// Skip invalid mazes
			continue
		}

		mazes = append(mazes, &service.MazeInfo{
			Filename: entry.Name(),
			MazeID:   name, // This is the identifier to use for solve creation
			Width:    mz.Width(),
			Height:   mz.Height(),
			Barriers: countBarriers(mz),
			Start:    mz.Start(),
			End:      mz.End(),
		})
	}

	return mazes, nil
}

// GetDefault returns the default maze and its name
func (m *Manager) GetDefault() (string, *maze.Maze) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultName, m.defaultMaze
}

// SetDefault sets the default maze by name
func (m *Manager) SetDefault(name string) error {
	mz, err := m.LoadMaze(name)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultName = name
	m.defaultMaze = mz
	return nil
}

// RefreshCache reloads all cached mazes from disk
func (m *Manager) RefreshCache() error {
	m.mu.Lock()
	m.mazes = make(map[string]*maze.Maze)
	m.mu.Unlock()

	// Reload default maze
	return m.loadDefaultMaze()
}

// loadDefaultMaze loads the default maze
func (m *Manager) loadDefaultMaze() error {
	// Try to load classic.maze as default
	mz, err := m.LoadMaze("classic")
	if err == nil {
		m.storeDefault("classic", mz)
		return nil
	}

	// Try to load the first available maze
	mazes, listErr := m.ListMazes()
	if listErr != nil || len(mazes) == 0 {
		// Fall back to a built-in maze
		m.storeDefault("builtin", builtinMaze())
		return nil
	}

	name := mazes[0].MazeID
	mz, err = m.LoadMaze(name)
	if err != nil {
		m.storeDefault("builtin", builtinMaze())
		return nil
	}

	m.storeDefault(name, mz)
	return nil
}

func (m *Manager) storeDefault(name string, mz *maze.Maze) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultName = name
	m.defaultMaze = mz
}

// SaveMaze validates a maze definition and writes it to disk
func (m *Manager) SaveMaze(name, text string) error {
	// Validate before saving
	mz, err := maze.ParseString(text)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMaze, err)
	}

	// Add .maze extension if not present
	filename := name
	if !strings.HasSuffix(filename, ".maze") {
		filename = name + ".maze"
	}

	mazePath := filepath.Join(m.mazeDir, filename)

	if err := os.WriteFile(mazePath, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write maze file: %w", err)
	}

	// Update cache
	m.mu.Lock()
	m.mazes[strings.TrimSuffix(filename, ".maze")] = mz
	m.mu.Unlock()

	return nil
}

// builtinMaze returns a small always-available maze
func builtinMaze() *maze.Maze {
	mz, err := maze.ParseString(strings.Join([]string{
		"20000",
		"01110",
		"00000",
		"01110",
		"00003",
	}, "\n"))
	if err != nil {
		panic("builtin maze is invalid: " + err.Error())
	}
	return mz
}

func countBarriers(mz *maze.Maze) int {
	count := 0
	for y := 0; y < mz.Height(); y++ {
		for x := 0; x < mz.Width(); x++ {
			if mz.CellAt(maze.Position{X: x, Y: y}) == maze.Barrier {
				count++
			}
		}
	}
	return count
}
