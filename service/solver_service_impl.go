package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/mazeworks/maze-solver/maze"
	"github.com/mazeworks/maze-solver/solver"
)

// solverServiceImpl implements the SolverService interface
type solverServiceImpl struct {
	sessions SessionManager
	mazes    MazeManager
	mu       sync.RWMutex
}

// NewSolverService creates a new solver service instance
func NewSolverService(sessions SessionManager, mazes MazeManager) SolverService {
	return &solverServiceImpl{
		sessions: sessions,
		mazes:    mazes,
	}
}

// CreateSolve loads the named maze, runs the chosen algorithm to
// completion and stores the outcome as a new solve session. An empty
// mazeName selects the library default; an empty algorithm selects BFS.
// An unreachable end yields a stored result with Found=false, not an
// error.
func (s *solverServiceImpl) CreateSolve(ctx context.Context, mazeName, algorithm string) (*SolveInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if algorithm == "" {
		algorithm = solver.AlgorithmBFS
	}

	m, resolvedName, err := s.resolveMaze(mazeName)
	if err != nil {
		return nil, err
	}

	result, err := solver.Run(algorithm, m)
	if err != nil {
		return nil, fmt.Errorf("failed to solve maze %s: %w", resolvedName, err)
	}

	// Let the session manager generate the solve ID
	session, err := s.sessions.Create("", resolvedName, result.Algorithm, result)
	if err != nil {
		return nil, fmt.Errorf("failed to create solve session: %w", err)
	}

	return sessionInfo(session), nil
}

// GetSolve retrieves solve session information
func (s *solverServiceImpl) GetSolve(ctx context.Context, solveID string) (*SolveInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(solveID)
	if err != nil {
		return nil, fmt.Errorf("solve not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(solveID)
	return sessionInfo(session), nil
}

// ListSolves returns all stored solve sessions
func (s *solverServiceImpl) ListSolves(ctx context.Context) ([]*SolveInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SolveInfo, 0, len(sessions))
	for _, sess := range sessions {
		result = append(result, sessionInfo(sess))
	}
	return result, nil
}

// DeleteSolve removes a solve session
func (s *solverServiceImpl) DeleteSolve(ctx context.Context, solveID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Delete(solveID)
}

// GetSolveCells returns the path and visited sequences of a stored solve
func (s *solverServiceImpl) GetSolveCells(ctx context.Context, solveID string) (*SolveCells, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(solveID)
	if err != nil {
		return nil, fmt.Errorf("solve not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(solveID)
	return &SolveCells{
		MazeName: session.MazeName,
		Path:     session.Result.Path,
		Visited:  session.Result.Visited,
	}, nil
}

// CompareSolve runs BFS and A* against the same maze and reports both
// results. Both algorithms must agree on path length for any solvable
// maze; the flag is included so callers can assert it cheaply.
func (s *solverServiceImpl) CompareSolve(ctx context.Context, mazeName string) (*CompareResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, resolvedName, err := s.resolveMaze(mazeName)
	if err != nil {
		return nil, err
	}

	bfsResult, err := solver.Run(solver.AlgorithmBFS, m)
	if err != nil {
		return nil, fmt.Errorf("bfs run failed for maze %s: %w", resolvedName, err)
	}
	astarResult, err := solver.Run(solver.AlgorithmAStar, m)
	if err != nil {
		return nil, fmt.Errorf("astar run failed for maze %s: %w", resolvedName, err)
	}

	// Keep both runs retrievable afterwards
	if _, err := s.sessions.Create("", resolvedName, bfsResult.Algorithm, bfsResult); err != nil {
		log.Printf("Warning: failed to store bfs solve for %s: %v", resolvedName, err)
	}
	if _, err := s.sessions.Create("", resolvedName, astarResult.Algorithm, astarResult); err != nil {
		log.Printf("Warning: failed to store astar solve for %s: %v", resolvedName, err)
	}

	return &CompareResult{
		MazeName:         resolvedName,
		BFS:              bfsResult,
		AStar:            astarResult,
		PathLengthsMatch: bfsResult.PathLen == astarResult.PathLen,
		ExpandedSaved:    bfsResult.Expanded - astarResult.Expanded,
	}, nil
}

// ListMazes returns the available library mazes
func (s *solverServiceImpl) ListMazes(ctx context.Context) ([]*MazeInfo, error) {
	return s.mazes.ListMazes()
}

// LoadMaze loads a specific library maze
func (s *solverServiceImpl) LoadMaze(ctx context.Context, mazeName string) (*maze.Maze, error) {
	return s.mazes.LoadMaze(mazeName)
}

// SaveMaze validates and stores a maze definition in the library
func (s *solverServiceImpl) SaveMaze(ctx context.Context, mazeName, text string) error {
	return s.mazes.SaveMaze(mazeName, text)
}

// resolveMaze loads mazeName, or the library default when empty. On a
// lookup miss it lists the available maze IDs in the error message.
func (s *solverServiceImpl) resolveMaze(mazeName string) (*maze.Maze, string, error) {
	if mazeName == "" {
		name, m := s.mazes.GetDefault()
		return m, name, nil
	}

	m, err := s.mazes.LoadMaze(mazeName)
	if err != nil {
		// Provide helpful error message with available options
		if strings.Contains(err.Error(), "maze not found") {
			if available, listErr := s.mazes.ListMazes(); listErr == nil && len(available) > 0 {
				var mazeIDs []string
				for _, info := range available {
					mazeIDs = append(mazeIDs, info.MazeID)
				}
				return nil, "", fmt.Errorf("maze '%s' not found. Available mazes: %v", mazeName, mazeIDs)
			}
			return nil, "", fmt.Errorf("maze '%s' not found. Use /api/mazes to list available mazes", mazeName)
		}
		return nil, "", fmt.Errorf("failed to load maze %s: %w", mazeName, err)
	}
	return m, mazeName, nil
}

func sessionInfo(session *Session) *SolveInfo {
	return &SolveInfo{
		ID:             session.ID,
		MazeName:       session.MazeName,
		Algorithm:      session.Algorithm,
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		Result:         session.Result,
	}
}
