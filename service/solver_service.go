package service

import (
	"context"
	"time"

	"github.com/mazeworks/maze-solver/maze"
	"github.com/mazeworks/maze-solver/solver"
)

// SolverService defines all maze-solving operations
type SolverService interface {
	// Solve Management
	CreateSolve(ctx context.Context, mazeName, algorithm string) (*SolveInfo, error)
	GetSolve(ctx context.Context, solveID string) (*SolveInfo, error)
	ListSolves(ctx context.Context) ([]*SolveInfo, error)
	DeleteSolve(ctx context.Context, solveID string) error

	// Rendering Support
	GetSolveCells(ctx context.Context, solveID string) (*SolveCells, error)

	// Algorithm Comparison
	CompareSolve(ctx context.Context, mazeName string) (*CompareResult, error)

	// Maze Library
	ListMazes(ctx context.Context) ([]*MazeInfo, error)
	LoadMaze(ctx context.Context, mazeName string) (*maze.Maze, error)
	SaveMaze(ctx context.Context, mazeName, text string) error
}

// SessionManager defines solve session storage operations
type SessionManager interface {
	Create(id, mazeName, algorithm string, result *solver.Result) (*Session, error)
	Get(id string) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
	Save(id string) error
}

// MazeManager handles maze library loading
type MazeManager interface {
	LoadMaze(name string) (*maze.Maze, error)
	ListMazes() ([]*MazeInfo, error)
	GetDefault() (string, *maze.Maze)
	SaveMaze(name, text string) error
}

// Session represents a completed solve run kept for later retrieval
type Session struct {
	ID             string
	MazeName       string
	Algorithm      string
	Result         *solver.Result
	CreatedAt      time.Time
	LastAccessedAt time.Time
}
