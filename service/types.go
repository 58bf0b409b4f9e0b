package service

import (
	"time"

	"github.com/mazeworks/maze-solver/maze"
	"github.com/mazeworks/maze-solver/solver"
)

// SolveInfo provides information about a solve session
type SolveInfo struct {
	ID             string         `json:"id"`
	MazeName       string         `json:"maze_name"`
	Algorithm      string         `json:"algorithm"`
	CreatedAt      time.Time      `json:"created_at"`
	LastAccessedAt time.Time      `json:"last_accessed_at"`
	Result         *solver.Result `json:"result"`
}

// SolveCells carries the cell sequences a renderer needs to highlight a
// finished solve against the maze grid
type SolveCells struct {
	MazeName string          `json:"maze_name"`
	Path     []maze.Position `json:"path"`
	Visited  []maze.Position `json:"visited"`
}

// CompareResult contains the outcome of running both algorithms against
// the same maze
type CompareResult struct {
	MazeName         string         `json:"maze_name"`
	BFS              *solver.Result `json:"bfs"`
	AStar            *solver.Result `json:"astar"`
	PathLengthsMatch bool           `json:"path_lengths_match"`
	ExpandedSaved    int            `json:"expanded_saved"` // BFS expansions minus A* expansions
}

// MazeInfo provides information about a maze in the library
type MazeInfo struct {
	Filename string        `json:"filename"`
	MazeID   string        `json:"maze_id"` // The identifier to use for solve creation
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	Barriers int           `json:"barriers"`
	Start    maze.Position `json:"start"`
	End      maze.Position `json:"end"`
}

// MazeDetail is the full representation of a library maze
type MazeDetail struct {
	MazeID string        `json:"maze_id"`
	Width  int           `json:"width"`
	Height int           `json:"height"`
	Start  maze.Position `json:"start"`
	End    maze.Position `json:"end"`
	Rows   []string      `json:"rows"`
}
