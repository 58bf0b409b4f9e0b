package solver

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mazeworks/maze-solver/maze"
)

// Supported algorithm names.
const (
	AlgorithmBFS   = "bfs"
	AlgorithmAStar = "astar"
)

var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Strategy is a single-use maze solver bound to one Maze.
//
// Solve runs the search to completion and returns the ordered path from
// start to end, or an empty slice when no path exists (a normal outcome,
// not an error). A Strategy must not be reused: calling Solve a second
// time on the same instance would operate on stale search state.
//
// Visited returns the positions recorded during the run in insertion
// order, for callers that render explored cells. It is meaningful only
// after Solve has returned.
type Strategy interface {
	Solve() []maze.Position
	Visited() []maze.Position
}

// New constructs the named strategy bound to m. Algorithm names are
// case-insensitive.
func New(algorithm string, m *maze.Maze) (Strategy, error) {
	switch strings.ToLower(algorithm) {
	case AlgorithmBFS:
		return NewBFS(m), nil
	case AlgorithmAStar:
		return NewAStar(m), nil
	default:
		return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnknownAlgorithm, algorithm, strings.Join(Algorithms(), ", "))
	}
}

// Algorithms returns the supported algorithm names.
func Algorithms() []string {
	return []string{AlgorithmBFS, AlgorithmAStar}
}

// Result summarizes a finished solve for callers that outlive the
// single-use Strategy.
type Result struct {
	Algorithm string          `json:"algorithm"`
	Path      []maze.Position `json:"path"`
	Visited   []maze.Position `json:"visited"`
	Expanded  int             `json:"expanded"`
	PathLen   int             `json:"path_len"`
	Found     bool            `json:"found"`
	Duration  time.Duration   `json:"duration_ns"`
}

// Run constructs the named strategy, runs it once against m, and packages
// the outcome. An empty path yields Found=false, not an error.
func Run(algorithm string, m *maze.Maze) (*Result, error) {
	strategy, err := New(algorithm, m)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	path := strategy.Solve()
	elapsed := time.Since(started)

	visited := strategy.Visited()
	return &Result{
		Algorithm: strings.ToLower(algorithm),
		Path:      path,
		Visited:   visited,
		Expanded:  len(visited),
		PathLen:   len(path),
		Found:     len(path) > 0,
		Duration:  elapsed,
	}, nil
}

// reconstructPath walks parent links from current back to start and
// reverses the sequence into start-to-end order. The start position has
// no parent entry, which terminates the walk.
func reconstructPath(parent map[maze.Position]maze.Position, current, start maze.Position) []maze.Position {
	path := []maze.Position{current}
	for current != start {
		prev, ok := parent[current]
		if !ok {
			break
		}
		path = append(path, prev)
		current = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
