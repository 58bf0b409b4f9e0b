package solver

import (
	"errors"
	"testing"

	"github.com/mazeworks/maze-solver/maze"
)

// Shared fixtures. Rows use the digit format: 0 empty, 1 barrier,
// 2 start, 3 end.
const (
	// 3x3 with a 4-edge shortest path.
	smallMazeText = "201\n000\n103"

	// Complete barrier wall between start and end.
	walledMazeText = "200\n111\n003"

	// Start boxed in by barriers.
	enclosedMazeText = "21000\n11000\n00000\n00000\n00003"

	// Larger maze with several equal-length shortest paths.
	openMazeText = "20000\n01110\n00000\n01110\n00003"

	// Winding corridor with a unique route.
	corridorMazeText = "21000\n01011\n01000\n01110\n00003"
)

func mustParse(t *testing.T, text string) *maze.Maze {
	t.Helper()
	m, err := maze.ParseString(text)
	if err != nil {
		t.Fatalf("Failed to parse maze fixture: %v", err)
	}
	return m
}

// shortestPathLen exhaustively explores all simple paths and returns the
// minimum edge count from start to end, or -1 when no path exists. Only
// usable on small fixtures.
func shortestPathLen(m *maze.Maze) int {
	best := -1
	onPath := make(map[maze.Position]bool)

	var walk func(p maze.Position, depth int)
	walk = func(p maze.Position, depth int) {
		if p == m.End() {
			if best == -1 || depth < best {
				best = depth
			}
			return
		}
		if best != -1 && depth >= best {
			return
		}
		onPath[p] = true
		for _, n := range m.Neighbors(p) {
			if !onPath[n] {
				walk(n, depth+1)
			}
		}
		delete(onPath, p)
	}

	walk(m.Start(), 0)
	return best
}

// checkPath verifies the path is non-empty, starts at the maze start,
// ends at the maze end, and every step is a unit move onto a valid cell.
func checkPath(t *testing.T, m *maze.Maze, path []maze.Position) {
	t.Helper()
	if len(path) == 0 {
		t.Fatal("Expected a non-empty path")
	}
	if path[0] != m.Start() {
		t.Errorf("Expected path to begin at start %v, got %v", m.Start(), path[0])
	}
	if path[len(path)-1] != m.End() {
		t.Errorf("Expected path to finish at end %v, got %v", m.End(), path[len(path)-1])
	}
	for i := 1; i < len(path); i++ {
		if maze.ManhattanDistance(path[i-1], path[i]) != 1 {
			t.Errorf("Step %d is not a unit move: %v -> %v", i, path[i-1], path[i])
		}
		if !m.IsValidPosition(path[i]) {
			t.Errorf("Step %d lands on an invalid cell: %v", i, path[i])
		}
	}
}

func TestNew(t *testing.T) {
	m := mustParse(t, smallMazeText)

	tests := []struct {
		algorithm string
		wantErr   bool
	}{
		{"bfs", false},
		{"astar", false},
		{"BFS", false},
		{"AStar", false},
		{"dijkstra", true},
		{"", true},
	}
	for _, tt := range tests {
		_, err := New(tt.algorithm, m)
		if tt.wantErr && !errors.Is(err, ErrUnknownAlgorithm) {
			t.Errorf("New(%q): expected ErrUnknownAlgorithm, got %v", tt.algorithm, err)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("New(%q): unexpected error %v", tt.algorithm, err)
		}
	}
}

func TestRun(t *testing.T) {
	m := mustParse(t, smallMazeText)

	result, err := Run(AlgorithmBFS, m)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !result.Found {
		t.Error("Expected Found=true")
	}
	if result.Algorithm != "bfs" {
		t.Errorf("Expected algorithm bfs, got %q", result.Algorithm)
	}
	if result.PathLen != len(result.Path) {
		t.Errorf("PathLen %d does not match len(Path) %d", result.PathLen, len(result.Path))
	}
	if result.Expanded != len(result.Visited) {
		t.Errorf("Expanded %d does not match len(Visited) %d", result.Expanded, len(result.Visited))
	}
}

func TestRun_UnknownAlgorithm(t *testing.T) {
	m := mustParse(t, smallMazeText)
	if _, err := Run("dfs", m); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("Expected ErrUnknownAlgorithm, got %v", err)
	}
}

func TestRun_NoPathIsNotAnError(t *testing.T) {
	m := mustParse(t, walledMazeText)

	for _, algorithm := range Algorithms() {
		result, err := Run(algorithm, m)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", algorithm, err)
		}
		if result.Found {
			t.Errorf("%s: expected Found=false for walled maze", algorithm)
		}
		if len(result.Path) != 0 {
			t.Errorf("%s: expected empty path, got %v", algorithm, result.Path)
		}
	}
}

func TestStrategies_MatchExhaustiveShortestPath(t *testing.T) {
	fixtures := map[string]string{
		"small":    smallMazeText,
		"open":     openMazeText,
		"corridor": corridorMazeText,
	}

	for name, text := range fixtures {
		t.Run(name, func(t *testing.T) {
			m := mustParse(t, text)
			want := shortestPathLen(m)
			if want < 0 {
				t.Fatal("Fixture must be solvable")
			}

			for _, algorithm := range Algorithms() {
				strategy, err := New(algorithm, m)
				if err != nil {
					t.Fatalf("New(%q) failed: %v", algorithm, err)
				}
				path := strategy.Solve()
				checkPath(t, m, path)
				if edges := len(path) - 1; edges != want {
					t.Errorf("%s: expected shortest path of %d edges, got %d", algorithm, want, edges)
				}
			}
		})
	}
}

func TestStrategies_AgreeOnPathLength(t *testing.T) {
	fixtures := []string{smallMazeText, openMazeText, corridorMazeText}

	for _, text := range fixtures {
		m := mustParse(t, text)
		bfsPath := NewBFS(m).Solve()
		astarPath := NewAStar(m).Solve()

		if len(bfsPath) != len(astarPath) {
			t.Errorf("BFS path length %d differs from A* path length %d for maze:\n%s",
				len(bfsPath), len(astarPath), m)
		}
	}
}

func TestStrategies_EnclosedStart(t *testing.T) {
	m := mustParse(t, enclosedMazeText)

	for _, algorithm := range Algorithms() {
		strategy, err := New(algorithm, m)
		if err != nil {
			t.Fatalf("New(%q) failed: %v", algorithm, err)
		}
		if path := strategy.Solve(); len(path) != 0 {
			t.Errorf("%s: expected empty path for enclosed start, got %v", algorithm, path)
		}
	}
}
