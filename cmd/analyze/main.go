// Command analyze prints quick, human-readable heuristics about maze files
// in a maze directory. It summarizes dimensions, barrier density, the
// Manhattan lower bound between start and end, and compares the work BFS
// and A* actually do on each maze.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mazeworks/maze-solver/maze"
	"github.com/mazeworks/maze-solver/solver"
)

func main() {
	mazeDir := flag.String("maze-dir", "mazes", "Directory containing maze files")
	flag.Parse()

	entries, err := os.ReadDir(*mazeDir)
	if err != nil {
		fmt.Printf("Error reading maze directory: %v\n", err)
		os.Exit(1)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".maze") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	if len(names) == 0 {
		fmt.Printf("No .maze files found in %s\n", *mazeDir)
		return
	}

	for _, name := range names {
		fmt.Printf("\n=== Analyzing %s ===\n", name)
		analyzeMaze(filepath.Join(*mazeDir, name))
	}
}

func analyzeMaze(path string) {
	m, err := maze.LoadFile(path)
	if err != nil {
		fmt.Printf("Error loading maze: %v\n", err)
		return
	}

	width, height := m.Width(), m.Height()
	total := width * height
	barriers := countBarriers(m)

	fmt.Printf("Grid Size: %d x %d (%d cells)\n", width, height, total)
	fmt.Printf("Barriers: %d (%.1f%% density)\n", barriers, 100*float64(barriers)/float64(total))
	fmt.Printf("Start: (%d, %d)\n", m.Start().X, m.Start().Y)
	fmt.Printf("End: (%d, %d)\n", m.End().X, m.End().Y)

	// Manhattan distance is a lower bound on any path length
	lowerBound := maze.ManhattanDistance(m.Start(), m.End()) + 1
	fmt.Printf("Manhattan Lower Bound: %d cells\n", lowerBound)

	bfs, err := solver.Run(solver.AlgorithmBFS, m)
	if err != nil {
		fmt.Printf("Error running BFS: %v\n", err)
		return
	}
	astar, err := solver.Run(solver.AlgorithmAStar, m)
	if err != nil {
		fmt.Printf("Error running A*: %v\n", err)
		return
	}

	if !bfs.Found {
		fmt.Printf("⚠️  WARNING: No path from start to end!\n")
		fmt.Printf("   BFS explored %d cells without reaching the end\n", bfs.Expanded)
		return
	}

	fmt.Printf("Shortest Path: %d cells", bfs.PathLen)
	if bfs.PathLen > lowerBound {
		fmt.Printf(" (%d detour cells beyond the lower bound)", bfs.PathLen-lowerBound)
	}
	fmt.Printf("\n")
	fmt.Printf("BFS Expanded: %d cells\n", bfs.Expanded)
	fmt.Printf("A* Expanded: %d cells\n", astar.Expanded)

	saved := bfs.Expanded - astar.Expanded
	if saved > 0 {
		fmt.Printf("✅ A* saved %d expansions (%.1f%% of BFS work)\n",
			saved, 100*float64(saved)/float64(bfs.Expanded))
	} else if saved < 0 {
		fmt.Printf("⚠️  A* expanded %d more cells than BFS on this maze\n", -saved)
	} else {
		fmt.Printf("Both algorithms expanded the same number of cells\n")
	}
}

func countBarriers(m *maze.Maze) int {
	count := 0
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if m.CellAt(maze.Position{X: x, Y: y}) == maze.Barrier {
				count++
			}
		}
	}
	return count
}
