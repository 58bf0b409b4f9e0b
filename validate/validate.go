// Command validate provides a small CLI that validates maze files in the
// ../mazes directory. It checks:
//   - Maze format: digits 0-3 only, rectangular rows
//   - Exactly one start (2) and one end (3) cell
//   - Connectivity: the end is reachable from the start via empty cells
//
// It prints a concise report per file and exits non-zero if any are invalid.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mazeworks/maze-solver/maze"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validateMaze loads and validates a single maze file. It performs format
// checks via the parser and reachability analysis for the end cell.
func validateMaze(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	m, err := maze.LoadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to load maze: %v", err))
		return result
	}

	barriers := 0
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if m.CellAt(maze.Position{X: x, Y: y}) == maze.Barrier {
				barriers++
			}
		}
	}

	// Connectivity check - the end must be reachable from the start
	connectivity := validateConnectivity(m)
	if !connectivity.Valid {
		result.Valid = false
	}
	result.Errors = append(result.Errors, connectivity.Errors...)

	// Add informational data
	if result.Valid {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Grid: %dx%d", m.Width(), m.Height()))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Barriers: %d", barriers))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Start: (%d,%d)", m.Start().X, m.Start().Y))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ End: (%d,%d)", m.End().X, m.End().Y))
	}

	return result
}

// validateConnectivity ensures the end cell is reachable from the start using
// 4-directional movement over non-barrier cells. It reports the number of
// reachable cells and returns an aggregated ValidationResult.
func validateConnectivity(m *maze.Maze) ValidationResult {
	result := ValidationResult{
		Valid:  true,
		Errors: []string{},
	}

	// Flood fill from the start to find all reachable cells
	visited := make(map[maze.Position]bool)
	queue := []maze.Position{m.Start()}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current] {
			continue
		}
		visited[current] = true

		for _, next := range m.Neighbors(current) {
			if !visited[next] {
				queue = append(queue, next)
			}
		}
	}

	if !visited[m.End()] {
		result.Valid = false
		result.Errors = append(result.Errors,
			fmt.Sprintf("Connectivity failure: end (%d,%d) unreachable from start (%d,%d), %d cells reachable",
				m.End().X, m.End().Y, m.Start().X, m.Start().Y, len(visited)))
	} else {
		result.Errors = append(result.Errors,
			fmt.Sprintf("✓ Connectivity: end reachable from start (%d cells explored)", len(visited)))
	}

	return result
}

// main scans ../mazes for *.maze files and validates each one, printing a
// concise report and exiting with non-zero status if any are invalid.
func main() {
	mazeDir := "../mazes"
	files, err := filepath.Glob(filepath.Join(mazeDir, "*.maze"))
	if err != nil {
		fmt.Printf("Error finding maze files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateMaze(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All mazes are valid!")
	} else {
		fmt.Println("❌ Some mazes have errors")
		os.Exit(1)
	}
}
