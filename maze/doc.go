// Package maze represents rectangular grid mazes loaded from text files.
//
// The maze package implements:
//   - Parsing and validation of the digit-based maze text format
//   - Bounds and barrier checks for positions
//   - Neighbor generation in a fixed four-direction order
//   - A debug renderer for quick terminal inspection
//
// Maze Text Format:
//
// A maze file contains one row per line, each character an ASCII digit:
//
//	0  empty cell
//	1  barrier (impassable)
//	2  start (exactly one per maze)
//	3  end (exactly one per maze)
//
// Blank lines are skipped. Rows must all have the same length. Violations
// of the format produce a *FormatError; I/O failures from LoadFile are
// returned unchanged.
//
// Usage:
//
//	m, err := maze.LoadFile("mazes/classic.maze")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	for _, n := range m.Neighbors(m.Start()) {
//		fmt.Println(n)
//	}
//
// Immutability:
//
// A Maze never changes after construction. Any number of solvers may read
// the same Maze concurrently without synchronization.
package maze
