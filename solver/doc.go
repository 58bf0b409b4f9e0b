// Package solver implements the maze search strategies.
//
// Two interchangeable strategies are provided:
//   - BFS: unweighted breadth-first search
//   - A*: heuristic-guided search using Manhattan distance
//
// Both return a shortest path (minimum edge count) from the maze start to
// its end, or an empty path when the end is unreachable. An unreachable
// end is a normal, representable outcome and is never reported as an
// error.
//
// Usage:
//
//	result, err := solver.Run(solver.AlgorithmAStar, m)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if !result.Found {
//		fmt.Println("no path")
//	}
//
// Strategies are single-use: one Solve call per instance. The Visited
// sequence preserves insertion order so renderers can replay the
// exploration deterministically.
//
// Concurrency:
//
// A strategy owns its queue, visited set and cost maps exclusively and
// runs synchronously to completion with no suspension points. Multiple
// strategy instances may run concurrently against the same Maze because
// the Maze is read-only after construction. Callers needing a time budget
// wrap the call externally.
package solver
