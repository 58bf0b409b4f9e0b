// Package library provides maze library management for the maze solver.
//
// The library package handles:
//   - Loading maze definitions from .maze text files
//   - Maze validation on load and save
//   - Default maze selection
//   - Maze discovery and listing
//
// Library Layout:
//
// Mazes are stored as plain text files in the mazes directory, one file
// per maze, named <maze-id>.maze. The file body uses the digit grid
// format described in the maze package (0=empty, 1=barrier, 2=start,
// 3=end).
//
// Usage:
//
//	manager, err := library.NewManager("mazes")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load a specific maze
//	m, err := manager.LoadMaze("classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Get the default maze
//	name, m := manager.GetDefault()
//
//	// List available mazes
//	mazes, err := manager.ListMazes()
//
// Loaded mazes are cached. Files that fail validation are skipped by
// ListMazes and reported as ErrInvalidMaze by LoadMaze. If no maze file
// named classic exists, the first available maze becomes the default; an
// empty directory falls back to a small built-in maze so the server can
// always start.
package library
