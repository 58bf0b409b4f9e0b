// Package service provides the business logic layer for the maze solver.
//
// The service package implements:
//   - Solve creation and retrieval
//   - Algorithm selection and comparison
//   - Maze library access
//   - Solve lifecycle management
//
// Core Interfaces:
//
// SolverService is the main service interface providing high-level solve operations.
// SessionManager handles solve storage, retrieval, and lifecycle.
// MazeManager manages maze library loading and validation.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP) and
// the solving algorithms, providing maze resolution, solve bookkeeping, and
// business logic orchestration. Each solve records one completed algorithm run
// against one maze.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	mazeMgr, err := library.NewManager("mazes")
//	if err != nil {
//		log.Fatal(err)
//	}
//	solverService := service.NewSolverService(sessionMgr, mazeMgr)
//
//	// Run an algorithm against a maze
//	solveInfo, err := solverService.CreateSolve(ctx, "classic", "astar")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Compare both algorithms on the same maze
//	comparison, err := solverService.CompareSolve(ctx, "classic")
//
// Solves are identified by unique IDs and are immutable once created. A maze
// with an unreachable end produces a solve with an empty path and Found set
// to false, never an error.
package service
