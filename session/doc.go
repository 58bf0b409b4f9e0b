// Package session provides solve session management for the maze solver.
//
// The session package implements:
//   - Thread-safe solve storage and retrieval
//   - Unique solve ID generation
//   - Solve lifecycle management
//   - Optional file-based persistence
//   - Cleanup and expiration of stale solves
//
// Core Types:
//
// Manager is the main solve manager that handles all solve operations.
// A solve records the outcome of running one algorithm against one maze,
// plus metadata like creation time and last access time.
//
// Solve Identifiers:
//
// Solves use UUID identifiers generated on creation. Lookups are
// case-insensitive.
//
// Concurrency:
//
// The manager is thread-safe and supports concurrent operations. Multiple
// goroutines can safely create, retrieve, and delete different solves
// simultaneously. Internal locking ensures data consistency.
//
// Usage:
//
//	manager := session.NewManager()
//
//	// Store a completed solve
//	sess, err := manager.Create("", "classic", result.Algorithm, result)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Retrieve an existing solve
//	sess, err = manager.Get(solveID)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// List all stored solves
//	solves := manager.List()
//
// Persistence:
//
// NewManagerWithPersistence wires a SolvePersistence implementation into
// the manager. Solves are written through on create and access, loaded on
// a memory miss, and restored in bulk with LoadPersistedSolves. Save
// failures are logged and never fail the triggering operation.
package session
