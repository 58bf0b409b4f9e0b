// Package websocket provides WebSocket transport for the maze solver.
//
// The websocket package implements:
//   - Real-time solve result broadcasting
//   - Solve-aware WebSocket connections
//   - Connection lifecycle management
//   - Message routing and handling
//
// Architecture:
//
// The package uses a hub-and-spoke model where a central Hub manages all
// WebSocket connections. Each client connection is handled by a dedicated
// goroutine that manages reading, writing, and cleanup.
//
// Message Protocol:
//
// Messages are JSON-encoded with the following structure:
//   - Outgoing: {solve_id: "...", event: "solve_update", result: {...}}
//
// Incoming client messages are not processed; connections exist to watch
// a solve, and pings keep them alive.
//
// Solve Integration:
//
// WebSocket connections are solve-aware. Clients specify the solve ID via
// query parameter (?solve=<id>) when establishing the connection. Result
// updates are broadcast only to clients watching the same solve.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//
//	// inside an HTTP handler
//	hub.ServeWS(w, r, solveID)
//
// Connection Lifecycle:
//
// 1. Client connects with a solve ID
// 2. Connection registered with hub
// 3. Client receives result updates for that solve
// 4. Disconnection triggers cleanup
//
// Concurrency:
//
// The hub and client handlers are designed for concurrent operation.
// Multiple clients can connect, disconnect, and receive messages
// simultaneously without blocking each other.
package websocket
