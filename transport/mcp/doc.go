// Package mcp provides a Model Context Protocol interface for the maze solver.
//
// The mcp package implements:
//   - MCP server for AI agent integration
//   - Tool definitions for solving and inspecting mazes
//   - Thin-client proxying to the REST API
//   - Stdio and HTTP transport modes
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - list_mazes: List mazes available in the library
//   - get_maze: Fetch a maze's grid and metadata
//   - solve_maze: Run BFS or A* against a maze and store the result
//   - compare_algorithms: Run both algorithms and compare their work
//   - get_solve: Retrieve a stored solve by ID
//   - list_solves: List stored solves
//   - render_solve: ASCII rendering with path and visited overlays
//   - solver_guide: Maze format and algorithm reference
//
// Transport Modes:
//
// The server supports two transport modes:
//   - Stdio: Direct stdio communication for local MCP clients
//   - HTTP: HTTP endpoint for remote MCP integration
//
// Architecture:
//
// The client holds no solver state of its own. Every tool call is
// translated into one or more REST API requests, so the MCP surface and
// the HTTP surface always agree on what a solve looks like.
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	srv := client.GetMCPServer()
//
//	// Stdio mode
//	server.ServeStdio(srv)
//
//	// HTTP mode
//	httpServer := server.NewStreamableHTTPServer(srv)
//	mux.Handle("/mcp", httpServer)
package mcp
