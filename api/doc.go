// Package api provides HTTP REST API handlers for the maze solver.
//
// The api package implements:
//   - RESTful endpoints for solve operations
//   - Algorithm comparison endpoint
//   - Maze library listing, retrieval, and creation
//   - WebSocket upgrade handling
//
// Endpoints:
//
// Solve Management:
//   - POST /api/solves - Run an algorithm against a maze and store the result
//   - GET /api/solves - List stored solves (sort/order/limit query params)
//   - GET /api/solves/{id} - Get a specific solve
//   - DELETE /api/solves/{id} - Delete a solve
//   - GET /api/solves/{id}/cells - Get the path and visited cell sequences
//
// Comparison:
//   - POST /api/compare - Run BFS and A* against the same maze
//
// Maze Library:
//   - GET /api/mazes - List available mazes
//   - GET /api/mazes/{name} - Get maze details including its rows
//   - POST /api/mazes - Validate and save a new maze
//
// Health:
//   - GET /api/health - Liveness check
//
// Request/Response Format:
//
// All endpoints accept and return JSON.
//
// Solves are created with a POST body:
//
//	{
//	  "maze_id": "classic",   // optional, library default when omitted
//	  "algorithm": "astar"    // optional, "bfs" when omitted
//	}
//
// A maze whose end cannot be reached still produces a 201 response; the
// stored result has found=false and an empty path.
//
// Usage:
//
//	server := api.NewServer(solverService, hub)
//	http.ListenAndServe(":8080", server)
//
// Error Handling:
//
// Errors are returned as JSON with appropriate HTTP status codes:
//
//	{
//	  "error": "error message"
//	}
package api
