package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/mazeworks/maze-solver/service"
	"github.com/mazeworks/maze-solver/solver"
	"github.com/mazeworks/maze-solver/transport/websocket"
)

// Server represents the REST API server
type Server struct {
	service service.SolverService
	hub     *websocket.Hub
	router  *mux.Router
}

// NewServer creates a new API server
func NewServer(solverService service.SolverService, hub *websocket.Hub) *Server {
	s := &Server{
		service: solverService,
		hub:     hub,
		router:  mux.NewRouter(),
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	// API routes with clean REST patterns
	api := s.router.PathPrefix("/api").Subrouter()

	// Solve management
	api.HandleFunc("/solves", s.handleCreateSolve).Methods("POST")
	api.HandleFunc("/solves", s.handleListSolves).Methods("GET")
	api.HandleFunc("/solves/{id}", s.handleGetSolve).Methods("GET")
	api.HandleFunc("/solves/{id}", s.handleDeleteSolve).Methods("DELETE")
	api.HandleFunc("/solves/{id}/cells", s.handleGetSolveCells).Methods("GET")

	// Algorithm comparison
	api.HandleFunc("/compare", s.handleCompare).Methods("POST")

	// Maze library
	api.HandleFunc("/mazes", s.handleListMazes).Methods("GET")
	api.HandleFunc("/mazes", s.handleCreateMaze).Methods("POST")
	api.HandleFunc("/mazes/{name}", s.handleGetMaze).Methods("GET")

	// Health check
	api.HandleFunc("/health", s.handleHealth).Methods("GET")

	// WebSocket
	s.router.HandleFunc("/ws", s.handleWebSocket)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// solveErrorStatus maps solve creation failures to status codes: unknown
// algorithm is a client error, a missing maze is a lookup miss, anything
// else is a server fault.
func solveErrorStatus(err error) int {
	switch {
	case errors.Is(err, solver.ErrUnknownAlgorithm):
		return http.StatusBadRequest
	case strings.Contains(err.Error(), "not found"):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Solve Handlers

func (s *Server) handleCreateSolve(w http.ResponseWriter, r *http.Request) {
	var req struct {
		MazeID    string `json:"maze_id,omitempty"`
		Algorithm string `json:"algorithm,omitempty"`
	}

	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req)
	}

	solve, err := s.service.CreateSolve(r.Context(), req.MazeID, req.Algorithm)
	if err != nil {
		respondError(w, solveErrorStatus(err), err.Error())
		return
	}

	// Broadcast to WebSocket clients
	if s.hub != nil {
		s.hub.BroadcastToSolve(solve.ID, solve.Result)
	}

	// Compact server log for observability
	res := solve.Result
	status := "NO_PATH"
	if res.Found {
		status = "OK"
	}
	fmt.Printf("[SOLVE] id=%s maze=%s algo=%s path=%d expanded=%d status=%s\n",
		solve.ID, solve.MazeName, solve.Algorithm, res.PathLen, res.Expanded, status)

	respondJSON(w, http.StatusCreated, solve)
}

func (s *Server) handleListSolves(w http.ResponseWriter, r *http.Request) {
	solves, err := s.service.ListSolves(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Parse query parameters
	query := r.URL.Query()
	sortBy := query.Get("sort")    // "created", "accessed" (default)
	order := query.Get("order")    // "asc", "desc" (default: "desc")
	limitStr := query.Get("limit") // number of solves to return

	// Set defaults
	if sortBy == "" {
		sortBy = "accessed"
	}
	if order == "" {
		order = "desc"
	}

	// Sort solves
	sort.Slice(solves, func(i, j int) bool {
		var ti, tj time.Time
		if sortBy == "created" {
			ti, tj = solves[i].CreatedAt, solves[j].CreatedAt
		} else { // "accessed"
			ti, tj = solves[i].LastAccessedAt, solves[j].LastAccessedAt
		}

		if order == "asc" {
			return ti.Before(tj)
		}
		return ti.After(tj) // desc
	})

	// Apply limit if specified
	limit := len(solves)
	if limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l < len(solves) {
			limit = l
		}
	}
	solves = solves[:limit]

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count":  len(solves),
		"solves": solves,
		"sort":   sortBy,
		"order":  order,
	})
}

func (s *Server) handleGetSolve(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	solveID := vars["id"]

	solve, err := s.service.GetSolve(r.Context(), solveID)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, solve)
}

func (s *Server) handleDeleteSolve(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	solveID := vars["id"]

	err := s.service.DeleteSolve(r.Context(), solveID)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Solve %s deleted", solveID),
	})
}

func (s *Server) handleGetSolveCells(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	solveID := vars["id"]

	cells, err := s.service.GetSolveCells(r.Context(), solveID)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, cells)
}

// Comparison Handler

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req struct {
		MazeID string `json:"maze_id,omitempty"`
	}

	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req)
	}

	result, err := s.service.CompareSolve(r.Context(), req.MazeID)
	if err != nil {
		respondError(w, solveErrorStatus(err), err.Error())
		return
	}

	// Compact server log for observability
	fmt.Printf("[COMPARE] maze=%s bfs_expanded=%d astar_expanded=%d saved=%d match=%t\n",
		result.MazeName, result.BFS.Expanded, result.AStar.Expanded, result.ExpandedSaved, result.PathLengthsMatch)

	respondJSON(w, http.StatusOK, result)
}

// Maze Library Handlers

func (s *Server) handleListMazes(w http.ResponseWriter, r *http.Request) {
	mazes, err := s.service.ListMazes(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, mazes)
}

func (s *Server) handleGetMaze(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	mazeName := vars["name"]

	// Remove .maze extension if present
	mazeName = strings.TrimSuffix(mazeName, ".maze")

	m, err := s.service.LoadMaze(r.Context(), mazeName)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, &service.MazeDetail{
		MazeID: mazeName,
		Width:  m.Width(),
		Height: m.Height(),
		Start:  m.Start(),
		End:    m.End(),
		Rows:   m.Rows(),
	})
}

func (s *Server) handleCreateMaze(w http.ResponseWriter, r *http.Request) {
	var req struct {
		MazeID string `json:"maze_id"`
		Text   string `json:"text"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.MazeID == "" {
		respondError(w, http.StatusBadRequest, "Maze ID is required")
		return
	}

	if err := s.service.SaveMaze(r.Context(), req.MazeID, req.Text); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("Failed to save maze: %v", err))
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Maze saved successfully",
		"maze_id": req.MazeID,
	})
}

// WebSocket Handler

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	solveID := r.URL.Query().Get("solve")
	if solveID == "" {
		http.Error(w, "solve parameter required", http.StatusBadRequest)
		return
	}

	// Verify solve exists
	_, err := s.service.GetSolve(context.Background(), solveID)
	if err != nil {
		http.Error(w, "Invalid solve", http.StatusNotFound)
		return
	}

	// Upgrade to WebSocket
	s.hub.ServeWS(w, r, solveID)
}

// Health check
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}
