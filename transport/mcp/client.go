package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mazeworks/maze-solver/maze"
	"github.com/mazeworks/maze-solver/service"
	"github.com/mazeworks/maze-solver/solver"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Maze Solver",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Maze Solver - MCP Interface

This is a thin client that proxies all requests to the REST API server.

MAZE FORMAT:
Mazes are rectangular grids of digits: 0 = empty, 1 = barrier, 2 = start, 3 = end.
Solvers move in the four cardinal directions only.

AVAILABLE TOOLS:
- list_mazes: List mazes available in the library
- get_maze: Fetch a maze's grid and metadata
- solve_maze: Run BFS or A* against a maze and store the result
- compare_algorithms: Run both algorithms on the same maze and compare
- get_solve: Retrieve a stored solve by ID
- list_solves: List stored solves
- render_solve: ASCII rendering of a solve with path and visited cells overlaid
- solver_guide: Reference for the maze format and algorithm behavior

NOTE: Algorithms always terminate. A maze with no path from start to end
still produces a stored solve with found=false.`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Maze library
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_mazes",
		Description: "List all mazes available in the library",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListMazes)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_maze",
		Description: "Get the grid and metadata of a specific maze",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"maze_id": map[string]interface{}{
					"type":        "string",
					"description": "Maze identifier (filename without the .maze extension)",
				},
			},
			Required: []string{"maze_id"},
		},
	}, c.handleGetMaze)

	// Solving
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "solve_maze",
		Description: "Solve a maze with the chosen algorithm and store the result",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"maze_id": map[string]interface{}{
					"type":        "string",
					"description": "Maze to solve (optional, defaults to the library default)",
				},
				"algorithm": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"bfs", "astar"},
					"description": "Search algorithm to use (optional, defaults to bfs)",
				},
			},
		},
	}, c.handleSolveMaze)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "compare_algorithms",
		Description: "Run BFS and A* on the same maze and compare path lengths and work done",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"maze_id": map[string]interface{}{
					"type":        "string",
					"description": "Maze to compare on (optional, defaults to the library default)",
				},
			},
		},
	}, c.handleCompareAlgorithms)

	// Solve retrieval
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_solve",
		Description: "Get details of a stored solve",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"solve_id": map[string]interface{}{
					"type":        "string",
					"description": "Solve ID to retrieve",
				},
			},
			Required: []string{"solve_id"},
		},
	}, c.handleGetSolve)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_solves",
		Description: "List all stored solves",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSolves)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "render_solve",
		Description: "Render a solve as an ASCII grid with the path (*) and visited cells (o) overlaid on the maze",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"solve_id": map[string]interface{}{
					"type":        "string",
					"description": "Solve ID to render",
				},
				"show_visited": map[string]interface{}{
					"type":        "boolean",
					"description": "Overlay visited cells in addition to the final path",
				},
			},
			Required: []string{"solve_id"},
		},
	}, c.handleRenderSolve)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "solver_guide",
		Description: "Get a reference for the maze file format and how the two algorithms behave",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleSolverGuide)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

func (c *Client) handleListMazes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var mazes []service.MazeInfo
	err := c.apiCall("GET", "/api/mazes", nil, &mazes)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Mazes:\n\n"
	for _, m := range mazes {
		result += fmt.Sprintf("• %s\n  Grid: %dx%d, Barriers: %d, Start: (%d,%d), End: (%d,%d)\n\n",
			m.MazeID, m.Width, m.Height, m.Barriers,
			m.Start.X, m.Start.Y, m.End.X, m.End.Y)
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetMaze(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	mazeID, _ := args["maze_id"].(string)

	var detail service.MazeDetail
	err := c.apiCall("GET", fmt.Sprintf("/api/mazes/%s", mazeID), nil, &detail)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatMazeDetail(&detail)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleSolveMaze(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	mazeID, _ := args["maze_id"].(string)
	algorithm, _ := args["algorithm"].(string)

	body := map[string]string{}
	if mazeID != "" {
		body["maze_id"] = mazeID
	}
	if algorithm != "" {
		body["algorithm"] = algorithm
	}

	var solve service.SolveInfo
	err := c.apiCall("POST", "/api/solves", body, &solve)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatSolveInfo(&solve)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleCompareAlgorithms(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	mazeID, _ := args["maze_id"].(string)

	body := map[string]string{}
	if mazeID != "" {
		body["maze_id"] = mazeID
	}

	var cmp service.CompareResult
	err := c.apiCall("POST", "/api/compare", body, &cmp)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatCompareResult(&cmp)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetSolve(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	solveID, _ := args["solve_id"].(string)

	var solve service.SolveInfo
	err := c.apiCall("GET", fmt.Sprintf("/api/solves/%s", solveID), nil, &solve)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatSolveInfo(&solve)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSolves(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count  int                 `json:"count"`
		Solves []service.SolveInfo `json:"solves"`
	}

	err := c.apiCall("GET", "/api/solves", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Stored Solves (%d):\n\n", response.Count)
	for _, s := range response.Solves {
		status := "no path"
		if s.Result != nil && s.Result.Found {
			status = fmt.Sprintf("path %d", s.Result.PathLen)
		}
		result += fmt.Sprintf("- %s (Maze: %s, Algorithm: %s, %s, Created: %s)\n",
			s.ID, s.MazeName, s.Algorithm, status, s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleRenderSolve(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	solveID, _ := args["solve_id"].(string)
	showVisited, _ := args["show_visited"].(bool)

	var cells service.SolveCells
	err := c.apiCall("GET", fmt.Sprintf("/api/solves/%s/cells", solveID), nil, &cells)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var detail service.MazeDetail
	err = c.apiCall("GET", fmt.Sprintf("/api/mazes/%s", cells.MazeName), nil, &detail)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := renderOverlay(&detail, &cells, showVisited)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleSolverGuide(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	guide := `Maze Solver - Reference Guide

MAZE FILE FORMAT:
A maze is a rectangular grid of digits, one row per line:
• 0 - Empty cell (passable)
• 1 - Barrier (impassable)
• 2 - Start cell (exactly one per maze)
• 3 - End cell (exactly one per maze)

All rows must have the same width. Coordinates are (x, y) with x as the
column and y as the row, both zero-based from the top-left corner.

MOVEMENT:
Search moves in the four cardinal directions only. Diagonal movement is
not allowed. Barriers and grid edges block movement.

ALGORITHMS:
• bfs - Breadth-first search. Explores cells in order of distance from
  the start. Always finds a shortest path when one exists.
• astar - A* with the Manhattan distance heuristic. Also finds a
  shortest path, but typically expands fewer cells because the
  heuristic steers the search toward the end.

Both algorithms report:
• path - The start-to-end cell sequence (empty when no path exists)
• visited - Every cell the search examined, in visit order
• expanded - The number of cells taken off the frontier
• found - Whether the end was reached

Path lengths from the two algorithms always match on the same maze.
The interesting difference is the expanded count, which measures how
much work the search did. Use compare_algorithms to see it directly.

NO-PATH MAZES:
A maze whose end is unreachable is not an error. The solve completes
with found=false and an empty path, and the visited set shows the
entire region reachable from the start.

RENDERING LEGEND (render_solve):
• S - Start cell
• E - End cell
• # - Barrier
• * - Cell on the final path
• o - Visited cell not on the path (with show_visited)
• . - Untouched empty cell`

	return mcp.NewToolResultText(guide), nil
}

// Formatting helpers

func formatSolveInfo(solve *service.SolveInfo) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Solve: %s\nMaze: %s\nAlgorithm: %s\nCreated: %s\n\n",
		solve.ID, solve.MazeName, solve.Algorithm,
		solve.CreatedAt.Format("2006-01-02 15:04:05")))
	b.WriteString(formatResult(solve.Result))
	return b.String()
}

func formatResult(res *solver.Result) string {
	if res == nil {
		return "No result available"
	}

	var b strings.Builder
	if res.Found {
		b.WriteString(fmt.Sprintf("✓ Path found (length %d)\n", res.PathLen))
	} else {
		b.WriteString("✗ No path exists\n")
	}
	b.WriteString(fmt.Sprintf("Expanded: %d cells\nVisited: %d cells\nDuration: %s\n",
		res.Expanded, len(res.Visited), res.Duration))

	if res.Found && len(res.Path) > 0 {
		first := res.Path[0]
		last := res.Path[len(res.Path)-1]
		b.WriteString(fmt.Sprintf("Route: (%d,%d) → (%d,%d)\n", first.X, first.Y, last.X, last.Y))
	}

	return b.String()
}

func formatCompareResult(cmp *service.CompareResult) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Algorithm Comparison on %s:\n\n", cmp.MazeName))

	b.WriteString("BFS:\n")
	b.WriteString(indent(formatResult(cmp.BFS)))
	b.WriteString("\nA*:\n")
	b.WriteString(indent(formatResult(cmp.AStar)))

	b.WriteString("\n")
	if cmp.PathLengthsMatch {
		b.WriteString("Path lengths match (both optimal)\n")
	} else {
		b.WriteString("⚠️ Path lengths differ\n")
	}
	if cmp.ExpandedSaved > 0 {
		b.WriteString(fmt.Sprintf("A* expanded %d fewer cells than BFS\n", cmp.ExpandedSaved))
	} else if cmp.ExpandedSaved < 0 {
		b.WriteString(fmt.Sprintf("A* expanded %d more cells than BFS\n", -cmp.ExpandedSaved))
	} else {
		b.WriteString("Both algorithms expanded the same number of cells\n")
	}

	return b.String()
}

func formatMazeDetail(detail *service.MazeDetail) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Maze: %s\nSize: %dx%d\nStart: (%d,%d)\nEnd: (%d,%d)\n\n",
		detail.MazeID, detail.Width, detail.Height,
		detail.Start.X, detail.Start.Y, detail.End.X, detail.End.Y))

	for _, row := range detail.Rows {
		b.WriteString(renderRow(row))
		b.WriteString("\n")
	}

	return b.String()
}

// renderRow maps a digit row to the display legend
func renderRow(row string) string {
	var b strings.Builder
	for _, ch := range row {
		b.WriteString(cellChar(ch))
	}
	return b.String()
}

func cellChar(ch rune) string {
	switch ch {
	case '1':
		return "#"
	case '2':
		return "S"
	case '3':
		return "E"
	default:
		return "."
	}
}

// renderOverlay draws the maze with path and visited cells marked.
// Start and end keep their letters even when the path crosses them.
func renderOverlay(detail *service.MazeDetail, cells *service.SolveCells, showVisited bool) string {
	onPath := make(map[maze.Position]bool, len(cells.Path))
	for _, p := range cells.Path {
		onPath[p] = true
	}
	visited := make(map[maze.Position]bool, len(cells.Visited))
	if showVisited {
		for _, p := range cells.Visited {
			visited[p] = true
		}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Solve on %s (path %d, visited %d):\n\n",
		detail.MazeID, len(cells.Path), len(cells.Visited)))

	for y, row := range detail.Rows {
		for x, ch := range row {
			pos := maze.Position{X: x, Y: y}
			switch {
			case ch == '2':
				b.WriteString("S")
			case ch == '3':
				b.WriteString("E")
			case ch == '1':
				b.WriteString("#")
			case onPath[pos]:
				b.WriteString("*")
			case visited[pos]:
				b.WriteString("o")
			default:
				b.WriteString(".")
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("\nLegend: S=start E=end #=barrier *=path")
	if showVisited {
		b.WriteString(" o=visited")
	}
	b.WriteString(" .=empty\n")

	return b.String()
}

func indent(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = "  " + line
	}
	return strings.Join(lines, "\n") + "\n"
}
