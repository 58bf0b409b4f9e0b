// Command mazectl is a local CLI for the maze library. It solves, compares,
// renders, and lists mazes directly from a maze directory without needing
// the HTTP server.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/mazeworks/maze-solver/library"
	"github.com/mazeworks/maze-solver/maze"
	"github.com/mazeworks/maze-solver/solver"
)

func main() {
	cmd := &cli.Command{
		Name:  "mazectl",
		Usage: "solve and inspect mazes from the local library",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "maze-dir",
				Value:   "mazes",
				Usage:   "directory containing maze files",
				Sources: cli.EnvVars("MAZE_DIR"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "solve",
				Usage:     "solve a maze and print the result",
				ArgsUsage: "[maze-name]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "algorithm",
						Aliases: []string{"a"},
						Value:   solver.AlgorithmBFS,
						Usage:   "search algorithm (bfs or astar)",
					},
				},
				Action: runSolve,
			},
			{
				Name:      "compare",
				Usage:     "run BFS and A* on a maze and compare their work",
				ArgsUsage: "[maze-name]",
				Action:    runCompare,
			},
			{
				Name:      "render",
				Usage:     "solve a maze and render the path over the grid",
				ArgsUsage: "[maze-name]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "algorithm",
						Aliases: []string{"a"},
						Value:   solver.AlgorithmBFS,
						Usage:   "search algorithm (bfs or astar)",
					},
					&cli.BoolFlag{
						Name:  "visited",
						Usage: "also mark visited cells",
					},
				},
				Action: runRender,
			},
			{
				Name:   "list",
				Usage:  "list mazes in the library",
				Action: runList,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// resolveMaze loads the named maze, falling back to the library default
// when no name was given.
func resolveMaze(cmd *cli.Command) (string, *maze.Maze, error) {
	manager, err := library.NewManager(cmd.String("maze-dir"))
	if err != nil {
		return "", nil, err
	}

	name := cmd.Args().First()
	if name == "" {
		name, m := manager.GetDefault()
		return name, m, nil
	}

	m, err := manager.LoadMaze(name)
	if err != nil {
		return "", nil, err
	}
	return strings.TrimSuffix(name, ".maze"), m, nil
}

func runSolve(ctx context.Context, cmd *cli.Command) error {
	name, m, err := resolveMaze(cmd)
	if err != nil {
		return err
	}

	result, err := solver.Run(cmd.String("algorithm"), m)
	if err != nil {
		return err
	}

	printResult(name, result)
	return nil
}

func runCompare(ctx context.Context, cmd *cli.Command) error {
	name, m, err := resolveMaze(cmd)
	if err != nil {
		return err
	}

	bfs, err := solver.Run(solver.AlgorithmBFS, m)
	if err != nil {
		return err
	}
	astar, err := solver.Run(solver.AlgorithmAStar, m)
	if err != nil {
		return err
	}

	fmt.Printf("Comparison on %s (%dx%d):\n\n", name, m.Width(), m.Height())
	printResult("bfs", bfs)
	fmt.Println()
	printResult("astar", astar)
	fmt.Println()

	if bfs.Found {
		if bfs.PathLen == astar.PathLen {
			fmt.Printf("Path lengths match: %d cells\n", bfs.PathLen)
		} else {
			fmt.Printf("Path lengths differ: bfs=%d astar=%d\n", bfs.PathLen, astar.PathLen)
		}
	}
	saved := bfs.Expanded - astar.Expanded
	switch {
	case saved > 0:
		fmt.Printf("A* saved %d expansions\n", saved)
	case saved < 0:
		fmt.Printf("A* expanded %d more cells\n", -saved)
	default:
		fmt.Println("Both algorithms expanded the same number of cells")
	}

	return nil
}

func runRender(ctx context.Context, cmd *cli.Command) error {
	name, m, err := resolveMaze(cmd)
	if err != nil {
		return err
	}

	result, err := solver.Run(cmd.String("algorithm"), m)
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s, path %d, expanded %d):\n\n",
		name, result.Algorithm, result.PathLen, result.Expanded)
	fmt.Print(renderResult(m, result, cmd.Bool("visited")))

	if !result.Found {
		fmt.Println("\nNo path from start to end.")
	}
	return nil
}

func runList(ctx context.Context, cmd *cli.Command) error {
	manager, err := library.NewManager(cmd.String("maze-dir"))
	if err != nil {
		return err
	}

	mazes, err := manager.ListMazes()
	if err != nil {
		return err
	}

	defaultName, _ := manager.GetDefault()
	for _, info := range mazes {
		marker := " "
		if info.MazeID == defaultName {
			marker = "*"
		}
		fmt.Printf("%s %-20s %dx%d, %d barriers\n",
			marker, info.MazeID, info.Width, info.Height, info.Barriers)
	}

	return nil
}

func printResult(label string, result *solver.Result) {
	fmt.Printf("[%s]\n", label)
	if result.Found {
		fmt.Printf("  Path: %d cells\n", result.PathLen)
	} else {
		fmt.Println("  No path exists")
	}
	fmt.Printf("  Expanded: %d cells\n", result.Expanded)
	fmt.Printf("  Visited: %d cells\n", len(result.Visited))
	fmt.Printf("  Duration: %s\n", result.Duration)
}

// renderResult draws the maze with the path (*) and optionally visited (o)
// cells overlaid. Start and end keep their letters.
func renderResult(m *maze.Maze, result *solver.Result, showVisited bool) string {
	onPath := make(map[maze.Position]bool, len(result.Path))
	for _, p := range result.Path {
		onPath[p] = true
	}
	visited := make(map[maze.Position]bool, len(result.Visited))
	if showVisited {
		for _, p := range result.Visited {
			visited[p] = true
		}
	}

	var b strings.Builder
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			pos := maze.Position{X: x, Y: y}
			switch {
			case pos == m.Start():
				b.WriteByte('S')
			case pos == m.End():
				b.WriteByte('E')
			case m.CellAt(pos) == maze.Barrier:
				b.WriteByte('#')
			case onPath[pos]:
				b.WriteByte('*')
			case visited[pos]:
				b.WriteByte('o')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
