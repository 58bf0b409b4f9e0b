package solver

import (
	"container/heap"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/mazeworks/maze-solver/maze"
)

// AStar is a cost-guided strategy using the Manhattan distance to the end
// cell as its heuristic. The heuristic is admissible and consistent on a
// 4-directional uniform-cost grid, so the returned path has the same edge
// count as the BFS result for the same maze, usually after expanding
// fewer cells.
//
// Positions are marked visited when popped for expansion, not when
// pushed. Pushing a position again with an improved cost is allowed; the
// stale entry is skipped when it surfaces because the position is already
// visited by then. Entries with equal f-cost pop in FIFO order via a
// monotonically increasing sequence number, which keeps the choice among
// equal-length shortest paths deterministic.
type AStar struct {
	maze    *maze.Maze
	open    openList
	visited *orderedmap.OrderedMap[maze.Position, bool]
	gCost   map[maze.Position]int
	fCost   map[maze.Position]int
	parent  map[maze.Position]maze.Position
	seq     int
}

// NewAStar creates an A* strategy bound to m. The instance is single-use.
func NewAStar(m *maze.Maze) *AStar {
	return &AStar{
		maze:    m,
		visited: orderedmap.New[maze.Position, bool](),
		gCost:   make(map[maze.Position]int),
		fCost:   make(map[maze.Position]int),
		parent:  make(map[maze.Position]maze.Position),
	}
}

// heuristic estimates the remaining distance from p to the end cell.
func (a *AStar) heuristic(p maze.Position) int {
	return maze.ManhattanDistance(p, a.maze.End())
}

// Solve runs A* from the maze start to its end and returns the path in
// start-to-end order, or an empty slice when the end is unreachable.
func (a *AStar) Solve() []maze.Position {
	start := a.maze.Start()
	end := a.maze.End()

	a.gCost[start] = 0
	a.fCost[start] = a.heuristic(start)
	a.push(start, a.fCost[start])

	for a.open.Len() > 0 {
		current := heap.Pop(&a.open).(openItem).pos

		if current == end {
			return reconstructPath(a.parent, current, start)
		}

		// Stale duplicate from an earlier, worse push.
		if _, seen := a.visited.Get(current); seen {
			continue
		}
		a.visited.Set(current, true)

		for _, neighbor := range a.maze.Neighbors(current) {
			if _, seen := a.visited.Get(neighbor); seen {
				continue
			}

			tentativeG := a.gCost[current] + 1 // uniform edge cost
			if g, known := a.gCost[neighbor]; known && tentativeG >= g {
				continue
			}

			a.parent[neighbor] = current
			a.gCost[neighbor] = tentativeG
			a.fCost[neighbor] = tentativeG + a.heuristic(neighbor)
			a.push(neighbor, a.fCost[neighbor])
		}
	}

	return []maze.Position{}
}

// Visited returns the expanded positions in insertion order.
func (a *AStar) Visited() []maze.Position {
	visited := make([]maze.Position, 0, a.visited.Len())
	for pair := a.visited.Oldest(); pair != nil; pair = pair.Next() {
		visited = append(visited, pair.Key)
	}
	return visited
}

func (a *AStar) push(p maze.Position, fCost int) {
	a.seq++
	heap.Push(&a.open, openItem{pos: p, fCost: fCost, seq: a.seq})
}

// openItem is a frontier entry keyed by f-cost with an insertion sequence
// number for FIFO tie-breaking.
type openItem struct {
	pos   maze.Position
	fCost int
	seq   int
}

type openList []openItem

func (q openList) Len() int { return len(q) }

func (q openList) Less(i, j int) bool {
	if q[i].fCost != q[j].fCost {
		return q[i].fCost < q[j].fCost
	}
	return q[i].seq < q[j].seq
}

func (q openList) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *openList) Push(x any) {
	*q = append(*q, x.(openItem))
}

func (q *openList) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
