package solver

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/mazeworks/maze-solver/maze"
)

// BFS is an unweighted shortest-path strategy. Positions are marked
// visited at enqueue time, which prevents duplicate enqueues and cycles;
// the first dequeue of the end cell therefore yields a path with the
// minimum number of edges.
type BFS struct {
	maze    *maze.Maze
	queue   []maze.Position
	visited *orderedmap.OrderedMap[maze.Position, bool]
	parent  map[maze.Position]maze.Position
}

// NewBFS creates a BFS strategy bound to m. The instance is single-use.
func NewBFS(m *maze.Maze) *BFS {
	return &BFS{
		maze:    m,
		visited: orderedmap.New[maze.Position, bool](),
		parent:  make(map[maze.Position]maze.Position),
	}
}

// Solve runs breadth-first search from the maze start to its end and
// returns the path in start-to-end order, or an empty slice when the end
// is unreachable.
func (b *BFS) Solve() []maze.Position {
	start := b.maze.Start()
	end := b.maze.End()

	b.queue = append(b.queue, start)
	b.visited.Set(start, true)

	for len(b.queue) > 0 {
		current := b.queue[0]
		b.queue = b.queue[1:]

		if current == end {
			return reconstructPath(b.parent, current, start)
		}

		for _, neighbor := range b.maze.Neighbors(current) {
			if _, seen := b.visited.Get(neighbor); seen {
				continue
			}
			b.visited.Set(neighbor, true)
			b.parent[neighbor] = current
			b.queue = append(b.queue, neighbor)
		}
	}

	return []maze.Position{}
}

// Visited returns the visited positions in insertion order.
func (b *BFS) Visited() []maze.Position {
	visited := make([]maze.Position, 0, b.visited.Len())
	for pair := b.visited.Oldest(); pair != nil; pair = pair.Next() {
		visited = append(visited, pair.Key)
	}
	return visited
}
