package maze

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Maze is a rectangular grid of cells with exactly one start and one end.
// It is immutable after construction; solvers only query it and may share
// one Maze concurrently.
type Maze struct {
	grid   [][]Cell
	width  int
	height int
	start  Position
	end    Position
}

// neighborOffsets is the fixed exploration order: up, down, left, right.
// The order is part of the contract; solvers rely on it for reproducible
// tie-breaking.
var neighborOffsets = [4]Position{
	{X: 0, Y: -1},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
	{X: 1, Y: 0},
}

// Parse reads a maze definition from r. Each non-blank line is one row of
// ASCII digits 0-3 (0 empty, 1 barrier, 2 start, 3 end); blank lines are
// skipped and surrounding whitespace per line is trimmed. Rows of differing
// lengths are rejected. Construction is atomic: on any *FormatError no Maze
// is returned.
func Parse(r io.Reader) (*Maze, error) {
	m := &Maze{}
	hasStart := false
	hasEnd := false

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if m.width == 0 {
			m.width = len(line)
		} else if len(line) != m.width {
			return nil, &FormatError{Line: lineNo, Reason: "rows must have equal length"}
		}

		y := len(m.grid)
		row := make([]Cell, 0, len(line))
		for x, ch := range line {
			if ch < '0' || ch > '3' {
				return nil, &FormatError{Line: lineNo, Reason: "invalid cell value " + string(ch) + ", allowed values are 0-3"}
			}
			cell := Cell(ch - '0')
			row = append(row, cell)

			switch cell {
			case Start:
				if hasStart {
					return nil, &FormatError{Line: lineNo, Reason: "multiple start positions"}
				}
				hasStart = true
				m.start = Position{X: x, Y: y}
			case End:
				if hasEnd {
					return nil, &FormatError{Line: lineNo, Reason: "multiple end positions"}
				}
				hasEnd = true
				m.end = Position{X: x, Y: y}
			}
		}
		m.grid = append(m.grid, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(m.grid) == 0 {
		return nil, &FormatError{Reason: "maze is empty"}
	}
	if !hasStart || !hasEnd {
		return nil, &FormatError{Reason: "missing start (2) or end (3) position"}
	}

	m.height = len(m.grid)
	return m, nil
}

// ParseString parses a maze definition from a string.
func ParseString(text string) (*Maze, error) {
	return Parse(strings.NewReader(text))
}

// LoadFile reads and parses a maze definition file. I/O errors, including
// file-not-found, are returned unchanged so callers can distinguish them
// from format errors with errors.Is / errors.As.
func LoadFile(path string) (*Maze, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// Width returns the number of columns.
func (m *Maze) Width() int { return m.width }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.height }

// Start returns the position of the start cell.
func (m *Maze) Start() Position { return m.start }

// End returns the position of the end cell.
func (m *Maze) End() Position { return m.end }

// CellAt returns the cell value at p. Positions outside the grid report
// Barrier, so callers never index out of bounds.
func (m *Maze) CellAt(p Position) Cell {
	if p.Y < 0 || p.Y >= m.height || p.X < 0 || p.X >= m.width {
		return Barrier
	}
	return m.grid[p.Y][p.X]
}

// IsValidPosition reports whether p is inside the grid and not a barrier.
func (m *Maze) IsValidPosition(p Position) bool {
	if p.Y < 0 || p.Y >= m.height || p.X < 0 || p.X >= m.width {
		return false
	}
	return m.grid[p.Y][p.X] != Barrier
}

// Neighbors returns the valid positions one step up, down, left and right
// of p, in that fixed order. Barriers and out-of-bounds positions are
// excluded; diagonal movement is not supported.
func (m *Maze) Neighbors(p Position) []Position {
	neighbors := make([]Position, 0, 4)
	for _, d := range neighborOffsets {
		n := Position{X: p.X + d.X, Y: p.Y + d.Y}
		if m.IsValidPosition(n) {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// Rows returns the maze as digit strings, one per row. The result is a
// fresh slice; mutating it does not affect the Maze.
func (m *Maze) Rows() []string {
	rows := make([]string, m.height)
	for y, row := range m.grid {
		var b strings.Builder
		b.Grow(m.width)
		for _, cell := range row {
			b.WriteByte(byte('0') + byte(cell))
		}
		rows[y] = b.String()
	}
	return rows
}

// String renders the maze for debugging: S start, E end, # barrier, . empty.
func (m *Maze) String() string {
	var b strings.Builder
	for y, row := range m.grid {
		for x, cell := range row {
			switch {
			case (Position{X: x, Y: y}) == m.start:
				b.WriteByte('S')
			case (Position{X: x, Y: y}) == m.end:
				b.WriteByte('E')
			case cell == Barrier:
				b.WriteByte('#')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
