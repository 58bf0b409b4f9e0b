package maze

import "fmt"

// Cell is the integer tag stored per grid cell.
type Cell int

const (
	Empty   Cell = 0
	Barrier Cell = 1
	Start   Cell = 2
	End     Cell = 3
)

// Position identifies a grid cell by column (X) and row (Y).
// It is a comparable value type and is used as a map key throughout
// the solver packages.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// FormatError reports maze text that violates the maze format rules:
// a cell value outside 0-3, more than one start or end, a missing start
// or end, or rows of differing length. Line is 1-based and refers to the
// line in the input text; it is 0 when the error is not tied to a line.
type FormatError struct {
	Line   int
	Reason string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("maze format: %s (line %d)", e.Reason, e.Line)
	}
	return fmt.Sprintf("maze format: %s", e.Reason)
}

// ManhattanDistance returns the Manhattan distance between two positions.
func ManhattanDistance(from, to Position) int {
	dx := from.X - to.X
	if dx < 0 {
		dx = -dx
	}
	dy := from.Y - to.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
