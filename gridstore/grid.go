package gridstore

import "fmt"

// Grid is a size×size matrix of binary cells. It is immutable once built:
// constructors deep-copy their input and accessors hand out copies.
type Grid struct {
	size  int
	cells [][]int
}

// initialValues is the starting configuration shown before any resize.
var initialValues = [][]int{
	{0, 0, 0, 0, 1},
	{1, 1, 0, 0, 0},
	{1, 1, 0, 1, 1},
	{0, 0, 0, 0, 0},
	{1, 1, 1, 0, 0},
}

// NewGrid builds a Grid from a fixed configuration.
// Returns ErrInvalidSize if values has no rows, ErrNonSquare if any row
// length differs from the number of rows, ErrCellValue on a value other
// than 0 or 1.
// Complexity: O(size²) time and memory.
func NewGrid(values [][]int) (*Grid, error) {
	n := len(values)
	if n == 0 {
		return nil, fmt.Errorf("NewGrid: no rows: %w", ErrInvalidSize)
	}
	cells := make([][]int, n)
	for r, row := range values {
		if len(row) != n {
			return nil, fmt.Errorf("NewGrid: row %d has %d cells, want %d: %w", r, len(row), n, ErrNonSquare)
		}
		for c, v := range row {
			if v != Empty && v != Filled {
				return nil, fmt.Errorf("NewGrid: cell (%d,%d)=%d: %w", r, c, v, ErrCellValue)
			}
		}
		cells[r] = make([]int, n)
		copy(cells[r], row)
	}

	return &Grid{size: n, cells: cells}, nil
}

// InitialGrid returns the built-in 5×5 starting configuration.
func InitialGrid() *Grid {
	g, err := NewGrid(initialValues)
	if err != nil {
		// initialValues is a package constant; reaching this is a programming error.
		panic(err)
	}
	return g
}

// Size returns the side length of the grid.
func (g *Grid) Size() int {
	return g.size
}

// InBounds reports whether pos lies in [0, size) on both axes.
// Complexity: O(1).
func (g *Grid) InBounds(pos Coordinate) bool {
	return pos.Row >= 0 && pos.Row < g.size && pos.Col >= 0 && pos.Col < g.size
}

// Filled reports whether the cell at pos is filled.
// Returns ErrOutOfBounds if pos lies outside the grid.
// Complexity: O(1).
func (g *Grid) Filled(pos Coordinate) (bool, error) {
	if !g.InBounds(pos) {
		return false, fmt.Errorf("Filled%v on %dx%d grid: %w", pos, g.size, g.size, ErrOutOfBounds)
	}
	return g.cells[pos.Row][pos.Col] == Filled, nil
}

// FilledAt is the unchecked variant of Filled for callers that already
// validated pos with InBounds.
func (g *Grid) FilledAt(pos Coordinate) bool {
	return g.cells[pos.Row][pos.Col] == Filled
}

// Rows returns a deep copy of the cell matrix, row-major.
func (g *Grid) Rows() [][]int {
	out := make([][]int, g.size)
	for r := range g.cells {
		out[r] = make([]int, g.size)
		copy(out[r], g.cells[r])
	}
	return out
}

// FilledCount returns the number of filled cells.
// Complexity: O(size²).
func (g *Grid) FilledCount() int {
	n := 0
	for _, row := range g.cells {
		for _, v := range row {
			n += v
		}
	}
	return n
}
