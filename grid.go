package floodgrid

import (
	"fmt"
	"strings"
)

// gridErrorf wraps an underlying error with Grid method context and the
// offending coordinates.
func gridErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, row, col, err)
}

// Grid is a row-major 2D field of integer labels.
// rows and cols define dimensions; cells holds rows*cols values in row-major
// order (offset = row*cols + col), one contiguous slice for cache friendliness.
// The Grid owns its storage exclusively: constructors deep-copy initial data.
type Grid struct {
	rows, cols int   // dimensions, both >= 0
	cells      []int // flat backing storage, length == rows*cols
}

var _ fmt.Stringer = (*Grid)(nil)

// NewGrid creates a rows×cols Grid with every cell initialized to 0.
// Degenerate grids (rows==0 or cols==0) are legal and hold no cells.
// Returns ErrInvalidDimensions if either dimension is negative.
// Complexity: O(rows*cols) time and memory.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Grid{rows: rows, cols: cols, cells: make([]int, rows*cols)}, nil
}

// NewGridFrom creates a rows×cols Grid populated from values, a flat
// row-major sequence. The input is copied, never retained.
// Returns ErrInvalidDimensions on negative dimensions and
// ErrDimensionMismatch if len(values) != rows*cols.
// Complexity: O(rows*cols) time and memory.
func NewGridFrom(rows, cols int, values []int) (*Grid, error) {
	g, err := NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(values) != rows*cols {
		return nil, ErrDimensionMismatch
	}
	copy(g.cells, values)

	return g, nil
}

// Rows returns the number of rows.
// Complexity: O(1).
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
// Complexity: O(1).
func (g *Grid) Cols() int { return g.cols }

// Len returns the total cell count (rows*cols).
// Complexity: O(1).
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether (row, col) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// index maps (row, col) to the flat row-major offset: row*cols + col.
// Callers must have checked bounds already.
// Complexity: O(1).
func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}

// Coordinate converts a flat row-major index back to (row, col).
// Meaningful only for grids holding at least one column.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (row, col int) {
	return idx / g.cols, idx % g.cols
}

// At retrieves the cell value at (row, col).
// Returns ErrOutOfRange, wrapped with the coordinates, on a bounds violation.
// Complexity: O(1).
func (g *Grid) At(row, col int) (int, error) {
	if !g.InBounds(row, col) {
		return 0, gridErrorf("At", row, col, ErrOutOfRange)
	}

	return g.cells[g.index(row, col)], nil
}

// Set assigns value v to the cell at (row, col).
// Returns ErrOutOfRange, wrapped with the coordinates, on a bounds violation.
// Complexity: O(1).
func (g *Grid) Set(row, col, v int) error {
	if !g.InBounds(row, col) {
		return gridErrorf("Set", row, col, ErrOutOfRange)
	}
	g.cells[g.index(row, col)] = v

	return nil
}

// Clone returns a deep copy of the Grid. Scanning the clone leaves the
// receiver untouched.
// Complexity: O(rows*cols) time and memory.
func (g *Grid) Clone() *Grid {
	cells := make([]int, len(g.cells))
	copy(cells, g.cells)

	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// String implements fmt.Stringer: one bracketed row per line.
// Complexity: O(rows*cols).
func (g *Grid) String() string {
	var sb strings.Builder
	for row := 0; row < g.rows; row++ {
		sb.WriteString("[")
		for col := 0; col < g.cols; col++ {
			if col > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d", g.cells[g.index(row, col)])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
