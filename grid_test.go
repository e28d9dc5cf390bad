package floodgrid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/floodgrid"
)

// TestNewGrid_InvalidDimensions verifies that negative dimensions are rejected.
func TestNewGrid_InvalidDimensions(t *testing.T) {
	_, err := floodgrid.NewGrid(-1, 3)
	assert.ErrorIs(t, err, floodgrid.ErrInvalidDimensions, "negative rows must error")

	_, err = floodgrid.NewGrid(3, -1)
	assert.ErrorIs(t, err, floodgrid.ErrInvalidDimensions, "negative cols must error")
}

// TestNewGrid_Degenerate verifies that 0×0, 0×N and N×0 grids are legal and
// contain no cells.
func TestNewGrid_Degenerate(t *testing.T) {
	for _, dims := range [][2]int{{0, 0}, {0, 5}, {3, 0}} {
		g, err := floodgrid.NewGrid(dims[0], dims[1])
		require.NoError(t, err, "degenerate %dx%d must construct", dims[0], dims[1])
		assert.Equal(t, dims[0], g.Rows())
		assert.Equal(t, dims[1], g.Cols())
		assert.Zero(t, g.Len(), "degenerate grid holds no cells")
	}
}

// TestNewGrid_ZeroInitialized verifies all cells start at 0.
func TestNewGrid_ZeroInitialized(t *testing.T) {
	g, err := floodgrid.NewGrid(2, 3)
	require.NoError(t, err)
	for row := 0; row < 2; row++ {
		for col := 0; col < 3; col++ {
			v, err := g.At(row, col)
			require.NoError(t, err)
			assert.Zero(t, v, "cell (%d,%d) must start at 0", row, col)
		}
	}
}

// TestNewGridFrom_DimensionMismatch checks that a 2×3 grid rejects a
// 5-element initial sequence.
func TestNewGridFrom_DimensionMismatch(t *testing.T) {
	_, err := floodgrid.NewGridFrom(2, 3, []int{1, 2, 3, 4, 5})
	assert.ErrorIs(t, err, floodgrid.ErrDimensionMismatch)
}

// TestNewGridFrom_CopiesInput ensures the grid owns its storage: mutating the
// source slice after construction must not leak into the grid.
func TestNewGridFrom_CopiesInput(t *testing.T) {
	src := []int{1, 2, 3, 4}
	g, err := floodgrid.NewGridFrom(2, 2, src)
	require.NoError(t, err)

	src[0] = 99
	v, err := g.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, v, "grid must deep-copy initial values")
}

// TestGrid_AtSet verifies the read/write round trip through bounds-checked
// accessors.
func TestGrid_AtSet(t *testing.T) {
	g, err := floodgrid.NewGrid(3, 4)
	require.NoError(t, err)

	require.NoError(t, g.Set(2, 3, 42))
	v, err := g.At(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	// Neighboring cell untouched
	v, err = g.At(2, 2)
	require.NoError(t, err)
	assert.Zero(t, v)
}

// TestGrid_OutOfRange checks every boundary violation named by the contract:
// at(-1,0), at(rows,0), at(0,cols), and the same for Set.
func TestGrid_OutOfRange(t *testing.T) {
	g, err := floodgrid.NewGrid(3, 4)
	require.NoError(t, err)

	bad := [][2]int{{-1, 0}, {3, 0}, {0, 4}, {0, -1}, {3, 4}}
	for _, rc := range bad {
		_, err = g.At(rc[0], rc[1])
		assert.ErrorIs(t, err, floodgrid.ErrOutOfRange, "At(%d,%d)", rc[0], rc[1])

		err = g.Set(rc[0], rc[1], 7)
		assert.ErrorIs(t, err, floodgrid.ErrOutOfRange, "Set(%d,%d)", rc[0], rc[1])
	}
}

// TestGrid_InBounds checks InBounds on a 2×3 grid.
func TestGrid_InBounds(t *testing.T) {
	g, err := floodgrid.NewGrid(2, 3)
	require.NoError(t, err)

	for _, rc := range [][2]int{{0, 0}, {1, 2}, {0, 2}} {
		assert.True(t, g.InBounds(rc[0], rc[1]), "InBounds(%d,%d)", rc[0], rc[1])
	}
	for _, rc := range [][2]int{{-1, 0}, {2, 0}, {0, 3}, {0, -1}} {
		assert.False(t, g.InBounds(rc[0], rc[1]), "InBounds(%d,%d)", rc[0], rc[1])
	}
}

// TestGrid_Coordinate verifies the flat-index → (row, col) mapping over every
// cell of a 3×5 grid.
func TestGrid_Coordinate(t *testing.T) {
	g, err := floodgrid.NewGrid(3, 5)
	require.NoError(t, err)

	idx := 0
	for row := 0; row < 3; row++ {
		for col := 0; col < 5; col++ {
			r, c := g.Coordinate(idx)
			assert.Equal(t, row, r, "row of index %d", idx)
			assert.Equal(t, col, c, "col of index %d", idx)
			idx++
		}
	}
}

// TestGrid_Clone verifies the copy is deep: writes to the clone must not
// reach the original, and vice versa.
func TestGrid_Clone(t *testing.T) {
	g, err := floodgrid.NewGridFrom(2, 2, []int{1, 2, 3, 4})
	require.NoError(t, err)

	c := g.Clone()
	require.NoError(t, c.Set(0, 0, 99))
	require.NoError(t, g.Set(1, 1, 77))

	v, _ := g.At(0, 0)
	assert.Equal(t, 1, v, "original unaffected by clone write")
	v, _ = c.At(1, 1)
	assert.Equal(t, 4, v, "clone unaffected by original write")
}

// TestGrid_String verifies the one-bracketed-row-per-line rendering.
func TestGrid_String(t *testing.T) {
	g, err := floodgrid.NewGridFrom(2, 3, []int{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	assert.Equal(t, "[1, 2, 3]\n[4, 5, 6]\n", g.String())
}
