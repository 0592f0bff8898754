// Package grid_test contains unit tests for the Grid container.
package grid_test

import (
	"testing"

	"github.com/katalvlaran/gridfmt/grid"
	"github.com/stretchr/testify/require"
)

// TestNewNegativeShape ensures that New rejects negative dimensions.
func TestNewNegativeShape(t *testing.T) {
	_, err := grid.New[int](-1, 3)            // attempt to create with negative rows
	require.ErrorIs(t, err, grid.ErrBadShape) // expect ErrBadShape

	_, err = grid.New[int](3, -1)             // attempt to create with negative columns
	require.ErrorIs(t, err, grid.ErrBadShape) // expect ErrBadShape
}

// TestNewDegenerateShapes verifies that zero-sized shapes are valid grids.
func TestNewDegenerateShapes(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"ZeroByZero", 0, 0},
		{"ZeroRows", 0, 5},
		{"ZeroCols", 5, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.New[int](tc.rows, tc.cols) // degenerate construction must succeed
			require.NoError(t, err)
			require.Equal(t, tc.rows, g.Rows()) // shape is preserved exactly
			require.Equal(t, tc.cols, g.Cols())
		})
	}
}

// TestNewFilled checks that NewFilled writes the fill value into every cell.
func TestNewFilled(t *testing.T) {
	g, err := grid.NewFilled(2, 3, 7) // 2x3 grid, every cell 7
	require.NoError(t, err)

	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			require.Equal(t, 7, g.At(r, c)) // each cell holds the fill value
		}
	}
}

// TestFromRowsRagged ensures FromRows rejects rows of differing lengths.
func TestFromRowsRagged(t *testing.T) {
	_, err := grid.FromRows([][]int{{1, 2}, {3}}) // second row is short
	require.ErrorIs(t, err, grid.ErrRagged)       // expect ErrRagged
}

// TestFromRowsDegenerate verifies degenerate nested inputs build valid grids.
func TestFromRowsDegenerate(t *testing.T) {
	g, err := grid.FromRows([][]int{}) // no rows at all
	require.NoError(t, err)
	require.Equal(t, 0, g.Rows())
	require.Equal(t, 0, g.Cols())

	g, err = grid.FromRows([][]int{{}, {}}) // two empty rows
	require.NoError(t, err)
	require.Equal(t, 2, g.Rows())
	require.Equal(t, 0, g.Cols())
}

// TestFromRowsCopies verifies the grid owns its storage: mutating the
// input slices after construction must not be visible through the grid.
func TestFromRowsCopies(t *testing.T) {
	src := [][]int{{1, 2}, {3, 4}}
	g, err := grid.FromRows(src)
	require.NoError(t, err)

	src[0][0] = 99                  // mutate the caller's slice
	require.Equal(t, 1, g.At(0, 0)) // grid still holds the original value
}

// TestSetAt validates Set followed by At on valid indices.
func TestSetAt(t *testing.T) {
	g, err := grid.New[string](2, 2)
	require.NoError(t, err)

	g.Set(1, 0, "hello")                  // write one cell
	require.Equal(t, "hello", g.At(1, 0)) // read it back
	require.Equal(t, "", g.At(0, 0))      // untouched cells keep the zero value
}

// TestAtSetPanicOutOfRange ensures out-of-range indexing panics
// (bounds are a caller contract, not a recoverable error).
func TestAtSetPanicOutOfRange(t *testing.T) {
	g, err := grid.New[int](2, 2)
	require.NoError(t, err)

	require.Panics(t, func() { g.At(-1, 0) })     // negative row
	require.Panics(t, func() { g.At(0, 2) })      // column past the end
	require.Panics(t, func() { g.Set(2, 0, 1) })  // row past the end
	require.Panics(t, func() { g.Set(0, -1, 1) }) // negative column
}

// TestCloneIndependence ensures Clone returns a deep copy that does not
// share storage with the original.
func TestCloneIndependence(t *testing.T) {
	g, err := grid.NewFilled(2, 2, 1)
	require.NoError(t, err)

	dup := g.Clone()  // deep copy
	dup.Set(0, 0, 42) // mutate only the copy

	require.Equal(t, 1, g.At(0, 0))    // original unchanged
	require.Equal(t, 42, dup.At(0, 0)) // copy reflects the write
}

// TestFill checks that Fill overwrites every cell in place.
func TestFill(t *testing.T) {
	g, err := grid.New[int](3, 2)
	require.NoError(t, err)

	g.Set(1, 1, 5) // pre-existing value to be overwritten
	g.Fill(9)      // fill the whole grid

	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			require.Equal(t, 9, g.At(r, c))
		}
	}
}
