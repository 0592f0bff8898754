package grid

import "fmt"

// Grid is a rectangular, fixed-shape container of T values.
// rows and cols are fixed at construction; data holds rows*cols elements
// in row-major order.
type Grid[T any] struct {
	rows, cols int // immutable shape
	data       []T // flat backing storage, length == rows*cols
}

// New creates a rows×cols Grid with every cell set to the zero value of T.
// Stage 1 (Validate): reject negative dimensions (zero is a valid shape).
// Stage 2 (Prepare): allocate the flat backing slice.
// Stage 3 (Finalize): return the new Grid or ErrBadShape.
// Complexity: O(rows×cols) time and memory.
func New[T any](rows, cols int) (*Grid[T], error) {
	// Validate dimensions; degenerate (0) shapes are allowed.
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}

	// Allocate flat storage; zero-valued by the runtime.
	return &Grid[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}, nil
}

// NewFilled creates a rows×cols Grid with every cell set to fill.
// Complexity: O(rows×cols) time and memory.
func NewFilled[T any](rows, cols int, fill T) (*Grid[T], error) {
	// Delegate shape validation and allocation to New.
	g, err := New[T](rows, cols)
	if err != nil {
		return nil, err
	}
	// Write the fill value into every cell.
	g.Fill(fill)

	return g, nil
}

// FromRows creates a Grid holding a copy of the given nested rows.
// Stage 1 (Validate): every row must have the same length, else ErrRagged.
// Stage 2 (Execute): copy all rows into fresh flat storage — the Grid
// never aliases the caller's slices.
// An empty outer slice yields a valid 0×0 grid; [][]T{{}} yields 1×0.
// Complexity: O(rows×cols) time and memory.
func FromRows[T any](rows [][]T) (*Grid[T], error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0]) // first row fixes the column count
	}
	// Validate rectangularity against the first row.
	for _, row := range rows {
		if len(row) != c {
			return nil, ErrRagged
		}
	}

	// Copy row by row into flat row-major storage.
	g := &Grid[T]{rows: r, cols: c, data: make([]T, r*c)}
	for i, row := range rows {
		copy(g.data[i*c:(i+1)*c], row)
	}

	return g, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (g *Grid[T]) Rows() int { return g.rows }

// Cols returns the number of columns. Complexity: O(1).
func (g *Grid[T]) Cols() int { return g.cols }

// offset computes the flat index for (r, c), panicking when the pair is
// outside [0,rows)×[0,cols). Complexity: O(1).
func (g *Grid[T]) offset(r, c int) int {
	if r < 0 || r >= g.rows || c < 0 || c >= g.cols {
		panic(fmt.Sprintf("grid: index (%d,%d) out of range for %dx%d grid", r, c, g.rows, g.cols))
	}

	return r*g.cols + c
}

// At returns the element at (r, c). Panics when out of range.
// Complexity: O(1).
func (g *Grid[T]) At(r, c int) T { return g.data[g.offset(r, c)] }

// Set overwrites the element at (r, c) with v. Panics when out of range.
// Complexity: O(1).
func (g *Grid[T]) Set(r, c int, v T) { g.data[g.offset(r, c)] = v }

// Fill overwrites every cell with v. Complexity: O(rows×cols).
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Clone returns a deep copy sharing no storage with the receiver.
// Complexity: O(rows×cols) time and memory.
func (g *Grid[T]) Clone() *Grid[T] {
	// Allocate and copy the flat slice in one pass.
	dup := make([]T, len(g.data))
	copy(dup, g.data)

	return &Grid[T]{rows: g.rows, cols: g.cols, data: dup}
}
