package render

import "gonum.org/v1/gonum/mat"

// gonumSource adapts a gonum mat.Matrix to the Source abstraction.
type gonumSource struct {
	m mat.Matrix
}

func (s gonumSource) Rows() int           { r, _ := s.m.Dims(); return r }
func (s gonumSource) Cols() int           { _, c := s.m.Dims(); return c }
func (s gonumSource) At(r, c int) float64 { return s.m.At(r, c) }

// FromGonum exposes a gonum matrix as a read-only Source[float64], so it
// can be passed straight to Full or Diagnostic. Cells render via
// fmt.Sprint on the float64 value. The adapter holds a reference, not a
// copy: mutating m between renders changes subsequent output.
// Panics on a nil matrix, matching gonum's own convention.
func FromGonum(m mat.Matrix) Source[float64] {
	if m == nil {
		panic("render: FromGonum called with nil matrix")
	}

	return gonumSource{m: m}
}
