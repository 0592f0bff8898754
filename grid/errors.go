// Package grid: sentinel error set.
// Constructors MUST return these sentinels and tests MUST check them via
// errors.Is. Out-of-range indexing is a caller contract violation and
// panics instead (see doc.go "Bounds policy").
package grid

import "errors"

var (
	// ErrBadShape is returned when a requested dimension is negative.
	// Zero is a valid (degenerate) dimension, not an error.
	ErrBadShape = errors.New("grid: dimensions must be >= 0")

	// ErrRagged is returned by FromRows when rows have differing lengths.
	ErrRagged = errors.New("grid: all rows must have the same length")
)
