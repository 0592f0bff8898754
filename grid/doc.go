// Package grid provides Grid, a rectangular, fixed-shape generic container
// backed by a flat row-major slice.
//
// What:
//
//   - Grid[T] stores rows×cols elements of a single type T; the shape is
//     fixed at construction and never changes.
//   - Construction is always fully-initialized: New zeroes every cell,
//     NewFilled writes an explicit fill value, FromRows copies a nested slice.
//   - Cells may be overwritten in place via Set; the grid exclusively owns
//     its storage (FromRows copies, Clone deep-copies).
//
// Why:
//
//   - Render targets: the render package consumes any Grid through its
//     read-only Source abstraction.
//   - Scratch boards: game maps, occupancy masks, tabular snapshots.
//
// Complexity:
//
//   - New/NewFilled/FromRows/Clone/Fill: O(rows×cols) time and memory.
//   - Rows/Cols/At/Set:                  O(1).
//
// Bounds policy:
//
//   - Degenerate shapes (rows or cols equal to 0) are valid grids.
//   - At/Set panic on out-of-range indices; staying in [0,Rows)×[0,Cols)
//     is the caller's contract, mirroring gonum's mat convention.
//
// Errors:
//
//   - ErrBadShape: a requested dimension is negative.
//   - ErrRagged: FromRows input rows have differing lengths.
package grid
