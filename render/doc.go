// Package render turns fixed-shape matrices into aligned text.
//
// What:
//
//   - Full: the complete matrix, every cell right-aligned to one global
//     width so all rows render to the same length.
//   - Diagnostic: a size-capped view for large matrices — at most
//     MaxDiagRows×MaxDiagCols cells plus ellipsis markers carrying exact
//     "(+N rows)" / "(+N cols)" elision counts.
//   - Source: the read-only abstraction both renderers consume;
//     *grid.Grid[T] satisfies it, and FromGonum adapts gonum matrices.
//
// Why:
//
//   - Log lines and test failures: dump a board or a distance table
//     without hand-rolled padding.
//   - Debugging big data: a 10000×10000 matrix still prints in a
//     handful of lines, with accurate omission counts.
//
// Width policy:
//
//   - Cells render via fmt.Sprint (fmt.Stringer is honored), and widths
//     are measured in terminal display columns (go-runewidth), so
//     multibyte cells align on screen.
//   - Full scans every cell for the global width; Diagnostic scans only
//     the shown window — a deliberate accuracy/cost tradeoff.
//
// Complexity:
//
//   - Full:       O(R×C×avg_cell_len) time, O(R×C) memory.
//   - Diagnostic: O(MaxDiagRows×MaxDiagCols×avg_cell_len) time,
//     O(MaxDiagRows×MaxDiagCols) memory — bounded regardless of shape.
//
// Both renderers are pure: they never mutate the source and keep no
// cross-call state. Concurrent calls on distinct (or unmutated) sources
// are safe; the source itself is not synchronized here.
package render
