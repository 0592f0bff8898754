package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Caps for Diagnostic output. Process-wide constants, not per-call options:
// every diagnostic dump in a program truncates the same way.
const (
	// MaxDiagRows is the maximum number of data rows Diagnostic shows.
	MaxDiagRows = 6
	// MaxDiagCols is the maximum number of data columns Diagnostic shows.
	MaxDiagCols = 8
)

// Ellipsis is the placeholder marking omitted rows and columns in
// Diagnostic output.
const Ellipsis = "…"

// Source is the read-only grid abstraction both renderers consume.
// Implementations must report a fixed shape: every row holds exactly
// Cols() elements, and At is defined for all (r, c) in [0,Rows())×[0,Cols()).
// *grid.Grid[T] satisfies Source[T].
type Source[T any] interface {
	Rows() int
	Cols() int
	At(r, c int) T
}

// Full renders the entire matrix with one uniform cell width.
// Stage 1 (Degenerate): a 0-row or 0-column matrix renders as a single
// header line "{R}x{C} Matrix: []".
// Stage 2 (Measure): render every cell to its display string exactly once
// and take the global maximum display width — one width for all columns,
// trading tighter per-column output for visual consistency.
// Stage 3 (Emit): header "{R}x{C} Matrix:", then one "[a b c]" line per
// row, each cell right-aligned (space-left-padded) to the global width.
// Every emitted row has identical rendered width and exactly C non-empty
// space-separated tokens between its brackets.
// Complexity: O(R×C×avg_cell_len) time, O(R×C) memory.
func Full[T any](src Source[T]) string {
	rows, cols := src.Rows(), src.Cols()
	if rows == 0 || cols == 0 {
		return fmt.Sprintf("%dx%d Matrix: []\n", rows, cols)
	}

	// Render each cell once; track the global maximum display width.
	cells := make([]string, rows*cols)
	maxw := 0
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			s := fmt.Sprint(src.At(r, c))
			cells[r*cols+c] = s
			if w := runewidth.StringWidth(s); w > maxw {
				maxw = w
			}
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%dx%d Matrix:\n", rows, cols)
	for r := 0; r < rows; r++ {
		b.WriteByte('[')
		for c := 0; c < cols; c++ {
			if c > 0 {
				b.WriteByte(' ') // single separator before every column but the first
			}
			writePadded(&b, cells[r*cols+c], maxw)
		}
		b.WriteString("]\n")
	}

	return b.String()
}

// Diagnostic renders a size-capped view of the matrix for debugging.
// Stage 1 (Header): "Matrix<_, {R}, {C}> { rows: {R}, cols: {C} }" with
// ", rows_truncated" and ", cols_truncated" appended independently, in
// that order, whenever the corresponding dimension exceeds its cap.
// Stage 2 (Degenerate): a 0-row or 0-column matrix emits "[]" and stops —
// the degenerate case wins over elision logic.
// Stage 3 (Measure): the cell width comes from the shown window only
// (cheaper than the full scan in Full), widened to at least the display
// width of Ellipsis so placeholder cells align with data cells.
// Stage 4 (Emit): up to MaxDiagRows shown rows; when columns are elided
// each row carries a " … (+N cols)" suffix before its bracket; when rows
// are elided one summary row of ellipsis placeholders closes with
// "] (+N rows)".
// Output is bounded at MaxDiagRows+1 body lines regardless of shape.
// Complexity: O(MaxDiagRows×MaxDiagCols×avg_cell_len) time and memory.
func Diagnostic[T any](src Source[T]) string {
	rows, cols := src.Rows(), src.Cols()
	showR, showC := min(rows, MaxDiagRows), min(cols, MaxDiagCols)
	rowsElided := showR < rows
	colsElided := showC < cols

	var b strings.Builder
	fmt.Fprintf(&b, "Matrix<_, %d, %d> { rows: %d, cols: %d", rows, cols, rows, cols)
	if rowsElided {
		b.WriteString(", rows_truncated")
	}
	if colsElided {
		b.WriteString(", cols_truncated")
	}
	b.WriteString(" }\n")

	if rows == 0 || cols == 0 {
		b.WriteString("[]\n")
		return b.String()
	}

	// Width from the shown window only; each window cell renders once.
	cells := make([]string, showR*showC)
	maxw := runewidth.StringWidth(Ellipsis)
	for r := 0; r < showR; r++ {
		for c := 0; c < showC; c++ {
			s := fmt.Sprint(src.At(r, c))
			cells[r*showC+c] = s
			if w := runewidth.StringWidth(s); w > maxw {
				maxw = w
			}
		}
	}

	for r := 0; r < showR; r++ {
		b.WriteByte('[')
		for c := 0; c < showC; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			writePadded(&b, cells[r*showC+c], maxw)
		}
		if colsElided {
			fmt.Fprintf(&b, " %s (+%d cols)", Ellipsis, cols-showC)
		}
		b.WriteString("]\n")
	}

	// One summary row stands in for all omitted rows; its count attaches
	// to the closing bracket, distinct from the per-row column suffix.
	if rowsElided {
		b.WriteByte('[')
		for c := 0; c < showC; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			writePadded(&b, Ellipsis, maxw)
		}
		if colsElided {
			fmt.Fprintf(&b, " %s (+%d cols)", Ellipsis, cols-showC)
		}
		fmt.Fprintf(&b, "] (+%d rows)\n", rows-showR)
	}

	return b.String()
}

// writePadded emits s right-aligned to width display columns.
// Padding counts terminal columns, not bytes, so multibyte cells align.
func writePadded(b *strings.Builder, s string, width int) {
	if pad := width - runewidth.StringWidth(s); pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteString(s)
}
