// Package gridfmt renders fixed-shape matrices as aligned, terminal-friendly
// text — either in full, or truncated to a bounded diagnostic view.
//
// 🚀 What is gridfmt?
//
//	A small, deterministic formatting library built from two packages:
//		• grid/   — generic fixed-shape container Grid[T] (flat row-major storage)
//		• render/ — the renderers: Full (uniform-width) and Diagnostic (capped view)
//
// ✨ Why choose gridfmt?
//
//   - Predictable output – uniform column widths, byte-stable results
//   - Bounded diagnostics – large matrices collapse to a handful of lines
//     with accurate "(+N rows)" / "(+N cols)" elision markers
//   - Unicode-aware – widths measured in terminal display columns,
//     so multibyte cells still line up
//   - Pluggable input – any render.Source (including gonum mat.Matrix via
//     render.FromGonum) can be rendered, not just grid.Grid
//
// Quick ASCII example:
//
//	2x3 Matrix:
//	[ 1  2  3]
//	[40  5  6]
//
// A demo binary lives under cmd/gridfmt.
package gridfmt
