// Package sudoku solves generalized Sudoku puzzles (grid side N = k²,
// block size k) by reduction to exact cover, solved with the dancing-links
// machinery of package dlx.
//
// What:
//
//   - Solver: configured once per grid size, reusable across puzzles.
//   - Solve: enumerate up to a caller-specified number of distinct
//     completions of a partial grid, in deterministic discovery order.
//   - Render / RenderAll: bordered ASCII formatting of grids, for human
//     display only; not part of the algorithmic contract.
//
// Why:
//
//   - Sudoku's four placement rules (cell occupied, digit-per-row,
//     digit-per-column, digit-per-block) map one-to-one onto exact-cover
//     constraints, so a single generic search mechanism decides existence
//     and enumerates completions for any k² grid side.
//   - Reduction beats hand-rolled backtracking: the minimum-size column
//     heuristic prunes the search far harder than cell-order guessing.
//
// Encoding:
//
//	For every candidate (digit d, row r, col c) there is one matrix row
//	with exactly four true entries, one per constraint family. Rows are
//	digit-major: rowID = (d-1)·N² + r·N + c. Columns come in four
//	contiguous blocks of N² each, in the family order above.
//
// Complexity:
//
//   - Solve: O(N⁴) construction + exponential worst-case search, sharply
//     bounded in practice by the most-constrained-column heuristic.
//     Recursion depth ≤ N² (cells left to fill).
//
// Errors:
//
//   - ErrGridSize: configured grid side is not a perfect square.
//   - ErrDimension: puzzle is not N×N.
//   - ErrValueRange: a cell value lies outside 0..N.
//   - ErrClueConflict: two given digits contradict each other directly.
//   - ErrSearchLimit: the solution limit must be positive.
//
// A conflict-free puzzle with no completion is not an error: Solve returns
// an empty slice and a nil error.
//
// Concurrency: a Solver instance may be reused sequentially, but one
// instance must not be shared by concurrent Solve calls. Wall-clock
// cancellation belongs to wrapping collaborators; the core only bounds work
// by the solution limit.
package sudoku
