// Package dlx implements Knuth's Dancing Links (DLX) technique for the
// exact-cover problem: given a boolean matrix, select a subset of rows so
// that every column contains exactly one selected true entry.
//
// What:
//
//   - Matrix: a dense boolean staging table describing the constraints.
//   - Torus: the circular doubly-linked sparse form of that matrix, stored
//     as an arena of index-linked nodes (root + column headers + row nodes).
//   - SelectRow: permanently commit a row before search begins (used to
//     pre-satisfy constraints implied by known partial assignments).
//   - Search: recursive Algorithm X over the torus, enumerating up to a
//     caller-specified number of solutions in deterministic discovery order.
//
// Why:
//
//   - Exact cover generalizes a family of tiling and assignment puzzles
//     (Sudoku, polyomino packing, N-queens) into one search mechanism.
//   - The dancing-links trick makes backtracking cheap: covering a column
//     unlinks it in O(nodes touched), and uncovering is the exact inverse.
//   - An index arena (instead of raw pointers) keeps the four-way cyclic
//     structure trivially snapshot-comparable, which is how the
//     cover/uncover pairing invariant is verified in tests.
//
// Complexity:
//
//   - NewTorus: O(R×C) time over the staging matrix, O(ones) memory.
//   - cover/uncover: O(nodes in the affected rows) per call.
//   - Search: exponential worst case; the minimum-size column heuristic
//     keeps the branching factor low in practice.
//
// Errors:
//
//   - ErrNilMatrix: torus construction received a nil matrix.
//   - ErrMatrixShape: matrix dimensions must be at least 1×1.
//   - ErrCellRange: a matrix cell reference is out of range.
//   - ErrRowIndex: a row ID does not name a non-empty matrix row.
//   - ErrRowUnavailable: the row conflicts with previously selected rows.
//   - ErrSearchLimit: the solution limit must be positive.
package dlx
