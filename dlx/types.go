// Package dlx defines core types and sentinel errors for the exact-cover
// solver of github.com/katalvlaran/dlxsolve.
package dlx

import "errors"

// Sentinel errors for dlx operations.
var (
	// ErrNilMatrix indicates NewTorus was given a nil staging matrix.
	ErrNilMatrix = errors.New("dlx: staging matrix must not be nil")
	// ErrMatrixShape indicates a staging matrix with no rows or no columns.
	ErrMatrixShape = errors.New("dlx: matrix must have at least one row and one column")
	// ErrCellRange indicates a cell reference outside the matrix bounds.
	ErrCellRange = errors.New("dlx: cell reference out of range")
	// ErrRowIndex indicates a row ID that names no non-empty matrix row.
	ErrRowIndex = errors.New("dlx: row index out of range")
	// ErrRowUnavailable indicates a row whose nodes are no longer fully
	// linked, i.e. it conflicts with rows selected earlier.
	ErrRowUnavailable = errors.New("dlx: row conflicts with a previously selected row")
	// ErrSearchLimit indicates a non-positive solution limit.
	ErrSearchLimit = errors.New("dlx: search limit must be positive")
)

// root is the arena index of the distinguished root header.
// Column header j lives at arena index root+1+j.
const root = 0

// headerRow is the sentinel row ID carried by the root and column headers.
// It is never read as a candidate row.
const headerRow = -1

// node is one link record of the torus. All link fields are arena indices,
// never raw pointers: the arena owns every node, and indices stay stable for
// the lifetime of the torus, which keeps the structure directly comparable
// in snapshot tests.
//
// Link invariant (outside a single in-flight cover/uncover):
//
//	nodes[nodes[n].right].left == n  and  nodes[nodes[n].down].up == n
type node struct {
	left, right int // circular row ring (header ring for column headers)
	up, down    int // circular column ring
	col         int // owning column header index (headers point to themselves)
	row         int // candidate row ID; headerRow for the root and headers
	size        int // live rows threaded under this column; headers only
}

// Torus is the circular doubly-linked sparse representation of an
// exact-cover matrix. It is built fresh from a Matrix, mutated exclusively
// through cover/uncover (via SelectRow and Search), and must be owned by a
// single goroutine for the duration of a solve.
type Torus struct {
	nodes    []node
	columns  int   // number of column headers
	rowHead  []int // first arena node of each matrix row; 0 for empty rows
	selected []int // row IDs committed via SelectRow, in call order
}

// ColumnCount returns the number of constraint columns.
// Complexity: O(1).
func (t *Torus) ColumnCount() int { return t.columns }

// ColumnSize returns the number of rows currently linked under column j.
// Returns ErrCellRange if j is out of range.
// Complexity: O(1).
func (t *Torus) ColumnSize(j int) (int, error) {
	if j < 0 || j >= t.columns {
		return 0, ErrCellRange
	}

	return t.nodes[root+1+j].size, nil
}

// Selected returns a copy of the row IDs committed via SelectRow, in the
// order they were applied.
// Complexity: O(len(selected)).
func (t *Torus) Selected() []int {
	out := make([]int, len(t.selected))
	copy(out, t.selected)

	return out
}
