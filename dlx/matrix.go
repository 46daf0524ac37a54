package dlx

// Matrix is a dense boolean constraint table used only to stage torus
// construction: rows are candidate choices, columns are constraints, and a
// true cell means "this choice satisfies this constraint". It is not
// retained after NewTorus.
type Matrix struct {
	rows, cols int
	cells      []bool // row-major
	ones       int    // count of true cells, used to size the arena exactly
}

// NewMatrix allocates an all-false rows×cols staging matrix.
// Returns ErrMatrixShape unless rows ≥ 1 and cols ≥ 1.
// Complexity: O(rows×cols) memory.
func NewMatrix(rows, cols int) (*Matrix, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrMatrixShape
	}

	return &Matrix{
		rows:  rows,
		cols:  cols,
		cells: make([]bool, rows*cols),
	}, nil
}

// Rows returns the number of candidate rows. Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of constraint columns. Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// Ones returns the number of true cells. Complexity: O(1).
func (m *Matrix) Ones() int { return m.ones }

// Set marks cell (r, c) true. Setting an already-true cell is a no-op.
// Returns ErrCellRange if (r, c) lies outside the matrix.
// Complexity: O(1).
func (m *Matrix) Set(r, c int) error {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return ErrCellRange
	}
	if i := r*m.cols + c; !m.cells[i] {
		m.cells[i] = true
		m.ones++
	}

	return nil
}

// At reports whether cell (r, c) is true. Out-of-range references are false.
// Complexity: O(1).
func (m *Matrix) At(r, c int) bool {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return false
	}

	return m.cells[r*m.cols+c]
}
