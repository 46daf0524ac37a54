package sudoku

import "github.com/katalvlaran/dlxsolve/dlx"

// Exact-cover encoding. Candidate rows are digit-major:
//
//	rowID(d, r, c) = (d-1)·cellCount + r·N + c
//
// Constraint columns come in four contiguous blocks of cellCount each:
//
//	cell-occupied   r·N + c                     one digit per cell
//	row-number      cellCount  + r·N + (d-1)    digit d once per row r
//	column-number  2·cellCount + c·N + (d-1)    digit d once per column c
//	block-number   3·cellCount + b·N + (d-1)    digit d once per block b
//
// with b = ⌊r/k⌋·k + ⌊c/k⌋. Every matrix row therefore has exactly four
// true entries (one per family) and every column exactly N, which is the
// regularity the cover/uncover bookkeeping relies on.

// buildMatrix stages the full exact-cover matrix for the configured size:
// N·cellCount candidate rows by 4·cellCount constraint columns.
// Complexity: O(N³) time, O(N⁴) transient memory.
func (s *Solver) buildMatrix() *dlx.Matrix {
	m, _ := dlx.NewMatrix(s.gridSize*s.cellCount, 4*s.cellCount)
	for d := 1; d <= s.gridSize; d++ {
		for r := 0; r < s.gridSize; r++ {
			for c := 0; c < s.gridSize; c++ {
				id := s.rowID(d, r, c)
				for _, col := range s.rowColumns(d, r, c) {
					_ = m.Set(id, col)
				}
			}
		}
	}

	return m
}

// rowID maps candidate (digit, row, col) to its matrix row index.
func (s *Solver) rowID(digit, row, col int) int {
	return (digit-1)*s.cellCount + row*s.gridSize + col
}

// decodeRow is the arithmetic inverse of rowID: no auxiliary tables, the
// candidate triple is reconstructible from the index convention alone.
func (s *Solver) decodeRow(id int) (digit, row, col int) {
	digit = id/s.cellCount + 1
	rem := id % s.cellCount

	return digit, rem / s.gridSize, rem % s.gridSize
}

// rowColumns returns the four constraint columns candidate (digit, row,
// col) satisfies, in family order.
func (s *Solver) rowColumns(digit, row, col int) [4]int {
	b := (row/s.blockSize)*s.blockSize + col/s.blockSize

	return [4]int{
		row*s.gridSize + col,
		s.cellCount + row*s.gridSize + (digit - 1),
		2*s.cellCount + col*s.gridSize + (digit - 1),
		3*s.cellCount + b*s.gridSize + (digit - 1),
	}
}
