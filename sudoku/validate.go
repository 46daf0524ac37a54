package sudoku

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// validatePuzzle performs the eager input checks Solve runs before any
// torus is built: shape, value range, and direct clue conflicts. Conflict
// detection keeps one digit set per row, column, and block; a digit seen
// twice in the same set can never be completed and is rejected up front
// rather than silently yielding an empty search.
// Complexity: O(N²) time, O(N²) bits.
func (s *Solver) validatePuzzle(puzzle [][]int) error {
	if len(puzzle) != s.gridSize {
		return ErrDimension
	}
	for _, row := range puzzle {
		if len(row) != s.gridSize {
			return ErrDimension
		}
	}

	rows := make([]*bitset.BitSet, s.gridSize)
	cols := make([]*bitset.BitSet, s.gridSize)
	blocks := make([]*bitset.BitSet, s.gridSize)
	for i := 0; i < s.gridSize; i++ {
		rows[i] = bitset.New(uint(s.gridSize + 1))
		cols[i] = bitset.New(uint(s.gridSize + 1))
		blocks[i] = bitset.New(uint(s.gridSize + 1))
	}

	for r := 0; r < s.gridSize; r++ {
		for c := 0; c < s.gridSize; c++ {
			v := puzzle[r][c]
			if v < 0 || v > s.gridSize {
				return fmt.Errorf("%w: %d at (%d,%d)", ErrValueRange, v, r, c)
			}
			if v == 0 {
				continue
			}
			b := (r/s.blockSize)*s.blockSize + c/s.blockSize
			d := uint(v)
			if rows[r].Test(d) || cols[c].Test(d) || blocks[b].Test(d) {
				return fmt.Errorf("%w: digit %d at (%d,%d)", ErrClueConflict, v, r, c)
			}
			rows[r].Set(d)
			cols[c].Set(d)
			blocks[b].Set(d)
		}
	}

	return nil
}
