package sudoku_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dlxsolve/sudoku"
)

// TestSolve_MaskedGridProperties blanks arbitrary subsets of a completed
// 4×4 grid (one mask bit per cell) and checks, for every returned
// solution: it is a valid grid, it preserves every surviving clue, and at
// least one completion exists (the original grid always does).
func TestSolve_MaskedGridProperties(t *testing.T) {
	s, err := sudoku.New(4)
	require.NoError(t, err)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	properties.Property("masked solved grids complete consistently", prop.ForAll(
		func(mask uint16) bool {
			puzzle := cloneGrid(solved4)
			for bit := 0; bit < 16; bit++ {
				if mask&(1<<bit) != 0 {
					puzzle[bit/4][bit%4] = 0
				}
			}

			sols, solveErr := s.Solve(puzzle, 5)
			if solveErr != nil || len(sols) == 0 {
				return false
			}
			for _, g := range sols {
				if !gridValid(g, 4, 2) || !cluesPreserved(puzzle, g) {
					return false
				}
			}

			return true
		},
		gen.UInt16(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// gridValid is the boolean form of assertValidGrid for property callbacks.
func gridValid(grid [][]int, n, k int) bool {
	if len(grid) != n {
		return false
	}
	check := func(cells []int) bool {
		seen := make([]bool, n+1)
		for _, v := range cells {
			if v < 1 || v > n || seen[v] {
				return false
			}
			seen[v] = true
		}

		return true
	}
	for r := 0; r < n; r++ {
		if !check(grid[r]) {
			return false
		}
	}
	for c := 0; c < n; c++ {
		col := make([]int, n)
		for r := 0; r < n; r++ {
			col[r] = grid[r][c]
		}
		if !check(col) {
			return false
		}
	}
	for br := 0; br < n; br += k {
		for bc := 0; bc < n; bc += k {
			var block []int
			for r := br; r < br+k; r++ {
				block = append(block, grid[r][bc:bc+k]...)
			}
			if !check(block) {
				return false
			}
		}
	}

	return true
}

// cluesPreserved reports whether every given digit of puzzle survives in grid.
func cluesPreserved(puzzle, grid [][]int) bool {
	for r := range puzzle {
		for c, v := range puzzle[r] {
			if v != 0 && grid[r][c] != v {
				return false
			}
		}
	}

	return true
}
