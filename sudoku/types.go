// Package sudoku defines the Solver type and sentinel errors for the
// sudoku subpackage of github.com/katalvlaran/dlxsolve.
package sudoku

import "errors"

// Sentinel errors for sudoku operations.
var (
	// ErrGridSize indicates a grid side that is not a perfect square.
	ErrGridSize = errors.New("sudoku: grid size must be a perfect square (e.g. 4, 9, 16, 25)")
	// ErrDimension indicates a puzzle that is not N×N for the configured N.
	ErrDimension = errors.New("sudoku: puzzle dimensions must match the configured grid size")
	// ErrValueRange indicates a cell value outside 0..N.
	ErrValueRange = errors.New("sudoku: cell values must lie in 0..gridSize")
	// ErrClueConflict indicates two given digits that contradict each other
	// (same digit twice in a row, column, or block).
	ErrClueConflict = errors.New("sudoku: conflicting clues")
	// ErrSearchLimit indicates a non-positive solution limit.
	ErrSearchLimit = errors.New("sudoku: search limit must be positive")
)

// Solver solves generalized Sudoku puzzles of one fixed grid side.
// The zero value is unusable; construct with New. All per-solve state
// (staging matrix, torus) is rebuilt from scratch inside each Solve call
// and discarded afterwards, so a Solver holds no mutable state between
// calls and may be reused sequentially.
type Solver struct {
	gridSize  int // N, the grid side
	blockSize int // k = √N, the block side
	cellCount int // N², cells per grid and columns per constraint family
}

// New constructs a Solver for an N×N grid. N must be a perfect square so a
// valid k×k block structure exists; anything else is ErrGridSize.
// Complexity: O(√N).
func New(gridSize int) (*Solver, error) {
	k := intSqrt(gridSize)
	if gridSize < 1 || k*k != gridSize {
		return nil, ErrGridSize
	}

	return &Solver{
		gridSize:  gridSize,
		blockSize: k,
		cellCount: gridSize * gridSize,
	}, nil
}

// GridSize returns the configured grid side N. Complexity: O(1).
func (s *Solver) GridSize() int { return s.gridSize }

// BlockSize returns the block side k = √N. Complexity: O(1).
func (s *Solver) BlockSize() int { return s.blockSize }

// intSqrt returns ⌊√n⌋ for n ≥ 0 without floating-point round-off.
func intSqrt(n int) int {
	if n < 0 {
		return 0
	}
	k := 0
	for (k+1)*(k+1) <= n {
		k++
	}

	return k
}
