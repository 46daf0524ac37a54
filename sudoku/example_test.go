package sudoku_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/dlxsolve/sudoku"
)

// ExampleSolver_Solve demonstrates the identity property: a completed
// valid grid solves to exactly itself.
func ExampleSolver_Solve() {
	s, err := sudoku.New(4)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	grid := [][]int{
		{1, 2, 3, 4},
		{3, 4, 1, 2},
		{2, 1, 4, 3},
		{4, 3, 2, 1},
	}

	solutions, err := s.Solve(grid, 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("solutions:", len(solutions))
	fmt.Println("first row:", solutions[0][0])
	// Output:
	// solutions: 1
	// first row: [1 2 3 4]
}

// ExampleRender shows the bordered ASCII layout with dots for empty cells.
func ExampleRender() {
	puzzle := [][]int{
		{1, 0, 3, 0},
		{0, 4, 0, 2},
		{2, 0, 4, 0},
		{0, 3, 0, 1},
	}

	if err := sudoku.Render(os.Stdout, puzzle); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// +-----------+
	// | 1 . | 3 . |
	// | . 4 | . 2 |
	// +-----+-----+
	// | 2 . | 4 . |
	// | . 3 | . 1 |
	// +-----------+
}

// ExampleSolver_GridSize shows the pure accessors.
func ExampleSolver_GridSize() {
	s, _ := sudoku.New(9)
	fmt.Println(s.GridSize(), s.BlockSize())
	// Output:
	// 9 3
}
