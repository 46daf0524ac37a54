package sudoku

import (
	"fmt"
	"time"

	"github.com/katalvlaran/dlxsolve/dlx"
	"github.com/katalvlaran/dlxsolve/logger"
)

// Solve enumerates up to searchLimit distinct completions of puzzle, in
// deterministic discovery order. puzzle must be N×N with values in 0..N
// (0 = empty); searchLimit must be ≥ 1.
//
// Each call rebuilds the staging matrix and torus from scratch, applies the
// given digits as pre-selected rows, and runs the bounded search, so
// repeated calls on one Solver are independent and yield identical results.
// One instance must not be shared by concurrent calls.
//
// A conflict-free puzzle with no completion returns an empty slice and a
// nil error. Directly contradicting clues return ErrClueConflict.
// Complexity: O(N⁴) construction + bounded exponential search.
func (s *Solver) Solve(puzzle [][]int, searchLimit int) ([][][]int, error) {
	if searchLimit < 1 {
		return nil, ErrSearchLimit
	}
	if err := s.validatePuzzle(puzzle); err != nil {
		return nil, err
	}

	start := time.Now()
	tor, err := dlx.NewTorus(s.buildMatrix())
	if err != nil {
		return nil, err
	}

	clues, err := s.applyClues(tor, puzzle)
	if err != nil {
		return nil, err
	}

	raw, err := tor.Search(searchLimit)
	if err != nil {
		return nil, err
	}

	solutions := make([][][]int, 0, len(raw))
	for _, rows := range raw {
		solutions = append(solutions, s.mapToGrid(rows))
	}

	lg := logger.Logger()
	lg.Debug().
		Int("gridSize", s.gridSize).
		Int("clues", clues).
		Int("limit", searchLimit).
		Int("solutions", len(solutions)).
		Dur("took", time.Since(start)).
		Msg("dlx solve complete")

	return solutions, nil
}

// applyClues commits every given digit of the puzzle as a pre-selected
// torus row, in grid (row-major) order, and returns the clue count. The
// puzzle has already passed validatePuzzle, so a dead row here means the
// givens contradict each other through a constraint the direct duplicate
// scan cannot see; it is still reported as ErrClueConflict rather than
// silently skipped.
func (s *Solver) applyClues(tor *dlx.Torus, puzzle [][]int) (int, error) {
	clues := 0
	for r := 0; r < s.gridSize; r++ {
		for c := 0; c < s.gridSize; c++ {
			v := puzzle[r][c]
			if v == 0 {
				continue
			}
			if err := tor.SelectRow(s.rowID(v, r, c)); err != nil {
				return clues, fmt.Errorf("%w: digit %d at (%d,%d)", ErrClueConflict, v, r, c)
			}
			clues++
		}
	}

	return clues, nil
}

// mapToGrid projects one search result (clue rows plus chosen rows) into a
// complete N×N grid. Clue rows and search rows never share a cell, so the
// writes cannot conflict.
func (s *Solver) mapToGrid(rows []int) [][]int {
	grid := make([][]int, s.gridSize)
	for r := range grid {
		grid[r] = make([]int, s.gridSize)
	}
	for _, id := range rows {
		d, r, c := s.decodeRow(id)
		grid[r][c] = d
	}

	return grid
}
