// Command dlxsolve reads a Sudoku puzzle as text, solves it with the
// dancing-links solver, and renders the solutions to stdout.
//
// Puzzle format: whitespace-separated cells, `0` or `.` meaning empty —
// either size×size single cells, or (for sides up to 9) size row strings
// like `53..7....`.
//
// Usage:
//
//	dlxsolve -size 9 -limit 2 -f puzzle.txt
//	echo ". . . .  . . . .  . . . .  . . . ." | dlxsolve -size 4 -limit 10
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/dlxsolve/logger"
	"github.com/katalvlaran/dlxsolve/sudoku"
)

func main() {
	size := flag.Int("size", 9, "grid side; must be a perfect square")
	limit := flag.Int("limit", 1, "maximum number of solutions to search for")
	printLimit := flag.Int("print", 0, "maximum number of solutions to render (0 = all found)")
	file := flag.String("f", "", "puzzle file (default: stdin)")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if !*verbose {
		logger.Set(logger.Logger().Level(zerolog.InfoLevel))
	}
	lg := logger.Logger()

	var in io.Reader = os.Stdin
	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			lg.Fatal().Err(err).Msg("open puzzle file")
		}
		defer f.Close()
		in = f
	}

	puzzle, err := readPuzzle(in, *size)
	if err != nil {
		lg.Fatal().Err(err).Msg("read puzzle")
	}

	solver, err := sudoku.New(*size)
	if err != nil {
		lg.Fatal().Err(err).Int("size", *size).Msg("configure solver")
	}

	start := time.Now()
	solutions, err := solver.Solve(puzzle, *limit)
	if err != nil {
		lg.Fatal().Err(err).Msg("solve")
	}
	lg.Info().
		Int("size", *size).
		Int("limit", *limit).
		Int("solutions", len(solutions)).
		Dur("took", time.Since(start)).
		Msg("search finished")

	pl := *printLimit
	if pl <= 0 {
		pl = len(solutions)
	}
	if err = sudoku.RenderAll(os.Stdout, solutions, pl); err != nil {
		lg.Fatal().Err(err).Msg("render solutions")
	}
}

// readPuzzle parses an n×n puzzle from whitespace-separated tokens: either
// n row strings of n characters each (sides ≤ 9 only), or n·n single-cell
// tokens. `.` and `0` both mean an empty cell.
func readPuzzle(r io.Reader, n int) ([][]int, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	tokens := strings.Fields(string(raw))

	var cells []int
	switch {
	case len(tokens) == n && n <= 9:
		for _, row := range tokens {
			if len(row) != n {
				return nil, fmt.Errorf("row %q: expected %d cells", row, n)
			}
			for _, ch := range row {
				if ch == '.' {
					cells = append(cells, 0)
					continue
				}
				if ch < '0' || ch > '9' {
					return nil, fmt.Errorf("row %q: unexpected cell %q", row, ch)
				}
				cells = append(cells, int(ch-'0'))
			}
		}
	case len(tokens) == n*n:
		for _, tok := range tokens {
			if tok == "." {
				cells = append(cells, 0)
				continue
			}
			v, convErr := strconv.Atoi(tok)
			if convErr != nil {
				return nil, fmt.Errorf("unexpected cell %q", tok)
			}
			cells = append(cells, v)
		}
	default:
		return nil, fmt.Errorf("expected %d row strings or %d cell tokens, got %d tokens", n, n*n, len(tokens))
	}

	grid := make([][]int, n)
	for i := range grid {
		grid[i] = cells[i*n : (i+1)*n]
	}

	return grid, nil
}
