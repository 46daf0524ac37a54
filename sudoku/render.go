package sudoku

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrRenderGrid indicates a grid that cannot be rendered: not square, or
// with a side that is not a perfect square.
var ErrRenderGrid = errors.New("sudoku: renderable grid must be square with a perfect-square side")

// Render writes grid to w as a bordered ASCII block: `.` for empty cells,
// `|` separators between k×k blocks, and `+--+` borders. Cells are
// double-width when the grid side exceeds 9 so 16×16 and 25×25 grids stay
// aligned. Display-only collaborator; no algorithmic contract.
// Complexity: O(N²).
func Render(w io.Writer, grid [][]int) error {
	n := len(grid)
	k := intSqrt(n)
	if n == 0 || k*k != n {
		return ErrRenderGrid
	}
	for _, row := range grid {
		if len(row) != n {
			return ErrRenderGrid
		}
	}

	cellW := 1
	if n > 9 {
		cellW = 2
	}

	lines := make([]string, n)
	for i, row := range grid {
		var sb strings.Builder
		sb.WriteByte('|')
		for j, v := range row {
			cell := "."
			if v != 0 {
				cell = strconv.Itoa(v)
			}
			sb.WriteByte(' ')
			sb.WriteString(cell)
			for pad := len(cell); pad < cellW; pad++ {
				sb.WriteByte(' ')
			}
			if (j+1)%k == 0 {
				sb.WriteString(" |")
			}
		}
		lines[i] = sb.String()
	}

	// Outer border spans the full line; the inner border repeats it with a
	// seam wherever the row lines carry a block separator.
	outer := "+" + strings.Repeat("-", len(lines[0])-2) + "+"
	inner := []byte(outer)
	for i := 0; i < len(lines[0]); i++ {
		if lines[0][i] == '|' {
			inner[i] = '+'
		}
	}

	var out strings.Builder
	out.WriteString(outer)
	out.WriteByte('\n')
	for i, line := range lines {
		out.WriteString(line)
		out.WriteByte('\n')
		if (i+1)%k == 0 && i+1 < n {
			out.Write(inner)
			out.WriteByte('\n')
		}
	}
	out.WriteString(outer)
	out.WriteByte('\n')

	_, err := io.WriteString(w, out.String())

	return err
}

// RenderAll writes up to printLimit solutions to w, each preceded by a
// "Solution i:" header and followed by a blank line.
// Complexity: O(min(printLimit, len(grids))·N²).
func RenderAll(w io.Writer, grids [][][]int, printLimit int) error {
	for i, grid := range grids {
		if i >= printLimit {
			break
		}
		if _, err := fmt.Fprintf(w, "Solution %d:\n", i+1); err != nil {
			return err
		}
		if err := Render(w, grid); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	return nil
}
