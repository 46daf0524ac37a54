package sudoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildMatrix_Regularity proves the encoding contract the torus
// bookkeeping relies on: N·N² rows × 4·N² columns, exactly four true
// entries per row, exactly N per column.
func TestBuildMatrix_Regularity(t *testing.T) {
	for _, n := range []int{4, 9} {
		s, err := New(n)
		require.NoError(t, err)

		m := s.buildMatrix()
		assert.Equal(t, n*s.cellCount, m.Rows())
		assert.Equal(t, 4*s.cellCount, m.Cols())
		assert.Equal(t, 4*m.Rows(), m.Ones())

		colOnes := make([]int, m.Cols())
		for r := 0; r < m.Rows(); r++ {
			rowOnes := 0
			for c := 0; c < m.Cols(); c++ {
				if m.At(r, c) {
					rowOnes++
					colOnes[c]++
				}
			}
			require.Equal(t, 4, rowOnes, "size %d row %d", n, r)
		}
		for c, ones := range colOnes {
			require.Equal(t, n, ones, "size %d column %d", n, c)
		}
	}
}

// TestRowID_Roundtrip verifies that decodeRow is the exact arithmetic
// inverse of rowID over the whole candidate space.
func TestRowID_Roundtrip(t *testing.T) {
	s, err := New(9)
	require.NoError(t, err)

	next := 0
	for d := 1; d <= 9; d++ {
		for r := 0; r < 9; r++ {
			for c := 0; c < 9; c++ {
				id := s.rowID(d, r, c)
				assert.Equal(t, next, id, "rowIDs are dense and digit-major")
				next++

				gd, gr, gc := s.decodeRow(id)
				assert.Equal(t, [3]int{d, r, c}, [3]int{gd, gr, gc})
			}
		}
	}
}

// TestRowColumns_Families spot-checks the four constraint columns of a few
// candidates, including the block arithmetic b = ⌊r/k⌋·k + ⌊c/k⌋.
func TestRowColumns_Families(t *testing.T) {
	s, err := New(9)
	require.NoError(t, err)
	cc := s.cellCount // 81

	// digit 1 at (0,0): block 0.
	assert.Equal(t, [4]int{0, cc, 2 * cc, 3 * cc}, s.rowColumns(1, 0, 0))

	// digit 9 at (8,8): block 8.
	assert.Equal(t,
		[4]int{80, cc + 8*9 + 8, 2*cc + 8*9 + 8, 3*cc + 8*9 + 8},
		s.rowColumns(9, 8, 8))

	// digit 5 at (4,7): block ⌊4/3⌋·3 + ⌊7/3⌋ = 5.
	assert.Equal(t,
		[4]int{4*9 + 7, cc + 4*9 + 4, 2*cc + 7*9 + 4, 3*cc + 5*9 + 4},
		s.rowColumns(5, 4, 7))
}

// TestIntSqrt covers the exact integer square root used by New and Render.
func TestIntSqrt(t *testing.T) {
	cases := map[int]int{0: 0, 1: 1, 3: 1, 4: 2, 8: 2, 9: 3, 15: 3, 16: 4, 24: 4, 25: 5, 80: 8, 81: 9}
	for n, want := range cases {
		assert.Equal(t, want, intSqrt(n), "intSqrt(%d)", n)
	}
	assert.Equal(t, 0, intSqrt(-9))
}
