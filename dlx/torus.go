package dlx

// NewTorus materializes the staging matrix as the dancing-links torus:
// one root header, one column header per matrix column threaded circularly
// through the root via left/right, and one node per true cell threaded
// bottom-insert into its column via up/down and circularly into its matrix
// row via left/right (a plain ring of the row's nodes, no row header).
//
// After construction every column header's size equals the number of true
// cells in that column, and all link invariants hold. The matrix itself is
// not retained.
//
// Returns ErrNilMatrix for a nil matrix.
// Complexity: O(Rows×Cols) time, O(Cols + Ones) memory.
func NewTorus(m *Matrix) (*Torus, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}

	t := &Torus{
		// Exact capacity: root + headers + one node per true cell.
		// The arena never reallocates, so indices stay stable.
		nodes:   make([]node, 0, 1+m.cols+m.ones),
		columns: m.cols,
		rowHead: make([]int, m.rows),
	}

	// Root header: self-linked in every direction, sentinel metadata.
	t.nodes = append(t.nodes, node{col: root, row: headerRow, size: -1})

	// Column headers, threaded left-to-right through the root ring.
	var prev = root
	for j := 0; j < m.cols; j++ {
		idx := root + 1 + j
		t.nodes = append(t.nodes, node{
			left:  prev,
			right: root,
			up:    idx,
			down:  idx,
			col:   idx,
			row:   headerRow,
		})
		t.nodes[prev].right = idx
		t.nodes[root].left = idx
		prev = idx
	}

	// Row nodes, in matrix order. Vertical insertion at the bottom of each
	// column keeps down-order equal to matrix row order, which is what makes
	// search enumeration deterministic.
	for i := 0; i < m.rows; i++ {
		first, last := 0, 0
		for j := 0; j < m.cols; j++ {
			if !m.At(i, j) {
				continue
			}
			head := root + 1 + j
			idx := len(t.nodes)
			t.nodes = append(t.nodes, node{
				up:   t.nodes[head].up,
				down: head,
				col:  head,
				row:  i,
			})
			t.nodes[t.nodes[head].up].down = idx
			t.nodes[head].up = idx
			t.nodes[head].size++

			if first == 0 {
				first, last = idx, idx
				t.nodes[idx].left = idx
				t.nodes[idx].right = idx
			} else {
				t.nodes[idx].left = last
				t.nodes[idx].right = first
				t.nodes[first].left = idx
				t.nodes[last].right = idx
				last = idx
			}
		}
		t.rowHead[i] = first
	}

	return t, nil
}
