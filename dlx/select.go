package dlx

// SelectRow permanently commits matrix row id before search begins,
// mirroring exactly what the search loop does when it chooses a row: cover
// the row's first column, then the column of every other node in the row's
// ring. The row is recorded in the selected list and reported as part of
// every solution Search emits.
//
// A row can only be committed while all of its nodes are still fully
// linked. If an earlier selection already consumed one of the row's columns
// (two selections competing for the same constraint), the row is dead and
// SelectRow reports ErrRowUnavailable instead of silently skipping it.
//
// Returns ErrRowIndex if id names no non-empty matrix row.
// Complexity: O(nodes in the rows sharing a column with id).
func (t *Torus) SelectRow(id int) error {
	if id < 0 || id >= len(t.rowHead) || t.rowHead[id] == 0 {
		return ErrRowIndex
	}
	head := t.rowHead[id]
	if !t.rowLive(head) {
		return ErrRowUnavailable
	}

	t.cover(t.nodes[head].col)
	for j := t.nodes[head].right; j != head; j = t.nodes[j].right {
		t.cover(t.nodes[j].col)
	}
	t.selected = append(t.selected, id)

	return nil
}

// rowLive reports whether every node of the row ring starting at head is
// still threaded through its column and whether every owning column header
// is still part of the root ring. A node that was unlinked by a cover still
// points at its old neighbors, but the neighbors no longer point back, so
// the reciprocal checks below detect it.
// Complexity: O(row width).
func (t *Torus) rowLive(head int) bool {
	nd := t.nodes
	j := head
	for {
		if nd[nd[j].up].down != j || nd[nd[j].down].up != j {
			return false
		}
		if c := nd[j].col; nd[nd[c].left].right != c || nd[nd[c].right].left != c {
			return false
		}
		j = nd[j].right
		if j == head {
			return true
		}
	}
}
