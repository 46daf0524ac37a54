package dlx

// cover and uncover are the only two operations that mutate torus links.
// Every caller pairs them 1:1 in LIFO order; uncover must traverse in the
// exact reverse of cover's order (bottom-to-top, right-to-left) or the ring
// invariant breaks.

// cover unlinks column header c from the root ring, then, for every row
// threaded under c and every other node of that row, unlinks the node from
// its own column's up/down ring and decrements that column's size. The
// covered column's own nodes stay linked to each other, which is what makes
// exact restoration possible.
// Complexity: O(nodes in the affected rows).
func (t *Torus) cover(c int) {
	nd := t.nodes
	nd[nd[c].left].right = nd[c].right
	nd[nd[c].right].left = nd[c].left
	for i := nd[c].down; i != c; i = nd[i].down {
		for j := nd[i].right; j != i; j = nd[j].right {
			nd[nd[j].down].up = nd[j].up
			nd[nd[j].up].down = nd[j].down
			nd[nd[j].col].size--
		}
	}
}

// uncover is the exact structural inverse of cover: it walks up then left
// (reversing cover's down-then-right order), re-incrementing each affected
// column's size and re-linking each node, and re-links the header into the
// root ring last.
// Complexity: O(nodes in the affected rows).
func (t *Torus) uncover(c int) {
	nd := t.nodes
	for i := nd[c].up; i != c; i = nd[i].up {
		for j := nd[i].left; j != i; j = nd[j].left {
			nd[nd[j].col].size++
			nd[nd[j].down].up = j
			nd[nd[j].up].down = j
		}
	}
	nd[nd[c].left].right = c
	nd[nd[c].right].left = c
}
