package dlx

// Search runs Algorithm X over the torus and collects up to limit
// solutions. Each solution is the set of matrix row IDs covering every
// column exactly once: the rows committed earlier via SelectRow followed by
// the rows chosen by the search, in choice order. Solutions are emitted in
// discovery order, which is deterministic for a given construction and
// selection sequence.
//
// Once limit solutions have been collected every recursion level returns
// immediately; remaining solutions are simply not discovered. An
// unsatisfiable torus yields an empty slice and a nil error.
//
// Search restores every cover it performs, so the torus is structurally
// unchanged when it returns and Search may be called again.
//
// Returns ErrSearchLimit unless limit ≥ 1.
// Complexity: exponential worst case; bounded in practice by the
// minimum-size column heuristic. Recursion depth ≤ number of columns.
func (t *Torus) Search(limit int) ([][]int, error) {
	if limit < 1 {
		return nil, ErrSearchLimit
	}
	s := &searcher{t: t, limit: limit}
	s.run()

	return s.found, nil
}

// searcher carries the mutable search state: the current choice stack and
// the solutions collected so far.
type searcher struct {
	t     *Torus
	limit int
	stack []int // row IDs chosen at depths 0..k-1
	found [][]int
}

// run is one level of the recursive search: success when the root ring is
// empty, otherwise branch on the most-constrained column.
func (s *searcher) run() {
	if len(s.found) >= s.limit {
		return
	}
	t := s.t
	nd := t.nodes

	// Root ring empty: every constraint is satisfied.
	if nd[root].right == root {
		s.emit()

		return
	}

	// Minimum-size column, ties broken by first encountered in header
	// order. Choosing the most-constrained column is what keeps the
	// branching factor acceptable; it is not a stylistic choice.
	c := nd[root].right
	for h := nd[c].right; h != root; h = nd[h].right {
		if nd[h].size < nd[c].size {
			c = h
		}
	}

	t.cover(c)
	for i := nd[c].down; i != c; i = nd[i].down {
		s.stack = append(s.stack, nd[i].row)
		for j := nd[i].right; j != i; j = nd[j].right {
			t.cover(nd[j].col)
		}

		s.run()

		for j := nd[i].left; j != i; j = nd[j].left {
			t.uncover(nd[j].col)
		}
		s.stack = s.stack[:len(s.stack)-1]

		if len(s.found) >= s.limit {
			break
		}
	}
	t.uncover(c)
}

// emit records the current complete assignment: pre-selected rows first,
// then the choice stack.
func (s *searcher) emit() {
	sol := make([]int, 0, len(s.t.selected)+len(s.stack))
	sol = append(sol, s.t.selected...)
	sol = append(sol, s.stack...)
	s.found = append(s.found, sol)
}
