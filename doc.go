// Package dlxsolve is an exact-cover toolkit built around Knuth's Dancing
// Links, with a generalized Sudoku solver (grid side N = k²) as its
// flagship client.
//
// 🚀 What is dlxsolve?
//
//	A small, deterministic library that brings together:
//		• dlx: the circular doubly-linked "torus", cover/uncover primitives,
//		  row pre-selection, and bounded Algorithm X search
//		• sudoku: the four-constraint exact-cover encoding, puzzle
//		  validation, solution enumeration, and ASCII rendering
//		• cmd/dlxsolve: a CLI that reads puzzle text and prints solutions
//
// ✨ Why choose dlxsolve?
//
//   - One mechanism, many sizes – 4×4, 9×9, 16×16, 25×25 all reduce to the
//     same torus and the same search
//   - Deterministic – identical puzzles enumerate identical solutions in
//     identical order, every time
//   - Honest errors – contradictory clues are rejected eagerly; a puzzle
//     with no completion yields an empty result, never a guess
//   - Index-arena torus – the cyclic structure is snapshot-comparable,
//     so the cover/uncover pairing invariant is actually tested
//
// Under the hood, everything is organized under three packages:
//
//	dlx/    — exact-cover matrix staging, torus, cover/uncover, search
//	sudoku/ — Sudoku encoding, Solver, validation, rendering
//	logger/ — module-wide zerolog logger (silenced under go test)
//
// Quick ASCII example, a solved 4×4 grid:
//
//	+-----------+
//	| 1 2 | 3 4 |
//	| 3 4 | 1 2 |
//	+-----+-----+
//	| 2 1 | 4 3 |
//	| 4 3 | 2 1 |
//	+-----------+
//
// Dive into the package docs for contracts, complexity notes, and the
// encoding conventions.
//
//	go get github.com/katalvlaran/dlxsolve
package dlxsolve
