// Package flood computes 4-directionally connected components of filled
// cells over a gridstore.Grid.
//
// What:
//
//   - Neighbors lists the in-bounds cells above, below, left and right of a cell.
//   - Query flood-fills from one cell and returns its component.
//   - Components partitions every filled cell of the grid into components.
//
// Semantics:
//
//   - An empty starting cell has no component; Query returns an empty set.
//   - A filled starting cell is always a member of its own component.
//   - Connectivity is an equivalence relation on filled cells: for any q in
//     Query(g, p), Query(g, q) returns the same set.
//   - Queries never mutate the grid.
//
// Complexity:
//
//   - Query:      O(size²) time and memory in the worst case (all cells filled).
//   - Components: O(size²) time and memory.
//
// The traversal is iterative with a slice-backed queue, so stack depth does
// not grow with component size. Visited checks are hash lookups.
package flood
