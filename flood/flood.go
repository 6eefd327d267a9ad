package flood

import (
	"fmt"

	"github.com/katalvlaran/floodgrid/gridstore"
)

// offsets lists neighbor deltas in the order up, down, left, right.
var offsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Neighbors returns the axis-aligned neighbors of pos that lie inside g,
// in the order up, down, left, right.
// Complexity: O(1).
func Neighbors(g *gridstore.Grid, pos gridstore.Coordinate) []gridstore.Coordinate {
	out := make([]gridstore.Coordinate, 0, len(offsets))
	return appendNeighbors(out, g, pos)
}

func appendNeighbors(dst []gridstore.Coordinate, g *gridstore.Grid, pos gridstore.Coordinate) []gridstore.Coordinate {
	for _, d := range offsets {
		n := gridstore.Coordinate{Row: pos.Row + d[0], Col: pos.Col + d[1]}
		if g.InBounds(n) {
			dst = append(dst, n)
		}
	}
	return dst
}

// Query returns the connected component of filled cells containing start.
// If start is empty the component is empty; otherwise it includes start.
// Returns gridstore.ErrOutOfBounds if start lies outside g; no partial
// component is returned on error.
// Complexity: O(size²) time and memory.
func Query(g *gridstore.Grid, start gridstore.Coordinate) (Component, error) {
	filled, err := g.Filled(start)
	if err != nil {
		return Component{}, fmt.Errorf("Query: %w", err)
	}
	if !filled {
		return Component{Cells: gridstore.CoordSet{}}, nil
	}

	return Component{Cells: fill(g, start)}, nil
}

// fill runs a breadth-first flood from a filled, in-bounds start cell.
// The visited set is the result.
func fill(g *gridstore.Grid, start gridstore.Coordinate) gridstore.CoordSet {
	visited := gridstore.CoordSet{start: {}}
	queue := []gridstore.Coordinate{start}
	nbrs := make([]gridstore.Coordinate, 0, len(offsets))

	for qi := 0; qi < len(queue); qi++ {
		nbrs = appendNeighbors(nbrs[:0], g, queue[qi])
		for _, n := range nbrs {
			if visited.Has(n) || !g.FilledAt(n) {
				continue
			}
			visited.Add(n)
			queue = append(queue, n)
		}
	}
	return visited
}

// Components returns every connected component of g, ordered by the
// row-major position of each component's first cell. An all-empty grid
// yields no components.
// Complexity: O(size²) time and memory.
func Components(g *gridstore.Grid) []Component {
	var comps []Component
	seen := gridstore.CoordSet{}
	size := g.Size()

	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			pos := gridstore.Coordinate{Row: r, Col: c}
			if !g.FilledAt(pos) || seen.Has(pos) {
				continue
			}
			cells := fill(g, pos)
			for p := range cells {
				seen.Add(p)
			}
			comps = append(comps, Component{Cells: cells})
		}
	}
	return comps
}

// Largest returns the biggest component of g. Ties go to the component
// whose first cell comes first in row-major order. An all-empty grid
// yields an empty component.
func Largest(g *gridstore.Grid) Component {
	best := Component{Cells: gridstore.CoordSet{}}
	for _, comp := range Components(g) {
		if comp.Size() > best.Size() {
			best = comp
		}
	}
	return best
}
