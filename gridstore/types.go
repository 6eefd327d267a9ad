package gridstore

import (
	"fmt"
	"sort"
)

// Cell values.
const (
	Empty  = 0
	Filled = 1
)

// Coordinate identifies a cell by row and column. It is a comparable value
// type, so it can key maps directly.
type Coordinate struct {
	Row, Col int
}

// String renders the coordinate as "(row,col)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// CoordSet is an unordered set of coordinates.
type CoordSet map[Coordinate]struct{}

// NewCoordSet returns a set holding the given coordinates.
func NewCoordSet(coords ...Coordinate) CoordSet {
	s := make(CoordSet, len(coords))
	for _, c := range coords {
		s[c] = struct{}{}
	}
	return s
}

// Add inserts c into the set.
func (s CoordSet) Add(c Coordinate) {
	s[c] = struct{}{}
}

// Has reports whether c is a member of the set. Safe on a nil set.
func (s CoordSet) Has(c Coordinate) bool {
	_, ok := s[c]
	return ok
}

// Len returns the number of coordinates in the set.
func (s CoordSet) Len() int {
	return len(s)
}

// Equal reports whether both sets hold exactly the same coordinates.
// A nil set equals an empty one.
func (s CoordSet) Equal(other CoordSet) bool {
	if len(s) != len(other) {
		return false
	}
	for c := range s {
		if !other.Has(c) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy. Cloning a nil set yields an empty set.
func (s CoordSet) Clone() CoordSet {
	out := make(CoordSet, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}

// Sorted returns the members in row-major order.
// Complexity: O(n log n).
func (s CoordSet) Sorted() []Coordinate {
	out := make([]Coordinate, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// Tooltip pins a display text to one cell.
type Tooltip struct {
	Pos  Coordinate
	Text string
}
