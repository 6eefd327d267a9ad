package flood

import (
	"strconv"

	"github.com/katalvlaran/floodgrid/gridstore"
)

// Component is the result of a connectivity query: a fresh, caller-owned
// set of coordinates.
type Component struct {
	Cells gridstore.CoordSet
}

// Size returns the number of cells in the component.
func (c Component) Size() int {
	return c.Cells.Len()
}

// Text returns the size as decimal text, as shown in a tooltip.
func (c Component) Text() string {
	return strconv.Itoa(c.Size())
}

// Contains reports whether pos belongs to the component.
func (c Component) Contains(pos gridstore.Coordinate) bool {
	return c.Cells.Has(pos)
}

// Empty reports whether the component holds no cells.
func (c Component) Empty() bool {
	return c.Size() == 0
}
