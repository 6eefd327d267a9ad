package flood_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/floodgrid/flood"
	"github.com/katalvlaran/floodgrid/gridstore"
)

func at(r, c int) gridstore.Coordinate {
	return gridstore.Coordinate{Row: r, Col: c}
}

//----------------------------------------------------------------------------//
// Neighbors
//----------------------------------------------------------------------------//

// TestNeighbors checks corner, edge and interior cells on a 3×3 grid.
func TestNeighbors(t *testing.T) {
	g, err := gridstore.NewGrid([][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}})
	require.NoError(t, err)

	cases := []struct {
		name string
		pos  gridstore.Coordinate
		want []gridstore.Coordinate
	}{
		{"TopLeft", at(0, 0), []gridstore.Coordinate{at(1, 0), at(0, 1)}},
		{"BottomRight", at(2, 2), []gridstore.Coordinate{at(1, 2), at(2, 1)}},
		{"TopEdge", at(0, 1), []gridstore.Coordinate{at(1, 1), at(0, 0), at(0, 2)}},
		{"Center", at(1, 1), []gridstore.Coordinate{at(0, 1), at(2, 1), at(1, 0), at(1, 2)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, flood.Neighbors(g, tc.pos))
		})
	}
}

func TestNeighbors_SingleCell(t *testing.T) {
	g, err := gridstore.NewGrid([][]int{{1}})
	require.NoError(t, err)
	assert.Empty(t, flood.Neighbors(g, at(0, 0)))
}

//----------------------------------------------------------------------------//
// Query scenarios on the initial grid
//
//	0 0 0 0 1
//	1 1 0 0 0
//	1 1 0 1 1
//	0 0 0 0 0
//	1 1 1 0 0
//----------------------------------------------------------------------------//

func TestQuery_Block(t *testing.T) {
	comp, err := flood.Query(gridstore.InitialGrid(), at(2, 0))
	require.NoError(t, err)
	want := gridstore.NewCoordSet(at(1, 0), at(1, 1), at(2, 0), at(2, 1))
	assert.True(t, want.Equal(comp.Cells), "got %v", comp.Cells.Sorted())
	assert.Equal(t, 4, comp.Size())
	assert.Equal(t, "4", comp.Text())
	assert.False(t, comp.Contains(at(2, 3)))
	assert.False(t, comp.Contains(at(2, 4)))
}

func TestQuery_Pair(t *testing.T) {
	comp, err := flood.Query(gridstore.InitialGrid(), at(2, 3))
	require.NoError(t, err)
	assert.Equal(t, []gridstore.Coordinate{at(2, 3), at(2, 4)}, comp.Cells.Sorted())
	assert.Equal(t, "2", comp.Text())
}

func TestQuery_EmptyCell(t *testing.T) {
	comp, err := flood.Query(gridstore.InitialGrid(), at(0, 0))
	require.NoError(t, err)
	assert.True(t, comp.Empty())
	assert.NotNil(t, comp.Cells)
	assert.Equal(t, "0", comp.Text())
}

func TestQuery_Isolated(t *testing.T) {
	comp, err := flood.Query(gridstore.InitialGrid(), at(0, 4))
	require.NoError(t, err)
	assert.Equal(t, []gridstore.Coordinate{at(0, 4)}, comp.Cells.Sorted())
}

func TestQuery_OutOfBounds(t *testing.T) {
	g := gridstore.InitialGrid()
	for _, pos := range []gridstore.Coordinate{at(-1, 0), at(0, -1), at(5, 0), at(0, 5), at(7, 7)} {
		comp, err := flood.Query(g, pos)
		assert.ErrorIs(t, err, gridstore.ErrOutOfBounds, "Query%v", pos)
		assert.Nil(t, comp.Cells, "Query%v", pos)
	}
}

// TestQuery_Snake checks a winding single-cell-wide path; the isolated
// corner cell stays out.
//
//	1 1 1 1 1
//	0 0 0 0 1
//	1 1 1 1 1
//	1 0 0 0 0
//	1 1 1 0 1
func TestQuery_Snake(t *testing.T) {
	g, err := gridstore.NewGrid([][]int{
		{1, 1, 1, 1, 1},
		{0, 0, 0, 0, 1},
		{1, 1, 1, 1, 1},
		{1, 0, 0, 0, 0},
		{1, 1, 1, 0, 1},
	})
	require.NoError(t, err)

	comp, err := flood.Query(g, at(0, 0))
	require.NoError(t, err)
	assert.Equal(t, 15, comp.Size())
	assert.False(t, comp.Contains(at(4, 4)))
}

// TestQuery_LargeFilled runs a flood over a fully filled grid far beyond
// any recursion-friendly size.
func TestQuery_LargeFilled(t *testing.T) {
	const n = 600
	values := make([][]int, n)
	for r := range values {
		values[r] = make([]int, n)
		for c := range values[r] {
			values[r][c] = 1
		}
	}
	g, err := gridstore.NewGrid(values)
	require.NoError(t, err)

	comp, err := flood.Query(g, at(n/2, n/2))
	require.NoError(t, err)
	assert.Equal(t, n*n, comp.Size())
}

//----------------------------------------------------------------------------//
// Components / Largest
//----------------------------------------------------------------------------//

func TestComponents_InitialGrid(t *testing.T) {
	comps := flood.Components(gridstore.InitialGrid())
	require.Len(t, comps, 4)

	sizes := make([]int, len(comps))
	for i, c := range comps {
		sizes[i] = c.Size()
	}
	// Ordered by first cell: (0,4), (1,0), (2,3), (4,0).
	assert.Equal(t, []int{1, 4, 2, 3}, sizes)
	assert.True(t, comps[1].Contains(at(1, 0)))
	assert.True(t, comps[3].Contains(at(4, 2)))
}

func TestComponents_AllEmpty(t *testing.T) {
	g, err := gridstore.NewGrid([][]int{{0, 0}, {0, 0}})
	require.NoError(t, err)
	assert.Empty(t, flood.Components(g))
	assert.True(t, flood.Largest(g).Empty())
}

func TestLargest(t *testing.T) {
	largest := flood.Largest(gridstore.InitialGrid())
	assert.Equal(t, 4, largest.Size())
	assert.True(t, largest.Contains(at(2, 1)))

	// Tie: two singletons, first in row-major order wins.
	g, err := gridstore.NewGrid([][]int{{0, 1}, {1, 0}})
	require.NoError(t, err)
	assert.Equal(t, []gridstore.Coordinate{at(0, 1)}, flood.Largest(g).Cells.Sorted())
}
