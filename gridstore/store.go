package gridstore

import "fmt"

// Store holds the active grid and the interaction state derived from it.
// The zero value is not usable; construct with NewStore.
type Store struct {
	grid    *Grid
	hovered CoordSet
	tooltip *Tooltip
	gen     generateConfig
}

// NewStore returns a Store over g with empty interaction state.
// A nil g selects InitialGrid. opts configure Regenerate.
func NewStore(g *Grid, opts ...Option) *Store {
	if g == nil {
		g = InitialGrid()
	}
	return &Store{
		grid:    g,
		hovered: CoordSet{},
		gen:     newGenerateConfig(opts...),
	}
}

// Grid returns the active grid.
func (s *Store) Grid() *Grid {
	return s.grid
}

// ReplaceGrid swaps the active grid and resets the hovered set and tooltip.
// A nil g is ignored.
func (s *Store) ReplaceGrid(g *Grid) {
	if g == nil {
		return
	}
	s.grid = g
	s.hovered = CoordSet{}
	s.tooltip = nil
}

// Regenerate generates a fresh random grid of the given size with the
// Store's generation options and replaces the active grid with it.
// On error the previous grid and interaction state are kept.
func (s *Store) Regenerate(size int) (*Grid, error) {
	g, err := generate(size, s.gen)
	if err != nil {
		return nil, fmt.Errorf("Regenerate: %w", err)
	}
	s.ReplaceGrid(g)
	return g, nil
}

// Hovered returns a copy of the hovered set.
func (s *Store) Hovered() CoordSet {
	return s.hovered.Clone()
}

// IsHovered reports whether pos is in the hovered set.
func (s *Store) IsHovered(pos Coordinate) bool {
	return s.hovered.Has(pos)
}

// SetHovered overwrites the hovered set with a copy of coords.
// Coordinates are not bounds-checked.
func (s *Store) SetHovered(coords CoordSet) {
	s.hovered = coords.Clone()
}

// ClearHovered empties the hovered set.
func (s *Store) ClearHovered() {
	s.hovered = CoordSet{}
}

// Tooltip returns the current tooltip, if any.
func (s *Store) Tooltip() (Tooltip, bool) {
	if s.tooltip == nil {
		return Tooltip{}, false
	}
	return *s.tooltip, true
}

// SetTooltip overwrites the tooltip; nil clears it.
func (s *Store) SetTooltip(t *Tooltip) {
	if t == nil {
		s.tooltip = nil
		return
	}
	cp := *t
	s.tooltip = &cp
}

// CellState reports whether the cell at pos in the active grid is filled.
// Returns ErrOutOfBounds if pos lies outside the grid.
func (s *Store) CellState(pos Coordinate) (bool, error) {
	return s.grid.Filled(pos)
}
