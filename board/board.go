package board

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/floodgrid/flood"
	"github.com/katalvlaran/floodgrid/gridstore"
)

// Option configures a Board.
type Option func(*Board)

// WithLogger sets the logger for event tracing. A nil logger is ignored.
func WithLogger(log *zap.Logger) Option {
	return func(b *Board) {
		if log != nil {
			b.log = log
		}
	}
}

// Board routes pointer events to a Store.
type Board struct {
	store *gridstore.Store
	log   *zap.Logger
}

// New returns a Board driving store. Panics on a nil store.
func New(store *gridstore.Store, opts ...Option) *Board {
	if store == nil {
		panic("board: New(nil store)")
	}
	b := &Board{store: store, log: zap.NewNop()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Store returns the underlying store.
func (b *Board) Store() *gridstore.Store {
	return b.store
}

// Hover highlights the component under pos, replacing any previous highlight.
// The tooltip is not touched.
func (b *Board) Hover(pos gridstore.Coordinate) (flood.Component, error) {
	comp, err := flood.Query(b.store.Grid(), pos)
	if err != nil {
		return flood.Component{}, fmt.Errorf("Hover: %w", err)
	}
	b.store.SetHovered(comp.Cells)
	b.log.Debug("hover",
		zap.Stringer("pos", pos),
		zap.Int("component", comp.Size()))
	return comp, nil
}

// Leave clears the highlight; called when the pointer exits the grid.
func (b *Board) Leave() {
	b.store.ClearHovered()
	b.log.Debug("leave")
}

// Click pins a tooltip with the component size to pos when pos is filled.
// The bool result reports whether the tooltip changed.
func (b *Board) Click(pos gridstore.Coordinate) (bool, error) {
	comp, err := flood.Query(b.store.Grid(), pos)
	if err != nil {
		return false, fmt.Errorf("Click: %w", err)
	}
	if comp.Empty() {
		b.log.Debug("click on empty cell", zap.Stringer("pos", pos))
		return false, nil
	}
	b.store.SetTooltip(&gridstore.Tooltip{Pos: pos, Text: comp.Text()})
	b.log.Debug("tooltip",
		zap.Stringer("pos", pos),
		zap.String("text", comp.Text()))
	return true, nil
}

// Resize replaces the grid with a fresh random size×size grid and resets
// the interaction state. On error the current grid is kept.
func (b *Board) Resize(size int) error {
	g, err := b.store.Regenerate(size)
	if err != nil {
		b.log.Warn("resize rejected", zap.Int("size", size), zap.Error(err))
		return fmt.Errorf("Resize: %w", err)
	}
	b.log.Info("grid regenerated",
		zap.Int("size", g.Size()),
		zap.Int("filled", g.FilledCount()))
	return nil
}

// Snapshot is a read-only view of the board for one render pass.
type Snapshot struct {
	Grid       *gridstore.Grid
	Hovered    gridstore.CoordSet
	Tooltip    gridstore.Tooltip
	HasTooltip bool
}

// Snapshot captures the current grid and interaction state.
func (b *Board) Snapshot() Snapshot {
	tip, ok := b.store.Tooltip()
	return Snapshot{
		Grid:       b.store.Grid(),
		Hovered:    b.store.Hovered(),
		Tooltip:    tip,
		HasTooltip: ok,
	}
}

// TooltipAt returns the tooltip text pinned to pos, if any.
func (s Snapshot) TooltipAt(pos gridstore.Coordinate) (string, bool) {
	if !s.HasTooltip || s.Tooltip.Pos != pos {
		return "", false
	}
	return s.Tooltip.Text, true
}
