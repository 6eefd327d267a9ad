package main

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/katalvlaran/floodgrid/board"
	"github.com/katalvlaran/floodgrid/flood"
	"github.com/katalvlaran/floodgrid/gridstore"
	"github.com/katalvlaran/floodgrid/internal/config"
)

type palette struct {
	filled, hovered, background tcell.Style
	status                      tcell.Style
}

func newPalette(c config.ColorsConfig) palette {
	text := tcell.GetColor(c.Tooltip)
	return palette{
		filled:     tcell.StyleDefault.Background(tcell.GetColor(c.Filled)).Foreground(text),
		hovered:    tcell.StyleDefault.Background(tcell.GetColor(c.Hovered)).Foreground(text),
		background: tcell.StyleDefault.Background(tcell.GetColor(c.Background)).Foreground(text),
		status:     tcell.StyleDefault,
	}
}

type ui struct {
	screen  tcell.Screen
	board   *board.Board
	colors  palette
	maxSize int
	log     *zap.Logger

	pressed bool // button 1 held since the last mouse event
}

func newUI(screen tcell.Screen, b *board.Board, colors palette, maxSize int, log *zap.Logger) *ui {
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	return &ui{screen: screen, board: b, colors: colors, maxSize: maxSize, log: log}
}

func (u *ui) loop() {
	u.draw()
	for {
		ev := u.screen.PollEvent()
		if ev == nil {
			return
		}
		if !u.handle(ev) {
			return
		}
		u.draw()
	}
}

// handle applies one event; false means quit.
func (u *ui) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune:
			return u.handleRune(ev.Rune())
		}

	case *tcell.EventMouse:
		u.handleMouse(ev)

	case *tcell.EventResize:
		u.screen.Sync()
	}
	return true
}

func (u *ui) handleRune(r rune) bool {
	size := u.board.Store().Grid().Size()
	switch r {
	case 'q':
		return false
	case '+', '=':
		u.resize(size + 1)
	case '-':
		u.resize(size - 1)
	case 'r':
		u.resize(size)
	}
	return true
}

// resize ignores sizes outside [1, maxSize]; the board logs the rejection.
func (u *ui) resize(size int) {
	if err := u.board.Resize(size); err != nil && !errors.Is(err, gridstore.ErrInvalidSize) {
		u.log.Error("resize", zap.Error(err))
	}
}

func (u *ui) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	down := ev.Buttons()&tcell.Button1 != 0
	press := down && !u.pressed
	u.pressed = down

	pos, ok := cellAt(x, y, u.board.Store().Grid().Size())
	if !ok {
		u.board.Leave()
		return
	}
	if _, err := u.board.Hover(pos); err != nil {
		u.log.Error("hover", zap.Error(err))
		return
	}
	if press {
		if _, err := u.board.Click(pos); err != nil {
			u.log.Error("click", zap.Error(err))
		}
	}
}

func (u *ui) draw() {
	u.screen.Clear()
	snap := u.board.Snapshot()
	g := snap.Grid
	size := g.Size()

	largest := flood.Largest(g)
	u.text(0, 0, u.colors.status, fmt.Sprintf(
		"Size: %d x %d (max %d)   components: %d   largest: %d   [+/-] resize  [r] regenerate  [q] quit",
		size, size, u.maxSize, len(flood.Components(g)), largest.Size()))

	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			pos := gridstore.Coordinate{Row: r, Col: c}
			style := u.colors.background
			switch {
			case snap.Hovered.Has(pos):
				style = u.colors.hovered
			case g.FilledAt(pos):
				style = u.colors.filled
			}
			x, y := origin(pos)
			for i := 0; i < cellWidth; i++ {
				u.screen.SetContent(x+i, y, ' ', nil, style)
			}
		}
	}

	if snap.HasTooltip {
		x, y := origin(snap.Tooltip.Pos)
		style := u.colors.filled
		if snap.Hovered.Has(snap.Tooltip.Pos) {
			style = u.colors.hovered
		}
		u.text(x, y, style, snap.Tooltip.Text)
	}

	u.screen.Show()
}

func (u *ui) text(x, y int, style tcell.Style, s string) {
	for i, r := range []rune(s) {
		u.screen.SetContent(x+i, y, r, nil, style)
	}
}
