// Command floodgrid shows a random binary grid in the terminal. Hovering a
// filled cell highlights its 4-connected component; clicking one pins the
// component size to the cell.
//
// Keys: + / - resize, r regenerate, q or Esc quit.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/katalvlaran/floodgrid/board"
	"github.com/katalvlaran/floodgrid/gridstore"
	"github.com/katalvlaran/floodgrid/internal/config"
	"github.com/katalvlaran/floodgrid/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String("config", "", "path to a TOML config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	start, err := cfg.StartGrid()
	if err != nil {
		return fmt.Errorf("start grid: %w", err)
	}
	store := gridstore.NewStore(start, cfg.GenerateOptions()...)
	b := board.New(store, board.WithLogger(log.Named("board")))

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()

	log.Info("floodgrid started",
		zap.Int("size", start.Size()),
		zap.Int("max_size", cfg.Grid.MaxSize))

	newUI(screen, b, newPalette(cfg.Colors), cfg.Grid.MaxSize, log).loop()
	return nil
}
