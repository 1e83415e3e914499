// Command arena is an interactive terminal playground for the combat core.
// The player character moves on a top-down grid, punches, casts the full
// skill catalog, and fights the same enemy templates the simulator uses.
//
// Keys: arrows/hjkl move, space punch, 1-8 cast, e spawn wave, r revive,
// q or Esc quit.
package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/takkar/brimstone/internal/config"
	"github.com/takkar/brimstone/internal/data"
)

const DefaultConfigPath = "config/game.yaml"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "arena:", err)
		os.Exit(1)
	}
}

func run() error {
	// The screen owns the terminal; keep logs out of it.
	logFile, err := os.OpenFile("arena.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logFile.Close()
	slog.SetDefault(slog.New(slog.NewTextHandler(logFile, nil)))

	cfgPath := DefaultConfigPath
	if p := os.Getenv("BRIMSTONE_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadGame(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := data.Load(cfg.BalancePath); err != nil {
		return fmt.Errorf("loading balance tables: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	game := NewGame(screen, rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)))
	game.Run(cfg.TickRate)
	return nil
}
