// Command simfight runs a headless combat simulation: one scripted
// character fights escalating enemy waves through the full combat core,
// with progression autosaved through the configured store.
//
// Usage:
//
//	go run ./cmd/simfight -duration 30s
//	BRIMSTONE_CONFIG=config/game.yaml go run ./cmd/simfight -waves 10
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/takkar/brimstone/internal/config"
	"github.com/takkar/brimstone/internal/data"
	"github.com/takkar/brimstone/internal/engine"
	"github.com/takkar/brimstone/internal/model"
	"github.com/takkar/brimstone/internal/progress"
)

const DefaultConfigPath = "config/game.yaml"

func main() {
	duration := flag.Duration("duration", 60*time.Second, "how long to simulate")
	waves := flag.Int("waves", 0, "stop after this many cleared waves (0 = duration only)")
	seed := flag.Int64("seed", time.Now().UnixNano(), "rng seed")
	character := flag.String("character", "simfight", "progression save slot")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx, *duration, *waves, *seed, *character); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, duration time.Duration, maxWaves int, seed int64, character string) error {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

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
	slog.Info("balance tables loaded", "skills", len(data.SkillIDs()), "enemies", len(data.EnemyIDs()))

	// Progression store: Postgres when configured, in-memory otherwise.
	var store progress.Store
	if cfg.Database.Enabled {
		if err := progress.Migrate(ctx, cfg.Database.DSN()); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		pg, err := progress.NewPostgres(ctx, cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer pg.Close()
		store = pg
		slog.Info("progression store ready", "backend", "postgres")
	} else {
		store = progress.NewMemory()
		slog.Info("progression store ready", "backend", "memory")
	}
	codec, err := progress.NewCodec(cfg.SaveSecret)
	if err != nil {
		return fmt.Errorf("creating save codec: %w", err)
	}

	stats := model.NewStatBlock(150, 80, 5, 14)
	if found, err := progress.LoadStats(ctx, store, codec, character, stats); err != nil {
		return fmt.Errorf("loading saved progression: %w", err)
	} else if found {
		slog.Info("resumed saved character", "character", character, "level", stats.Level())
	}

	rotation, err := progress.LoadLoadout(ctx, store, codec, character)
	if err != nil {
		return fmt.Errorf("loading saved loadout: %w", err)
	}
	if len(rotation) == 0 {
		rotation = []string{"battle_cry", "fireball", "shockwave"}
	}

	sim := newSimulation(stats, rand.New(rand.NewPCG(uint64(seed), 0)), cfg.Rates, maxWaves, rotation)
	sim.spawnWave()

	deadline := time.Now().Add(duration)

	g, gctx := errgroup.WithContext(ctx)

	// errSimDone flows through the group so its context cancellation stops
	// the autosave goroutine too; Wait filters it back out.
	g.Go(func() error {
		return engine.Run(gctx, cfg.TickRate, func(delta float64) error {
			if time.Now().After(deadline) {
				return errSimDone
			}
			return sim.tick(delta)
		})
	})

	g.Go(func() error {
		interval := time.Duration(cfg.AutosaveInterval) * time.Second
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				if err := progress.SaveStats(gctx, store, codec, character, sim.session.Stats); err != nil {
					slog.Warn("autosave failed", "err", err)
				} else {
					slog.Debug("autosaved", "character", character)
				}
			}
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errSimDone) {
		return err
	}

	// Final save outlives the cancelled group context.
	saveCtx, saveCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer saveCancel()
	if err := progress.SaveStats(saveCtx, store, codec, character, sim.session.Stats); err != nil {
		slog.Warn("final save failed", "err", err)
	}
	if err := progress.SaveLoadout(saveCtx, store, codec, character, rotation); err != nil {
		slog.Warn("loadout save failed", "err", err)
	}

	sim.printSummary()
	return nil
}

var errSimDone = errors.New("simulation finished")
