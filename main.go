// Command physarum runs a slime mould trail simulation.
//
// Usage:
//
//	physarum [-headless] [-ticks N] [config_file]
//
// The optional config file is YAML (.yaml, .yml) or TOML (.toml). Without it
// the default parameters are used and the simulation opens a window.
//
// In the window, space pauses, right arrow single-steps while paused,
// R respawns the colony and Esc quits.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivierh59500/physarum-go/internal/config"
	"github.com/olivierh59500/physarum-go/internal/log"
	"github.com/olivierh59500/physarum-go/internal/sim"
)

func main() {
	headless := flag.Bool("headless", false, "Run without a window and log stats.")
	ticks := flag.Int("ticks", 0, "Number of ticks in headless mode (overrides config).")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-headless] [-ticks N] [config_file]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	conf, err := loadConfig(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	if *headless {
		conf.Headless = true
	}
	if *ticks > 0 {
		conf.Ticks = *ticks
	}

	level, _ := log.ParseLevel(conf.LogLevel)
	logger := log.New(level).With(log.String("run_id", uuid.NewString()))
	defer func() { _ = logger.Sync() }()

	runner, err := sim.New(conf, logger)
	if err != nil {
		logger.Fatal("setup failed", log.Error(err))
	}

	if conf.Headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := runner.Run(ctx, conf.Ticks, conf.LogEvery); err != nil && !errors.Is(err, context.Canceled) {
			logger.Fatal("run failed", log.Error(err))
		}
		return
	}

	game := NewGame(conf, runner, logger)
	ebiten.SetWindowSize(conf.GridSize*conf.Render.Scale, conf.GridSize*conf.Render.Scale)
	ebiten.SetWindowTitle("Physarum")
	ebiten.SetTPS(conf.TPS)

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("game loop failed", log.Error(err))
	}
}

func loadConfig(args []string) (*config.Config, error) {
	switch len(args) {
	case 0:
		return config.Default(), nil
	case 1:
		return config.Load(args[0])
	default:
		return nil, fmt.Errorf("%d arguments provided (0 required, 1 optional)", len(args))
	}
}
