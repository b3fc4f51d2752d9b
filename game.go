package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/olivierh59500/physarum-go/internal/config"
	"github.com/olivierh59500/physarum-go/internal/log"
	"github.com/olivierh59500/physarum-go/internal/render"
	"github.com/olivierh59500/physarum-go/internal/sim"
)

// Game adapts a sim.Runner to ebiten.Game
type Game struct {
	conf   *config.Config
	runner *sim.Runner
	logger *log.Logger
	opts   render.Options
	pixels []byte // RGBA, one pixel per trail cell
	size   int
	Paused bool
}

// NewGame wraps runner for interactive display
func NewGame(conf *config.Config, runner *sim.Runner, logger *log.Logger) *Game {
	return &Game{
		conf:   conf,
		runner: runner,
		logger: logger,
		opts: render.Options{
			Ceiling:   conf.Render.Ceiling,
			AutoScale: conf.Render.AutoScale,
			Tint:      conf.TintRGB(),
		},
		pixels: make([]byte, 4*conf.GridSize*conf.GridSize),
		size:   conf.GridSize,
	}
}

// Update is called each tick by Ebitengine
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.logger.Info("quit requested", log.Int("tick", g.runner.Ticks()))
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.Paused = !g.Paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.runner.Reset(sim.NewSeed(g.conf))
	}

	// Right arrow single-steps while paused
	if g.Paused {
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
			g.runner.Tick()
		}
		return nil
	}

	g.runner.Tick()
	return nil
}

// Draw is called each frame by Ebitengine
func (g *Game) Draw(screen *ebiten.Image) {
	render.Fill(g.pixels, g.runner.Trail(), g.opts)
	screen.WritePixels(g.pixels)

	status := fmt.Sprintf("tick %d", g.runner.Ticks())
	if g.Paused {
		status += " (paused)"
	}
	ebitenutil.DebugPrint(screen, status)
}

// Layout keeps one logical pixel per trail cell; ebiten scales to the window
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.size, g.size
}
