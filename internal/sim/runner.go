// Package sim drives the slime core tick by tick.
package sim

import (
	"context"
	"math/rand"
	"time"

	"github.com/olivierh59500/physarum-go/internal/config"
	"github.com/olivierh59500/physarum-go/internal/log"
	"github.com/olivierh59500/physarum-go/internal/slime"
)

// Stats is a snapshot of a running simulation.
type Stats struct {
	Tick     int
	Agents   int
	Sum      float64
	Max      float32
	Checksum uint64
}

// Runner owns the current colony and trail and advances them in
// steer, move, deposit order.
type Runner struct {
	conf   *config.Config
	logger *log.Logger
	seed   int64
	rng    *rand.Rand

	colony slime.Colony
	trail  slime.Trail
	tick   int
}

// New builds a runner from a validated config.
func New(conf *config.Config, logger *log.Logger) (*Runner, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	r := &Runner{
		conf:   conf,
		logger: logger,
	}
	r.Reset(NewSeed(conf))
	return r, nil
}

// NewSeed returns the configured seed, or a fresh time-based one when the
// config leaves it at 0.
func NewSeed(conf *config.Config) int64 {
	if conf.Seed != 0 {
		return conf.Seed
	}
	return time.Now().UnixNano()
}

// Reset respawns the colony and rebuilds the initial trail from seed. The
// seed is logged so the run can be replayed.
func (r *Runner) Reset(seed int64) {
	r.seed = seed
	r.rng = rand.New(rand.NewSource(seed))
	n := r.conf.GridSize

	var trail slime.Trail
	if r.conf.Noise.Enabled {
		trail = slime.NoiseTrail(n, r.conf.NoiseOptions(r.seed))
	} else {
		trail = slime.NewTrail(n)
	}
	r.trail = trail.WithWrap(r.conf.WrapMode())
	r.colony = slime.SpawnRandom(r.conf.Population, float32(n), r.rng)
	r.tick = 0

	r.logger.Info("simulation reset",
		log.Int("grid_size", n),
		log.Int("population", r.colony.Len()),
		log.Float32("dt", r.conf.Dt),
		log.String("wrap", r.trail.Wrap().String()),
		log.Bool("noise", r.conf.Noise.Enabled),
		log.Int64("seed", r.seed),
	)
}

// Tick advances the simulation by one step.
func (r *Runner) Tick() {
	r.colony, r.trail = slime.Step(r.colony, r.trail, r.conf.Dt)
	r.tick++
}

// Trail returns the current trail.
func (r *Runner) Trail() slime.Trail { return r.trail }

// Colony returns the current colony.
func (r *Runner) Colony() slime.Colony { return r.colony }

// Seed returns the seed of the last reset.
func (r *Runner) Seed() int64 { return r.seed }

// Ticks returns the number of ticks since the last reset.
func (r *Runner) Ticks() int { return r.tick }

// Stats computes a snapshot of the current trail and colony.
func (r *Runner) Stats() Stats {
	return Stats{
		Tick:     r.tick,
		Agents:   r.colony.Len(),
		Sum:      r.trail.Sum(),
		Max:      r.trail.Max(),
		Checksum: r.trail.Checksum(),
	}
}

// Run advances ticks steps, logging stats every `every` ticks (0 disables
// periodic logging). It returns ctx.Err() if cancelled early.
func (r *Runner) Run(ctx context.Context, ticks, every int) error {
	start := time.Now()
	for i := 0; i < ticks; i++ {
		if err := ctx.Err(); err != nil {
			r.logger.Warn("run cancelled", log.Int("tick", r.tick), log.Error(err))
			return err
		}
		r.Tick()
		if every > 0 && r.tick%every == 0 {
			r.logStats("tick")
		}
	}
	r.logStats("run finished", log.Any("elapsed", time.Since(start)))
	return nil
}

func (r *Runner) logStats(msg string, extra ...log.Field) {
	s := r.Stats()
	fields := append([]log.Field{
		log.Int("tick", s.Tick),
		log.Int("agents", s.Agents),
		log.Float64("trail_sum", s.Sum),
		log.Float32("trail_max", s.Max),
		log.Uint64("checksum", s.Checksum),
	}, extra...)
	r.logger.Info(msg, fields...)
}
