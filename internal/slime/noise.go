package slime

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// NoiseOptions controls the Perlin field used to pre-seed a trail.
type NoiseOptions struct {
	Alpha     float64 // weight decay per octave
	Beta      float64 // frequency growth per octave
	Octaves   int32
	Scale     float64 // cells per noise unit
	Amplitude float32
	Seed      int64
}

// DefaultNoise is a soft, low-frequency field.
var DefaultNoise = NoiseOptions{
	Alpha:     2,
	Beta:      2,
	Octaves:   3,
	Scale:     32,
	Amplitude: 4,
}

// NoiseTrail returns an n x n trail seeded from 2D Perlin noise. Negative
// noise is clipped so the field stays non-negative.
func NoiseTrail(n int, opts NoiseOptions) Trail {
	t := NewTrail(n)
	if opts.Scale <= 0 {
		opts.Scale = DefaultNoise.Scale
	}
	p := perlin.NewPerlin(opts.Alpha, opts.Beta, opts.Octaves, opts.Seed)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			v := p.Noise2D(float64(x)/opts.Scale, float64(y)/opts.Scale)
			t.Set(x, y, opts.Amplitude*float32(math.Max(v, 0)))
		}
	}
	return t
}
