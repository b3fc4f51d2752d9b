// Package render maps trail intensities to RGBA pixels.
package render

import (
	"fmt"

	"github.com/olivierh59500/physarum-go/internal/slime"
)

// Options controls the intensity to colour mapping.
type Options struct {
	Ceiling   float32  // intensity drawn at full brightness
	AutoScale bool     // use the trail maximum as ceiling
	Tint      [3]uint8 // colour at full brightness
}

// DefaultOptions draws white at intensity 255.
var DefaultOptions = Options{
	Ceiling: 255,
	Tint:    [3]uint8{255, 255, 255},
}

// Brightness clamps v to [0, ceiling] and scales it to a byte.
func Brightness(v, ceiling float32) uint8 {
	if ceiling <= 0 || v <= 0 {
		return 0
	}
	if v >= ceiling {
		return 255
	}
	return uint8(v / ceiling * 255)
}

// Fill writes one opaque RGBA pixel per trail cell into dst, row-major.
// dst must hold exactly 4*N*N bytes.
func Fill(dst []byte, t slime.Trail, opts Options) {
	n := t.Size()
	if len(dst) != 4*n*n {
		panic(fmt.Sprintf("render: buffer holds %d bytes, need %d", len(dst), 4*n*n))
	}
	ceiling := opts.Ceiling
	if opts.AutoScale {
		ceiling = t.Max()
	}
	i := 0
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			b := uint16(Brightness(t.At(x, y), ceiling))
			dst[i+0] = uint8(uint16(opts.Tint[0]) * b / 255)
			dst[i+1] = uint8(uint16(opts.Tint[1]) * b / 255)
			dst[i+2] = uint8(uint16(opts.Tint[2]) * b / 255)
			dst[i+3] = 0xff
			i += 4
		}
	}
}
