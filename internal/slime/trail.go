package slime

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

// ErrTrailSize is returned when cells do not fill an N x N grid.
var ErrTrailSize = errors.New("trail cells do not match grid size")

// WrapMode selects how out-of-range coordinates fold back onto the grid.
type WrapMode uint8

const (
	// WrapSingle adds N once before the modulo. Displacements of N or more
	// in a single tick are not supported and produce wrong cells.
	WrapSingle WrapMode = iota
	// WrapModulo folds any magnitude.
	WrapModulo
)

func (m WrapMode) String() string {
	switch m {
	case WrapSingle:
		return "single"
	case WrapModulo:
		return "modulo"
	default:
		return fmt.Sprintf("WrapMode(%d)", uint8(m))
	}
}

// ParseWrapMode maps "single" or "modulo" to a WrapMode.
func ParseWrapMode(s string) (WrapMode, error) {
	switch s {
	case "", "single":
		return WrapSingle, nil
	case "modulo":
		return WrapModulo, nil
	}
	return 0, fmt.Errorf("unknown wrap mode %q", s)
}

// Trail is an N x N grid of pheromone intensities stored row-major.
type Trail struct {
	size  int
	cells []float32
	wrap  WrapMode
}

// NewTrail returns a zeroed n x n trail.
func NewTrail(n int) Trail {
	if n <= 0 {
		panic(fmt.Sprintf("slime: trail size must be positive, got %d", n))
	}
	return Trail{size: n, cells: make([]float32, n*n)}
}

// NewTrailFrom builds a trail from row-major cells. The slice is copied.
func NewTrailFrom(n int, cells []float32) (Trail, error) {
	if n <= 0 || len(cells) != n*n {
		return Trail{}, fmt.Errorf("%w: size %d, %d cells", ErrTrailSize, n, len(cells))
	}
	t := Trail{size: n, cells: make([]float32, n*n)}
	copy(t.cells, cells)
	return t, nil
}

// WithWrap returns a copy of t using mode for coordinate wrapping.
func (t Trail) WithWrap(mode WrapMode) Trail {
	c := t.Clone()
	c.wrap = mode
	return c
}

// Size returns N.
func (t Trail) Size() int { return t.size }

// Wrap returns the coordinate wrap mode.
func (t Trail) Wrap() WrapMode { return t.wrap }

// At reads cell (x, y). Coordinates must already be in [0, N).
func (t Trail) At(x, y int) float32 {
	return t.cells[y*t.size+x]
}

// Set writes cell (x, y) in place. Coordinates must already be in [0, N).
func (t Trail) Set(x, y int, val float32) {
	t.cells[y*t.size+x] = val
}

// WrapCoord folds a position back onto [0, N) per axis.
func (t Trail) WrapCoord(pos Vec2) Vec2 {
	return Vec2{X: t.wrapFloat(pos.X), Y: t.wrapFloat(pos.Y)}
}

// GetWrapped truncates pos toward zero and reads the wrapped cell.
// Truncation happens before wrapping, so x = -0.5 reads column 0 while
// WrapCoord moves the same x to N-0.5, column N-1.
func (t Trail) GetWrapped(pos Vec2) float32 {
	return t.cells[t.index(pos)]
}

// Clone returns a deep copy of t.
func (t Trail) Clone() Trail {
	c := Trail{size: t.size, cells: make([]float32, len(t.cells)), wrap: t.wrap}
	copy(c.cells, t.cells)
	return c
}

// Cells returns a copy of the row-major intensities.
func (t Trail) Cells() []float32 {
	out := make([]float32, len(t.cells))
	copy(out, t.cells)
	return out
}

// Sum returns the total intensity.
func (t Trail) Sum() float64 {
	var s float64
	for _, v := range t.cells {
		s += float64(v)
	}
	return s
}

// Max returns the highest intensity, or 0 for an all-zero trail.
func (t Trail) Max() float32 {
	var m float32
	for _, v := range t.cells {
		if v > m {
			m = v
		}
	}
	return m
}

// Checksum hashes the size and every cell bit pattern. Two trails with the
// same checksum are, for all practical purposes, identical.
func (t Trail) Checksum() uint64 {
	d := xxhash.New()
	buf := make([]byte, 0, 4*t.size+8)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(t.size))
	for y := 0; y < t.size; y++ {
		for _, v := range t.cells[y*t.size : (y+1)*t.size] {
			buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v))
		}
		_, _ = d.Write(buf)
		buf = buf[:0]
	}
	return d.Sum64()
}

func (t Trail) wrapFloat(v float32) float32 {
	n := float64(t.size)
	var w float64
	switch t.wrap {
	case WrapModulo:
		w = math.Mod(float64(v), n)
		if w < 0 {
			w += n
		}
	default:
		w = math.Mod(float64(v)+n, n)
	}
	out := float32(w)
	if out >= float32(t.size) {
		// float32 rounding of values just below N.
		out -= float32(t.size)
	}
	return out
}

func (t Trail) wrapInt(i int) int {
	if t.wrap == WrapModulo {
		return ((i % t.size) + t.size) % t.size
	}
	return (i + t.size) % t.size
}

func (t Trail) index(pos Vec2) int {
	x := t.wrapInt(int(pos.X))
	y := t.wrapInt(int(pos.Y))
	return y*t.size + x
}
