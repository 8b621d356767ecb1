package batterm

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

var ErrBadSwatch = errors.New("bad swatch data")

// SwatchDataSize is the size of a raw swatch: 256 RGB triples.
const SwatchDataSize = 0x300

// Swatch maps palette indices to 0xRRGGBB colors.
type Swatch struct {
	Colors    [256]uint32
	DefaultBg uint8
	DefaultFg uint8
}

func (s *Swatch) Get(color uint8) uint32 {
	return s.Colors[color]
}

func packRGB(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

func packColorful(c colorful.Color) uint32 {
	r, g, b := c.Clamped().RGB255()
	return packRGB(r, g, b)
}

// SwatchFromBytes decodes 256 RGB triples.
func SwatchFromBytes(data []byte, defaultBg, defaultFg uint8) (Swatch, error) {
	if len(data) < SwatchDataSize {
		return Swatch{}, fmt.Errorf("%w: need %d bytes, got %d", ErrBadSwatch, SwatchDataSize, len(data))
	}
	s := Swatch{DefaultBg: defaultBg, DefaultFg: defaultFg}
	for i := range 256 {
		s.Colors[i] = packRGB(data[i*3], data[i*3+1], data[i*3+2])
	}
	return s, nil
}

func LoadSwatch(r io.Reader, defaultBg, defaultFg uint8) (Swatch, error) {
	data := make([]byte, SwatchDataSize)
	if _, err := io.ReadFull(r, data); err != nil {
		return Swatch{}, fmt.Errorf("%w: %w", ErrBadSwatch, err)
	}
	return SwatchFromBytes(data, defaultBg, defaultFg)
}

// hue angles (HCL) of the eight hued ramps, in palette order
var rampHues = [8]float64{25, 55, 90, 135, 195, 255, 290, 330}

var rampLuminance = [4]float64{0.30, 0.46, 0.63, 0.80}
var rampChroma = [4]float64{0.55, 0.65, 0.60, 0.45}

func generateSwatch() Swatch {
	s := Swatch{DefaultBg: Black, DefaultFg: LtGray1}
	for i := range 8 {
		s.Colors[i] = packColorful(colorful.Hcl(0, 0, float64(i)/7))
	}
	for ramp := range 4 {
		for hue := range 8 {
			c := colorful.Hcl(rampHues[hue], rampChroma[ramp], rampLuminance[ramp])
			s.Colors[8+ramp*8+hue] = packColorful(c)
		}
	}
	for r := range 6 {
		for g := range 6 {
			for b := range 6 {
				c := colorful.Color{R: float64(r) / 5, G: float64(g) / 5, B: float64(b) / 5}
				s.Colors[CubeColor(r, g, b)] = packColorful(c)
			}
		}
	}
	return s
}

var defaultSwatch = sync.OnceValue(generateSwatch)

// DefaultSwatch returns the built-in palette. It is computed once and shared.
func DefaultSwatch() Swatch {
	return defaultSwatch()
}
