// Package starfield simulates stars flying toward the viewer and projects
// them onto a small screen.
package starfield

import (
	"image/color"
	"math"
	"math/rand"

	"oledstats.klederson.com/internal/config"
	"oledstats.klederson.com/internal/display"
)

// Star is a point at offset (X, Y) from the projection origin, Depth units
// away from the viewer.
type Star struct {
	X, Y  int
	Depth float64
}

// Field owns a fixed population of stars. It is not safe for concurrent use.
type Field struct {
	stars    []Star
	maxDepth float64
	rng      *rand.Rand
}

// New creates numStars stars spread uniformly over the sampling square with
// depths in (0, maxDepth].
func New(numStars int, maxDepth float64, rng *rand.Rand) *Field {
	f := &Field{
		stars:    make([]Star, numStars),
		maxDepth: maxDepth,
		rng:      rng,
	}
	for i := range f.stars {
		f.stars[i] = Star{
			X:     f.randomOffset(),
			Y:     f.randomOffset(),
			Depth: maxDepth * (1 - rng.Float64()),
		}
	}
	return f
}

// Stars returns a copy of the current population.
func (f *Field) Stars() []Star {
	out := make([]Star, len(f.stars))
	copy(out, f.stars)
	return out
}

// Len returns the population size.
func (f *Field) Len() int { return len(f.stars) }

// MaxDepth returns the recycling horizon.
func (f *Field) MaxDepth() float64 { return f.maxDepth }

// Advance moves every star one step closer and projects the visible ones.
// Stars that pass the viewer are recycled to the horizon before projection;
// stars that land off screen are skipped for this frame only.
func (f *Field) Advance(originX, originY, width, height int, mode display.ColorMode) []display.Rect {
	rects := make([]display.Rect, 0, len(f.stars))

	for i := range f.stars {
		s := &f.stars[i]

		s.Depth -= config.DecayStep
		if s.Depth <= 0 {
			f.recycle(s)
		}

		k := config.FocalLength / s.Depth
		x := int(math.Round(float64(s.X)*k)) + originX
		y := int(math.Round(float64(s.Y)*k)) + originY

		if x < 0 || x >= width || y < 0 || y >= height {
			continue
		}

		nearness := 1 - s.Depth/f.maxDepth
		size := Size(nearness)
		rects = append(rects, display.Rect{
			X0:   float64(x),
			Y0:   float64(y),
			X1:   float64(x) + size,
			Y1:   float64(y) + size,
			Fill: Shade(nearness, mode),
		})
	}

	return rects
}

func (f *Field) recycle(s *Star) {
	s.X = f.randomOffset()
	s.Y = f.randomOffset()
	s.Depth = f.maxDepth
}

func (f *Field) randomOffset() int {
	return config.SpreadMin + f.rng.Intn(config.SpreadMax-config.SpreadMin)
}

// Size is the side of a star rectangle; nearness is 0 at the horizon and
// approaches 1 at the viewer.
func Size(nearness float64) float64 {
	return nearness * config.MaxStarSize
}

// Shade is the star colour for the given nearness. Monochrome panels get the
// fixed foreground; RGB panels get a grey ramp from ShadeMin to 255.
func Shade(nearness float64, mode display.ColorMode) color.Color {
	if mode != display.RGB {
		return display.Foreground
	}
	v := uint8(math.Round(config.ShadeMin + nearness*config.ShadeRange))
	return color.RGBA{R: v, G: v, B: v, A: 0xff}
}
