// Package animate holds the cosmetic per-frame effects: the brightness
// heartbeat and timed colour cycling.
package animate

import (
	"time"

	"github.com/photonicat/scrollsign/internal/config"
)

const (
	PulseAmplitude = 0.05
	PulseStep      = 0.003
)

// Pulse is a triangular wave in [-PulseAmplitude, +PulseAmplitude] that
// moves PulseStep per frame and turns around at the bounds.
type Pulse struct {
	value float64
	dir   float64
}

func NewPulse() *Pulse {
	return &Pulse{dir: 1}
}

// Step advances one frame and returns the new offset.
func (p *Pulse) Step() float64 {
	p.value += PulseStep * p.dir
	switch {
	case p.value >= PulseAmplitude:
		p.value = PulseAmplitude
		p.dir = -1
	case p.value <= -PulseAmplitude:
		p.value = -PulseAmplitude
		p.dir = 1
	}
	return p.value
}

func (p *Pulse) Value() float64 { return p.value }

// Clamp01 limits v to the panel's brightness range.
func Clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// Palette steps through a fixed list of colours.
type Palette struct {
	colours []config.Colour
	index   int
}

func NewPalette(colours []config.Colour) *Palette {
	return &Palette{colours: colours}
}

func (p *Palette) Current() config.Colour {
	if len(p.colours) == 0 {
		return config.White
	}
	return p.colours[p.index]
}

func (p *Palette) Next() config.Colour {
	if len(p.colours) > 0 {
		p.index = (p.index + 1) % len(p.colours)
	}
	return p.Current()
}

// Cycler advances a Palette every period of wall time.
type Cycler struct {
	palette    *Palette
	period     time.Duration
	lastChange time.Time
}

func NewCycler(p *Palette, period time.Duration, now time.Time) *Cycler {
	return &Cycler{palette: p, period: period, lastChange: now}
}

// Tick returns the colour for this frame and whether it just changed.
func (c *Cycler) Tick(now time.Time) (config.Colour, bool) {
	if now.Sub(c.lastChange) > c.period {
		c.lastChange = now
		return c.palette.Next(), true
	}
	return c.palette.Current(), false
}
