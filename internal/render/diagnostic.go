package render

import (
	"time"

	"github.com/photonicat/scrollsign/internal/config"
)

const (
	diagnosticPadding = 5
	blinkPeriod       = time.Second
	scrollStep        = 50 * time.Millisecond
)

// Diagnostic is the terminal fatal-error display. A message that fits is
// centred and blinks once a second; a wider one scrolls left one pixel per
// step, wraps after travelling its full width and flips the blink at every
// wrap.
type Diagnostic struct {
	text     string
	width    int
	textY    int
	overflow bool
	centreX  int
	shift    int
	blinkOn  bool
	lastTick time.Time
}

func NewDiagnostic(c Canvas, text string, textY int, now time.Time) *Diagnostic {
	width := c.MeasureText(text)
	return &Diagnostic{
		text:     text,
		width:    width,
		textY:    textY,
		overflow: width > c.Width(),
		centreX:  max(diagnosticPadding, (c.Width()-width)/2),
		blinkOn:  true,
		lastTick: now,
	}
}

func (d *Diagnostic) Text() string { return d.text }

// Draw renders the current diagnostic frame and then advances its timers.
func (d *Diagnostic) Draw(c Canvas, now time.Time) {
	c.SetBrightness(1)
	c.SetDrawColour(config.Black)
	c.Clear()
	if d.blinkOn {
		c.SetDrawColour(config.Red)
	}

	if d.overflow {
		c.DrawText(d.text, diagnosticPadding-d.shift, d.textY)
		if now.Sub(d.lastTick) >= scrollStep {
			d.lastTick = now
			d.shift++
			if d.shift > d.width {
				d.shift = 0
				d.blinkOn = !d.blinkOn
			}
		}
		return
	}

	c.DrawText(d.text, d.centreX, d.textY)
	if now.Sub(d.lastTick) >= blinkPeriod {
		d.lastTick = now
		d.blinkOn = !d.blinkOn
	}
}
