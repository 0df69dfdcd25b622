package render

import (
	"github.com/photonicat/scrollsign/internal/config"
	"github.com/photonicat/scrollsign/internal/scroll"
)

var (
	eightWay = [][2]int{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}
	fourWay  = [][2]int{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}
)

// Renderer draws the scrolling message.
type Renderer struct {
	style config.OutlineStyle
	textY int
}

func NewRenderer(style config.OutlineStyle, textY int) *Renderer {
	return &Renderer{style: style, textY: textY}
}

// Render fills the background and draws text at padding - shift. With an
// outline style the text is first stamped at one pixel offsets in the
// outline colour, then drawn on top in the message colour.
func (r *Renderer) Render(c Canvas, text string, st scroll.State, cfg config.DisplayConfig) {
	c.SetDrawColour(cfg.BackgroundColour)
	c.Clear()

	x := cfg.Padding - st.Shift
	y := r.textY

	var offsets [][2]int
	switch r.style {
	case config.OutlineEight:
		offsets = eightWay
	case config.OutlineFour:
		offsets = fourWay
	}
	if len(offsets) > 0 {
		c.SetDrawColour(cfg.OutlineColour)
		for _, o := range offsets {
			c.DrawText(text, x+o[0], y+o[1])
		}
	}

	c.SetDrawColour(cfg.MessageColour)
	c.DrawText(text, x, y)
}
