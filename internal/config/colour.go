package config

import (
	"fmt"
	"image/color"
)

// Colour is an opaque RGB triple. Build one with NewColour when the
// components come from outside the program.
type Colour struct {
	R, G, B uint8
}

// NewColour validates that every component lies in 0..255.
func NewColour(r, g, b int) (Colour, error) {
	for _, c := range [3]int{r, g, b} {
		if c < 0 || c > 255 {
			return Colour{}, fmt.Errorf("colour component %d out of range 0..255", c)
		}
	}
	return Colour{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// ColourFromSlice accepts the [r, g, b] form used in config files.
func ColourFromSlice(rgb []int) (Colour, error) {
	if len(rgb) != 3 {
		return Colour{}, fmt.Errorf("colour needs exactly 3 components, got %d", len(rgb))
	}
	return NewColour(rgb[0], rgb[1], rgb[2])
}

func (c Colour) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

func (c Colour) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

var (
	Red     = Colour{255, 0, 0}
	Green   = Colour{0, 255, 0}
	Blue    = Colour{0, 0, 255}
	Yellow  = Colour{255, 255, 0}
	Orange  = Colour{255, 140, 0}
	Pink    = Colour{255, 20, 147}
	White   = Colour{255, 255, 255}
	Black   = Colour{0, 0, 0}
	Cyan    = Colour{0, 255, 255}
	Magenta = Colour{255, 0, 255}
	Navy    = Colour{10, 10, 30}
)
