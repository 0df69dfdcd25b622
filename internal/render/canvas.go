// Package render composes frames on a Canvas. It never touches the panel
// directly.
package render

import "github.com/photonicat/scrollsign/internal/config"

// Canvas is the drawing surface the sign renders onto. Coordinates are panel
// pixels; drawing outside the panel is clipped.
type Canvas interface {
	Clear()
	SetDrawColour(c config.Colour)
	DrawPixel(x, y int)
	DrawText(text string, x, y int)
	MeasureText(text string) int
	SetBrightness(v float64)
	Present() error
	Width() int
	Height() int
}
