// Package canvas implements the sign's drawing surface on an in-memory
// RGBA frame and hands finished frames to one or more sinks.
package canvas

import (
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/photonicat/scrollsign/internal/config"
	"github.com/photonicat/scrollsign/internal/render"
)

// Sink receives every presented frame. The image is reused for the next
// frame, so a sink that keeps it must copy it.
type Sink interface {
	Show(frame *image.RGBA, brightness float64) error
}

type Frame struct {
	img        *image.RGBA
	gc         *draw2dimg.GraphicContext
	face       font.Face
	ascent     int
	colour     config.Colour
	brightness float64
	sinks      []Sink
}

var _ render.Canvas = (*Frame)(nil)

func New(width, height int, face font.Face, sinks ...Sink) *Frame {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	return &Frame{
		img:        img,
		gc:         draw2dimg.NewGraphicContext(img),
		face:       face,
		ascent:     face.Metrics().Ascent.Round(),
		colour:     config.White,
		brightness: 1,
		sinks:      sinks,
	}
}

// LoadFace returns PixelFace for an empty path, or the TrueType/OpenType
// font at path rendered at size points.
func LoadFace(path string, size float64) (font.Face, error) {
	if path == "" {
		return PixelFace, nil
	}
	fontBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading font file: %w", err)
	}
	ttf, err := opentype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("error parsing font: %w", err)
	}
	face, err := opentype.NewFace(ttf, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating face: %w", err)
	}
	return face, nil
}

func (f *Frame) Width() int  { return f.img.Bounds().Dx() }
func (f *Frame) Height() int { return f.img.Bounds().Dy() }

func (f *Frame) SetDrawColour(c config.Colour) { f.colour = c }

// Clear fills the whole frame with the draw colour.
func (f *Frame) Clear() {
	f.gc.SetFillColor(f.colour.RGBA())
	draw2dkit.Rectangle(f.gc, 0, 0, float64(f.Width()), float64(f.Height()))
	f.gc.Fill()
}

func (f *Frame) DrawPixel(x, y int) {
	if !(image.Point{X: x, Y: y}).In(f.img.Bounds()) {
		return
	}
	f.img.SetRGBA(x, y, f.colour.RGBA())
}

// DrawText draws text with its top-left corner at (x, y).
func (f *Frame) DrawText(text string, x, y int) {
	d := &font.Drawer{
		Dst:  f.img,
		Src:  image.NewUniform(f.colour.RGBA()),
		Face: f.face,
		Dot:  fixed.P(x, y+f.ascent),
	}
	d.DrawString(text)
}

func (f *Frame) MeasureText(text string) int {
	return font.MeasureString(f.face, text).Round()
}

func (f *Frame) SetBrightness(v float64) {
	switch {
	case v < 0:
		v = 0
	case v > 1:
		v = 1
	}
	f.brightness = v
}

func (f *Frame) Brightness() float64 { return f.brightness }

// Image exposes the frame being drawn.
func (f *Frame) Image() *image.RGBA { return f.img }

// Present hands the frame to every sink, returning all sink errors joined.
func (f *Frame) Present() error {
	var errs []error
	for _, s := range f.sinks {
		if err := s.Show(f.img, f.brightness); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
