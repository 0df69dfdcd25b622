package preview

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Unlit LEDs are drawn in this grey so the grid stays visible.
var unlit = color.RGBA{R: 0x1A, G: 0x1A, B: 0x1A, A: 0xFF}

// RenderSVG writes frame as a grid of round LEDs, pitch pixels apart.
func RenderSVG(w io.Writer, frame *image.RGBA, brightness float64, pitch int) {
	b := frame.Bounds()
	width, height := b.Dx()*pitch, b.Dy()*pitch
	r := pitch * 2 / 5

	canvas := svg.New(w)
	canvas.Startview(width, height, 0, 0, width, height)
	canvas.Rect(0, 0, width, height, "fill:black")
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c := dim(frame.RGBAAt(b.Min.X+x, b.Min.Y+y), brightness)
			if c.R == 0 && c.G == 0 && c.B == 0 {
				c = unlit
			}
			canvas.Circle(x*pitch+pitch/2, y*pitch+pitch/2, r,
				fmt.Sprintf("fill:#%02X%02X%02X", c.R, c.G, c.B))
		}
	}
	canvas.End()
}

// RenderPNG rasterises the RenderSVG output.
func RenderPNG(frame *image.RGBA, brightness float64, pitch int) (*image.RGBA, error) {
	var buf bytes.Buffer
	RenderSVG(&buf, frame, brightness, pitch)

	icon, err := oksvg.ReadIconStream(&buf)
	if err != nil {
		return nil, fmt.Errorf("parsing preview svg: %w", err)
	}
	w := int(icon.ViewBox.W)
	h := int(icon.ViewBox.H)
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	dasher := rasterx.NewDasher(w, h, scanner)
	icon.Draw(dasher, 1.0)
	return img, nil
}

func dim(c color.RGBA, brightness float64) color.RGBA {
	if brightness >= 1 {
		return c
	}
	if brightness < 0 {
		brightness = 0
	}
	scale := func(v uint8) uint8 { return uint8(float64(v)*brightness + 0.5) }
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: 0xFF}
}
