package render

import (
	"context"
	"time"

	"github.com/photonicat/scrollsign/internal/config"
)

const (
	statusFlashes = 3
	statusHalf    = 200 * time.Millisecond
	statusSize    = 2
)

// FlashStatus blinks a small block in the top-left corner to show startup
// progress. It blocks for about 1.2s and is only used before the frame loop
// starts.
func FlashStatus(ctx context.Context, c Canvas, colour config.Colour) error {
	for i := 0; i < statusFlashes; i++ {
		for _, col := range []config.Colour{colour, config.Black} {
			c.SetDrawColour(col)
			for x := 0; x < statusSize; x++ {
				for y := 0; y < statusSize; y++ {
					c.DrawPixel(x, y)
				}
			}
			if err := c.Present(); err != nil {
				return err
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(statusHalf):
			}
		}
	}
	return nil
}
