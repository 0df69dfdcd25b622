package render

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/photonicat/scrollsign/internal/config"
	"github.com/photonicat/scrollsign/internal/scroll"
)

// recordingCanvas logs drawing calls as short strings.
type recordingCanvas struct {
	w, h       int
	charWidth  int
	colour     config.Colour
	brightness float64
	ops        []string
	presents   int
}

func newRecordingCanvas(w, h int) *recordingCanvas {
	return &recordingCanvas{w: w, h: h, charWidth: 6}
}

func (c *recordingCanvas) Clear()                         { c.ops = append(c.ops, "clear "+c.colour.String()) }
func (c *recordingCanvas) SetDrawColour(col config.Colour) { c.colour = col }
func (c *recordingCanvas) DrawPixel(x, y int) {
	c.ops = append(c.ops, fmt.Sprintf("pixel %d,%d %s", x, y, c.colour))
}
func (c *recordingCanvas) DrawText(text string, x, y int) {
	c.ops = append(c.ops, fmt.Sprintf("text %q %d,%d %s", text, x, y, c.colour))
}
func (c *recordingCanvas) MeasureText(text string) int { return len(text) * c.charWidth }
func (c *recordingCanvas) SetBrightness(v float64)     { c.brightness = v }
func (c *recordingCanvas) Present() error              { c.presents++; return nil }
func (c *recordingCanvas) Width() int                  { return c.w }
func (c *recordingCanvas) Height() int                 { return c.h }

func (c *recordingCanvas) reset() { c.ops = nil }

func TestRenderPlain(t *testing.T) {
	t.Parallel()

	c := newRecordingCanvas(53, 11)
	cfg := config.DefaultDisplay()
	NewRenderer(config.OutlineNone, 2).Render(c, "HI", scroll.State{Phase: scroll.Scrolling, Shift: 7}, cfg)

	want := []string{
		"clear #0A0A1E",
		`text "HI" -2,2 #FFFFFF`,
	}
	if diff := cmp.Diff(want, c.ops); diff != "" {
		t.Errorf("ops mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderOutlines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		style    config.OutlineStyle
		outlines int
	}{
		{config.OutlineNone, 0},
		{config.OutlineFour, 4},
		{config.OutlineEight, 8},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.style.String(), func(t *testing.T) {
			t.Parallel()
			c := newRecordingCanvas(53, 11)
			cfg := config.DefaultDisplay()
			NewRenderer(tt.style, 2).Render(c, "X", scroll.Reset(time.Time{}), cfg)

			outlineOps := 0
			for _, op := range c.ops {
				if op == fmt.Sprintf(`text "X" %d,%d %s`, 5, 2, cfg.MessageColour) {
					continue
				}
				if len(op) > 4 && op[:4] == "text" {
					outlineOps++
				}
			}
			if outlineOps != tt.outlines {
				t.Errorf("outline draws = %d, want %d (%v)", outlineOps, tt.outlines, c.ops)
			}
			if last := c.ops[len(c.ops)-1]; last != fmt.Sprintf(`text "X" 5,2 %s`, cfg.MessageColour) {
				t.Errorf("fill text must be drawn last, got %s", last)
			}
		})
	}
}

func TestRenderFourWayOmitsDiagonals(t *testing.T) {
	t.Parallel()

	c := newRecordingCanvas(53, 11)
	cfg := config.DefaultDisplay()
	NewRenderer(config.OutlineFour, 2).Render(c, "X", scroll.Reset(time.Time{}), cfg)
	for _, op := range c.ops {
		if op == fmt.Sprintf(`text "X" 4,1 %s`, cfg.OutlineColour) {
			t.Fatal("four-way outline drew a diagonal")
		}
	}
}

func TestDiagnosticFitsBlinks(t *testing.T) {
	t.Parallel()

	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := newRecordingCanvas(53, 11)
	d := NewDiagnostic(c, "ERR", 2, t0) // 18px wide, centred at 17

	d.Draw(c, t0)
	if c.brightness != 1 {
		t.Errorf("diagnostic brightness = %v, want 1", c.brightness)
	}
	want := []string{"clear #000000", `text "ERR" 17,2 #FF0000`}
	if diff := cmp.Diff(want, c.ops); diff != "" {
		t.Fatalf("first frame (-want +got):\n%s", diff)
	}

	c.reset()
	d.Draw(c, t0.Add(999*time.Millisecond))
	if c.ops[1] != `text "ERR" 17,2 #FF0000` {
		t.Fatalf("still lit before 1s, got %s", c.ops[1])
	}

	c.reset()
	d.Draw(c, t0.Add(time.Second))
	c.reset()
	d.Draw(c, t0.Add(1500*time.Millisecond))
	if c.ops[1] != `text "ERR" 17,2 #000000` {
		t.Fatalf("dark after the 1s toggle, got %s", c.ops[1])
	}
}

func TestDiagnosticCentreHasMinimumPadding(t *testing.T) {
	t.Parallel()

	c := newRecordingCanvas(53, 11)
	d := NewDiagnostic(c, "123456789", 2, time.Time{}) // 54px > 53: overflow
	if !d.overflow {
		t.Fatal("54px on a 53px panel overflows")
	}
	d = NewDiagnostic(c, "12345678", 2, time.Time{}) // 48px: (53-48)/2 = 2, padded to 5
	if d.overflow || d.centreX != 5 {
		t.Fatalf("overflow=%v centreX=%d, want fit at 5", d.overflow, d.centreX)
	}
}

func TestDiagnosticOverflowScrollsAndWraps(t *testing.T) {
	t.Parallel()

	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := newRecordingCanvas(53, 11)
	text := "Failed to fetch text" // 120px
	d := NewDiagnostic(c, text, 2, t0.Add(-scrollStep))

	now := t0
	for i := 0; i <= 120; i++ {
		c.reset()
		d.Draw(c, now)
		want := fmt.Sprintf("text %q %d,2 #FF0000", text, 5-i)
		if c.ops[1] != want {
			t.Fatalf("frame %d: got %s, want %s", i, c.ops[1], want)
		}
		now = now.Add(scrollStep)
	}
	// shift passed the width: wrapped to 0 with the blink flipped
	c.reset()
	d.Draw(c, now)
	if want := fmt.Sprintf("text %q 5,2 #000000", text); c.ops[1] != want {
		t.Fatalf("after wrap: got %s, want %s", c.ops[1], want)
	}
}

func TestDiagnosticOverflowWaitsForStep(t *testing.T) {
	t.Parallel()

	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := newRecordingCanvas(10, 11)
	d := NewDiagnostic(c, "long text", 2, t0)
	d.Draw(c, t0.Add(10*time.Millisecond))
	d.Draw(c, t0.Add(20*time.Millisecond))
	if d.shift != 0 {
		t.Errorf("shift = %d before a full step elapsed", d.shift)
	}
}

func TestFlashStatus(t *testing.T) {
	t.Parallel()

	c := newRecordingCanvas(53, 11)
	if err := FlashStatus(context.Background(), c, config.Green); err != nil {
		t.Fatalf("FlashStatus() error = %v", err)
	}
	if c.presents != 6 {
		t.Errorf("presents = %d, want 6", c.presents)
	}
	if c.ops[0] != "pixel 0,0 #00FF00" || c.ops[len(c.ops)-1] != "pixel 1,1 #000000" {
		t.Errorf("unexpected ops %v", c.ops)
	}
}

func TestFlashStatusCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := newRecordingCanvas(53, 11)
	if err := FlashStatus(ctx, c, config.Red); !errors.Is(err, context.Canceled) {
		t.Fatalf("FlashStatus() error = %v, want context.Canceled", err)
	}
	if c.presents != 1 {
		t.Errorf("presents = %d, want 1 before noticing cancellation", c.presents)
	}
}
