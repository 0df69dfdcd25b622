// Package preview mirrors the LED panel over HTTP and accepts local
// messages for it.
package preview

import (
	"image"
	"sync"
	"time"
)

// Status is the sign state published with each frame.
type Status struct {
	Text          string    `json:"text"`
	Source        string    `json:"source"`
	Phase         string    `json:"phase"`
	Shift         int       `json:"shift"`
	Paused        bool      `json:"paused"`
	Diagnostic    bool      `json:"diagnostic"`
	Brightness    float64   `json:"brightness"`
	MessageColour string    `json:"message_colour"`
	OutlineColour string    `json:"outline_colour"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Board keeps the last presented frame and status. The frame loop writes it,
// HTTP handlers read it.
type Board struct {
	mu         sync.RWMutex
	frame      *image.RGBA
	brightness float64
	status     Status
}

func NewBoard() *Board {
	return &Board{}
}

// Show copies frame so the caller can keep drawing into it.
func (b *Board) Show(frame *image.RGBA, brightness float64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.frame == nil || b.frame.Bounds() != frame.Bounds() {
		b.frame = image.NewRGBA(frame.Bounds())
	}
	copy(b.frame.Pix, frame.Pix)
	b.brightness = brightness
	return nil
}

func (b *Board) SetStatus(s Status) {
	b.mu.Lock()
	b.status = s
	b.mu.Unlock()
}

func (b *Board) Status() Status {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.status
}

// Frame returns a copy of the last frame, or nil before the first one.
func (b *Board) Frame() (*image.RGBA, float64) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.frame == nil {
		return nil, 0
	}
	out := image.NewRGBA(b.frame.Bounds())
	copy(out.Pix, b.frame.Pix)
	return out, b.brightness
}
