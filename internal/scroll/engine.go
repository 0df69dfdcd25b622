// Package scroll holds the hold/scroll/hold state machine that decides where
// the message sits on the panel each frame.
package scroll

import (
	"time"

	"github.com/photonicat/scrollsign/internal/config"
)

type Phase int

const (
	PreScroll Phase = iota
	Scrolling
	PostScroll
)

func (p Phase) String() string {
	switch p {
	case PreScroll:
		return "PRE_SCROLL"
	case Scrolling:
		return "SCROLLING"
	case PostScroll:
		return "POST_SCROLL"
	default:
		return "UNKNOWN"
	}
}

// State is the position of the message. Shift is zero on entry to every
// phase except PostScroll, and only grows while Scrolling.
type State struct {
	Phase     Phase
	Shift     int
	EnteredAt time.Time
}

// Reset returns the state every message swap starts from.
func Reset(now time.Time) State {
	return State{Phase: PreScroll, EnteredAt: now}
}

// Resume moves the timer reference forward by the time spent paused, so a
// pause does not eat into the current hold or step.
func (s State) Resume(paused time.Duration) State {
	if paused > 0 {
		s.EnteredAt = s.EnteredAt.Add(paused)
	}
	return s
}

// Overflows reports whether a message of width px needs to scroll on a
// panel of panelWidth px. A message exactly filling the padded panel counts.
func Overflows(width, padding, panelWidth int) bool {
	return width+2*padding >= panelWidth
}

// Travel is the shift at which scrolling stops: the overflow past the panel
// less a one pixel margin.
func Travel(width, padding, panelWidth int) int {
	return width + 2*padding - panelWidth - 1
}

// Advance evaluates one frame. It is a pure function of its inputs; calling
// it twice with the same now yields the same state.
func Advance(s State, cfg config.DisplayConfig, width, panelWidth int, now time.Time, paused bool) State {
	if paused {
		return s
	}

	elapsed := now.Sub(s.EnteredAt)
	switch s.Phase {
	case PreScroll:
		if elapsed > cfg.HoldTime {
			if Overflows(width, cfg.Padding, panelWidth) {
				s.Phase = Scrolling
			}
			s.EnteredAt = now
		}
	case Scrolling:
		if elapsed > cfg.StepTime {
			s.Shift++
			if s.Shift >= Travel(width, cfg.Padding, panelWidth) {
				s.Phase = PostScroll
			}
			s.EnteredAt = now
		}
	case PostScroll:
		if elapsed > cfg.HoldTime {
			s = Reset(now)
		}
	}
	return s
}
