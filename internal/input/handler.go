// Package input turns button presses into sign actions.
package input

import "time"

type Button int

const (
	ButtonA Button = iota
	ButtonB
	ButtonC
	ButtonD
	ButtonBrightnessUp
	ButtonBrightnessDown
)

func (b Button) String() string {
	switch b {
	case ButtonA:
		return "A"
	case ButtonB:
		return "B"
	case ButtonC:
		return "C"
	case ButtonD:
		return "D"
	case ButtonBrightnessUp:
		return "LUX+"
	case ButtonBrightnessDown:
		return "LUX-"
	default:
		return "?"
	}
}

type Action int

const (
	ManualRefresh Action = iota
	CycleMessageColour
	TogglePause
	ShowLocalMessage
)

func (a Action) String() string {
	switch a {
	case ManualRefresh:
		return "manual_refresh"
	case CycleMessageColour:
		return "cycle_message_colour"
	case TogglePause:
		return "toggle_pause"
	case ShowLocalMessage:
		return "show_local_message"
	default:
		return "unknown"
	}
}

// Buttons is the hardware side: whether a button is held right now.
type Buttons interface {
	IsPressed(Button) bool
}

const (
	DefaultDebounce = 200 * time.Millisecond
	BrightnessStep  = 0.01
)

var actionButtons = [...]struct {
	button Button
	action Action
}{
	{ButtonA, ManualRefresh},
	{ButtonB, CycleMessageColour},
	{ButtonC, TogglePause},
	{ButtonD, ShowLocalMessage},
}

// Handler debounces the four action buttons. Brightness buttons are read
// every frame.
type Handler struct {
	buttons    Buttons
	window     time.Duration
	lastPollAt time.Time
}

func NewHandler(b Buttons, window time.Duration, now time.Time) *Handler {
	return &Handler{buttons: b, window: window, lastPollAt: now}
}

// Poll returns the actions for every held action button, in A..D order. It
// reads nothing and leaves the poll clock alone until more than the
// debounce window has passed since the last accepted poll.
func (h *Handler) Poll(now time.Time) []Action {
	if now.Sub(h.lastPollAt) <= h.window {
		return nil
	}
	var actions []Action
	for _, ab := range actionButtons {
		if h.buttons.IsPressed(ab.button) {
			actions = append(actions, ab.action)
		}
	}
	h.lastPollAt = now
	return actions
}

// BrightnessDelta is the change requested by the brightness buttons this
// frame.
func (h *Handler) BrightnessDelta() float64 {
	var d float64
	if h.buttons.IsPressed(ButtonBrightnessUp) {
		d += BrightnessStep
	}
	if h.buttons.IsPressed(ButtonBrightnessDown) {
		d -= BrightnessStep
	}
	return d
}

// NoButtons is used when the sign has no inputs wired.
type NoButtons struct{}

func (NoButtons) IsPressed(Button) bool { return false }
