package config

import (
	"errors"
	"fmt"
	"time"
)

// Button backends.
const (
	ButtonsNone  = "none"
	ButtonsEvdev = "evdev"
	ButtonsGPIO  = "gpio"
)

// PanelConfig describes the LED matrix. Width and Height are fixed for the
// life of the process.
type PanelConfig struct {
	Width      int
	Height     int
	TextY      int
	SPIDevice  string
	Serpentine bool
}

// ButtonConfig names the six inputs in backend terms: evdev key names such as
// "KEY_A", or GPIO pin names such as "GPIO17". Order is A, B, C, D,
// brightness up, brightness down.
type ButtonConfig struct {
	Backend string
	Device  string
	Inputs  [6]string
}

// Settings is everything the sign needs besides the endpoint secrets.
type Settings struct {
	Display         DisplayConfig
	Panel           PanelConfig
	Buttons         ButtonConfig
	OutlineStyle    OutlineStyle
	MessagePalette  []Colour
	OutlinePalette  []Colour
	OutlineCycle    time.Duration
	Brightness      float64
	RefreshInterval time.Duration
	FetchTimeout    time.Duration
	LinkTimeout     time.Duration
	PingHost        string
	DebounceWindow  time.Duration
	FrameYield      time.Duration
	LocalMessage    string
	FontPath        string
	FontSize        float64
	PreviewAddr     string
}

func DefaultSettings() Settings {
	return Settings{
		Display: DefaultDisplay(),
		Panel: PanelConfig{
			Width:      53,
			Height:     11,
			TextY:      2,
			Serpentine: true,
		},
		Buttons: ButtonConfig{
			Backend: ButtonsNone,
			Inputs:  [6]string{"KEY_A", "KEY_B", "KEY_C", "KEY_D", "KEY_VOLUMEUP", "KEY_VOLUMEDOWN"},
		},
		OutlineStyle:    OutlineNone,
		MessagePalette:  append([]Colour(nil), DefaultMessagePalette...),
		OutlinePalette:  append([]Colour(nil), DefaultOutlinePalette...),
		OutlineCycle:    10 * time.Second,
		Brightness:      0.5,
		RefreshInterval: 30 * time.Second,
		FetchTimeout:    10 * time.Second,
		LinkTimeout:     10 * time.Second,
		DebounceWindow:  200 * time.Millisecond,
		FrameYield:      time.Millisecond,
		LocalMessage:    DefaultLocalMessage,
		FontSize:        8,
	}
}

func (s Settings) Validate() error {
	errs := []error{s.Display.Validate()}
	if s.Panel.Width <= 0 || s.Panel.Height <= 0 {
		errs = append(errs, fmt.Errorf("invalid panel dimensions: %dx%d", s.Panel.Width, s.Panel.Height))
	}
	if len(s.MessagePalette) == 0 {
		errs = append(errs, errors.New("message palette is empty"))
	}
	if len(s.OutlinePalette) == 0 {
		errs = append(errs, errors.New("outline palette is empty"))
	}
	if s.Brightness < 0 || s.Brightness > 1 {
		errs = append(errs, fmt.Errorf("brightness must be between 0 and 1, got %g", s.Brightness))
	}
	if s.RefreshInterval <= 0 {
		errs = append(errs, fmt.Errorf("refresh interval must be > 0, got %s", s.RefreshInterval))
	}
	if s.FetchTimeout <= 0 {
		errs = append(errs, fmt.Errorf("fetch timeout must be > 0, got %s", s.FetchTimeout))
	}
	if s.LinkTimeout <= 0 {
		errs = append(errs, fmt.Errorf("link timeout must be > 0, got %s", s.LinkTimeout))
	}
	if s.OutlineCycle <= 0 {
		errs = append(errs, fmt.Errorf("outline cycle must be > 0, got %s", s.OutlineCycle))
	}
	if s.FrameYield < 0 {
		errs = append(errs, fmt.Errorf("frame yield must be >= 0, got %s", s.FrameYield))
	}
	if s.DebounceWindow < 0 {
		errs = append(errs, fmt.Errorf("debounce window must be >= 0, got %s", s.DebounceWindow))
	}
	switch s.Buttons.Backend {
	case ButtonsNone, ButtonsEvdev, ButtonsGPIO:
	default:
		errs = append(errs, fmt.Errorf("unknown button backend %q", s.Buttons.Backend))
	}
	return errors.Join(errs...)
}
