package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DisplayConfig holds the parameters the scroll engine and renderer read
// every frame. The frame loop is its only writer.
type DisplayConfig struct {
	Padding          int
	MessageColour    Colour
	OutlineColour    Colour
	BackgroundColour Colour
	HoldTime         time.Duration
	StepTime         time.Duration
}

func DefaultDisplay() DisplayConfig {
	return DisplayConfig{
		Padding:          5,
		MessageColour:    White,
		OutlineColour:    Red,
		BackgroundColour: Navy,
		HoldTime:         2 * time.Second,
		StepTime:         75 * time.Millisecond,
	}
}

func (d DisplayConfig) Validate() error {
	var errs []error
	if d.Padding < 0 {
		errs = append(errs, fmt.Errorf("padding must be >= 0, got %d", d.Padding))
	}
	if d.HoldTime < 0 {
		errs = append(errs, fmt.Errorf("hold time must be >= 0, got %s", d.HoldTime))
	}
	if d.StepTime <= 0 {
		errs = append(errs, fmt.Errorf("step time must be > 0, got %s", d.StepTime))
	}
	return errors.Join(errs...)
}

// OutlineStyle selects how text is outlined. It is fixed at startup.
type OutlineStyle int

const (
	OutlineNone OutlineStyle = iota
	OutlineEight
	OutlineFour
)

func ParseOutlineStyle(s string) (OutlineStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return OutlineNone, nil
	case "eight", "8":
		return OutlineEight, nil
	case "four", "4":
		return OutlineFour, nil
	default:
		return OutlineNone, fmt.Errorf("invalid outline style %q (valid: none, eight, four)", s)
	}
}

func (o OutlineStyle) String() string {
	switch o {
	case OutlineEight:
		return "eight"
	case OutlineFour:
		return "four"
	default:
		return "none"
	}
}

var (
	DefaultMessagePalette = []Colour{White, Cyan, Magenta, Yellow, Green}
	DefaultOutlinePalette = []Colour{Red, Green, Blue, Pink, Yellow}
)

const DefaultLocalMessage = "Default message"
