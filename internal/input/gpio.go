package input

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

// GPIOButtons reads active-low push buttons wired to GPIO pins with the
// internal pull-up enabled. periph's host.Init must have run first.
type GPIOButtons struct {
	pins [6]gpio.PinIn
}

var _ Buttons = (*GPIOButtons)(nil)

// OpenGPIO configures the named pins as inputs. An empty name leaves that
// button unwired.
func OpenGPIO(names [6]string) (*GPIOButtons, error) {
	var pins [6]gpio.PinIn
	for i, name := range names {
		if name == "" {
			continue
		}
		p := gpioreg.ByName(name)
		if p == nil {
			return nil, fmt.Errorf("no GPIO pin named %q for button %s", name, Button(i))
		}
		if err := p.In(gpio.PullUp, gpio.NoEdge); err != nil {
			return nil, fmt.Errorf("configuring %s as input: %w", name, err)
		}
		pins[i] = p
	}
	return &GPIOButtons{pins: pins}, nil
}

func (g *GPIOButtons) IsPressed(btn Button) bool {
	if btn < 0 || int(btn) >= len(g.pins) || g.pins[btn] == nil {
		return false
	}
	return g.pins[btn].Read() == gpio.Low
}
