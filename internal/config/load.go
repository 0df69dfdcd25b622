package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// fileConfig is the on-disk shape. Colours are [r, g, b] lists and
// durations are strings such as "75ms".
type fileConfig struct {
	Padding          int           `mapstructure:"padding"`
	MessageColour    []int         `mapstructure:"message-colour"`
	OutlineColour    []int         `mapstructure:"outline-colour"`
	BackgroundColour []int         `mapstructure:"background-colour"`
	HoldTime         time.Duration `mapstructure:"hold-time"`
	StepTime         time.Duration `mapstructure:"step-time"`
	OutlineStyle     string        `mapstructure:"outline-style"`
	MessagePalette   [][]int       `mapstructure:"message-palette"`
	OutlinePalette   [][]int       `mapstructure:"outline-palette"`
	OutlineCycle     time.Duration `mapstructure:"outline-cycle"`
	Brightness       float64       `mapstructure:"brightness"`
	RefreshInterval  time.Duration `mapstructure:"refresh-interval"`
	FetchTimeout     time.Duration `mapstructure:"fetch-timeout"`
	LinkTimeout      time.Duration `mapstructure:"link-timeout"`
	PingHost         string        `mapstructure:"ping-host"`
	DebounceWindow   time.Duration `mapstructure:"debounce-window"`
	FrameYield       time.Duration `mapstructure:"frame-yield"`
	LocalMessage     string        `mapstructure:"local-message"`
	FontPath         string        `mapstructure:"font-path"`
	FontSize         float64       `mapstructure:"font-size"`
	PreviewAddr      string        `mapstructure:"preview-addr"`
	Panel            struct {
		Width      int    `mapstructure:"width"`
		Height     int    `mapstructure:"height"`
		TextY      int    `mapstructure:"text-y"`
		SPIDevice  string `mapstructure:"spi-device"`
		Serpentine bool   `mapstructure:"serpentine"`
	} `mapstructure:"panel"`
	Buttons struct {
		Backend string   `mapstructure:"backend"`
		Device  string   `mapstructure:"device"`
		Inputs  []string `mapstructure:"inputs"`
	} `mapstructure:"buttons"`
}

func setDefaults(v *viper.Viper, d Settings) {
	rgb := func(c Colour) []int { return []int{int(c.R), int(c.G), int(c.B)} }
	palette := func(p []Colour) [][]int {
		out := make([][]int, len(p))
		for i, c := range p {
			out[i] = rgb(c)
		}
		return out
	}

	v.SetDefault("padding", d.Display.Padding)
	v.SetDefault("message-colour", rgb(d.Display.MessageColour))
	v.SetDefault("outline-colour", rgb(d.Display.OutlineColour))
	v.SetDefault("background-colour", rgb(d.Display.BackgroundColour))
	v.SetDefault("hold-time", d.Display.HoldTime)
	v.SetDefault("step-time", d.Display.StepTime)
	v.SetDefault("outline-style", d.OutlineStyle.String())
	v.SetDefault("message-palette", palette(d.MessagePalette))
	v.SetDefault("outline-palette", palette(d.OutlinePalette))
	v.SetDefault("outline-cycle", d.OutlineCycle)
	v.SetDefault("brightness", d.Brightness)
	v.SetDefault("refresh-interval", d.RefreshInterval)
	v.SetDefault("fetch-timeout", d.FetchTimeout)
	v.SetDefault("link-timeout", d.LinkTimeout)
	v.SetDefault("ping-host", d.PingHost)
	v.SetDefault("debounce-window", d.DebounceWindow)
	v.SetDefault("frame-yield", d.FrameYield)
	v.SetDefault("local-message", d.LocalMessage)
	v.SetDefault("font-path", d.FontPath)
	v.SetDefault("font-size", d.FontSize)
	v.SetDefault("preview-addr", d.PreviewAddr)
	v.SetDefault("panel.width", d.Panel.Width)
	v.SetDefault("panel.height", d.Panel.Height)
	v.SetDefault("panel.text-y", d.Panel.TextY)
	v.SetDefault("panel.spi-device", d.Panel.SPIDevice)
	v.SetDefault("panel.serpentine", d.Panel.Serpentine)
	v.SetDefault("buttons.backend", d.Buttons.Backend)
	v.SetDefault("buttons.device", d.Buttons.Device)
	v.SetDefault("buttons.inputs", d.Buttons.Inputs[:])
}

// Load reads settings from path (YAML or JSON, by extension) with
// SCROLLSIGN_* environment overrides. A missing file yields the defaults.
func Load(path string) (Settings, error) {
	v := viper.New()
	v.SetEnvPrefix("SCROLLSIGN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	setDefaults(v, DefaultSettings())

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
				return Settings{}, fmt.Errorf("reading config %s: %w", path, err)
			}
		}
	}

	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return Settings{}, fmt.Errorf("decoding config: %w", err)
	}
	return fc.settings()
}

func (fc fileConfig) settings() (Settings, error) {
	s := DefaultSettings()
	var errs []error
	colour := func(name string, rgb []int) Colour {
		c, err := ColourFromSlice(rgb)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
		return c
	}
	palette := func(name string, in [][]int) []Colour {
		out := make([]Colour, 0, len(in))
		for i, rgb := range in {
			out = append(out, colour(fmt.Sprintf("%s[%d]", name, i), rgb))
		}
		return out
	}

	s.Display = DisplayConfig{
		Padding:          fc.Padding,
		MessageColour:    colour("message-colour", fc.MessageColour),
		OutlineColour:    colour("outline-colour", fc.OutlineColour),
		BackgroundColour: colour("background-colour", fc.BackgroundColour),
		HoldTime:         fc.HoldTime,
		StepTime:         fc.StepTime,
	}
	style, err := ParseOutlineStyle(fc.OutlineStyle)
	if err != nil {
		errs = append(errs, err)
	}
	s.OutlineStyle = style
	s.MessagePalette = palette("message-palette", fc.MessagePalette)
	s.OutlinePalette = palette("outline-palette", fc.OutlinePalette)
	s.OutlineCycle = fc.OutlineCycle
	s.Brightness = fc.Brightness
	s.RefreshInterval = fc.RefreshInterval
	s.FetchTimeout = fc.FetchTimeout
	s.LinkTimeout = fc.LinkTimeout
	s.PingHost = fc.PingHost
	s.DebounceWindow = fc.DebounceWindow
	s.FrameYield = fc.FrameYield
	s.LocalMessage = fc.LocalMessage
	s.FontPath = fc.FontPath
	s.FontSize = fc.FontSize
	s.PreviewAddr = fc.PreviewAddr
	s.Panel = PanelConfig{
		Width:      fc.Panel.Width,
		Height:     fc.Panel.Height,
		TextY:      fc.Panel.TextY,
		SPIDevice:  fc.Panel.SPIDevice,
		Serpentine: fc.Panel.Serpentine,
	}
	s.Buttons.Backend = strings.ToLower(fc.Buttons.Backend)
	s.Buttons.Device = fc.Buttons.Device
	if len(fc.Buttons.Inputs) != len(s.Buttons.Inputs) {
		errs = append(errs, fmt.Errorf("buttons.inputs needs %d entries, got %d", len(s.Buttons.Inputs), len(fc.Buttons.Inputs)))
	} else {
		copy(s.Buttons.Inputs[:], fc.Buttons.Inputs)
	}

	if err := errors.Join(errs...); err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}
