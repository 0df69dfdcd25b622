package input

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	evdev "github.com/holoplot/go-evdev"

	"github.com/photonicat/scrollsign/internal/xslog"
)

// EvdevButtons mirrors key state from a Linux input device. A reader
// goroutine updates the state; the frame loop only reads it.
type EvdevButtons struct {
	dev     inputDevice
	codes   [6]evdev.EvCode
	pressed [6]atomic.Bool
	logger  *slog.Logger

	closeOnce sync.Once
	closeErr  error
}

// inputDevice is the part of *evdev.InputDevice the reader uses.
type inputDevice interface {
	ReadOne() (*evdev.InputEvent, error)
	Ungrab() error
	Close() error
}

var _ Buttons = (*EvdevButtons)(nil)

// OpenEvdev opens device (a /dev/input path or a device name as reported by
// the kernel) and maps keys, given as names like "KEY_A", onto buttons
// A, B, C, D, brightness up, brightness down.
func OpenEvdev(device string, keys [6]string, logger *slog.Logger) (*EvdevButtons, error) {
	codes, err := keyCodes(keys)
	if err != nil {
		return nil, err
	}

	path, err := findDevice(device)
	if err != nil {
		return nil, err
	}
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	if err := dev.Grab(); err != nil {
		logger.Warn("failed to grab input device", xslog.Device(path), xslog.Error(err))
	}
	name, _ := dev.Name()
	logger.Info("using input device", xslog.Device(path), slog.String("name", name))

	return &EvdevButtons{dev: dev, codes: codes, logger: logger}, nil
}

func keyCodes(keys [6]string) ([6]evdev.EvCode, error) {
	var codes [6]evdev.EvCode
	for i, k := range keys {
		code, ok := evdev.KEYFromString[strings.ToUpper(strings.TrimSpace(k))]
		if !ok {
			return codes, fmt.Errorf("unknown key %q for button %s", k, Button(i))
		}
		codes[i] = code
	}
	return codes, nil
}

func findDevice(device string) (string, error) {
	if strings.HasPrefix(device, "/dev/") {
		return device, nil
	}
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return "", fmt.Errorf("listing input devices: %w", err)
	}
	for _, p := range paths {
		if p.Name == device {
			return p.Path, nil
		}
	}
	return "", fmt.Errorf("no input device named %q", device)
}

// Run reads events until ctx ends or the device fails.
func (b *EvdevButtons) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() { _ = b.closeDevice() })
	defer stop()

	for {
		ev, err := b.dev.ReadOne()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("reading input device: %w", err)
		}
		b.handle(ev)
	}
}

func (b *EvdevButtons) handle(ev *evdev.InputEvent) {
	if ev.Type != evdev.EV_KEY {
		return
	}
	for i, code := range b.codes {
		if ev.Code != code {
			continue
		}
		// 1 press, 2 autorepeat, 0 release
		down := ev.Value != 0
		if b.pressed[i].Swap(down) != down {
			b.logger.Debug("button", slog.String("button", Button(i).String()), slog.Bool("down", down))
		}
	}
}

func (b *EvdevButtons) IsPressed(btn Button) bool {
	if btn < 0 || int(btn) >= len(b.pressed) {
		return false
	}
	return b.pressed[btn].Load()
}

// Close releases the device. It is safe to call after Run has returned
// because its context ended.
func (b *EvdevButtons) Close() error {
	return b.closeDevice()
}

func (b *EvdevButtons) closeDevice() error {
	b.closeOnce.Do(func() {
		_ = b.dev.Ungrab()
		b.closeErr = b.dev.Close()
	})
	return b.closeErr
}
