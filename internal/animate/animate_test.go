package animate

import (
	"testing"
	"time"

	"github.com/photonicat/scrollsign/internal/config"
)

func TestPulseStaysInBounds(t *testing.T) {
	t.Parallel()

	p := NewPulse()
	sawTop, sawBottom := false, false
	for i := 0; i < 10000; i++ {
		v := p.Step()
		if v > PulseAmplitude || v < -PulseAmplitude {
			t.Fatalf("frame %d: pulse %v out of bounds", i, v)
		}
		if v == PulseAmplitude {
			sawTop = true
		}
		if v == -PulseAmplitude {
			sawBottom = true
		}
	}
	if !sawTop || !sawBottom {
		t.Error("pulse should reach both bounds")
	}
}

func TestPulseTriangle(t *testing.T) {
	t.Parallel()

	p := NewPulse()
	prev := p.Value()
	rising := true
	turns := 0
	for i := 0; i < 200; i++ {
		v := p.Step()
		if (v > prev) != rising {
			rising = !rising
			turns++
		}
		prev = v
	}
	if turns < 3 {
		t.Errorf("expected the wave to turn several times in 200 frames, got %d", turns)
	}
}

func TestEffectiveBrightnessClamped(t *testing.T) {
	t.Parallel()

	for _, base := range []float64{0, 0.02, 0.5, 0.98, 1} {
		p := NewPulse()
		for i := 0; i < 500; i++ {
			v := Clamp01(base + p.Step())
			if v < 0 || v > 1 {
				t.Fatalf("base %v: effective %v outside [0,1]", base, v)
			}
			if v < base-PulseAmplitude-1e-9 || v > base+PulseAmplitude+1e-9 {
				t.Fatalf("base %v: effective %v outside pulse band", base, v)
			}
		}
	}
}

func TestPaletteWraps(t *testing.T) {
	t.Parallel()

	p := NewPalette([]config.Colour{config.Red, config.Green})
	if p.Current() != config.Red {
		t.Fatal("palette starts at the first colour")
	}
	if p.Next() != config.Green || p.Next() != config.Red {
		t.Error("palette should wrap around")
	}
	if NewPalette(nil).Next() != config.White {
		t.Error("empty palette falls back to white")
	}
}

func TestCyclerEveryPeriod(t *testing.T) {
	t.Parallel()

	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewCycler(NewPalette(config.DefaultOutlinePalette), 10*time.Second, t0)

	if got, changed := c.Tick(t0.Add(10 * time.Second)); changed || got != config.Red {
		t.Fatalf("at 10s: %v changed=%v, want red unchanged", got, changed)
	}
	if got, changed := c.Tick(t0.Add(10*time.Second + time.Millisecond)); !changed || got != config.Green {
		t.Fatalf("just past 10s: %v changed=%v, want green", got, changed)
	}
	if _, changed := c.Tick(t0.Add(15 * time.Second)); changed {
		t.Fatal("cycle period restarts on change")
	}
}
