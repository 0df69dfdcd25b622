package scroll

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/photonicat/scrollsign/internal/config"
)

const panelWidth = 53

var t0 = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

func TestShortMessageNeverScrolls(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultDisplay()
	s := Reset(t0)
	for now := t0; now.Before(t0.Add(time.Minute)); now = now.Add(ms(7)) {
		s = Advance(s, cfg, 12, panelWidth, now, false)
		if s.Phase != PreScroll || s.Shift != 0 {
			t.Fatalf("at %s: state %v/%d, want PRE_SCROLL/0", now.Sub(t0), s.Phase, s.Shift)
		}
	}
}

func TestPreScrollReHoldsShortMessage(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultDisplay()
	s := Advance(Reset(t0), cfg, 12, panelWidth, t0.Add(ms(2001)), false)
	if !s.EnteredAt.Equal(t0.Add(ms(2001))) {
		t.Errorf("hold timer should restart on re-entry, EnteredAt = %s", s.EnteredAt.Sub(t0))
	}
}

func TestOverflowBoundary(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultDisplay()
	tests := []struct {
		name  string
		width int
		want  Phase
	}{
		{name: "one pixel short", width: panelWidth - 2*cfg.Padding - 1, want: PreScroll},
		{name: "exactly fills padded panel", width: panelWidth - 2*cfg.Padding, want: Scrolling},
		{name: "wide", width: 100, want: Scrolling},
		{name: "empty message", width: 0, want: PreScroll},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := Advance(Reset(t0), cfg, tt.width, panelWidth, t0.Add(cfg.HoldTime+time.Millisecond), false)
			if s.Phase != tt.want {
				t.Errorf("phase = %v, want %v", s.Phase, tt.want)
			}
		})
	}
}

// Panel 53px, padding 5, message 100px, hold 2s, step 75ms.
func TestFullCycle(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultDisplay()
	const width = 100
	s := Reset(t0)

	s = Advance(s, cfg, width, panelWidth, t0.Add(ms(2000)), false)
	if s.Phase != PreScroll {
		t.Fatalf("hold must last more than 2s, phase = %v", s.Phase)
	}
	s = Advance(s, cfg, width, panelWidth, t0.Add(ms(2001)), false)
	if s.Phase != Scrolling || s.Shift != 0 {
		t.Fatalf("after 2s: %v/%d, want SCROLLING/0", s.Phase, s.Shift)
	}

	now := s.EnteredAt
	lastStep := now
	steps := 0
	for s.Phase == Scrolling {
		now = now.Add(time.Millisecond)
		prev := s.Shift
		s = Advance(s, cfg, width, panelWidth, now, false)
		if s.Shift != prev {
			if s.Shift != prev+1 {
				t.Fatalf("shift jumped from %d to %d", prev, s.Shift)
			}
			if gap := now.Sub(lastStep); gap < cfg.StepTime {
				t.Fatalf("step %d came %s after the previous one", s.Shift, gap)
			}
			lastStep = now
			steps++
		}
		if steps > 1000 {
			t.Fatal("scrolling never terminated")
		}
	}

	if want := Travel(width, cfg.Padding, panelWidth); steps != want || want != 56 {
		t.Fatalf("steps = %d, travel = %d, want 56", steps, want)
	}
	if s.Phase != PostScroll || s.Shift != 56 {
		t.Fatalf("after scrolling: %v/%d, want POST_SCROLL/56", s.Phase, s.Shift)
	}

	postAt := s.EnteredAt
	s = Advance(s, cfg, width, panelWidth, postAt.Add(ms(2000)), false)
	if s.Phase != PostScroll || s.Shift != 56 {
		t.Fatalf("post hold ended early: %v/%d", s.Phase, s.Shift)
	}
	s = Advance(s, cfg, width, panelWidth, postAt.Add(ms(2001)), false)
	if diff := cmp.Diff(Reset(postAt.Add(ms(2001))), s); diff != "" {
		t.Errorf("after post hold (-want +got):\n%s", diff)
	}
}

func TestAdvanceIdempotentForSameInstant(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultDisplay()
	states := []State{
		Reset(t0),
		{Phase: Scrolling, Shift: 10, EnteredAt: t0},
		{Phase: PostScroll, Shift: 56, EnteredAt: t0},
	}
	for _, start := range states {
		for _, d := range []time.Duration{0, ms(50), ms(76), ms(2001), ms(9000)} {
			now := t0.Add(d)
			once := Advance(start, cfg, 100, panelWidth, now, false)
			twice := Advance(once, cfg, 100, panelWidth, now, false)
			if diff := cmp.Diff(once, twice); diff != "" {
				t.Errorf("start %v at +%s not idempotent (-once +twice):\n%s", start.Phase, d, diff)
			}
		}
	}
}

func TestPauseFreezesState(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultDisplay()
	start := State{Phase: Scrolling, Shift: 17, EnteredAt: t0}
	for _, d := range []time.Duration{0, ms(80), time.Hour} {
		got := Advance(start, cfg, 100, panelWidth, t0.Add(d), true)
		if diff := cmp.Diff(start, got); diff != "" {
			t.Errorf("paused advance at +%s changed state:\n%s", d, diff)
		}
	}
}

func TestResumeDiscountsPause(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultDisplay()
	s := State{Phase: PreScroll, EnteredAt: t0}
	// Paused at +1s for 10s: without discounting the hold would expire at once.
	s = s.Resume(10 * time.Second)
	s = Advance(s, cfg, 100, panelWidth, t0.Add(11*time.Second), false)
	if s.Phase != PreScroll {
		t.Fatalf("phase = %v, want PRE_SCROLL after resume", s.Phase)
	}
	s = Advance(s, cfg, 100, panelWidth, t0.Add(12*time.Second+time.Millisecond), false)
	if s.Phase != Scrolling {
		t.Fatalf("phase = %v, want SCROLLING once the remaining hold elapses", s.Phase)
	}
}

func TestBarelyOverflowingStopsAfterOneStep(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultDisplay()
	width := panelWidth - 2*cfg.Padding
	s := State{Phase: Scrolling, EnteredAt: t0}
	s = Advance(s, cfg, width, panelWidth, t0.Add(ms(76)), false)
	if s.Phase != PostScroll || s.Shift != 1 {
		t.Errorf("state = %v/%d, want POST_SCROLL/1", s.Phase, s.Shift)
	}
}

func TestPhaseString(t *testing.T) {
	t.Parallel()

	if PreScroll.String() != "PRE_SCROLL" || Phase(9).String() != "UNKNOWN" {
		t.Error("unexpected phase names")
	}
}
