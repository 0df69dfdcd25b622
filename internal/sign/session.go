// Package sign runs the display schedule: one cooperative loop that polls
// the buttons, refreshes the message when due, advances the scroll state and
// draws each frame.
package sign

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/photonicat/scrollsign/internal/animate"
	"github.com/photonicat/scrollsign/internal/config"
	"github.com/photonicat/scrollsign/internal/fetch"
	"github.com/photonicat/scrollsign/internal/input"
	"github.com/photonicat/scrollsign/internal/link"
	"github.com/photonicat/scrollsign/internal/preview"
	"github.com/photonicat/scrollsign/internal/render"
	"github.com/photonicat/scrollsign/internal/scroll"
	"github.com/photonicat/scrollsign/internal/xslog"
)

// Fetcher retrieves the remote message. Every error is a *fetch.Error.
type Fetcher interface {
	Fetch(ctx context.Context) (fetch.Message, error)
}

// StatusReporter receives a snapshot after every frame.
type StatusReporter interface {
	SetStatus(preview.Status)
}

// Session owns all mutable sign state. Only the frame loop touches it.
type Session struct {
	canvas   render.Canvas
	fetcher  Fetcher
	link     link.Checker
	input    *input.Handler
	renderer *render.Renderer
	settings config.Settings
	logger   *slog.Logger
	now      func() time.Time

	inbox       <-chan string
	status      StatusReporter
	startupShow bool

	cfg        config.DisplayConfig
	message    fetch.Message
	width      int
	state      scroll.State
	clock      fetch.Clock
	messages   *animate.Palette
	outline    *animate.Cycler
	pulse      *animate.Pulse
	brightness float64
	paused     bool
	pausedAt   time.Time
	diagnostic *render.Diagnostic
	presentErr bool
}

type Option func(*Session)

// WithLink makes Start wait for the network link before the first fetch.
func WithLink(c link.Checker) Option {
	return func(s *Session) { s.link = c }
}

// WithInbox supplies local messages from outside the loop, such as the
// preview server.
func WithInbox(ch <-chan string) Option {
	return func(s *Session) { s.inbox = ch }
}

func WithStatus(r StatusReporter) Option {
	return func(s *Session) { s.status = r }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithStartupFlash toggles the corner status blinks shown during Start.
func WithStartupFlash(on bool) Option {
	return func(s *Session) { s.startupShow = on }
}

func New(c render.Canvas, f Fetcher, b input.Buttons, st config.Settings, opts ...Option) *Session {
	s := &Session{
		canvas:      c,
		fetcher:     f,
		renderer:    render.NewRenderer(st.OutlineStyle, st.Panel.TextY),
		settings:    st,
		logger:      slog.Default(),
		now:         time.Now,
		startupShow: true,
		cfg:         st.Display,
		messages:    animate.NewPalette(st.MessagePalette),
		pulse:       animate.NewPulse(),
		brightness:  st.Brightness,
	}
	for _, opt := range opts {
		opt(s)
	}
	if b == nil {
		b = input.NoButtons{}
	}
	now := s.now()
	s.input = input.NewHandler(b, st.DebounceWindow, now)
	s.outline = animate.NewCycler(animate.NewPalette(st.OutlinePalette), st.OutlineCycle, now)
	s.clock = fetch.NewClock(now, st.RefreshInterval)
	s.state = scroll.Reset(now)
	return s
}

// Start brings the link up and performs the initial fetch. Either failing
// puts the session into diagnostic mode for good; Start only returns an
// error when ctx ends.
func (s *Session) Start(ctx context.Context) error {
	if s.link != nil {
		s.flash(ctx, config.Red)
		err := link.WaitConnected(ctx, s.link, s.settings.LinkTimeout, link.DefaultPollInterval, s.logger)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			s.enterDiagnostic(fetch.Banner(&fetch.Error{Kind: fetch.KindLinkUnavailable, Err: err}), err)
			return nil
		}
		s.flash(ctx, config.Green)
	}

	s.flash(ctx, config.Orange)
	msg, err := s.fetcher.Fetch(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		s.enterDiagnostic(fetch.Banner(err), err)
		return nil
	}
	s.logger.Info("initial text fetched", xslog.Text(msg.Text))
	s.flash(ctx, config.White)

	now := s.now()
	s.setMessage(msg, now)
	s.clock.Mark(now)
	return nil
}

// Run starts the session and then renders frames until ctx ends.
func (s *Session) Run(ctx context.Context) error {
	if err := s.Start(ctx); err != nil {
		return err
	}
	for {
		s.Frame(ctx)
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(s.settings.FrameYield):
		}
	}
}

// Frame renders one frame. In diagnostic mode it only draws the alert.
func (s *Session) Frame(ctx context.Context) {
	now := s.now()
	if s.diagnostic != nil {
		s.diagnostic.Draw(s.canvas, now)
		s.present()
		return
	}

	for _, a := range s.input.Poll(now) {
		s.dispatch(ctx, a, now)
	}
	s.drainInbox(now)

	if s.clock.Due(now) {
		s.refresh(ctx, "periodic")
	}

	if d := s.input.BrightnessDelta(); d != 0 {
		s.brightness = animate.Clamp01(s.brightness + d)
	}

	prev := s.state.Phase
	s.state = scroll.Advance(s.state, s.cfg, s.width, s.canvas.Width(), now, s.paused)
	if s.state.Phase != prev {
		s.logger.Debug("phase changed", xslog.Phase(s.state.Phase.String()), xslog.Shift(s.state.Shift))
	}

	if c, changed := s.outline.Tick(now); changed {
		s.cfg.OutlineColour = c
	}

	s.renderer.Render(s.canvas, s.message.Text, s.state, s.cfg)
	s.canvas.SetBrightness(animate.Clamp01(s.brightness + s.pulse.Step()))
	s.present()
}

func (s *Session) dispatch(ctx context.Context, a input.Action, now time.Time) {
	s.logger.Info("button action", xslog.Action(a.String()))

	switch a {
	case input.ManualRefresh:
		s.refresh(ctx, "manual")
	case input.CycleMessageColour:
		s.cfg.MessageColour = s.messages.Next()
	case input.TogglePause:
		s.togglePause(now)
	case input.ShowLocalMessage:
		s.setMessage(fetch.Message{Text: s.settings.LocalMessage, Source: fetch.SourceLocal}, now)
	}
}

// refresh fetches a new message after startup. Failures keep the current
// message. The clock is marked when the attempt completes either way.
func (s *Session) refresh(ctx context.Context, trigger string) {
	msg, err := s.fetcher.Fetch(ctx)
	done := s.now()
	s.clock.Mark(done)

	if err != nil {
		s.logger.Warn("refresh failed, keeping current text",
			slog.String("trigger", trigger),
			slog.String("kind", fetch.KindOf(err).String()),
			xslog.Error(err),
		)
		return
	}
	s.logger.Info("text refreshed", slog.String("trigger", trigger), xslog.Text(msg.Text))
	s.setMessage(msg, done)
}

func (s *Session) drainInbox(now time.Time) {
	for s.inbox != nil {
		select {
		case text, ok := <-s.inbox:
			if !ok {
				s.inbox = nil
				return
			}
			s.setMessage(fetch.Message{Text: text, Source: fetch.SourceLocal}, now)
		default:
			return
		}
	}
}

// setMessage swaps the message and restarts the hold/scroll cycle.
func (s *Session) setMessage(msg fetch.Message, now time.Time) {
	s.message = msg
	s.width = s.canvas.MeasureText(msg.Text)
	s.state = scroll.Reset(now)
}

func (s *Session) togglePause(now time.Time) {
	if !s.paused {
		s.paused = true
		s.pausedAt = now
		return
	}
	s.paused = false
	// A state entered during the pause was only paused since it began.
	since := s.pausedAt
	if s.state.EnteredAt.After(since) {
		since = s.state.EnteredAt
	}
	s.state = s.state.Resume(now.Sub(since))
}

func (s *Session) enterDiagnostic(text string, cause error) {
	s.logger.Error("entering diagnostic mode", xslog.Text(text), xslog.Error(cause))
	s.message = fetch.Message{Text: text, Source: fetch.SourceError}
	s.diagnostic = render.NewDiagnostic(s.canvas, text, s.settings.Panel.TextY, s.now())
}

func (s *Session) flash(ctx context.Context, c config.Colour) {
	if !s.startupShow {
		return
	}
	if err := render.FlashStatus(ctx, s.canvas, c); err != nil && !errors.Is(err, ctx.Err()) {
		s.logger.Warn("status flash failed", xslog.Error(err))
	}
}

func (s *Session) present() {
	err := s.canvas.Present()
	switch {
	case err != nil && !s.presentErr:
		s.logger.Error("failed to present frame", xslog.Error(err))
	case err == nil && s.presentErr:
		s.logger.Info("frame output recovered")
	}
	s.presentErr = err != nil
	s.publish()
}

func (s *Session) publish() {
	if s.status == nil {
		return
	}
	s.status.SetStatus(s.Status())
}

// Status is a snapshot of the session for display outside the loop.
func (s *Session) Status() preview.Status {
	return preview.Status{
		Text:          s.message.Text,
		Source:        s.message.Source.String(),
		Phase:         s.state.Phase.String(),
		Shift:         s.state.Shift,
		Paused:        s.paused,
		Diagnostic:    s.diagnostic != nil,
		Brightness:    s.brightness,
		MessageColour: s.cfg.MessageColour.String(),
		OutlineColour: s.cfg.OutlineColour.String(),
		UpdatedAt:     s.now(),
	}
}

// Diagnostic reports whether the session has entered the terminal error
// display.
func (s *Session) Diagnostic() bool { return s.diagnostic != nil }
