// Command scrollsign shows a message fetched from a web endpoint on an LED
// matrix, scrolling it when it does not fit.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"
	"periph.io/x/host/v3"

	"github.com/photonicat/scrollsign/internal/canvas"
	"github.com/photonicat/scrollsign/internal/config"
	"github.com/photonicat/scrollsign/internal/fetch"
	"github.com/photonicat/scrollsign/internal/input"
	"github.com/photonicat/scrollsign/internal/link"
	"github.com/photonicat/scrollsign/internal/panel"
	"github.com/photonicat/scrollsign/internal/preview"
	"github.com/photonicat/scrollsign/internal/sign"
	"github.com/photonicat/scrollsign/internal/xslog"
)

func main() {
	logger := xslog.NewLoggerFromEnv(os.Stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger); err != nil {
		logger.Error("scrollsign exited", xslog.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	secrets, err := config.ReadSecrets(".env")
	if err != nil {
		return err
	}
	settings, err := config.Load(secrets.ConfigPath)
	if err != nil {
		return err
	}

	if _, err := host.Init(); err != nil {
		return fmt.Errorf("initialising periph host: %w", err)
	}

	var sinks []canvas.Sink
	if settings.Panel.SPIDevice != "" {
		strip, err := panel.Open(settings.Panel.SPIDevice, settings.Panel.Width, settings.Panel.Height, settings.Panel.Serpentine)
		if err != nil {
			return err
		}
		defer func() {
			if err := strip.Close(); err != nil {
				logger.Warn("failed to blank panel", xslog.Error(err))
			}
		}()
		logger.Info("panel ready", slog.String("panel", strip.String()))
		sinks = append(sinks, strip)
	}

	var (
		server *preview.Server
		board  *preview.Board
	)
	if settings.PreviewAddr != "" {
		board = preview.NewBoard()
		server = preview.NewServer(board, logger)
		sinks = append(sinks, board)
	}
	if len(sinks) == 0 {
		logger.Warn("no SPI device or preview address configured, frames go nowhere")
	}

	face, err := canvas.LoadFace(settings.FontPath, settings.FontSize)
	if err != nil {
		return err
	}
	if !canvas.Fits(face, settings.Panel.TextY, settings.Panel.Height) {
		logger.Warn("font does not fit the panel, glyphs will be clipped",
			slog.Int("text_y", settings.Panel.TextY), slog.Int("panel_height", settings.Panel.Height))
	}
	frame := canvas.New(settings.Panel.Width, settings.Panel.Height, face, sinks...)

	checker, err := linkChecker(settings.PingHost, secrets.URL, logger)
	if err != nil {
		return err
	}

	fetcher, err := fetch.New(secrets.URL, secrets.Password,
		fetch.WithLink(checker),
		fetch.WithTimeout(settings.FetchTimeout),
		fetch.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	var buttons input.Buttons = input.NoButtons{}
	switch settings.Buttons.Backend {
	case config.ButtonsEvdev:
		eb, err := input.OpenEvdev(settings.Buttons.Device, settings.Buttons.Inputs, logger)
		if err != nil {
			return err
		}
		defer eb.Close()
		g.Go(func() error {
			if err := eb.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("button reader stopped", xslog.Error(err))
			}
			return nil
		})
		buttons = eb
	case config.ButtonsGPIO:
		gb, err := input.OpenGPIO(settings.Buttons.Inputs)
		if err != nil {
			return err
		}
		buttons = gb
	}

	opts := []sign.Option{
		sign.WithLink(checker),
		sign.WithLogger(logger),
	}
	if server != nil {
		opts = append(opts, sign.WithInbox(server.Messages()), sign.WithStatus(board))
		g.Go(func() error {
			return server.Run(gctx, settings.PreviewAddr)
		})
	}
	session := sign.New(frame, fetcher, buttons, settings, opts...)

	g.Go(func() error {
		return session.Run(gctx)
	})
	return g.Wait()
}

// linkChecker pings the configured host when there is one, and otherwise
// dials the endpoint's own host and port.
func linkChecker(pingHost, endpoint string, logger *slog.Logger) (link.Checker, error) {
	if pingHost != "" {
		return link.NewPinger(pingHost, 0, os.Geteuid() == 0, logger), nil
	}
	addr, err := link.EndpointAddr(endpoint)
	if err != nil {
		return nil, err
	}
	return link.NewDialer(addr, 0, logger), nil
}
