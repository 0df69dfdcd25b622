// Package link answers "is the network up?" for the sign. Association and
// credentials belong to the OS; this package only waits and probes.
package link

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/photonicat/scrollsign/internal/xslog"
)

var ErrUnavailable = errors.New("network link unavailable")

const DefaultPollInterval = 500 * time.Millisecond

// Checker reports current connectivity.
type Checker interface {
	IsConnected() bool
}

// WaitConnected polls c until it reports connected, the timeout passes, or
// ctx ends. A timeout yields ErrUnavailable.
func WaitConnected(ctx context.Context, c Checker, timeout, poll time.Duration, logger *slog.Logger) error {
	if poll <= 0 {
		poll = DefaultPollInterval
	}
	start := time.Now()
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	ticker := time.NewTicker(poll)
	defer ticker.Stop()

	for {
		if c.IsConnected() {
			logger.Info("network link up", xslog.Duration(time.Since(start)))
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-deadline.C:
			logger.Error("network link did not come up", xslog.Duration(timeout))
			return ErrUnavailable
		case <-ticker.C:
		}
	}
}
