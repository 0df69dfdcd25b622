package link

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/go-ping/ping"

	"github.com/photonicat/scrollsign/internal/xslog"
)

// Pinger treats the link as up when a single ICMP echo to host is answered.
// A host that cannot be probed at all (no ICMP socket allowed) is reported
// as up, leaving the fetch itself to fail if the network is really down.
type Pinger struct {
	host       string
	timeout    time.Duration
	privileged bool
	logger     *slog.Logger
	warned     atomic.Bool
}

// NewPinger probes host. Raw ICMP usually needs root; unprivileged mode uses
// UDP pings, which Linux allows through net.ipv4.ping_group_range.
func NewPinger(host string, timeout time.Duration, privileged bool, logger *slog.Logger) *Pinger {
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}
	return &Pinger{host: host, timeout: timeout, privileged: privileged, logger: logger}
}

func (p *Pinger) IsConnected() bool {
	pinger, err := ping.NewPinger(p.host)
	if err != nil {
		p.logger.Debug("ping setup failed", xslog.Host(p.host), xslog.Error(err))
		return false
	}
	pinger.SetPrivileged(p.privileged)
	pinger.Count = 1
	pinger.Timeout = p.timeout

	if err := pinger.Run(); err != nil {
		if !p.warned.Swap(true) {
			p.logger.Warn("cannot send pings, assuming link is up", xslog.Host(p.host), xslog.Error(err))
		}
		return true
	}
	stats := pinger.Statistics()
	if stats.PacketsRecv == 0 {
		return false
	}
	p.logger.Debug("ping ok", xslog.Host(p.host), xslog.Duration(stats.AvgRtt))
	return true
}
