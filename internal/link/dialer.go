package link

import (
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"time"

	"github.com/photonicat/scrollsign/internal/xslog"
)

const defaultProbeTimeout = 2 * time.Second

// Dialer treats the link as up when a TCP connection to addr opens.
type Dialer struct {
	addr    string
	timeout time.Duration
	logger  *slog.Logger
}

func NewDialer(addr string, timeout time.Duration, logger *slog.Logger) *Dialer {
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}
	return &Dialer{addr: addr, timeout: timeout, logger: logger}
}

func (d *Dialer) IsConnected() bool {
	conn, err := net.DialTimeout("tcp", d.addr, d.timeout)
	if err != nil {
		d.logger.Debug("dial failed", xslog.Addr(d.addr), xslog.Error(err))
		return false
	}
	_ = conn.Close()
	return true
}

// EndpointAddr is the host:port an http or https URL connects to.
func EndpointAddr(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint %q: %w", rawURL, err)
	}
	if u.Hostname() == "" {
		return "", fmt.Errorf("endpoint %q has no host", rawURL)
	}
	port := u.Port()
	if port == "" {
		switch u.Scheme {
		case "http":
			port = "80"
		case "https":
			port = "443"
		default:
			return "", fmt.Errorf("endpoint %q: no port for scheme %q", rawURL, u.Scheme)
		}
	}
	return net.JoinHostPort(u.Hostname(), port), nil
}
