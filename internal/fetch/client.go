package fetch

import (
	"fmt"
	"net/http"
	"time"
)

const userAgent = "scrollsign/1"

type signTransport struct {
	base http.RoundTripper
}

var _ http.RoundTripper = (*signTransport)(nil)

func (t *signTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", userAgent)
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform round trip: %w", err)
	}
	return resp, nil
}

type ClientOption func(*http.Client)

func WithClientTimeout(d time.Duration) ClientOption {
	return func(c *http.Client) { c.Timeout = d }
}

// NewHTTPClient returns a client that tags requests with the sign's
// User-Agent.
func NewHTTPClient(opts ...ClientOption) *http.Client {
	c := &http.Client{Transport: &signTransport{base: http.DefaultTransport}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
