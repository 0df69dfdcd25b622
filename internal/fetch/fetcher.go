// Package fetch retrieves the message text from the remote endpoint and
// classifies every way that can go wrong.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	go_json "github.com/goccy/go-json"

	"github.com/photonicat/scrollsign/internal/xslog"
)

const (
	DefaultTimeout = 10 * time.Second
	maxBodyBytes   = 1 << 20
)

var (
	errNoLink    = errors.New("network link is down")
	errNoText    = errors.New(`response has no "text" string`)
	errEmptyBody = errors.New("empty response body")
)

// LinkChecker is the part of the network link the fetcher needs.
type LinkChecker interface {
	IsConnected() bool
}

type Fetcher struct {
	client  *http.Client
	url     string
	link    LinkChecker
	timeout time.Duration
	logger  *slog.Logger
}

type Option func(*Fetcher)

func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) { f.client = c }
}

func WithLink(l LinkChecker) Option {
	return func(f *Fetcher) { f.link = l }
}

// WithTimeout bounds a whole fetch, connect through body read.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) { f.timeout = d }
}

func WithLogger(l *slog.Logger) Option {
	return func(f *Fetcher) { f.logger = l }
}

// New builds a fetcher for baseURL. With a password the request goes to
// {baseURL}/?pword={password}, otherwise to baseURL as is.
func New(baseURL, password string, opts ...Option) (*Fetcher, error) {
	u, err := endpoint(baseURL, password)
	if err != nil {
		return nil, err
	}
	f := &Fetcher{
		url:     u,
		timeout: DefaultTimeout,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.client == nil {
		f.client = NewHTTPClient(WithClientTimeout(f.timeout))
	}
	return f, nil
}

func endpoint(baseURL, password string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("invalid endpoint %q: scheme must be http or https", baseURL)
	}
	if password == "" {
		return u.String(), nil
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/"
	q := u.Query()
	q.Set("pword", password)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// URL is the full request URL, password included. Do not log it.
func (f *Fetcher) URL() string { return f.url }

// Fetch performs one GET and returns the remote message. Every failure is
// an *Error.
func (f *Fetcher) Fetch(ctx context.Context) (Message, error) {
	if f.link != nil && !f.link.IsConnected() {
		return Message{}, &Error{Kind: KindLinkUnavailable, Err: errNoLink}
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return Message{}, &Error{Kind: KindTransport, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return Message{}, classify(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return Message{}, &Error{Kind: KindBadStatus, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return Message{}, classify(err)
	}

	text, err := decodeText(body)
	if err != nil {
		return Message{}, &Error{Kind: KindMalformed, Err: err}
	}

	f.logger.Debug("fetched text",
		xslog.HTTPStatus(resp.StatusCode),
		xslog.Duration(time.Since(start)),
		xslog.Text(text),
	)
	return Message{Text: text, Source: SourceRemote}, nil
}

func decodeText(body []byte) (string, error) {
	if len(strings.TrimSpace(string(body))) == 0 {
		return "", errEmptyBody
	}
	var payload struct {
		Text *string `json:"text"`
	}
	if err := go_json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	if payload.Text == nil {
		return "", errNoText
	}
	return *payload.Text, nil
}

func classify(err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: KindTimeout, Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &Error{Kind: KindTimeout, Err: err}
	}
	return &Error{Kind: KindTransport, Err: err}
}
