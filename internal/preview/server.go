package preview

import (
	"bytes"
	"context"
	"image/png"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	go_json "github.com/goccy/go-json"

	"github.com/photonicat/scrollsign/internal/xslog"
)

const (
	DefaultPitch = 10
	inboxSize    = 8
	maxMessage   = 512
)

const indexPage = `<!DOCTYPE html>
<html><head><title>scrollsign</title></head>
<body style="background:#111;color:#ddd;font-family:monospace">
<img id="frame" src="/frame.svg" alt="panel">
<pre id="status"></pre>
<script>
setInterval(function () {
  document.getElementById("frame").src = "/frame.svg?t=" + Date.now();
  fetch("/status").then(r => r.json()).then(s => {
    document.getElementById("status").textContent = JSON.stringify(s, null, 2);
  });
}, 250);
</script>
</body></html>`

type Server struct {
	app    *fiber.App
	board  *Board
	inbox  chan string
	pitch  int
	logger *slog.Logger
}

func NewServer(board *Board, logger *slog.Logger) *Server {
	s := &Server{
		app: fiber.New(fiber.Config{
			DisableStartupMessage: true,
			JSONEncoder:           go_json.Marshal,
			JSONDecoder:           go_json.Unmarshal,
		}),
		board:  board,
		inbox:  make(chan string, inboxSize),
		pitch:  DefaultPitch,
		logger: logger,
	}

	s.app.Get("/", s.index)
	s.app.Get("/frame.svg", s.serveSVG)
	s.app.Get("/frame.png", s.servePNG)
	s.app.Get("/status", s.serveStatus)
	s.app.Post("/message", s.postMessage)
	return s
}

func (s *Server) App() *fiber.App { return s.app }

// Messages delivers texts posted to /message. The frame loop drains it.
func (s *Server) Messages() <-chan string { return s.inbox }

// Run serves on addr until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	errc := make(chan error, 1)
	go func() {
		s.logger.Info("starting preview server", xslog.Addr(addr))
		errc <- s.app.Listen(addr)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		if err := s.app.Shutdown(); err != nil {
			return err
		}
		return <-errc
	}
}

func (s *Server) index(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(indexPage)
}

func (s *Server) serveSVG(c *fiber.Ctx) error {
	frame, brightness := s.board.Frame()
	if frame == nil {
		return c.Status(fiber.StatusServiceUnavailable).SendString("No frame available")
	}

	var buf bytes.Buffer
	RenderSVG(&buf, frame, brightness, s.pitch)

	c.Set(fiber.HeaderContentType, "image/svg+xml")
	return c.Send(buf.Bytes())
}

func (s *Server) servePNG(c *fiber.Ctx) error {
	frame, brightness := s.board.Frame()
	if frame == nil {
		return c.Status(fiber.StatusServiceUnavailable).SendString("No frame available")
	}

	img, err := RenderPNG(frame, brightness, s.pitch)
	if err != nil {
		s.logger.Error("failed to render preview", xslog.Error(err))
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to render frame")
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to encode image")
	}

	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderContentLength, strconv.Itoa(buf.Len()))
	return c.Send(buf.Bytes())
}

func (s *Server) serveStatus(c *fiber.Ctx) error {
	return c.JSON(s.board.Status())
}

func (s *Server) postMessage(c *fiber.Ctx) error {
	var body struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid JSON")
	}
	text := strings.TrimSpace(body.Text)
	if text == "" {
		return c.Status(fiber.StatusBadRequest).SendString("Missing text")
	}
	if len(text) > maxMessage {
		return c.Status(fiber.StatusRequestEntityTooLarge).SendString("Text too long")
	}

	select {
	case s.inbox <- text:
		s.logger.Info("queued local message", xslog.Text(text))
		return c.Status(fiber.StatusAccepted).SendString("Message queued")
	default:
		return c.Status(fiber.StatusServiceUnavailable).SendString("Message queue full")
	}
}
