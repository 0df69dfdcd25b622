// Package panel drives a serial LED matrix (WS2812 family) from periph's SPI
// bus, wired as one serpentine strip.
package panel

import (
	"fmt"
	"image"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
)

const (
	// Each data bit is sent as three SPI bits, so 2.4MHz gives the 800kHz
	// WS2812 bit rate.
	busSpeed = 2400 * physic.KiloHertz

	bytesPerLED = 9 // 24 colour bits * 3

	// Trailing low bytes that latch the frame (>280µs).
	latchBytes = 90
)

// Strip is a canvas.Sink writing frames to the LED matrix.
type Strip struct {
	port       spi.PortCloser
	conn       spi.Conn
	width      int
	height     int
	serpentine bool
	buf        []byte
}

// Open opens the named SPI device ("" picks the first one registered).
// host.Init must have run first. The kernel spidev buffer must hold a full
// frame (width*height*9 + 90 bytes); raise spidev.bufsiz if it is smaller.
func Open(device string, width, height int, serpentine bool) (*Strip, error) {
	port, err := spireg.Open(device)
	if err != nil {
		return nil, fmt.Errorf("failed to open SPI: %w", err)
	}
	conn, err := port.Connect(busSpeed, spi.Mode0, 8)
	if err != nil {
		port.Close()
		return nil, fmt.Errorf("failed to connect to SPI: %w", err)
	}
	s := New(conn, width, height, serpentine)
	s.port = port
	return s, nil
}

// New wraps an already connected SPI conn.
func New(conn spi.Conn, width, height int, serpentine bool) *Strip {
	return &Strip{
		conn:       conn,
		width:      width,
		height:     height,
		serpentine: serpentine,
		buf:        make([]byte, 0, width*height*bytesPerLED+latchBytes),
	}
}

// Show encodes frame at the given brightness and writes it out in one
// transfer.
func (s *Strip) Show(frame *image.RGBA, brightness float64) error {
	s.buf = Encode(s.buf[:0], frame, s.width, s.height, brightness, s.serpentine)
	if err := s.conn.Tx(s.buf, nil); err != nil {
		return fmt.Errorf("writing LED frame: %w", err)
	}
	return nil
}

// Close blanks the strip and releases the SPI port.
func (s *Strip) Close() error {
	blank := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	err := s.Show(blank, 0)
	if s.port != nil {
		if cerr := s.port.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

func (s *Strip) String() string {
	return fmt.Sprintf("LED strip %dx%d on %s", s.width, s.height, s.conn)
}

// Index maps a panel coordinate to its position along the strip. Odd rows
// run right to left when the strip is wired serpentine.
func Index(x, y, width int, serpentine bool) int {
	if serpentine && y%2 == 1 {
		return y*width + (width - 1 - x)
	}
	return y*width + x
}

// Encode appends the SPI bit stream for frame to dst: LEDs in strip order,
// GRB byte order, followed by the latch gap. Pixels outside frame are black.
func Encode(dst []byte, frame *image.RGBA, width, height int, brightness float64, serpentine bool) []byte {
	n := width * height
	if need := n*bytesPerLED + latchBytes; cap(dst)-len(dst) < need {
		grown := make([]byte, len(dst), len(dst)+need)
		copy(grown, dst)
		dst = grown
	}
	start := len(dst)
	dst = dst[:start+n*bytesPerLED]

	b := frame.Bounds()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var r, g, bl uint8
			if p := (image.Point{X: b.Min.X + x, Y: b.Min.Y + y}); p.In(b) {
				c := frame.RGBAAt(p.X, p.Y)
				r, g, bl = scale(c.R, brightness), scale(c.G, brightness), scale(c.B, brightness)
			}
			off := start + Index(x, y, width, serpentine)*bytesPerLED
			encodeByte(dst[off:off+3], g)
			encodeByte(dst[off+3:off+6], r)
			encodeByte(dst[off+6:off+9], bl)
		}
	}
	for i := 0; i < latchBytes; i++ {
		dst = append(dst, 0)
	}
	return dst
}

// encodeByte writes v MSB first, 1 as 110 and 0 as 100.
func encodeByte(dst []byte, v uint8) {
	var bits uint32
	for i := 7; i >= 0; i-- {
		bits <<= 3
		if v&(1<<i) != 0 {
			bits |= 0b110
		} else {
			bits |= 0b100
		}
	}
	dst[0] = byte(bits >> 16)
	dst[1] = byte(bits >> 8)
	dst[2] = byte(bits)
}

func scale(v uint8, brightness float64) uint8 {
	switch {
	case brightness <= 0:
		return 0
	case brightness >= 1:
		return v
	}
	return uint8(float64(v)*brightness + 0.5)
}
