package transport

import (
	"bytes"
	"errors"

	"github.com/rs/zerolog"
)

// Writer sends zero-padded buffers over a Port.
//
// Unwritten data is dropped, never reported: on ErrWouldBlock a blocking
// writer retries while a non-blocking writer gives up, and any other write
// error ends the send. A flush is always attempted afterwards.
type Writer struct {
	port      Port
	block     bool
	maxStalls int
	log       zerolog.Logger
}

type Option func(*Writer)

// WithBlocking selects blocking mode, retrying writes that would block.
func WithBlocking(block bool) Option {
	return func(w *Writer) {
		w.block = block
	}
}

// WithMaxStalls bounds consecutive would-block retries in blocking mode.
// Zero retries forever.
func WithMaxStalls(n int) Option {
	return func(w *Writer) {
		w.maxStalls = n
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(w *Writer) {
		w.log = logger
	}
}

func NewWriter(port Port, opts ...Option) *Writer {
	w := &Writer{port: port, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Writer) Blocking() bool {
	return w.block
}

// Send writes p up to its first zero byte and returns the number of bytes
// the port accepted.
func (w *Writer) Send(p []byte) int {
	return w.send(p, w.block)
}

// SendString is Send for text.
func (w *Writer) SendString(s string) int {
	return w.send([]byte(s), w.block)
}

// SendBlocking sends s in blocking mode regardless of the writer default.
func (w *Writer) SendBlocking(s string) int {
	return w.send([]byte(s), true)
}

func (w *Writer) send(p []byte, block bool) int {
	if i := bytes.IndexByte(p, 0); i >= 0 {
		p = p[:i]
	}

	sent := 0
	stalls := 0
	for len(p) > 0 {
		n, err := w.port.Write(p)
		if n > 0 {
			sent += n
			p = p[n:]
			stalls = 0
		}
		if err == nil {
			if n == 0 {
				break
			}
			continue
		}
		if errors.Is(err, ErrWouldBlock) {
			stalls++
			if block && (w.maxStalls == 0 || stalls <= w.maxStalls) {
				continue
			}
		} else {
			w.log.Debug().Err(err).Int("dropped", len(p)).Msg("transport write failed")
		}
		break
	}
	_ = w.port.Flush()
	return sent
}
