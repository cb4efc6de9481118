package transport

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/tarm/serial"
)

// SerialConfig selects a serial device.
type SerialConfig struct {
	Device      string
	Baud        int
	ReadTimeout time.Duration
}

func DefaultSerialConfig() SerialConfig {
	return SerialConfig{
		Device: "/dev/ttyACM0",
		Baud:   115200,
	}
}

// serialPort adapts a tty to Port. With a read timeout the driver reports an
// idle read as (0, io.EOF); that is surfaced as ErrReadTimeout instead.
type serialPort struct {
	dev     io.ReadWriteCloser
	timeout time.Duration
}

// OpenSerial opens a serial device as a Port.
func OpenSerial(cfg SerialConfig) (Port, error) {
	device := strings.TrimSpace(cfg.Device)
	if device == "" {
		return nil, ErrNoDevice
	}
	p, err := serial.OpenPort(&serial.Config{
		Name:        device,
		Baud:        cfg.Baud,
		ReadTimeout: cfg.ReadTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("transport: open %s: %w", device, err)
	}
	return newSerialPort(p, cfg.ReadTimeout), nil
}

func newSerialPort(dev io.ReadWriteCloser, timeout time.Duration) *serialPort {
	return &serialPort{dev: dev, timeout: timeout}
}

func (p *serialPort) Read(b []byte) (int, error) {
	n, err := p.dev.Read(b)
	if n == 0 && err == io.EOF && p.timeout > 0 {
		return 0, ErrReadTimeout
	}
	return n, err
}

func (p *serialPort) Write(b []byte) (int, error) { return p.dev.Write(b) }
func (p *serialPort) Close() error                { return p.dev.Close() }

// Flush is a no-op: writes reach the tty driver directly, and the
// underlying Flush discards queued bytes instead of draining them.
func (p *serialPort) Flush() error {
	return nil
}
