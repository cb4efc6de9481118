package transport

import (
	"errors"
	"io"
)

var (
	// ErrWouldBlock reports a full outgoing buffer; nothing was written.
	ErrWouldBlock = errors.New("transport: would block")
	ErrNoDevice   = errors.New("transport: missing serial device")
	// ErrReadTimeout reports a read that went idle before any byte arrived.
	// The port is still open.
	ErrReadTimeout = errors.New("transport: read timeout")
)

// Port is a host-facing byte link.
type Port interface {
	io.ReadWriteCloser
	Flush() error
}
