// Package porttest provides an in-memory transport.Port for tests.
package porttest

import (
	"bytes"
	"errors"
	"io"
	"sync"

	"github.com/danmuck/bridgectl/internal/transport"
)

var ErrClosed = errors.New("porttest: port closed")

// Port is a scripted in-memory port. Reads drain Input; writes append to the
// output buffer, accepting at most Chunk bytes per call when Chunk > 0.
type Port struct {
	mu       sync.Mutex
	input    *bytes.Reader
	out      bytes.Buffer
	stalls   []int
	calls    int
	flushes  int
	writeErr error
	closed   bool
	script   []Step

	Chunk int
}

func New(input string) *Port {
	return &Port{input: bytes.NewReader([]byte(input))}
}

// Step is one scripted read: Data is returned by a single Read call, or Err
// with zero bytes when Data is empty.
type Step struct {
	Data string
	Err  error
}

func Data(s string) Step  { return Step{Data: s} }
func Fail(err error) Step { return Step{Err: err} }

// NewScript returns a port whose reads replay steps in order and then report
// io.EOF.
func NewScript(steps ...Step) *Port {
	p := New("")
	p.script = steps
	return p
}

// StallOn makes the nth write call (1-based) fail with transport.ErrWouldBlock.
func (p *Port) StallOn(calls ...int) *Port {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stalls = append(p.stalls, calls...)
	return p
}

// FailWrites makes every later write fail with err.
func (p *Port) FailWrites(err error) *Port {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.writeErr = err
	return p
}

func (p *Port) Read(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return 0, io.EOF
	}
	if len(p.script) > 0 {
		step := p.script[0]
		if len(step.Data) > len(b) {
			p.script[0].Data = step.Data[len(b):]
			return copy(b, step.Data), nil
		}
		p.script = p.script[1:]
		if step.Data == "" {
			return 0, step.Err
		}
		return copy(b, step.Data), nil
	}
	return p.input.Read(b)
}

func (p *Port) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return 0, ErrClosed
	}
	p.calls++
	if p.writeErr != nil {
		return 0, p.writeErr
	}
	for _, n := range p.stalls {
		if n == p.calls {
			return 0, transport.ErrWouldBlock
		}
	}
	if p.Chunk > 0 && len(b) > p.Chunk {
		b = b[:p.Chunk]
	}
	return p.out.Write(b)
}

func (p *Port) Flush() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.flushes++
	return errors.New("porttest: flush unsupported")
}

func (p *Port) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}

func (p *Port) Output() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.out.String()
}

func (p *Port) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.out.Reset()
}

func (p *Port) Flushes() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.flushes
}

func (p *Port) WriteCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

var _ transport.Port = (*Port)(nil)
