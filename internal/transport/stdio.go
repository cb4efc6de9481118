package transport

import (
	"os"

	"golang.org/x/term"
)

// StdioPort links the bridge console to the process stdin/stdout.
type StdioPort struct {
	in  *os.File
	out *os.File
}

func NewStdioPort() *StdioPort {
	return &StdioPort{in: os.Stdin, out: os.Stdout}
}

func (p *StdioPort) Read(b []byte) (int, error)  { return p.in.Read(b) }
func (p *StdioPort) Write(b []byte) (int, error) { return p.out.Write(b) }
func (p *StdioPort) Flush() error                { return p.out.Sync() }
func (p *StdioPort) Close() error                { return nil }

// Interactive reports whether stdin is a terminal.
func (p *StdioPort) Interactive() bool {
	return term.IsTerminal(int(p.in.Fd()))
}

// IsInteractive reports whether port is attached to an operator terminal.
// Serial devices always are.
func IsInteractive(port Port) bool {
	if t, ok := port.(interface{ Interactive() bool }); ok {
		return t.Interactive()
	}
	return true
}
