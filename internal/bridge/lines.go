package bridge

import (
	"bufio"
	"io"

	"github.com/danmuck/bridgectl/internal/console"
)

// LineReader frames a byte stream into console buffers on CR or LF. Empty
// lines are skipped. A partial line survives a read error such as
// transport.ErrReadTimeout and resumes on the next call; only io.EOF ends it.
type LineReader struct {
	r        *bufio.Reader
	buf      console.Buffer
	n        int
	overflow bool
}

func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

// Next returns the next line. Lines longer than console.BufferSize are
// consumed and reported as console.ErrLineTooLong.
func (l *LineReader) Next() (console.Buffer, error) {
	for {
		c, err := l.r.ReadByte()
		if err != nil {
			if err == io.EOF && (l.n > 0 || l.overflow) {
				return l.take()
			}
			return console.Buffer{}, err
		}
		if c == '\r' || c == '\n' {
			if l.n == 0 && !l.overflow {
				continue
			}
			return l.take()
		}
		if l.n == len(l.buf) {
			l.overflow = true
			continue
		}
		l.buf[l.n] = c
		l.n++
	}
}

func (l *LineReader) take() (console.Buffer, error) {
	buf, overflow := l.buf, l.overflow
	l.buf, l.n, l.overflow = console.Buffer{}, 0, false
	if overflow {
		return console.Buffer{}, console.ErrLineTooLong
	}
	return buf, nil
}
