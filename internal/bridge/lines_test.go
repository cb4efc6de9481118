package bridge

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/danmuck/bridgectl/internal/console"
	"github.com/danmuck/bridgectl/internal/testutil/porttest"
	"github.com/danmuck/bridgectl/internal/transport"
)

func lineText(buf console.Buffer) string {
	return strings.TrimRight(string(buf[:]), "\x00")
}

func TestLineReaderFraming(t *testing.T) {
	r := NewLineReader(strings.NewReader("smi r 1\r\n\r\ngpio w 5\rspi r"))

	want := []string{"smi r 1", "gpio w 5", "spi r"}
	for _, w := range want {
		buf, err := r.Next()
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if got := lineText(buf); got != w {
			t.Fatalf("unexpected line: got %q want %q", got, w)
		}
	}
	if _, err := r.Next(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF, got %v", err)
	}
}

func TestLineReaderOverflow(t *testing.T) {
	exact := strings.Repeat("a", console.BufferSize)
	r := NewLineReader(strings.NewReader(exact + "\n" + exact + "b\nok\n"))

	buf, err := r.Next()
	if err != nil || lineText(buf) != exact {
		t.Fatalf("a full buffer line should pass, err=%v", err)
	}
	if _, err := r.Next(); !errors.Is(err, console.ErrLineTooLong) {
		t.Fatalf("expected ErrLineTooLong, got %v", err)
	}
	buf, err = r.Next()
	if err != nil || lineText(buf) != "ok" {
		t.Fatalf("reader should resync after overflow, got %q err=%v", lineText(buf), err)
	}
}

func TestLineReaderResumesAfterReadTimeout(t *testing.T) {
	r := NewLineReader(porttest.NewScript(
		porttest.Data("cfg w"),
		porttest.Fail(transport.ErrReadTimeout),
		porttest.Data(" 7 9\n"),
	))

	if _, err := r.Next(); !errors.Is(err, transport.ErrReadTimeout) {
		t.Fatalf("expected ErrReadTimeout, got %v", err)
	}
	buf, err := r.Next()
	if err != nil || lineText(buf) != "cfg w 7 9" {
		t.Fatalf("partial line lost across timeout: %q err=%v", lineText(buf), err)
	}
	if _, err := r.Next(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF, got %v", err)
	}
}
