package console

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/danmuck/bridgectl/internal/command"
	"github.com/danmuck/bridgectl/internal/host"
	"github.com/danmuck/bridgectl/internal/testutil/porttest"
	"github.com/danmuck/bridgectl/internal/testutil/testlog"
	"github.com/danmuck/bridgectl/internal/transport"
	"github.com/rs/zerolog"
)

func newConsole(t *testing.T) (*Console, *porttest.Port) {
	t.Helper()
	port := porttest.New("")
	return New(transport.NewWriter(port), zerolog.Nop()), port
}

func mustLoad(t *testing.T, line string) *Buffer {
	t.Helper()
	buf, err := LoadLine(line)
	if err != nil {
		t.Fatalf("load line %q: %v", line, err)
	}
	return &buf
}

func TestHandleScenarioRead(t *testing.T) {
	testlog.Start(t)
	c, port := newConsole(t)

	req, err := c.Handle(mustLoad(t, "smi r 0x10 0x20"))
	if err != nil {
		t.Fatalf("handle failed: %v", err)
	}
	v, err := req.Seal()
	if err != nil {
		t.Fatalf("seal failed: %v", err)
	}
	if v.Interface() != host.InterfaceSMI || v.Operation() != host.OperationRead {
		t.Fatalf("unexpected request: %s", v)
	}
	if v.Size() != 2 || v.Payload() != (host.Payload{16, 32, 0, 0}) {
		t.Fatalf("unexpected payload size=%d payload=%v", v.Size(), v.Payload())
	}
	if v.Channel() != host.ChannelSerial {
		t.Fatalf("unexpected channel: %s", v.Channel())
	}
	if got := port.Output(); got != LineBreak {
		t.Fatalf("only the line separator should be written, got %q", got)
	}
}

func TestHandleScenarioGPIOWrite(t *testing.T) {
	testlog.Start(t)
	c, _ := newConsole(t)

	req, err := c.Handle(mustLoad(t, "gpio w 5"))
	if err != nil {
		t.Fatalf("handle failed: %v", err)
	}
	if req.Interface() != host.InterfaceGPIO || req.Operation() != host.OperationWrite {
		t.Fatalf("unexpected match: %s %s", req.Interface(), req.Operation())
	}
	if req.Size() != 1 || req.Payload() != (host.Payload{5, 0, 0, 0}) {
		t.Fatalf("unexpected payload size=%d payload=%v", req.Size(), req.Payload())
	}
}

func TestHandleMenuAlias(t *testing.T) {
	testlog.Start(t)
	for _, line := range []string{"menu", "show menu please", "smi r menu"} {
		c, port := newConsole(t)
		req, err := c.Handle(mustLoad(t, line))
		if err != nil || req != nil {
			t.Fatalf("%q: expected handled without request, req=%v err=%v", line, req, err)
		}
		if !strings.HasSuffix(port.Output(), Menu) {
			t.Fatalf("%q: banner not written, got %q", line, port.Output())
		}
	}
}

func TestHandleMenuAliasIsCaseSensitive(t *testing.T) {
	testlog.Start(t)
	c, port := newConsole(t)
	if _, err := c.Handle(mustLoad(t, "MENU")); !errors.Is(err, command.ErrInvalidInterface) {
		t.Fatalf("expected ErrInvalidInterface, got %v", err)
	}
	if strings.Contains(port.Output(), Menu) {
		t.Fatalf("banner should not be written for MENU")
	}
}

func TestHandleRejectionsReturnNoDraft(t *testing.T) {
	testlog.Start(t)
	cases := []struct {
		line string
		err  error
		text string
	}{
		{line: "smi x 1", err: command.ErrInvalidOperation, text: "Invalid Operation\n\r"},
		{line: "smi r 99999999999", err: command.ErrNumberTooLarge, text: "Integer number too large!\n\r"},
		{line: "uart r", err: command.ErrInvalidInterface, text: "Invalid Interface\n\r"},
		{line: "smi r 1 2 3 4 5", err: command.ErrTooManyArguments, text: "Too many arguments\n\r"},
		{line: "smi r q", err: command.ErrNotHexOrDecimal, text: "Not a hex or decimal string\n\r"},
		{line: "smi r 1q", err: command.ErrInvalidDecimalChar, text: "Invalid decimal character\n\r"},
		{line: "smi r 0xq", err: command.ErrInvalidHexChar, text: "Invalid hex character\n\r"},
	}
	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			c, port := newConsole(t)
			req, err := c.Handle(mustLoad(t, tc.line))
			if !errors.Is(err, tc.err) {
				t.Fatalf("expected %v, got %v", tc.err, err)
			}
			if req != nil {
				t.Fatalf("no draft should be exposed, got %+v", req)
			}
			if got := OperatorText(err); got != tc.text {
				t.Fatalf("unexpected operator text: %q", got)
			}

			port.Reset()
			c.Reply(err)
			if got := port.Output(); got != tc.text {
				t.Fatalf("unexpected reply: %q", got)
			}
		})
	}
}

func TestDecodeRejectsInvalidUTF8(t *testing.T) {
	var buf Buffer
	copy(buf[:], []byte{'s', 'm', 'i', ' ', 0xff, 0xfe})
	req, menu, err := Decode(&buf)
	if !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("expected ErrInvalidEncoding, got %v", err)
	}
	if req != nil || menu {
		t.Fatalf("unexpected outcome req=%v menu=%v", req, menu)
	}
	if OperatorText(err) != "Invalid input encoding\n\r" {
		t.Fatalf("unexpected operator text: %q", OperatorText(err))
	}
}

func TestDecodeIsStateless(t *testing.T) {
	buf := mustLoad(t, "jtag q")
	for range 3 {
		if _, _, err := Decode(buf); !errors.Is(err, command.ErrInvalidOperation) {
			t.Fatalf("expected ErrInvalidOperation, got %v", err)
		}
	}
}

func TestLoadLineBounds(t *testing.T) {
	if _, err := LoadLine(strings.Repeat("a", BufferSize)); err != nil {
		t.Fatalf("a full buffer should load: %v", err)
	}
	if _, err := LoadLine(strings.Repeat("a", BufferSize+1)); !errors.Is(err, ErrLineTooLong) {
		t.Fatalf("expected ErrLineTooLong, got %v", err)
	}
}

func TestReasonLabels(t *testing.T) {
	if got := ReasonLabel(fmt.Errorf("wrap: %w", command.ErrInvalidHexChar)); got != "invalid_hex_char" {
		t.Fatalf("unexpected label: %q", got)
	}
	if got := ReasonLabel(errors.New("boom")); got != "other" {
		t.Fatalf("unexpected label: %q", got)
	}
	if got := Reason(errors.New("boom")); got != "Error: boom" {
		t.Fatalf("unexpected reason: %q", got)
	}
}
