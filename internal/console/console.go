package console

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/danmuck/bridgectl/internal/command"
	"github.com/danmuck/bridgectl/internal/host"
	"github.com/danmuck/bridgectl/internal/transport"
	"github.com/rs/zerolog"
)

// BufferSize is the fixed size of one operator input line.
const BufferSize = 64

// LineBreak terminates every line sent to the operator.
const LineBreak = "\n\r"

const menuAlias = "menu"

var (
	ErrInvalidEncoding = errors.New("console: invalid utf-8 input")
	ErrLineTooLong     = errors.New("console: line too long")
)

// Buffer is one zero-padded operator input line.
type Buffer [BufferSize]byte

// LoadLine copies line into a zero-padded Buffer.
func LoadLine(line string) (Buffer, error) {
	var buf Buffer
	if len(line) > BufferSize {
		return buf, fmt.Errorf("%w: %d bytes", ErrLineTooLong, len(line))
	}
	copy(buf[:], line)
	return buf, nil
}

// Decode interprets buf without touching any transport. It reports menu=true
// with a nil request for the menu alias; otherwise it returns either a draft
// request or an error, never both.
func Decode(buf *Buffer) (req *host.Request, menu bool, err error) {
	if !utf8.Valid(buf[:]) {
		return nil, false, ErrInvalidEncoding
	}
	text := string(buf[:])
	if strings.Contains(text, menuAlias) {
		return nil, true, nil
	}
	req, err = command.Parse(text)
	if err != nil {
		return nil, false, err
	}
	return req, false, nil
}

// Console is the serial command entry point.
type Console struct {
	out *transport.Writer
	log zerolog.Logger
}

func New(out *transport.Writer, logger zerolog.Logger) *Console {
	return &Console{out: out, log: logger}
}

// Handle interprets one line. The menu alias prints the banner and returns a
// nil request with a nil error.
func (c *Console) Handle(buf *Buffer) (*host.Request, error) {
	c.out.SendString(LineBreak)

	req, menu, err := Decode(buf)
	if err != nil {
		c.log.Debug().Err(err).Msg("console line rejected")
		return nil, err
	}
	if menu {
		c.PrintMenu()
		return nil, nil
	}
	return req, nil
}

func (c *Console) PrintMenu() {
	c.out.SendBlocking(Menu)
}

// Reply writes the operator text for err.
func (c *Console) Reply(err error) {
	c.out.SendString(OperatorText(err))
}

// Send writes one operator line.
func (c *Console) Send(line string) {
	c.out.SendString(line + LineBreak)
}

func (c *Console) Prompt() {
	c.out.SendString(Prompt)
}

// OperatorText renders err for display on the serial link.
func OperatorText(err error) string {
	return Reason(err) + LineBreak
}

// Reason is the operator text for err without the line break.
func Reason(err error) string {
	switch {
	case err == nil:
		return "Ok"
	case errors.Is(err, command.ErrTooManyArguments):
		return "Too many arguments"
	case errors.Is(err, command.ErrInvalidInterface):
		return "Invalid Interface"
	case errors.Is(err, command.ErrInvalidOperation):
		return "Invalid Operation"
	case errors.Is(err, command.ErrNotHexOrDecimal):
		return "Not a hex or decimal string"
	case errors.Is(err, command.ErrInvalidDecimalChar):
		return "Invalid decimal character"
	case errors.Is(err, command.ErrInvalidHexChar):
		return "Invalid hex character"
	case errors.Is(err, command.ErrNumberTooLarge):
		return "Integer number too large!"
	case errors.Is(err, ErrInvalidEncoding):
		return "Invalid input encoding"
	case errors.Is(err, ErrLineTooLong):
		return "Line too long"
	default:
		return "Error: " + err.Error()
	}
}

// ReasonLabel is a stable metrics label for err.
func ReasonLabel(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, command.ErrTooManyArguments):
		return "too_many_arguments"
	case errors.Is(err, command.ErrInvalidInterface):
		return "invalid_interface"
	case errors.Is(err, command.ErrInvalidOperation):
		return "invalid_operation"
	case errors.Is(err, command.ErrNotHexOrDecimal):
		return "not_hex_or_decimal"
	case errors.Is(err, command.ErrInvalidDecimalChar):
		return "invalid_decimal_char"
	case errors.Is(err, command.ErrInvalidHexChar):
		return "invalid_hex_char"
	case errors.Is(err, command.ErrNumberTooLarge):
		return "number_too_large"
	case errors.Is(err, ErrInvalidEncoding):
		return "invalid_encoding"
	case errors.Is(err, ErrLineTooLong):
		return "line_too_long"
	default:
		return "other"
	}
}
