package command

import "errors"

var (
	ErrTooManyArguments   = errors.New("command: too many arguments")
	ErrInvalidInterface   = errors.New("command: invalid interface")
	ErrInvalidOperation   = errors.New("command: invalid operation")
	ErrNotHexOrDecimal    = errors.New("command: not a hex or decimal string")
	ErrInvalidDecimalChar = errors.New("command: invalid decimal character")
	ErrInvalidHexChar     = errors.New("command: invalid hex character")
	ErrNumberTooLarge     = errors.New("command: number too large")
)
