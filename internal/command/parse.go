package command

import (
	"fmt"
	"iter"
	"strings"

	"github.com/danmuck/bridgectl/internal/host"
)

var interfaceKeywords = map[string]host.Interface{
	"smi":  host.InterfaceSMI,
	"cfg":  host.InterfaceConfig,
	"gpio": host.InterfaceGPIO,
	"jtag": host.InterfaceJTAG,
	"spi":  host.InterfaceSPI,
}

var operationKeywords = map[string]host.Operation{
	"r":      host.OperationRead,
	"w":      host.OperationWrite,
	"smiset": host.OperationSMISet,
}

// MatchInterface resolves an interface keyword, ignoring case.
func MatchInterface(word string) (host.Interface, error) {
	if iface, ok := interfaceKeywords[strings.ToLower(word)]; ok {
		return iface, nil
	}
	return host.InterfaceUnset, fmt.Errorf("%w: %q", ErrInvalidInterface, word)
}

// MatchOperation resolves an operation keyword, ignoring case.
func MatchOperation(word string) (host.Operation, error) {
	if op, ok := operationKeywords[strings.ToLower(word)]; ok {
		return op, nil
	}
	return host.OperationUnset, fmt.Errorf("%w: %q", ErrInvalidOperation, word)
}

// Parse builds a draft serial request from one command line. No draft is
// returned alongside an error.
func Parse(text string) (*host.Request, error) {
	tokens, err := Tokenize(text)
	if err != nil {
		return nil, err
	}

	req := host.NewRequest()
	req.SetChannel(host.ChannelSerial)

	next, stop := iter.Pull(tokens.All())
	defer stop()

	word, _ := next()
	iface, err := MatchInterface(word)
	if err != nil {
		return nil, err
	}
	req.SetInterface(iface)

	word, _ = next()
	op, err := MatchOperation(word)
	if err != nil {
		return nil, err
	}
	req.SetOperation(op)

	words, err := parsePayload(next)
	if err != nil {
		return nil, err
	}
	if err := req.SetPayload(words); err != nil {
		return nil, err
	}
	return req, nil
}

func parsePayload(next func() (string, bool)) ([]uint32, error) {
	words := make([]uint32, 0, host.PayloadWords)
	for word, ok := next(); ok; word, ok = next() {
		v, err := ParseNumber(word)
		if err != nil {
			return nil, err
		}
		words = append(words, v)
	}
	return words, nil
}
