package command

import (
	"fmt"
	"unicode/utf8"
)

const (
	// decimalCutoff is checked before each digit after the first is folded in.
	// It is conservative: values from 4_294_967_200 upward are rejected even
	// though some of them fit in 32 bits.
	decimalCutoff uint32 = 429_496_720

	maxHexDigits = 8
)

// ParseNumber decodes a decimal or 0x-prefixed hexadecimal token.
func ParseNumber(token string) (uint32, error) {
	if len(token) >= 2 && token[0] == '0' && token[1] == 'x' {
		return parseHex(token, token[2:])
	}
	if len(token) > 0 && isDecimal(token[0]) {
		return parseDecimal(token)
	}
	return 0, fmt.Errorf("%w: %q", ErrNotHexOrDecimal, token)
}

func parseDecimal(token string) (uint32, error) {
	result := uint32(token[0] - '0')
	for i := 1; i < len(token); i++ {
		c := token[i]
		if !isDecimal(c) {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDecimalChar, token)
		}
		if result >= decimalCutoff {
			return 0, fmt.Errorf("%w: %q", ErrNumberTooLarge, token)
		}
		result = result*10 + uint32(c-'0')
	}
	return result, nil
}

func parseHex(token, digits string) (uint32, error) {
	if utf8.RuneCountInString(digits) > maxHexDigits {
		return 0, fmt.Errorf("%w: %q", ErrNumberTooLarge, token)
	}
	var result uint32
	for i := 0; i < len(digits); i++ {
		v, ok := hexValue(digits[i])
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrInvalidHexChar, token)
		}
		result = result<<4 | v
	}
	return result, nil
}

func isDecimal(c byte) bool {
	return c >= '0' && c <= '9'
}

func hexValue(c byte) (uint32, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint32(c - '0'), true
	case c >= 'a' && c <= 'f':
		return uint32(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return uint32(c-'A') + 10, true
	}
	return 0, false
}
