package command

import (
	"fmt"
	"iter"
	"strings"
)

// MaxTokens bounds a command line: interface, operation and four payload words.
const MaxTokens = 6

// Tokens is the whitespace-split view of one command line. All may be ranged
// any number of times and yields the same tokens each time.
type Tokens struct {
	text  string
	count int
}

// Tokenize truncates text at the first zero byte and counts its
// whitespace-delimited tokens.
func Tokenize(text string) (Tokens, error) {
	if i := strings.IndexByte(text, 0); i >= 0 {
		text = text[:i]
	}
	count := 0
	for range strings.FieldsSeq(text) {
		count++
		if count > MaxTokens {
			return Tokens{}, fmt.Errorf("%w: more than %d tokens", ErrTooManyArguments, MaxTokens)
		}
	}
	return Tokens{text: text, count: count}, nil
}

// Len is the number of tokens.
func (t Tokens) Len() int {
	return t.count
}

// All yields the tokens in order. It may be ranged more than once.
func (t Tokens) All() iter.Seq[string] {
	return strings.FieldsSeq(t.text)
}
