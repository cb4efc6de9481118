// Package command owns the operator command grammar.
//
// Ownership boundary:
// - whitespace tokenizer
//
// - interface/operation keyword matching
//
// - decimal and 0x-hex numeric literals
//
// Grammar:
//
//	<interface> <op> [word1] [word2] [word3] [word4]
//
// interface is one of smi, cfg, gpio, jtag, spi and op is one of r, w, smiset,
// both case-insensitive. Words are decimal or 0x-prefixed hex literals.
package command
