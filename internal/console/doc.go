// Package console owns the operator-facing command entry point.
//
// Ownership boundary:
// - fixed 64-byte line buffers
//
// - "menu" alias and banner
//
// - operator error text
//
// Per-line flow:
//   - Start -> Normalized -> Tokenized -> InterfaceMatched -> OperationMatched
//     -> PayloadFilled -> DraftComplete, or Rejected(reason) from any step.
//
// - nothing carries over between lines.
package console
