// Package bridge owns the serial command service.
//
// Ownership boundary:
// - line framing over a transport.Port
//
// - sealing drafts and handing them to an Executor
//
// - operator replies and command metrics
//
// Only host.Valid requests reach an Executor. The hardware-facing executor
// lives behind that interface; Loopback stands in for it on a host.
package bridge
