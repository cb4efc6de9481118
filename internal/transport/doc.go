// Package transport owns the host-facing byte link.
//
// Ownership boundary:
// - Port contract (read, write, flush)
//
// - zero-padded buffer writer with blocking/non-blocking modes
//
// - serial device and process stdio ports
package transport
