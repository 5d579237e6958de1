// Package wireio owns the I/O abstraction layer the codecs are built on.
//
// Ownership boundary:
// - synchronous and cooperative read/write contracts
// - read_exact/write_all suspension points
// - buffer primitives (ReadBuffer, WriteBuffer)
package wireio
