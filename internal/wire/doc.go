// Package wire owns the wire protocol contract: header layout, the
// Internet Checksum, and packet-size constants.
//
// Ownership boundary:
// - header encode/decode and validation
// - checksum algorithm
// - packet/frame size constants and flags
package wire
