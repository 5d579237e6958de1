// Package receiver implements the receiving half of the channel: it reads
// packets from the transport, validates each, checks its frame id against
// the expected next value, accumulates payloads until a terminal packet,
// and invokes the deserializer on the concatenation.
package receiver
