// Package sender implements the sending half of the channel: it
// serializes one value, splits the result into packets sharing a
// monotonically increasing frame id, and writes them to the transport.
package sender
