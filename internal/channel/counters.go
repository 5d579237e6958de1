package channel

import "sync/atomic"

// Stats is a point-in-time snapshot of a Channel's traffic counters.
type Stats struct {
	FramesSent      uint64
	FramesReceived  uint64
	PacketsSent     uint64
	PacketsReceived uint64
	BytesSent       uint64
	BytesReceived   uint64
	Poisoned        uint64
}

// counters is a stats.Hook that accumulates atomic counters and forwards
// every call to an inner hook, so a caller can layer channel.Stats() on
// top of, say, promstats.Collector without picking one or the other.
type counters struct {
	framesSent      atomic.Uint64
	framesReceived  atomic.Uint64
	packetsSent     atomic.Uint64
	packetsReceived atomic.Uint64
	bytesSent       atomic.Uint64
	bytesReceived   atomic.Uint64
	poisoned        atomic.Uint64

	inner Hook
}

// Hook mirrors stats.Hook; channel keeps its own copy of the interface
// shape so this file doesn't have to import internal/stats just to embed
// it, matching how internal/sender and internal/receiver each take a
// stats.Hook without channel needing to re-export the type.
type Hook interface {
	FrameSent(id uint8, packets, bytes int)
	FrameReceived(id uint8, packets, bytes int)
	Poisoned(err error)
}

func newCounters(inner Hook) *counters {
	return &counters{inner: inner}
}

func (c *counters) FrameSent(id uint8, packets, bytes int) {
	c.framesSent.Add(1)
	c.packetsSent.Add(uint64(packets))
	c.bytesSent.Add(uint64(bytes))
	if c.inner != nil {
		c.inner.FrameSent(id, packets, bytes)
	}
}

func (c *counters) FrameReceived(id uint8, packets, bytes int) {
	c.framesReceived.Add(1)
	c.packetsReceived.Add(uint64(packets))
	c.bytesReceived.Add(uint64(bytes))
	if c.inner != nil {
		c.inner.FrameReceived(id, packets, bytes)
	}
}

func (c *counters) Poisoned(err error) {
	c.poisoned.Add(1)
	if c.inner != nil {
		c.inner.Poisoned(err)
	}
}

func (c *counters) snapshot() Stats {
	return Stats{
		FramesSent:      c.framesSent.Load(),
		FramesReceived:  c.framesReceived.Load(),
		PacketsSent:     c.packetsSent.Load(),
		PacketsReceived: c.packetsReceived.Load(),
		BytesSent:       c.bytesSent.Load(),
		BytesReceived:   c.bytesReceived.Load(),
		Poisoned:        c.poisoned.Load(),
	}
}
