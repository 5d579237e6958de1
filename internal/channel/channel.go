package channel

import (
	"github.com/danmuck/chanwire/internal/receiver"
	"github.com/danmuck/chanwire/internal/sender"
	"github.com/danmuck/chanwire/internal/serdes"
	"github.com/danmuck/chanwire/internal/stats"
	"github.com/danmuck/chanwire/internal/wire"
	"github.com/danmuck/chanwire/internal/wireio"
)

// config collects the options a Channel is built from.
type config struct {
	version    uint16
	maxPayload int
	startID    uint8
	hook       Hook
}

// Option configures a Channel at construction time.
type Option func(*config)

// WithVersion overrides the protocol version the sending half writes into
// every header. The receiving half always validates incoming headers
// against wire.ProtocolVersion, so frames carrying any other version are
// rejected with a version mismatch.
func WithVersion(v uint16) Option { return func(c *config) { c.version = v } }

// WithMaxPayload overrides the receiving half's accumulated payload ceiling.
func WithMaxPayload(n int) Option { return func(c *config) { c.maxPayload = n } }

// WithStartID sets the frame id both halves start from.
func WithStartID(id uint8) Option { return func(c *config) { c.startID = id } }

// WithStatsHook layers an additional stats.Hook alongside the Channel's own
// counters; both are notified of every event.
func WithStatsHook(h Hook) Option { return func(c *config) { c.hook = h } }

func defaultConfig() config {
	return config{version: wire.ProtocolVersion, maxPayload: receiver.DefaultMaxPayload}
}

// ReadWriter is the blocking transport contract a synchronous Channel is
// built over. Any io.ReadWriter satisfies it.
type ReadWriter interface {
	wireio.Reader
	wireio.Writer
}

// AsyncReadWriter is the cooperative transport contract a Channel built
// with NewCooperative is driven over.
type AsyncReadWriter interface {
	wireio.AsyncReader
	wireio.AsyncWriter
}

// Channel bundles a Sender and Receiver of type T sharing one transport,
// and the traffic counters recorded across both halves.
type Channel[T any] struct {
	tx *sender.Sender[T]
	rx *receiver.Receiver[T]
	c  *counters
}

// New builds a Channel over a blocking, synchronous transport.
func New[T any](rw ReadWriter, codec serdes.Codec[T], opts ...Option) *Channel[T] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	c := newCounters(cfg.hook)

	tx := sender.New[T](rw, codec,
		sender.WithVersion[T](cfg.version),
		sender.WithStartID[T](cfg.startID),
		sender.WithHook[T](c),
	)
	rx := receiver.New[T](rw, codec,
		receiver.WithStartID[T](cfg.startID),
		receiver.WithMaxPayload[T](cfg.maxPayload),
		receiver.WithHook[T](c),
	)
	return &Channel[T]{tx: tx, rx: rx, c: c}
}

// NewCooperative builds a Channel over a cooperative transport, sharing one
// yield callback between the send and receive directions.
func NewCooperative[T any](rw AsyncReadWriter, yield wireio.Yield, codec serdes.Codec[T], opts ...Option) *Channel[T] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	c := newCounters(cfg.hook)

	tx := sender.NewCooperative[T](rw, codec, yield,
		sender.WithVersion[T](cfg.version),
		sender.WithStartID[T](cfg.startID),
		sender.WithHook[T](c),
	)
	rx := receiver.NewCooperative[T](rw, codec, yield,
		receiver.WithStartID[T](cfg.startID),
		receiver.WithMaxPayload[T](cfg.maxPayload),
		receiver.WithHook[T](c),
	)
	return &Channel[T]{tx: tx, rx: rx, c: c}
}

// Send serializes and writes v as a single frame. See sender.Sender.Send.
func (ch *Channel[T]) Send(v T) error { return ch.tx.Send(v) }

// Recv reads and deserializes the next frame. See receiver.Receiver.Recv.
func (ch *Channel[T]) Recv() (T, error) { return ch.rx.Recv() }

// Stats returns a snapshot of this Channel's traffic counters.
func (ch *Channel[T]) Stats() Stats { return ch.c.snapshot() }

var _ stats.Hook = (*counters)(nil)
