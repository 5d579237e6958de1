package sender

import (
	"sync/atomic"

	"github.com/danmuck/chanwire/internal/serdes"
	"github.com/danmuck/chanwire/internal/stats"
	"github.com/danmuck/chanwire/internal/wire"
	"github.com/danmuck/chanwire/internal/wireio"
)

// Sender is the sending half of a channel, generic over the value type T.
// It owns a monotonic frame id counter, the serializer, and the transport;
// it shares no mutable state with a Receiver of the same pair.
type Sender[T any] struct {
	ser     serdes.Serializer[T]
	step    wireio.WriteStepper
	version uint16
	hook    stats.Hook

	nextID   uint8
	inFlight atomic.Bool
}

// Option configures a Sender at construction time.
type Option[T any] func(*Sender[T])

// WithVersion overrides the protocol version this Sender writes into every
// header, for interoperability testing against other protocol versions.
func WithVersion[T any](v uint16) Option[T] {
	return func(s *Sender[T]) { s.version = v }
}

// WithHook attaches a stats.Hook notified after every successfully sent frame.
func WithHook[T any](h stats.Hook) Option[T] {
	return func(s *Sender[T]) { s.hook = h }
}

// WithStartID sets the initial frame id, overriding the default of 0.
func WithStartID[T any](id uint8) Option[T] {
	return func(s *Sender[T]) { s.nextID = id }
}

// New returns a Sender driven over a synchronous, blocking Writer.
func New[T any](w wireio.Writer, ser serdes.Serializer[T], opts ...Option[T]) *Sender[T] {
	return newSender(wireio.NewBlockingWriteStepper(w), ser, opts...)
}

// NewCooperative returns a Sender driven over a cooperative AsyncWriter.
// yield is invoked whenever the transport reports "not ready"; the state
// machine is otherwise identical to the blocking Sender.
func NewCooperative[T any](w wireio.AsyncWriter, ser serdes.Serializer[T], yield wireio.Yield, opts ...Option[T]) *Sender[T] {
	return newSender(wireio.NewCooperativeWriteStepper(w, yield), ser, opts...)
}

func newSender[T any](step wireio.WriteStepper, ser serdes.Serializer[T], opts ...Option[T]) *Sender[T] {
	s := &Sender[T]{
		ser:     ser,
		step:    step,
		version: wire.ProtocolVersion,
		hook:    stats.NopHook{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NextID returns the frame id the next Send call will use.
func (s *Sender[T]) NextID() uint8 { return s.nextID }

// Send serializes v, splits the result into one or more packets sharing a
// single frame id, and writes each with WriteAll.
//
// On success next_id advances by one, mod 256. On any I/O failure mid-frame,
// next_id is left untouched so the next Send reuses the same id: the peer
// either saw a partial frame and will error out, or saw nothing at all, and
// this Sender's notion of "next id" never diverges from the last frame it
// actually completed. Serialization failures never touch the transport or
// next_id.
func (s *Sender[T]) Send(v T) error {
	if !s.inFlight.CompareAndSwap(false, true) {
		return ErrConcurrentSend
	}
	defer s.inFlight.Store(false)

	payload, err := s.ser.Serialize(v)
	if err != nil {
		return serdes.Wrap("Serialize", err)
	}

	id := s.nextID
	n := wire.ChunkCount(len(payload))

	for i := 0; i < n; i++ {
		start, end := wire.ChunkBounds(len(payload), i)
		chunk := payload[start:end]

		flags := uint8(0)
		if i < n-1 {
			flags = wire.FlagMoreData
		}

		header := wire.Header{
			Version: s.version,
			Length:  wire.HeaderSize + uint16(len(chunk)),
			Flags:   flags,
			ID:      id,
		}

		packet := make([]byte, 0, int(header.Length))
		packet = append(packet, wire.EncodeHeader(header)...)
		packet = append(packet, chunk...)

		if err := s.step.WriteAll(packet); err != nil {
			return wireio.Wrap(err)
		}
	}

	s.nextID = id + 1 // uint8 wraps mod 256; adjacency, not identity, is what matters
	s.hook.FrameSent(id, n, len(payload))
	return nil
}
