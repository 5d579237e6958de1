package receiver

import (
	"errors"
	"io"
	"sync/atomic"

	"github.com/danmuck/chanwire/internal/serdes"
	"github.com/danmuck/chanwire/internal/stats"
	"github.com/danmuck/chanwire/internal/wire"
	"github.com/danmuck/chanwire/internal/wireio"
)

// DefaultMaxPayload bounds the total accumulated payload of a single frame
// when no WithMaxPayload option overrides it.
const DefaultMaxPayload = 64 << 20 // 64 MiB

// Receiver is the receiving half of a channel, generic over the value type
// T. Once a fatal error latches, every subsequent Recv call returns it
// immediately without touching the transport again ("sticky poisoning").
type Receiver[T any] struct {
	de         serdes.Deserializer[T]
	step       wireio.ReadStepper
	maxPayload int
	hook       stats.Hook

	expectedID uint8
	inFlight   atomic.Bool
	poisoned   atomic.Pointer[error]
}

// Option configures a Receiver at construction time.
type Option[T any] func(*Receiver[T])

// WithHook attaches a stats.Hook notified after every delivered frame and
// the moment the Receiver poisons.
func WithHook[T any](h stats.Hook) Option[T] {
	return func(r *Receiver[T]) { r.hook = h }
}

// WithStartID sets the initially expected frame id, overriding the default
// of 0. Pairs with a Sender constructed via sender.WithStartID.
func WithStartID[T any](id uint8) Option[T] {
	return func(r *Receiver[T]) { r.expectedID = id }
}

// WithMaxPayload overrides the maximum total accumulated payload size a
// single frame may carry before Recv fails with ErrPayloadTooLarge. n <= 0
// disables the cap.
func WithMaxPayload[T any](n int) Option[T] {
	return func(r *Receiver[T]) { r.maxPayload = n }
}

// New returns a Receiver driven over a synchronous, blocking Reader.
func New[T any](rd wireio.Reader, de serdes.Deserializer[T], opts ...Option[T]) *Receiver[T] {
	return newReceiver(wireio.NewBlockingReadStepper(rd), de, opts...)
}

// NewCooperative returns a Receiver driven over a cooperative AsyncReader.
func NewCooperative[T any](rd wireio.AsyncReader, de serdes.Deserializer[T], yield wireio.Yield, opts ...Option[T]) *Receiver[T] {
	return newReceiver(wireio.NewCooperativeReadStepper(rd, yield), de, opts...)
}

func newReceiver[T any](step wireio.ReadStepper, de serdes.Deserializer[T], opts ...Option[T]) *Receiver[T] {
	r := &Receiver[T]{
		de:         de,
		step:       step,
		maxPayload: DefaultMaxPayload,
		hook:       stats.NopHook{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ExpectedID returns the frame id the next Recv call requires of the first
// packet it reads.
func (r *Receiver[T]) ExpectedID() uint8 { return r.expectedID }

func (r *Receiver[T]) poison(err error) error {
	boxed := err
	if r.poisoned.CompareAndSwap(nil, &boxed) {
		r.hook.Poisoned(err)
	}
	return err
}

// promoteEOF turns a bare io.EOF into io.ErrUnexpectedEOF unless graceful is
// true. ReadExact/ReadExactAsync already distinguish "EOF at the very start
// of this read" from "EOF mid-read" within a single call; this closes the
// remaining gap, where a fresh read call starts a continuation packet (or a
// payload) partway through an in-progress frame, and any end-of-stream
// there is always unexpected regardless of that call's own internal cursor.
func promoteEOF(err error, graceful bool) error {
	if err == nil || !errors.Is(err, io.EOF) {
		return err
	}
	if graceful {
		return io.EOF
	}
	return io.ErrUnexpectedEOF
}

// Recv reads one frame — one or more packets sharing a single id — off the
// transport, validates and accumulates their payloads, and deserializes the
// result.
func (r *Receiver[T]) Recv() (T, error) {
	var zero T

	if p := r.poisoned.Load(); p != nil {
		return zero, *p
	}
	if !r.inFlight.CompareAndSwap(false, true) {
		return zero, ErrConcurrentRecv
	}
	defer r.inFlight.Store(false)

	header := make([]byte, wire.HeaderSize)
	acc := wireio.NewWriteBuffer(0)

	var frameID uint8
	packets := 0
	firstRead := true

	for {
		err := promoteEOF(wireio.Wrap(r.step.ReadExact(header)), firstRead)
		if err != nil {
			if firstRead && errors.Is(err, io.EOF) {
				return zero, io.EOF
			}
			return zero, r.poison(err)
		}
		firstRead = false

		h, err := wire.DecodeHeader(header)
		if err != nil {
			return zero, r.poison(err)
		}

		if packets == 0 {
			frameID = h.ID
			if h.ID != r.expectedID {
				return zero, r.poison(&OutOfOrderError{Expected: r.expectedID, Got: h.ID})
			}
		} else if h.ID != frameID {
			return zero, r.poison(&OutOfOrderError{Expected: frameID, Got: h.ID})
		}

		payloadLen := h.PayloadLen()
		if r.maxPayload > 0 && acc.Len()+payloadLen > r.maxPayload {
			return zero, r.poison(ErrPayloadTooLarge)
		}

		if payloadLen > 0 {
			chunk := make([]byte, payloadLen)
			if err := promoteEOF(wireio.Wrap(r.step.ReadExact(chunk)), false); err != nil {
				return zero, r.poison(err)
			}
			acc.Write(chunk)
		}
		packets++

		if !h.MoreData() {
			break
		}
	}

	r.expectedID = frameID + 1
	r.hook.FrameReceived(frameID, packets, acc.Len())

	v, err := r.de.Deserialize(acc.Bytes())
	if err != nil {
		return zero, serdes.Wrap("Deserialize", err)
	}
	return v, nil
}
