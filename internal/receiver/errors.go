package receiver

import (
	"errors"
	"fmt"
)

// ErrConcurrentRecv is returned when Recv is called while a prior Recv on
// the same Receiver is still in flight.
var ErrConcurrentRecv = errors.New("receiver: concurrent Recv call")

// ErrPayloadTooLarge is returned, and poisons the Receiver, when a frame's
// accumulated payload would exceed the configured maximum.
var ErrPayloadTooLarge = errors.New("receiver: payload too large")

// OutOfOrderError reports a packet whose frame id did not match what the
// receiver expected: either the first packet of a new frame carrying an id
// other than the last delivered id + 1, or a continuation packet carrying a
// different id than the frame it claims to continue. It is fatal and
// poisons the Receiver.
type OutOfOrderError struct {
	Expected uint8
	Got      uint8
}

func (e *OutOfOrderError) Error() string {
	return fmt.Sprintf("receiver: out of order: expected id %d, got %d", e.Expected, e.Got)
}
