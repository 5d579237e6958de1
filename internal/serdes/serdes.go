package serdes

import (
	"errors"
	"fmt"
)

// Serializer produces an owned, contiguous byte sequence from a value of
// type T. It may fail with a SerdeError.
type Serializer[T any] interface {
	Serialize(v T) ([]byte, error)
}

// Deserializer produces a value of type T from a contiguous byte sequence.
// It may fail with a SerdeError.
type Deserializer[T any] interface {
	Deserialize(b []byte) (T, error)
}

// Codec bundles a Serializer and Deserializer for the same type, the shape
// internal/channel wants to hand a sender/receiver pair.
type Codec[T any] interface {
	Serializer[T]
	Deserializer[T]
}

// SerializerFunc adapts a plain function to a Serializer.
type SerializerFunc[T any] func(T) ([]byte, error)

func (f SerializerFunc[T]) Serialize(v T) ([]byte, error) { return f(v) }

// DeserializerFunc adapts a plain function to a Deserializer.
type DeserializerFunc[T any] func([]byte) (T, error)

func (f DeserializerFunc[T]) Deserialize(b []byte) (T, error) { return f(b) }

// funcCodec composes independent serialize/deserialize functions into a Codec.
type funcCodec[T any] struct {
	SerializerFunc[T]
	DeserializerFunc[T]
}

// NewCodec composes a Serializer and Deserializer into a single Codec.
func NewCodec[T any](ser func(T) ([]byte, error), de func([]byte) (T, error)) Codec[T] {
	return funcCodec[T]{SerializerFunc[T](ser), DeserializerFunc[T](de)}
}

// SerdeError wraps an underlying encoder/decoder failure. The codec
// surfaces it verbatim as a non-fatal, non-poisoning error.
type SerdeError struct {
	Op  string
	Err error
}

func (e *SerdeError) Error() string {
	return fmt.Sprintf("serdes: %s: %v", e.Op, e.Err)
}

func (e *SerdeError) Unwrap() error { return e.Err }

// Wrap classifies err as a SerdeError tagged with op, unless it already is
// one (in which case it is returned unchanged so nested wrapping doesn't
// pile up across a chained refcodec.Transform).
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *SerdeError
	if errors.As(err, &se) {
		return err
	}
	return &SerdeError{Op: op, Err: err}
}
