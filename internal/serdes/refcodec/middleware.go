package refcodec

import (
	"github.com/danmuck/chanwire/internal/serdes"
)

// Transform is a chainable bytes->bytes middleware, applied on top of a
// base Codec's serialized output.
type Transform interface {
	Encode(b []byte) ([]byte, error)
	Decode(b []byte) ([]byte, error)
}

// Chain wraps base with transforms, applied in order on Serialize and in
// reverse order on Deserialize.
func Chain[T any](base serdes.Codec[T], transforms ...Transform) serdes.Codec[T] {
	return chainedCodec[T]{base: base, transforms: transforms}
}

type chainedCodec[T any] struct {
	base       serdes.Codec[T]
	transforms []Transform
}

func (c chainedCodec[T]) Serialize(v T) ([]byte, error) {
	b, err := c.base.Serialize(v)
	if err != nil {
		return nil, err
	}
	for _, tr := range c.transforms {
		b, err = tr.Encode(b)
		if err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (c chainedCodec[T]) Deserialize(b []byte) (T, error) {
	var err error
	for i := len(c.transforms) - 1; i >= 0; i-- {
		b, err = c.transforms[i].Decode(b)
		if err != nil {
			var zero T
			return zero, err
		}
	}
	return c.base.Deserialize(b)
}
