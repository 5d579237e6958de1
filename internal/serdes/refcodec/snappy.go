package refcodec

import (
	"github.com/golang/snappy"

	"github.com/danmuck/chanwire/internal/serdes"
)

// Snappy is a compression Transform built on github.com/golang/snappy,
// grounded on paypal-junodb/pkg/proto/payload.go's use of the same
// package to compress payload bytes before they hit the wire.
var Snappy Transform = snappyTransform{}

type snappyTransform struct{}

func (snappyTransform) Encode(b []byte) ([]byte, error) {
	return snappy.Encode(nil, b), nil
}

func (snappyTransform) Decode(b []byte) ([]byte, error) {
	out, err := snappy.Decode(nil, b)
	if err != nil {
		return nil, &serdes.SerdeError{Op: "snappy.Decode", Err: err}
	}
	return out, nil
}
