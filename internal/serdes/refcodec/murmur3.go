package refcodec

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/spaolacci/murmur3"

	"github.com/danmuck/chanwire/internal/serdes"
)

// Murmur3Checksum is a payload-level integrity Transform, distinct from
// the packet header's Internet Checksum: it appends a 4-byte murmur3 hash
// trailer to the serialized value and verifies it on decode. Grounded on
// paypal-junodb/pkg/util/util.go's Murmur3Hash helper.
var Murmur3Checksum Transform = murmur3ChecksumTransform{}

type murmur3ChecksumTransform struct{}

func (murmur3ChecksumTransform) Encode(b []byte) ([]byte, error) {
	sum := murmur3.Sum32(b)
	out := make([]byte, len(b)+4)
	copy(out, b)
	binary.BigEndian.PutUint32(out[len(b):], sum)
	return out, nil
}

func (murmur3ChecksumTransform) Decode(b []byte) ([]byte, error) {
	if len(b) < 4 {
		return nil, &serdes.SerdeError{Op: "murmur3.Decode", Err: errors.New("payload too short for checksum trailer")}
	}
	payload := b[:len(b)-4]
	want := binary.BigEndian.Uint32(b[len(b)-4:])
	got := murmur3.Sum32(payload)
	if got != want {
		return nil, &serdes.SerdeError{Op: "murmur3.Decode", Err: fmt.Errorf("checksum mismatch: got %#x want %#x", got, want)}
	}
	return payload, nil
}
