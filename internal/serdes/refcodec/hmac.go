package refcodec

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"

	"github.com/danmuck/chanwire/internal/serdes"
)

// NewHMAC returns an authentication Transform that appends and verifies an
// HMAC-SHA256 tag. crypto/hmac and crypto/sha256 are stdlib: cryptographic
// primitives are a system boundary where stdlib is the idiomatic choice,
// not a third-party MAC library (see DESIGN.md).
func NewHMAC(key []byte) Transform {
	return hmacTransform{key: key}
}

type hmacTransform struct{ key []byte }

func (h hmacTransform) Encode(b []byte) ([]byte, error) {
	mac := hmac.New(sha256.New, h.key)
	mac.Write(b)
	tag := mac.Sum(nil)
	out := make([]byte, 0, len(b)+len(tag))
	out = append(out, b...)
	out = append(out, tag...)
	return out, nil
}

func (h hmacTransform) Decode(b []byte) ([]byte, error) {
	const tagLen = sha256.Size
	if len(b) < tagLen {
		return nil, &serdes.SerdeError{Op: "hmac.Decode", Err: errors.New("payload too short for auth tag")}
	}
	payload, tag := b[:len(b)-tagLen], b[len(b)-tagLen:]
	mac := hmac.New(sha256.New, h.key)
	mac.Write(payload)
	want := mac.Sum(nil)
	if !hmac.Equal(tag, want) {
		return nil, &serdes.SerdeError{Op: "hmac.Decode", Err: errors.New("authentication failed")}
	}
	return payload, nil
}
