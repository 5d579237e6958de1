package refcodec

import (
	"bytes"
	"encoding/gob"

	"github.com/danmuck/chanwire/internal/serdes"
)

// Gob returns a schema-driven reference Codec built on encoding/gob. See
// DESIGN.md for why this stays stdlib; gob is the idiomatic choice for a
// Go-native binary encoding of arbitrary struct values without codegen.
func Gob[T any]() serdes.Codec[T] {
	return serdes.NewCodec(gobSerialize[T], gobDeserialize[T])
}

func gobSerialize[T any](v T) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, &serdes.SerdeError{Op: "gob.Encode", Err: err}
	}
	return buf.Bytes(), nil
}

func gobDeserialize[T any](b []byte) (T, error) {
	var v T
	if err := gob.NewDecoder(bytes.NewReader(b)).Decode(&v); err != nil {
		return v, &serdes.SerdeError{Op: "gob.Decode", Err: err}
	}
	return v, nil
}
