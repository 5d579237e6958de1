package refcodec

import (
	"encoding/json"

	"github.com/danmuck/chanwire/internal/serdes"
)

// JSON returns a reference Codec built on encoding/json. See DESIGN.md for
// why this stays stdlib rather than a third-party JSON library.
func JSON[T any]() serdes.Codec[T] {
	return serdes.NewCodec(jsonSerialize[T], jsonDeserialize[T])
}

func jsonSerialize[T any](v T) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, &serdes.SerdeError{Op: "json.Marshal", Err: err}
	}
	return b, nil
}

func jsonDeserialize[T any](b []byte) (T, error) {
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return v, &serdes.SerdeError{Op: "json.Unmarshal", Err: err}
	}
	return v, nil
}
