// Package refcodec holds reference Serializer/Deserializer implementations
// and chainable bytes->bytes middleware transforms (checksum, compression,
// authentication) layered over a base codec. None of this is part of the
// core protocol; internal/serdes never imports it.
package refcodec
