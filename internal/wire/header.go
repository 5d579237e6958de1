package wire

import "encoding/binary"

// Wire-format constants.
const (
	// ProtocolVersion is the fixed protocol identifier this implementation
	// speaks. A mismatch on decode is fatal.
	ProtocolVersion uint16 = 0xFD3F

	// HeaderSize is the fixed header length in bytes.
	HeaderSize uint16 = 8

	// MaxPacketSize is the largest a single packet (header + payload) may be.
	MaxPacketSize uint16 = 65535

	// MaxPayloadSize is the largest payload a single packet may carry.
	MaxPayloadSize = int(MaxPacketSize) - int(HeaderSize)

	// FlagMoreData is bit 7 of the flags byte: the frame continues in the
	// next packet sharing the same id.
	FlagMoreData uint8 = 0x80

	// flagReservedMask covers bits 0-6, which must be zero.
	flagReservedMask uint8 = 0x7F
)

// Header is the fixed 8-byte structure preceding every packet.
type Header struct {
	Version  uint16
	Length   uint16
	Checksum uint16
	Flags    uint8
	ID       uint8
}

// MoreData reports whether the continuation flag is set.
func (h Header) MoreData() bool { return h.Flags&FlagMoreData != 0 }

// PayloadLen returns the number of payload bytes this header describes.
// The caller must have already validated h.Length >= HeaderSize.
func (h Header) PayloadLen() int { return int(h.Length) - int(HeaderSize) }

// EncodeHeader writes h into 8 bytes with a freshly computed checksum. The
// Checksum field of h is ignored; the returned bytes carry the correct one.
func EncodeHeader(h Header) []byte {
	buf := make([]byte, HeaderSize)
	binary.BigEndian.PutUint16(buf[0:2], h.Version)
	binary.BigEndian.PutUint16(buf[2:4], h.Length)
	buf[6] = h.Flags
	buf[7] = h.ID
	// buf[4:6] (checksum) stays zero while the checksum is computed.
	cs := InternetChecksum(buf)
	binary.BigEndian.PutUint16(buf[4:6], cs)
	return buf
}

// DecodeHeader parses and validates an 8-byte candidate header, following
// the failure order: checksum, then version, then length,
// then reserved flag bits.
func DecodeHeader(b []byte) (Header, error) {
	if len(b) != int(HeaderSize) {
		return Header{}, ErrInvalidLength
	}
	if !VerifyInternetChecksum(b) {
		return Header{}, ErrChecksumMismatch
	}

	version := binary.BigEndian.Uint16(b[0:2])
	if version != ProtocolVersion {
		return Header{}, &VersionMismatchError{Expected: ProtocolVersion, Got: version}
	}

	length := binary.BigEndian.Uint16(b[2:4])
	if length < HeaderSize {
		return Header{}, ErrInvalidLength
	}

	flags := b[6]
	if flags&flagReservedMask != 0 {
		return Header{}, ErrInvalidFlags
	}

	return Header{
		Version:  version,
		Length:   length,
		Checksum: binary.BigEndian.Uint16(b[4:6]),
		Flags:    flags,
		ID:       b[7],
	}, nil
}
