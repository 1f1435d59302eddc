package wire

import (
	"errors"
)

// MaxVarintLen is the maximum number of bytes in the varint encoding of a
// 64-bit value: ceil(64/7) = 10.
const MaxVarintLen = 10

// Varint encoding/decoding errors
var (
	ErrVarintOverflow = errors.New("varint overflows uint64")
	ErrVarintTooLong  = errors.New("varint exceeds 10 bytes")
	ErrUnexpectedEOF  = errors.New("unexpected EOF while reading varint")
)

// DecodeVarint decodes a varint from the start of data and returns the value
// together with the number of bytes consumed. The first byte holds the least
// significant 7 bits; a set high bit means more bytes follow.
//
// Returns ErrUnexpectedEOF if data ends before a terminating byte,
// ErrVarintTooLong if no terminating byte appears within MaxVarintLen bytes,
// and ErrVarintOverflow if the tenth byte carries bits above bit 63.
func DecodeVarint(data []byte) (uint64, int, error) {
	if len(data) == 0 {
		return 0, 0, ErrUnexpectedEOF
	}

	// Fast path for single-byte varints (values 0-127)
	if data[0] < 0x80 {
		return uint64(data[0]), 1, nil
	}

	var result uint64
	var shift uint

	for i := 0; i < MaxVarintLen; i++ {
		if i >= len(data) {
			return 0, 0, ErrUnexpectedEOF
		}

		b := data[i]
		if i == MaxVarintLen-1 {
			// The tenth byte can only contribute bit 63.
			if b&0x80 != 0 {
				return 0, 0, ErrVarintTooLong
			}
			if b > 1 {
				return 0, 0, ErrVarintOverflow
			}
		}

		result |= uint64(b&0x7F) << shift

		// If MSB is not set, we're done
		if b&0x80 == 0 {
			return result, i + 1, nil
		}

		shift += 7
	}

	return 0, 0, ErrVarintTooLong
}

// SkipVarint returns the encoded length of the varint at the start of data
// without materializing its value.
func SkipVarint(data []byte) (int, error) {
	for i := 0; i < len(data); i++ {
		if i >= MaxVarintLen {
			return 0, ErrVarintTooLong
		}
		if data[i]&0x80 == 0 {
			return i + 1, nil
		}
	}
	return 0, ErrUnexpectedEOF
}

// EncodeVarint returns the minimal varint encoding of v. Zero encodes to a
// single zero byte; no value produces a redundant continuation byte.
func EncodeVarint(v uint64) []byte {
	return AppendVarint(make([]byte, 0, VarintSize(v)), v)
}

// AppendVarint appends the varint encoding of v to dst and returns the
// extended buffer.
func AppendVarint(dst []byte, v uint64) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}
	return append(dst, byte(v))
}

// VarintSize returns the number of bytes needed to encode the given varint
func VarintSize(v uint64) int {
	switch {
	case v < 1<<7:
		return 1
	case v < 1<<14:
		return 2
	case v < 1<<21:
		return 3
	case v < 1<<28:
		return 4
	case v < 1<<35:
		return 5
	case v < 1<<42:
		return 6
	case v < 1<<49:
		return 7
	case v < 1<<56:
		return 8
	case v < 1<<63:
		return 9
	default:
		return 10
	}
}

// ZIGZAG UTILITIES
//
// The scanner and splicer never interpret varint payloads; these conversions
// exist for callers that construct or consume sint32/sint64 values.

// DecodeZigZag32 decodes a zigzag-encoded 32-bit integer
func DecodeZigZag32(encoded uint64) int32 {
	return int32((uint32(encoded) >> 1) ^ uint32(-int32(encoded&1)))
}

// DecodeZigZag64 decodes a zigzag-encoded 64-bit integer
func DecodeZigZag64(encoded uint64) int64 {
	return int64((encoded >> 1) ^ uint64(-int64(encoded&1)))
}

// EncodeZigZag32 encodes a signed 32-bit integer using zigzag encoding
func EncodeZigZag32(v int32) uint64 {
	return uint64((uint32(v) << 1) ^ uint32(v>>31))
}

// EncodeZigZag64 encodes a signed 64-bit integer using zigzag encoding
func EncodeZigZag64(v int64) uint64 {
	return uint64((v << 1) ^ (v >> 63))
}
