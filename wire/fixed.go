package wire

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Fixed-width helpers. The scanner and splicer treat fixed32/fixed64 values
// as opaque byte spans and never byte-swap them; these functions exist so
// callers can build correctly ordered little-endian replacement values and
// read extracted ones.

// AppendFixed32 appends the 4-byte little-endian encoding of v to dst.
func AppendFixed32(dst []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(dst, v)
}

// AppendFixed64 appends the 8-byte little-endian encoding of v to dst.
func AppendFixed64(dst []byte, v uint64) []byte {
	return binary.LittleEndian.AppendUint64(dst, v)
}

// AppendFloat32 appends the wire representation of a float (fixed32) to dst.
func AppendFloat32(dst []byte, v float32) []byte {
	return AppendFixed32(dst, math.Float32bits(v))
}

// AppendFloat64 appends the wire representation of a double (fixed64) to dst.
func AppendFloat64(dst []byte, v float64) []byte {
	return AppendFixed64(dst, math.Float64bits(v))
}

// DecodeFixed32 decodes a 32-bit fixed-width value from the start of data.
func DecodeFixed32(data []byte) (uint32, error) {
	if len(data) < 4 {
		return 0, fmt.Errorf("%w: need 4 bytes, have %d", ErrTruncated, len(data))
	}
	return binary.LittleEndian.Uint32(data), nil
}

// DecodeFixed64 decodes a 64-bit fixed-width value from the start of data.
func DecodeFixed64(data []byte) (uint64, error) {
	if len(data) < 8 {
		return 0, fmt.Errorf("%w: need 8 bytes, have %d", ErrTruncated, len(data))
	}
	return binary.LittleEndian.Uint64(data), nil
}

// DecodeFloat32 decodes a 32-bit float from fixed32 data
func DecodeFloat32(data []byte) (float32, error) {
	v, err := DecodeFixed32(data)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// DecodeFloat64 decodes a 64-bit float from fixed64 data
func DecodeFloat64(data []byte) (float64, error) {
	v, err := DecodeFixed64(data)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}
