// Package wiresplice reads, locates, and replaces individual fields inside
// already-encoded protobuf messages without decoding them. Every operation
// works on field numbers, wire types, and raw byte spans only; it never knows
// field names or message schemas — pair it with a schema-aware library when
// typed decoding is needed.
//
// Nested fields are reached by reapplication, not recursion: extract the
// value span of an embedded message, run the same operations on that span,
// then rebuild the outer header and splice the edited span back in.
package wiresplice

import (
	"github.com/wiresplice/wiresplice/wire"
)

// WireType identifies how a field's value is encoded on the wire.
type WireType = wire.WireType

const (
	WireVarint  = wire.WireVarint
	WireFixed64 = wire.WireFixed64
	WireBytes   = wire.WireBytes
	WireFixed32 = wire.WireFixed32
)

// RawField is a located field: observed field number, wire type, and value
// span.
type RawField = wire.RawField

// DecodeVarint decodes a varint from the start of data, returning the value
// and the number of bytes consumed.
func DecodeVarint(data []byte) (uint64, int, error) {
	return wire.DecodeVarint(data)
}

// EncodeVarint returns the minimal varint encoding of v.
func EncodeVarint(v uint64) []byte {
	return wire.EncodeVarint(v)
}

// SkipField returns the offset of the field following the one whose header
// starts at offset.
func SkipField(msg []byte, offset int) (int, error) {
	return wire.SkipField(msg, offset)
}

// ExtractFieldByTag returns the value bytes of the first field in msg with
// the given field number. The result aliases msg.
func ExtractFieldByTag(msg []byte, fieldNumber uint64) ([]byte, error) {
	return wire.ExtractFieldByTag(msg, wire.FieldNumber(fieldNumber))
}

// ExtractFieldsByTags returns every field in msg whose number appears in
// fieldNumbers, in buffer order.
func ExtractFieldsByTags(msg []byte, fieldNumbers []uint64) ([]RawField, error) {
	fields := make([]wire.FieldNumber, len(fieldNumbers))
	for i, n := range fieldNumbers {
		fields[i] = wire.FieldNumber(n)
	}
	return wire.ExtractFieldsByTags(msg, fields)
}

// CreateHeader builds the header bytes to prepend to value when constructing
// a replacement field: the tag varint, plus the length varint for WireBytes.
func CreateHeader(fieldNumber uint64, wt WireType, value []byte) ([]byte, error) {
	return wire.CreateHeader(wire.FieldNumber(fieldNumber), wt, value)
}

// ReplaceFieldWith splices replacement — a fully formed encoded field — over
// the first field in msg with the given field number. It returns the updated
// buffer and the removed field's value bytes; msg is left untouched.
func ReplaceFieldWith(msg []byte, fieldNumber uint64, replacement []byte) (updated []byte, old []byte, err error) {
	return wire.ReplaceFieldWith(msg, wire.FieldNumber(fieldNumber), replacement)
}
