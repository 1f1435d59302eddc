package wire

import (
	"fmt"
)

// CreateHeader builds the header bytes for a field: the tag varint, followed
// by the length varint when the wire type is WireBytes. The value itself is
// not copied; it is consulted only for its length, and only for WireBytes.
// For the other wire types the caller must supply a value already sized per
// the wire type (a well-formed varint, 8 bytes, or 4 bytes) — the builder
// does not verify that sizing.
func CreateHeader(field FieldNumber, wt WireType, value []byte) ([]byte, error) {
	return AppendHeader(nil, field, wt, value)
}

// AppendHeader appends the header bytes for a field to dst and returns the
// extended buffer. See CreateHeader.
func AppendHeader(dst []byte, field FieldNumber, wt WireType, value []byte) ([]byte, error) {
	if field == 0 {
		return nil, fmt.Errorf("%w: 0", ErrInvalidFieldNumber)
	}
	if !wt.Valid() {
		return nil, fmt.Errorf("%w %d", ErrInvalidWireType, wt)
	}

	dst = AppendVarint(dst, uint64(MakeTag(field, wt)))
	if wt == WireBytes {
		dst = AppendVarint(dst, uint64(len(value)))
	}
	return dst, nil
}
