package wire

import (
	"fmt"
)

// ReplaceFieldWith returns a copy of buf in which the first field with the
// given field number — header and value together — is replaced by
// replacement. All bytes before and after the removed span are preserved
// unchanged, and buf itself is never modified. The removed field's value
// bytes are returned alongside the updated buffer; they alias buf.
//
// The replacement must be a fully formed encoded field (header plus value,
// typically built with AppendHeader). The splicer performs no validation of
// it beyond locating the span it removes, so a malformed replacement yields
// a malformed output buffer.
//
// If buf holds several fields with the target number only the first is
// replaced. If it holds none, ErrFieldNotFound is returned.
//
// If buf is itself embedded as a length-delimited field inside a larger
// message, the enclosing length prefix is not updated here; re-splice the
// outer buffer with a rebuilt header to propagate the size change.
func ReplaceFieldWith(buf []byte, field FieldNumber, replacement []byte) (updated []byte, old []byte, err error) {
	s := NewScanner(buf)
	for s.Len() > 0 {
		start := s.Pos()

		fieldNumber, wireType, err := s.ReadHeader()
		if err != nil {
			return nil, nil, err
		}
		value, err := s.ReadValue(wireType)
		if err != nil {
			return nil, nil, err
		}
		if fieldNumber != field {
			continue
		}

		// Splice: bytes before the header, the replacement, bytes after the
		// value. The removed span may differ in length from the replacement,
		// so the result is always a fresh buffer.
		end := s.Pos()
		updated := make([]byte, 0, start+len(replacement)+len(buf)-end)
		updated = append(updated, buf[:start]...)
		updated = append(updated, replacement...)
		updated = append(updated, buf[end:]...)
		return updated, value, nil
	}
	return nil, nil, fmt.Errorf("field %d: %w", field, ErrFieldNotFound)
}
