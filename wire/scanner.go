package wire

import (
	"fmt"
)

// Scanner walks the fields of an encoded message left to right. Unmatched
// fields are skipped by their wire-type-implied length, never decoded, so the
// cost of a scan grows with the number of headers examined rather than the
// payload size of the fields passed over. The buffer is never modified and
// every returned span aliases it.
type Scanner struct {
	buf []byte
	pos int
}

// NewScanner creates a scanner positioned at the start of data
func NewScanner(data []byte) *Scanner {
	return &Scanner{buf: data}
}

// Pos returns the current byte offset into the buffer.
func (s *Scanner) Pos() int {
	return s.pos
}

// Len returns the number of bytes left to scan.
func (s *Scanner) Len() int {
	return len(s.buf) - s.pos
}

// ReadHeader decodes the field header at the current position and advances
// past it. It fails on a malformed tag varint, a wire-type code outside the
// four valid codes, or a field number of 0.
func (s *Scanner) ReadHeader() (FieldNumber, WireType, error) {
	tag, n, err := DecodeVarint(s.buf[s.pos:])
	if err != nil {
		return 0, 0, fmt.Errorf("failed to decode field header: %w", err)
	}

	fieldNumber, wireType := ParseTag(Tag(tag))
	if !wireType.Valid() {
		return 0, 0, fmt.Errorf("field %d: %w %d", fieldNumber, ErrInvalidWireType, wireType)
	}
	if fieldNumber == 0 {
		return 0, 0, fmt.Errorf("%w: field header with number 0", ErrInvalidFieldNumber)
	}

	s.pos += n
	return fieldNumber, wireType, nil
}

// ReadValue returns the value-only span for a field of the given wire type
// and advances past it. For WireBytes the returned span is the payload after
// the length prefix; for WireVarint it is the raw varint bytes. The span
// shares the scanner's backing array.
func (s *Scanner) ReadValue(wt WireType) ([]byte, error) {
	switch wt {
	case WireVarint:
		n, err := SkipVarint(s.buf[s.pos:])
		if err != nil {
			return nil, err
		}
		value := s.buf[s.pos : s.pos+n]
		s.pos += n
		return value, nil

	case WireFixed64:
		return s.readFixed(8)

	case WireFixed32:
		return s.readFixed(4)

	case WireBytes:
		length, n, err := DecodeVarint(s.buf[s.pos:])
		if err != nil {
			return nil, fmt.Errorf("failed to decode length prefix: %w", err)
		}
		start := s.pos + n
		if length > uint64(len(s.buf)-start) {
			return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrTruncated, length, len(s.buf)-start)
		}
		value := s.buf[start : start+int(length)]
		s.pos = start + int(length)
		return value, nil

	default:
		return nil, fmt.Errorf("%w %d", ErrInvalidWireType, wt)
	}
}

func (s *Scanner) readFixed(size int) ([]byte, error) {
	if s.pos+size > len(s.buf) {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrTruncated, size, len(s.buf)-s.pos)
	}
	value := s.buf[s.pos : s.pos+size]
	s.pos += size
	return value, nil
}

// SkipValue advances past a field value of the given wire type without
// returning it.
func (s *Scanner) SkipValue(wt WireType) error {
	_, err := s.ReadValue(wt)
	return err
}

// ===== PACKAGE-LEVEL SCANNING OPERATIONS =====

// SkipField reads the field header at offset and returns the offset of the
// field that follows, advancing past the value by its wire-type-implied
// length.
func SkipField(buf []byte, offset int) (int, error) {
	if offset < 0 || offset > len(buf) {
		return 0, fmt.Errorf("%w: offset %d out of range for %d-byte buffer", ErrTruncated, offset, len(buf))
	}

	s := &Scanner{buf: buf, pos: offset}
	_, wireType, err := s.ReadHeader()
	if err != nil {
		return 0, err
	}
	if err := s.SkipValue(wireType); err != nil {
		return 0, err
	}
	return s.pos, nil
}

// ExtractFieldByTag returns the value bytes of the first field in buf with
// the given field number. The header is excluded; for WireBytes fields the
// length prefix is excluded too. The returned slice shares buf's backing
// array, so callers that outlive the buffer must copy it.
//
// Returns ErrFieldNotFound if the buffer holds no field with that number.
func ExtractFieldByTag(buf []byte, field FieldNumber) ([]byte, error) {
	raw, err := ExtractRawField(buf, field)
	if err != nil {
		return nil, err
	}
	return raw.Value, nil
}

// ExtractRawField is like ExtractFieldByTag but also reports the wire type
// observed in the matching field's header, for callers that enforce type
// expectations of their own.
func ExtractRawField(buf []byte, field FieldNumber) (RawField, error) {
	s := NewScanner(buf)
	for s.Len() > 0 {
		fieldNumber, wireType, err := s.ReadHeader()
		if err != nil {
			return RawField{}, err
		}

		if fieldNumber == field {
			value, err := s.ReadValue(wireType)
			if err != nil {
				return RawField{}, err
			}
			return RawField{FieldNumber: fieldNumber, WireType: wireType, Value: value}, nil
		}

		if err := s.SkipValue(wireType); err != nil {
			return RawField{}, err
		}
	}
	return RawField{}, fmt.Errorf("field %d: %w", field, ErrFieldNotFound)
}

// ExtractFieldsByTags returns every field in buf whose number appears in
// fields, in buffer order. Duplicate field numbers in the buffer yield one
// entry per occurrence. An empty result is not an error; a structurally
// malformed buffer is.
func ExtractFieldsByTags(buf []byte, fields []FieldNumber) ([]RawField, error) {
	want := make(map[FieldNumber]struct{}, len(fields))
	for _, f := range fields {
		want[f] = struct{}{}
	}

	var result []RawField
	s := NewScanner(buf)
	for s.Len() > 0 {
		fieldNumber, wireType, err := s.ReadHeader()
		if err != nil {
			return nil, err
		}

		if _, ok := want[fieldNumber]; ok {
			value, err := s.ReadValue(wireType)
			if err != nil {
				return nil, err
			}
			result = append(result, RawField{FieldNumber: fieldNumber, WireType: wireType, Value: value})
			continue
		}

		if err := s.SkipValue(wireType); err != nil {
			return nil, err
		}
	}
	return result, nil
}
