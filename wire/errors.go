package wire

import (
	"errors"
)

// Scanning and splicing errors. Varint codec errors live in varint.go.
var (
	// ErrInvalidWireType indicates a header carried a wire-type code outside
	// the four the format defines.
	ErrInvalidWireType = errors.New("invalid wire type")

	// ErrTruncated indicates a field's declared or implied length would read
	// past the end of the buffer.
	ErrTruncated = errors.New("buffer truncated")

	// ErrFieldNotFound indicates no field with the requested field number
	// exists in the scanned buffer.
	ErrFieldNotFound = errors.New("field not found")

	// ErrInvalidFieldNumber indicates a field number of 0, which the format
	// reserves.
	ErrInvalidFieldNumber = errors.New("invalid field number")
)
