package wire

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVarintRoundTrip(t *testing.T) {
	values := []uint64{
		0, 1, 2, 127, 128, 150, 300, 16383, 16384, 624485,
		1<<21 - 1, 1 << 21, 1<<28 - 1, 1 << 28, 1<<35 - 1, 1 << 35,
		1<<42 - 1, 1 << 42, 1<<49 - 1, 1 << 49, 1<<56 - 1, 1 << 56,
		1<<63 - 1, 1 << 63, math.MaxUint64,
	}

	for _, v := range values {
		encoded := EncodeVarint(v)
		require.Len(t, encoded, VarintSize(v), "encoding of %d is not minimal", v)
		if v > 0 {
			// Minimal encodings never end in a redundant zero byte.
			require.NotZero(t, encoded[len(encoded)-1], "value %d", v)
		}

		decoded, n, err := DecodeVarint(encoded)
		require.NoError(t, err, "value %d", v)
		require.Equal(t, v, decoded)
		require.Equal(t, len(encoded), n)
	}
}

func TestEncodeVarintKnownValues(t *testing.T) {
	tests := []struct {
		value uint64
		want  []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{42, []byte{0x2A}},
		{127, []byte{0x7F}},
		{128, []byte{0x80, 0x01}},
		{150, []byte{0x96, 0x01}},
		{300, []byte{0xAC, 0x02}},
		{624485, []byte{0xE5, 0x8E, 0x26}},
		{1 << 63, append(bytes.Repeat([]byte{0x80}, 9), 0x01)},
		{math.MaxUint64, append(bytes.Repeat([]byte{0xFF}, 9), 0x01)},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, EncodeVarint(tt.value), "value %d", tt.value)
	}
}

func TestDecodeVarintErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		err  error
	}{
		{"empty buffer", nil, ErrUnexpectedEOF},
		{"missing terminator", []byte{0x80}, ErrUnexpectedEOF},
		{"truncated multi-byte", []byte{0xFF, 0xFF, 0x80}, ErrUnexpectedEOF},
		{"eleven byte varint", bytes.Repeat([]byte{0x80}, 11), ErrVarintTooLong},
		{"continuation on tenth byte", append(bytes.Repeat([]byte{0xFF}, 9), 0x80, 0x00), ErrVarintTooLong},
		{"tenth byte past bit 63", append(bytes.Repeat([]byte{0xFF}, 9), 0x02), ErrVarintOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeVarint(tt.data)
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestDecodeVarintTenByteMax(t *testing.T) {
	// All 64 bits set: nine full payload bytes plus bit 63 in the tenth.
	data := append(bytes.Repeat([]byte{0xFF}, 9), 0x01)

	v, n, err := DecodeVarint(data)
	require.NoError(t, err)
	require.Equal(t, uint64(math.MaxUint64), v)
	require.Equal(t, MaxVarintLen, n)
}

func TestDecodeVarintIgnoresTrailingBytes(t *testing.T) {
	v, n, err := DecodeVarint([]byte{0x96, 0x01, 0x12, 0x03})
	require.NoError(t, err)
	require.Equal(t, uint64(150), v)
	require.Equal(t, 2, n)
}

func TestSkipVarint(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		n    int
		err  error
	}{
		{"single byte", []byte{0x05}, 1, nil},
		{"two bytes", []byte{0x96, 0x01}, 2, nil},
		{"trailing data", []byte{0x96, 0x01, 0xFF}, 2, nil},
		{"ten bytes", append(bytes.Repeat([]byte{0x80}, 9), 0x01), 10, nil},
		{"empty", nil, 0, ErrUnexpectedEOF},
		{"unterminated", []byte{0x80, 0x80}, 0, ErrUnexpectedEOF},
		{"too long", bytes.Repeat([]byte{0x80}, 11), 0, ErrVarintTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := SkipVarint(tt.data)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.n, n)
		})
	}
}

func TestZigZag(t *testing.T) {
	tests := []struct {
		signed  int64
		encoded uint64
	}{
		{0, 0},
		{-1, 1},
		{1, 2},
		{-2, 3},
		{2, 4},
		{math.MaxInt64, math.MaxUint64 - 1},
		{math.MinInt64, math.MaxUint64},
	}

	for _, tt := range tests {
		require.Equal(t, tt.encoded, EncodeZigZag64(tt.signed))
		require.Equal(t, tt.signed, DecodeZigZag64(tt.encoded))
	}

	// 32-bit variants follow the same mapping.
	require.Equal(t, uint64(1), EncodeZigZag32(-1))
	require.Equal(t, uint64(4294967294), EncodeZigZag32(math.MaxInt32))
	require.Equal(t, uint64(4294967295), EncodeZigZag32(math.MinInt32))
	require.Equal(t, int32(-1), DecodeZigZag32(1))
	require.Equal(t, int32(math.MinInt32), DecodeZigZag32(4294967295))
}

func TestAppendVarint(t *testing.T) {
	buf := []byte{0xAA}
	buf = AppendVarint(buf, 150)
	require.Equal(t, []byte{0xAA, 0x96, 0x01}, buf)
}
