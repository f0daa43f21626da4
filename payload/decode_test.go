package payload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func genericWords(data []byte) []uint64 {
	return Encode(Header{Kind: KindGeneric, BitCount: uint32(8 * len(data))}, data)
}

func TestDecodeImageVerbatim(t *testing.T) {
	// A 2x1 image at three bytes per pixel decodes to exactly two
	// elements, byte for byte.
	h := Header{Kind: KindImage, BPP: 3, BitCount: 48, Width: 2, Height: 1}
	words := Encode(h, []byte{0x10, 0x20, 0x30, 0x40, 0x50, 0x60})

	n, err := ElementCount(words, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, err := Decode(words)
	require.NoError(t, err)
	require.Len(t, got, 6)
	assert.Equal(t, []byte{0x10, 0x20, 0x30}, got[:3])
	assert.Equal(t, []byte{0x40, 0x50, 0x60}, got[3:])
}

func TestDecodeSliceDualColor(t *testing.T) {
	h := Header{
		Kind:     KindDualColorImage,
		BPP:      1,
		BitCount: 8,
		Width:    8,
		Height:   1,
		Color0:   0xaa,
		Color1:   0xbb,
	}
	words := Encode(h, []byte{0b10110000})

	got, err := DecodeSlice[uint8](words)
	require.NoError(t, err)
	assert.Equal(t, []uint8{0xbb, 0xaa, 0xbb, 0xbb, 0xaa, 0xaa, 0xaa, 0xaa}, got)
}

func TestDecodeSliceDualColorUint16(t *testing.T) {
	h := Header{
		Kind:     KindDualColorImage,
		BPP:      2,
		BitCount: 4,
		Width:    4,
		Height:   1,
		Color0:   0xddccbbaa, // only the low two bytes are palette data
		Color1:   0x00004321,
	}
	words := Encode(h, []byte{0b10010000})

	got, err := DecodeSlice[uint16](words)
	require.NoError(t, err)
	assert.Equal(t, []uint16{0x4321, 0xbbaa, 0xbbaa, 0x4321}, got)
}

func TestDecodeDualColorExpandsBytes(t *testing.T) {
	h := Header{
		Kind:     KindDualColorImage,
		BPP:      3,
		BitCount: 2,
		Width:    2,
		Height:   1,
		Color0:   0x00030201,
		Color1:   0x000c0b0a,
	}
	words := Encode(h, []byte{0b01000000})

	got, err := Decode(words)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x0a, 0x0b, 0x0c}, got)
}

func TestDecodeSliceElementSizeMismatch(t *testing.T) {
	h := Header{
		Kind:     KindDualColorImage,
		BPP:      1,
		BitCount: 8,
		Width:    8,
		Height:   1,
	}
	words := Encode(h, []byte{0xff})

	_, err := DecodeSlice[uint32](words)
	assert.ErrorIs(t, err, ErrElementSize)

	err = DecodeArray(words, make([]uint64, 8))
	assert.ErrorIs(t, err, ErrElementSize)
}

func TestDecodeSliceTruncatesPartialElement(t *testing.T) {
	words := genericWords([]byte{1, 2, 3, 4, 5, 6, 7})

	got, err := DecodeSlice[uint32](words)
	require.NoError(t, err)
	assert.Equal(t, []uint32{0x04030201}, got)
}

func TestDecodeSliceNamedType(t *testing.T) {
	type sample uint16
	words := genericWords([]byte{0x01, 0x02, 0x03, 0x04})

	got, err := DecodeSlice[sample](words)
	require.NoError(t, err)
	assert.Equal(t, []sample{0x0201, 0x0403}, got)
}

func TestDecodeEmptyPayload(t *testing.T) {
	words := genericWords(nil)

	b, err := Decode(words)
	require.NoError(t, err)
	assert.Empty(t, b)

	s, err := DecodeSlice[uint8](words)
	require.NoError(t, err)
	assert.Empty(t, s)

	// Fixed-capacity decoding demands at least one element.
	err = DecodeArray(words, []uint8{})
	assert.ErrorIs(t, err, ErrEmptyPayload)
}

func TestDecodeArray(t *testing.T) {
	words := genericWords([]byte{0x01, 0x02, 0x03, 0x04})

	dst := make([]uint16, 2)
	require.NoError(t, DecodeArray(words, dst))
	assert.Equal(t, []uint16{0x0201, 0x0403}, dst)

	err := DecodeArray(words, make([]uint16, 3))
	assert.ErrorIs(t, err, ErrBufferSize)
	err = DecodeArray(words, make([]uint16, 1))
	assert.ErrorIs(t, err, ErrBufferSize)
}

func TestDecodeInto(t *testing.T) {
	data := []byte{0xde, 0xad, 0xbe, 0xef, 0x99}
	words := genericWords(data)

	exact := make([]byte, 5)
	n, err := DecodeInto(words, exact)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, data, exact)

	// A larger destination is allowed; the tail is untouched.
	larger := make([]byte, 8)
	larger[7] = 0x42
	n, err = DecodeInto(words, larger)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, data, larger[:5])
	assert.Equal(t, byte(0x42), larger[7])

	_, err = DecodeInto(words, make([]byte, 4))
	assert.ErrorIs(t, err, ErrBufferSize)
}

func TestDecodeShortSource(t *testing.T) {
	words := genericWords(make([]byte, 16))

	_, err := Decode(words[:4])
	assert.ErrorIs(t, err, ErrShortSource)
	_, err = DecodeSlice[uint8](words[:4])
	assert.ErrorIs(t, err, ErrShortSource)
}

func TestDecodeIdempotent(t *testing.T) {
	h := Header{
		Kind:     KindDualColorImage,
		BPP:      1,
		BitCount: 11,
		Width:    11,
		Height:   1,
		Color0:   0x00,
		Color1:   0x01,
	}
	words := Encode(h, []byte{0b10101010, 0b11000000})

	first, err := Decode(words)
	require.NoError(t, err)
	second, err := Decode(words)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestWordsBytesRoundTrip(t *testing.T) {
	words := []uint64{0x0123456789abcdef, 42, 0}

	b := WordsToBytes(words)
	require.Len(t, b, 24)
	got, err := BytesToWords(b)
	require.NoError(t, err)
	assert.Equal(t, words, got)

	_, err = BytesToWords(b[:7])
	assert.ErrorIs(t, err, ErrShortSource)
}
