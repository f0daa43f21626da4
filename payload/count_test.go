package payload

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPixelCount(t *testing.T) {
	tests := []struct {
		width, height uint16
		want          int
	}{
		{2, 1, 2},
		{16, 16, 256},
		{0, 7, 0},
		{7, 0, 0},
		{0, 0, 0},
		{0xffff, 0xffff, 0xffff * 0xffff},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%dx%d", tt.width, tt.height), func(t *testing.T) {
			h := Header{Kind: KindImage, BPP: 1, Width: tt.width, Height: tt.height}
			got, err := h.PixelCount()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			h.Kind = KindDualColorImage
			got, err = h.PixelCount()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPixelCountGeneric(t *testing.T) {
	h := Header{Kind: KindGeneric, BitCount: 64}

	_, err := h.PixelCount()
	assert.ErrorIs(t, err, ErrNoPixelCount)

	_, err = PixelCount(Encode(h, make([]byte, 8)))
	assert.ErrorIs(t, err, ErrNoPixelCount)
}

func TestElementCount(t *testing.T) {
	sizes := []int{1, 2, 4, 8}
	bitCounts := []uint32{0, 1, 7, 8, 9, 23, 24, 64, 65, 1000}

	for _, bc := range bitCounts {
		for _, size := range sizes {
			t.Run(fmt.Sprintf("bits_%d_size_%d", bc, size), func(t *testing.T) {
				h := Header{Kind: KindGeneric, BitCount: bc}
				got, err := h.ElementCount(size)
				require.NoError(t, err)
				assert.Equal(t, int(bc/8)/size, got)
			})
		}
	}
}

func TestElementCountDualIgnoresSize(t *testing.T) {
	// The element size affects interpretation, never the count, so the
	// resolver accepts any size for a two-color image.
	h := Header{Kind: KindDualColorImage, BPP: 2, BitCount: 12, Width: 4, Height: 3}

	for _, size := range []int{1, 2, 4, 8} {
		got, err := h.ElementCount(size)
		require.NoError(t, err)
		assert.Equal(t, 12, got)
	}
}

func TestElementCountBadSize(t *testing.T) {
	h := Header{Kind: KindGeneric, BitCount: 64}

	for _, size := range []int{0, -1} {
		_, err := h.ElementCount(size)
		assert.ErrorIs(t, err, ErrElementSize)
	}
}

func TestElementCountFromWords(t *testing.T) {
	data := make([]byte, 24)
	words := Encode(Header{Kind: KindGeneric, BitCount: uint32(8 * len(data))}, data)

	got, err := ElementCount(words, 8)
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	_, err = ElementCount([]uint64{3}, 1)
	assert.ErrorIs(t, err, ErrUnknownKind)
}
