/*
Package payload implements the binary-bakery payload codec.

A payload is an ordered sequence of 8-byte words. The first three words
carry a fixed 24-byte header, the remainder carries the asset data, either
verbatim or as a 1-bit-per-pixel index plane for two-color images. All
multi-byte fields are little-endian and are packed and unpacked with
explicit shifts so the layout never depends on host representation.

The word layout is:

	word 0: kind(1) bpp(1) padding(2) bit_count(4)      always meaningful
	word 1: width(2) height(2) padding(4)               images only
	word 2: color0(4) color1(4)                         two-color images only
	word 3..N: payload bytes, low byte first

Decoding is a pure function of the word sequence; payloads may be decoded
concurrently from the same buffer without coordination.
*/
package payload

import (
	"errors"
	"fmt"
)

// Kind classifies the payload and determines which header words are
// meaningful and how the payload bytes are interpreted.
type Kind uint8

const (
	// KindGeneric is an untyped byte blob.
	KindGeneric Kind = iota
	// KindImage is a width*height image with BPP bytes per pixel.
	KindImage
	// KindDualColorImage is a width*height image stored as a bit plane
	// selecting between two palette colors of BPP bytes each.
	KindDualColorImage
)

func (k Kind) String() string {
	switch k {
	case KindGeneric:
		return "generic"
	case KindImage:
		return "image"
	case KindDualColorImage:
		return "dual-color image"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

var (
	// ErrUnknownKind is returned when word 0 carries a kind byte outside
	// the known set.
	ErrUnknownKind = errors.New("payload: unknown payload kind")
	// ErrChannelWidth is returned when an image header carries a bytes
	// per pixel value outside 1 to 4.
	ErrChannelWidth = errors.New("payload: bytes per pixel out of range")
	// ErrShortSource is returned when the word sequence is shorter than
	// its header requires.
	ErrShortSource = errors.New("payload: source truncated")
	// ErrNoPixelCount is returned when a pixel count is requested from a
	// generic payload, which has no element count independent of an
	// element size.
	ErrNoPixelCount = errors.New("payload: element count undefined for generic payloads")
	// ErrElementSize is returned when the caller's element size does not
	// match the payload, for example decoding a two-color image into
	// elements wider or narrower than its bytes per pixel.
	ErrElementSize = errors.New("payload: element size does not match payload")
	// ErrBufferSize is returned when a caller-supplied destination cannot
	// hold the decoded payload exactly.
	ErrBufferSize = errors.New("payload: destination buffer has wrong size")
	// ErrEmptyPayload is returned by fixed-capacity decodes when the
	// resolved element count is zero.
	ErrEmptyPayload = errors.New("payload: empty payload")
)

// headerWords is the number of words reserved for the header. Parsing may
// touch fewer depending on the kind, but payload bytes always start here.
const headerWords = 3

// Header is the decoded form of the leading header words.
type Header struct {
	Kind     Kind
	BPP      uint8  // bytes per pixel, meaningful for image kinds only
	BitCount uint32 // number of payload bits populated
	Width    uint16 // image kinds only
	Height   uint16 // image kinds only
	Color0   uint32 // two-color images only, channel bytes packed low to high
	Color1   uint32 // two-color images only
}

// ParseHeader decodes the header from the leading words of source. Word 1
// is read only for image kinds and word 2 only for two-color images, so a
// single-word buffer is a valid source for a generic header.
func ParseHeader(source []uint64) (Header, error) {
	if len(source) < 1 {
		return Header{}, ErrShortSource
	}

	w0 := source[0]
	h := Header{
		Kind:     Kind(w0 & 0xff),
		BPP:      uint8(w0 >> 8 & 0xff),
		BitCount: uint32(w0 >> 32),
	}

	if h.Kind > KindDualColorImage {
		return Header{}, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(h.Kind))
	}

	if h.Kind != KindGeneric {
		if h.BPP < 1 || h.BPP > 4 {
			return Header{}, fmt.Errorf("%w: %d", ErrChannelWidth, h.BPP)
		}
		if len(source) < 2 {
			return Header{}, ErrShortSource
		}
		w1 := source[1]
		h.Width = uint16(w1 & 0xffff)
		h.Height = uint16(w1 >> 16 & 0xffff)
	}

	if h.Kind == KindDualColorImage {
		if len(source) < 3 {
			return Header{}, ErrShortSource
		}
		w2 := source[2]
		h.Color0 = uint32(w2 & 0xffffffff)
		h.Color1 = uint32(w2 >> 32)
	}

	return h, nil
}

// words packs the header into its three-word wire form. Words that are not
// meaningful for the kind are zero.
func (h Header) words() [headerWords]uint64 {
	var w [headerWords]uint64
	w[0] = uint64(h.Kind) | uint64(h.BPP)<<8 | uint64(h.BitCount)<<32
	if h.Kind != KindGeneric {
		w[1] = uint64(h.Width) | uint64(h.Height)<<16
	}
	if h.Kind == KindDualColorImage {
		w[2] = uint64(h.Color0) | uint64(h.Color1)<<32
	}
	return w
}

// IsImage reports whether source holds an image payload of either kind.
// Malformed sources report false.
func IsImage(source []uint64) bool {
	h, err := ParseHeader(source)
	return err == nil && h.Kind != KindGeneric
}

// Width returns the image width. The second return value is false when the
// payload is not an image.
func Width(source []uint64) (int, bool) {
	h, err := ParseHeader(source)
	if err != nil || h.Kind == KindGeneric {
		return 0, false
	}
	return int(h.Width), true
}

// Height returns the image height. The second return value is false when
// the payload is not an image.
func Height(source []uint64) (int, bool) {
	h, err := ParseHeader(source)
	if err != nil || h.Kind == KindGeneric {
		return 0, false
	}
	return int(h.Height), true
}
