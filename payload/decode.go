package payload

import (
	"fmt"
	"reflect"
)

// Element constrains the integer types a payload can be decoded into. An
// element is a little-endian view of its payload bytes, so a two-color
// palette entry decoded as a uint32 carries channel 0 in its low byte.
type Element interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

func elemSize[T Element]() int {
	return int(reflect.TypeOf((*T)(nil)).Elem().Size())
}

func elementFromBytes[T Element](b []byte) T {
	var v uint64
	for i, x := range b {
		v |= uint64(x) << (8 * uint(i))
	}
	return T(v)
}

// payloadBytes extracts n payload bytes from the words following the
// header, low byte first within each word.
func payloadBytes(source []uint64, n int) ([]byte, error) {
	if len(source) < headerWords+(n+7)/8 {
		return nil, ErrShortSource
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(source[headerWords+i/8] >> (8 * uint(i%8)))
	}
	return b, nil
}

// Decode returns the payload of source as bytes. Generic and image
// payloads come back verbatim; two-color images come back expanded, BPP
// bytes per pixel.
func Decode(source []uint64) ([]byte, error) {
	h, err := ParseHeader(source)
	if err != nil {
		return nil, err
	}

	if h.Kind != KindDualColorImage {
		return payloadBytes(source, int(h.BitCount)/8)
	}

	n, err := h.PixelCount()
	if err != nil {
		return nil, err
	}
	plane, err := payloadBytes(source, h.byteCount())
	if err != nil {
		return nil, err
	}
	if len(plane) < (n+7)/8 {
		return nil, ErrShortSource
	}
	color0, color1 := h.palette()
	out := make([]byte, n*int(h.BPP))
	expandBitPlane(n, plane, color0, color1, out)
	return out, nil
}

// DecodeInto decodes the payload of source into dst and returns the number
// of bytes written. dst must hold the full decoded payload; unlike Decode
// it may be larger, in which case the tail is left untouched. The source
// and destination must not overlap.
func DecodeInto(source []uint64, dst []byte) (int, error) {
	b, err := Decode(source)
	if err != nil {
		return 0, err
	}
	if len(dst) < len(b) {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", ErrBufferSize, len(b), len(dst))
	}
	return copy(dst, b), nil
}

// DecodeSlice decodes the payload of source into a newly allocated slice
// of T. For generic and image payloads a partial trailing element is
// dropped; for two-color images the size of T must equal the payload's
// bytes per pixel.
func DecodeSlice[T Element](source []uint64) ([]T, error) {
	h, err := ParseHeader(source)
	if err != nil {
		return nil, err
	}
	n, err := elementCount[T](h)
	if err != nil {
		return nil, err
	}
	out := make([]T, n)
	if err := decodeElements(h, source, out); err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeArray decodes the payload of source into dst, which must have
// exactly the payload's element count. It is the fixed-capacity analogue
// of DecodeSlice for callers that size their storage ahead of time.
func DecodeArray[T Element](source []uint64, dst []T) error {
	h, err := ParseHeader(source)
	if err != nil {
		return err
	}
	n, err := elementCount[T](h)
	if err != nil {
		return err
	}
	if n <= 0 {
		return ErrEmptyPayload
	}
	if len(dst) != n {
		return fmt.Errorf("%w: need %d elements, have %d", ErrBufferSize, n, len(dst))
	}
	return decodeElements(h, source, dst)
}

// elementCount resolves the element count for T, rejecting two-color
// payloads whose bytes per pixel disagree with the element size before any
// payload access happens.
func elementCount[T Element](h Header) (int, error) {
	size := elemSize[T]()
	if h.Kind == KindDualColorImage && size != int(h.BPP) {
		return 0, fmt.Errorf("%w: element is %d bytes, payload stores %d per pixel", ErrElementSize, size, h.BPP)
	}
	return h.ElementCount(size)
}

func decodeElements[T Element](h Header, source []uint64, dst []T) error {
	n := len(dst)
	if n == 0 {
		return nil
	}
	size := elemSize[T]()

	if h.Kind != KindDualColorImage {
		raw, err := payloadBytes(source, n*size)
		if err != nil {
			return err
		}
		for i := range dst {
			dst[i] = elementFromBytes[T](raw[i*size : (i+1)*size])
		}
		return nil
	}

	plane, err := payloadBytes(source, h.byteCount())
	if err != nil {
		return err
	}
	if len(plane) < (n+7)/8 {
		return ErrShortSource
	}
	b0, b1 := h.palette()
	color0 := elementFromBytes[T](b0)
	color1 := elementFromBytes[T](b1)
	for i := 0; i < n; i++ {
		if plane[i/8]>>(7-uint(i%8))&1 == 1 {
			dst[i] = color1
		} else {
			dst[i] = color0
		}
	}
	return nil
}
