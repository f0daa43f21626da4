package payload

// PixelCount returns the number of pixels in an image payload. Generic
// payloads have no element count of their own, so asking for one is an
// error rather than a guess.
func (h Header) PixelCount() (int, error) {
	if h.Kind == KindGeneric {
		return 0, ErrNoPixelCount
	}
	return int(h.Width) * int(h.Height), nil
}

// ElementCount returns the number of elements of elemSize bytes the payload
// decodes to. For two-color images this is the pixel count regardless of
// elemSize; for everything else it is the payload byte span divided by
// elemSize, silently dropping a partial trailing element.
func (h Header) ElementCount(elemSize int) (int, error) {
	if elemSize < 1 {
		return 0, ErrElementSize
	}
	if h.Kind == KindDualColorImage {
		return h.PixelCount()
	}
	return int(h.BitCount/8) / elemSize, nil
}

// PixelCount parses the header from source and returns its pixel count.
func PixelCount(source []uint64) (int, error) {
	h, err := ParseHeader(source)
	if err != nil {
		return 0, err
	}
	return h.PixelCount()
}

// ElementCount parses the header from source and returns the number of
// elements of elemSize bytes the payload decodes to.
func ElementCount(source []uint64, elemSize int) (int, error) {
	h, err := ParseHeader(source)
	if err != nil {
		return 0, err
	}
	return h.ElementCount(elemSize)
}

// byteCount returns the number of meaningful payload bytes stored in the
// word sequence, rounding a partial trailing byte up.
func (h Header) byteCount() int {
	n := int(h.BitCount) / 8
	if h.BitCount%8 > 0 {
		n++
	}
	return n
}
