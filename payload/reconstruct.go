package payload

// palette returns the two replacement colors of a two-color image as raw
// byte patterns of BPP bytes each, taken from the low bytes of the packed
// header colors.
func (h Header) palette() (color0, color1 []byte) {
	bpp := int(h.BPP)
	color0 = make([]byte, bpp)
	color1 = make([]byte, bpp)
	for i := 0; i < bpp; i++ {
		color0[i] = byte(h.Color0 >> (8 * i))
		color1[i] = byte(h.Color1 >> (8 * i))
	}
	return color0, color1
}

// expandBitPlane writes n elements into dst, each a copy of color0 or
// color1 depending on the element's bit in plane. Bits are consumed most
// significant first within each byte: element i is selected by bit
// (7 - i%8) of plane[i/8]. The bit order is part of the wire format and is
// spelled out here instead of relying on any host convention.
func expandBitPlane(n int, plane, color0, color1, dst []byte) {
	size := len(color0)
	for i := 0; i < n; i++ {
		shift := 7 - uint(i%8)
		c := color0
		if plane[i/8]>>shift&1 == 1 {
			c = color1
		}
		copy(dst[i*size:(i+1)*size], c)
	}
}
