package bakery

import (
	"errors"
	"image"
	"image/color"
	"image/draw"

	"github.com/cespare/xxhash/v2"
	"github.com/ericpauley/go-quantize/quantize"

	"github.com/clayne/binary-bakery/payload"
)

var errNotImage = errors.New("bakery: not an image payload")

// Asset is a source asset converted to its payload representation, ready
// to be emitted or recorded in the catalog.
type Asset struct {
	Name   string
	Header payload.Header
	Data   []byte // raw payload bytes, or the index plane for two-color images
	Hash   uint64 // xxhash64 of the bytes fed to the packer
}

// Words returns the asset in its embeddable word-sequence form.
func (a *Asset) Words() []uint64 {
	return payload.Encode(a.Header, a.Data)
}

// PackBytes packs an arbitrary blob as a generic payload.
func PackBytes(name string, b []byte) *Asset {
	return &Asset{
		Name: name,
		Header: payload.Header{
			Kind:     payload.KindGeneric,
			BitCount: uint32(8 * len(b)),
		},
		Data: append([]byte(nil), b...),
		Hash: xxhash.Sum64(b),
	}
}

// PackImage packs an image payload. The channel count is deduced from the
// pixels: grayscale opaque images store one byte per pixel, grayscale with
// alpha two, opaque color three and everything else four. Images with at
// most two distinct colors are stored as a two-color bit plane instead of
// raw pixels.
func PackImage(name string, m image.Image) (*Asset, error) {
	b := m.Bounds()
	w, h := b.Dx(), b.Dy()
	if w > 0xffff || h > 0xffff {
		return nil, errors.New("bakery: image dimensions exceed 16 bits")
	}

	gray, opaque := true, true
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA)
			if c.R != c.G || c.G != c.B {
				gray = false
			}
			if c.A != 0xff {
				opaque = false
			}
		}
	}

	var bpp uint8
	switch {
	case gray && opaque:
		bpp = 1
	case gray:
		bpp = 2
	case opaque:
		bpp = 3
	default:
		bpp = 4
	}

	// Row-major channel bytes, and the packed uint32 form of each pixel
	// for two-color detection.
	pix := make([]byte, 0, w*h*int(bpp))
	packed := make([]uint32, 0, w*h)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA)
			var ch [4]byte
			switch bpp {
			case 1:
				ch = [4]byte{c.R}
			case 2:
				ch = [4]byte{c.R, c.A}
			case 3:
				ch = [4]byte{c.R, c.G, c.B}
			case 4:
				ch = [4]byte{c.R, c.G, c.B, c.A}
			}
			pix = append(pix, ch[:bpp]...)
			var p uint32
			for i := uint8(0); i < bpp; i++ {
				p |= uint32(ch[i]) << (8 * i)
			}
			packed = append(packed, p)
		}
	}

	hdr := payload.Header{
		Kind:   payload.KindImage,
		BPP:    bpp,
		Width:  uint16(w),
		Height: uint16(h),
	}

	if colors, ok := twoColors(packed); ok {
		hdr.Kind = payload.KindDualColorImage
		hdr.BitCount = uint32(len(packed))
		hdr.Color0 = colors[0]
		hdr.Color1 = colors[1]
		plane := packBitPlane(packed, colors[1])
		return &Asset{Name: name, Header: hdr, Data: plane, Hash: xxhash.Sum64(pix)}, nil
	}

	hdr.BitCount = uint32(8 * len(pix))
	return &Asset{Name: name, Header: hdr, Data: pix, Hash: xxhash.Sum64(pix)}, nil
}

// twoColors returns the palette when the pixels hold at most two distinct
// values. A single-color image repeats that color in both entries.
func twoColors(packed []uint32) ([2]uint32, bool) {
	if len(packed) == 0 {
		return [2]uint32{}, false
	}
	colors := [2]uint32{packed[0], packed[0]}
	seen := 1
	for _, p := range packed {
		switch {
		case p == colors[0]:
		case seen == 1:
			colors[1] = p
			seen = 2
		case p != colors[1]:
			return [2]uint32{}, false
		}
	}
	return colors, true
}

// packBitPlane packs one bit per pixel, most significant bit first within
// each byte, set when the pixel equals color1.
func packBitPlane(packed []uint32, color1 uint32) []byte {
	plane := make([]byte, (len(packed)+7)/8)
	for i, p := range packed {
		if p == color1 {
			plane[i/8] |= 1 << (7 - uint(i%8))
		}
	}
	return plane
}

// QuantizeTwoColor reduces m to a two-color palette so that PackImage will
// store it as a bit plane.
func QuantizeTwoColor(m image.Image) image.Image {
	q := quantize.MedianCutQuantizer{}
	b := m.Bounds()
	pm := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, 2), m))
	draw.Draw(pm, b, m, b.Min, draw.Src)
	return pm
}

// DecodeImage reconstructs an image payload as an image.Image: one byte
// per pixel decodes to grayscale, everything wider to NRGBA.
func DecodeImage(source []uint64) (image.Image, error) {
	h, err := payload.ParseHeader(source)
	if err != nil {
		return nil, err
	}
	if h.Kind == payload.KindGeneric {
		return nil, errNotImage
	}

	pix, err := payload.Decode(source)
	if err != nil {
		return nil, err
	}

	w, ht := int(h.Width), int(h.Height)
	if h.BPP == 1 {
		m := image.NewGray(image.Rect(0, 0, w, ht))
		copy(m.Pix, pix)
		return m, nil
	}

	m := image.NewNRGBA(image.Rect(0, 0, w, ht))
	bpp := int(h.BPP)
	for i := 0; i < w*ht; i++ {
		var c color.NRGBA
		p := pix[i*bpp : (i+1)*bpp]
		switch bpp {
		case 2:
			c = color.NRGBA{p[0], p[0], p[0], p[1]}
		case 3:
			c = color.NRGBA{p[0], p[1], p[2], 0xff}
		case 4:
			c = color.NRGBA{p[0], p[1], p[2], p[3]}
		}
		m.SetNRGBA(i%w, i/w, c)
	}
	return m, nil
}
