package bakery

import (
	"fmt"

	"github.com/klauspost/compress/zstd"

	"github.com/clayne/binary-bakery/payload"
)

// Compressor shrinks a byte sequence before it is embedded. The payload
// codec itself never compresses; this hook belongs to the packaging step.
type Compressor func(raw []byte) ([]byte, error)

// Decompressor maps a compressed byte sequence plus its uncompressed
// length back to the original bytes. The loading step invokes it before
// the word sequence reaches the payload codec.
type Decompressor func(compressed []byte, uncompressedLen int) ([]byte, error)

// ZstdCompress is the Compressor used by default when compression is
// requested.
func ZstdCompress(raw []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(raw, nil), nil
}

// ZstdDecompress is the Decompressor matching ZstdCompress.
func ZstdDecompress(compressed []byte, uncompressedLen int) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	raw, err := dec.DecodeAll(compressed, make([]byte, 0, uncompressedLen))
	if err != nil {
		return nil, err
	}
	if len(raw) != uncompressedLen {
		return nil, fmt.Errorf("bakery: decompressed to %d bytes, expected %d", len(raw), uncompressedLen)
	}
	return raw, nil
}

// Load recovers a word sequence from its compressed embedded form.
func Load(compressed []byte, uncompressedLen int, d Decompressor) ([]uint64, error) {
	raw, err := d(compressed, uncompressedLen)
	if err != nil {
		return nil, err
	}
	return payload.BytesToWords(raw)
}
