package payload

// Encode packs the header and payload bytes into their word-sequence form.
// The three header words are always reserved, whatever the kind; data is
// packed low byte first into the words that follow, with any trailing slack
// in the last word left zero. data is the raw payload for generic and image
// kinds and the packed index plane for two-color images.
func Encode(h Header, data []byte) []uint64 {
	words := make([]uint64, headerWords+(len(data)+7)/8)
	hw := h.words()
	copy(words, hw[:])
	for i, b := range data {
		words[headerWords+i/8] |= uint64(b) << (8 * uint(i%8))
	}
	return words
}

// WordsToBytes flattens a word sequence into its byte representation, low
// byte first within each word. This is the form a payload takes when it is
// compressed before embedding.
func WordsToBytes(words []uint64) []byte {
	b := make([]byte, 8*len(words))
	for i, w := range words {
		for j := 0; j < 8; j++ {
			b[8*i+j] = byte(w >> (8 * uint(j)))
		}
	}
	return b
}

// BytesToWords is the inverse of WordsToBytes. The byte length must be a
// multiple of the word size.
func BytesToWords(b []byte) ([]uint64, error) {
	if len(b)%8 != 0 {
		return nil, ErrShortSource
	}
	words := make([]uint64, len(b)/8)
	for i := range words {
		var w uint64
		for j := 0; j < 8; j++ {
			w |= uint64(b[8*i+j]) << (8 * uint(j))
		}
		words[i] = w
	}
	return words, nil
}
