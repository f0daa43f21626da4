package bakery

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/clayne/binary-bakery/payload"
)

const wordsPerLine = 4
const bytesPerLine = 12

// VarName derives an exported Go identifier from an asset name, so
// "green.png" becomes "GreenPng".
func VarName(name string) string {
	var sb strings.Builder
	upper := true
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if sb.Len() == 0 && unicode.IsDigit(r) {
			sb.WriteString("Asset")
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		sb.WriteRune(r)
	}
	if sb.Len() == 0 {
		return "Asset"
	}
	return sb.String()
}

func describe(a *Asset) string {
	h := a.Header
	if h.Kind == payload.KindGeneric {
		return fmt.Sprintf("%s: generic, %d payload bytes", a.Name, len(a.Data))
	}
	return fmt.Sprintf("%s: %s, %dx%d pixels, %d bytes per pixel", a.Name, h.Kind, h.Width, h.Height, h.BPP)
}

// EmitGo writes the asset as Go source declaring its word sequence.
func EmitGo(w io.Writer, pkg, varName string, a *Asset) error {
	words := a.Words()

	var sb strings.Builder
	fmt.Fprintf(&sb, "// Code generated by bakery. DO NOT EDIT.\n//\n")
	fmt.Fprintf(&sb, "// %s\n", describe(a))
	fmt.Fprintf(&sb, "// %d words, source xxh64 %016x\n\n", len(words), a.Hash)
	fmt.Fprintf(&sb, "package %s\n\n", pkg)
	fmt.Fprintf(&sb, "var %s = []uint64{", varName)
	for i, word := range words {
		if i%wordsPerLine == 0 {
			sb.WriteString("\n\t")
		} else {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "0x%016x,", word)
	}
	sb.WriteString("\n}\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// EmitGoCompressed writes the asset as Go source declaring the compressed
// byte form of its word sequence plus the uncompressed length needed to
// recover it via Load.
func EmitGoCompressed(w io.Writer, pkg, varName string, a *Asset, c Compressor) error {
	raw := payload.WordsToBytes(a.Words())
	compressed, err := c(raw)
	if err != nil {
		return err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "// Code generated by bakery. DO NOT EDIT.\n//\n")
	fmt.Fprintf(&sb, "// %s\n", describe(a))
	fmt.Fprintf(&sb, "// %d bytes compressed, source xxh64 %016x\n\n", len(compressed), a.Hash)
	fmt.Fprintf(&sb, "package %s\n\n", pkg)
	fmt.Fprintf(&sb, "// %sLen is the byte length of the word sequence before compression.\n", varName)
	fmt.Fprintf(&sb, "const %sLen = %d\n\n", varName, len(raw))
	fmt.Fprintf(&sb, "var %s = []byte{", varName)
	for i, b := range compressed {
		if i%bytesPerLine == 0 {
			sb.WriteString("\n\t")
		} else {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "0x%02x,", b)
	}
	sb.WriteString("\n}\n")

	_, err = io.WriteString(w, sb.String())
	return err
}
