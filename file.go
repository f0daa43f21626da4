package bakery

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
)

func isImageFile(file string) bool {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".png", ".gif", ".jpg", ".jpeg":
		return true
	}
	return false
}

// PackFile converts a file into an asset: recognised image formats become
// image payloads, everything else a generic byte blob.
func (b *Bakery) PackFile(file string) (*Asset, error) {
	name := filepath.Base(file)

	if !isImageFile(file) {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		return PackBytes(name, data), nil
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	if b.opts.TwoColor {
		m = QuantizeTwoColor(m)
	}
	return PackImage(name, m)
}

// Emit writes the asset to dir as Go source and records it in the catalog.
// An asset whose content hash is already catalogued is skipped.
func (b *Bakery) Emit(a *Asset, dir string) error {
	if b.db != nil {
		created, err := b.db.Record(a)
		if err != nil {
			return err
		}
		if !created {
			name, _, err := b.db.FindByHash(a.Hash)
			if err != nil {
				return err
			}
			b.logger.Printf("Skipping \"%s\", identical to \"%s\"\n", a.Name, name)
			return nil
		}
	}

	out := filepath.Join(dir, strings.TrimSuffix(a.Name, filepath.Ext(a.Name))+"_payload.go")
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	if b.opts.Compress {
		err = EmitGoCompressed(f, b.opts.Package, VarName(a.Name), a, ZstdCompress)
	} else {
		err = EmitGo(f, b.opts.Package, VarName(a.Name), a)
	}
	if err != nil {
		return err
	}

	b.logger.Printf("Packed \"%s\" into \"%s\"\n", a.Name, out)
	return nil
}
