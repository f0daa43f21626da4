/*
Package bakery packs binary assets into compact word-sequence payloads and
emits them as Go source, so images and other blobs can be compiled straight
into a program and recovered at run time with no file I/O. The payload
format itself lives in the payload package; this package is the packaging
side: asset conversion, optional compression, source emission and the
asset catalog.
*/
package bakery

import "log"

// Options controls how assets are packed and emitted.
type Options struct {
	// Package is the package clause written into emitted Go source.
	Package string
	// Compress emits zstd-compressed payloads instead of plain word
	// sequences.
	Compress bool
	// TwoColor quantizes every image down to a two-color palette before
	// packing it as a bit plane.
	TwoColor bool
}

type Bakery struct {
	db     *AssetDB
	logger *log.Logger
	opts   Options
}

// New returns a Bakery writing through the given catalog, which may be nil
// when no catalog is wanted.
func New(db *AssetDB, logger *log.Logger, opts Options) *Bakery {
	if opts.Package == "" {
		opts.Package = "assets"
	}
	return &Bakery{
		db:     db,
		logger: logger,
		opts:   opts,
	}
}
