package ratel

import (
	"golang.org/x/text/encoding/charmap"

	"github.com/simonhull/ratel/internal/types"
)

// Option configures tag extraction.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	tag, err := ratel.Extract("song.mp3",
//	    ratel.WithCharset(charmap.ISO8859_1),
//	    ratel.WithDisplayName("Track 01"),
//	)
type Option func(*extractOptions)

// extractOptions holds configuration for one extraction.
type extractOptions struct {
	charset     *charmap.Charmap // Single-byte charset for tag text
	displayName string           // Overrides Tag.FileName
}

// defaultOptions returns the default configuration.
func defaultOptions() *extractOptions {
	return &extractOptions{
		charset: charmap.Windows1252,
	}
}

func (o *extractOptions) readOptions() types.ReadOptions {
	return types.ReadOptions{
		Charset:     o.charset,
		DisplayName: o.displayName,
	}
}

// WithCharset selects the single-byte charset used to decode tag text.
//
// The default is Windows-1252, the ANSI code page most ID3v1 taggers wrote.
// A nil charset keeps the default.
//
// Example:
//
//	tag, err := ratel.Extract("song.mp3", ratel.WithCharset(charmap.KOI8R))
func WithCharset(cs *charmap.Charmap) Option {
	return func(o *extractOptions) {
		if cs != nil {
			o.charset = cs
		}
	}
}

// WithDisplayName sets Tag.FileName.
//
// By default FileName is the base name of the extracted path, or the name
// passed to ExtractReader.
func WithDisplayName(name string) Option {
	return func(o *extractOptions) {
		o.displayName = name
	}
}
