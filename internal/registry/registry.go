// Package registry maps audio formats to the tag readers that understand them.
package registry

import (
	"io"
	"sync"

	"github.com/simonhull/ratel/internal/types"
)

// TagReader extracts a tag from a file of known length.
//
// Implementations return types.ErrNotPresent when the file carries no tag
// and a *types.ReadError when the file cannot be read.
type TagReader interface {
	ReadTag(r io.ReaderAt, size int64, path string, opts types.ReadOptions) (*types.Tag, error)
}

var (
	mu      sync.RWMutex
	readers = make(map[types.Format]TagReader)
)

// Register registers a reader for a format.
// This is called by format packages during initialization (init functions).
func Register(format types.Format, reader TagReader) {
	mu.Lock()
	defer mu.Unlock()
	readers[format] = reader
}

// Get returns the reader for a given format.
// Returns nil if no reader is registered for the format.
func Get(format types.Format) TagReader {
	mu.RLock()
	defer mu.RUnlock()
	return readers[format]
}

// Lookup returns the reader for the format of path.
// Formats without a reader yield a *types.UnsupportedFormatError.
func Lookup(path string) (types.Format, TagReader, error) {
	format := types.FormatFromPath(path)
	reader := Get(format)
	if reader == nil {
		return format, nil, &types.UnsupportedFormatError{
			Path:   path,
			Reason: "no tag reader for " + format.String(),
		}
	}
	return format, reader, nil
}
