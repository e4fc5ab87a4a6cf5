package id3v1

import (
	"io"
	"path/filepath"

	binutil "github.com/simonhull/ratel/internal/binary"
	"github.com/simonhull/ratel/internal/registry"
	"github.com/simonhull/ratel/internal/types"
)

// Trailer holds the raw bytes of each region, indexed like Layout().
type Trailer [][]byte

// ReadTrailer reads every region of the trailer in order.
//
// The file must be at least TrailerSize bytes long. Any short or failed read
// is returned as a *types.ReadError naming the region.
func ReadTrailer(sr *binutil.SafeReader) (Trailer, error) {
	r, err := binutil.NewTailReader(sr, TrailerSize)
	if err != nil {
		return nil, &types.ReadError{Path: sr.Path(), Op: "read", What: "trailer", Err: err}
	}

	cr := binutil.NewChainReader(r)
	tr := make(Trailer, len(layout))
	for i, f := range layout {
		tr[i] = cr.Bytes(f.Length, f.Name)
	}

	if err := cr.Error(); err != nil {
		what, off := cr.Failed()
		return nil, &types.ReadError{Path: sr.Path(), Op: "read", What: what, Offset: off, Err: err}
	}
	return tr, nil
}

// Parse extracts the ID3v1 tag from r.
//
// It returns types.ErrNotPresent when size is below TrailerSize (without
// reading anything) or when the magic marker is not "TAG".
func Parse(r io.ReaderAt, size int64, path string, opts types.ReadOptions) (*types.Tag, error) {
	if size < TrailerSize {
		return nil, types.ErrNotPresent
	}

	tr, err := ReadTrailer(binutil.NewSafeReader(r, size, path))
	if err != nil {
		return nil, err
	}

	if Decode(tr[0], opts.Charset) != Marker {
		return nil, types.ErrNotPresent
	}

	tag := &types.Tag{FileName: opts.DisplayName}
	if tag.FileName == "" {
		tag.FileName = filepath.Base(path)
	}
	for i, f := range layout {
		if f.assign == nil {
			continue
		}
		f.assign(tag, Truncate(Decode(tr[i], opts.Charset)))
	}

	return tag, nil
}

// reader implements registry.TagReader
type reader struct{}

func (reader) ReadTag(r io.ReaderAt, size int64, path string, opts types.ReadOptions) (*types.Tag, error) {
	return Parse(r, size, path, opts)
}

// init registers the ID3v1 reader for MP3 files
func init() {
	registry.Register(types.FormatMP3, reader{})
}
