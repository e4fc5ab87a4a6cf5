// Package binary provides bounds-checked byte reads over io.ReaderAt.
package binary

import (
	"errors"
	"fmt"
	"io"
)

// OutOfBoundsError is returned when a read would fall outside the file.
type OutOfBoundsError struct {
	Path   string
	What   string
	Offset int64
	Length int
	Size   int64
}

func (e *OutOfBoundsError) Error() string {
	if e.Offset < 0 || e.Offset >= e.Size {
		return fmt.Sprintf("%s: offset %d out of bounds (file size: %d) while reading %s",
			e.Path, e.Offset, e.Size, e.What)
	}
	return fmt.Sprintf("%s: read of %d bytes at offset %d would exceed file size %d while reading %s",
		e.Path, e.Length, e.Offset, e.Size, e.What)
}

// ShortReadError is returned when the underlying reader delivers fewer
// bytes than requested, for example because the file shrank mid-read.
type ShortReadError struct {
	Err    error // cause reported by the underlying reader, may be nil or io.EOF
	Path   string
	What   string
	Offset int64
	Got    int
	Want   int
}

func (e *ShortReadError) Error() string {
	return fmt.Sprintf("%s: short read for %s at offset %d: got %d bytes, expected %d",
		e.Path, e.What, e.Offset, e.Got, e.Want)
}

func (e *ShortReadError) Unwrap() error {
	return e.Err
}

// Is makes every short read match io.ErrUnexpectedEOF.
func (e *ShortReadError) Is(target error) bool {
	return target == io.ErrUnexpectedEOF
}

// SafeReader wraps io.ReaderAt with bounds checking and helpful error messages.
type SafeReader struct {
	r    io.ReaderAt
	path string
	size int64
}

// NewSafeReader creates a new SafeReader.
func NewSafeReader(r io.ReaderAt, size int64, path string) *SafeReader {
	return &SafeReader{
		r:    r,
		size: size,
		path: path,
	}
}

// Path returns the file path associated with this reader.
func (sr *SafeReader) Path() string {
	return sr.path
}

// ReadAt fills b from the given offset. what names the region in errors.
//
// The read is all-or-nothing: a partial fill is reported as a
// *ShortReadError and the contents of b are unspecified.
func (sr *SafeReader) ReadAt(b []byte, off int64, what string) error {
	if off < 0 || off >= sr.size || off+int64(len(b)) > sr.size {
		return &OutOfBoundsError{
			Path:   sr.path,
			What:   what,
			Offset: off,
			Length: len(b),
			Size:   sr.size,
		}
	}

	n, err := sr.r.ReadAt(b, off)
	if n < len(b) {
		return &ShortReadError{
			Err:    err,
			Path:   sr.path,
			What:   what,
			Offset: off,
			Got:    n,
			Want:   len(b),
		}
	}

	// A full read may still carry io.EOF when it ends exactly at the end of file.
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%s: failed to read %s at offset %d: %w", sr.path, what, off, err)
	}

	return nil
}

// Reader provides sequential reading with automatic offset tracking.
type Reader struct {
	*SafeReader
	offset int64
}

// NewReader creates a new Reader starting at the given offset.
func NewReader(sr *SafeReader, offset int64) *Reader {
	return &Reader{
		SafeReader: sr,
		offset:     offset,
	}
}

// NewTailReader creates a Reader positioned n bytes before the end of the data.
func NewTailReader(sr *SafeReader, n int64) (*Reader, error) {
	if n < 0 || n > sr.size {
		return nil, &OutOfBoundsError{
			Path:   sr.path,
			What:   "trailer",
			Offset: sr.size - n,
			Length: int(n),
			Size:   sr.size,
		}
	}
	return NewReader(sr, sr.size-n), nil
}

// ReadBytes reads exactly length bytes and advances the offset.
// On error the offset is left unchanged.
func (r *Reader) ReadBytes(length int, what string) ([]byte, error) {
	buf := make([]byte, length)
	if err := r.SafeReader.ReadAt(buf, r.offset, what); err != nil {
		return nil, err
	}

	r.offset += int64(length)
	return buf, nil
}

// Offset returns the current offset.
func (r *Reader) Offset() int64 {
	return r.offset
}

// ChainReader allows chaining multiple reads with deferred error checking.
// This avoids repetitive "if err != nil" checks.
type ChainReader struct {
	*Reader
	err       error
	errOffset int64
	errWhat   string
}

// NewChainReader creates a new ChainReader.
func NewChainReader(r *Reader) *ChainReader {
	return &ChainReader{Reader: r}
}

// Bytes reads length bytes, accumulating any error.
// Once a read has failed, later calls return nil without touching the reader.
func (cr *ChainReader) Bytes(length int, what string) []byte {
	if cr.err != nil {
		return nil
	}

	off := cr.Reader.Offset()
	val, err := cr.Reader.ReadBytes(length, what)
	if err != nil {
		cr.err = err
		cr.errOffset = off
		cr.errWhat = what
		return nil
	}

	return val
}

// Error returns the accumulated error, if any.
func (cr *ChainReader) Error() error {
	return cr.err
}

// Failed returns the region name and offset of the first failed read.
// Both are zero values when no read has failed.
func (cr *ChainReader) Failed() (what string, offset int64) {
	return cr.errWhat, cr.errOffset
}
