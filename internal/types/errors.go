package types

import (
	"errors"
	"fmt"
)

// ErrNotPresent reports that a file carries no recognised ID3v1 tag.
//
// It is returned for files shorter than the 128-byte trailer and for
// trailers whose magic marker is not "TAG". It is an expected outcome,
// not a failure.
var ErrNotPresent = errors.New("id3v1 tag not present")

// ReadError is returned when a file cannot be opened or its trailer
// cannot be read in full.
//
// A ReadError is never masked as ErrNotPresent: callers should skip or
// flag the file rather than treating it as untagged.
type ReadError struct {
	Err    error
	Path   string
	Op     string // "open", "stat", "read"
	What   string // trailer region being read, empty for open/stat
	Offset int64
}

func (e *ReadError) Error() string {
	if e.What != "" {
		return fmt.Sprintf("%s: %s %s at offset %d: %v", e.Path, e.Op, e.What, e.Offset, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Path, e.Op, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// UnsupportedFormatError is returned when a file's format cannot carry
// the requested kind of tag.
type UnsupportedFormatError struct {
	Path   string
	Reason string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("%s: unsupported format: %s", e.Path, e.Reason)
}
