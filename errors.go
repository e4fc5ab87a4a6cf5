package ratel

import (
	"github.com/simonhull/ratel/internal/types"
)

// ErrNotPresent is returned when a file carries no ID3v1 tag: it is shorter
// than 128 bytes or its trailer does not start with "TAG".
//
// Test for it with errors.Is.
var ErrNotPresent = types.ErrNotPresent

// ReadError is an alias to types.ReadError.
// Re-exporting from internal/types to maintain public API.
type ReadError = types.ReadError

// UnsupportedFormatError is an alias to types.UnsupportedFormatError.
// Re-exporting from internal/types to maintain public API.
type UnsupportedFormatError = types.UnsupportedFormatError
