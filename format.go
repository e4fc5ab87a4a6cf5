package ratel

import (
	"github.com/simonhull/ratel/internal/types"
)

// Format is an alias to types.Format.
// Re-exporting from internal/types to maintain public API.
type Format = types.Format

// Re-export all format constants.
const (
	FormatUnknown = types.FormatUnknown
	FormatMP3     = types.FormatMP3
	FormatWAV     = types.FormatWAV
	FormatWMA     = types.FormatWMA
)

// FormatFromPath is a wrapper around types.FormatFromPath.
// The format is chosen by extension, case-insensitively.
func FormatFromPath(path string) Format {
	return types.FormatFromPath(path)
}
