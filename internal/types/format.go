package types

import (
	"path/filepath"
	"strings"
)

// Format represents an audio file format, resolved from the file extension.
type Format int

const (
	// FormatUnknown represents an unknown or unsupported format.
	FormatUnknown Format = iota // Unknown
	// FormatMP3 represents MP3 audio files.
	FormatMP3 // MP3
	// FormatWAV represents WAV audio files.
	FormatWAV // WAV
	// FormatWMA represents Windows Media Audio files.
	FormatWMA // WMA
)

// String returns the short display name of the format.
func (f Format) String() string {
	switch f {
	case FormatMP3:
		return "MP3"
	case FormatWAV:
		return "WAV"
	case FormatWMA:
		return "WMA"
	default:
		return "Unknown"
	}
}

// Extensions returns common file extensions for this format.
func (f Format) Extensions() []string {
	switch f {
	case FormatMP3:
		return []string{".mp3"}
	case FormatWAV:
		return []string{".wav"}
	case FormatWMA:
		return []string{".wma"}
	case FormatUnknown:
		return nil
	default:
		return nil
	}
}

// Formats lists every playable format, in display order.
func Formats() []Format {
	return []Format{FormatMP3, FormatWAV, FormatWMA}
}

// FormatFromPath resolves a format from the extension of path.
//
// Matching is case-insensitive, so "SONG.MP3" is an MP3. Paths with an
// unrecognised extension return FormatUnknown.
func FormatFromPath(path string) Format {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return FormatUnknown
	}
	for _, f := range Formats() {
		for _, e := range f.Extensions() {
			if e == ext {
				return f
			}
		}
	}
	return FormatUnknown
}

// MarshalText encodes the format as its display name.
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}
