// Package types provides the core data structures shared by the tag
// reader, the registry and the library scanner.
package types

import "golang.org/x/text/encoding/charmap"

// Tag holds the text fields of one ID3v1 trailer.
//
// Fields are already decoded and stripped of their fixed-width padding.
// FileName is not part of the on-disk tag: it is the display name supplied
// by whoever asked for the tag.
type Tag struct {
	Title    string
	Artist   string
	Album    string
	Year     string
	Comment  string
	FileName string
}

// IsEmpty reports whether every on-disk field is blank.
func (t *Tag) IsEmpty() bool {
	return t.Title == "" && t.Artist == "" && t.Album == "" && t.Year == "" && t.Comment == ""
}

// ReadOptions carries per-call settings into a TagReader.
type ReadOptions struct {
	// Charset decodes tag bytes. Nil selects Windows-1252.
	Charset *charmap.Charmap

	// DisplayName becomes Tag.FileName. Empty selects the base name of the path.
	DisplayName string
}
