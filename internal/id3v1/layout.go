// Package id3v1 reads the fixed 128-byte ID3v1 trailer at the end of an
// audio file.
//
// The trailer layout is:
//
//	offset  len  field
//	     0    3  magic, "TAG"
//	     3   30  title
//	    33   30  artist
//	    63   30  album
//	    93    4  year
//	    97   30  comment
//	   127    1  genre (not read)
package id3v1

import "github.com/simonhull/ratel/internal/types"

// TrailerSize is the length of an ID3v1 trailer.
const TrailerSize = 128

// Marker is the magic that opens every ID3v1 trailer.
const Marker = "TAG"

// Field describes one fixed-width region of the trailer.
type Field struct {
	Name   string
	Offset int64 // from the start of the trailer
	Length int

	// assign stores the decoded value in a Tag; nil for the magic marker.
	assign func(t *types.Tag, v string)
}

// layout lists the regions in on-disk order. Reads are sequential, so each
// Offset equals the sum of the preceding lengths.
var layout = []Field{
	{Name: "magic", Offset: 0, Length: 3},
	{Name: "title", Offset: 3, Length: 30, assign: func(t *types.Tag, v string) { t.Title = v }},
	{Name: "artist", Offset: 33, Length: 30, assign: func(t *types.Tag, v string) { t.Artist = v }},
	{Name: "album", Offset: 63, Length: 30, assign: func(t *types.Tag, v string) { t.Album = v }},
	{Name: "year", Offset: 93, Length: 4, assign: func(t *types.Tag, v string) { t.Year = v }},
	{Name: "comment", Offset: 97, Length: 30, assign: func(t *types.Tag, v string) { t.Comment = v }},
}

// Layout returns a copy of the trailer region table.
func Layout() []Field {
	out := make([]Field, len(layout))
	copy(out, layout)
	return out
}
