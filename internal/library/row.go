// Package library lists the playable files of a music folder as display rows.
package library

import (
	"github.com/simonhull/ratel/internal/types"
)

// Status describes how a row's fields were obtained.
type Status int

const (
	// StatusTagged means the fields come from an ID3v1 tag.
	StatusTagged Status = iota
	// StatusUntagged means the file has no tag, or its format carries none.
	StatusUntagged
	// StatusUnreadable means the tag read failed; Row.Err holds the cause.
	StatusUnreadable
)

// String returns the string representation of the status
func (s Status) String() string {
	switch s {
	case StatusTagged:
		return "tagged"
	case StatusUntagged:
		return "untagged"
	case StatusUnreadable:
		return "unreadable"
	default:
		return "unknown"
	}
}

// MarshalText encodes the status as its name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Columns names the display columns, in the order Row.Columns returns them.
var Columns = []string{"TITLE", "ARTIST", "ALBUM", "YEAR", "COMMENT", "FILE"}

// Row is one line of the library listing.
type Row struct {
	Err      error        `json:"-"`
	Title    string       `json:"title"`
	Artist   string       `json:"artist"`
	Album    string       `json:"album"`
	Year     string       `json:"year"`
	Comment  string       `json:"comment"`
	FileName string       `json:"file"`
	Path     string       `json:"path"`
	Format   types.Format `json:"format"`
	Status   Status       `json:"status"`
}

// Columns returns the display values in Columns order.
func (r Row) Columns() []string {
	return []string{r.Title, r.Artist, r.Album, r.Year, r.Comment, r.FileName}
}

// tagRow maps a tag onto a row.
func tagRow(path string, format types.Format, tag *types.Tag) Row {
	return Row{
		Title:    tag.Title,
		Artist:   tag.Artist,
		Album:    tag.Album,
		Year:     tag.Year,
		Comment:  tag.Comment,
		FileName: tag.FileName,
		Path:     path,
		Format:   format,
		Status:   StatusTagged,
	}
}

// fileRow is the row of a file without usable tag data: the file name doubles
// as the title and every other tag column is blank.
func fileRow(path, name string, format types.Format, status Status, err error) Row {
	return Row{
		Title:    name,
		FileName: name,
		Path:     path,
		Format:   format,
		Status:   status,
		Err:      err,
	}
}
