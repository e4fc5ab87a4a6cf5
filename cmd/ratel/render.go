package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/simonhull/ratel"
	"github.com/simonhull/ratel/internal/library"
)

// writeTable prints rows as aligned columns under a header.
func writeTable(w io.Writer, rows []library.Row) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(library.Columns, "\t"))
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(r.Columns(), "\t"))
	}
	return tw.Flush()
}

// writeJSON prints one JSON object per row.
func writeJSON(w io.Writer, rows []library.Row) error {
	enc := json.NewEncoder(w)
	for _, r := range rows {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}

// writeTag prints the fields of a single tag.
func writeTag(w io.Writer, tag *ratel.Tag) {
	fmt.Fprintf(w, "%s\n", tag.FileName)
	fmt.Fprintf(w, "  Title:   %s\n", tag.Title)
	fmt.Fprintf(w, "  Artist:  %s\n", tag.Artist)
	fmt.Fprintf(w, "  Album:   %s\n", tag.Album)
	fmt.Fprintf(w, "  Year:    %s\n", tag.Year)
	fmt.Fprintf(w, "  Comment: %s\n", tag.Comment)
}
