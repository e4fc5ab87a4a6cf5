package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"

	binutil "github.com/simonhull/ratel/internal/binary"
	"github.com/simonhull/ratel/internal/id3v1"
)

// Handy for checking what a file's last 128 bytes actually contain.
func main() {
	charset := flag.String("charset", "windows-1252", "Charset used for the decoded column")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("Usage: trailer-dump [-charset name] <file.mp3>")
		os.Exit(1)
	}

	cs, err := id3v1.LookupCharset(*charset)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	path := flag.Arg(0)
	f, err := os.Open(path)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if err := dumpTrailer(os.Stdout, f, stat.Size(), path, cs); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func dumpTrailer(w io.Writer, r io.ReaderAt, size int64, path string, cs *charmap.Charmap) error {
	if size < id3v1.TrailerSize {
		fmt.Fprintf(w, "%s: %d bytes, too short for a trailer\n", path, size)
		return nil
	}

	base := size - id3v1.TrailerSize
	fmt.Fprintf(w, "%s (size: %d, trailer offset: %d)\n", path, size, base)

	tr, err := id3v1.ReadTrailer(binutil.NewSafeReader(r, size, path))
	if err != nil {
		return err
	}

	for i, field := range id3v1.Layout() {
		raw := tr[i]
		decoded := id3v1.Decode(raw, cs)
		fmt.Fprintf(w, "  %-8s (offset: %d, len: %2d) %s\n", field.Name, base+field.Offset, field.Length, hex.EncodeToString(raw))
		fmt.Fprintf(w, "  %-8s %q\n", "", id3v1.Truncate(decoded))
	}

	genre := make([]byte, 1)
	if _, err := r.ReadAt(genre, size-1); err == nil {
		fmt.Fprintf(w, "  %-8s (offset: %d, len:  1) %02x\n", "genre", size-1, genre[0])
	}

	if magic := id3v1.Decode(tr[0], cs); magic != id3v1.Marker {
		fmt.Fprintf(w, "no %s marker, found %q\n", id3v1.Marker, strings.TrimRight(magic, "\x00"))
	}
	return nil
}
