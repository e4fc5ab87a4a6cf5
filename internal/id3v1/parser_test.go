package id3v1

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	binutil "github.com/simonhull/ratel/internal/binary"
	"github.com/simonhull/ratel/internal/registry"
	"github.com/simonhull/ratel/internal/types"
)

// pad right-pads s with fill up to n bytes.
func pad(s string, n int, fill byte) []byte {
	b := bytes.Repeat([]byte{fill}, n)
	copy(b, s)
	return b
}

// buildTrailer assembles a 128-byte trailer from raw region contents.
func buildTrailer(magic, title, artist, album, year, comment string, genre byte) []byte {
	data := make([]byte, 0, TrailerSize)
	data = append(data, pad(magic, 3, 0)...)
	data = append(data, pad(title, 30, 0)...)
	data = append(data, pad(artist, 30, 0)...)
	data = append(data, pad(album, 30, 0)...)
	data = append(data, pad(year, 4, 0)...)
	data = append(data, pad(comment, 30, 0)...)
	data = append(data, genre)
	return data
}

// countingReader records how many ReadAt calls it served.
type countingReader struct {
	r     io.ReaderAt
	calls int
}

func (c *countingReader) ReadAt(p []byte, off int64) (int, error) {
	c.calls++
	return c.r.ReadAt(p, off)
}

// interruptedReader delivers at most limit bytes and then fails.
type interruptedReader struct {
	data  []byte
	limit int64
}

func (m *interruptedReader) ReadAt(p []byte, off int64) (int, error) {
	if off >= m.limit {
		return 0, io.ErrUnexpectedEOF
	}
	end := min(off+int64(len(p)), m.limit)
	n := copy(p, m.data[off:end])
	if n < len(p) {
		return n, io.ErrUnexpectedEOF
	}
	return n, nil
}

func TestLayout_CoversTrailer(t *testing.T) {
	var next int64
	total := 0
	for _, f := range Layout() {
		if f.Offset != next {
			t.Errorf("%s: offset %d, want %d", f.Name, f.Offset, next)
		}
		next = f.Offset + int64(f.Length)
		total += f.Length
	}

	// Everything except the trailing genre byte.
	if total != TrailerSize-1 {
		t.Errorf("regions cover %d bytes, want %d", total, TrailerSize-1)
	}
}

func TestParse_WellFormed(t *testing.T) {
	data := append(make([]byte, 500), buildTrailer("TAG", "Song Title", "Artist Name", "Album", "2011", "A comment", 17)...)

	tag, err := Parse(bytes.NewReader(data), int64(len(data)), "/music/song.mp3", types.ReadOptions{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := types.Tag{
		Title:    "Song Title",
		Artist:   "Artist Name",
		Album:    "Album",
		Year:     "2011",
		Comment:  "A comment",
		FileName: "song.mp3",
	}
	if *tag != want {
		t.Errorf("Parse() = %+v, want %+v", *tag, want)
	}
}

func TestParse_ExactlyTrailerSize(t *testing.T) {
	data := buildTrailer("TAG", "T", "A", "B", "1999", "C", 0)

	tag, err := Parse(bytes.NewReader(data), int64(len(data)), "only-tag.mp3", types.ReadOptions{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if tag.Title != "T" || tag.Year != "1999" {
		t.Errorf("unexpected tag %+v", tag)
	}
}

func TestParse_DisplayName(t *testing.T) {
	data := buildTrailer("TAG", "T", "", "", "", "", 0)

	tag, err := Parse(bytes.NewReader(data), int64(len(data)), "/a/b.mp3", types.ReadOptions{DisplayName: "Shown"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if tag.FileName != "Shown" {
		t.Errorf("FileName = %q, want %q", tag.FileName, "Shown")
	}
}

func TestParse_TooShort(t *testing.T) {
	for _, size := range []int{0, 1, 50, 127} {
		data := bytes.Repeat([]byte("TAG"), 43)[:size]
		cr := &countingReader{r: bytes.NewReader(data)}

		tag, err := Parse(cr, int64(size), "short.mp3", types.ReadOptions{})
		if !errors.Is(err, types.ErrNotPresent) {
			t.Errorf("size %d: err = %v, want ErrNotPresent", size, err)
		}
		if tag != nil {
			t.Errorf("size %d: tag = %+v, want nil", size, tag)
		}
		if cr.calls != 0 {
			t.Errorf("size %d: %d reads attempted, want 0", size, cr.calls)
		}
	}
}

func TestParse_WrongMagic(t *testing.T) {
	for _, magic := range []string{"ID3", "tag", "TAg", "XYZ", "\x00\x00\x00", "TA\x00"} {
		t.Run(magic, func(t *testing.T) {
			data := buildTrailer(magic, "Song Title", "Artist", "Album", "2011", "c", 0)

			tag, err := Parse(bytes.NewReader(data), int64(len(data)), "x.mp3", types.ReadOptions{})
			if !errors.Is(err, types.ErrNotPresent) {
				t.Errorf("err = %v, want ErrNotPresent", err)
			}
			if tag != nil {
				t.Errorf("tag = %+v, want nil", tag)
			}
		})
	}
}

func TestParse_InterruptedRead(t *testing.T) {
	data := buildTrailer("TAG", "Song Title", "Artist Name", "Album", "2011", "A comment", 0)
	r := &interruptedReader{data: data, limit: 100}

	tag, err := Parse(r, TrailerSize, "flaky.mp3", types.ReadOptions{})
	if tag != nil {
		t.Fatalf("expected no tag, got %+v", tag)
	}

	var re *types.ReadError
	if !errors.As(err, &re) {
		t.Fatalf("expected *types.ReadError, got %T: %v", err, err)
	}
	if errors.Is(err, types.ErrNotPresent) {
		t.Error("read failure must not look like ErrNotPresent")
	}
	if re.What != "comment" || re.Offset != 97 {
		t.Errorf("failed region = %s@%d, want comment@97", re.What, re.Offset)
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected unexpected EOF in chain, got %v", err)
	}
}

func TestParse_ReadFailureBeforeMagicCheck(t *testing.T) {
	// Magic is not "TAG", but the read fails first: the failure wins.
	data := buildTrailer("ID3", "", "", "", "", "", 0)
	r := &interruptedReader{data: data, limit: 10}

	_, err := Parse(r, TrailerSize, "x.mp3", types.ReadOptions{})
	var re *types.ReadError
	if !errors.As(err, &re) {
		t.Fatalf("expected *types.ReadError, got %v", err)
	}
	if re.What != "title" {
		t.Errorf("failed region = %q, want title", re.What)
	}
}

func TestReadTrailer_Widths(t *testing.T) {
	data := buildTrailer("TAG", "Song Title", "Artist Name", "Album", "2011", "A comment", 0)
	tr, err := ReadTrailer(binutil.NewSafeReader(bytes.NewReader(data), int64(len(data)), "w.mp3"))
	if err != nil {
		t.Fatalf("ReadTrailer() error = %v", err)
	}

	want := []int{3, 30, 30, 30, 4, 30}
	for i, f := range Layout() {
		raw := Decode(tr[i], nil)
		if n := utf8.RuneCountInString(raw); n != want[i] {
			t.Errorf("%s decoded to %d runes, want %d", f.Name, n, want[i])
		}
	}
}

func TestParse_PaddingVariants(t *testing.T) {
	tests := []struct {
		name  string
		title []byte
		want  string
	}{
		{"nul padded", pad("Hello", 30, 0x00), "Hello"},
		{"space padded", pad("Hello", 30, ' '), "Hello" + string(bytes.Repeat([]byte{' '}, 25))},
		{"full width", []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123"), "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123"},
		{"control byte mid-field", pad("Hel\x01lo", 30, 0), "Hel"},
		{"symbol stops field", pad("Price $5", 30, 0), "Price "},
		{"punctuation kept", pad("AC/DC - Live!", 30, 0), "AC/DC - Live!"},
		{"latin-1 letters kept", pad("Caf\xe9 M\xfcller", 30, 0), "Café Müller"},
		{"empty", pad("", 30, 0), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := make([]byte, 0, TrailerSize)
			data = append(data, "TAG"...)
			data = append(data, tt.title...)
			data = append(data, make([]byte, TrailerSize-len(data))...)

			tag, err := Parse(bytes.NewReader(data), TrailerSize, "p.mp3", types.ReadOptions{})
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if tag.Title != tt.want {
				t.Errorf("Title = %q, want %q", tag.Title, tt.want)
			}
		})
	}
}

func TestParse_Charset(t *testing.T) {
	// The same bytes read as Latin-1 accents or as Cyrillic capitals.
	data := buildTrailer("TAG", "\xe1\xe2\xe3", "", "", "", "", 0)

	latin, err := Parse(bytes.NewReader(data), TrailerSize, "c.mp3", types.ReadOptions{Charset: charmap.ISO8859_1})
	if err != nil {
		t.Fatal(err)
	}
	cyr, err := Parse(bytes.NewReader(data), TrailerSize, "c.mp3", types.ReadOptions{Charset: charmap.KOI8R})
	if err != nil {
		t.Fatal(err)
	}

	if latin.Title != "áâã" {
		t.Errorf("ISO-8859-1 title = %q", latin.Title)
	}
	if cyr.Title != "АБЦ" {
		t.Errorf("KOI8-R title = %q", cyr.Title)
	}
}

func TestParse_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "track.mp3")
	data := append([]byte("ID3\x04\x00\x00\x00\x00\x00\x00"), buildTrailer("TAG", "On Disk", "Band", "LP", "1984", "", 0)...)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		t.Fatal(err)
	}

	tag, err := Parse(f, stat.Size(), path, types.ReadOptions{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if tag.Title != "On Disk" || tag.Artist != "Band" || tag.FileName != "track.mp3" {
		t.Errorf("unexpected tag %+v", tag)
	}
}

func TestRegisteredForMP3(t *testing.T) {
	r := registry.Get(types.FormatMP3)
	if r == nil {
		t.Fatal("no reader registered for MP3")
	}

	data := buildTrailer("TAG", "Reg", "", "", "", "", 0)
	tag, err := r.ReadTag(bytes.NewReader(data), TrailerSize, "r.mp3", types.ReadOptions{})
	if err != nil {
		t.Fatalf("ReadTag() error = %v", err)
	}
	if tag.Title != "Reg" {
		t.Errorf("Title = %q", tag.Title)
	}

	if registry.Get(types.FormatWAV) != nil {
		t.Error("WAV should have no tag reader")
	}
}

func BenchmarkParse(b *testing.B) {
	data := append(make([]byte, 4096), buildTrailer("TAG", "Song Title", "Artist Name", "Album", "2011", "A comment", 0)...)
	r := bytes.NewReader(data)

	b.ReportAllocs()
	for b.Loop() {
		if _, err := Parse(r, int64(len(data)), "bench.mp3", types.ReadOptions{}); err != nil {
			b.Fatal(err)
		}
	}
}
