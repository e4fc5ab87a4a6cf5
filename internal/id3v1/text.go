package id3v1

import (
	"strings"
	"unicode"

	"golang.org/x/text/encoding/charmap"
)

// DefaultCharset is the ANSI code page most ID3v1 writers used.
var DefaultCharset = charmap.Windows1252

// Decode maps each byte to exactly one rune through a single-byte charset.
//
// Bytes that are not valid in a multi-byte encoding still decode 1:1, so a
// 30-byte region always yields a 30-rune string. A nil charset selects
// DefaultCharset.
func Decode(b []byte, cs *charmap.Charmap) string {
	if cs == nil {
		cs = DefaultCharset
	}

	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		sb.WriteRune(cs.DecodeByte(c))
	}
	return sb.String()
}

// Truncate cuts s just before its first rune that is not a letter, digit,
// punctuation or whitespace. Fixed-width fields are padded with NULs or other
// control bytes, and this strips that padding.
//
// Truncate(Truncate(s)) == Truncate(s).
func Truncate(s string) string {
	for i, r := range s {
		if !allowed(r) {
			return s[:i]
		}
	}
	return s
}

func allowed(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsPunct(r) || unicode.IsSpace(r)
}
