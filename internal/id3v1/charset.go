package id3v1

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
)

// LookupCharset resolves an IANA charset name such as "windows-1252" or
// "ISO-8859-1" to a single-byte charmap.
//
// Multi-byte encodings (UTF-8, Shift_JIS, ...) are rejected: ID3v1 fields
// are decoded one byte per character.
func LookupCharset(name string) (*charmap.Charmap, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("unknown charset %q: %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("charset %q is not supported", name)
	}

	cm, ok := enc.(*charmap.Charmap)
	if !ok {
		return nil, fmt.Errorf("charset %q is not a single-byte encoding", name)
	}
	return cm, nil
}
