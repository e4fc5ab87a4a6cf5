// Package ratel reads ID3v1 tags from audio files.
//
// An ID3v1 tag is a fixed 128-byte trailer at the very end of a file. It
// opens with the marker "TAG" and carries five fixed-width text fields:
// title, artist, album, year and comment. ratel seeks to the trailer, reads
// each field in full, decodes it one byte per character, and strips the
// padding that follows the text.
//
// # Quick Start
//
//	tag, err := ratel.Extract("song.mp3")
//	if errors.Is(err, ratel.ErrNotPresent) {
//		fmt.Println("untagged")
//		return
//	}
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%s - %s (%s)\n", tag.Artist, tag.Title, tag.Year)
//
// # Outcomes
//
// Every extraction ends in exactly one of three ways:
//
//   - a *Tag
//   - ErrNotPresent: the file is shorter than 128 bytes, or the trailer does
//     not start with "TAG" (an ID3v2-only file, a WAV, ...)
//   - a *ReadError: the file could not be opened or the trailer could not be
//     read in full. A short read is never turned into a truncated field.
//
// ErrNotPresent is expected and common. A ReadError is not, and should be
// surfaced so the caller can skip or flag the file.
//
// # Text Decoding
//
// ID3v1 has no declared encoding. Fields are decoded with a single-byte
// charset, Windows-1252 by default, so every byte maps to exactly one
// character. Decoding then stops at the first character that is not a
// letter, digit, punctuation or whitespace; this removes NUL and other
// control padding. Use WithCharset for tags written in another code page.
//
// # Concurrency
//
// Extraction keeps no shared state. Each call owns its file handle for the
// duration of the call, so calls for different files can run in parallel.
// ExtractMany does exactly that:
//
//	results, err := ratel.ExtractMany(ctx, paths)
//	if err != nil {
//		log.Fatal(err) // ctx was cancelled
//	}
//	for _, r := range results {
//		if r.OK() {
//			fmt.Println(r.Tag.Title)
//		}
//	}
//
// # Library Scanning
//
// The cmd/ratel tool builds on this package to list a whole music folder as
// title / artist / album / year / comment / file rows, and to re-list it when
// the folder changes.
package ratel
