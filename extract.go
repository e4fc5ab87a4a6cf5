package ratel

import (
	"context"
	"io"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	binutil "github.com/simonhull/ratel/internal/binary"
	"github.com/simonhull/ratel/internal/id3v1"
)

// Extract reads the ID3v1 tag at the end of the file at path.
//
// The outcome is one of:
//   - a *Tag with the five text fields and FileName set
//   - ErrNotPresent if the file is shorter than 128 bytes or has no "TAG" marker
//   - a *ReadError if the file cannot be opened, stat'ed or read in full
//
// The file handle is opened and closed within the call, on every path.
// The file is never modified.
//
// Example:
//
//	tag, err := ratel.Extract("song.mp3")
//	switch {
//	case errors.Is(err, ratel.ErrNotPresent):
//		fmt.Println("no ID3v1 tag")
//	case err != nil:
//		return err
//	default:
//		fmt.Printf("%s - %s\n", tag.Artist, tag.Title)
//	}
func Extract(path string, opts ...Option) (*Tag, error) {
	return binutil.ReadFile(path, func(r io.ReaderAt, size int64) (*Tag, error) {
		return extract(r, size, path, filepath.Base(path), opts)
	})
}

// ExtractReader reads the ID3v1 tag from r, whose total length is size.
//
// name is used in error messages and becomes Tag.FileName unless
// WithDisplayName overrides it.
func ExtractReader(r io.ReaderAt, size int64, name string, opts ...Option) (*Tag, error) {
	return extract(r, size, name, name, opts)
}

// extract reports errors against path and names the tag displayName unless
// an option overrides it.
func extract(r io.ReaderAt, size int64, path, displayName string, opts []Option) (*Tag, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	ro := options.readOptions()
	if ro.DisplayName == "" {
		ro.DisplayName = displayName
	}

	return id3v1.Parse(r, size, path, ro)
}

// ExtractContext extracts a tag with context support for cancellation.
//
// The trailer read is bounded and fast, so the context is only checked
// before the file is opened.
func ExtractContext(ctx context.Context, path string, opts ...Option) (*Tag, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Extract(path, opts...)
}

// Result is the outcome of extracting one file in ExtractMany.
type Result struct {
	Tag  *Tag  // nil unless Err is nil
	Err  error // ErrNotPresent, *ReadError, or nil
	Path string
}

// OK reports whether a tag was found.
func (r Result) OK() bool {
	return r.Err == nil && r.Tag != nil
}

// ExtractMany extracts tags from multiple files concurrently.
//
// Files are read in parallel using up to runtime.NumCPU() goroutines, each
// owning its own file handle. Results are returned in the same order as the
// input paths. Per-file outcomes (ErrNotPresent, *ReadError) are reported in
// Result.Err and do not stop the batch.
//
// The returned error is non-nil only when ctx is cancelled; the results are
// then discarded.
//
// Example:
//
//	results, err := ratel.ExtractMany(ctx, paths)
//	if err != nil {
//		return err
//	}
//	for _, r := range results {
//		if r.OK() {
//			fmt.Printf("%s: %s\n", r.Path, r.Tag.Title)
//		}
//	}
func ExtractMany(ctx context.Context, paths []string, opts ...Option) ([]Result, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU()) // Limit concurrent operations

	results := make([]Result, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			// Check for cancellation
			if err := ctx.Err(); err != nil {
				return err
			}

			tag, err := Extract(path, opts...)
			results[i] = Result{Tag: tag, Err: err, Path: path}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
