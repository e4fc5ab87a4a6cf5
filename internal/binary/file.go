package binary

import (
	"io"
	"os"

	"github.com/simonhull/ratel/internal/types"
)

// ReadFile opens path, hands the file and its length to read, and closes
// the file on every path. Open and stat failures are *types.ReadError.
func ReadFile[T any](path string, read func(r io.ReaderAt, size int64) (T, error)) (T, error) {
	var zero T

	f, err := os.Open(path)
	if err != nil {
		return zero, &types.ReadError{Path: path, Op: "open", Err: err}
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return zero, &types.ReadError{Path: path, Op: "stat", Err: err}
	}

	return read(f, stat.Size())
}
