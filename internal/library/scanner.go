package library

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding/charmap"

	binutil "github.com/simonhull/ratel/internal/binary"
	_ "github.com/simonhull/ratel/internal/id3v1" // Register the ID3v1 reader for MP3
	"github.com/simonhull/ratel/internal/registry"
	"github.com/simonhull/ratel/internal/types"
)

// Options configures a Scanner.
type Options struct {
	Charset *charmap.Charmap // nil selects Windows-1252
	Workers int              // concurrent tag reads, at least 1
}

// Scanner lists a music folder.
type Scanner struct {
	logger *slog.Logger
	opts   Options
}

// NewScanner creates a new scanner.
func NewScanner(logger *slog.Logger, opts Options) *Scanner {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &Scanner{
		logger: logger,
		opts:   opts,
	}
}

// Scan lists the playable files directly inside dir, sorted by name.
//
// Subdirectories and hidden files are skipped. Tag read failures do not stop
// the scan: the affected file gets a StatusUnreadable row. Scan returns an
// error only when dir cannot be listed or ctx is cancelled.
func (s *Scanner) Scan(ctx context.Context, dir string) ([]Row, error) {
	start := time.Now()

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read music folder: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if types.FormatFromPath(entry.Name()) == types.FormatUnknown {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}

	rows := make([]Row, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Workers)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rows[i] = s.ScanFile(path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.Info("scan complete",
		"dir", dir,
		"files", len(rows),
		"tagged", count(rows, StatusTagged),
		"unreadable", count(rows, StatusUnreadable),
		"duration", time.Since(start),
	)

	return rows, nil
}

// ScanFile builds the row for a single file.
func (s *Scanner) ScanFile(path string) Row {
	name := filepath.Base(path)

	format, reader, err := registry.Lookup(path)
	if err != nil {
		s.logger.Debug("format carries no tag", "path", path, "error", err)
		return fileRow(path, name, format, StatusUntagged, nil)
	}

	opts := types.ReadOptions{Charset: s.opts.Charset, DisplayName: name}
	tag, err := binutil.ReadFile(path, func(r io.ReaderAt, size int64) (*types.Tag, error) {
		return reader.ReadTag(r, size, path, opts)
	})
	switch {
	case err == nil:
		return tagRow(path, format, tag)
	case errors.Is(err, types.ErrNotPresent):
		s.logger.Debug("no tag", "path", path)
		return fileRow(path, name, format, StatusUntagged, nil)
	default:
		s.logger.Warn("tag unreadable", "path", path, "error", err)
		return fileRow(path, name, format, StatusUnreadable, err)
	}
}

func count(rows []Row, status Status) int {
	n := 0
	for _, r := range rows {
		if r.Status == status {
			n++
		}
	}
	return n
}
