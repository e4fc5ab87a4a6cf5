package watcher

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/simonhull/ratel/internal/types"
)

// Options configures the file watcher behavior.
type Options struct {
	IgnorePatterns []string
	SettleDelay    time.Duration
	IgnoreHidden   bool
}

// setDefaults applies default values to unset options.
func (o *Options) setDefaults() {
	if o.SettleDelay <= 0 {
		o.SettleDelay = 250 * time.Millisecond
	}

	// nil means "no config"; an explicit empty slice keeps IgnoreHidden as given.
	if o.IgnorePatterns == nil {
		o.IgnorePatterns = []string{
			"*.tmp",
			"*.temp",
			"*.part",
		}
		o.IgnoreHidden = true
	}
}

// shouldIgnore checks if a path matches ignore patterns.
func (o *Options) shouldIgnore(path string) bool {
	base := filepath.Base(path)

	if o.IgnoreHidden && strings.HasPrefix(base, ".") && base != "." && base != ".." {
		return true
	}

	for _, pattern := range o.IgnorePatterns {
		matched, err := filepath.Match(pattern, base)
		if err == nil && matched {
			return true
		}
	}

	return false
}

// relevant reports whether a change to path can alter the library listing.
func (o *Options) relevant(path string) bool {
	if o.shouldIgnore(path) {
		return false
	}
	return types.FormatFromPath(path) != types.FormatUnknown
}
