package ratel

import (
	"github.com/simonhull/ratel/internal/types"
)

// Tag is an alias to types.Tag.
// Re-exporting from internal/types to maintain public API.
type Tag = types.Tag
