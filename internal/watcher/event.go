package watcher

import "time"

// Event reports that the listing of the watched folder changed.
//
// Changes that arrive within one settle window are coalesced into a single
// event.
type Event struct {
	// Paths are the changed files, sorted.
	Paths []string

	// At is when the folder settled.
	At time.Time
}
