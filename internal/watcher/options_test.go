package watcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOptions_Defaults(t *testing.T) {
	opts := Options{}
	opts.setDefaults()

	assert.True(t, opts.IgnoreHidden, "Should ignore hidden files by default")
	assert.Equal(t, 250*time.Millisecond, opts.SettleDelay, "Default settle delay should be 250ms")
	assert.Contains(t, opts.IgnorePatterns, "*.tmp", "Should ignore *.tmp by default")
	assert.Contains(t, opts.IgnorePatterns, "*.part", "Should ignore *.part by default")
}

func TestOptions_CustomValues(t *testing.T) {
	opts := Options{
		IgnoreHidden:   false,
		SettleDelay:    40 * time.Millisecond,
		IgnorePatterns: []string{"*.bak"},
	}
	opts.setDefaults()

	assert.False(t, opts.IgnoreHidden, "Custom ignore hidden should be preserved")
	assert.Equal(t, 40*time.Millisecond, opts.SettleDelay)
	assert.Equal(t, []string{"*.bak"}, opts.IgnorePatterns)
}

func TestOptions_ShouldIgnore(t *testing.T) {
	opts := Options{
		IgnoreHidden:   true,
		IgnorePatterns: []string{"*.tmp", "*.bak"},
	}
	opts.setDefaults()

	tests := []struct {
		name   string
		path   string
		expect bool
	}{
		{"hidden file", "/music/.hidden.mp3", true},
		{"tmp file", "/music/song.tmp", true},
		{"bak file", "/music/song.bak", true},
		{"normal file", "/music/song.mp3", false},
		{"hidden parent", "/home/.cache/song.mp3", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, opts.shouldIgnore(tt.path))
		})
	}
}

func TestOptions_Relevant(t *testing.T) {
	opts := Options{}
	opts.setDefaults()

	tests := []struct {
		path   string
		expect bool
	}{
		{"/music/a.mp3", true},
		{"/music/b.WAV", true},
		{"/music/c.wma", true},
		{"/music/cover.jpg", false},
		{"/music/notes.txt", false},
		{"/music/.a.mp3", false},
		{"/music/a.mp3.tmp", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expect, opts.relevant(tt.path))
		})
	}
}
