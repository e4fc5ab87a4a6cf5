package types

import "testing"

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"song.mp3", FormatMP3},
		{"SONG.MP3", FormatMP3},
		{"/music/Track 01.Mp3", FormatMP3},
		{"take.wav", FormatWAV},
		{"old.wma", FormatWMA},
		{"cover.jpg", FormatUnknown},
		{"README", FormatUnknown},
		{"archive.mp3.zip", FormatUnknown},
		{"", FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := FormatFromPath(tt.path); got != tt.want {
				t.Errorf("FormatFromPath(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatMP3, "MP3"},
		{FormatWAV, "WAV"},
		{FormatWMA, "WMA"},
		{FormatUnknown, "Unknown"},
		{Format(42), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", int(tt.format), got, tt.want)
		}
	}
}

func TestFormat_Extensions(t *testing.T) {
	for _, f := range Formats() {
		exts := f.Extensions()
		if len(exts) == 0 {
			t.Errorf("%v has no extensions", f)
		}
		for _, ext := range exts {
			if got := FormatFromPath("x" + ext); got != f {
				t.Errorf("FormatFromPath(%q) = %v, want %v", "x"+ext, got, f)
			}
		}
	}

	if exts := FormatUnknown.Extensions(); exts != nil {
		t.Errorf("FormatUnknown.Extensions() = %v, want nil", exts)
	}
}

func TestTag_IsEmpty(t *testing.T) {
	if !(&Tag{FileName: "a.mp3"}).IsEmpty() {
		t.Error("tag with only a file name should be empty")
	}
	if (&Tag{Year: "2011"}).IsEmpty() {
		t.Error("tag with a year should not be empty")
	}
}
