package id3v1

import "testing"

func TestLookupCharset(t *testing.T) {
	tests := []struct {
		name    string
		in      byte
		want    rune
		wantErr bool
	}{
		{name: "windows-1252", in: 0x80, want: '€'},
		{name: "WINDOWS-1252", in: 0x80, want: '€'},
		{name: "ISO-8859-1", in: 0xe9, want: 'é'},
		{name: "ISO-8859-15", in: 0xa4, want: '€'},
		{name: "KOI8-R", in: 0xe1, want: 'А'},
		{name: "UTF-8", wantErr: true},
		{name: "Shift_JIS", wantErr: true},
		{name: "no-such-charset", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs, err := LookupCharset(tt.name)
			if tt.wantErr {
				if err == nil {
					t.Errorf("LookupCharset(%q) should fail", tt.name)
				}
				return
			}
			if err != nil {
				t.Fatalf("LookupCharset(%q) error = %v", tt.name, err)
			}
			if got := cs.DecodeByte(tt.in); got != tt.want {
				t.Errorf("DecodeByte(0x%02x) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
