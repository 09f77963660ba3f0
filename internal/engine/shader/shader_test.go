package shader

import (
	"testing"
	"unsafe"
)

func TestInfoLog(t *testing.T) {
	tests := []struct {
		name string
		n    int32
		log  string
		want string
	}{
		{"empty", 0, "", "no info log"},
		{"trims terminator", 12, "ERROR: 0:1\n\x00", "ERROR: 0:1"},
	}

	for _, tt := range tests {
		got := infoLog(tt.n, func(buf *uint8) {
			copy(unsafe.Slice(buf, int(tt.n)), tt.log)
		})
		if got != tt.want {
			t.Errorf("%s: infoLog() = %q, want %q", tt.name, got, tt.want)
		}
	}
}
