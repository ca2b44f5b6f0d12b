package htmlutil

import "testing"

func TestLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Sunny day", "sunny day"},
		{"Light shower &amp; sun", "light shower & sun"},
		{"  Heavy\n rain  ", "heavy rain"},
	}
	for _, tt := range tests {
		if got := Label(tt.in); got != tt.want {
			t.Errorf("Label(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
